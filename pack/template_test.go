package pack

import (
	"testing"

	"github.com/wippyai/binpack/errors"
)

func TestScannerBasicDirectives(t *testing.T) {
	tests := []struct {
		name  string
		tmpl  string
		kind  codecKind
		width int
		count int
	}{
		{"unsigned byte", "C", kindInt8, 1, 1},
		{"signed short", "s", kindInt16, 2, 1},
		{"unsigned long", "L", kindInt32, 4, 1},
		{"quad", "Q", kindInt64, 8, 1},
		{"explicit count", "C3", kindInt8, 1, 3},
		{"multi-digit count", "S12", kindInt16, 2, 12},
		{"star count", "L*", kindInt32, 4, countAll},
		{"float single", "f", kindFloat32, 4, 1},
		{"float double", "D", kindFloat64, 8, 1},
		{"utf8", "U", kindUTF8, 0, 1},
		{"nul pad", "x", kindNulPad, 0, 1},
		{"base64", "m", kindBase64, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := newTemplateScanner(tt.tmpl, 4)
			d, err := scan.next()
			if err != nil {
				t.Fatalf("next(%q) returned error: %v", tt.tmpl, err)
			}
			if d.kind != tt.kind {
				t.Errorf("kind = %s, want %s", d.kind, tt.kind)
			}
			if d.width != tt.width {
				t.Errorf("width = %d, want %d", d.width, tt.width)
			}
			if d.count != tt.count {
				t.Errorf("count = %d, want %d", d.count, tt.count)
			}
		})
	}
}

func TestScannerEndianModifiers(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		little bool
	}{
		{"forced little", "S<", true},
		{"forced big", "S>", false},
		{"network short", "n", false},
		{"network long", "N", false},
		{"vax short", "v", true},
		{"vax long", "V", true},
		{"little float", "e", true},
		{"big float", "G", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := newTemplateScanner(tt.tmpl, 4)
			d, err := scan.next()
			if err != nil {
				t.Fatalf("next(%q) returned error: %v", tt.tmpl, err)
			}
			if d.little != tt.little {
				t.Errorf("little = %v, want %v", d.little, tt.little)
			}
		})
	}
}

func TestScannerDefaultOrderIsNative(t *testing.T) {
	scan := newTemplateScanner("L", 4)
	d, err := scan.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if d.little != hostLittleEndian {
		t.Errorf("little = %v, want host order %v", d.little, hostLittleEndian)
	}
}

func TestScannerModifierAfterCount(t *testing.T) {
	// Count and modifier order is free within a group.
	scan := newTemplateScanner("S2>", 4)
	d, err := scan.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if d.count != 2 {
		t.Errorf("count = %d, want 2", d.count)
	}
	if d.little {
		t.Error("little = true, want false after '>'")
	}
}

func TestScannerModifierOnWrongDirective(t *testing.T) {
	for _, tmpl := range []string{"C<", "D>", "a!", "U_"} {
		t.Run(tmpl, func(t *testing.T) {
			scan := newTemplateScanner(tmpl, 4)
			_, err := scan.next()
			if err == nil {
				t.Fatalf("next(%q) succeeded, want argument error", tmpl)
			}
			if !errors.IsArgument(err) {
				t.Errorf("error kind = %v, want argument", err)
			}
			if !containsSubstring(err.Error(), "allowed only after types sSiIlLqQ") {
				t.Errorf("error = %q, want modifier placement message", err.Error())
			}
		})
	}
}

func TestScannerNativeSizeModifier(t *testing.T) {
	scan := newTemplateScanner("l!", 4)
	d, err := scan.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if d.flags&flagNative == 0 {
		t.Error("flagNative not set after '!'")
	}
	if d.width != 4 {
		t.Errorf("width = %d, want 4 (native request keeps fixed width)", d.width)
	}
}

func TestScannerNativeIntAlias(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		char     byte
		resolved byte
		width    int
		signed   bool
	}{
		{"size 2 unsigned", 2, 'I', 'S', 2, false},
		{"size 2 signed", 2, 'i', 's', 2, true},
		{"size 4 unsigned", 4, 'I', 'L', 4, false},
		{"size 4 signed", 4, 'i', 'l', 4, true},
		{"size 8 unsigned", 8, 'I', 'Q', 8, false},
		{"size 8 signed", 8, 'i', 'q', 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := newTemplateScanner(string(tt.char), tt.size)
			d, err := scan.next()
			if err != nil {
				t.Fatalf("next() returned error: %v", err)
			}
			if d.char != tt.resolved {
				t.Errorf("char = %c, want %c", d.char, tt.resolved)
			}
			if d.width != tt.width {
				t.Errorf("width = %d, want %d", d.width, tt.width)
			}
			if got := d.flags&flagSigned != 0; got != tt.signed {
				t.Errorf("signed = %v, want %v", got, tt.signed)
			}
		})
	}
}

func TestScannerNativeIntAliasAcceptsModifiers(t *testing.T) {
	scan := newTemplateScanner("i>", 4)
	d, err := scan.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if d.little {
		t.Error("little = true, want false for 'i>'")
	}
}

func TestScannerUnsupportedNativeIntSize(t *testing.T) {
	scan := newTemplateScanner("I", 3)
	_, err := scan.next()
	if err == nil {
		t.Fatal("next() succeeded, want runtime error")
	}
	if !errors.IsRuntime(err) {
		t.Errorf("error kind = %v, want runtime", err)
	}
	if !containsSubstring(err.Error(), "native integer size 3 not supported") {
		t.Errorf("error = %q, want native size message", err.Error())
	}
}

func TestScannerCountOverflow(t *testing.T) {
	scan := newTemplateScanner("C99999999999", 4)
	_, err := scan.next()
	if err == nil {
		t.Fatal("next() succeeded, want runtime error")
	}
	if !containsSubstring(err.Error(), "too big template length") {
		t.Errorf("error = %q, want overflow message", err.Error())
	}
}

func TestScannerUnrecognizedDirectiveIsNoOp(t *testing.T) {
	scan := newTemplateScanner("T", 4)
	d, err := scan.next()
	if err != nil {
		t.Fatalf("next() returned error: %v", err)
	}
	if d.kind != kindNone {
		t.Errorf("kind = %s, want none", d.kind)
	}
}

func TestScannerGroupBoundary(t *testing.T) {
	// The digit run binds to the first directive; the second group starts
	// cleanly at the next directive character.
	scan := newTemplateScanner("C2S", 4)

	d, err := scan.next()
	if err != nil {
		t.Fatalf("first next() returned error: %v", err)
	}
	if d.char != 'C' || d.count != 2 {
		t.Errorf("first group = %c count %d, want C count 2", d.char, d.count)
	}

	d, err = scan.next()
	if err != nil {
		t.Fatalf("second next() returned error: %v", err)
	}
	if d.char != 'S' || d.count != 1 {
		t.Errorf("second group = %c count %d, want S count 1", d.char, d.count)
	}

	if scan.more() {
		t.Error("more() = true after consuming both groups")
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
