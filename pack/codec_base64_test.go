package pack

import (
	"strings"
	"testing"
)

func TestPackBase64(t *testing.T) {
	tests := []struct {
		name  string
		tmpl  string
		value string
		want  string
	}{
		{"three byte group", "m", "ABC", "QUJD\n"},
		{"one byte tail", "m", "A", "QQ==\n"},
		{"two byte tail", "m", "AB", "QUI=\n"},
		{"empty source", "m", "", ""},
		{"binary bytes", "m", "\x00\xFF\x10", "AP8Q\n"},
		{"star behaves like default", "m*", "ABC", "QUJD\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack([]any{tt.value}, tt.tmpl)
			if err != nil {
				t.Fatalf("Pack(%q, %q) returned error: %v", tt.value, tt.tmpl, err)
			}
			if string(got) != tt.want {
				t.Errorf("Pack(%q, %q) = %q, want %q", tt.value, tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestPackBase64LineWrapping(t *testing.T) {
	// The default wraps after 45 source bytes, 60 output characters.
	src := strings.Repeat("a", 46)
	got, err := Pack([]any{src}, "m")
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want 2", len(lines))
	}
	if len(lines[0]) != 60 {
		t.Errorf("first line length = %d, want 60", len(lines[0]))
	}
}

func TestPackBase64CustomLineLength(t *testing.T) {
	// A count of 6 wraps every 6 source bytes; 7 rounds down to 6.
	for _, tmpl := range []string{"m6", "m7"} {
		t.Run(tmpl, func(t *testing.T) {
			got, err := Pack([]any{"abcdefghij"}, tmpl)
			if err != nil {
				t.Fatalf("Pack returned error: %v", err)
			}
			lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("output has %d lines, want 2: %q", len(lines), got)
			}
			if len(lines[0]) != 8 {
				t.Errorf("first line length = %d, want 8", len(lines[0]))
			}
		})
	}
}

func TestUnpackBase64(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"three byte group", "QUJD", "ABC"},
		{"one byte tail", "QQ==", "A"},
		{"two byte tail", "QUI=", "AB"},
		{"newlines ignored", "QU\nJD", "ABC"},
		{"stops after padding", "QQ==QUJD", "A"},
		{"short trailing garbage dropped", "QUJDQQ", "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unpack([]byte(tt.data), "m")
			if err != nil {
				t.Fatalf("Unpack(%q) returned error: %v", tt.data, err)
			}
			if got[0] != tt.want {
				t.Errorf("Unpack(%q) = %q, want %q", tt.data, got[0], tt.want)
			}
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	for _, src := range []string{"", "x", "xy", "xyz", strings.Repeat("payload ", 20)} {
		buf, err := Pack([]any{src}, "m")
		if err != nil {
			t.Fatalf("Pack(%q) returned error: %v", src, err)
		}
		got, err := Unpack(buf, "m")
		if err != nil {
			t.Fatalf("Unpack returned error: %v", err)
		}
		if got[0] != src {
			t.Errorf("round trip of %q = %q", src, got[0])
		}
	}
}
