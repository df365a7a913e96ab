package pack

import (
	"math"
	"strings"

	"github.com/wippyai/binpack/errors"
)

// templateScanner walks a template string one directive group at a time.
// The read offset only ever advances, except for the single-character
// backtrack that terminates an unrecognized suffix run.
type templateScanner struct {
	tmpl          string
	pos           int
	nativeIntSize int
}

func newTemplateScanner(tmpl string, nativeIntSize int) *templateScanner {
	return &templateScanner{tmpl: tmpl, nativeIntSize: nativeIntSize}
}

func (s *templateScanner) more() bool {
	return s.pos < len(s.tmpl)
}

// modifierTargets are the directive characters that accept the
// "_", "!", "<" and ">" suffix modifiers.
const modifierTargets = "sSiIlLqQ"

// next reads one directive group: the directive character, alias resolution,
// an optional count suffix (digits or "*") and any trailing modifiers.
func (s *templateScanner) next() (directive, error) {
	c := s.tmpl[s.pos]
	s.pos++

	// Resolve the native-int aliases before the table lookup.
	resolved := c
	if c == 'I' || c == 'i' {
		signed := c == 'i'
		switch s.nativeIntSize {
		case 2:
			resolved = 'S'
		case 4:
			resolved = 'L'
		case 8:
			resolved = 'Q'
		default:
			return directive{}, errors.New(errors.PhaseParse, errors.KindRuntime).
				Directive(c).
				Detail("native integer size %d not supported", s.nativeIntSize).
				Build()
		}
		if signed {
			resolved += 'a' - 'A'
		}
	}

	d := directive{char: resolved, count: 1}
	if e, ok := directiveTable[resolved]; ok {
		d.kind = e.kind
		d.elem = e.elem
		d.width = e.width
		d.flags = e.flags
	}

	// Suffix run: digits, "*", modifiers. A character outside the suffix
	// alphabet ends the group and is pushed back for the next one.
suffix:
	for s.pos < len(s.tmpl) {
		ch := s.tmpl[s.pos]
		s.pos++
		switch {
		case ch >= '0' && ch <= '9':
			count := int(ch - '0')
			for s.pos < len(s.tmpl) && s.tmpl[s.pos] >= '0' && s.tmpl[s.pos] <= '9' {
				count = count*10 + int(s.tmpl[s.pos]-'0')
				s.pos++
				if count > math.MaxInt32 {
					return directive{}, errors.Runtime(errors.PhaseParse, "too big template length")
				}
			}
			d.count = count
		case ch == '*':
			d.count = countAll
		case ch == '_' || ch == '!' || ch == '<' || ch == '>':
			if !strings.ContainsRune(modifierTargets, rune(resolved)) {
				return directive{}, errors.New(errors.PhaseParse, errors.KindArgument).
					Directive(resolved).
					Detail("'%c' allowed only after types %s", ch, modifierTargets).
					Build()
			}
			switch ch {
			case '_', '!':
				d.flags |= flagNative
			case '<':
				d.flags |= flagLittle
			case '>':
				d.flags |= flagBig
			}
		default:
			s.pos--
			break suffix
		}
	}

	d.little = d.flags&flagLittle != 0 || (d.flags&flagBig == 0 && hostLittleEndian)
	return d, nil
}
