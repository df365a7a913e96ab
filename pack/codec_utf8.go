package pack

import "github.com/wippyai/binpack/errors"

// utf8Limits[n-1] is the smallest codepoint that requires an n-byte
// sequence; anything below it decodes as a redundant encoding.
var utf8Limits = [...]int64{
	0x0,
	0x80,
	0x800,
	0x10000,
	0x200000,
	0x4000000,
}

// packUTF8 emits the minimal 1-4 byte sequence for codepoint c.
func packUTF8(b *writeBuffer, c int64) error {
	if c < 0 || c >= 0x200000 {
		return errors.New(errors.PhasePack, errors.KindRange).
			Directive('U').
			Value(c).
			Detail("pack(U): value out of range").
			Build()
	}

	var seq [4]byte
	var n int
	switch {
	case c < 0x80:
		seq[0] = byte(c)
		n = 1
	case c < 0x800:
		seq[0] = byte(0xC0 | c>>6)
		seq[1] = byte(0x80 | c&0x3F)
		n = 2
	case c < 0x10000:
		seq[0] = byte(0xE0 | c>>12)
		seq[1] = byte(0x80 | c>>6&0x3F)
		seq[2] = byte(0x80 | c&0x3F)
		n = 3
	default:
		seq[0] = byte(0xF0 | c>>18)
		seq[1] = byte(0x80 | c>>12&0x3F)
		seq[2] = byte(0x80 | c>>6&0x3F)
		seq[3] = byte(0x80 | c&0x3F)
		n = 4
	}
	return b.write(seq[:n])
}

// unpackUTF8 decodes one codepoint from the head of src and reports the
// sequence's true byte length. An empty src yields no value and one
// consumed byte, the template-boundary sentinel; callers must check
// len(src) before trusting the returned value.
func unpackUTF8(src []byte) (int64, int, error) {
	if len(src) == 0 {
		return 0, 1, nil
	}

	c := src[0]
	if c&0x80 == 0 {
		return int64(c), 1, nil
	}
	if c&0x40 == 0 {
		return 0, 0, malformedUTF8()
	}

	var n int
	var uv int64
	switch {
	case c&0x20 == 0:
		n, uv = 2, int64(c&0x1F)
	case c&0x10 == 0:
		n, uv = 3, int64(c&0x0F)
	case c&0x08 == 0:
		n, uv = 4, int64(c&0x07)
	default:
		// 5- and 6-byte declared lengths exceed the valid Unicode range.
		return 0, 0, malformedUTF8()
	}

	if n > len(src) {
		return 0, 0, errors.New(errors.PhaseUnpack, errors.KindArgument).
			Directive('U').
			Detail("malformed UTF-8 character (expected %d bytes, given %d bytes)", n, len(src)).
			Build()
	}
	for i := 1; i < n; i++ {
		if src[i]&0xC0 != 0x80 {
			return 0, 0, malformedUTF8()
		}
		uv = uv<<6 | int64(src[i]&0x3F)
	}
	if uv < utf8Limits[n-1] {
		return 0, 0, errors.New(errors.PhaseUnpack, errors.KindArgument).
			Directive('U').
			Detail("redundant UTF-8 sequence").
			Build()
	}
	return uv, n, nil
}

func malformedUTF8() error {
	return errors.New(errors.PhaseUnpack, errors.KindArgument).
		Directive('U').
		Detail("malformed UTF-8 character").
		Build()
}
