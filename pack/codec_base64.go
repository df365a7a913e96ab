package pack

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	base64Ignore  = 0xFF // outside the alphabet, skipped on decode
	base64Padding = 0xFE // '='
)

// base64DecTab classifies each 7-bit input byte as a 6-bit symbol, ignore,
// or padding. Built once before first use and read-only afterwards.
var base64DecTab = func() [128]byte {
	var t [128]byte
	for i := range t {
		t[i] = base64Ignore
	}
	for i := 0; i < 26; i++ {
		t['A'+i] = byte(i)
		t['a'+i] = byte(i + 26)
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = byte(i + 52)
	}
	t['+'] = 62
	t['/'] = 63
	t['='] = base64Padding
	return t
}()

// packBase64 encodes src in 3-byte groups of 4 alphabet characters,
// inserting a newline every lineLen source bytes. Counts below 3 (and the
// consume-all count) wrap at 45 source bytes; larger counts round down to
// a multiple of 3. A trailing newline closes any open line.
func packBase64(b *writeBuffer, src []byte, count int) error {
	if len(src) == 0 {
		return nil
	}

	lineLen := count
	if lineLen < 3 {
		lineLen = 45
	} else {
		lineLen -= lineLen % 3
	}

	column := 0
	i := 0
	for ; len(src)-i >= 3; i += 3 {
		column += 3
		l := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		group := [4]byte{
			base64Chars[l>>18&0x3F],
			base64Chars[l>>12&0x3F],
			base64Chars[l>>6&0x3F],
			base64Chars[l&0x3F],
		}
		if err := b.write(group[:]); err != nil {
			return err
		}
		if column == lineLen {
			if err := b.writeByte('\n'); err != nil {
				return err
			}
			column = 0
		}
	}

	switch len(src) - i {
	case 1:
		l := uint32(src[i]) << 16
		group := [4]byte{base64Chars[l>>18&0x3F], base64Chars[l>>12&0x3F], '=', '='}
		if err := b.write(group[:]); err != nil {
			return err
		}
		column += 3
	case 2:
		l := uint32(src[i])<<16 | uint32(src[i+1])<<8
		group := [4]byte{base64Chars[l>>18&0x3F], base64Chars[l>>12&0x3F], base64Chars[l>>6&0x3F], '='}
		if err := b.write(group[:]); err != nil {
			return err
		}
		column += 3
	}

	if column > 0 {
		return b.writeByte('\n')
	}
	return nil
}

// unpackBase64 accumulates 4 symbols into a 24-bit group, skipping
// non-alphabet bytes, and stops after the first padded group.
func unpackBase64(src []byte) (string, int) {
	out := make([]byte, 0, len(src)/4*3)
	i := 0

groups:
	for len(src)-i >= 4 {
		var ch [4]byte
		padding := 0
		for k := 0; k < 4; k++ {
			for {
				if i >= len(src) {
					break groups
				}
				c := src[i]
				i++
				if c >= 128 {
					continue
				}
				sym := base64DecTab[c]
				if sym == base64Ignore {
					continue
				}
				if sym == base64Padding {
					ch[k] = 0
					padding++
				} else {
					ch[k] = sym
				}
				break
			}
		}

		l := uint32(ch[0])<<18 | uint32(ch[1])<<12 | uint32(ch[2])<<6 | uint32(ch[3])
		switch padding {
		case 0:
			out = append(out, byte(l>>16), byte(l>>8), byte(l))
		case 1:
			out = append(out, byte(l>>16), byte(l>>8))
			break groups
		default:
			out = append(out, byte(l>>16))
			break groups
		}
	}

	return string(out), i
}
