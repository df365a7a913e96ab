package pack

const hexDigits = "0123456789abcdef"

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return 10 + c - 'A'
	case c >= 'a' && c <= 'f':
		return 10 + c - 'a'
	}
	// Non-hex source characters encode as zero.
	return 0
}

// packHex packs source characters two nibbles per output byte. The count
// bounds total nibbles, not source characters; a short source zero-fills.
func packHex(b *writeBuffer, src []byte, count int, lsbFirst bool) error {
	aShift, bShift := uint(4), uint(0)
	if lsbFirst {
		aShift, bShift = 0, 4
	}

	if count == countAll {
		count = len(src)
	} else if len(src) > count {
		src = src[:count]
	}

	si := 0
	for ; count > 0; count -= 2 {
		var hi, lo byte
		if si < len(src) {
			hi = hexNibble(src[si])
			si++
		}
		if si < len(src) {
			lo = hexNibble(src[si])
			si++
		}
		if err := b.writeByte(hi<<aShift | lo<<bShift); err != nil {
			return err
		}
	}
	return nil
}

// unpackHex renders nibbles from each source byte as ASCII hex digits,
// bounded by count (consume-all defaults to two digits per remaining byte).
func unpackHex(src []byte, count int, lsbFirst bool) (string, int) {
	aShift, bShift := uint(4), uint(0)
	if lsbFirst {
		aShift, bShift = 0, 4
	}

	if count == countAll {
		count = len(src) * 2
	}

	dst := make([]byte, 0, count)
	i := 0
	for i < len(src) && count > 0 {
		c := src[i]
		i++

		dst = append(dst, hexDigits[c>>aShift&0x0F])
		count--
		if count > 0 {
			dst = append(dst, hexDigits[c>>bShift&0x0F])
			count--
		}
	}
	return string(dst), i
}
