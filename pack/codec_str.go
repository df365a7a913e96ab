package pack

import "bytes"

// packString writes one source string under "A", "a" or "Z" semantics.
// Count 0 emits nothing; the consume-all count emits the full source (plus
// a terminating NUL for "Z"); an explicit count truncates or right-pads to
// exactly that many bytes.
func packString(b *writeBuffer, src []byte, count int, flags dirFlags) error {
	pad := byte(' ')
	if flags&(flagNulPadded|flagNulTerm) != 0 {
		pad = 0
	}

	var copyLen, padLen int
	switch {
	case count == 0:
		return nil
	case count == countAll:
		copyLen = len(src)
		if flags&flagNulTerm != 0 {
			padLen = 1
		}
	case count < len(src):
		copyLen = count
	default:
		copyLen = len(src)
		padLen = count - len(src)
	}

	w, err := b.window(copyLen + padLen)
	if err != nil {
		return err
	}
	copy(w, src[:copyLen])
	for i := copyLen; i < len(w); i++ {
		w[i] = pad
	}
	return nil
}

// unpackString extracts one string value and reports bytes consumed.
// "Z" truncates at the first NUL (consuming the terminator in consume-all
// mode); "A" strips trailing whitespace and NULs; "a" returns the raw run.
func unpackString(src []byte, count int, flags dirFlags) (string, int) {
	slen := len(src)
	if count != countAll && count < slen {
		slen = count
	}
	copyLen := slen

	switch {
	case flags&flagNulTerm != 0:
		if i := bytes.IndexByte(src[:slen], 0); i >= 0 {
			copyLen = i
			if count == countAll {
				slen = copyLen + 1
			}
		}
	case flags&flagNulPadded == 0:
		for copyLen > 0 && (src[copyLen-1] == 0 || isSpace(src[copyLen-1])) {
			copyLen--
		}
	}

	return string(src[:copyLen]), slen
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
