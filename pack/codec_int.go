package pack

import (
	"math"

	"github.com/wippyai/binpack/errors"
)

// packInt writes the low width bytes of bits in the directive's byte order.
// Sign handling happens before this point: bits already carries the
// two's-complement pattern.
func packInt(b *writeBuffer, bits uint64, width int, little bool) error {
	w, err := b.window(width)
	if err != nil {
		return err
	}
	if little {
		for i := 0; i < width; i++ {
			w[i] = byte(bits >> (8 * i))
		}
	} else {
		for i := 0; i < width; i++ {
			w[i] = byte(bits >> (8 * (width - 1 - i)))
		}
	}
	return nil
}

// unpackInt reassembles width bytes in the given order into an integer.
// Signed directives reinterpret via two's-complement sign extension at that
// width. maxIntWidth bounds the decoded magnitude: 0 disables the check,
// 4 restricts results to the int32 range, 8 to the int64 range (unsigned
// values above math.MaxInt64 fail). Unbounded unsigned results that exceed
// math.MaxInt64 come back as uint64; everything else is int64.
func unpackInt(src []byte, width int, little, signed bool, maxIntWidth int, dir byte) (any, error) {
	var u uint64
	if little {
		for i := width - 1; i >= 0; i-- {
			u = u<<8 | uint64(src[i])
		}
	} else {
		for i := 0; i < width; i++ {
			u = u<<8 | uint64(src[i])
		}
	}

	if signed {
		shift := uint(64 - 8*width)
		n := int64(u<<shift) >> shift
		if maxIntWidth == 4 && (n < math.MinInt32 || n > math.MaxInt32) {
			return nil, errors.New(errors.PhaseUnpack, errors.KindRange).
				Directive(dir).
				Value(n).
				Detail("cannot unpack to Integer: %d", n).
				Build()
		}
		return n, nil
	}

	switch {
	case maxIntWidth == 4 && u > math.MaxInt32,
		maxIntWidth == 8 && u > math.MaxInt64:
		return nil, errors.New(errors.PhaseUnpack, errors.KindRange).
			Directive(dir).
			Value(u).
			Detail("cannot unpack to Integer: %d", u).
			Build()
	case u > math.MaxInt64:
		return u, nil
	default:
		return int64(u), nil
	}
}
