package pack

import (
	"encoding/binary"
	"math"
)

// Float codecs reinterpret the raw IEEE-754 representation; the round trip
// through pack and unpack is bit-exact.

func packFloat32(b *writeBuffer, f float64, little bool) error {
	w, err := b.window(4)
	if err != nil {
		return err
	}
	bits := math.Float32bits(float32(f))
	if little {
		binary.LittleEndian.PutUint32(w, bits)
	} else {
		binary.BigEndian.PutUint32(w, bits)
	}
	return nil
}

func packFloat64(b *writeBuffer, f float64, little bool) error {
	w, err := b.window(8)
	if err != nil {
		return err
	}
	bits := math.Float64bits(f)
	if little {
		binary.LittleEndian.PutUint64(w, bits)
	} else {
		binary.BigEndian.PutUint64(w, bits)
	}
	return nil
}

func unpackFloat32(src []byte, little bool) float64 {
	var bits uint32
	if little {
		bits = binary.LittleEndian.Uint32(src)
	} else {
		bits = binary.BigEndian.Uint32(src)
	}
	return float64(math.Float32frombits(bits))
}

func unpackFloat64(src []byte, little bool) float64 {
	var bits uint64
	if little {
		bits = binary.LittleEndian.Uint64(src)
	} else {
		bits = binary.BigEndian.Uint64(src)
	}
	return math.Float64frombits(bits)
}
