package pack

import "github.com/wippyai/binpack/errors"

// writeBuffer owns the pack output storage for the duration of one call.
// Capacity grows by doubling whenever a write would exceed it; the final
// result is the storage truncated to the logical length.
type writeBuffer struct {
	buf []byte
	n   int
}

func newWriteBuffer() *writeBuffer {
	return &writeBuffer{buf: make([]byte, 128)}
}

// ensure guarantees capacity for a logical length of at least size bytes.
// A negative size means the write cursor overflowed.
func (b *writeBuffer) ensure(size int) error {
	if size < 0 {
		return errors.Range(errors.PhasePack, "negative (or overflowed) template size")
	}
	if size <= len(b.buf) {
		return nil
	}
	capacity := len(b.buf)
	if capacity == 0 {
		capacity = 128
	}
	for capacity < size {
		capacity *= 2
		if capacity < 0 {
			return errors.Range(errors.PhasePack, "negative (or overflowed) template size")
		}
	}
	grown := make([]byte, capacity)
	copy(grown, b.buf[:b.n])
	b.buf = grown
	return nil
}

// window ensures room for size more bytes and returns a mutable view of
// them, advancing the write cursor.
func (b *writeBuffer) window(size int) ([]byte, error) {
	if err := b.ensure(b.n + size); err != nil {
		return nil, err
	}
	w := b.buf[b.n : b.n+size]
	b.n += size
	return w, nil
}

func (b *writeBuffer) writeByte(c byte) error {
	w, err := b.window(1)
	if err != nil {
		return err
	}
	w[0] = c
	return nil
}

func (b *writeBuffer) write(p []byte) error {
	w, err := b.window(len(p))
	if err != nil {
		return err
	}
	copy(w, p)
	return nil
}

// len returns the logical length written so far.
func (b *writeBuffer) length() int {
	return b.n
}

// bytes returns the storage truncated to the logical length.
func (b *writeBuffer) bytes() []byte {
	return b.buf[:b.n]
}
