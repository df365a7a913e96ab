package pack

import "encoding/binary"

// hostLittleEndian is resolved once at startup and never mutated, so
// unsynchronized concurrent reads are safe. Directives without an explicit
// "<" or ">" modifier fall back to this order.
var hostLittleEndian = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}()

// NativeLittleEndian reports whether the process's native byte order is
// little-endian.
func NativeLittleEndian() bool {
	return hostLittleEndian
}
