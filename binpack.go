package binpack

import "github.com/wippyai/binpack/pack"

// NoValue marks positions where a fixed-width unpack directive ran out of
// source bytes.
var NoValue = pack.NoValue

// Pack encodes values into a byte string as directed by template.
func Pack(values []any, template string) ([]byte, error) {
	return pack.Pack(values, template)
}

// Unpack decodes data into a value sequence as directed by template.
func Unpack(data []byte, template string) ([]any, error) {
	return pack.Unpack(data, template)
}

// UnpackFirst decodes only the first value the template produces. It
// returns NoValue when the template yields nothing.
func UnpackFirst(data []byte, template string) (any, error) {
	return pack.UnpackFirst(data, template)
}

// IsNoValue reports whether v is the missing-value marker.
func IsNoValue(v any) bool {
	return pack.IsNoValue(v)
}

// NativeLittleEndian reports the host byte order used by native-order
// directives.
func NativeLittleEndian() bool {
	return pack.NativeLittleEndian()
}
