package pack

import (
	"go.uber.org/zap"

	"github.com/wippyai/binpack/errors"
)

// Unpacker converts byte buffers to value sequences under a template.
// An Unpacker is stateless between calls and safe for concurrent use.
type Unpacker struct {
	cfg config
}

// NewUnpacker creates an Unpacker.
func NewUnpacker(opts ...Option) *Unpacker {
	return &Unpacker{cfg: newConfig(opts)}
}

// Unpack walks the template against data and returns the decoded values in
// consumption order. Fixed-width directives that run out of source bytes
// append a NoValue marker per still-requested repetition; that is not an
// error.
func (u *Unpacker) Unpack(data []byte, template string) ([]any, error) {
	return u.unpack(data, template, false)
}

// UnpackFirst decodes only the first value-producing directive and returns
// its first value, or NoValue if it produced none. The rest of the
// template is discarded.
func (u *Unpacker) UnpackFirst(data []byte, template string) (any, error) {
	out, err := u.unpack(data, template, true)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return NoValue, nil
	}
	return out[0], nil
}

func (u *Unpacker) unpack(data []byte, template string, single bool) ([]any, error) {
	Logger().Debug("unpack",
		zap.String("template", template),
		zap.Int("bytes", len(data)))

	scan := newTemplateScanner(template, u.cfg.nativeIntSize)
	out := []any{}
	pos := 0

	for scan.more() {
		d, err := scan.next()
		if err != nil {
			return nil, err
		}

		switch {
		case d.kind == kindNone:
			continue

		case d.kind == kindNulPad:
			if d.count == countAll {
				pos = len(data)
				continue
			}
			if len(data)-pos < d.count {
				return nil, errors.New(errors.PhaseUnpack, errors.KindArgument).
					Directive('x').
					Detail("x outside of buffer").
					Build()
			}
			pos += d.count
			continue

		case d.elem == elemString:
			var v string
			var n int
			switch d.kind {
			case kindString:
				v, n = unpackString(data[pos:], d.count, d.flags)
			case kindHex:
				v, n = unpackHex(data[pos:], d.count, d.flags&flagLSBFirst != 0)
			case kindBase64:
				v, n = unpackBase64(data[pos:])
			default:
				return nil, errors.Runtime(errors.PhaseUnpack, "unreachable directive kind %s", d.kind)
			}
			out = append(out, v)
			pos += n

		case d.kind == kindUTF8:
			count := d.count
			for count != 0 && pos < len(data) {
				v, n, err := unpackUTF8(data[pos:])
				if err != nil {
					return nil, err
				}
				out = append(out, v)
				pos += n
				if count > 0 {
					count--
				}
			}

		default:
			count := d.count
			for count != 0 {
				if len(data)-pos < d.width {
					for ; count > 0; count-- {
						out = append(out, NoValue)
					}
					break
				}
				v, err := u.unpackOne(d, data[pos:pos+d.width])
				if err != nil {
					return nil, err
				}
				out = append(out, v)
				pos += d.width
				if count > 0 {
					count--
				}
			}
		}

		if single {
			break
		}
	}

	return out, nil
}

// unpackOne decodes a single fixed-width numeric or float value.
func (u *Unpacker) unpackOne(d directive, src []byte) (any, error) {
	switch d.kind {
	case kindInt8, kindInt16, kindInt32, kindInt64:
		return unpackInt(src, d.width, d.little, d.flags&flagSigned != 0, u.cfg.maxIntWidth, d.char)
	case kindFloat32:
		return unpackFloat32(src, d.little), nil
	case kindFloat64:
		return unpackFloat64(src, d.little), nil
	default:
		return nil, errors.Runtime(errors.PhaseUnpack, "unreachable directive kind %s", d.kind)
	}
}

var defaultUnpacker = NewUnpacker()

// Unpack decodes data under template with the default configuration.
func Unpack(data []byte, template string) ([]any, error) {
	return defaultUnpacker.Unpack(data, template)
}

// UnpackFirst decodes the first value of data under template with the
// default configuration.
func UnpackFirst(data []byte, template string) (any, error) {
	return defaultUnpacker.UnpackFirst(data, template)
}
