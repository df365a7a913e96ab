package pack

import (
	"go.uber.org/zap"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/pack/internal/coerce"
)

type config struct {
	nativeIntSize int
	maxIntWidth   int
}

// Option configures a Packer or Unpacker.
type Option func(*config)

// WithNativeIntSize sets the byte width the "I" and "i" directives resolve
// to. Only 2, 4 and 8 resolve; anything else fails at parse time with a
// runtime error. The default is 4.
func WithNativeIntSize(n int) Option {
	return func(c *config) { c.nativeIntSize = n }
}

// WithMaxIntWidth bounds the magnitude of integers produced by unpack:
// 4 restricts results to the int32 range and 8 to the int64 range, each
// failing with a range error beyond it. The default 0 disables the check;
// unsigned 64-bit values above math.MaxInt64 then come back as uint64.
func WithMaxIntWidth(n int) Option {
	return func(c *config) { c.maxIntWidth = n }
}

func newConfig(opts []Option) config {
	cfg := config{nativeIntSize: 4}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Packer converts value sequences to byte buffers under a template.
// A Packer is stateless between calls and safe for concurrent use.
type Packer struct {
	cfg config
}

// NewPacker creates a Packer.
func NewPacker(opts ...Option) *Packer {
	return &Packer{cfg: newConfig(opts)}
}

// Pack walks the template against values and returns the packed bytes.
// Numeric directives consume one value per repetition; string-kind
// directives consume exactly one value per occurrence; "x" consumes none.
func (p *Packer) Pack(values []any, template string) ([]byte, error) {
	Logger().Debug("pack",
		zap.String("template", template),
		zap.Int("values", len(values)))

	buf := newWriteBuffer()
	scan := newTemplateScanner(template, p.cfg.nativeIntSize)
	vi := 0

	for scan.more() {
		d, err := scan.next()
		if err != nil {
			return nil, err
		}

		switch {
		case d.kind == kindNone:
			continue

		case d.kind == kindNulPad:
			if d.count > 0 {
				w, err := buf.window(d.count)
				if err != nil {
					return nil, err
				}
				for i := range w {
					w[i] = 0
				}
			}

		case d.elem == elemString:
			if vi >= len(values) {
				continue
			}
			v := values[vi]
			vi++
			src, ok := coerce.ToBytes(v)
			if !ok {
				return nil, typeError(v, "String", d.char)
			}
			var err error
			switch d.kind {
			case kindString:
				err = packString(buf, src, d.count, d.flags)
			case kindHex:
				err = packHex(buf, src, d.count, d.flags&flagLSBFirst != 0)
			case kindBase64:
				err = packBase64(buf, src, d.count)
			default:
				err = errors.Runtime(errors.PhasePack, "unreachable directive kind %s", d.kind)
			}
			if err != nil {
				return nil, err
			}

		default:
			count := d.count
			for count != 0 && vi < len(values) {
				v := values[vi]
				vi++
				if err := p.packOne(buf, d, v); err != nil {
					return nil, err
				}
				if count > 0 {
					count--
				}
			}
		}
	}

	return buf.bytes(), nil
}

// packOne encodes a single numeric, float or codepoint value.
func (p *Packer) packOne(buf *writeBuffer, d directive, v any) error {
	switch d.kind {
	case kindInt8, kindInt16, kindInt32, kindInt64:
		bits, ok := coerce.ToBits64(v)
		if !ok {
			return typeError(v, "Integer", d.char)
		}
		return packInt(buf, bits, d.width, d.little)

	case kindFloat32:
		f, ok := coerce.ToFloat64(v)
		if !ok {
			return typeError(v, "Float", d.char)
		}
		return packFloat32(buf, f, d.little)

	case kindFloat64:
		f, ok := coerce.ToFloat64(v)
		if !ok {
			return typeError(v, "Float", d.char)
		}
		return packFloat64(buf, f, d.little)

	case kindUTF8:
		if coerce.IsFloat(v) {
			return errors.New(errors.PhasePack, errors.KindRange).
				Directive('U').
				Value(v).
				Detail("pack(U): value out of range").
				Build()
		}
		c, ok := coerce.ToInt64(v)
		if !ok {
			return typeError(v, "Integer", d.char)
		}
		return packUTF8(buf, c)

	default:
		return errors.Runtime(errors.PhasePack, "unreachable directive kind %s", d.kind)
	}
}

func typeError(v any, want string, dir byte) error {
	return errors.New(errors.PhasePack, errors.KindType).
		Directive(dir).
		Value(v).
		Detail("can't convert %s into %s", coerce.TypeName(v), want).
		Build()
}

var defaultPacker = NewPacker()

// Pack packs values under template with the default configuration.
func Pack(values []any, template string) ([]byte, error) {
	return defaultPacker.Pack(values, template)
}
