package pack

// codecKind is the category of byte-level transformation a directive performs.
type codecKind uint8

const (
	kindNone codecKind = iota // unrecognized directive, skipped
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindUTF8
	kindString
	kindHex
	kindBase64
	kindNulPad
)

var kindNames = [...]string{
	kindNone:    "none",
	kindInt8:    "int8",
	kindInt16:   "int16",
	kindInt32:   "int32",
	kindInt64:   "int64",
	kindFloat32: "float32",
	kindFloat64: "float64",
	kindUTF8:    "utf8",
	kindString:  "string",
	kindHex:     "hex",
	kindBase64:  "base64",
	kindNulPad:  "nulpad",
}

func (k codecKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// elemKind is the value category a directive consumes or produces.
type elemKind uint8

const (
	elemNone elemKind = iota
	elemInteger
	elemFloat
	elemString
)

type dirFlags uint16

const (
	flagSigned     dirFlags = 1 << iota // two's-complement interpretation
	flagNative                          // native-size request ("_" or "!"), recorded but width-neutral
	flagLittle                          // explicit little-endian ("<")
	flagBig                             // explicit big-endian (">")
	flagLSBFirst                        // low nibble first ("h")
	flagNulPadded                       // "a": pad with NUL, no trimming on unpack
	flagNulTerm                         // "Z": append NUL on pack, stop at NUL on unpack
	flagWidthCount                      // count parameterizes width, not repetition
)

// directive is one parsed template group. Created fresh per group and
// discarded after the engines dispatch on it.
type directive struct {
	kind   codecKind
	elem   elemKind
	width  int
	count  int // countAll for "*", otherwise the explicit count (default 1)
	flags  dirFlags
	char   byte // resolved directive character, after alias resolution
	little bool // effective byte order
}

// countAll is the "*" count: use all remaining input or output capacity.
const countAll = -1

type dirEntry struct {
	kind  codecKind
	elem  elemKind
	width int
	flags dirFlags
}

// directiveTable maps each recognized directive character to its codec kind,
// element kind, fixed byte width and default flags. "I" and "i" are absent:
// they resolve through the native-integer-size alias step in the scanner.
var directiveTable = map[byte]dirEntry{
	'A': {kindString, elemString, 0, flagWidthCount},
	'a': {kindString, elemString, 0, flagWidthCount | flagNulPadded},
	'C': {kindInt8, elemInteger, 1, 0},
	'c': {kindInt8, elemInteger, 1, flagSigned},
	'D': {kindFloat64, elemFloat, 8, flagSigned},
	'd': {kindFloat64, elemFloat, 8, flagSigned},
	'E': {kindFloat64, elemFloat, 8, flagSigned | flagLittle},
	'e': {kindFloat32, elemFloat, 4, flagSigned | flagLittle},
	'F': {kindFloat32, elemFloat, 4, flagSigned},
	'f': {kindFloat32, elemFloat, 4, flagSigned},
	'G': {kindFloat64, elemFloat, 8, flagSigned | flagBig},
	'g': {kindFloat32, elemFloat, 4, flagSigned | flagBig},
	'H': {kindHex, elemString, 0, flagWidthCount},
	'h': {kindHex, elemString, 0, flagWidthCount | flagLSBFirst},
	'L': {kindInt32, elemInteger, 4, 0},
	'l': {kindInt32, elemInteger, 4, flagSigned},
	'm': {kindBase64, elemString, 0, flagWidthCount},
	'N': {kindInt32, elemInteger, 4, flagBig},    // "L>"
	'n': {kindInt16, elemInteger, 2, flagBig},    // "S>"
	'Q': {kindInt64, elemInteger, 8, 0},
	'q': {kindInt64, elemInteger, 8, flagSigned},
	'S': {kindInt16, elemInteger, 2, 0},
	's': {kindInt16, elemInteger, 2, flagSigned},
	'U': {kindUTF8, elemInteger, 0, 0},
	'V': {kindInt32, elemInteger, 4, flagLittle}, // "L<"
	'v': {kindInt16, elemInteger, 2, flagLittle}, // "S<"
	'x': {kindNulPad, elemNone, 0, 0},
	'Z': {kindString, elemString, 0, flagWidthCount | flagNulTerm},
}
