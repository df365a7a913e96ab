// Package pack implements the template-driven binary codec: a pair of
// engines converting between an ordered sequence of typed values and a flat
// byte buffer, directed by a compact mini-language of single-character
// directives.
//
// # Template Mini-Language
//
// A template is a sequence of groups; each group is a directive character,
// an optional count and optional modifiers:
//
//	template  := group*
//	group     := directive [count] [modifier]*
//	count     := digit+ | '*'
//	modifier  := '_' | '!' | '<' | '>'
//
// # Directives
//
//	Char    Meaning                          Width
//	─────────────────────────────────────────────────
//	C c     unsigned/signed 8-bit            1
//	S s     unsigned/signed 16-bit           2
//	L l     unsigned/signed 32-bit           4
//	Q q     unsigned/signed 64-bit           8
//	n v     16-bit big/little-endian         2
//	N V     32-bit big/little-endian         4
//	I i     native-size unsigned/signed      2/4/8
//	F f     IEEE-754 single                  4
//	D d     IEEE-754 double                  8
//	e E     single/double little-endian      4/8
//	g G     single/double big-endian         4/8
//	U       UTF-8 codepoint                  1-4
//	A a Z   space-padded / NUL-padded /      count
//	        NUL-terminated string
//	H h     hex string, high/low nibble      count nibbles
//	        first
//	m       base64                           wrapped lines
//	x       NUL padding                      count
//
// The "*" count means "consume all remaining input". The "_" and "!"
// modifiers request the native-size variant and "<"/">" force little/big
// endianness; all four are legal only after s, S, i, I, l, L, q and Q.
// An unrecognized directive character is skipped silently.
//
// # Key Types
//
//	Packer    - Walks a template against a value sequence, producing bytes
//	Unpacker  - Walks a template against a byte buffer, producing values
//	Missing   - The no-value marker for directives that ran out of bytes
//
// # Value Model
//
// Pack accepts any Go numeric type for integer and float directives and
// string or []byte for string-kind directives. Unpack produces int64 for
// integer directives, float64 for floats, int64 codepoints for U and
// string for the string kinds. Fixed-width directives that run out of
// source bytes yield the NoValue marker instead of failing.
//
// # Thread Safety
//
// The only persistent state is the resolved native byte order and the
// base64 decode table, both computed once before first use and read-only
// afterwards. Packer and Unpacker carry only configuration and are safe
// for concurrent use; buffers and cursors are owned by the invoking call.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[parse] argument at 'C': '<' allowed only after types sSiIlLqQ
//	[unpack] argument at 'U': malformed UTF-8 character (expected 4 bytes, given 2 bytes)
//
// All failures are synchronous and abort the whole call; there is no
// partial result.
package pack
