// Package binpack converts between sequences of typed values and packed
// binary strings, directed by a compact template language of
// single-character directives.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	binpack/             Root package re-exporting the codec entry points
//	├── pack/            Template parser and the pack/unpack engines
//	├── errors/          Structured error types for debugging
//	└── cmd/packer/      Command-line front end with an interactive mode
//
// # Quick Start
//
// Pack two 16-bit integers big-endian and a length-prefixed name:
//
//	buf, err := binpack.Pack([]any{1, 2, "hello"}, "n2 A8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vals, err := binpack.Unpack(buf, "n2 A8")
//	fmt.Println(vals) // [1 2 hello]
//
// # Directive Summary
//
// Integer directives C, S, L, Q (and lowercase signed variants) pack
// fixed-width integers in native byte order; n, N, v, V force big or
// little endianness and the < and > modifiers do the same for the core
// set. F/f and D/d handle IEEE-754 floats, U packs UTF-8 codepoints, and
// A, a, Z, H, h and m handle padded strings, hex text and base64. See the
// pack package documentation for the full table and grammar.
//
// # Thread Safety
//
// All entry points are stateless and safe for concurrent use. Configured
// Packer and Unpacker instances from the pack package are likewise safe
// to share across goroutines.
package binpack
