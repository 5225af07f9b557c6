// Package binpack converts between Go values and binary byte strings using
// compact format templates, the way Ruby's Array#pack and String#unpack do.
//
// A template is a sequence of directive characters, each optionally followed
// by modifiers ('_', '!', '<', '>') and a count (digits or '*'):
//
//	b, _ := binpack.Pack("n C a4", 513, 7, "ab")  // "\x02\x01\x07ab\x00\x00"
//	vs, _ := binpack.Unpack("n C a4", b)           // [513 7 "ab\x00\x00"]
//	v, _ := binpack.Unpack1("x2 C", b)             // 7
//
// # Architecture Overview
//
//	binpack/             Top-level Pack, Unpack and Unpack1
//	├── template/        Template parsing into directives
//	├── value/           Dynamic values and coercions
//	├── packer/          Pack and unpack engines, configurable Codec
//	├── memory/          Byte buffers and WebAssembly linear memory targets
//	├── schema/          WIT type descriptions and named YAML record layouts
//	├── errors/          Structured error types
//	└── cmd/binpack/     Command line tool with an interactive mode
//
// # Directives
//
//   - Integers: C c (8-bit), S s n v (16-bit), L l N V (32-bit), Q q (64-bit),
//     I i (int), J j (pointer width). '_' or '!' selects the native size,
//     '<' and '>' force the byte order.
//   - Floats: F f e g (single), D d E G (double).
//   - Strings: A (space padded), a (NUL padded), Z (NUL terminated),
//     H h (hex nibbles), m (base64), U (UTF-8 code points).
//   - Skip: x writes or skips NUL bytes.
//
// Unknown directive characters and whitespace are ignored.
//
// # Thread Safety
//
// Pack, Unpack and Unpack1 and every packer.Codec are safe for concurrent use.
package binpack
