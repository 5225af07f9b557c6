// Package template parses pack/unpack format strings into directives.
//
// A format is a sequence of directive characters, each optionally followed
// by suffixes:
//
//	C c        8-bit unsigned/signed integer
//	S s n v    16-bit integer (n big-endian, v little-endian)
//	L l N V    32-bit integer (N big-endian, V little-endian)
//	Q q        64-bit integer
//	I i        native int, resolved to S, L or Q
//	J j        pointer-width integer, resolved to L or Q
//	D d E G    double (E little-endian, G big-endian)
//	F f e g    single (e little-endian, g big-endian)
//	U          UTF-8 codepoint
//	A a Z      string block (space pad, NUL pad, NUL terminated)
//	H h        hex block (high or low nibble first)
//	m          base64 block
//	x          NUL bytes
//
// Suffixes are a decimal count, '*' for all remaining input, '_' or '!' for
// the native size, and '<' or '>' for byte order. The last three are only
// accepted after sSiIlLqQjJ.
//
// Unknown characters parse as OpInvalid and are ignored by the codec.
package template
