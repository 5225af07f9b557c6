// Package prim provides the per-directive codec primitives used by the packer.
//
// Every primitive works on a caller-supplied slice whose length is the
// explicit width of the operation: writers fill exactly len(dst) bytes and
// readers never look past len(src). The packer sizes each window before
// calling in, so no primitive grows or reslices beyond its arguments.
//
// # Contents
//
//   - ints.go: fixed-width integers (1/2/4/8 bytes, either byte order)
//   - floats.go: IEEE-754 single and double precision
//   - utf8.go: codepoint encoding and strict decoding
//   - str.go: space/NUL padded string blocks
//   - hex.go: nibble-ordered hex blocks
//   - base64.go: base64 blocks with line wrapping
//
// A count below zero means "to end" throughout this package.
//
// This package is internal to the packer.
package prim
