// Package packer implements the pack and unpack engines.
//
// A Codec resolves format strings against a platform (byte order and the
// native int, long and pointer widths), then runs the Encoder or Decoder
// over the parsed directives:
//
//	c := packer.NewCodec()
//	b, err := c.Pack("S>a3", value.Int(7), value.String("hi"))
//	// b == "\x00\x07hi\x00"
//	vs, err := c.Unpack("S>a3", b)
//	// vs == [7 "hi\x00"]
//
// # Pack
//
// Values are drawn by one cursor shared across directives. Numeric
// directives take one value per repetition; a '*' count takes all that
// remain. String, hex and base64 directives take exactly one value and use
// the count as a width.
//
// # Unpack
//
// Fixed-width directives that run out of input append nil for each missing
// counted repetition instead of failing, up to Config.MaxFill per call. U
// stops at the end of input without appending. Unpack1 stops after the first
// directive that produces values.
//
// # Linear memory
//
// PackTo, PackAlloc and UnpackFrom move packed data in and out of a
// memory.Memory, typically a wrapped wazero module memory.
//
// # Errors
//
// All errors are *errors.Error values whose Path names the failing
// directive, for example "[unpack] argument at U@2: malformed UTF-8 character".
package packer
