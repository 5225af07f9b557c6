// Package value defines the dynamic values the codec packs and unpacks.
//
// A Value is a tagged union of Integer (int64), Float (float64), String
// (raw bytes held in a Go string) and Absent (nil). Unpack fills missing
// fixed-width units with Absent.
//
// Of converts ordinary Go values:
//
//	v, err := value.Of(uint16(7))   // Integer 7
//	v, err := value.Of([]byte{0})   // String "\x00"
//	v, err := value.Of(nil)         // Absent
//
// ToInt, ToFloat and ToStr apply the coercions the pack engine uses and
// return TypeError or RangeError class errors naming the value's class.
package value
