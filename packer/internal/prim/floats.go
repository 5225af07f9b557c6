package prim

import "math"

// PutFloat32 writes f as an IEEE-754 single into a 4-byte dst.
func PutFloat32(dst []byte, f float32, little bool) {
	PutUint(dst[:4], uint64(math.Float32bits(f)), little)
}

// Float32 reads an IEEE-754 single from a 4-byte src.
func Float32(src []byte, little bool) float32 {
	return math.Float32frombits(uint32(Uint(src[:4], little)))
}

// PutFloat64 writes f as an IEEE-754 double into an 8-byte dst.
func PutFloat64(dst []byte, f float64, little bool) {
	PutUint(dst[:8], math.Float64bits(f), little)
}

// Float64 reads an IEEE-754 double from an 8-byte src.
func Float64(src []byte, little bool) float64 {
	return math.Float64frombits(Uint(src[:8], little))
}
