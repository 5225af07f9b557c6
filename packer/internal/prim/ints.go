package prim

import "encoding/binary"

func byteOrder(little bool) binary.ByteOrder {
	if little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// PutUint writes the low len(dst) bytes of v into dst. len(dst) is 1, 2, 4 or 8.
func PutUint(dst []byte, v uint64, little bool) {
	order := byteOrder(little)
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(v))
	case 4:
		order.PutUint32(dst, uint32(v))
	case 8:
		order.PutUint64(dst, v)
	}
}

// Uint reads len(src) bytes as an unsigned integer. len(src) is 1, 2, 4 or 8.
func Uint(src []byte, little bool) uint64 {
	order := byteOrder(little)
	switch len(src) {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(order.Uint16(src))
	case 4:
		return uint64(order.Uint32(src))
	case 8:
		return order.Uint64(src)
	}
	return 0
}

// SignExtend interprets the low width bytes of v as two's complement.
func SignExtend(v uint64, width int) int64 {
	shift := uint(64 - 8*width)
	return int64(v<<shift) >> shift
}
