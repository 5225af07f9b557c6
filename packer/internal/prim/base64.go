package prim

import "github.com/wippyai/binpack/internal/host"

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// DefaultBase64Line is the number of source bytes per output line when none is given.
const DefaultBase64Line = 45

// Base64LineLen normalizes a directive count into source bytes per line.
// Zero disables wrapping.
func Base64LineLen(count int) int {
	switch {
	case count == 0:
		return 0
	case count < 3:
		return DefaultBase64Line
	default:
		return count - count%3
	}
}

// Base64Size returns the encoded size of srcLen bytes including newlines.
func Base64Size(srcLen, lineLen int) int {
	if srcLen == 0 {
		return 0
	}
	n := (srcLen + 2) / 3 * 4
	if lineLen > 0 {
		n += (srcLen + lineLen - 1) / lineLen
	}
	return n
}

// PutBase64 encodes src into dst, which must be Base64Size(len(src), lineLen) bytes.
// A newline follows every lineLen source bytes and ends a partial last line.
func PutBase64(dst []byte, src []byte, lineLen int) {
	if len(src) == 0 {
		return
	}
	d := 0
	column := 0
	for len(src) >= 3 {
		l := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		dst[d] = base64Chars[(l>>18)&0x3f]
		dst[d+1] = base64Chars[(l>>12)&0x3f]
		dst[d+2] = base64Chars[(l>>6)&0x3f]
		dst[d+3] = base64Chars[l&0x3f]
		d += 4
		src = src[3:]
		column += 3
		if lineLen > 0 && column == lineLen {
			dst[d] = '\n'
			d++
			column = 0
		}
	}

	switch len(src) {
	case 1:
		l := uint32(src[0]) << 16
		dst[d] = base64Chars[(l>>18)&0x3f]
		dst[d+1] = base64Chars[(l>>12)&0x3f]
		dst[d+2] = '='
		dst[d+3] = '='
		d += 4
		column += 3
	case 2:
		l := uint32(src[0])<<16 | uint32(src[1])<<8
		dst[d] = base64Chars[(l>>18)&0x3f]
		dst[d+1] = base64Chars[(l>>12)&0x3f]
		dst[d+2] = base64Chars[(l>>6)&0x3f]
		dst[d+3] = '='
		d += 4
		column += 3
	}

	if lineLen > 0 && column > 0 {
		dst[d] = '\n'
	}
}

// DecodeBase64 decodes groups of four significant characters from src.
// Bytes the table marks as ignorable are skipped; '=' decodes as zero and
// shortens the final group. A trailing partial group is dropped.
// It returns the decoded bytes and the number of source bytes consumed.
func DecodeBase64(src []byte, table *host.Base64Table) ([]byte, int) {
	out := make([]byte, 0, len(src)/4*3)
	i := 0
	padding := 0

	for len(src)-i >= 4 {
		var ch [4]byte
		for k := 0; k < 4; k++ {
			for {
				if i == len(src) {
					return out, i
				}
				v := table[src[i]]
				i++
				if v == host.Base64Ignore {
					continue
				}
				if v == host.Base64Padding {
					v = 0
					padding++
				}
				ch[k] = v
				break
			}
		}

		l := uint32(ch[0])<<18 | uint32(ch[1])<<12 | uint32(ch[2])<<6 | uint32(ch[3])
		switch padding {
		case 0:
			out = append(out, byte(l>>16), byte(l>>8), byte(l))
		case 1:
			return append(out, byte(l>>16), byte(l>>8)), i
		default:
			return append(out, byte(l>>16)), i
		}
	}
	return out, i
}
