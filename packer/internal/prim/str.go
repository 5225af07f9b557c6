package prim

import "bytes"

// PadMode selects how a string block is padded and trimmed.
type PadMode uint8

const (
	PadSpace         PadMode = iota // A
	PadNul                          // a
	PadNulTerminated                // Z
)

func (m PadMode) padByte() byte {
	if m == PadSpace {
		return ' '
	}
	return 0
}

// StrSize returns how many source bytes to copy and how many pad bytes follow.
func StrSize(srcLen, count int, mode PadMode) (copyLen, padLen int) {
	switch {
	case count == 0:
		return 0, 0
	case count < 0:
		if mode == PadNulTerminated {
			return srcLen, 1
		}
		return srcLen, 0
	case count < srcLen:
		return count, 0
	default:
		return srcLen, count - srcLen
	}
}

// PutStr copies copyLen bytes of src into dst and pads the rest of dst.
func PutStr(dst []byte, src string, copyLen int, mode PadMode) {
	n := copy(dst, src[:copyLen])
	pad := mode.padByte()
	for i := n; i < len(dst); i++ {
		dst[i] = pad
	}
}

// ReadStr extracts a string block from src and returns it with the bytes consumed.
func ReadStr(src []byte, count int, mode PadMode) (string, int) {
	n := len(src)
	if count >= 0 && count < n {
		n = count
	}
	consumed := n
	out := src[:n]

	switch mode {
	case PadNulTerminated:
		if i := bytes.IndexByte(out, 0); i >= 0 {
			out = out[:i]
			if count < 0 {
				consumed = i + 1
			}
		}
	case PadSpace:
		end := len(out)
		for end > 0 && isTrailingPad(out[end-1]) {
			end--
		}
		out = out[:end]
	}
	return string(out), consumed
}

func isTrailingPad(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
