package packer

import "github.com/wippyai/binpack/value"

// valueCursor draws pack inputs in order across all directives.
type valueCursor struct {
	values []value.Value
	pos    int
}

func (c *valueCursor) next() (value.Value, bool) {
	if c.pos >= len(c.values) {
		return value.Value{}, false
	}
	v := c.values[c.pos]
	c.pos++
	return v, true
}

// byteReader tracks the unpack read offset.
type byteReader struct {
	data   []byte
	pos    int
	filled int // nil values appended for missing input
}

func (r *byteReader) rest() []byte {
	return r.data[r.pos:]
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) advance(n int) {
	r.pos += n
}
