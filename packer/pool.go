package packer

import (
	"fmt"
	"math"
	"sync"

	"github.com/wippyai/binpack/errors"
)

// Pool limits to prevent memory bloat
const poolMaxCap = 64 << 10

var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, DefaultInitialBufferSize)
		return &buf
	},
}

// buffer is a pack output under construction.
type buffer struct {
	pooled *[]byte
	data   []byte
	limit  int
}

func newBuffer(initCap, limit int) *buffer {
	p := bufPool.Get().(*[]byte)
	data := (*p)[:0]
	if cap(data) < initCap {
		data = make([]byte, 0, initCap)
	}
	return &buffer{pooled: p, data: data, limit: limit}
}

// reserve extends the buffer by n zeroed bytes and returns them.
func (b *buffer) reserve(n int) ([]byte, error) {
	cur := len(b.data)
	if n < 0 || cur > math.MaxInt-n {
		return nil, errors.Range(errors.PhasePack, n, "negative (or overflowed) template size")
	}
	need := cur + n
	if need > b.limit {
		return nil, errors.Range(errors.PhasePack, need,
			fmt.Sprintf("packed size %d exceeds limit %d", need, b.limit))
	}
	if need > cap(b.data) {
		b.grow(need)
	}
	b.data = b.data[:need]
	w := b.data[cur:need]
	clear(w)
	return w, nil
}

// grow doubles capacity until need fits.
func (b *buffer) grow(need int) {
	c := max(cap(b.data), DefaultInitialBufferSize)
	for c < need {
		if c > math.MaxInt/2 {
			c = need
			break
		}
		c *= 2
	}
	grown := make([]byte, len(b.data), c)
	copy(grown, b.data)
	b.data = grown
}

// bytes returns an exact-length copy of the written data.
func (b *buffer) bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *buffer) release() {
	if cap(b.data) > poolMaxCap {
		return // reject oversized
	}
	*b.pooled = b.data[:0]
	bufPool.Put(b.pooled)
}
