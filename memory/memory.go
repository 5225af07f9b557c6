// Package memory provides the linear-memory targets packed data is moved through.
package memory

import (
	"github.com/wippyai/binpack/errors"
)

// Memory represents a linear byte-addressed memory such as a WASM module memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	Size() uint32
}

// Allocator allocates memory inside a Memory
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}

// CheckRange verifies that [offset, offset+length) lies within mem.
func CheckRange(mem Memory, offset uint32, length uint64) error {
	size := uint64(mem.Size())
	if uint64(offset)+length > size {
		return errors.OutOfBounds(errors.PhaseMemory, uint64(offset), length, size)
	}
	return nil
}

// Buffer is a Memory backed by a fixed-size byte slice.
type Buffer struct {
	data []byte
}

// NewBuffer creates a zeroed memory of size bytes.
func NewBuffer(size uint32) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the memory size in bytes.
func (b *Buffer) Size() uint32 {
	return uint32(len(b.data))
}

// Read returns a copy of length bytes at offset.
func (b *Buffer) Read(offset uint32, length uint32) ([]byte, error) {
	if err := CheckRange(b, offset, uint64(length)); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b.data[offset:])
	return out, nil
}

// Write copies data into memory at offset.
func (b *Buffer) Write(offset uint32, data []byte) error {
	if err := CheckRange(b, offset, uint64(len(data))); err != nil {
		return err
	}
	copy(b.data[offset:], data)
	return nil
}

// BumpAllocator hands out consecutive regions of a Buffer and never reuses them.
type BumpAllocator struct {
	mem  *Buffer
	next uint32
}

// NewBumpAllocator allocates from mem starting at base.
func NewBumpAllocator(mem *Buffer, base uint32) *BumpAllocator {
	return &BumpAllocator{mem: mem, next: base}
}

// Alloc reserves size bytes aligned to align.
func (a *BumpAllocator) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	ptr := (uint64(a.next) + uint64(align) - 1) / uint64(align) * uint64(align)
	if ptr+uint64(size) > uint64(a.mem.Size()) {
		return 0, errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
			Detail("out of memory allocating %d bytes", size).
			Value(size).
			Build()
	}
	a.next = uint32(ptr) + size
	return uint32(ptr), nil
}

// Free is a no-op.
func (a *BumpAllocator) Free(ptr, size, align uint32) {}
