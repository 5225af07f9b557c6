package packer

import (
	"go.uber.org/zap"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/memory"
	"github.com/wippyai/binpack/value"
)

// PackTo packs values into mem at offset and returns the number of bytes written.
// Nothing is written when packing fails.
func (c *Codec) PackTo(mem memory.Memory, offset uint32, format string, values ...value.Value) (uint32, error) {
	data, err := c.Pack(format, values...)
	if err != nil {
		return 0, err
	}
	if err := memory.CheckRange(mem, offset, uint64(len(data))); err != nil {
		return 0, err
	}
	if err := mem.Write(offset, data); err != nil {
		return 0, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "write packed data")
	}
	return uint32(len(data)), nil
}

// PackAlloc allocates a guest buffer, packs values into it and returns its address and length.
// An empty result allocates nothing and returns (0, 0).
func (c *Codec) PackAlloc(mem memory.Memory, alloc memory.Allocator, format string, values ...value.Value) (ptr, length uint32, err error) {
	data, err := c.Pack(format, values...)
	if err != nil {
		return 0, 0, err
	}
	if len(data) == 0 {
		return 0, 0, nil
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		return 0, 0, errors.OutOfBounds(errors.PhaseMemory, 0, uint64(len(data)), uint64(mem.Size()))
	}

	size := uint32(len(data))
	ptr, err = alloc.Alloc(size, 1)
	if err != nil {
		return 0, 0, errors.Wrap(errors.PhaseMemory, errors.KindRuntime, err, "allocate guest buffer")
	}
	if err := mem.Write(ptr, data); err != nil {
		alloc.Free(ptr, size, 1)
		return 0, 0, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "write packed data")
	}

	Logger().Debug("packed into guest memory", zap.Uint32("ptr", ptr), zap.Uint32("len", size))
	return ptr, size, nil
}

// UnpackFrom decodes length bytes of mem starting at offset.
func (c *Codec) UnpackFrom(mem memory.Memory, offset, length uint32, format string) ([]value.Value, error) {
	t, err := c.Parse(format)
	if err != nil {
		return nil, err
	}
	if err := memory.CheckRange(mem, offset, uint64(length)); err != nil {
		return nil, err
	}
	data, err := mem.Read(offset, length)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "read packed data")
	}
	return c.dec.Decode(t, data, false)
}
