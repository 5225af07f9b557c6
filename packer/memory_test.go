package packer

import (
	"context"
	"fmt"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/memory"
	"github.com/wippyai/binpack/value"
)

// memoryWASM exports one page of memory as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
}

func TestPackToBuffer(t *testing.T) {
	c := newLittleCodec(t)
	mem := memory.NewBuffer(16)

	n, err := c.PackTo(mem, 4, "S>a3", value.Int(7), value.String("hi"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("wrote %d bytes, want 5", n)
	}
	if got := string(mem.Bytes()[4:9]); got != "\x00\x07hi\x00" {
		t.Errorf("memory = %q", got)
	}

	vs, err := c.UnpackFrom(mem, 4, n, "S>Z*")
	if err != nil {
		t.Fatal(err)
	}
	if !value.EqualSlices(vs, vals(t, 7, "hi")) {
		t.Errorf("UnpackFrom = %v", vs)
	}
}

func TestPackToOutOfBounds(t *testing.T) {
	c := newLittleCodec(t)
	mem := memory.NewBuffer(4)

	if _, err := c.PackTo(mem, 2, "L", value.Int(1)); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("PackTo err = %v, want out_of_bounds", err)
	}
	if mem.Bytes()[2] != 0 {
		t.Error("memory modified on failure")
	}
	if _, err := c.UnpackFrom(mem, 3, 2, "C"); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("UnpackFrom err = %v, want out_of_bounds", err)
	}
	if _, err := c.UnpackFrom(mem, 0, 1, "C!"); !errors.IsKind(err, errors.KindSuffixNotAllowed) {
		t.Errorf("UnpackFrom bad template err = %v", err)
	}
}

func TestPackAlloc(t *testing.T) {
	c := newLittleCodec(t)
	mem := memory.NewBuffer(64)
	alloc := memory.NewBumpAllocator(mem, 8)

	ptr, n, err := c.PackAlloc(mem, alloc, "A*", value.String("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if ptr != 8 || n != 7 {
		t.Errorf("PackAlloc = (%d, %d), want (8, 7)", ptr, n)
	}
	if got := string(mem.Bytes()[8:15]); got != "payload" {
		t.Errorf("memory = %q", got)
	}

	ptr, n, err = c.PackAlloc(mem, alloc, "x0")
	if err != nil || ptr != 0 || n != 0 {
		t.Errorf("empty PackAlloc = (%d, %d, %v)", ptr, n, err)
	}
}

type failingAllocator struct {
	freed bool
	ptr   uint32
	err   error
}

func (a *failingAllocator) Alloc(size, align uint32) (uint32, error) {
	return a.ptr, a.err
}

func (a *failingAllocator) Free(ptr, size, align uint32) {
	a.freed = true
}

func TestPackAllocFailures(t *testing.T) {
	c := newLittleCodec(t)
	mem := memory.NewBuffer(8)

	alloc := &failingAllocator{err: fmt.Errorf("guest out of memory")}
	if _, _, err := c.PackAlloc(mem, alloc, "C", value.Int(1)); !errors.IsKind(err, errors.KindRuntime) {
		t.Errorf("alloc failure err = %v", err)
	}

	alloc = &failingAllocator{ptr: 6}
	_, _, err := c.PackAlloc(mem, alloc, "L", value.Int(1))
	if !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("bad pointer err = %v", err)
	}
	if !alloc.freed {
		t.Error("allocation not freed after failed write")
	}
}

func TestPackToWazeroMemory(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	mem := memory.Wrap(mod.ExportedMemory("memory"))

	c := newLittleCodec(t)
	n, err := c.PackTo(mem, 1024, "NnU", value.Int(0xdeadbeef), value.Int(80), value.Int(0x20ac))
	if err != nil {
		t.Fatal(err)
	}
	if n != 9 {
		t.Errorf("wrote %d bytes, want 9", n)
	}

	raw, ok := mod.ExportedMemory("memory").Read(1024, 4)
	if !ok || string(raw) != "\xde\xad\xbe\xef" {
		t.Errorf("guest bytes = % x", raw)
	}

	vs, err := c.UnpackFrom(mem, 1024, n, "NnU")
	if err != nil {
		t.Fatal(err)
	}
	if !value.EqualSlices(vs, vals(t, 0xdeadbeef, 80, 0x20ac)) {
		t.Errorf("UnpackFrom = %v", vs)
	}

	if _, err := c.PackTo(mem, 65534, "N", value.Int(1)); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("PackTo past end err = %v", err)
	}
}
