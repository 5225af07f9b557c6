// Package host probes the process-wide facts the codec depends on.
//
// Probe runs once per process and returns an immutable Info; callers
// capture it at construction time and never mutate it afterwards.
package host

import (
	"runtime"
	"sync"
	"unsafe"
)

// Base64 decode table markers.
const (
	Base64Ignore  byte = 0xff
	Base64Padding byte = 0xfe
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base64Table maps every input byte to its 6-bit value, Base64Ignore or Base64Padding.
type Base64Table [256]byte

// Info is the immutable result of probing the host.
type Info struct {
	Base64       *Base64Table
	IntSize      int
	LongSize     int
	PointerSize  int
	LittleEndian bool
}

var (
	info     Info
	probeOne sync.Once
)

// Probe returns the host information, computing it on first use.
func Probe() Info {
	probeOne.Do(func() {
		info = probe()
	})
	return info
}

func probe() Info {
	ptr := int(unsafe.Sizeof(uintptr(0)))
	long := ptr
	if runtime.GOOS == "windows" {
		long = 4 // LLP64
	}
	return Info{
		Base64:       NewBase64Table(),
		LittleEndian: littleEndian(),
		// C int is 32 bits on every platform Go supports.
		IntSize:     4,
		LongSize:    long,
		PointerSize: ptr,
	}
}

func littleEndian() bool {
	n := uint32(1)
	return *(*byte)(unsafe.Pointer(&n)) == 1
}

// NewBase64Table builds the decode table for the standard alphabet.
func NewBase64Table() *Base64Table {
	var t Base64Table
	for i := range t {
		t[i] = Base64Ignore
	}
	for i := 0; i < len(base64Alphabet); i++ {
		t[base64Alphabet[i]] = byte(i)
	}
	t['='] = Base64Padding
	return &t
}
