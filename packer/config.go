package packer

import (
	"fmt"
	"strings"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/template"
)

// Endian selects the byte order of directives without an explicit order.
type Endian uint8

const (
	EndianHost Endian = iota
	EndianLittle
	EndianBig
)

func (e Endian) String() string {
	switch e {
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	default:
		return "host"
	}
}

// ParseEndian parses "host", "little" or "big".
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(s) {
	case "", "host", "native":
		return EndianHost, nil
	case "little", "le":
		return EndianLittle, nil
	case "big", "be":
		return EndianBig, nil
	default:
		return EndianHost, errors.InvalidInput(errors.PhaseInit, fmt.Sprintf("unknown byte order %q", s))
	}
}

// Size limits.
const (
	DefaultInitialBufferSize = 128
	DefaultMaxSize           = 1 << 30 // 1 GB
	DefaultMaxFill           = 1 << 20
)

// Config holds codec configuration. Zero fields take the host values.
type Config struct {
	// Endian overrides the detected host byte order.
	Endian Endian

	// IntSize is sizeof(int) for I and i.
	IntSize int

	// LongSize is sizeof(long) for L_ and l_.
	LongSize int

	// PointerSize is sizeof(intptr_t) for J and j.
	PointerSize int

	// NativeIntBits is the width of the host integer unpacked values must fit.
	// 0 means 64; 32 emulates a 32-bit runtime.
	NativeIntBits int

	// InitialBufferSize is the starting capacity of pack output buffers.
	InitialBufferSize int

	// MaxSize caps the length of a single pack result.
	MaxSize int

	// MaxFill caps the nil values a single unpack appends for input that ran out.
	MaxFill int
}

func (c *Config) validate() error {
	switch c.NativeIntBits {
	case 0, 32, 64:
	default:
		return errors.InvalidInput(errors.PhaseInit,
			fmt.Sprintf("native integer width must be 32 or 64 bits, got %d", c.NativeIntBits))
	}
	if c.InitialBufferSize < 0 || c.MaxSize < 0 || c.MaxFill < 0 {
		return errors.InvalidInput(errors.PhaseInit, "buffer sizes must not be negative")
	}
	return nil
}

// platform resolves the template platform from the host and the overrides.
func (c *Config) platform() template.Platform {
	p := template.HostPlatform()
	switch c.Endian {
	case EndianLittle:
		p.LittleEndian = true
	case EndianBig:
		p.LittleEndian = false
	}
	if c.IntSize != 0 {
		p.IntSize = c.IntSize
	}
	if c.LongSize != 0 {
		p.LongSize = c.LongSize
	}
	if c.PointerSize != 0 {
		p.PointerSize = c.PointerSize
	}
	return p
}
