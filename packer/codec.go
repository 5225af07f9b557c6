package packer

import (
	"github.com/wippyai/binpack/internal/host"
	"github.com/wippyai/binpack/template"
	"github.com/wippyai/binpack/value"
)

// Codec packs and unpacks values using format strings.
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	enc      *Encoder
	dec      *Decoder
	platform template.Platform
}

// NewCodec creates a codec for the running host.
func NewCodec() *Codec {
	c, _ := NewCodecWithConfig(nil)
	return c
}

// NewCodecWithConfig creates a codec with custom configuration.
func NewCodecWithConfig(cfg *Config) (*Codec, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	info := host.Probe()
	enc := NewEncoder()
	if cfg.InitialBufferSize > 0 {
		enc.initCap = cfg.InitialBufferSize
	}
	if cfg.MaxSize > 0 {
		enc.limit = cfg.MaxSize
	}

	bits := cfg.NativeIntBits
	if bits == 0 {
		bits = 64
	}

	maxFill := DefaultMaxFill
	if cfg.MaxFill > 0 {
		maxFill = cfg.MaxFill
	}

	return &Codec{
		enc:      enc,
		dec:      newDecoder(info.Base64, bits, maxFill),
		platform: cfg.platform(),
	}, nil
}

// Platform returns the platform templates are resolved against.
func (c *Codec) Platform() template.Platform {
	return c.platform
}

// Parse parses format for this codec's platform.
func (c *Codec) Parse(format string) (*template.Template, error) {
	return template.Parse(format, c.platform)
}

// Pack packs values according to format.
func (c *Codec) Pack(format string, values ...value.Value) ([]byte, error) {
	t, err := c.Parse(format)
	if err != nil {
		return nil, err
	}
	return c.enc.Encode(t, values)
}

// PackTemplate packs values according to a parsed template.
func (c *Codec) PackTemplate(t *template.Template, values []value.Value) ([]byte, error) {
	return c.enc.Encode(t, values)
}

// Unpack decodes data according to format.
func (c *Codec) Unpack(format string, data []byte) ([]value.Value, error) {
	t, err := c.Parse(format)
	if err != nil {
		return nil, err
	}
	return c.dec.Decode(t, data, false)
}

// UnpackTemplate decodes data according to a parsed template.
func (c *Codec) UnpackTemplate(t *template.Template, data []byte) ([]value.Value, error) {
	return c.dec.Decode(t, data, false)
}

// UnpackGroups decodes data and returns the values produced by each directive of t.
func (c *Codec) UnpackGroups(t *template.Template, data []byte) ([][]value.Value, error) {
	return c.dec.DecodeGroups(t, data)
}

// Unpack1 decodes only the first value of data, or nil if there is none.
func (c *Codec) Unpack1(format string, data []byte) (value.Value, error) {
	t, err := c.Parse(format)
	if err != nil {
		return value.Value{}, err
	}
	return c.Unpack1Template(t, data)
}

// Unpack1Template is Unpack1 for a parsed template.
func (c *Codec) Unpack1Template(t *template.Template, data []byte) (value.Value, error) {
	vs, err := c.dec.Decode(t, data, true)
	if err != nil {
		return value.Value{}, err
	}
	if len(vs) == 0 {
		return value.Nil(), nil
	}
	return vs[0], nil
}
