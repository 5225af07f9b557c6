package binpack

import (
	"github.com/wippyai/binpack/packer"
	"github.com/wippyai/binpack/value"
)

var defaultCodec = packer.NewCodec()

// Pack packs values according to format. Values may be Go integers, floats,
// strings, byte slices, nil or value.Value.
func Pack(format string, values ...any) ([]byte, error) {
	vs, err := value.OfAll(values...)
	if err != nil {
		return nil, err
	}
	return defaultCodec.Pack(format, vs...)
}

// Unpack decodes data according to format.
func Unpack(format string, data []byte) ([]value.Value, error) {
	return defaultCodec.Unpack(format, data)
}

// Unpack1 decodes the first value of data according to format.
func Unpack1(format string, data []byte) (value.Value, error) {
	return defaultCodec.Unpack1(format, data)
}
