package host

import (
	"encoding/binary"
	"testing"
)

func TestProbe(t *testing.T) {
	a := Probe()
	b := Probe()

	if a.Base64 != b.Base64 {
		t.Error("Probe should return the same table on every call")
	}

	want := binary.NativeEndian.Uint16([]byte{1, 0}) == 1
	if a.LittleEndian != want {
		t.Errorf("LittleEndian = %v, want %v", a.LittleEndian, want)
	}
	if a.IntSize != 4 {
		t.Errorf("IntSize = %d, want 4", a.IntSize)
	}
	if a.PointerSize != 4 && a.PointerSize != 8 {
		t.Errorf("PointerSize = %d", a.PointerSize)
	}
	if a.LongSize != 4 && a.LongSize != 8 {
		t.Errorf("LongSize = %d", a.LongSize)
	}
}

func TestBase64Table(t *testing.T) {
	tab := NewBase64Table()

	tests := []struct {
		in   byte
		want byte
	}{
		{'A', 0},
		{'Z', 25},
		{'a', 26},
		{'z', 51},
		{'0', 52},
		{'9', 61},
		{'+', 62},
		{'/', 63},
		{'=', Base64Padding},
		{'\n', Base64Ignore},
		{'-', Base64Ignore},
		{0x80, Base64Ignore},
		{0xff, Base64Ignore},
	}

	for _, tt := range tests {
		if got := tab[tt.in]; got != tt.want {
			t.Errorf("table[%q] = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
