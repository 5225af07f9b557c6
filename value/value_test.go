package value

import (
	"math"
	"strings"
	"testing"

	"github.com/wippyai/binpack/errors"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Nil()},
		{"int", 42, Int(42)},
		{"int8", int8(-1), Int(-1)},
		{"int16", int16(-300), Int(-300)},
		{"int32", int32(1 << 20), Int(1 << 20)},
		{"int64", int64(math.MinInt64), Int(math.MinInt64)},
		{"uint8", uint8(255), Int(255)},
		{"uint16", uint16(65535), Int(65535)},
		{"uint32", uint32(math.MaxUint32), Int(math.MaxUint32)},
		{"uint64", uint64(math.MaxInt64), Int(math.MaxInt64)},
		{"uint", uint(7), Int(7)},
		{"float32", float32(1.5), Float(1.5)},
		{"float64", -2.25, Float(-2.25)},
		{"string", "ab", String("ab")},
		{"bytes", []byte{0, 1}, String("\x00\x01")},
		{"value", Int(9), Int(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.in)
			if err != nil {
				t.Fatalf("Of(%v): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Of(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestOfErrors(t *testing.T) {
	if _, err := Of(uint64(math.MaxUint64)); !errors.IsKind(err, errors.KindRange) {
		t.Errorf("Of(MaxUint64) err = %v, want range", err)
	}
	if _, err := Of(true); !errors.IsKind(err, errors.KindType) {
		t.Errorf("Of(true) err = %v, want type", err)
	}
	_, err := OfAll(1, "a", struct{}{})
	if err == nil || !strings.Contains(err.Error(), "at [2]") {
		t.Errorf("OfAll err = %v, want path [2]", err)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want int64
		kind errors.Kind
		msg  string
	}{
		{"integer", Int(-5), -5, "", ""},
		{"float truncates", Float(3.9), 3, "", ""},
		{"negative float truncates", Float(-3.9), -3, "", ""},
		{"nan", Float(math.NaN()), 0, errors.KindRange, "out of range of integer"},
		{"inf", Float(math.Inf(1)), 0, errors.KindRange, "out of range of integer"},
		{"huge", Float(1e300), 0, errors.KindRange, "out of range of integer"},
		{"string", String("1"), 0, errors.KindType, "can't convert String into Integer"},
		{"nil", Nil(), 0, errors.KindType, "can't convert NilClass into Integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.ToInt()
			if tt.kind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("ToInt = %d, want %d", got, tt.want)
				}
				return
			}
			if !errors.IsKind(err, tt.kind) {
				t.Fatalf("err = %v, want kind %s", err, tt.kind)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %q, want %q", err, tt.msg)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	if f, err := Int(3).ToFloat(); err != nil || f != 3 {
		t.Errorf("Int(3).ToFloat = %v, %v", f, err)
	}
	if f, err := Float(0.5).ToFloat(); err != nil || f != 0.5 {
		t.Errorf("Float(0.5).ToFloat = %v, %v", f, err)
	}
	_, err := String("x").ToFloat()
	if errors.ClassOf(err) != errors.ClassType {
		t.Errorf("String.ToFloat class = %s", errors.ClassOf(err))
	}
}

func TestToStr(t *testing.T) {
	if s, err := String("ab").ToStr(); err != nil || s != "ab" {
		t.Errorf("ToStr = %q, %v", s, err)
	}
	for _, v := range []Value{Int(1), Float(1), Nil()} {
		_, err := v.ToStr()
		if errors.ClassOf(err) != errors.ClassType {
			t.Fatalf("%s.ToStr class = %s", v.ClassName(), errors.ClassOf(err))
		}
		want := "cannot convert " + v.ClassName() + " to expected string type"
		if !strings.HasSuffix(err.Error(), want) {
			t.Errorf("err = %q, want suffix %q", err, want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Int(-7), "-7"},
		{Float(1.5), "1.5"},
		{String("a\x00"), `"a\x00"`},
		{Nil(), "nil"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Float(math.NaN()).Equal(Float(math.NaN())) {
		t.Error("NaN should equal NaN")
	}
	if Int(1).Equal(Float(1)) {
		t.Error("Integer 1 should not equal Float 1")
	}
	if !Nil().Equal(Value{}) {
		t.Error("zero Value should be nil")
	}
	if !EqualSlices([]Value{Int(1), Nil()}, []Value{Int(1), Nil()}) {
		t.Error("EqualSlices mismatch")
	}
	if EqualSlices([]Value{Int(1)}, []Value{Int(1), Nil()}) {
		t.Error("EqualSlices length mismatch not detected")
	}
}

func TestInterface(t *testing.T) {
	if Int(3).Interface() != int64(3) {
		t.Error("Int interface")
	}
	if Float(2).Interface() != float64(2) {
		t.Error("Float interface")
	}
	if String("s").Interface() != "s" {
		t.Error("String interface")
	}
	if Nil().Interface() != nil {
		t.Error("Nil interface")
	}
}
