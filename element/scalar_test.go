package element

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestScalarNormalization(t *testing.T) {
	tests := []struct {
		name string
		a, b *Scalar
	}{
		{"uint collapses to int", FromUint(5), FromInt(5)},
		{"big int collapses to int", FromBigInt(big.NewInt(5)), FromInt(5)},
		{"big float collapses to float", FromBigFloat(big.NewFloat(0.5)), FromFloat(0.5)},
		{"negative zero collapses", FromFloat(math.Copysign(0, -1)), FromFloat(0)},
		{"nan is canonical", FromFloat(math.NaN()), FromFloat(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.a.Equal(tt.b) {
				t.Errorf("Equal(%v, %v) = false, want true", tt.a, tt.b)
			}
			if tt.a.Hash() != tt.b.Hash() {
				t.Errorf("Hash mismatch for equal scalars %v and %v", tt.a, tt.b)
			}
		})
	}
}

func TestScalarLargeUint(t *testing.T) {
	s := FromUint(math.MaxUint64)
	if s.Equal(FromInt(-1)) {
		t.Error("max uint64 compared equal to -1")
	}
	u, err := s.AsUint64()
	if err != nil {
		t.Fatalf("AsUint64() error: %v", err)
	}
	if u != math.MaxUint64 {
		t.Errorf("AsUint64() = %d, want %d", u, uint64(math.MaxUint64))
	}
	if _, err := s.AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf("AsInt64() error = %v, want ErrNumber", err)
	}
}

func TestScalarAsString(t *testing.T) {
	tests := []struct {
		name string
		s    *Scalar
		want string
	}{
		{"int", FromInt(42), "42"},
		{"negative int", FromInt(-7), "-7"},
		{"float", FromFloat(3.14), "3.14"},
		{"whole float", FromFloat(5), "5"},
		{"bool", FromBool(true), "true"},
		{"string", FromString("hello"), "hello"},
		{"big int", FromBigInt(new(big.Int).Lsh(big.NewInt(1), 70)), "1180591620717411303424"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.AsString()
			if err != nil {
				t.Fatalf("AsString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScalarStringToNumber(t *testing.T) {
	i, err := FromString("42").AsInt64()
	if err != nil {
		t.Fatalf("AsInt64() error: %v", err)
	}
	if i != 42 {
		t.Errorf("AsInt64() = %d, want 42", i)
	}

	f, err := FromString("3.5").AsFloat64()
	if err != nil {
		t.Fatalf("AsFloat64() error: %v", err)
	}
	if f != 3.5 {
		t.Errorf("AsFloat64() = %v, want 3.5", f)
	}

	if _, err := FromString("3.5").AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf(`AsInt64("3.5") error = %v, want ErrNumber`, err)
	}
	if _, err := FromString("pudding").AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf(`AsInt64("pudding") error = %v, want ErrNumber`, err)
	}
}

func TestScalarAsBool(t *testing.T) {
	tests := []struct {
		name    string
		s       *Scalar
		want    bool
		wantErr bool
	}{
		{"true", FromBool(true), true, false},
		{"false", FromBool(false), false, false},
		{"string true", FromString("true"), true, false},
		{"string TRUE", FromString("TRUE"), true, false},
		{"string false", FromString("False"), false, false},
		{"string junk", FromString("yes"), false, true},
		{"number", FromInt(1), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.AsBool()
			if tt.wantErr {
				if !errors.Is(err, ErrNumber) {
					t.Errorf("AsBool() error = %v, want ErrNumber", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AsBool() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AsBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScalarRangeChecks(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"int8 overflow", errOf1(FromInt(300).AsInt8())},
		{"int16 overflow", errOf1(FromInt(70000).AsInt16())},
		{"int32 overflow", errOf1(FromInt(1 << 40).AsInt32())},
		{"negative to uint", errOf1(FromInt(-1).AsUint64())},
		{"float32 overflow", errOf1(FromFloat(1e300).AsFloat32())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrNumber) {
				t.Errorf("error = %v, want ErrNumber", tt.err)
			}
		})
	}

	// In-range conversions keep their value.
	if v, err := FromInt(100).AsInt8(); err != nil || v != 100 {
		t.Errorf("AsInt8() = %d, %v; want 100, nil", v, err)
	}
	if v, err := FromFloat(math.Inf(1)).AsFloat32(); err != nil || !math.IsInf(float64(v), 1) {
		t.Errorf("AsFloat32(+Inf) = %v, %v; want +Inf, nil", v, err)
	}
}

// errOf1 discards the value of a two-result call, keeping the error.
func errOf1[T any](_ T, err error) error { return err }

func TestScalarFloatToInt(t *testing.T) {
	i, err := FromFloat(5).AsInt64()
	if err != nil {
		t.Fatalf("AsInt64() error: %v", err)
	}
	if i != 5 {
		t.Errorf("AsInt64() = %d, want 5", i)
	}
	if _, err := FromFloat(5.5).AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf("AsInt64(5.5) error = %v, want ErrNumber", err)
	}
	if _, err := FromFloat(math.Inf(1)).AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf("AsInt64(+Inf) error = %v, want ErrNumber", err)
	}
}

func TestScalarAsRune(t *testing.T) {
	tests := []struct {
		name string
		s    *Scalar
		want rune
	}{
		{"ascii", FromString("hello"), 'h'},
		{"multibyte", FromString("émile"), 'é'},
		{"from rune", FromRune('ø'), 'ø'},
		{"number", FromInt(7), '7'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.AsRune()
			if err != nil {
				t.Fatalf("AsRune() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AsRune() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := FromString("").AsRune(); !errors.Is(err, ErrType) {
		t.Errorf(`AsRune("") error = %v, want ErrType`, err)
	}
}

func TestScalarNarrowing(t *testing.T) {
	s := FromInt(1)
	if _, err := s.AsArray(); !errors.Is(err, ErrType) {
		t.Errorf("AsArray() error = %v, want ErrType", err)
	}
	if _, err := s.AsObject(); !errors.Is(err, ErrType) {
		t.Errorf("AsObject() error = %v, want ErrType", err)
	}
	got, err := s.AsScalar()
	if err != nil {
		t.Fatalf("AsScalar() error: %v", err)
	}
	if got != s {
		t.Error("AsScalar() did not return the receiver")
	}
}

func TestScalarPredicates(t *testing.T) {
	tests := []struct {
		name                    string
		s                       *Scalar
		isBool, isNumber, isStr bool
	}{
		{"bool", FromBool(true), true, false, false},
		{"int", FromInt(3), false, true, false},
		{"float", FromFloat(3.5), false, true, false},
		{"big int", FromBigInt(new(big.Int).Lsh(big.NewInt(1), 80)), false, true, false},
		{"string", FromString("3"), false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsBool(); got != tt.isBool {
				t.Errorf("IsBool() = %v, want %v", got, tt.isBool)
			}
			if got := tt.s.IsNumber(); got != tt.isNumber {
				t.Errorf("IsNumber() = %v, want %v", got, tt.isNumber)
			}
			if got := tt.s.IsString(); got != tt.isStr {
				t.Errorf("IsString() = %v, want %v", got, tt.isStr)
			}
		})
	}
}

func TestScalarBigPayloads(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	s := FromBigInt(huge)

	got, err := s.AsBigInt()
	if err != nil {
		t.Fatalf("AsBigInt() error: %v", err)
	}
	if got.Cmp(huge) != 0 {
		t.Errorf("AsBigInt() = %s, want %s", got, huge)
	}
	// The returned value is a copy.
	got.Add(got, big.NewInt(1))
	again, err := s.AsBigInt()
	if err != nil {
		t.Fatalf("AsBigInt() error: %v", err)
	}
	if again.Cmp(huge) != 0 {
		t.Error("AsBigInt() exposed internal state")
	}

	if _, err := s.AsInt64(); !errors.Is(err, ErrNumber) {
		t.Errorf("AsInt64() error = %v, want ErrNumber", err)
	}
	if _, err := s.AsUint64(); !errors.Is(err, ErrNumber) {
		t.Errorf("AsUint64() error = %v, want ErrNumber", err)
	}

	// Integers beyond float64 precision still coerce approximately.
	f, err := s.AsFloat64()
	if err != nil {
		t.Fatalf("AsFloat64() error: %v", err)
	}
	if f != math.Ldexp(1, 100) {
		t.Errorf("AsFloat64() = %v, want 2^100", f)
	}

	if native, ok := s.Native().(string); !ok || native != huge.String() {
		t.Errorf("Native() = %#v, want decimal string %q", s.Native(), huge.String())
	}
}
