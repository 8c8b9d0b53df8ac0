package element

import (
	"fmt"
	"math"
	"math/big"
)

// Scalar is the immutable leaf variant. It wraps exactly one value of the
// closed payload set {bool, string, int64, uint64, float64, *big.Int,
// *big.Float}; constructors normalize into that set (see the payload
// invariants in the package documentation). The payload is never nil.
type Scalar struct {
	val any
}

func FromString(v string) *Scalar {
	return &Scalar{val: v}
}

func FromBool(v bool) *Scalar {
	return &Scalar{val: v}
}

func FromInt(v int64) *Scalar {
	return &Scalar{val: v}
}

func FromUint(v uint64) *Scalar {
	if v <= math.MaxInt64 {
		return &Scalar{val: int64(v)}
	}
	return &Scalar{val: v}
}

func FromFloat(v float64) *Scalar {
	return &Scalar{val: normFloat(v)}
}

// FromRune wraps a character as a one-rune string scalar.
func FromRune(r rune) *Scalar {
	return &Scalar{val: string(r)}
}

func FromBigInt(v *big.Int) *Scalar {
	if v == nil {
		v = new(big.Int)
	}
	return &Scalar{val: normBigInt(new(big.Int).Set(v))}
}

func FromBigFloat(v *big.Float) *Scalar {
	if v == nil {
		v = new(big.Float)
	}
	return &Scalar{val: normBigFloat(v)}
}

func (s *Scalar) Type() Type { return ScalarType }

// Clone returns s itself: scalars are immutable.
func (s *Scalar) Clone() Element { return s }

// Native returns the payload in engine-native form. Integers beyond the
// uint64 range and floats beyond exact float64 have no engine-native
// numeric form and come back as their decimal text.
func (s *Scalar) Native() any {
	switch x := s.val.(type) {
	case *big.Int:
		return x.String()
	case *big.Float:
		return x.Text('g', -1)
	}
	return s.val
}

func (s *Scalar) Equal(o Element) bool {
	so, ok := o.(*Scalar)
	if !ok {
		return false
	}
	return scalarEqual(s.val, so.val)
}

func (s *Scalar) IsNull() bool   { return false }
func (s *Scalar) IsScalar() bool { return true }
func (s *Scalar) IsArray() bool  { return false }
func (s *Scalar) IsObject() bool { return false }

func (s *Scalar) AsScalar() (*Scalar, error) { return s, nil }
func (s *Scalar) AsArray() (*Array, error)   { return nil, errNarrow(ArrayType, ScalarType) }
func (s *Scalar) AsObject() (*Object, error) { return nil, errNarrow(ObjectType, ScalarType) }

// IsBool reports whether the payload is a boolean.
func (s *Scalar) IsBool() bool {
	_, ok := s.val.(bool)
	return ok
}

// IsNumber reports whether the payload is numeric.
func (s *Scalar) IsNumber() bool {
	return scalarFamily(s.val) == 1
}

// IsString reports whether the payload is a string.
func (s *Scalar) IsString() bool {
	_, ok := s.val.(string)
	return ok
}

func (s *Scalar) AsBool() (bool, error) {
	return payloadBool(s.val)
}

func (s *Scalar) AsString() (string, error) {
	return payloadString(s.val), nil
}

func (s *Scalar) AsInt() (int, error) {
	i, err := payloadInt64(s.val)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, fmt.Errorf("%w: %d overflows int", ErrNumber, i)
	}
	return int(i), nil
}

func (s *Scalar) AsInt8() (int8, error) {
	i, err := payloadInt64(s.val)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt8 || i > math.MaxInt8 {
		return 0, fmt.Errorf("%w: %d overflows int8", ErrNumber, i)
	}
	return int8(i), nil
}

func (s *Scalar) AsInt16() (int16, error) {
	i, err := payloadInt64(s.val)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt16 || i > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %d overflows int16", ErrNumber, i)
	}
	return int16(i), nil
}

func (s *Scalar) AsInt32() (int32, error) {
	i, err := payloadInt64(s.val)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d overflows int32", ErrNumber, i)
	}
	return int32(i), nil
}

func (s *Scalar) AsInt64() (int64, error) {
	return payloadInt64(s.val)
}

func (s *Scalar) AsUint64() (uint64, error) {
	return payloadUint64(s.val)
}

func (s *Scalar) AsFloat32() (float32, error) {
	f, err := payloadFloat64(s.val)
	if err != nil {
		return 0, err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %s overflows float32", ErrNumber, formatFloat(f))
	}
	return float32(f), nil
}

func (s *Scalar) AsFloat64() (float64, error) {
	return payloadFloat64(s.val)
}

func (s *Scalar) AsBigInt() (*big.Int, error) {
	return payloadBigInt(s.val)
}

func (s *Scalar) AsBigFloat() (*big.Float, error) {
	return payloadBigFloat(s.val)
}

// AsRune returns the first character of the scalar's string form.
func (s *Scalar) AsRune() (rune, error) {
	str := payloadString(s.val)
	if str == "" {
		return 0, fmt.Errorf("%w: empty string has no first character", ErrType)
	}
	for _, r := range str {
		return r, nil
	}
	return 0, nil
}

func (s *Scalar) String() string { return render(s) }
