package element

import "math/big"

// Null is the terminal no-payload variant. It is a value type: every
// Null{} is equal to every other and they share one hash. There is no
// shared instance to manage; construct it freely.
type Null struct{}

func (Null) Type() Type       { return NullType }
func (n Null) Clone() Element { return n }
func (Null) Native() any      { return nil }

func (Null) Equal(o Element) bool {
	_, ok := o.(Null)
	return ok
}

func (Null) IsNull() bool   { return true }
func (Null) IsScalar() bool { return false }
func (Null) IsArray() bool  { return false }
func (Null) IsObject() bool { return false }

func (Null) AsScalar() (*Scalar, error) { return nil, errNarrow(ScalarType, NullType) }
func (Null) AsArray() (*Array, error)   { return nil, errNarrow(ArrayType, NullType) }
func (Null) AsObject() (*Object, error) { return nil, errNarrow(ObjectType, NullType) }

func (Null) AsBool() (bool, error)           { return false, errUnsupported(NullType) }
func (Null) AsString() (string, error)       { return "", errUnsupported(NullType) }
func (Null) AsInt() (int, error)             { return 0, errUnsupported(NullType) }
func (Null) AsInt8() (int8, error)           { return 0, errUnsupported(NullType) }
func (Null) AsInt16() (int16, error)         { return 0, errUnsupported(NullType) }
func (Null) AsInt32() (int32, error)         { return 0, errUnsupported(NullType) }
func (Null) AsInt64() (int64, error)         { return 0, errUnsupported(NullType) }
func (Null) AsUint64() (uint64, error)       { return 0, errUnsupported(NullType) }
func (Null) AsFloat32() (float32, error)     { return 0, errUnsupported(NullType) }
func (Null) AsFloat64() (float64, error)     { return 0, errUnsupported(NullType) }
func (Null) AsBigInt() (*big.Int, error)     { return nil, errUnsupported(NullType) }
func (Null) AsBigFloat() (*big.Float, error) { return nil, errUnsupported(NullType) }
func (Null) AsRune() (rune, error)           { return 0, errUnsupported(NullType) }

func (n Null) String() string { return render(n) }
