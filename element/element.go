package element

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-yaml"
)

// Element is a node in a YAML document tree. Exactly four types implement
// it: Null, *Scalar, *Array and *Object. The dynamic type is also
// available as the Type tag for switching.
//
// The As* conversion family is defined on every variant so any node can be
// queried optimistically: a *Scalar coerces its payload, an *Array of size
// exactly 1 delegates to its sole member, and everything else fails with a
// typed error. See the package documentation for the coercion rules.
type Element interface {
	Type() Type

	// Clone returns a structural deep copy. Null and *Scalar are
	// immutable and return themselves.
	Clone() Element

	// Native returns the plain engine-native equivalent of the tree:
	// nil, a scalar value, []any, or yaml.MapSlice (ordered).
	Native() any

	// Equal reports structural equality. Hash is consistent with it:
	// equal elements hash equal within a process.
	Equal(o Element) bool
	Hash() uint64

	IsNull() bool
	IsScalar() bool
	IsArray() bool
	IsObject() bool

	// Narrowing accessors. They fail with ErrType when the dynamic
	// variant differs.
	AsScalar() (*Scalar, error)
	AsArray() (*Array, error)
	AsObject() (*Object, error)

	// Scalar conversions.
	AsBool() (bool, error)
	AsString() (string, error)
	AsInt() (int, error)
	AsInt8() (int8, error)
	AsInt16() (int16, error)
	AsInt32() (int32, error)
	AsInt64() (int64, error)
	AsUint64() (uint64, error)
	AsFloat32() (float32, error)
	AsFloat64() (float64, error)
	AsBigInt() (*big.Int, error)
	AsBigFloat() (*big.Float, error)
	AsRune() (rune, error)

	// String renders the element as YAML text through the engine,
	// without a trailing newline.
	fmt.Stringer
}

var (
	_ Element = Null{}
	_ Element = (*Scalar)(nil)
	_ Element = (*Array)(nil)
	_ Element = (*Object)(nil)
)

// orNull maps a nil Element to Null{}. All lenient insertion paths
// (Array.Add, Object.Add and their sugar) pass through it; the strict
// List/Map views reject nil instead.
func orNull(el Element) Element {
	if el == nil {
		return Null{}
	}
	return el
}

func render(el Element) string {
	d, err := yaml.Marshal(el.Native())
	if err != nil {
		return fmt.Sprintf("<encode error: %v>", err)
	}
	return strings.TrimRight(string(d), "\n")
}
