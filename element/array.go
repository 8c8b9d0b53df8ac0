package element

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
)

// Array is the ordered sequence variant. Members keep insertion order;
// duplicates and mixed types are allowed. A stored member is never a nil
// Element: Array's own insertion methods normalize nil to Null{}. The
// stricter List view rejects nil instead (see List).
type Array struct {
	elems []Element
}

func NewArray(els ...Element) *Array {
	a := &Array{}
	a.Add(els...)
	return a
}

func (a *Array) Type() Type { return ArrayType }

func (a *Array) Clone() Element {
	res := &Array{elems: make([]Element, len(a.elems))}
	for i, el := range a.elems {
		res.elems[i] = el.Clone()
	}
	return res
}

func (a *Array) Native() any {
	res := make([]any, len(a.elems))
	for i, el := range a.elems {
		res[i] = el.Native()
	}
	return res
}

func (a *Array) Equal(o Element) bool {
	ao, ok := o.(*Array)
	if !ok || len(a.elems) != len(ao.elems) {
		return false
	}
	for i, el := range a.elems {
		if !el.Equal(ao.elems[i]) {
			return false
		}
	}
	return true
}

func (a *Array) Len() int { return len(a.elems) }

// Get returns the member at i. It panics if i is out of range, like a
// slice index.
func (a *Array) Get(i int) Element { return a.elems[i] }

// Set replaces the member at i and returns the previous occupant. A nil
// element normalizes to Null{}. It panics if i is out of range.
func (a *Array) Set(i int, el Element) Element {
	prev := a.elems[i]
	a.elems[i] = orNull(el)
	return prev
}

// Add appends elements in order, normalizing nil to Null{}.
func (a *Array) Add(els ...Element) {
	for _, el := range els {
		a.elems = append(a.elems, orNull(el))
	}
}

func (a *Array) AddString(v string) { a.Add(FromString(v)) }
func (a *Array) AddBool(v bool)     { a.Add(FromBool(v)) }
func (a *Array) AddInt(v int64)     { a.Add(FromInt(v)) }
func (a *Array) AddFloat(v float64) { a.Add(FromFloat(v)) }
func (a *Array) AddRune(r rune)     { a.Add(FromRune(r)) }

// AddAll appends every member of other.
func (a *Array) AddAll(other *Array) {
	if other == nil {
		return
	}
	a.elems = append(a.elems, other.elems...)
}

// Insert places el at index i, shifting later members right. A nil
// element normalizes to Null{}. It panics if i is out of range (i may
// equal Len, which appends).
func (a *Array) Insert(i int, el Element) {
	a.elems = slices.Insert(a.elems, i, orNull(el))
}

// Remove deletes the member at i and returns it, shifting later members
// left. It panics if i is out of range.
func (a *Array) Remove(i int) Element {
	el := a.elems[i]
	a.elems = slices.Delete(a.elems, i, i+1)
	return el
}

// RemoveElement deletes the first member structurally equal to el and
// reports whether a removal happened.
func (a *Array) RemoveElement(el Element) bool {
	el = orNull(el)
	for i, e := range a.elems {
		if e.Equal(el) {
			a.elems = slices.Delete(a.elems, i, i+1)
			return true
		}
	}
	return false
}

// Contains reports whether any member is structurally equal to el.
func (a *Array) Contains(el Element) bool {
	el = orNull(el)
	for _, e := range a.elems {
		if e.Equal(el) {
			return true
		}
	}
	return false
}

// All iterates members in order.
func (a *Array) All() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, el := range a.elems {
			if !yield(el) {
				return
			}
		}
	}
}

func (a *Array) IsNull() bool   { return false }
func (a *Array) IsScalar() bool { return false }
func (a *Array) IsArray() bool  { return true }
func (a *Array) IsObject() bool { return false }

func (a *Array) AsScalar() (*Scalar, error) { return nil, errNarrow(ScalarType, ArrayType) }
func (a *Array) AsArray() (*Array, error)   { return a, nil }
func (a *Array) AsObject() (*Object, error) { return nil, errNarrow(ObjectType, ArrayType) }

// single implements the single-element shortcut: scalar conversions on an
// array of size exactly 1 delegate to the sole member.
func (a *Array) single() (Element, error) {
	if len(a.elems) == 1 {
		return a.elems[0], nil
	}
	return nil, fmt.Errorf("%w: array must have size 1, but has size %d", ErrType, len(a.elems))
}

func (a *Array) AsBool() (bool, error) {
	el, err := a.single()
	if err != nil {
		return false, err
	}
	return el.AsBool()
}

func (a *Array) AsString() (string, error) {
	el, err := a.single()
	if err != nil {
		return "", err
	}
	return el.AsString()
}

func (a *Array) AsInt() (int, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsInt()
}

func (a *Array) AsInt8() (int8, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsInt8()
}

func (a *Array) AsInt16() (int16, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsInt16()
}

func (a *Array) AsInt32() (int32, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsInt32()
}

func (a *Array) AsInt64() (int64, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsInt64()
}

func (a *Array) AsUint64() (uint64, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsUint64()
}

func (a *Array) AsFloat32() (float32, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsFloat32()
}

func (a *Array) AsFloat64() (float64, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsFloat64()
}

func (a *Array) AsBigInt() (*big.Int, error) {
	el, err := a.single()
	if err != nil {
		return nil, err
	}
	return el.AsBigInt()
}

func (a *Array) AsBigFloat() (*big.Float, error) {
	el, err := a.single()
	if err != nil {
		return nil, err
	}
	return el.AsBigFloat()
}

func (a *Array) AsRune() (rune, error) {
	el, err := a.single()
	if err != nil {
		return 0, err
	}
	return el.AsRune()
}

func (a *Array) String() string { return render(a) }

// List returns a live sequence view over the array's storage. Mutations
// through either side are visible to the other. Unlike the Array's own
// insertion methods, the view rejects nil elements with ErrNil.
func (a *Array) List() *List { return &List{a: a} }

// List is the strict live view of an Array.
type List struct {
	a *Array
}

func (l *List) Len() int          { return l.a.Len() }
func (l *List) Get(i int) Element { return l.a.Get(i) }

func (l *List) Set(i int, el Element) (Element, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: list view forbids nil", ErrNil)
	}
	return l.a.Set(i, el), nil
}

func (l *List) Add(el Element) error {
	if el == nil {
		return fmt.Errorf("%w: list view forbids nil", ErrNil)
	}
	l.a.Add(el)
	return nil
}

func (l *List) Insert(i int, el Element) error {
	if el == nil {
		return fmt.Errorf("%w: list view forbids nil", ErrNil)
	}
	l.a.Insert(i, el)
	return nil
}

func (l *List) Remove(i int) Element { return l.a.Remove(i) }

func (l *List) All() iter.Seq[Element] { return l.a.All() }
