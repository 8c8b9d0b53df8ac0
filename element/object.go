package element

import (
	"fmt"
	"iter"
	"math/big"
	"slices"

	"github.com/goccy/go-yaml"
)

// Object is the ordered mapping variant: string keys to Elements, keys
// unique, insertion order preserved. Re-adding an existing key replaces
// its value in place and keeps the original position. A stored value is
// never a nil Element: Add and its sugar normalize nil to Null{}; the
// stricter Map view rejects nil instead (see Map).
//
// Equality and Hash are order-insensitive: two Objects holding the same
// key/value pairs are equal whatever order they were built in.
type Object struct {
	keys  []string
	vals  []Element
	index map[string]int
}

func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

func (o *Object) Type() Type { return ObjectType }

func (o *Object) Clone() Element {
	res := NewObject()
	for i, k := range o.keys {
		res.Add(k, o.vals[i].Clone())
	}
	return res
}

func (o *Object) Native() any {
	res := make(yaml.MapSlice, 0, len(o.keys))
	for i, k := range o.keys {
		res = append(res, yaml.MapItem{Key: k, Value: o.vals[i].Native()})
	}
	return res
}

func (o *Object) Equal(other Element) bool {
	oo, ok := other.(*Object)
	if !ok || len(o.keys) != len(oo.keys) {
		return false
	}
	for i, k := range o.keys {
		j, ok := oo.index[k]
		if !ok || !o.vals[i].Equal(oo.vals[j]) {
			return false
		}
	}
	return true
}

func (o *Object) Len() int { return len(o.keys) }

func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) Get(key string) (Element, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// GetScalar returns the member at key narrowed to *Scalar. An absent key
// fails with ErrNotExist, a different variant with ErrType.
func (o *Object) GetScalar(key string) (*Scalar, error) {
	el, err := o.member(key)
	if err != nil {
		return nil, err
	}
	res, err := el.AsScalar()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", key, err)
	}
	return res, nil
}

// GetArray is GetScalar for *Array.
func (o *Object) GetArray(key string) (*Array, error) {
	el, err := o.member(key)
	if err != nil {
		return nil, err
	}
	res, err := el.AsArray()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", key, err)
	}
	return res, nil
}

// GetObject is GetScalar for *Object.
func (o *Object) GetObject(key string) (*Object, error) {
	el, err := o.member(key)
	if err != nil {
		return nil, err
	}
	res, err := el.AsObject()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", key, err)
	}
	return res, nil
}

func (o *Object) member(key string) (Element, error) {
	el, ok := o.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotExist, key)
	}
	return el, nil
}

// Add upserts key. A new key appends at the end; an existing key keeps
// its position and has its value replaced. A nil element normalizes to
// Null{}.
func (o *Object) Add(key string, el Element) {
	el = orNull(el)
	if i, ok := o.index[key]; ok {
		o.vals[i] = el
		return
	}
	if o.index == nil {
		o.index = map[string]int{}
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, el)
}

func (o *Object) AddString(key, v string)        { o.Add(key, FromString(v)) }
func (o *Object) AddBool(key string, v bool)     { o.Add(key, FromBool(v)) }
func (o *Object) AddInt(key string, v int64)     { o.Add(key, FromInt(v)) }
func (o *Object) AddFloat(key string, v float64) { o.Add(key, FromFloat(v)) }
func (o *Object) AddRune(key string, r rune)     { o.Add(key, FromRune(r)) }

// Remove deletes key and returns its value, reporting absence.
func (o *Object) Remove(key string) (Element, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	el := o.vals[i]
	o.keys = slices.Delete(o.keys, i, i+1)
	o.vals = slices.Delete(o.vals, i, i+1)
	delete(o.index, key)
	for k, j := range o.index {
		if j > i {
			o.index[k] = j - 1
		}
	}
	return el, true
}

// Entries iterates key/value pairs in insertion order.
func (o *Object) Entries() iter.Seq2[string, Element] {
	return func(yield func(string, Element) bool) {
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}

func (o *Object) IsNull() bool   { return false }
func (o *Object) IsScalar() bool { return false }
func (o *Object) IsArray() bool  { return false }
func (o *Object) IsObject() bool { return true }

func (o *Object) AsScalar() (*Scalar, error) { return nil, errNarrow(ScalarType, ObjectType) }
func (o *Object) AsArray() (*Array, error)   { return nil, errNarrow(ArrayType, ObjectType) }
func (o *Object) AsObject() (*Object, error) { return o, nil }

func (o *Object) AsBool() (bool, error)           { return false, errUnsupported(ObjectType) }
func (o *Object) AsString() (string, error)       { return "", errUnsupported(ObjectType) }
func (o *Object) AsInt() (int, error)             { return 0, errUnsupported(ObjectType) }
func (o *Object) AsInt8() (int8, error)           { return 0, errUnsupported(ObjectType) }
func (o *Object) AsInt16() (int16, error)         { return 0, errUnsupported(ObjectType) }
func (o *Object) AsInt32() (int32, error)         { return 0, errUnsupported(ObjectType) }
func (o *Object) AsInt64() (int64, error)         { return 0, errUnsupported(ObjectType) }
func (o *Object) AsUint64() (uint64, error)       { return 0, errUnsupported(ObjectType) }
func (o *Object) AsFloat32() (float32, error)     { return 0, errUnsupported(ObjectType) }
func (o *Object) AsFloat64() (float64, error)     { return 0, errUnsupported(ObjectType) }
func (o *Object) AsBigInt() (*big.Int, error)     { return nil, errUnsupported(ObjectType) }
func (o *Object) AsBigFloat() (*big.Float, error) { return nil, errUnsupported(ObjectType) }
func (o *Object) AsRune() (rune, error)           { return 0, errUnsupported(ObjectType) }

func (o *Object) String() string { return render(o) }

// Map returns a live mapping view over the object's storage. Mutations
// through either side are visible to the other. Unlike Add, the view's
// Put rejects nil elements with ErrNil.
func (o *Object) Map() *Map { return &Map{o: o} }

// Map is the strict live view of an Object.
type Map struct {
	o *Object
}

func (m *Map) Len() int { return m.o.Len() }

func (m *Map) Has(key string) bool { return m.o.Has(key) }

func (m *Map) Keys() []string { return m.o.Keys() }

func (m *Map) Get(key string) (Element, bool) { return m.o.Get(key) }

// Put upserts key and returns the previous value, if any.
func (m *Map) Put(key string, el Element) (Element, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: map view forbids nil", ErrNil)
	}
	prev, _ := m.o.Get(key)
	m.o.Add(key, el)
	return prev, nil
}

func (m *Map) Delete(key string) (Element, bool) { return m.o.Remove(key) }

func (m *Map) All() iter.Seq2[string, Element] { return m.o.Entries() }
