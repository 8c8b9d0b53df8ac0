package element

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two elements. The result is 0 if
// a == b, -1 if a < b, and +1 if a > b. The order is total and agrees
// with Equal: Compare returns 0 exactly when Equal reports true.
//
// Variants order Null < Scalar < Array < Object. Scalars order booleans
// before numbers before strings. Numbers order by value with NaN first;
// on a value tie an integral payload sorts before a floating one.
func Compare(a, b Element) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Type(), b.Type()); c != 0 {
		return c
	}
	switch av := a.(type) {
	case Null:
		return 0
	case *Scalar:
		return compareScalars(av, b.(*Scalar))
	case *Array:
		return compareArrays(av, b.(*Array))
	case *Object:
		return compareObjects(av, b.(*Object))
	}
	return 0
}

func compareScalars(a, b *Scalar) int {
	fa, fb := scalarFamily(a.val), scalarFamily(b.val)
	if fa != fb {
		return cmp.Compare(fa, fb)
	}
	switch av := a.val.(type) {
	case bool:
		bv := b.val.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case string:
		return strings.Compare(av, b.val.(string))
	}
	return numCompare(a.val, b.val)
}

func compareArrays(a, b *Array) int {
	minLen := min(len(a.elems), len(b.elems))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elems), len(b.elems))
}

// compareObjects orders by the sorted key sequence, then by the values
// in that key order. Insertion order does not participate, keeping the
// order consistent with order-insensitive Equal.
func compareObjects(a, b *Object) int {
	ka, kb := a.Keys(), b.Keys()
	slices.Sort(ka)
	slices.Sort(kb)
	minLen := min(len(ka), len(kb))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(ka), len(kb)); c != 0 {
		return c
	}
	for _, k := range ka {
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return 0
}
