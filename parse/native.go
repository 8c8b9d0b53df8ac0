package parse

import (
	"encoding/json"
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/signadot/yamltree/debug"
	"github.com/signadot/yamltree/element"

	"github.com/goccy/go-yaml"
)

// FromNative converts a plain Go value into an element tree. It
// accepts the value shapes Go decoders commonly produce, namely nil,
// bool, string, any integer or float width, *big.Int, *big.Float,
// json.Number, []any, map[string]any, map[any]any and yaml.MapSlice.
// Elements pass through as deep copies, so the result never aliases
// the input. yaml.MapSlice keeps its order while unordered maps come
// out with sorted keys. Values outside this set, and mapping keys
// that are not strings, fail with ErrMalformed. Nesting past the
// configured depth fails with ErrExhausted, which also catches cyclic
// input.
func FromNative(v any, opts ...ParseOption) (element.Element, error) {
	pOpts := newParseOpts(opts)
	el, err := fromNative(v, 0, pOpts.maxDepth)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("converted %T into %s\n", v, el.Type())
	}
	return el, nil
}

func fromNative(v any, depth, maxDepth int) (element.Element, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: depth exceeds %d", ErrExhausted, maxDepth)
	}
	switch x := v.(type) {
	case nil:
		return element.Null{}, nil
	case element.Element:
		return x.Clone(), nil
	case yaml.MapSlice:
		res := element.NewObject()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: mapping key %v is %T, not string", ErrMalformed, item.Key, item.Key)
			}
			el, err := fromNative(item.Value, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			res.Add(key, el)
		}
		return res, nil
	case map[string]any:
		return objectFromMap(x, depth, maxDepth)
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, mv := range x {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: mapping key %v is %T, not string", ErrMalformed, k, k)
			}
			m[key] = mv
		}
		return objectFromMap(m, depth, maxDepth)
	case []any:
		res := element.NewArray()
		for _, item := range x {
			el, err := fromNative(item, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			res.Add(el)
		}
		return res, nil
	case bool:
		return element.FromBool(x), nil
	case string:
		return element.FromString(x), nil
	case int:
		return element.FromInt(int64(x)), nil
	case int8:
		return element.FromInt(int64(x)), nil
	case int16:
		return element.FromInt(int64(x)), nil
	case int32:
		return element.FromInt(int64(x)), nil
	case int64:
		return element.FromInt(x), nil
	case uint:
		return element.FromUint(uint64(x)), nil
	case uint8:
		return element.FromUint(uint64(x)), nil
	case uint16:
		return element.FromUint(uint64(x)), nil
	case uint32:
		return element.FromUint(uint64(x)), nil
	case uint64:
		return element.FromUint(x), nil
	case float32:
		return element.FromFloat(float64(x)), nil
	case float64:
		return element.FromFloat(x), nil
	case *big.Int:
		return element.FromBigInt(x), nil
	case *big.Float:
		return element.FromBigFloat(x), nil
	case json.Number:
		return numberElement(x)
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrMalformed, v)
	}
}

func objectFromMap(m map[string]any, depth, maxDepth int) (element.Element, error) {
	res := element.NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		el, err := fromNative(m[k], depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		res.Add(k, el)
	}
	return res, nil
}

// numberElement picks the narrowest scalar payload that holds n
// exactly, widening from int64 through big.Int and float64 up to
// big.Float.
func numberElement(n json.Number) (element.Element, error) {
	s := n.String()
	if i, err := n.Int64(); err == nil {
		return element.FromInt(i), nil
	}
	if z, ok := new(big.Int).SetString(s, 10); ok {
		return element.FromBigInt(z), nil
	}
	if f, err := n.Float64(); err == nil {
		return element.FromFloat(f), nil
	}
	if bf, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven); err == nil {
		return element.FromBigFloat(bf), nil
	}
	return nil, fmt.Errorf("%w: cannot convert number %q", ErrMalformed, s)
}
