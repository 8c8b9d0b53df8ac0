package eval

import "github.com/signadot/yamltree/element"

// ToAny converts el into the plain Go graph expression code works
// with: map[string]any, []any and scalar payloads. Member order is
// not represented; Native gives the order-preserving form.
func ToAny(el element.Element) any {
	switch x := el.(type) {
	case nil, element.Null:
		return nil
	case *element.Scalar:
		return x.Native()
	case *element.Array:
		res := make([]any, 0, x.Len())
		for e := range x.All() {
			res = append(res, ToAny(e))
		}
		return res
	case *element.Object:
		res := make(map[string]any, x.Len())
		for k, e := range x.Entries() {
			res[k] = ToAny(e)
		}
		return res
	default:
		panic("impossible production")
	}
}
