package element

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// bigFloatPrec is the working precision of big-decimal scalar payloads.
// Values exactly representable as float64 are stored as float64; only the
// rest carry a *big.Float, normalized to this precision.
const bigFloatPrec = 256

// normBigInt reduces an integral value to the smallest payload kind:
// int64 where it fits, uint64 above the int64 range, *big.Int beyond.
func normBigInt(v *big.Int) any {
	if v.IsInt64() {
		return v.Int64()
	}
	if v.IsUint64() {
		return v.Uint64()
	}
	return v
}

// normFloat canonicalizes float payloads so Equal and Hash agree:
// negative zero collapses to zero and NaN to one bit pattern.
func normFloat(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if v == 0 {
		return 0
	}
	return v
}

func normBigFloat(v *big.Float) any {
	if f, acc := v.Float64(); acc == big.Exact {
		return normFloat(f)
	}
	return new(big.Float).SetPrec(bigFloatPrec).Set(v)
}

func isIntegral(v any) bool {
	switch v.(type) {
	case int64, uint64, *big.Int:
		return true
	}
	return false
}

func isNaN(v any) bool {
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

func exactInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func exactUint64(f float64) (uint64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func payloadInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case uint64:
		// uint64 payloads exceed the int64 range by construction
		return 0, fmt.Errorf("%w: %d overflows int64", ErrNumber, x)
	case *big.Int:
		return 0, fmt.Errorf("%w: %s overflows int64", ErrNumber, x)
	case float64:
		i, ok := exactInt64(x)
		if !ok {
			return 0, fmt.Errorf("%w: %s is not an int64", ErrNumber, formatFloat(x))
		}
		return i, nil
	case *big.Float:
		if !x.IsInt() {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrNumber, x.Text('g', -1))
		}
		i, acc := x.Int64()
		if acc != big.Exact {
			return 0, fmt.Errorf("%w: %s overflows int64", ErrNumber, x.Text('g', -1))
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNumber, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrNumber, payloadString(v))
}

func payloadUint64(v any) (uint64, error) {
	switch x := v.(type) {
	case int64:
		if x < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrNumber, x)
		}
		return uint64(x), nil
	case uint64:
		return x, nil
	case *big.Int:
		return 0, fmt.Errorf("%w: %s overflows uint64", ErrNumber, x)
	case float64:
		u, ok := exactUint64(x)
		if !ok {
			return 0, fmt.Errorf("%w: %s is not a uint64", ErrNumber, formatFloat(x))
		}
		return u, nil
	case *big.Float:
		if !x.IsInt() {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrNumber, x.Text('g', -1))
		}
		u, acc := x.Uint64()
		if acc != big.Exact {
			return 0, fmt.Errorf("%w: %s overflows uint64", ErrNumber, x.Text('g', -1))
		}
		return u, nil
	case string:
		u, err := strconv.ParseUint(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNumber, err)
		}
		return u, nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrNumber, payloadString(v))
}

func payloadFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, nil
	case float64:
		return x, nil
	case *big.Float:
		f, _ := x.Float64()
		return f, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNumber, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrNumber, payloadString(v))
}

func payloadBigInt(v any) (*big.Int, error) {
	switch x := v.(type) {
	case int64:
		return big.NewInt(x), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case *big.Int:
		return new(big.Int).Set(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: %s is not an integer", ErrNumber, formatFloat(x))
		}
		i, _ := big.NewFloat(x).Int(nil)
		return i, nil
	case *big.Float:
		if !x.IsInt() {
			return nil, fmt.Errorf("%w: %s is not an integer", ErrNumber, x.Text('g', -1))
		}
		i, _ := x.Int(nil)
		return i, nil
	case string:
		i, ok := new(big.Int).SetString(x, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrNumber, x)
		}
		return i, nil
	}
	return nil, fmt.Errorf("%w: %s is not a number", ErrNumber, payloadString(v))
}

func payloadBigFloat(v any) (*big.Float, error) {
	switch x := v.(type) {
	case int64:
		return new(big.Float).SetPrec(bigFloatPrec).SetInt64(x), nil
	case uint64:
		return new(big.Float).SetPrec(bigFloatPrec).SetUint64(x), nil
	case *big.Int:
		return new(big.Float).SetPrec(bigFloatPrec).SetInt(x), nil
	case float64:
		if math.IsNaN(x) {
			return nil, fmt.Errorf("%w: NaN has no big decimal form", ErrNumber)
		}
		return new(big.Float).SetPrec(bigFloatPrec).SetFloat64(x), nil
	case *big.Float:
		return new(big.Float).SetPrec(bigFloatPrec).Set(x), nil
	case string:
		f, ok := new(big.Float).SetPrec(bigFloatPrec).SetString(x)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a number", ErrNumber, x)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s is not a number", ErrNumber, payloadString(v))
}

func payloadBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		if strings.EqualFold(x, "true") {
			return true, nil
		}
		if strings.EqualFold(x, "false") {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is not a bool", ErrNumber, x)
	}
	return false, fmt.Errorf("%w: %s is not a bool", ErrNumber, payloadString(v))
}

func payloadString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x)
	case *big.Int:
		return x.String()
	case *big.Float:
		return x.Text('g', -1)
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// scalarEqual compares two normalized payloads. Normalization guarantees
// a value has exactly one payload kind, so kinds may be compared directly;
// the only special case is float NaN, which equals itself here to keep
// equality reflexive.
func scalarEqual(a, b any) bool {
	switch x := a.(type) {
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int64:
		y, ok := b.(int64)
		return ok && x == y
	case uint64:
		y, ok := b.(uint64)
		return ok && x == y
	case *big.Int:
		y, ok := b.(*big.Int)
		return ok && x.Cmp(y) == 0
	case float64:
		y, ok := b.(float64)
		if !ok {
			return false
		}
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	case *big.Float:
		y, ok := b.(*big.Float)
		return ok && x.Cmp(y) == 0
	}
	return false
}

// scalarFamily ranks payload kinds for ordering: bool < number < string.
func scalarFamily(v any) int {
	switch v.(type) {
	case bool:
		return 0
	case int64, uint64, float64, *big.Int, *big.Float:
		return 1
	default:
		return 2
	}
}

// numCompare orders two numeric payloads by value. NaN sorts before
// everything; on a value tie an integral payload sorts before a floating
// one so the order is total and agrees with Equal. Integral pairs are
// compared exactly, without rounding through big.Float.
func numCompare(a, b any) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	aInt, bInt := isIntegral(a), isIntegral(b)
	if aInt && bInt {
		return bigIntOf(a).Cmp(bigIntOf(b))
	}
	if c := bigFloatOf(a).Cmp(bigFloatOf(b)); c != 0 {
		return c
	}
	switch {
	case aInt == bInt:
		return 0
	case aInt:
		return -1
	default:
		return 1
	}
}

func bigIntOf(v any) *big.Int {
	switch x := v.(type) {
	case int64:
		return big.NewInt(x)
	case uint64:
		return new(big.Int).SetUint64(x)
	case *big.Int:
		return x
	}
	return new(big.Int)
}

func bigFloatOf(v any) *big.Float {
	switch x := v.(type) {
	case int64:
		return new(big.Float).SetPrec(bigFloatPrec).SetInt64(x)
	case uint64:
		return new(big.Float).SetPrec(bigFloatPrec).SetUint64(x)
	case *big.Int:
		return new(big.Float).SetPrec(bigFloatPrec).SetInt(x)
	case float64:
		return new(big.Float).SetPrec(bigFloatPrec).SetFloat64(x)
	case *big.Float:
		return x
	}
	return new(big.Float)
}
