// Package element provides the document tree for YAML values.
//
// # Overview
//
// The element package defines the data structures for representing YAML
// documents as a tree. All documents (whether parsed from text, created
// programmatically, or converted from native Go values) are represented
// as Element trees.
//
// Element is a small closed interface: exactly four types implement it.
// The tree contains no position information from input documents, making
// it purely semantic.
//
// # Element Variants
//
// The dynamic type of an Element is one of:
//
//   - Null: the null value
//   - *Scalar: a boolean, number, or string
//   - *Array: an ordered list of elements
//   - *Object: key-value pairs with string keys, insertion ordered
//
// Type() returns the corresponding Type tag (NullType, ScalarType,
// ArrayType, ObjectType) for switching without a type assertion.
//
// # Creating Elements
//
// Use constructor functions to create elements:
//
//	s := element.FromString("hello")
//	n := element.FromInt(42)
//	f := element.FromBool(true)
//	arr := element.NewArray(element.FromInt(1), element.FromInt(2))
//	obj := element.NewObject()
//	obj.AddString("key", "value")
//
// # Scalar Payloads
//
// A Scalar stores its value in exactly one of a closed set of payload
// kinds, chosen at construction:
//
//   - bool
//   - string
//   - int64: integers representable in 64-bit signed
//   - uint64: integers above math.MaxInt64 only
//   - *big.Int: integers beyond the uint64 range only
//   - float64: floating point values
//   - *big.Float: floating point values not exactly representable as
//     float64, held at 256 bits of precision
//
// Construction normalizes toward the smallest kind: FromUint(5) stores
// an int64, FromBigInt(big.NewInt(5)) stores an int64, and a *big.Float
// that is exactly a float64 collapses to float64. Negative zero
// normalizes to positive zero and all NaNs collapse to one canonical
// NaN. Normalization gives every numeric value a single representation,
// so equality and hashing never convert.
//
// # Conversions
//
// The As* family (AsBool, AsString, AsInt, AsInt64, AsUint64, AsFloat64,
// AsBigInt, AsBigFloat, AsRune, and the narrower integer widths) is
// defined on every variant:
//
//   - A *Scalar coerces its payload. Numbers format to strings, strings
//     parse to numbers, and integer conversions range-check.
//   - An *Array of size exactly 1 delegates to its sole member. Any
//     other size fails with ErrType.
//   - Null and *Object fail with ErrUnsupported.
//
// Conversion failures wrap a sentinel error: ErrType for variant
// mismatches, ErrNumber for unparsable or out-of-range values, and
// ErrUnsupported where no scalar value exists. Test with errors.Is.
//
// # Equality, Hashing and Ordering
//
// Equal reports deep structural equality:
//
//   - Numbers compare by value within their family: FromInt(7) equals
//     FromBigInt(big.NewInt(7)), but an integral value never equals a
//     floating one, so FromInt(5) does not equal FromFloat(5).
//   - A number never equals a string: FromInt(5) does not equal
//     FromString("5").
//   - NaN equals NaN, keeping Equal reflexive.
//   - Arrays compare elementwise in order.
//   - Objects compare as key-value sets: insertion order is ignored.
//
// Hash is consistent with Equal within a process. Compare provides a
// total order that agrees with Equal:
//
//	sorted := element.Compare(a, b) < 0
//
// # Views
//
// Array and Object expose live views through List() and Map(). A view
// shares storage with its element, so mutations through either side are
// visible to the other. Views are strict about nil: List.Set, List.Add,
// List.Insert and Map.Put fail with ErrNil, where the element-level
// mutators silently normalize nil to Null{}.
//
// # Thread Safety
//
// Element trees are not thread-safe. If you need to access a tree from
// multiple goroutines, you must synchronize access yourself or clone the
// tree for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/yamltree/parse - Parses YAML text into elements
//   - github.com/signadot/yamltree/encode - Encodes elements to YAML and JSON
//   - github.com/signadot/yamltree/eval - Expression evaluation over elements
//   - github.com/signadot/yamltree/patch - Patch, merge and diff operations
package element
