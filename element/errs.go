package element

import (
	"errors"
	"fmt"
)

var (
	// ErrType reports an accessor applied to the wrong variant, including
	// the single-element array shortcut on an array whose size is not 1.
	ErrType = errors.New("type mismatch")

	// ErrUnsupported reports a scalar conversion on a variant that cannot
	// structurally hold a scalar (Null, Object).
	ErrUnsupported = errors.New("unsupported operation")

	// ErrNumber reports a scalar payload that cannot be parsed or
	// represented as the requested type.
	ErrNumber = errors.New("bad literal")

	// ErrNil reports a nil Element passed to a strict view (List, Map),
	// which forbids nil instead of normalizing it to Null.
	ErrNil = errors.New("nil element")

	// ErrNotExist reports a typed getter on an absent member.
	ErrNotExist = errors.New("no such member")
)

func errNarrow(want, have Type) error {
	return fmt.Errorf("%w: want %s, have %s", ErrType, want, have)
}

func errUnsupported(t Type) error {
	return fmt.Errorf("%w: no scalar value for %s", ErrUnsupported, t)
}
