package parse

import "errors"

var (
	// ErrSyntax reports input the engine rejected. Malformed-document
	// failures crossing the parse boundary wrap into it as well, so a
	// caller matching ErrSyntax catches every bad-input case.
	ErrSyntax = errors.New("syntax error")

	// ErrMalformed reports well-formed input whose shape the element
	// tree cannot hold, such as a mapping with a non-string key or an
	// unconvertible native Go value.
	ErrMalformed = errors.New("malformed document")

	// ErrIO reports a failure reading the source, not the source itself.
	ErrIO = errors.New("read error")

	// ErrExhausted reports input beyond the conversion depth limit. It
	// is fatal and never wraps into ErrSyntax.
	ErrExhausted = errors.New("resource exhaustion")
)
