package eval

import "errors"

// ErrPath marks a path that cannot be parsed. A path that parses but
// does not resolve in the document fails with element.ErrNotExist
// instead, and traversal into a non-container with element.ErrType.
var ErrPath = errors.New("bad path")
