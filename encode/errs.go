package encode

import "errors"

// ErrEncode wraps every failure rendering an element or native value,
// whether it comes from the engine or from the sink being written.
var ErrEncode = errors.New("encoding error")
