package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/yamltree/element"
)

// MustString renders el as trimmed YAML and panics on failure. It
// suits tests and fixed trees known to encode.
func MustString(el element.Element) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(el, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
