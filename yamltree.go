// Package yamltree is a typed document-object-model for YAML. It
// parses documents into element trees, lets code inspect and mutate
// them through the element package, and renders them back through
// encode. This package carries the top level conveniences and the
// Tool pipeline; the work happens in the subpackages.
package yamltree

import (
	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/parse"
)

// Parse decodes one YAML document.
func Parse(d []byte, opts ...parse.ParseOption) (element.Element, error) {
	return parse.Parse(d, opts...)
}

// ParseString decodes one YAML document from a string.
func ParseString(s string, opts ...parse.ParseOption) (element.Element, error) {
	return parse.ParseString(s, opts...)
}

// MustParse decodes d and panics on failure. It suits fixed documents
// in tests and initialization.
func MustParse(d []byte) element.Element {
	el, err := parse.Parse(d)
	if err != nil {
		panic(err)
	}
	return el
}

// Marshal renders el as YAML.
func Marshal(el element.Element, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.Marshal(el, opts...)
}
