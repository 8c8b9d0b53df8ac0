package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/yamltree/debug"
	"github.com/signadot/yamltree/element"

	"github.com/goccy/go-yaml"
)

// Parse decodes one YAML document into an element tree. Mappings keep
// their document order. An empty document, a comment-only document and
// an explicit top-level null all fail with ErrSyntax: a document must
// hold a value, null only occurs inside one.
func Parse(d []byte, opts ...ParseOption) (element.Element, error) {
	pOpts := newParseOpts(opts)
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, pOpts.DecodeOpts()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: did not consume the entire document", ErrSyntax)
	}
	el, err := fromNative(v, 0, pOpts.maxDepth)
	if err != nil {
		if errors.Is(err, ErrExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes into %s:\n%s\n", len(d), el.Type(), debug.YAML{Element: el})
	}
	return el, nil
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (element.Element, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r fully and parses the result. There is no
// streaming: a read failure is ErrIO and no partial document is ever
// produced.
func ParseReader(r io.Reader, opts ...ParseOption) (element.Element, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, opts...)
}
