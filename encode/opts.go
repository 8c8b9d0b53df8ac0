package encode

import "github.com/signadot/yamltree/format"

type encState struct {
	indent int
	wire   bool
	format format.Format
	colors *Colors
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

type EncodeOption func(*encState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// Wire selects compact one-line output, flow style for YAML and
// unindented JSON.
func Wire(v bool) EncodeOption {
	return func(es *encState) { es.wire = v }
}

// EncodeFormat selects YAML (the default) or JSON output.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// EncodeColors turns on ANSI coloring. Only YAML output is colored;
// JSON output ignores this option.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
