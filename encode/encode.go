package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamltree/element"

	"github.com/goccy/go-yaml"
)

// Encode renders el to w. The zero configuration writes indented
// YAML; see the options for JSON, flow style and coloring. A nil
// element renders as null.
func Encode(el element.Element, w io.Writer, opts ...EncodeOption) error {
	if el == nil {
		el = element.Null{}
	}
	return Dump(el.Native(), w, opts...)
}

// Marshal renders el to bytes.
func Marshal(el element.Element, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(el, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump renders a native value, typically one obtained from an
// element's Native method. Elements are unwrapped first, so passing
// one is equivalent to Encode.
func Dump(v any, w io.Writer, opts ...EncodeOption) error {
	if el, ok := v.(element.Element); ok {
		v = el.Native()
	}
	es := newEncState(opts)
	d, err := render(v, es)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func render(v any, es *encState) ([]byte, error) {
	mOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		mOpts = append(mOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, mOpts...)
	if err != nil {
		return nil, err
	}
	if es.format.IsJSON() {
		return renderJSON(d, es)
	}
	if es.colors != nil {
		return es.colors.Sprint(d), nil
	}
	return d, nil
}

// renderJSON converts the engine's YAML output to JSON. YAML is
// rendered first so both formats see identical native trees.
func renderJSON(d []byte, es *encState) ([]byte, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, err
	}
	j = bytes.TrimRight(j, "\n")
	if es.wire {
		return append(j, '\n'), nil
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, j, "", strings.Repeat(" ", es.indent)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
