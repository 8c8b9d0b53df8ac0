package encode_test

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/format"
	"github.com/signadot/yamltree/parse"
)

func obj(kvs ...any) *element.Object {
	o := element.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		o.Add(kvs[i].(string), kvs[i+1].(element.Element))
	}
	return o
}

func TestMarshalExact(t *testing.T) {
	tests := []struct {
		name string
		el   element.Element
		want string
	}{
		{"int", element.FromInt(42), "42\n"},
		{"negative int", element.FromInt(-5), "-5\n"},
		{"float", element.FromFloat(3.14), "3.14\n"},
		{"bool", element.FromBool(true), "true\n"},
		{"string", element.FromString("hello"), "hello\n"},
		{"null", element.Null{}, "null\n"},
		{"flat mapping", obj(
			"a", element.FromInt(1),
			"b", element.FromString("two")), "a: 1\nb: two\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := encode.Marshal(tt.el)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("got %q, want %q", d, tt.want)
			}
		})
	}
}

// Every tree below must read back Equal to itself, which pins down
// quoting of ambiguous strings and type preservation for numbers.
func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		el   element.Element
	}{
		{"string that looks like a bool", element.FromString("true")},
		{"string that looks like a number", element.FromString("42")},
		{"string that looks like null", element.FromString("null")},
		{"empty string", element.FromString("")},
		{"multiline string", element.FromString("line one\nline two\n")},
		{"whole float stays float", element.FromFloat(5)},
		{"not a number", element.FromFloat(math.NaN())},
		{"infinity", element.FromFloat(math.Inf(1))},
		{"max uint", element.FromUint(math.MaxUint64)},
		{"empty array", element.NewArray()},
		{"empty object", element.NewObject()},
		{"null member", obj("a", element.Null{})},
		{"nested", obj(
			"name", element.FromString("alice"),
			"tags", element.NewArray(element.FromString("a"), element.FromString("b")),
			"meta", obj("depth", element.FromInt(2)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := encode.Marshal(tt.el)
			if err != nil {
				t.Fatal(err)
			}
			got, err := parse.Parse(d)
			if err != nil {
				t.Fatalf("parse back %q: %v", d, err)
			}
			if !got.Equal(tt.el) {
				t.Errorf("round trip of %s gave %s", tt.el, got)
			}
		})
	}
}

// Integers beyond uint64 have no engine-native numeric form. They
// encode as their decimal text and read back as strings.
func TestEncodeBigIntDegradesToText(t *testing.T) {
	big100 := element.FromBigInt(new(big.Int).Lsh(big.NewInt(1), 100))
	d, err := encode.Marshal(big100)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	want := element.FromString("1267650600228229401496703205376")
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	el := obj("a", obj("b", element.FromInt(1)))

	d, err := encode.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a:\n  b: 1\n" {
		t.Errorf("default indent: got %q", d)
	}

	d, err = encode.Marshal(el, encode.Indent(4))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a:\n    b: 1\n" {
		t.Errorf("indent 4: got %q", d)
	}
}

func TestEncodeWire(t *testing.T) {
	el := obj(
		"a", element.FromInt(1),
		"b", element.NewArray(element.FromInt(1), element.FromInt(2)))
	d, err := encode.Marshal(el, encode.Wire(true))
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(d, []byte("\n")); n != 1 || d[len(d)-1] != '\n' {
		t.Errorf("wire output is not one line: %q", d)
	}
	got, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(el) {
		t.Errorf("round trip gave %s", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	el := obj(
		"a", element.FromInt(1),
		"list", element.NewArray(element.FromInt(1), element.FromFloat(2.5)),
		"s", element.FromString("x"))
	d, err := encode.Marshal(el, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatalf("not valid JSON: %q: %v", d, err)
	}
	want := map[string]any{
		"a":    float64(1),
		"list": []any{float64(1), float64(2.5)},
		"s":    "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(string(d), "\n") {
		t.Errorf("missing trailing newline: %q", d)
	}
}

func TestEncodeJSONWire(t *testing.T) {
	d, err := encode.Marshal(obj("a", element.FromInt(1)),
		encode.EncodeFormat(format.JSONFormat), encode.Wire(true))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "{\"a\":1}\n" {
		t.Errorf("got %q", d)
	}
}

func TestEncodeColors(t *testing.T) {
	el := obj("key", element.FromString("value"))

	d, err := encode.Marshal(el, encode.EncodeColors(encode.NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(d, []byte("\x1b[")) {
		t.Errorf("no escapes in colored output: %q", d)
	}
	if !bytes.Contains(d, []byte("\x1b[0m")) {
		t.Errorf("no reset in colored output: %q", d)
	}

	// Colors never leak into JSON or uncolored output.
	d, err = encode.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(d, []byte("\x1b[")) {
		t.Errorf("escapes in plain output: %q", d)
	}
	d, err = encode.Marshal(el,
		encode.EncodeFormat(format.JSONFormat), encode.EncodeColors(encode.NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(d, []byte("\x1b[")) {
		t.Errorf("escapes in JSON output: %q", d)
	}
}

func TestDump(t *testing.T) {
	el := obj("a", element.FromInt(1))

	var fromNative, fromElement bytes.Buffer
	if err := encode.Dump(el.Native(), &fromNative); err != nil {
		t.Fatal(err)
	}
	if err := encode.Dump(el, &fromElement); err != nil {
		t.Fatal(err)
	}
	if fromNative.String() != fromElement.String() {
		t.Errorf("Dump(Native()) = %q, Dump(element) = %q",
			fromNative.String(), fromElement.String())
	}
	if fromNative.String() != "a: 1\n" {
		t.Errorf("got %q", fromNative.String())
	}
}

func TestMustString(t *testing.T) {
	if got := encode.MustString(element.FromInt(7)); got != "7" {
		t.Errorf("got %q", got)
	}
	if got := encode.MustString(obj("a", element.FromInt(1))); got != "a: 1" {
		t.Errorf("got %q", got)
	}
}
