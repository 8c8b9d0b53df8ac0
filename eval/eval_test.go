package eval

import (
	"errors"
	"testing"

	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/parse"
)

func obj(kvs ...any) *element.Object {
	o := element.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		o.Add(kvs[i].(string), kvs[i+1].(element.Element))
	}
	return o
}

func testDoc() *element.Object {
	return obj(
		"name", element.FromString("alice"),
		"replicas", element.FromInt(3),
		"items", element.NewArray(
			element.FromInt(1), element.FromInt(2), element.FromInt(3)),
		"meta", obj(
			"team", element.FromString("infra"),
			"oncall", element.FromBool(true)))
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want element.Element
	}{
		// plain document access
		{"member", `doc.name`, element.FromString("alice")},
		{"arithmetic", `doc.replicas * 2`, element.FromInt(6)},
		{"index", `doc.items[1]`, element.FromInt(2)},
		{"comparison", `doc.replicas > 1`, element.FromBool(true)},
		{"nested", `doc.meta.team`, element.FromString("infra")},

		// expressions can build new shapes
		{"map literal", `{"name": doc.name, "double": doc.replicas * 2}`, obj(
			"name", element.FromString("alice"),
			"double", element.FromInt(6))},
		{"transform", `map(doc.items, # * 10)`, element.NewArray(
			element.FromInt(10), element.FromInt(20), element.FromInt(30))},
		{"filter", `filter(doc.items, # > 1)`, element.NewArray(
			element.FromInt(2), element.FromInt(3))},
		{"nil result", `nil`, element.Null{}},

		// helper functions
		{"get", `get("meta.team")`, element.FromString("infra")},
		{"get whole object", `get("meta")`, obj(
			"team", element.FromString("infra"),
			"oncall", element.FromBool(true))},
		{"has hit", `has("meta.oncall")`, element.FromBool(true)},
		{"has miss", `has("meta.nope")`, element.FromBool(false)},
		{"has through scalar", `has("name.deeper")`, element.FromBool(false)},
		{"keys", `keys("meta")`, element.NewArray(
			element.FromString("team"), element.FromString("oncall"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.src, testDoc())
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.src, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Eval(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestEvalEnv(t *testing.T) {
	got, err := Eval(`doc.replicas + extra`, testDoc(),
		WithEnv(map[string]any{"extra": 4}))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(element.FromInt(7)) {
		t.Errorf("got %s", got)
	}

	// The doc binding cannot be shadowed.
	got, err = Eval(`doc.name`, testDoc(),
		WithEnv(map[string]any{"doc": map[string]any{"name": "mallory"}}))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(element.FromString("alice")) {
		t.Errorf("doc was shadowed: %s", got)
	}
}

func TestEvalGetenv(t *testing.T) {
	t.Setenv("YT_EVAL_TEST", "from-env")
	got, err := Eval(`getenv("YT_EVAL_TEST")`, element.Null{})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(element.FromString("from-env")) {
		t.Errorf("got %s", got)
	}
}

func TestEvalCompileError(t *testing.T) {
	if _, err := Eval(`1 +`, element.Null{}); err == nil {
		t.Error("no error for broken expression")
	}
}

func TestEvalRunError(t *testing.T) {
	if _, err := Eval(`get("meta")`, element.FromInt(1)); err == nil {
		t.Error("no error for get on a scalar document")
	}
}

func TestEvalUnconvertibleResult(t *testing.T) {
	_, err := Eval(`ch`, element.Null{},
		WithEnv(map[string]any{"ch": make(chan int)}))
	if !errors.Is(err, parse.ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}
