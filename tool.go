package yamltree

import (
	"fmt"

	"github.com/signadot/yamltree/debug"
	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/eval"
	"github.com/signadot/yamltree/patch"
)

// Tool runs a fixed pipeline of transformation steps over a document.
// Env feeds expression steps as extra variables.
type Tool struct {
	Env   map[string]any
	Steps []Step
}

// Step is one transformation. Exactly one field is set: Expr rewrites
// the document with an expr-lang expression, Patch applies an RFC
// 6902 patch, Merge applies an RFC 7386 merge patch.
type Step struct {
	Expr  string
	Patch element.Element
	Merge element.Element
}

func DefaultTool() *Tool {
	return &Tool{
		Env: map[string]any{},
	}
}

// Run applies the steps in order and returns the final document. The
// input document is never mutated; every step produces a fresh tree.
func (t *Tool) Run(doc element.Element) (element.Element, error) {
	if doc == nil {
		doc = element.Null{}
	}
	res := doc
	for i := range t.Steps {
		next, err := t.runStep(&t.Steps[i], res)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		res = next
	}
	return res, nil
}

func (t *Tool) runStep(step *Step, doc element.Element) (element.Element, error) {
	n := 0
	if step.Expr != "" {
		n++
	}
	if step.Patch != nil {
		n++
	}
	if step.Merge != nil {
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("a step sets exactly one of Expr, Patch, Merge, got %d", n)
	}
	switch {
	case step.Expr != "":
		if debug.Eval() {
			debug.Logf("tool expr step %q\n", step.Expr)
		}
		return eval.Eval(step.Expr, doc, eval.WithEnv(t.Env))
	case step.Patch != nil:
		if debug.Patch() {
			debug.Logf("tool patch step\n")
		}
		return patch.Apply(doc, step.Patch)
	default:
		if debug.Patch() {
			debug.Logf("tool merge step\n")
		}
		return patch.Merge(doc, step.Merge)
	}
}
