package eval

import (
	"github.com/signadot/yamltree/debug"
	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/parse"

	"github.com/expr-lang/expr"
)

type evalOpts struct {
	env map[string]any
}

type Option func(*evalOpts)

// WithEnv adds variables to the expression environment. Later options
// override earlier ones key by key. The doc binding always wins.
func WithEnv(env map[string]any) Option {
	return func(o *evalOpts) {
		if o.env == nil {
			o.env = map[string]any{}
		}
		for k, v := range env {
			o.env[k] = v
		}
	}
}

// Eval compiles src with expr-lang and runs it against doc. The
// environment binds the document as doc in plain map and slice form
// plus the helpers get, has, keys and getenv. The result converts
// back with parse.FromNative, so an expression can produce any shape
// the document model holds.
func Eval(src string, doc element.Element, opts ...Option) (element.Element, error) {
	eOpts := &evalOpts{}
	for _, opt := range opts {
		opt(eOpts)
	}
	if doc == nil {
		doc = element.Null{}
	}
	env := map[string]any{}
	for k, v := range eOpts.env {
		env[k] = v
	}
	env["doc"] = ToAny(doc)
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %T\n", src, res)
	}
	return parse.FromNative(res)
}
