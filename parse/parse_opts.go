package parse

import "github.com/goccy/go-yaml"

// DefaultMaxDepth bounds conversion recursion. Real documents nest far
// shallower; the guard fails cyclic or hostile inputs instead of
// exhausting the stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth  int
	noDupKeys bool
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) DecodeOpts() []yaml.DecodeOption {
	res := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if !o.noDupKeys {
		res = append(res, yaml.AllowDuplicateMapKey())
	}
	return res
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the conversion recursion limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// DisallowDuplicateKeys makes a repeated mapping key a syntax error
// instead of applying the engine's last-wins rule.
func DisallowDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.noDupKeys = true }
}
