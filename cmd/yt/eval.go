package main

import (
	"fmt"
	"strings"

	"github.com/signadot/yamltree"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func ytEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	tool := yamltree.DefaultTool()
	tool.Env = cfg.Env
	tool.Steps = []yamltree.Step{{Expr: args[0]}}
	return eachInput(cfg.MainConfig, cc, args[1:], tool.Run)
}

func (cfg *EvalConfig) envOpt(_ *cli.Context, a string) (any, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: -e %q, expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return nil, fmt.Errorf("%w: -e %s: %v", cli.ErrUsage, key, err)
	}
	if err := setEnvPath(cfg.Env, key, v); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return v, nil
}

// setEnvPath stores v under a dotted key, building intermediate maps
// as needed.
func setEnvPath(env map[string]any, key string, v any) error {
	parts := strings.Split(key, ".")
	n := len(parts)
	for i, part := range parts {
		if i == n-1 {
			env[part] = v
			return nil
		}
		next := env[part]
		if next == nil {
			m := map[string]any{}
			env[part] = m
			env = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s, %s is not a map", key, strings.Join(parts[:i+1], "."))
		}
		env = m
	}
	return nil
}
