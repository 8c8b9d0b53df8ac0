package eval

import (
	"errors"
	"os"

	"github.com/signadot/yamltree/element"

	"github.com/expr-lang/expr"
)

func exprOpts(doc element.Element) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			el, err := Select(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(el), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := Select(doc, params[0].(string))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, element.ErrNotExist), errors.Is(err, element.ErrType):
				return false, nil
			}
			return nil, err
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			el, err := Select(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			o, err := el.AsObject()
			if err != nil {
				return nil, err
			}
			res := make([]any, 0, o.Len())
			for _, k := range o.Keys() {
				res = append(res, k)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
