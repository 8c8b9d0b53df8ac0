package main

import (
	"fmt"

	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/eval"

	"github.com/scott-cotton/cli"
)

func ytGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an object path", cli.ErrUsage)
	}
	path := args[0]
	return eachInput(cfg.MainConfig, cc, args[1:], func(doc element.Element) (element.Element, error) {
		return eval.Select(doc, path)
	})
}
