package main

import (
	"github.com/signadot/yamltree/element"

	"github.com/scott-cotton/cli"
)

func ytFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, reformat)
}

func ytJSON(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.J = true
	return eachInput(cfg.MainConfig, cc, args, reformat)
}

func reformat(el element.Element) (element.Element, error) {
	return el, nil
}
