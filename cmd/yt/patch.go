package main

import (
	"fmt"

	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/patch"

	"github.com/scott-cotton/cli"
)

func ytPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	ops, err := loadDoc(cfg.MainConfig, cfg.PatchFile)
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, func(doc element.Element) (element.Element, error) {
		return patch.Apply(doc, ops)
	})
}

func ytMerge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.MergeFile == "" {
		return fmt.Errorf("%w: merge requires -m <mergefile>", cli.ErrUsage)
	}
	mp, err := loadDoc(cfg.MainConfig, cfg.MergeFile)
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, func(doc element.Element) (element.Element, error) {
		return patch.Merge(doc, mp)
	})
}
