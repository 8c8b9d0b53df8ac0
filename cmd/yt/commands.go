package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yt").
		WithSynopsis("yt [opts] command [opts] [args]").
		WithDescription("yt is a tool for working with yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ytMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			JSONCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat yaml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return ytFmt(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("print the element at a dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return ytGet(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e key=val [-e key2=val2]...] <expr> [files]").
		WithDescription("evaluate an expression against yaml documents").
		WithOpts(&cli.Opt{
			Name:        "e",
			Description: "bind a variable for the expression",
			Type:        cli.NamedFuncOpt(cfg.envOpt, "(key=val)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return ytEval(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p <patchfile> [files]").
		WithDescription("apply a json patch to yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ytPatch(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m", "me").
		WithSynopsis("merge -m <mergefile> [files]").
		WithDescription("apply a merge patch to yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ytMerge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("line diff of two yaml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return ytDiff(cfg, cc, args)
		})
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.JSON, "json").
		WithSynopsis("json [files]").
		WithDescription("convert yaml documents to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return ytJSON(cfg, cc, args)
		})
}
