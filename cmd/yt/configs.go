package main

import (
	"io"
	"os"

	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/format"
	"github.com/signadot/yamltree/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	J      bool `cli:"name=j aliases=json desc='encode in json'"`
	Wire   bool `cli:"name=wire desc='encode in compact wire form'"`
	Indent int  `cli:"name=indent desc='spaces per indent step'"`
	Strict bool `cli:"name=strict desc='reject duplicate mapping keys'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.DisallowDuplicateKeys())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Wire(cfg.Wire),
	}
	if cfg.J {
		res = append(res, encode.EncodeFormat(format.JSONFormat))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honors an explicit -color flag and otherwise falls back to
// terminal detection on the output.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			// -color was given and it said no
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='file containing an rfc 6902 patch document'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	MergeFile string `cli:"name=m desc='file containing an rfc 7386 merge patch document'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type JSONConfig struct {
	*MainConfig

	JSON *cli.Command
}
