package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func ytDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	mOpts := []encode.EncodeOption{encode.Indent(cfg.Indent)}
	if cfg.J {
		mOpts = append(mOpts, encode.EncodeFormat(format.JSONFormat))
	}
	ra, err := encode.Marshal(a, mOpts...)
	if err != nil {
		return err
	}
	rb, err := encode.Marshal(b, mOpts...)
	if err != nil {
		return err
	}
	return writeLineDiff(cc.Out, string(ra), string(rb), cfg.useColor(cc.Out))
}

// writeLineDiff diffs from and to line by line, mapping each distinct
// line to a rune so the diff runs over line sequences rather than
// characters.
func writeLineDiff(w io.Writer, from, to string, colored bool) error {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		diff := &diffs[i]
		mark, attr := " ", color.Reset
		switch diff.Type {
		case diffpatch.DiffDelete:
			mark, attr = "-", color.FgRed
		case diffpatch.DiffInsert:
			mark, attr = "+", color.FgGreen
		}
		for _, r := range diff.Text {
			if err := writeDiffLine(w, mark, runeMap[r], attr, colored); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDiffLine(w io.Writer, mark, line string, attr color.Attribute, colored bool) error {
	if !colored || attr == color.Reset {
		_, err := fmt.Fprintf(w, "%s%s", mark, line)
		return err
	}
	body := strings.TrimSuffix(line, "\n")
	_, err := fmt.Fprintf(w, "\x1b[%dm%s%s\x1b[%dm\n", attr, mark, body, color.Reset)
	return err
}

func mapLinesTo(m map[string]rune, im map[rune]string, s string) []rune {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := m[line]
		if !ok {
			r = rune(len(m))
			m[line] = r
			im[r] = line
		}
		rs[i] = r
	}
	return rs
}
