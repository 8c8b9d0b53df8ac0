package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/parse"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// rewriteFunc transforms one parsed document before it is encoded.
type rewriteFunc func(element.Element) (element.Element, error)

// eachInput runs rw over every document in the given files, or over
// stdin when no files are given, and writes the results to cc.Out
// separated by document markers.
func eachInput(cfg *MainConfig, cc *cli.Context, files []string, rw rewriteFunc) error {
	if len(files) == 0 {
		return inputReader(cfg, cc.Out, "stdin", os.Stdin, rw)
	}
	for i, file := range files {
		if err := inputFile(cfg, cc.Out, file, rw); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func inputFile(cfg *MainConfig, w io.Writer, file string, rw rewriteFunc) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	return inputReader(cfg, w, file, f, rw)
}

func inputReader(cfg *MainConfig, w io.Writer, name string, r io.Reader, rw rewriteFunc) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		label := name
		if n > 1 {
			label = fmt.Sprintf("%s document %d", name, i)
		}
		el, err := parseInput(cfg, label, doc)
		if err != nil {
			return err
		}
		res, err := rw(el)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", label, err)
		}
		if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", label, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing %s: %w", label, err)
			}
		}
	}
	return nil
}

// parseInput decodes one document, rendering engine errors with source
// context.
func parseInput(cfg *MainConfig, name string, d []byte) (element.Element, error) {
	el, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		colored := isatty.IsTerminal(os.Stderr.Fd())
		return nil, fmt.Errorf("error decoding %s: %s", name, yaml.FormatError(err, colored, true))
	}
	return el, nil
}

// loadDoc reads and parses a single document file, with "-" reading
// stdin.
func loadDoc(cfg *MainConfig, file string) (element.Element, error) {
	var (
		in  []byte
		err error
	)
	if file == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return parseInput(cfg, file, in)
}
