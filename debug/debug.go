// Package debug gates diagnostic logging behind YT_DEBUG_* environment
// variables. Output goes to stderr and is meant for developing the
// library itself, not for consumers.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Convert bool
	Eval    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YT_DEBUG_PARSE")
	d.Convert = boolEnv("YT_DEBUG_CONVERT")
	d.Eval = boolEnv("YT_DEBUG_EVAL")
	d.Patch = boolEnv("YT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
