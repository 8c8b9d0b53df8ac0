// Package format names the text formats the library reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	path := "out" + f.Suffix()
//
// YAML is the native format; JSON output is derived from it. Format
// implements encoding.TextMarshaler and TextUnmarshaler so it can be used
// directly as a flag or config value.
//
// # Related Packages
//
//   - github.com/signadot/yamltree/encode - Encode elements in a format
package format
