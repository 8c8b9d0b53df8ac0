// Package parse turns YAML text and native Go values into element
// trees.
//
// # Usage
//
//	// Parse a YAML document
//	el, err := parse.Parse([]byte("name: alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	el, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	el, err := parse.Parse(data, parse.DisallowDuplicateKeys())
//
//	// Convert decoded Go values
//	el, err := parse.FromNative(map[string]any{"on": true})
//
// Mappings keep their document order. Failures carry one of the
// package's sentinel errors: ErrSyntax for anything wrong with the
// document itself, ErrIO for reader failures and ErrExhausted for
// documents nested past the configured depth.
//
// # Related Packages
//
//   - github.com/signadot/yamltree/element - element tree representation
//   - github.com/signadot/yamltree/encode - encode elements to text
package parse
