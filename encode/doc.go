// Package encode renders element trees to YAML or JSON text.
//
// # Usage
//
//	// Write YAML
//	err := encode.Encode(el, os.Stdout)
//
//	// Render to bytes
//	d, err := encode.Marshal(el)
//
//	// Compact JSON
//	d, err := encode.Marshal(el,
//	    encode.EncodeFormat(format.JSONFormat), encode.Wire(true))
//
//	// Colored terminal output
//	err := encode.Encode(el, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Output always ends in a single newline. Coloring applies to YAML
// only.
//
// # Related Packages
//
//   - github.com/signadot/yamltree/element - element tree representation
//   - github.com/signadot/yamltree/parse - parse text back to elements
package encode
