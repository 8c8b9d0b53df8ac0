// Package patch applies RFC 6902 patches and RFC 7386 merge patches
// to element trees.
//
// # Usage
//
//	// RFC 6902
//	p, _ := parse.ParseString("- op: add\n  path: /x\n  value: 1\n")
//	patched, err := patch.Apply(doc, p)
//
//	// RFC 7386
//	m, _ := parse.ParseString("replicas: 5\nlegacy: null\n")
//	merged, err := patch.Merge(doc, m)
//
//	// The merge patch between two documents
//	d, err := patch.Diff(before, after)
//
// Documents round-trip through the engine's JSON form, so member
// order inside patched regions follows the patch library's output
// and numbers compare by value, not payload type.
//
// # Related Packages
//
//   - github.com/signadot/yamltree/element - element tree representation
//   - github.com/signadot/yamltree/parse - parses patch documents
package patch
