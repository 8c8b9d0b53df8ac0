// Package eval runs expressions and path lookups against element
// trees.
//
// # Usage
//
//	// Evaluate an expression
//	el, err := eval.Eval(`doc.replicas * 2`, doc)
//
//	// With caller variables
//	el, err := eval.Eval(`doc.name + suffix`, doc,
//	    eval.WithEnv(map[string]any{"suffix": "-prod"}))
//
//	// Address one element
//	el, err := eval.Select(doc, `spec.containers[0].image`)
//
// Expressions are expr-lang programs. The document binds as doc in
// plain map and slice form, alongside helper functions:
//
//	get(path string) any     // element at path, as plain data
//	has(path string) bool    // whether path resolves
//	keys(path string) []any  // member keys of the object at path
//	getenv(name string) string
//
// # Related Packages
//
//   - github.com/signadot/yamltree/element - element tree representation
//   - github.com/signadot/yamltree/parse - converts results back to elements
package eval
