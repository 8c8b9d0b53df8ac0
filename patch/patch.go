package patch

import (
	"bytes"

	"github.com/signadot/yamltree/debug"
	"github.com/signadot/yamltree/element"
	"github.com/signadot/yamltree/encode"
	"github.com/signadot/yamltree/format"
	"github.com/signadot/yamltree/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies an RFC 6902 patch to doc and returns the patched
// tree. patchDoc holds the patch itself, an array of operation
// records, usually parsed from YAML or JSON.
func Apply(doc, patchDoc element.Element) (element.Element, error) {
	pd, err := toJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applied %d patch ops\n", len(ops))
	}
	return fromJSON(out)
}

// Merge applies an RFC 7386 merge patch to doc. Null members of
// mergeDoc delete, everything else upserts.
func Merge(doc, mergeDoc element.Element) (element.Element, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	m, err := toJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}

// Diff computes the merge patch that turns a into b, so
// Merge(a, Diff(a, b)) reproduces b.
func Diff(a, b element.Element) (element.Element, error) {
	da, err := toJSON(a)
	if err != nil {
		return nil, err
	}
	db, err := toJSON(b)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}

// Equal reports whether a and b hold the same document under JSON
// semantics, where integral and floating renderings of one value
// coincide. Renderings that fail fall back to element equality.
func Equal(a, b element.Element) bool {
	if a == nil {
		a = element.Null{}
	}
	if b == nil {
		b = element.Null{}
	}
	da, errA := toJSON(a)
	db, errB := toJSON(b)
	if errA != nil || errB != nil {
		return a.Equal(b)
	}
	return jsonpatch.Equal(da, db)
}

func toJSON(el element.Element) ([]byte, error) {
	return encode.Marshal(el,
		encode.EncodeFormat(format.JSONFormat), encode.Wire(true))
}

// fromJSON reads patch library output back into an element. A bare
// null document has to short-circuit, parse rejects it.
func fromJSON(d []byte) (element.Element, error) {
	if string(bytes.TrimSpace(d)) == "null" {
		return element.Null{}, nil
	}
	return parse.Parse(d)
}
