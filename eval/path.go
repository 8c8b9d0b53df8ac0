package eval

import (
	"fmt"
	"strconv"

	"github.com/signadot/yamltree/element"
)

// Select resolves a dotted path inside doc and returns the addressed
// element. A path is key and index segments, for example a.b[0].c;
// keys containing dots or brackets go in double quotes, "a.b".c. The
// empty path addresses the document itself.
func Select(doc element.Element, path string) (element.Element, error) {
	if doc == nil {
		doc = element.Null{}
	}
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := doc
	for _, seg := range segs {
		if seg.index {
			a, err := cur.AsArray()
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", seg.idx, err)
			}
			if seg.idx >= a.Len() {
				return nil, fmt.Errorf("%w: index %d out of range [0,%d)",
					element.ErrNotExist, seg.idx, a.Len())
			}
			cur = a.Get(seg.idx)
			continue
		}
		o, err := cur.AsObject()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", seg.key, err)
		}
		el, ok := o.Get(seg.key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", element.ErrNotExist, seg.key)
		}
		cur = el
	}
	return cur, nil
}

type pathSeg struct {
	key   string
	idx   int
	index bool
}

func splitPath(path string) ([]pathSeg, error) {
	var segs []pathSeg
	needKey := true
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			if needKey {
				return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, path)
			}
			needKey = true
			i++
		case '[':
			if needKey && i != 0 {
				return nil, fmt.Errorf("%w: misplaced index in %q", ErrPath, path)
			}
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j == len(path) {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, path)
			}
			n, err := strconv.Atoi(path[i+1 : j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, path[i+1:j], path)
			}
			segs = append(segs, pathSeg{idx: n, index: true})
			needKey = false
			i = j + 1
		case '"':
			if !needKey {
				return nil, fmt.Errorf("%w: unexpected quote in %q", ErrPath, path)
			}
			j := i + 1
			for j < len(path) && path[j] != '"' {
				if path[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(path) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPath, path)
			}
			key, err := strconv.Unquote(path[i : j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q in %q", ErrPath, path[i:j+1], path)
			}
			segs = append(segs, pathSeg{key: key})
			needKey = false
			i = j + 1
		default:
			if !needKey {
				return nil, fmt.Errorf("%w: missing separator before %q in %q", ErrPath, path[i:], path)
			}
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' && path[j] != '"' {
				j++
			}
			segs = append(segs, pathSeg{key: path[i:j]})
			needKey = false
			i = j
		}
	}
	if needKey && path != "" {
		return nil, fmt.Errorf("%w: trailing separator in %q", ErrPath, path)
	}
	return segs, nil
}
