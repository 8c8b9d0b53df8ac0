package encode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamltree/element"
)

// DumpTo renders v to wc and closes it. Close runs on every path,
// and a close failure joins any render failure in the returned error.
func DumpTo(wc io.WriteCloser, v any, opts ...EncodeOption) error {
	err := Dump(v, wc, opts...)
	if cErr := wc.Close(); cErr != nil {
		err = errors.Join(err, fmt.Errorf("%w: %w", ErrEncode, cErr))
	}
	return err
}

// WriteFile renders el into the file at path, creating or truncating
// it.
func WriteFile(path string, el element.Element, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if el == nil {
		el = element.Null{}
	}
	return DumpTo(f, el.Native(), opts...)
}
