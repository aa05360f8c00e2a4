// Package interop converts cairo parameter enumerations into the types
// of the Go rendering stack: gogpu/gg and its scene encoder, gogpu/gputypes
// sampler and blend state, golang.org/x/image, and go-text/typesetting.
//
// Conversions that have no faithful counterpart return an error matching
// ErrUnsupported rather than silently picking something close.
package interop

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every conversion error.
var ErrUnsupported = errors.New("interop: no equivalent")

func unsupported(v fmt.Stringer, target string) error {
	return fmt.Errorf("%w: %s to %s", ErrUnsupported, v, target)
}
