package raster

import (
	"errors"
	"fmt"
)

// ErrAllocFailed names an allocation failure in Init or Clone of a
// PixelBuffer or CellGrid. No function in this package returns it: Init
// allocates with make, which panics rather than failing, and Clone has no
// error result.
var ErrAllocFailed = errors.New("raster: allocation failed")

// ErrPreconditionViolated is returned for debug-only contract violations:
// zero-size dimensions, an unknown pixel format on conversion, or an
// uncontracted blend mode passed to Render. Release builds of the
// original C++ source treat these as undefined behavior; this port
// surfaces them as errors instead of panicking.
var ErrPreconditionViolated = errors.New("raster: precondition violated")

func preconditionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolated, fmt.Sprintf(format, args...))
}
