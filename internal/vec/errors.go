package vec

import "errors"

// Kernel error taxonomy. Kernels wrap these with context, match them with
// errors.Is.
var (
	// ErrShape indicates a buffer whose length does not fit the declared
	// layout: flat buffers not divisible by 3, fields not matching a grid,
	// empty inputs, or curves with fewer than three points.
	ErrShape = errors.New("vec: shape error")

	// ErrDimensionMismatch indicates index-aligned arrays of unequal length.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrDegenerateGeometry indicates geometry for which a quantity is
	// undefined, such as coincident neighbouring curve samples.
	ErrDegenerateGeometry = errors.New("vec: degenerate geometry")

	// ErrParameter indicates a scalar parameter outside its valid range.
	ErrParameter = errors.New("vec: parameter out of valid bounds")
)
