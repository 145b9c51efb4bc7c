package field

import (
	"fmt"

	"github.com/san-kum/swirlsim/internal/vec"
)

// InteriorShape is the shape left after removing margin points per face.
func InteriorShape(shape [3]int, margin int) ([3]int, error) {
	if margin < 0 {
		return [3]int{}, fmt.Errorf("%w: margin must be non-negative, got %d", vec.ErrShape, margin)
	}
	var out [3]int
	for axis, n := range shape {
		if n <= 0 {
			return [3]int{}, fmt.Errorf("%w: grid dimension %d must be positive, got %d", vec.ErrShape, axis, n)
		}
		if 2*margin >= n {
			return [3]int{}, fmt.Errorf("%w: margin %d leaves no interior along axis %d of extent %d", vec.ErrShape, margin, axis, n)
		}
		out[axis] = n - 2*margin
	}
	return out, nil
}

// ExtractInterior returns the points of f at least margin away from every
// face, in the interior grid's own linear order.
func ExtractInterior[T any](f []T, shape [3]int, margin int) ([]T, error) {
	inner, err := InteriorShape(shape, margin)
	if err != nil {
		return nil, err
	}
	nx, ny := shape[0], shape[1]
	if len(f) != nx*ny*shape[2] {
		return nil, fmt.Errorf("%w: field has %d points, shape %v has %d", vec.ErrShape, len(f), shape, nx*ny*shape[2])
	}
	out := make([]T, 0, inner[0]*inner[1]*inner[2])
	for k := margin; k < shape[2]-margin; k++ {
		for j := margin; j < ny-margin; j++ {
			row := nx * (j + ny*k)
			out = append(out, f[row+margin:row+nx-margin]...)
		}
	}
	return out, nil
}
