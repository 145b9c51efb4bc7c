package frenet

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/swirlsim/internal/vec"
)

// ComputeHelicity is the unweighted sum Σ v·ω. Unlike
// field.ComputeHelicityField it carries no volume element.
func ComputeHelicity(velocity, vorticity []vec.Vec3) (float64, error) {
	if len(velocity) != len(vorticity) {
		return 0, fmt.Errorf("%w: velocity has %d points, vorticity %d", vec.ErrDimensionMismatch, len(velocity), len(vorticity))
	}
	return floats.Dot(vec.Flatten(velocity), vec.Flatten(vorticity)), nil
}
