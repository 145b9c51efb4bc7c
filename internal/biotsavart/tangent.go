package biotsavart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/compute"
	"github.com/san-kum/swirlsim/internal/vec"
)

func checkSamples(points, tangents []vec.Vec3) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty filament", vec.ErrShape)
	}
	if len(points) != len(tangents) {
		return fmt.Errorf("%w: %d filament points but %d tangents", vec.ErrDimensionMismatch, len(points), len(tangents))
	}
	return nil
}

func tangentSum(r vec.Vec3, points, tangents []vec.Vec3, core2 float64) vec.Vec3 {
	var v vec.Vec3
	for j, x := range points {
		R := r3.Sub(r, x)
		d2 := r3.Norm2(R) + core2
		if d2 < MinDistance2 {
			continue
		}
		// |R|/d <= 1, so only the final 1/d² can grow.
		Rhat := r3.Scale(1/math.Sqrt(d2), R)
		v = r3.Add(v, r3.Scale(1/d2, r3.Cross(tangents[j], Rhat)))
	}
	return v
}

// Velocity is the tangent-form velocity induced at r by the filament
// samples points with line elements tangents.
func Velocity(r vec.Vec3, points, tangents []vec.Vec3, p Params) (vec.Vec3, error) {
	if err := p.Validate(); err != nil {
		return vec.Vec3{}, err
	}
	if err := checkSamples(points, tangents); err != nil {
		return vec.Vec3{}, err
	}
	return r3.Scale(p.prefactor(), tangentSum(r, points, tangents, p.CoreRadius*p.CoreRadius)), nil
}

// SelfInduced evaluates the tangent form at every filament sample against
// the whole filament. The sample's own term vanishes since t×0 = 0.
func SelfInduced(points, tangents []vec.Vec3, p Params) ([]vec.Vec3, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkSamples(points, tangents); err != nil {
		return nil, err
	}
	pre := p.prefactor()
	core2 := p.CoreRadius * p.CoreRadius
	out := make([]vec.Vec3, len(points))
	compute.GetBackend().ParallelFor(len(points), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = r3.Scale(pre, tangentSum(points[i], points, tangents, core2))
		}
	})
	return out, nil
}
