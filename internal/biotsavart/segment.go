package biotsavart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/compute"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/vec"
)

// SegmentVelocity is the velocity induced at p by the straight vortex
// segment a→b, without the Γ/4π prefactor.
func SegmentVelocity(p, a, b vec.Vec3, coreRadius float64) vec.Vec3 {
	r0 := r3.Sub(b, a)
	l2 := r3.Norm2(r0)
	if l2 <= vec.Tiny {
		return vec.Vec3{}
	}
	l := math.Sqrt(l2)
	r1 := r3.Sub(p, a)
	r2 := r3.Sub(p, b)
	// |r1×r2|/l is the distance h from p to the segment line.
	perp := r3.Scale(1/l, r3.Cross(r1, r2))
	h2 := r3.Norm2(perp) + coreRadius*coreRadius
	if h2 < MinDistance2 {
		return vec.Vec3{}
	}
	u1, _ := vec.Normalize(r1)
	u2, _ := vec.Normalize(r2)
	k := r3.Dot(r3.Scale(1/l, r0), r3.Sub(u1, u2)) / h2
	return r3.Scale(k, perp)
}

func curveVelocity(p vec.Vec3, c filament.Curve, coreRadius float64) vec.Vec3 {
	var v vec.Vec3
	for i := range c {
		v = r3.Add(v, SegmentVelocity(p, c[i], c[c.Next(i)], coreRadius))
	}
	return v
}

// ComputeVelocity sums the segment contributions of the closed polyline
// curve at every evaluation point.
func ComputeVelocity(curve filament.Curve, points []vec.Vec3, p Params) ([]vec.Vec3, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := curve.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no evaluation points", vec.ErrShape)
	}

	pre := p.prefactor()
	out := make([]vec.Vec3, len(points))
	compute.GetBackend().ParallelFor(len(points), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = r3.Scale(pre, curveVelocity(points[i], curve, p.CoreRadius))
		}
	})
	return out, nil
}

// VelocityGrid is the batch form of ComputeVelocity over a full evaluation
// grid of flattened lattice points.
func VelocityGrid(polyline filament.Curve, grid []vec.Vec3, p Params) ([]vec.Vec3, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty evaluation grid", vec.ErrShape)
	}
	return ComputeVelocity(polyline, grid, p)
}

// ComputeVelocityFlat accepts and returns x-major interleaved buffers.
func ComputeVelocityFlat(curve, points []float64, p Params) ([]float64, error) {
	c, err := filament.FromFlat(curve)
	if err != nil {
		return nil, err
	}
	pts, err := vec.FromFlat(points)
	if err != nil {
		return nil, err
	}
	v, err := ComputeVelocity(c, pts, p)
	if err != nil {
		return nil, err
	}
	return vec.Flatten(v), nil
}
