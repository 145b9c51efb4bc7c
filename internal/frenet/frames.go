// Package frenet computes Frenet frames, curvature and torsion of sampled
// closed curves by periodic finite differences, and the unweighted
// helicity sum.
package frenet

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// FlatTolerance is the relative |ΔT| below which a point counts as having
// zero curvature.
const FlatTolerance = 1e-12

// Frames holds one orthonormal (T, N, B) triple per curve point.
// Degenerate[i] is set where the curve is locally straight and N[i] came
// from the fallback rule rather than from ΔT.
type Frames struct {
	T, N, B    []vec.Vec3
	Degenerate []bool
}

func (f Frames) Len() int { return len(f.T) }

// ComputeFrenetFrames builds frames for a closed curve:
//
//	T[i] = unit(x[i+1] - x[i-1])
//	N[i] = unit(T[i+1] - T[i-1]), T component removed
//	B[i] = T[i] × N[i]
//
// At zero-curvature points N is the last valid normal met walking forward
// around the curve, re-orthogonalized against the local T. If the whole
// curve is flat, N is an arbitrary unit vector orthogonal to T. Coincident
// neighbours make T undefined and return ErrDegenerateGeometry.
func ComputeFrenetFrames(points []vec.Vec3) (Frames, error) {
	n := len(points)
	if n < 3 {
		return Frames{}, fmt.Errorf("%w: curve has %d points, need at least 3", vec.ErrShape, n)
	}

	T := make([]vec.Vec3, n)
	for i := range points {
		d := r3.Sub(points[(i+1)%n], points[(i-1+n)%n])
		t, ok := vec.Normalize(d)
		if !ok {
			return Frames{}, fmt.Errorf("%w: neighbours of point %d coincide", vec.ErrDegenerateGeometry, i)
		}
		T[i] = t
	}

	N := make([]vec.Vec3, n)
	valid := make([]bool, n)
	first := -1
	for i := range T {
		dT := r3.Sub(T[(i+1)%n], T[(i-1+n)%n])
		if r3.Norm(dT) <= FlatTolerance {
			continue
		}
		// project out the T component so N stays orthogonal on coarse curves
		perp := r3.Sub(dT, r3.Scale(r3.Dot(dT, T[i]), T[i]))
		if u, ok := vec.Normalize(perp); ok {
			N[i] = u
			valid[i] = true
			if first < 0 {
				first = i
			}
		}
	}

	degenerate := make([]bool, n)
	if first < 0 {
		for i := range T {
			N[i] = vec.Orthogonal(T[i])
			degenerate[i] = true
		}
	} else {
		carry := N[first]
		for step := 0; step < n; step++ {
			i := (first + step) % n
			if valid[i] {
				carry = N[i]
				continue
			}
			degenerate[i] = true
			perp := r3.Sub(carry, r3.Scale(r3.Dot(carry, T[i]), T[i]))
			u, ok := vec.Normalize(perp)
			if !ok {
				u = vec.Orthogonal(T[i])
			}
			N[i] = u
			carry = u
		}
	}

	B := make([]vec.Vec3, n)
	for i := range T {
		B[i] = r3.Cross(T[i], N[i])
	}
	return Frames{T: T, N: N, B: B, Degenerate: degenerate}, nil
}
