package frenet

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// ComputeCurvatureTorsion differentiates the frame along the sample index
// with periodic central differences:
//
//	κ[i] = |T[i+1] - T[i-1]| / 2
//	τ[i] = -(B[i+1] - B[i-1])/2 · N[i],   B = T × N
//
// Both are per unit sample spacing; see CurveCurvatureTorsion for values
// per unit arc length.
func ComputeCurvatureTorsion(T, N []vec.Vec3) (curvature, torsion []float64, err error) {
	n := len(T)
	if n != len(N) {
		return nil, nil, fmt.Errorf("%w: %d tangents but %d normals", vec.ErrDimensionMismatch, n, len(N))
	}
	if n < 3 {
		return nil, nil, fmt.Errorf("%w: need at least 3 frames, got %d", vec.ErrShape, n)
	}
	B := make([]vec.Vec3, n)
	for i := range T {
		B[i] = r3.Cross(T[i], N[i])
	}
	curvature = make([]float64, n)
	torsion = make([]float64, n)
	for i := 0; i < n; i++ {
		next, prev := (i+1)%n, (i-1+n)%n
		curvature[i] = 0.5 * r3.Norm(r3.Sub(T[next], T[prev]))
		torsion[i] = -0.5 * r3.Dot(r3.Sub(B[next], B[prev]), N[i])
	}
	return curvature, torsion, nil
}

// CurveCurvatureTorsion computes frames for points and rescales the index
// derivatives by the local arc step |x[i+1] - x[i-1]|/2, giving curvature
// and torsion per unit length.
func CurveCurvatureTorsion(points []vec.Vec3) (curvature, torsion []float64, err error) {
	frames, err := ComputeFrenetFrames(points)
	if err != nil {
		return nil, nil, err
	}
	curvature, torsion, err = ComputeCurvatureTorsion(frames.T, frames.N)
	if err != nil {
		return nil, nil, err
	}
	n := len(points)
	for i := range points {
		ds := 0.5 * r3.Norm(r3.Sub(points[(i+1)%n], points[(i-1+n)%n]))
		curvature[i] /= ds
		torsion[i] /= ds
	}
	return curvature, torsion, nil
}
