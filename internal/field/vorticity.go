package field

import (
	"github.com/san-kum/swirlsim/internal/compute"
	"github.com/san-kum/swirlsim/internal/vec"
)

// partial returns d/dx_axis of component comp at (i,j,k): central where
// both neighbours exist, one-sided at a face, zero along an axis of extent 1.
func partial(f []vec.Vec3, g Grid, i, j, k, axis int, comp func(vec.Vec3) float64) float64 {
	n := g.Shape[axis]
	if n < 2 {
		return 0
	}
	pos := [3]int{i, j, k}
	at := func(c int) float64 {
		p := pos
		p[axis] = c
		return comp(f[g.Index(p[0], p[1], p[2])])
	}
	c := pos[axis]
	switch {
	case c == 0:
		return (at(1) - at(0)) / g.Spacing
	case c == n-1:
		return (at(n-1) - at(n-2)) / g.Spacing
	default:
		return (at(c+1) - at(c-1)) / (2 * g.Spacing)
	}
}

func cx(v vec.Vec3) float64 { return v.X }
func cy(v vec.Vec3) float64 { return v.Y }
func cz(v vec.Vec3) float64 { return v.Z }

// ComputeVorticity returns the curl of a velocity field sampled on g.
func ComputeVorticity(velocity []vec.Vec3, g Grid) ([]vec.Vec3, error) {
	if err := g.checkField(len(velocity)); err != nil {
		return nil, err
	}
	out := make([]vec.Vec3, len(velocity))
	compute.GetBackend().ParallelFor(len(velocity), func(start, end int) {
		for idx := start; idx < end; idx++ {
			i, j, k := g.Coords(idx)
			dwdy := partial(velocity, g, i, j, k, 1, cz)
			dvdz := partial(velocity, g, i, j, k, 2, cy)
			dudz := partial(velocity, g, i, j, k, 2, cx)
			dwdx := partial(velocity, g, i, j, k, 0, cz)
			dvdx := partial(velocity, g, i, j, k, 0, cy)
			dudy := partial(velocity, g, i, j, k, 1, cx)
			out[idx] = vec.Vec3{X: dwdy - dvdz, Y: dudz - dwdx, Z: dvdx - dudy}
		}
	})
	return out, nil
}

// ComputeVorticityFlat is ComputeVorticity over an x-major interleaved buffer.
func ComputeVorticityFlat(velocity []float64, shape [3]int, spacing float64) ([]float64, error) {
	v, err := vec.FromFlat(velocity)
	if err != nil {
		return nil, err
	}
	w, err := ComputeVorticity(v, Grid{Shape: shape, Spacing: spacing})
	if err != nil {
		return nil, err
	}
	return vec.Flatten(w), nil
}
