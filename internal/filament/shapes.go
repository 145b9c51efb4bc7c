package filament

import (
	"fmt"
	"math"

	"github.com/san-kum/swirlsim/internal/vec"
)

// Ring samples a circle of the given radius in the plane z = center.Z,
// traversed counter-clockwise when seen from +z.
func Ring(radius float64, n int, center vec.Vec3) (Curve, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("%w: ring needs at least %d points, got %d", vec.ErrShape, MinPoints, n)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: ring radius must be positive, got %g", vec.ErrParameter, radius)
	}
	c := make(Curve, n)
	for i := range c {
		theta := 2 * math.Pi * float64(i) / float64(n)
		c[i] = vec.Vec3{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
			Z: center.Z,
		}
	}
	return c, nil
}

// TorusKnot samples the (p, q) torus knot winding p times around the axis
// of a torus with major radius major and tube radius minor.
func TorusKnot(p, q int, major, minor float64, n int) (Curve, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("%w: torus knot needs at least %d points, got %d", vec.ErrShape, MinPoints, n)
	}
	if p <= 0 || q <= 0 {
		return nil, fmt.Errorf("%w: torus knot winding numbers must be positive, got (%d,%d)", vec.ErrParameter, p, q)
	}
	if minor <= 0 || major <= minor {
		return nil, fmt.Errorf("%w: torus knot radii need 0 < minor < major, got %g, %g", vec.ErrParameter, minor, major)
	}
	c := make(Curve, n)
	for i := range c {
		t := 2 * math.Pi * float64(i) / float64(n)
		rho := major + minor*math.Cos(float64(q)*t)
		c[i] = vec.Vec3{
			X: rho * math.Cos(float64(p)*t),
			Y: rho * math.Sin(float64(p)*t),
			Z: minor * math.Sin(float64(q)*t),
		}
	}
	return c, nil
}

// FourierTerm is one harmonic of a Fourier-series knot: A cos(jt) + B sin(jt).
type FourierTerm struct {
	A vec.Vec3 `yaml:"a"`
	B vec.Vec3 `yaml:"b"`
}

// FourierKnot evaluates x(t) = sum_j A_j cos(jt) + B_j sin(jt), with
// terms[0] as harmonic j = 1, at n equally spaced t in [0, 2π).
func FourierKnot(terms []FourierTerm, n int) (Curve, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: fourier knot needs at least one term", vec.ErrShape)
	}
	if n < MinPoints {
		return nil, fmt.Errorf("%w: fourier knot needs at least %d points, got %d", vec.ErrShape, MinPoints, n)
	}
	c := make(Curve, n)
	for i := range c {
		t := 2 * math.Pi * float64(i) / float64(n)
		var pt vec.Vec3
		for j, term := range terms {
			h := float64(j + 1)
			cs, sn := math.Cos(h*t), math.Sin(h*t)
			pt.X += term.A.X*cs + term.B.X*sn
			pt.Y += term.A.Y*cs + term.B.Y*sn
			pt.Z += term.A.Z*cs + term.B.Z*sn
		}
		c[i] = pt
	}
	return c, c.Validate()
}

// Trefoil returns the Fourier terms of the standard trefoil
// (sin t + 2 sin 2t, cos t - 2 cos 2t, -sin 3t).
func Trefoil() []FourierTerm {
	return []FourierTerm{
		{A: vec.Vec3{Y: 1}, B: vec.Vec3{X: 1}},
		{A: vec.Vec3{Y: -2}, B: vec.Vec3{X: 2}},
		{B: vec.Vec3{Z: -1}},
	}
}
