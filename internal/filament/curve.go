// Package filament describes closed vortex filaments: the Curve type, its
// periodic tangents, and generators for rings, torus knots and
// Fourier-series knots.
package filament

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// MinPoints is the smallest closed polyline.
const MinPoints = 3

// Curve is a closed polyline; point n wraps to point 0.
type Curve []vec.Vec3

// FromFlat builds a curve from an x-major interleaved buffer.
func FromFlat(flat []float64) (Curve, error) {
	pts, err := vec.FromFlat(flat)
	if err != nil {
		return nil, err
	}
	c := Curve(pts)
	return c, c.Validate()
}

// FromTriples builds a curve from nested triples.
func FromTriples(triples [][]float64) (Curve, error) {
	pts, err := vec.FromTriples(triples)
	if err != nil {
		return nil, err
	}
	c := Curve(pts)
	return c, c.Validate()
}

func (c Curve) Validate() error {
	if len(c) < MinPoints {
		return fmt.Errorf("%w: curve has %d points, need at least %d", vec.ErrShape, len(c), MinPoints)
	}
	if !vec.AllFinite(c) {
		return fmt.Errorf("%w: curve contains non-finite coordinates", vec.ErrParameter)
	}
	return nil
}

// Next returns the index after i, wrapping.
func (c Curve) Next(i int) int { return (i + 1) % len(c) }

// Prev returns the index before i, wrapping.
func (c Curve) Prev(i int) int { return (i - 1 + len(c)) % len(c) }

// Segment returns the chord from point i to point i+1.
func (c Curve) Segment(i int) vec.Vec3 { return r3.Sub(c[c.Next(i)], c[i]) }

// Length is the total chord length of the closed polyline.
func (c Curve) Length() float64 {
	l := 0.0
	for i := range c {
		l += r3.Norm(c.Segment(i))
	}
	return l
}

func (c Curve) Centroid() vec.Vec3 {
	var sum vec.Vec3
	for _, p := range c {
		sum = r3.Add(sum, p)
	}
	if len(c) == 0 {
		return sum
	}
	return r3.Scale(1/float64(len(c)), sum)
}

// Translate returns a copy of c shifted by d.
func (c Curve) Translate(d vec.Vec3) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = r3.Add(p, d)
	}
	return out
}

// Tangents returns periodic central differences (x[i+1]-x[i-1])/2. The
// vectors are not normalized: their length is the local line element, which
// is what the tangent form of the Biot-Savart kernel integrates against.
func Tangents(points []vec.Vec3) []vec.Vec3 {
	n := len(points)
	t := make([]vec.Vec3, n)
	if n < 2 {
		return t
	}
	for i := range points {
		next := points[(i+1)%n]
		prev := points[(i-1+n)%n]
		t[i] = r3.Scale(0.5, r3.Sub(next, prev))
	}
	return t
}
