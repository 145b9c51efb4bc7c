// Package field holds the structured-grid operators and the scalar
// quantities derived from sampled velocity and vorticity fields.
//
// Fields are flat []vec.Vec3 (or []float64) slices aligned with the grid's
// linear ordering, x varying fastest: idx = i + nx*(j + ny*k).
package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// Grid is a uniform lattice of Shape[0]×Shape[1]×Shape[2] points.
type Grid struct {
	Shape   [3]int   `yaml:"shape"`
	Spacing float64  `yaml:"spacing"`
	Origin  vec.Vec3 `yaml:"origin"`
}

func NewGrid(shape [3]int, spacing float64) (Grid, error) {
	g := Grid{Shape: shape, Spacing: spacing}
	return g, g.Validate()
}

// Centered returns a grid whose lattice is symmetric about center.
func Centered(shape [3]int, spacing float64, center vec.Vec3) (Grid, error) {
	g := Grid{Shape: shape, Spacing: spacing}
	half := vec.Vec3{
		X: 0.5 * float64(shape[0]-1) * spacing,
		Y: 0.5 * float64(shape[1]-1) * spacing,
		Z: 0.5 * float64(shape[2]-1) * spacing,
	}
	g.Origin = r3.Sub(center, half)
	return g, g.Validate()
}

func (g Grid) Validate() error {
	for axis, n := range g.Shape {
		if n <= 0 {
			return fmt.Errorf("%w: grid dimension %d must be positive, got %d", vec.ErrShape, axis, n)
		}
	}
	if !(g.Spacing > 0) || math.IsInf(g.Spacing, 0) {
		return fmt.Errorf("%w: grid spacing must be positive, got %g", vec.ErrParameter, g.Spacing)
	}
	return nil
}

// Len is the number of lattice points.
func (g Grid) Len() int { return g.Shape[0] * g.Shape[1] * g.Shape[2] }

func (g Grid) Index(i, j, k int) int {
	return i + g.Shape[0]*(j+g.Shape[1]*k)
}

func (g Grid) Coords(idx int) (i, j, k int) {
	nx, ny := g.Shape[0], g.Shape[1]
	i = idx % nx
	j = (idx / nx) % ny
	k = idx / (nx * ny)
	return
}

// Point is the position of lattice point (i, j, k).
func (g Grid) Point(i, j, k int) vec.Vec3 {
	return vec.Vec3{
		X: g.Origin.X + float64(i)*g.Spacing,
		Y: g.Origin.Y + float64(j)*g.Spacing,
		Z: g.Origin.Z + float64(k)*g.Spacing,
	}
}

// Points lists every lattice position in linear order.
func (g Grid) Points() []vec.Vec3 {
	pts := make([]vec.Vec3, g.Len())
	for idx := range pts {
		pts[idx] = g.Point(g.Coords(idx))
	}
	return pts
}

// CellVolume is spacing³, the dV of volume integrals.
func (g Grid) CellVolume() float64 { return g.Spacing * g.Spacing * g.Spacing }

// RadiusSquared lists |x - center|² for every lattice point.
func (g Grid) RadiusSquared(center vec.Vec3) []float64 {
	r2 := make([]float64, g.Len())
	for idx := range r2 {
		r2[idx] = r3.Norm2(r3.Sub(g.Point(g.Coords(idx)), center))
	}
	return r2
}

// Interior is the sub-grid left after stripping margin points from every
// face. Its origin moves inward accordingly.
func (g Grid) Interior(margin int) (Grid, error) {
	shape, err := InteriorShape(g.Shape, margin)
	if err != nil {
		return Grid{}, err
	}
	return Grid{Shape: shape, Spacing: g.Spacing, Origin: g.Point(margin, margin, margin)}, nil
}

func (g Grid) checkField(n int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if n != g.Len() {
		return fmt.Errorf("%w: field has %d points, grid %v has %d", vec.ErrShape, n, g.Shape, g.Len())
	}
	return nil
}
