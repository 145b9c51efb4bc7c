package filament

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

func TestRingGeometry(t *testing.T) {
	c, err := Ring(2.0, 720, vec.Vec3{Z: 1})
	require.NoError(t, err)

	assert.InDelta(t, 4*math.Pi, c.Length(), 1e-3)
	centroid := c.Centroid()
	assert.InDelta(t, 0, centroid.X, 1e-12)
	assert.InDelta(t, 0, centroid.Y, 1e-12)
	assert.InDelta(t, 1, centroid.Z, 1e-12)

	// counter-clockwise from +z
	tan := Tangents(c)
	assert.Greater(t, tan[0].Y, 0.0)
}

func TestTangentsSumToCircumference(t *testing.T) {
	c, err := Ring(1.0, 256, vec.Vec3{})
	require.NoError(t, err)
	total := 0.0
	for _, tv := range Tangents(c) {
		total += r3.Norm(tv)
	}
	assert.InDelta(t, 2*math.Pi, total, 1e-3)
}

func TestCurveValidation(t *testing.T) {
	_, err := FromTriples([][]float64{{0, 0, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, vec.ErrShape)

	_, err = FromFlat([]float64{0, 0, 0, 1, 0, 0, 1, 1})
	assert.ErrorIs(t, err, vec.ErrShape)

	_, err = FromTriples([][]float64{{0, 0, 0}, {1, 0, 0}, {math.NaN(), 1, 0}})
	assert.ErrorIs(t, err, vec.ErrParameter)

	c, err := FromFlat([]float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4, c.Length(), 1e-15)
	assert.Equal(t, 0, c.Next(3))
	assert.Equal(t, 3, c.Prev(0))
}

func TestTorusKnot(t *testing.T) {
	c, err := TorusKnot(2, 3, 2.0, 0.5, 300)
	require.NoError(t, err)
	for _, p := range c {
		rho := math.Hypot(p.X, p.Y)
		assert.InDelta(t, 0.25, (rho-2)*(rho-2)+p.Z*p.Z, 1e-12)
	}

	_, err = TorusKnot(2, 3, 0.5, 1.0, 300)
	assert.ErrorIs(t, err, vec.ErrParameter)
}

func TestFourierKnotMatchesRing(t *testing.T) {
	terms := []FourierTerm{{A: vec.Vec3{X: 1.5}, B: vec.Vec3{Y: 1.5}}}
	f, err := FourierKnot(terms, 64)
	require.NoError(t, err)
	r, err := Ring(1.5, 64, vec.Vec3{})
	require.NoError(t, err)
	for i := range f {
		assert.InDelta(t, r[i].X, f[i].X, 1e-12)
		assert.InDelta(t, r[i].Y, f[i].Y, 1e-12)
	}

	tref, err := FourierKnot(Trefoil(), 200)
	require.NoError(t, err)
	assert.Len(t, tref, 200)
}

func TestRingErrors(t *testing.T) {
	_, err := Ring(1, 2, vec.Vec3{})
	assert.ErrorIs(t, err, vec.ErrShape)
	_, err = Ring(-1, 10, vec.Vec3{})
	assert.ErrorIs(t, err, vec.ErrParameter)
}
