package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptersAgree(t *testing.T) {
	nested := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	flat := []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}

	a, err := FromTriples(nested)
	require.NoError(t, err)
	b, err := FromFlat(flat)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, flat, Flatten(a))
	assert.Equal(t, nested, Triples(b))
}

func TestAdapterShapeErrors(t *testing.T) {
	_, err := FromFlat([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromTriples([][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, ErrShape)
}

func TestNormalize(t *testing.T) {
	u, ok := Normalize(Vec3{X: 3, Y: 4})
	assert.True(t, ok)
	assert.InDelta(t, 0.6, u.X, 1e-15)
	assert.InDelta(t, 0.8, u.Y, 1e-15)

	z, ok := Normalize(Vec3{})
	assert.False(t, ok)
	assert.Equal(t, Vec3{}, z)
}

func TestCrossDotNorm(t *testing.T) {
	x, y := Vec3{X: 1}, Vec3{Y: 1}
	assert.Equal(t, Vec3{Z: 1}, Cross(x, y))
	assert.Equal(t, Vec3{Z: -1}, Cross(y, x))
	assert.Equal(t, Vec3{}, Cross(x, Vec3{X: 4}))

	a, b := Vec3{X: 1, Y: 2, Z: 3}, Vec3{X: -2, Y: 0.5, Z: 4}
	assert.InDelta(t, 11, Dot(a, b), 1e-15)
	assert.InDelta(t, 0, Dot(Cross(a, b), a), 1e-12)
	assert.InDelta(t, 0, Dot(Cross(a, b), b), 1e-12)
	assert.InDelta(t, 5, Norm(Vec3{X: 3, Z: -4}), 1e-15)
	assert.InDelta(t, math.Sqrt(14), Norm(a), 1e-15)
}

func TestOrthogonal(t *testing.T) {
	for _, a := range []Vec3{{X: 1}, {Y: 2}, {Z: -3}, {X: 1, Y: 1, Z: 1}, {X: 0.3, Y: -2, Z: 0.01}} {
		o := Orthogonal(a)
		assert.InDelta(t, 1, Norm(o), 1e-12)
		assert.InDelta(t, 0, Dot(o, a), 1e-12)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, AllFinite([]Vec3{{X: 1}, {Y: -1}}))
	assert.False(t, IsFinite(Vec3{X: math.NaN()}))
	assert.False(t, IsFinite(Vec3{Z: math.Inf(1)}))
}
