package optim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/swirlsim/internal/config"
	"github.com/san-kum/swirlsim/internal/experiment"
)

func builder(t *testing.T) func(map[string]float64) (*experiment.Experiment, error) {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := config.DefaultConfig()
		cfg.Filament.Segments = 32
		cfg.Steps = 3
		for name, v := range params {
			if err := Apply(cfg, name, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(cfg)
		return exp, exp.Setup()
	}
}

func TestPointsCartesianProduct(t *testing.T) {
	g := NewGridSearch([]string{"gamma", "core"}, [][]float64{{1, 2, 3}, {0.01, 0.1}})
	points := g.Points()
	require.Len(t, points, 6)
	assert.Equal(t, map[string]float64{"gamma": 1, "core": 0.01}, points[0])
	assert.Equal(t, map[string]float64{"gamma": 3, "core": 0.1}, points[5])
}

func TestSearchFindsSmallestDrift(t *testing.T) {
	g := NewGridSearch([]string{"gamma"}, [][]float64{{2, 0.5, 1}})
	g.Limit = 2

	best, all, err := g.Search(context.Background(), builder(t), "drift")
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, 0.5, best.Params["gamma"])
	// drift is linear in the velocity scale
	assert.InDelta(t, 4*all[1].Value, all[0].Value, 1e-9*all[0].Value)
	assert.Equal(t, []string{"gamma"}, best.Names())
}

func TestSearchErrors(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewGridSearch([]string{"gamma"}, [][]float64{{1}}).Search(ctx, builder(t), "missing")
	assert.Error(t, err)

	_, _, err = NewGridSearch([]string{"gamma"}, nil).Search(ctx, builder(t), "drift")
	assert.Error(t, err)

	_, _, err = NewGridSearch([]string{"bogus"}, [][]float64{{1}}).Search(ctx, builder(t), "drift")
	assert.Error(t, err)

	_, _, err = NewGridSearch([]string{"core"}, [][]float64{{-1}}).Search(ctx, builder(t), "drift")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	name, vals, err := ParseRange("core=0.001, 0.01,0.1")
	require.NoError(t, err)
	assert.Equal(t, "core", name)
	assert.Equal(t, []float64{0.001, 0.01, 0.1}, vals)

	for _, bad := range []string{"core", "=1,2", "core=", "core=a,b"} {
		_, _, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestApplySegments(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, Apply(cfg, "segments", 64))
	assert.Equal(t, 64, cfg.Filament.Segments)
	assert.Error(t, Apply(cfg, "segments", 64.5))
}
