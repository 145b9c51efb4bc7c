package optim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/swirlsim/internal/experiment"
	"github.com/san-kum/swirlsim/internal/sim"
)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Limit bounds concurrent runs; 0 means unbounded.
	Limit int
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Point is one evaluated grid point.
type Point struct {
	Params map[string]float64
	Value  float64
}

// Points enumerates the cartesian product of the parameter ranges.
func (g *GridSearch) Points() []map[string]float64 {
	var out []map[string]float64
	g.collect(0, make(map[string]float64), &out)
	return out
}

func (g *GridSearch) collect(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.paramNames) {
		*out = append(*out, current)
		return
	}
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[g.paramNames[depth]] = val
		g.collect(depth+1, next, out)
	}
}

// Search runs one experiment per grid point concurrently and returns the
// point minimizing metricName, plus every evaluated point in grid order.
func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) (Point, []Point, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Point{}, nil, fmt.Errorf("optim: %d parameter names but %d ranges", len(g.paramNames), len(g.ranges))
	}

	points := g.Points()
	if len(points) == 0 {
		return Point{}, nil, fmt.Errorf("optim: empty search grid")
	}

	jobs := make([]sim.Job, len(points))
	for i, params := range points {
		exp, err := buildExperiment(params)
		if err != nil {
			return Point{}, nil, fmt.Errorf("optim: %v: %w", params, err)
		}
		jobs[i] = sim.Job{
			Name:   fmt.Sprint(params),
			Sim:    exp.GetSimulator(),
			Init:   exp.InitialState(),
			Config: exp.SimConfig(),
		}
	}

	results, err := sim.Sweep(ctx, jobs, g.Limit)
	if err != nil {
		return Point{}, nil, err
	}

	best := Point{Value: math.Inf(1)}
	evaluated := make([]Point, len(points))
	for i, res := range results {
		val, ok := res.Metrics[metricName]
		if !ok {
			return Point{}, nil, fmt.Errorf("optim: unknown metric %q", metricName)
		}
		evaluated[i] = Point{Params: points[i], Value: val}
		if val < best.Value {
			best = evaluated[i]
		}
	}
	return best, evaluated, nil
}

// Names lists the parameter names in sorted order.
func (p Point) Names() []string {
	names := make([]string, 0, len(p.Params))
	for k := range p.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
