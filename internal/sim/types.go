package sim

import (
	"github.com/san-kum/swirlsim/internal/vec"
)

// State is a filament configuration: sample positions and their tangents
// (line elements), index-aligned.
type State struct {
	Positions []vec.Vec3
	Tangents  []vec.Vec3
}

func (s State) Clone() State {
	return State{Positions: vec.Clone(s.Positions), Tangents: vec.Clone(s.Tangents)}
}

func (s State) Len() int { return len(s.Positions) }

func (s State) IsValid() bool {
	return len(s.Positions) == len(s.Tangents) && vec.AllFinite(s.Positions) && vec.AllFinite(s.Tangents)
}

// Stepper advances a state by dt. It must not modify s.
type Stepper interface {
	Name() string
	Step(s State, t, dt float64) (State, error)
}

type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s State, t float64)
}

type Config struct {
	Dt    float64
	Steps int
	// RecordEvery keeps every n-th state in Result.States; 0 keeps only the
	// first and last.
	RecordEvery int
	// RefreshTangents recomputes tangents from the new positions after
	// every step.
	RefreshTangents bool
	ValidateState   bool
}

func DefaultConfig() Config {
	return Config{
		Dt:              0.01,
		Steps:           100,
		RecordEvery:     10,
		RefreshTangents: true,
		ValidateState:   true,
	}
}

type Result struct {
	States     []State
	Times      []float64
	Metrics    map[string]float64
	History    map[string][]float64
	StepsTaken int
}

// Final is the last recorded state.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return State{}
	}
	return r.States[len(r.States)-1]
}
