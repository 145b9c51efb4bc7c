package integrators

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/vec"
)

// EvolvePositionsEuler returns x + dt*v. dt may be zero or negative.
func EvolvePositionsEuler(positions, velocity []vec.Vec3, dt float64) ([]vec.Vec3, error) {
	if len(positions) != len(velocity) {
		return nil, fmt.Errorf("%w: %d positions, %d velocities", vec.ErrDimensionMismatch, len(positions), len(velocity))
	}
	result := make([]vec.Vec3, len(positions))
	for i := range positions {
		result[i] = r3.Add(positions[i], r3.Scale(dt, velocity[i]))
	}
	return result, nil
}

// EvolveVortexKnot advances a filament by one explicit Euler step of its
// own self-induced velocity.
func EvolveVortexKnot(positions, tangents []vec.Vec3, dt float64, opts Options) ([]vec.Vec3, error) {
	v, err := SelfVelocity(positions, tangents, opts)
	if err != nil {
		return nil, err
	}
	return EvolvePositionsEuler(positions, v, dt)
}

type Euler struct {
	opts Options
}

func NewEuler(opts Options) *Euler {
	return &Euler{opts: opts}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(s sim.State, t, dt float64) (sim.State, error) {
	x, err := EvolveVortexKnot(s.Positions, s.Tangents, dt, e.opts)
	if err != nil {
		return sim.State{}, err
	}
	return sim.State{Positions: x, Tangents: vec.Clone(s.Tangents)}, nil
}
