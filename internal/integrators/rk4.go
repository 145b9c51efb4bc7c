package integrators

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/vec"
)

// RK4 is the classical fourth-order Runge-Kutta scheme applied to the
// self-induced velocity. Tangents are held fixed across the four stages;
// the simulator refreshes them between steps.
type RK4 struct {
	opts           Options
	k1, k2, k3, k4 []vec.Vec3
	scratch        []vec.Vec3
}

func NewRK4(opts Options) *RK4 {
	return &RK4{opts: opts}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.k1 = make([]vec.Vec3, n)
		r.k2 = make([]vec.Vec3, n)
		r.k3 = make([]vec.Vec3, n)
		r.k4 = make([]vec.Vec3, n)
		r.scratch = make([]vec.Vec3, n)
	}
}

func (r *RK4) stage(dst, x, k []vec.Vec3, h float64) {
	for i := range x {
		dst[i] = r3.Add(x[i], r3.Scale(h, k[i]))
	}
}

func (r *RK4) derive(dst, x, tangents []vec.Vec3) error {
	v, err := SelfVelocity(x, tangents, r.opts)
	if err != nil {
		return err
	}
	copy(dst, v)
	return nil
}

// Advance performs one RK4 step and returns the new positions.
func (r *RK4) Advance(positions, tangents []vec.Vec3, dt float64) ([]vec.Vec3, error) {
	n := len(positions)
	r.ensureScratch(n)

	if err := r.derive(r.k1, positions, tangents); err != nil {
		return nil, err
	}

	r.stage(r.scratch, positions, r.k1, 0.5*dt)
	if err := r.derive(r.k2, r.scratch, tangents); err != nil {
		return nil, err
	}

	r.stage(r.scratch, positions, r.k2, 0.5*dt)
	if err := r.derive(r.k3, r.scratch, tangents); err != nil {
		return nil, err
	}

	r.stage(r.scratch, positions, r.k3, dt)
	if err := r.derive(r.k4, r.scratch, tangents); err != nil {
		return nil, err
	}

	result := make([]vec.Vec3, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		sum := r3.Add(r3.Add(r.k1[i], r3.Scale(2, r.k2[i])), r3.Add(r3.Scale(2, r.k3[i]), r.k4[i]))
		result[i] = r3.Add(positions[i], r3.Scale(dt6, sum))
	}
	return result, nil
}

func (r *RK4) Step(s sim.State, t, dt float64) (sim.State, error) {
	x, err := r.Advance(s.Positions, s.Tangents, dt)
	if err != nil {
		return sim.State{}, err
	}
	return sim.State{Positions: x, Tangents: vec.Clone(s.Tangents)}, nil
}

// RK4Integrate performs one RK4 step with freshly allocated scratch space.
func RK4Integrate(positions, tangents []vec.Vec3, dt float64, opts Options) ([]vec.Vec3, error) {
	return NewRK4(opts).Advance(positions, tangents, dt)
}
