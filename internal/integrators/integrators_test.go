package integrators

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/vec"
)

func maxDiff(a, b []vec.Vec3) float64 {
	d := 0.0
	for i := range a {
		d = math.Max(d, r3.Norm(r3.Sub(a[i], b[i])))
	}
	return d
}

func knotState(t *testing.T) ([]vec.Vec3, []vec.Vec3) {
	t.Helper()
	c, err := filament.TorusKnot(2, 3, 1.0, 0.4, 96)
	if err != nil {
		t.Fatal(err)
	}
	return c, filament.Tangents(c)
}

func TestEvolvePositionsEuler(t *testing.T) {
	x := []vec.Vec3{{X: 1}, {Y: 2}, {Z: -1}}
	v := []vec.Vec3{{X: 1, Y: 1}, {Z: 3}, {X: -2}}

	got, err := EvolvePositionsEuler(x, v, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec3{{X: 1.5, Y: 0.5}, {Y: 2, Z: 1.5}, {X: -1, Z: -1}}
	if d := maxDiff(got, want); d > 1e-15 {
		t.Errorf("euler update off by %e", d)
	}
}

func TestEvolvePositionsEulerZeroStep(t *testing.T) {
	x, tan := knotState(t)
	v, err := SelfVelocity(x, tan, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	got, err := EvolvePositionsEuler(x, v, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if got[i] != x[i] {
			t.Fatalf("dt=0 moved point %d: %v -> %v", i, x[i], got[i])
		}
	}
}

func TestEvolvePositionsEulerMismatch(t *testing.T) {
	_, err := EvolvePositionsEuler(make([]vec.Vec3, 3), make([]vec.Vec3, 2), 0.1)
	if !errors.Is(err, vec.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestEvolveVortexKnotIsEulerOfSelfVelocity(t *testing.T) {
	x, tan := knotState(t)
	opts := DefaultOptions()
	opts.Gamma = 2.5

	v, err := SelfVelocity(x, tan, opts)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := EvolvePositionsEuler(x, v, 0.01)
	got, err := EvolveVortexKnot(x, tan, 0.01, opts)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(got, want); d > 1e-14 {
		t.Errorf("knot step differs from explicit euler by %e", d)
	}
}

func TestGammaScalesDisplacement(t *testing.T) {
	x, tan := knotState(t)
	one := DefaultOptions()
	two := DefaultOptions()
	two.Gamma = 2

	a, _ := EvolveVortexKnot(x, tan, 0.01, one)
	b, _ := EvolveVortexKnot(x, tan, 0.01, two)
	for i := range x {
		da := r3.Sub(a[i], x[i])
		db := r3.Sub(b[i], x[i])
		if r3.Norm(r3.Sub(db, r3.Scale(2, da))) > 1e-12 {
			t.Fatalf("point %d: displacement not doubled", i)
		}
	}
}

func TestRK4ZeroStepIsIdentity(t *testing.T) {
	x, tan := knotState(t)
	got, err := RK4Integrate(x, tan, 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(got, x); d != 0 {
		t.Errorf("dt=0 moved points by %e", d)
	}
}

func TestEulerAndRK4Converge(t *testing.T) {
	x, tan := knotState(t)
	opts := DefaultOptions()

	diff := func(dt float64) float64 {
		e, err := EvolveVortexKnot(x, tan, dt, opts)
		if err != nil {
			t.Fatal(err)
		}
		r, err := RK4Integrate(x, tan, dt, opts)
		if err != nil {
			t.Fatal(err)
		}
		return maxDiff(e, r)
	}

	coarse := diff(1e-2)
	fine := diff(1e-3)
	if coarse <= 0 {
		t.Fatal("schemes agree exactly on a non-rigid knot")
	}
	// one-step difference is second order in dt
	if fine > coarse/20 {
		t.Errorf("difference did not shrink quadratically: %e -> %e", coarse, fine)
	}
}

func TestRingTranslatesAlongAxis(t *testing.T) {
	const radius = 1.0
	ring, err := filament.Ring(radius, 128, vec.Vec3{})
	if err != nil {
		t.Fatal(err)
	}
	tan := filament.Tangents(ring)

	got, err := RK4Integrate(ring, tan, 0.05, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	shift := got[0].Z
	if shift <= 0 {
		t.Fatalf("ring should move along +z, moved %e", shift)
	}
	for i, p := range got {
		if math.Abs(p.Z-shift) > 1e-9 {
			t.Errorf("point %d: z=%e, want %e", i, p.Z, shift)
		}
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-radius) > 1e-9 {
			t.Errorf("point %d: radius drifted to %f", i, r)
		}
	}
}

func TestSteppersKeepTangents(t *testing.T) {
	x, tan := knotState(t)
	s := sim.State{Positions: x, Tangents: tan}

	for _, st := range []sim.Stepper{NewEuler(DefaultOptions()), NewRK4(DefaultOptions())} {
		next, err := st.Step(s, 0, 0.01)
		if err != nil {
			t.Fatalf("%s: %v", st.Name(), err)
		}
		if next.Len() != s.Len() {
			t.Errorf("%s: length changed", st.Name())
		}
		if maxDiff(next.Tangents, tan) != 0 {
			t.Errorf("%s: tangents modified", st.Name())
		}
		if maxDiff(s.Positions, x) != 0 {
			t.Errorf("%s: input state mutated", st.Name())
		}
	}
}

func TestRK4ReusesScratchAcrossSizes(t *testing.T) {
	r := NewRK4(DefaultOptions())
	small, _ := filament.Ring(1, 16, vec.Vec3{})
	large, _ := filament.Ring(1, 64, vec.Vec3{})

	for _, c := range []filament.Curve{small, large, small} {
		got, err := r.Advance(c, filament.Tangents(c), 0.01)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := RK4Integrate(c, filament.Tangents(c), 0.01, DefaultOptions())
		if maxDiff(got, want) != 0 {
			t.Errorf("reused stepper differs on %d points", len(c))
		}
	}
}

func TestInvalidOptions(t *testing.T) {
	x, tan := knotState(t)
	opts := DefaultOptions()
	opts.Gamma = math.NaN()
	if _, err := EvolveVortexKnot(x, tan, 0.1, opts); !errors.Is(err, vec.ErrParameter) {
		t.Errorf("expected ErrParameter, got %v", err)
	}

	opts = DefaultOptions()
	opts.Kernel.CoreRadius = -1
	if _, err := RK4Integrate(x, tan, 0.1, opts); !errors.Is(err, vec.ErrParameter) {
		t.Errorf("expected ErrParameter, got %v", err)
	}

	if _, err := RK4Integrate(x, tan[:10], 0.1, DefaultOptions()); !errors.Is(err, vec.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}
