package metrics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/vec"
)

type Length struct {
	current float64
}

func NewLength() *Length { return &Length{} }

func (l *Length) Name() string { return "length" }

func (l *Length) Observe(s sim.State, t float64) {
	l.current = filament.Curve(s.Positions).Length()
}

func (l *Length) Value() float64 { return l.current }

func (l *Length) Reset() { l.current = 0 }

// Ropelength is the dimensionless length L/(2δ) for core radius δ.
// It reports 0 for a zero core radius.
type Ropelength struct {
	coreRadius float64
	current    float64
}

func NewRopelength(coreRadius float64) *Ropelength {
	return &Ropelength{coreRadius: coreRadius}
}

func (r *Ropelength) Name() string { return "ropelength" }

func (r *Ropelength) Observe(s sim.State, t float64) {
	if r.coreRadius <= 0 {
		r.current = 0
		return
	}
	r.current = filament.Curve(s.Positions).Length() / (2 * r.coreRadius)
}

func (r *Ropelength) Value() float64 { return r.current }

func (r *Ropelength) Reset() { r.current = 0 }

// Drift is the distance of the centroid from where it was first observed.
type Drift struct {
	origin   vec.Vec3
	centroid vec.Vec3
	samples  int
}

func NewDrift() *Drift { return &Drift{} }

func (d *Drift) Name() string { return "drift" }

func (d *Drift) Observe(s sim.State, t float64) {
	d.centroid = filament.Curve(s.Positions).Centroid()
	if d.samples == 0 {
		d.origin = d.centroid
	}
	d.samples++
}

func (d *Drift) Value() float64 {
	return r3.Norm(r3.Sub(d.centroid, d.origin))
}

func (d *Drift) Reset() {
	d.origin = vec.Vec3{}
	d.centroid = vec.Vec3{}
	d.samples = 0
}
