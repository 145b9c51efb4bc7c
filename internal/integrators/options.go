package integrators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/biotsavart"
	"github.com/san-kum/swirlsim/internal/vec"
)

// Options configure the self-induced velocity used by the knot steppers:
// v = Gamma * BiotSavart(x; x, t).
type Options struct {
	Gamma  float64           `yaml:"gamma"`
	Kernel biotsavart.Params `yaml:"kernel"`
}

func DefaultOptions() Options {
	return Options{
		Gamma:  1.0,
		Kernel: biotsavart.DefaultParams(),
	}
}

func (o Options) Validate() error {
	if math.IsNaN(o.Gamma) || math.IsInf(o.Gamma, 0) {
		return fmt.Errorf("%w: gamma must be finite, got %v", vec.ErrParameter, o.Gamma)
	}
	return o.Kernel.Validate()
}

// SelfVelocity evaluates the scaled self-induced velocity at every sample.
func SelfVelocity(positions, tangents []vec.Vec3, opts Options) ([]vec.Vec3, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	v, err := biotsavart.SelfInduced(positions, tangents, opts.Kernel)
	if err != nil {
		return nil, err
	}
	if opts.Gamma != 1 {
		for i := range v {
			v[i] = r3.Scale(opts.Gamma, v[i])
		}
	}
	return v, nil
}
