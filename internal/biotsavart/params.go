package biotsavart

import (
	"fmt"
	"math"

	"github.com/san-kum/swirlsim/internal/vec"
)

const (
	DefaultCirculation = 1.0
	DefaultCoreRadius  = 1e-3
)

// MinDistance2 is the regularized squared distance below which a filament
// element contributes nothing. Above it every kernel term stays finite.
const MinDistance2 = 1e-200

// Params holds the kernel constants.
type Params struct {
	// Circulation Γ of the filament.
	Circulation float64 `yaml:"circulation"`
	// CoreRadius δ of the Rosenhead-Moore regularization.
	CoreRadius float64 `yaml:"core_radius"`
}

func DefaultParams() Params {
	return Params{
		Circulation: DefaultCirculation,
		CoreRadius:  DefaultCoreRadius,
	}
}

func (p Params) Validate() error {
	if math.IsNaN(p.Circulation) || math.IsInf(p.Circulation, 0) {
		return fmt.Errorf("%w: circulation must be finite, got %g", vec.ErrParameter, p.Circulation)
	}
	if !(p.CoreRadius >= 0) || math.IsInf(p.CoreRadius, 0) {
		return fmt.Errorf("%w: core radius must be finite and non-negative, got %g", vec.ErrParameter, p.CoreRadius)
	}
	return nil
}

func (p Params) prefactor() float64 {
	return p.Circulation / (4 * math.Pi)
}
