// Package invariants folds interior velocity and vorticity samples into the
// three conserved-quantity scalars of the swirl-string model.
package invariants

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// Bundle holds the reduced invariants.
type Bundle struct {
	// HCharge is the helicity Σ v·ω.
	HCharge float64 `json:"hCharge" yaml:"h_charge"`
	// HMass is the radius-weighted enstrophy Σ |ω|² r².
	HMass float64 `json:"hMass" yaml:"h_mass"`
	// AMu is the anomaly ½(HCharge/HMass - 1).
	AMu float64 `json:"aMu" yaml:"a_mu"`
}

// Compute reduces equal-length velocity, vorticity and squared-radius
// samples. AMu is 0 when HMass is 0.
func Compute(vSub, wSub []vec.Vec3, rSq []float64) (Bundle, error) {
	if len(vSub) != len(wSub) || len(vSub) != len(rSq) {
		return Bundle{}, fmt.Errorf("%w: velocity %d, vorticity %d, radii %d",
			vec.ErrDimensionMismatch, len(vSub), len(wSub), len(rSq))
	}

	var b Bundle
	b.HCharge = floats.Dot(vec.Flatten(vSub), vec.Flatten(wSub))

	enstrophy := make([]float64, len(wSub))
	for i, w := range wSub {
		enstrophy[i] = r3.Norm2(w)
	}
	b.HMass = floats.Dot(enstrophy, rSq)

	if b.HMass != 0 {
		b.AMu = 0.5 * (b.HCharge/b.HMass - 1)
	}
	return b, nil
}
