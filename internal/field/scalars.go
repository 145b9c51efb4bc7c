package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/vec"
)

// ComputeVelocityMagnitude returns |v| per point.
func ComputeVelocityMagnitude(velocity []vec.Vec3) []float64 {
	mag := make([]float64, len(velocity))
	for i, v := range velocity {
		mag[i] = r3.Norm(v)
	}
	return mag
}

// ComputePressureField applies Bernoulli, p = pInf - ½·rho·|v|², per point.
func ComputePressureField(velocityMagnitude []float64, rhoAe, pInfinity float64) []float64 {
	p := make([]float64, len(velocityMagnitude))
	for i, m := range velocityMagnitude {
		p[i] = pInfinity - 0.5*rhoAe*m*m
	}
	return p
}

// ComputeKineticEnergy is ½·rho·Σ|v|².
func ComputeKineticEnergy(velocity []vec.Vec3, rhoAe float64) float64 {
	flat := vec.Flatten(velocity)
	return 0.5 * rhoAe * floats.Dot(flat, flat)
}

// ComputeHelicityField is the volume-weighted helicity Σ(v·ω)·dV.
func ComputeHelicityField(velocity, vorticity []vec.Vec3, dV float64) (float64, error) {
	if len(velocity) != len(vorticity) {
		return 0, fmt.Errorf("%w: velocity has %d points, vorticity %d", vec.ErrDimensionMismatch, len(velocity), len(vorticity))
	}
	return floats.Dot(vec.Flatten(velocity), vec.Flatten(vorticity)) * dV, nil
}

// SwirlClockRate is the local rotation rate ½·(∂v/∂x - ∂u/∂y).
func SwirlClockRate(dvDx, duDy float64) float64 {
	return 0.5 * (dvDx - duDy)
}

// Extrema returns the smallest and largest value of xs, or zeros when xs
// is empty.
func Extrema(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return floats.Min(xs), floats.Max(xs)
}
