package vec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is the internal point/vector type.
type Vec3 = r3.Vec

// Tiny is the squared-norm threshold below which a vector is treated as zero.
const Tiny = 1e-300

func Cross(a, b Vec3) Vec3 { return r3.Cross(a, b) }

func Dot(a, b Vec3) float64 { return r3.Dot(a, b) }

func Norm(a Vec3) float64 { return r3.Norm(a) }

// Normalize returns a/|a| and true, or the zero vector and false when a has
// no usable direction.
func Normalize(a Vec3) (Vec3, bool) {
	n2 := r3.Norm2(a)
	if n2 <= Tiny || math.IsInf(n2, 0) || math.IsNaN(n2) {
		return Vec3{}, false
	}
	return r3.Scale(1/math.Sqrt(n2), a), true
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(a Vec3) bool {
	return !(math.IsNaN(a.X) || math.IsInf(a.X, 0) ||
		math.IsNaN(a.Y) || math.IsInf(a.Y, 0) ||
		math.IsNaN(a.Z) || math.IsInf(a.Z, 0))
}

// AllFinite reports whether every vector in vs is finite.
func AllFinite(vs []Vec3) bool {
	for _, v := range vs {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// Clone returns a copy of vs.
func Clone(vs []Vec3) []Vec3 {
	c := make([]Vec3, len(vs))
	copy(c, vs)
	return c
}

// Orthogonal returns a unit vector perpendicular to a. The axis least
// aligned with a is crossed with it, so the result is stable for any
// non-zero input.
func Orthogonal(a Vec3) Vec3 {
	ax, ay, az := math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)
	axis := Vec3{X: 1}
	switch {
	case ay <= ax && ay <= az:
		axis = Vec3{Y: 1}
	case az <= ax && az <= ay:
		axis = Vec3{Z: 1}
	}
	u, ok := Normalize(r3.Cross(a, axis))
	if !ok {
		return Vec3{X: 1}
	}
	return u
}
