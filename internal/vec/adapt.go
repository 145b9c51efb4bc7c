package vec

import "fmt"

// FromTriples converts nested triples to []Vec3.
func FromTriples(triples [][]float64) ([]Vec3, error) {
	out := make([]Vec3, len(triples))
	for i, t := range triples {
		if len(t) != 3 {
			return nil, fmt.Errorf("%w: element %d has %d components, want 3", ErrShape, i, len(t))
		}
		out[i] = Vec3{X: t[0], Y: t[1], Z: t[2]}
	}
	return out, nil
}

// FromFlat converts an x-major interleaved buffer to []Vec3.
func FromFlat(flat []float64) ([]Vec3, error) {
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("%w: flat buffer length %d is not a multiple of 3", ErrShape, len(flat))
	}
	out := make([]Vec3, len(flat)/3)
	for i := range out {
		out[i] = Vec3{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return out, nil
}

// Flatten writes vs as x0,y0,z0,x1,... .
func Flatten(vs []Vec3) []float64 {
	out := make([]float64, 3*len(vs))
	for i, v := range vs {
		out[3*i] = v.X
		out[3*i+1] = v.Y
		out[3*i+2] = v.Z
	}
	return out
}

// Triples writes vs as nested triples.
func Triples(vs []Vec3) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v.X, v.Y, v.Z}
	}
	return out
}
