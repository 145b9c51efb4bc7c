// Package vec holds the three-component value type shared by every kernel,
// the boundary adapters that normalize external vector buffers, and the
// error taxonomy returned by the kernels.
//
// Two external layouts are accepted and must produce identical results:
//
//   - nested triples: [][]float64{{x0, y0, z0}, {x1, y1, z1}, ...}
//   - flat buffers:   []float64{x0, y0, z0, x1, y1, z1, ...}
//
// Both are converted to []Vec3 by [FromTriples] and [FromFlat] before any
// kernel runs; [Flatten] goes the other way for output buffers.
package vec
