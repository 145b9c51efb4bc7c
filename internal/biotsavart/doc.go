// Package biotsavart computes the velocity induced by closed vortex
// filaments.
//
// Two discretizations are provided:
//
//   - chord form ([ComputeVelocity], [VelocityGrid]): the filament is a
//     closed polyline and every straight segment contributes the exact
//     segment integral;
//   - tangent form ([Velocity], [SelfInduced]): every sample carries a
//     tangent (line element) and contributes a point source.
//
// # Regularization
//
// Both forms use Rosenhead-Moore smoothing with core radius δ
// (Params.CoreRadius). For a segment from a to b evaluated at p, with
// r1 = p-a, r2 = p-b and r0 = b-a:
//
//	v = Γ/4π · (r1×r2) · r0·(r1/|r1| - r2/|r2|) / (|r1×r2|² + δ²|r0|²)
//
// and for a tangent sample t at x, with R = p-x:
//
//	v = Γ/4π · t×R / (|R|² + δ²)^(3/2)
//
// Zero-length segments contribute nothing, and an evaluation point that
// coincides with a sample contributes exactly zero, so the kernels return
// finite values for all finite input. With δ = 0 the classical singular
// kernels are recovered away from the filament.
//
// The grid loops run through the active [compute.Backend].
package biotsavart
