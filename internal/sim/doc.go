// Package sim drives filament evolution: a [Simulator] repeatedly applies
// a [Stepper] to a [State], refreshing tangents, validating states and
// feeding [Metric] and [Observer] hooks.
//
// # Example
//
//	ring, _ := filament.Ring(1, 128, vec.Vec3{})
//	s := sim.New(integrators.NewRK4(integrators.DefaultOptions()))
//	s.AddMetric(metrics.NewDrift())
//	res, err := s.Run(ctx, sim.State{Positions: ring, Tangents: filament.Tangents(ring)}, sim.DefaultConfig())
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Use [Sweep] to run several
// independent simulators concurrently.
package sim
