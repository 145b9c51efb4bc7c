// Package compute provides the execution backends behind the field kernels.
//
// The package selects a backend once, at startup:
//
//   - cpu: fork-join over index ranges on GOMAXPROCS goroutines
//   - serial: portable single-goroutine fallback
//
// Kernels ask for the active backend and hand it their independent
// per-point loops:
//
//	compute.GetBackend().ParallelFor(len(points), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = eval(points[i])
//	    }
//	})
//
// Results never depend on the backend: each output element is written by
// exactly one range.
//
// Override the automatic choice with [Select] and [SetBackend]:
//
//	b, err := compute.Select("serial")
//	if err != nil {
//	    return err
//	}
//	compute.SetBackend(b)
package compute
