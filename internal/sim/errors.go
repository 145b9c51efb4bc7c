package sim

import "errors"

var (
	// ErrInvalidState indicates a state with NaN/Inf values or misaligned
	// tangents.
	ErrInvalidState = errors.New("sim: invalid state (NaN, Inf or misaligned tangents)")

	// ErrInvalidConfig indicates a run configuration that cannot be executed.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")
)

// SimulationError wraps a failure with the step at which it happened.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
