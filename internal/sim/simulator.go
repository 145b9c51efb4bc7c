package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/swirlsim/internal/filament"
)

type Simulator struct {
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(stepper Stepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Stepper() Stepper { return s.stepper }

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if !x0.IsValid() {
		return nil, &SimulationError{Step: 0, Time: 0, Wrapped: ErrInvalidState}
	}

	result := &Result{
		States:  make([]State, 0, 2),
		Times:   make([]float64, 0, 2),
		Metrics: make(map[string]float64),
		History: make(map[string][]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.observe(result, x, t)

		newX, err := s.stepper.Step(x, t, cfg.Dt)
		if err != nil {
			return result, &SimulationError{Step: i, Time: t, Wrapped: err}
		}
		if cfg.RefreshTangents {
			newX.Tangents = filament.Tangents(newX.Positions)
		}
		if cfg.ValidateState && !newX.IsValid() {
			return result, &SimulationError{Step: i, Time: t, Wrapped: ErrInvalidState}
		}

		x = newX
		t += cfg.Dt
		result.StepsTaken++

		last := i == cfg.Steps-1
		if last || (cfg.RecordEvery > 0 && result.StepsTaken%cfg.RecordEvery == 0) {
			result.States = append(result.States, x.Clone())
			result.Times = append(result.Times, t)
		}
	}

	s.observe(result, x, t)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(result *Result, x State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
		result.History[m.Name()] = append(result.History[m.Name()], m.Value())
	}
	for _, obs := range s.observers {
		obs.OnStep(x, t)
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if s.stepper == nil {
		return fmt.Errorf("%w: no stepper", ErrInvalidConfig)
	}
	if cfg.Dt < 0 {
		return fmt.Errorf("%w: dt must be non-negative, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidConfig, cfg.Steps)
	}
	if cfg.RecordEvery < 0 {
		return fmt.Errorf("%w: record interval must be non-negative, got %d", ErrInvalidConfig, cfg.RecordEvery)
	}
	return nil
}
