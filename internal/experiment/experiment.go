package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/swirlsim/internal/config"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/integrators"
	"github.com/san-kum/swirlsim/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	curve     filament.Curve
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
	}
}

// Setup validates the configuration, samples the initial filament and
// builds the stepper with the default metrics. Extra metrics are appended.
func (e *Experiment) Setup(extra ...sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	curve, err := e.registry.GetFilament(e.cfg.Filament)
	if err != nil {
		return err
	}
	stepper, err := e.registry.GetStepper(e.cfg.Integrator, e.Options())
	if err != nil {
		return err
	}

	e.curve = curve
	e.simulator = sim.New(stepper)
	for _, m := range e.registry.DefaultMetrics(e.cfg) {
		e.simulator.AddMetric(m)
	}
	for _, m := range extra {
		e.simulator.AddMetric(m)
	}
	return nil
}

// Options are the integrator options derived from the configuration.
func (e *Experiment) Options() integrators.Options {
	return integrators.Options{Gamma: e.cfg.Gamma, Kernel: e.cfg.Kernel}
}

// InitialState is the sampled filament with its tangents.
func (e *Experiment) InitialState() sim.State {
	return sim.State{Positions: e.curve, Tangents: filament.Tangents(e.curve)}
}

func (e *Experiment) Curve() filament.Curve { return e.curve }

func (e *Experiment) SimConfig() sim.Config {
	return sim.Config{
		Dt:              e.cfg.Dt,
		Steps:           e.cfg.Steps,
		RecordEvery:     e.cfg.RecordEvery,
		RefreshTangents: true,
		ValidateState:   true,
	}
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.InitialState(), e.SimConfig())
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}
