package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/swirlsim/internal/config"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/integrators"
	"github.com/san-kum/swirlsim/internal/metrics"
	"github.com/san-kum/swirlsim/internal/sim"
)

type Registry struct {
	filaments map[string]func(config.FilamentConfig) (filament.Curve, error)
	steppers  map[string]func(integrators.Options) sim.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		filaments: make(map[string]func(config.FilamentConfig) (filament.Curve, error)),
		steppers:  make(map[string]func(integrators.Options) sim.Stepper),
	}

	r.filaments[config.KindRing] = func(fc config.FilamentConfig) (filament.Curve, error) {
		return filament.Ring(fc.Radius, fc.Segments, fc.Center)
	}
	r.filaments[config.KindTorusKnot] = func(fc config.FilamentConfig) (filament.Curve, error) {
		c, err := filament.TorusKnot(fc.P, fc.Q, fc.Major, fc.Minor, fc.Segments)
		if err != nil {
			return nil, err
		}
		return c.Translate(fc.Center), nil
	}
	r.filaments[config.KindFourier] = func(fc config.FilamentConfig) (filament.Curve, error) {
		c, err := filament.FourierKnot(fc.Terms, fc.Segments)
		if err != nil {
			return nil, err
		}
		return c.Translate(fc.Center), nil
	}

	r.steppers["euler"] = func(opts integrators.Options) sim.Stepper { return integrators.NewEuler(opts) }
	r.steppers["rk4"] = func(opts integrators.Options) sim.Stepper { return integrators.NewRK4(opts) }

	return r
}

func (r *Registry) GetFilament(fc config.FilamentConfig) (filament.Curve, error) {
	fn, ok := r.filaments[fc.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown filament kind: %s", fc.Kind)
	}
	return fn(fc)
}

func (r *Registry) GetStepper(name string, opts integrators.Options) (sim.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(opts), nil
}

func (r *Registry) ListFilaments() []string { return sortedKeys(r.filaments) }

func (r *Registry) ListSteppers() []string { return sortedKeys(r.steppers) }

func (r *Registry) DefaultMetrics(cfg *config.Config) []sim.Metric {
	return []sim.Metric{
		metrics.NewLength(),
		metrics.NewRopelength(cfg.Kernel.CoreRadius),
		metrics.NewDrift(),
		metrics.NewSelfEnergy(cfg.Fluid.Density, cfg.Kernel),
		metrics.NewEnergyDrift(cfg.Fluid.Density, cfg.Kernel),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
