package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/swirlsim/internal/biotsavart"
	"github.com/san-kum/swirlsim/internal/field"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/vec"
)

const (
	DefaultDt          = 0.01
	DefaultSteps       = 200
	DefaultRecordEvery = 10
	DefaultSegments    = 128
	DefaultRadius      = 1.0
	DefaultGamma       = 1.0
	DefaultGridPoints  = 24
	DefaultSpacing     = 0.125
	DefaultMargin      = 2
	DefaultDensity     = 1.0
)

const (
	KindRing      = "ring"
	KindTorusKnot = "torus_knot"
	KindFourier   = "fourier"
)

type Config struct {
	Filament    FilamentConfig    `yaml:"filament"`
	Integrator  string            `yaml:"integrator"`
	Backend     string            `yaml:"backend"`
	Dt          float64           `yaml:"dt"`
	Steps       int               `yaml:"steps"`
	RecordEvery int               `yaml:"record_every"`
	Gamma       float64           `yaml:"gamma"`
	Kernel      biotsavart.Params `yaml:"kernel"`
	Grid        GridConfig        `yaml:"grid"`
	Fluid       FluidConfig       `yaml:"fluid"`
}

type FilamentConfig struct {
	Kind     string   `yaml:"kind"`
	Segments int      `yaml:"segments"`
	Center   vec.Vec3 `yaml:"center"`

	Radius float64 `yaml:"radius"`

	P     int     `yaml:"p"`
	Q     int     `yaml:"q"`
	Major float64 `yaml:"major"`
	Minor float64 `yaml:"minor"`

	Terms []filament.FourierTerm `yaml:"terms"`
}

type GridConfig struct {
	Shape   [3]int  `yaml:"shape"`
	Spacing float64 `yaml:"spacing"`
	Margin  int     `yaml:"margin"`
}

type FluidConfig struct {
	Density   float64 `yaml:"density"`
	PInfinity float64 `yaml:"p_infinity"`
}

func DefaultConfig() *Config {
	return &Config{
		Filament: FilamentConfig{
			Kind:     KindRing,
			Segments: DefaultSegments,
			Radius:   DefaultRadius,
		},
		Integrator:  "rk4",
		Backend:     "auto",
		Dt:          DefaultDt,
		Steps:       DefaultSteps,
		RecordEvery: DefaultRecordEvery,
		Gamma:       DefaultGamma,
		Kernel:      biotsavart.DefaultParams(),
		Grid: GridConfig{
			Shape:   [3]int{DefaultGridPoints, DefaultGridPoints, DefaultGridPoints},
			Spacing: DefaultSpacing,
			Margin:  DefaultMargin,
		},
		Fluid: FluidConfig{
			Density: DefaultDensity,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto overlays the file at path on a copy of base. Fields the file
// does not mention keep their base values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so presets can be overridden without
// touching the shared table.
func (c *Config) Clone() *Config {
	out := *c
	out.Filament.Terms = append([]filament.FourierTerm(nil), c.Filament.Terms...)
	return &out
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func (c *Config) Validate() error {
	if !finite(c.Dt) || c.Dt < 0 {
		return fmt.Errorf("config: %w: dt must be finite and non-negative, got %g", vec.ErrParameter, c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: %w: steps must be non-negative, got %d", vec.ErrParameter, c.Steps)
	}
	if c.RecordEvery < 0 {
		return fmt.Errorf("config: %w: record_every must be non-negative, got %d", vec.ErrParameter, c.RecordEvery)
	}
	if !finite(c.Gamma) {
		return fmt.Errorf("config: %w: gamma must be finite, got %g", vec.ErrParameter, c.Gamma)
	}
	if err := c.Kernel.Validate(); err != nil {
		return fmt.Errorf("config: kernel: %w", err)
	}
	if err := c.Filament.Validate(); err != nil {
		return fmt.Errorf("config: filament: %w", err)
	}
	if _, err := c.Grid.Build(vec.Vec3{}); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if _, err := field.InteriorShape(c.Grid.Shape, c.Grid.Margin); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if !finite(c.Fluid.Density) || c.Fluid.Density < 0 {
		return fmt.Errorf("config: %w: fluid density must be finite and non-negative, got %g", vec.ErrParameter, c.Fluid.Density)
	}
	if !finite(c.Fluid.PInfinity) {
		return fmt.Errorf("config: %w: p_infinity must be finite, got %g", vec.ErrParameter, c.Fluid.PInfinity)
	}
	return nil
}

func (f FilamentConfig) Validate() error {
	if f.Segments < filament.MinPoints {
		return fmt.Errorf("%w: need at least %d segments, got %d", vec.ErrShape, filament.MinPoints, f.Segments)
	}
	switch f.Kind {
	case KindRing:
		if !(f.Radius > 0) {
			return fmt.Errorf("%w: ring radius must be positive, got %g", vec.ErrParameter, f.Radius)
		}
	case KindTorusKnot:
		if f.P <= 0 || f.Q <= 0 {
			return fmt.Errorf("%w: torus knot winding numbers must be positive, got (%d,%d)", vec.ErrParameter, f.P, f.Q)
		}
		if !(f.Minor > 0) || !(f.Major > f.Minor) {
			return fmt.Errorf("%w: torus knot radii need 0 < minor < major, got %g, %g", vec.ErrParameter, f.Minor, f.Major)
		}
	case KindFourier:
		if len(f.Terms) == 0 {
			return fmt.Errorf("%w: fourier filament needs at least one term", vec.ErrShape)
		}
	default:
		return fmt.Errorf("%w: unknown filament kind %q", vec.ErrParameter, f.Kind)
	}
	return nil
}

// Build returns the grid centered on center.
func (g GridConfig) Build(center vec.Vec3) (field.Grid, error) {
	return field.Centered(g.Shape, g.Spacing, center)
}
