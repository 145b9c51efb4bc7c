package optim

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/swirlsim/internal/config"
)

// Tunable are the config fields a search may vary.
var Tunable = []string{"circulation", "core", "dt", "gamma", "radius", "segments"}

// Apply sets the named tunable on cfg.
func Apply(cfg *config.Config, name string, v float64) error {
	switch name {
	case "circulation":
		cfg.Kernel.Circulation = v
	case "core":
		cfg.Kernel.CoreRadius = v
	case "dt":
		cfg.Dt = v
	case "gamma":
		cfg.Gamma = v
	case "radius":
		cfg.Filament.Radius = v
	case "segments":
		if v != math.Trunc(v) {
			return fmt.Errorf("optim: segments must be an integer, got %g", v)
		}
		cfg.Filament.Segments = int(v)
	default:
		return fmt.Errorf("optim: unknown parameter %q (tunable: %v)", name, Tunable)
	}
	return nil
}

// ParseRange parses "name=v1,v2,..." into a name and its values.
func ParseRange(arg string) (string, []float64, error) {
	name, list, ok := strings.Cut(arg, "=")
	if !ok || name == "" || list == "" {
		return "", nil, fmt.Errorf("optim: expected name=v1,v2,..., got %q", arg)
	}
	fields := strings.Split(list, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", nil, fmt.Errorf("optim: %s: %w", name, err)
		}
		values[i] = v
	}
	return strings.TrimSpace(name), values, nil
}
