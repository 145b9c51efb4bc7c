package config

import (
	"sort"

	"github.com/san-kum/swirlsim/internal/biotsavart"
	"github.com/san-kum/swirlsim/internal/filament"
)

var defaultGrid = GridConfig{Shape: [3]int{24, 24, 24}, Spacing: 0.125, Margin: 2}

var Presets = map[string]map[string]*Config{
	KindRing: {
		"unit": {
			Filament:   FilamentConfig{Kind: KindRing, Segments: 128, Radius: 1},
			Integrator: "rk4", Dt: 0.01, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.DefaultParams(), Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
		"fine": {
			Filament:   FilamentConfig{Kind: KindRing, Segments: 512, Radius: 1},
			Integrator: "rk4", Dt: 0.005, Steps: 400, RecordEvery: 20, Gamma: 1,
			Kernel: biotsavart.DefaultParams(), Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
		"thick": {
			Filament:   FilamentConfig{Kind: KindRing, Segments: 128, Radius: 1},
			Integrator: "rk4", Dt: 0.01, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.Params{Circulation: 1, CoreRadius: 0.1}, Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
		"euler": {
			Filament:   FilamentConfig{Kind: KindRing, Segments: 128, Radius: 1},
			Integrator: "euler", Dt: 0.001, Steps: 2000, RecordEvery: 100, Gamma: 1,
			Kernel: biotsavart.DefaultParams(), Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
	},
	KindTorusKnot: {
		"trefoil": {
			Filament:   FilamentConfig{Kind: KindTorusKnot, Segments: 256, P: 2, Q: 3, Major: 1, Minor: 0.4},
			Integrator: "rk4", Dt: 0.002, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.Params{Circulation: 1, CoreRadius: 0.01}, Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
		"cinquefoil": {
			Filament:   FilamentConfig{Kind: KindTorusKnot, Segments: 384, P: 2, Q: 5, Major: 1, Minor: 0.35},
			Integrator: "rk4", Dt: 0.002, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.Params{Circulation: 1, CoreRadius: 0.01}, Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
		"3_4": {
			Filament:   FilamentConfig{Kind: KindTorusKnot, Segments: 384, P: 3, Q: 4, Major: 1, Minor: 0.3},
			Integrator: "rk4", Dt: 0.001, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.Params{Circulation: 1, CoreRadius: 0.01}, Grid: defaultGrid, Fluid: FluidConfig{Density: 1},
		},
	},
	KindFourier: {
		"trefoil": {
			Filament:   FilamentConfig{Kind: KindFourier, Segments: 256, Terms: filament.Trefoil()},
			Integrator: "rk4", Dt: 0.005, Steps: 200, RecordEvery: 10, Gamma: 1,
			Kernel: biotsavart.Params{Circulation: 1, CoreRadius: 0.02},
			Grid:   GridConfig{Shape: [3]int{32, 32, 32}, Spacing: 0.25, Margin: 2}, Fluid: FluidConfig{Density: 1},
		},
	},
}

var defaultPresets = map[string]string{
	KindRing:      "unit",
	KindTorusKnot: "trefoil",
	KindFourier:   "trefoil",
}

// DefaultPreset names the preset used when only a kind is given.
func DefaultPreset(kind string) string {
	if name, ok := defaultPresets[kind]; ok {
		return name
	}
	if names := ListPresets(kind); len(names) > 0 {
		return names[0]
	}
	return ""
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListKinds() []string {
	kinds := make([]string, 0, len(Presets))
	for kind := range Presets {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
