package experiment

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/biotsavart"
	"github.com/san-kum/swirlsim/internal/config"
	"github.com/san-kum/swirlsim/internal/field"
	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/frenet"
	"github.com/san-kum/swirlsim/internal/invariants"
)

// FieldReport summarizes the flow a filament induces on a grid centered on
// its centroid.
type FieldReport struct {
	Grid     field.Grid
	Interior [3]int

	MaxSpeed      float64
	KineticEnergy float64
	PressureMin   float64
	PressureMax   float64

	// Helicity is ∫ v·ω dV over the interior.
	Helicity   float64
	Invariants invariants.Bundle
}

// AnalyzeField samples the induced velocity on the configured grid, takes
// its curl and reduces the interior samples. The circulation is scaled by
// cfg.Gamma to match the integrators.
func AnalyzeField(curve filament.Curve, cfg *config.Config) (*FieldReport, error) {
	center := curve.Centroid()
	g, err := cfg.Grid.Build(center)
	if err != nil {
		return nil, err
	}

	p := cfg.Kernel
	p.Circulation *= cfg.Gamma
	v, err := biotsavart.VelocityGrid(curve, g.Points(), p)
	if err != nil {
		return nil, err
	}
	w, err := field.ComputeVorticity(v, g)
	if err != nil {
		return nil, err
	}

	speed := field.ComputeVelocityMagnitude(v)
	pressure := field.ComputePressureField(speed, cfg.Fluid.Density, cfg.Fluid.PInfinity)

	report := &FieldReport{
		Grid:          g,
		MaxSpeed:      floats.Max(speed),
		KineticEnergy: field.ComputeKineticEnergy(v, cfg.Fluid.Density) * g.CellVolume(),
	}
	report.PressureMin, report.PressureMax = field.Extrema(pressure)

	interior, err := g.Interior(cfg.Grid.Margin)
	if err != nil {
		return nil, err
	}
	report.Interior = interior.Shape
	vSub, err := field.ExtractInterior(v, g.Shape, cfg.Grid.Margin)
	if err != nil {
		return nil, err
	}
	wSub, err := field.ExtractInterior(w, g.Shape, cfg.Grid.Margin)
	if err != nil {
		return nil, err
	}
	rSq, err := field.ExtractInterior(g.RadiusSquared(center), g.Shape, cfg.Grid.Margin)
	if err != nil {
		return nil, err
	}

	report.Helicity, err = field.ComputeHelicityField(vSub, wSub, g.CellVolume())
	if err != nil {
		return nil, err
	}
	report.Invariants, err = invariants.Compute(vSub, wSub, rSq)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// FrameReport summarizes the differential geometry of a filament.
// Curvature and torsion are per unit arc length.
type FrameReport struct {
	Frames    frenet.Frames
	Curvature []float64
	Torsion   []float64

	MeanCurvature float64
	MaxCurvature  float64
	MeanTorsion   float64
	// TotalCurvature is Σ κ ds; 2π for a circle.
	TotalCurvature float64
	Degenerate     int
}

func AnalyzeFrames(curve filament.Curve) (*FrameReport, error) {
	frames, err := frenet.ComputeFrenetFrames(curve)
	if err != nil {
		return nil, err
	}
	kappa, tau, err := frenet.ComputeCurvatureTorsion(frames.T, frames.N)
	if err != nil {
		return nil, err
	}

	// index derivatives to per-length values; frames reject coincident
	// neighbours, so ds > 0
	n := len(curve)
	ds := make([]float64, n)
	for i := range curve {
		ds[i] = 0.5 * r3.Norm(r3.Sub(curve[curve.Next(i)], curve[curve.Prev(i)]))
		kappa[i] /= ds[i]
		tau[i] /= ds[i]
	}

	report := &FrameReport{
		Frames:         frames,
		Curvature:      kappa,
		Torsion:        tau,
		MeanCurvature:  floats.Sum(kappa) / float64(n),
		MaxCurvature:   floats.Max(kappa),
		MeanTorsion:    floats.Sum(tau) / float64(n),
		TotalCurvature: floats.Dot(kappa, ds),
	}
	for _, d := range frames.Degenerate {
		if d {
			report.Degenerate++
		}
	}
	return report, nil
}
