// Package metrics provides sim.Metric implementations for filament runs:
// geometry ([Length], [Ropelength], [Drift]) and the regularized Neumann
// self-energy ([SelfEnergy], [EnergyDrift]).
package metrics
