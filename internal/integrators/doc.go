// Package integrators advances vortex filaments under their self-induced
// velocity: explicit Euler ([EvolveVortexKnot], [Euler]) and classical
// RK4 ([RK4Integrate], [RK4]). Both steppers satisfy sim.Stepper.
package integrators
