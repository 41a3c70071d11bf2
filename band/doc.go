// Package band evaluates the Band function, a broken power law used to
// describe differential particle spectra in rigidity space.
//
// Two spectral forms are provided:
//
//   - FormSmooth: a smoothed broken power law
//     dJ/dR = C·R^(-γa)·(1 + R/R0)^(-(γb-γa)),
//     which behaves as R^(-γa) well below R0 and as R^(-γb) well above it.
//   - FormExpCutoff: the piecewise form of Jiggens et al. (2018), with an
//     exponential cutoff below the break rigidity Rb = (γb-γa)·R0 and a
//     pure power law above it, joined continuously at Rb.
//
// Evaluation is carried out with logarithmic intermediates so that spectra
// spanning many decades of rigidity stay finite in float64 arithmetic.
//
// # Usage
//
//	p := band.Params{GammaLow: 0.48, GammaHigh: 5.7, R0: 6.71e-2, C: 8.73e10}
//	dJdR, err := band.Evaluate(rigidityGV, p)
package band
