// Package sapphire generates solar energetic proton event spectra from the
// SAPPHIRE model (Jiggens et al. 2018, J. Space Weather Space Clim. 8, A31).
//
// The model assigns each event return period (1-in-10-year through
// 1-in-10000-year) a pair of Band function parameter sets — one for the
// event-integrated fluence and one for the event peak flux — taken from
// Table 8 of the publication. Generate evaluates those spectra over a
// log-uniform kinetic-energy grid and reports them in both rigidity space
// (dJ/dR) and energy space (dJ/dE).
//
// # Usage
//
//	spectra, err := sapphire.GenerateAll()
//	sp := spectra[sapphire.OneIn100Year]
//	// sp.EnergyMeV, sp.FluenceDJdE, sp.FluxDJdE, ...
//
// Custom grids and quantities:
//
//	spectra, err := sapphire.Generate(
//	    []sapphire.Event{sapphire.OneIn100Year, sapphire.OneIn1000Year},
//	    sapphire.WithEnergyRange(1, 1e4),
//	    sapphire.WithPoints(500),
//	    sapphire.WithFlux(false),
//	)
package sapphire
