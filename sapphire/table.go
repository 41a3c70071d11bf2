package sapphire

import (
	"fmt"

	"github.com/drflei/sapphire-event-spectra/band"
)

// High-rigidity spectral indexes shared by all events within a quantity
// (the "all" row of Table 8, Jiggens et al. 2018).
const (
	GammaBetaFluence  = 5.7
	GammaBetaPeakFlux = 5.25
)

// EventParameters bundles the Band function coefficients of one event for
// both spectral quantities.
type EventParameters struct {
	Event    Event       `json:"event"`
	Fluence  band.Params `json:"fluence"`
	PeakFlux band.Params `json:"peak_flux"`
}

// table8 holds the per-event Band function coefficients of Table 8
// (Jiggens et al. 2018). The values are exact reference constants and are
// never recomputed, interpolated, or rounded. R0 in GV; C in
// particles/cm²/sr (fluence) and particles/cm²/sr/s (peak flux).
var table8 = [numEvents]EventParameters{
	OneIn10Year: {
		Event:    OneIn10Year,
		Fluence:  band.Params{GammaLow: 0.85, GammaHigh: GammaBetaFluence, R0: 7.22e-2, C: 1.33e10},
		PeakFlux: band.Params{GammaLow: 2.55, GammaHigh: GammaBetaPeakFlux, R0: 1.30e-1, C: 6.03e3},
	},
	OneIn20Year: {
		Event:    OneIn20Year,
		Fluence:  band.Params{GammaLow: 0.71, GammaHigh: GammaBetaFluence, R0: 7.01e-2, C: 2.81e10},
		PeakFlux: band.Params{GammaLow: 2.35, GammaHigh: GammaBetaPeakFlux, R0: 1.21e-1, C: 1.55e4},
	},
	OneIn50Year: {
		Event:    OneIn50Year,
		Fluence:  band.Params{GammaLow: 0.56, GammaHigh: GammaBetaFluence, R0: 6.81e-2, C: 5.85e10},
		PeakFlux: band.Params{GammaLow: 2.18, GammaHigh: GammaBetaPeakFlux, R0: 1.14e-1, C: 3.58e4},
	},
	OneIn100Year: {
		Event:    OneIn100Year,
		Fluence:  band.Params{GammaLow: 0.48, GammaHigh: GammaBetaFluence, R0: 6.71e-2, C: 8.73e10},
		PeakFlux: band.Params{GammaLow: 2.09, GammaHigh: GammaBetaPeakFlux, R0: 1.11e-1, C: 5.64e4},
	},
	OneIn300Year: {
		Event:    OneIn300Year,
		Fluence:  band.Params{GammaLow: 0.38, GammaHigh: GammaBetaFluence, R0: 6.58e-2, C: 1.45e11},
		PeakFlux: band.Params{GammaLow: 1.99, GammaHigh: GammaBetaPeakFlux, R0: 1.07e-1, C: 9.60e4},
	},
	OneIn1000Year: {
		Event:    OneIn1000Year,
		Fluence:  band.Params{GammaLow: 0.315, GammaHigh: GammaBetaFluence, R0: 6.50e-2, C: 2.14e11},
		PeakFlux: band.Params{GammaLow: 1.90, GammaHigh: GammaBetaPeakFlux, R0: 1.05e-1, C: 1.53e5},
	},
	OneIn10000Year: {
		Event:    OneIn10000Year,
		Fluence:  band.Params{GammaLow: 0.195, GammaHigh: GammaBetaFluence, R0: 6.36e-2, C: 3.95e11},
		PeakFlux: band.Params{GammaLow: 1.77, GammaHigh: GammaBetaPeakFlux, R0: 1.01e-1, C: 2.96e5},
	},
}

// ParameterTable returns the full SAPPHIRE parameter table in canonical
// event order. The returned slice is a copy; the underlying table is
// read-only reference data.
func ParameterTable() []EventParameters {
	out := make([]EventParameters, numEvents)
	copy(out, table8[:])

	return out
}

// Parameters returns the Band function coefficients for one event and
// quantity.
func Parameters(e Event, q Quantity) (band.Params, error) {
	if !e.valid() {
		return band.Params{}, fmt.Errorf("sapphire: event id %d: %w", int(e), ErrUnknownEvent)
	}

	switch q {
	case Fluence:
		return table8[e].Fluence, nil
	case PeakFlux:
		return table8[e].PeakFlux, nil
	default:
		return band.Params{}, fmt.Errorf("sapphire: quantity %d: %w", int(q), ErrUnknownQuantity)
	}
}
