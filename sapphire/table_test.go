package sapphire

import (
	"errors"
	"testing"

	"github.com/drflei/sapphire-event-spectra/band"
)

func TestParameterTableComplete(t *testing.T) {
	table := ParameterTable()
	if len(table) != 7 {
		t.Fatalf("ParameterTable() has %d rows, want 7", len(table))
	}

	seen := map[Event]bool{}

	for i, row := range table {
		if row.Event != Events()[i] {
			t.Errorf("row %d event = %v, want %v", i, row.Event, Events()[i])
		}

		if seen[row.Event] {
			t.Errorf("duplicate row for event %v", row.Event)
		}

		seen[row.Event] = true

		if err := row.Fluence.Validate(); err != nil {
			t.Errorf("%v fluence params invalid: %v", row.Event, err)
		}

		if err := row.PeakFlux.Validate(); err != nil {
			t.Errorf("%v peak flux params invalid: %v", row.Event, err)
		}

		if row.Fluence.GammaHigh != GammaBetaFluence {
			t.Errorf("%v fluence γb = %g, want %g", row.Event, row.Fluence.GammaHigh, GammaBetaFluence)
		}

		if row.PeakFlux.GammaHigh != GammaBetaPeakFlux {
			t.Errorf("%v peak flux γb = %g, want %g", row.Event, row.PeakFlux.GammaHigh, GammaBetaPeakFlux)
		}
	}
}

func TestParametersLookupEveryPair(t *testing.T) {
	for _, ev := range Events() {
		for _, q := range []Quantity{Fluence, PeakFlux} {
			p, err := Parameters(ev, q)
			if err != nil {
				t.Fatalf("Parameters(%v, %v): %v", ev, q, err)
			}

			if err := p.Validate(); err != nil {
				t.Errorf("Parameters(%v, %v) invalid: %v", ev, q, err)
			}
		}
	}
}

func TestParametersExactReferenceValues(t *testing.T) {
	// Spot checks against Table 8 (Jiggens et al. 2018).
	tests := []struct {
		event Event
		q     Quantity
		want  band.Params
	}{
		{OneIn100Year, Fluence, band.Params{GammaLow: 0.48, GammaHigh: 5.7, R0: 6.71e-2, C: 8.73e10}},
		{OneIn100Year, PeakFlux, band.Params{GammaLow: 2.09, GammaHigh: 5.25, R0: 1.11e-1, C: 5.64e4}},
		{OneIn10Year, Fluence, band.Params{GammaLow: 0.85, GammaHigh: 5.7, R0: 7.22e-2, C: 1.33e10}},
		{OneIn10000Year, PeakFlux, band.Params{GammaLow: 1.77, GammaHigh: 5.25, R0: 1.01e-1, C: 2.96e5}},
		{OneIn1000Year, Fluence, band.Params{GammaLow: 0.315, GammaHigh: 5.7, R0: 6.50e-2, C: 2.14e11}},
	}

	for _, tt := range tests {
		got, err := Parameters(tt.event, tt.q)
		if err != nil {
			t.Fatal(err)
		}

		if got != tt.want {
			t.Errorf("Parameters(%v, %v) = %+v, want %+v", tt.event, tt.q, got, tt.want)
		}
	}
}

func TestParametersUnknownKeys(t *testing.T) {
	_, err := Parameters(Event(99), Fluence)
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("unknown event error = %v, want %v", err, ErrUnknownEvent)
	}

	_, err = Parameters(OneIn100Year, Quantity(5))
	if !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("unknown quantity error = %v, want %v", err, ErrUnknownQuantity)
	}
}

func TestParameterTableIsACopy(t *testing.T) {
	table := ParameterTable()
	table[0].Fluence.C = -1

	fresh := ParameterTable()
	if fresh[0].Fluence.C != 1.33e10 {
		t.Error("mutating the returned table leaked into the reference data")
	}
}
