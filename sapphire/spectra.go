package sapphire

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/drflei/sapphire-event-spectra/band"
	"github.com/drflei/sapphire-event-spectra/proton"
)

// Spectrum holds the generated spectra of one event.
//
// The energy and rigidity grids are always present. The per-quantity
// sequences and parameter sets are present only when the corresponding
// quantity was requested. Fluence spectra are in particles/cm²/sr/GV
// (dJ/dR) and particles/cm²/sr/MeV (dJ/dE); flux spectra carry an
// additional /s. Results are not cached and must be treated as immutable:
// the grids are shared between the events of one Generate call.
type Spectrum struct {
	Event       Event     `json:"event"`
	EnergyMeV   []float64 `json:"energy_MeV"`
	RigidityGV  []float64 `json:"rigidity_GV"`
	FluenceDJdR []float64 `json:"fluence_dJ_dR,omitempty"`
	FluenceDJdE []float64 `json:"fluence_dJ_dE,omitempty"`
	FluxDJdR    []float64 `json:"flux_dJ_dR,omitempty"`
	FluxDJdE    []float64 `json:"flux_dJ_dE,omitempty"`

	FluenceParams *band.Params `json:"fluence_parameters,omitempty"`
	FluxParams    *band.Params `json:"flux_parameters,omitempty"`
}

// Generate builds SAPPHIRE spectra for the requested events. A nil or
// empty event list selects all events; duplicates are processed once.
//
// The whole call fails with ErrUnknownEvent when any requested id lies
// outside the canonical event set — the error names every offending id and
// no partial results are returned. Invalid grid configuration fails before
// any computation starts. Two calls with identical arguments yield
// bit-identical results.
func Generate(events []Event, opts ...Option) (map[Event]*Spectrum, error) {
	cfg := ApplyOptions(opts...)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	selected, err := selectEvents(events)
	if err != nil {
		return nil, err
	}

	energy := logGrid(cfg.EMinMeV, cfg.EMaxMeV, cfg.Points)

	rigidity, err := proton.EnergiesToRigidities(energy)
	if err != nil {
		return nil, err
	}

	results := make(map[Event]*Spectrum, len(selected))

	for _, ev := range selected {
		sp := &Spectrum{
			Event:      ev,
			EnergyMeV:  energy,
			RigidityGV: rigidity,
		}

		if cfg.IncludeFluence {
			params := table8[ev].Fluence

			sp.FluenceDJdR, sp.FluenceDJdE, err = evaluateQuantity(rigidity, energy, params, cfg.Form)
			if err != nil {
				return nil, err
			}

			sp.FluenceParams = &params
		}

		if cfg.IncludeFlux {
			params := table8[ev].PeakFlux

			sp.FluxDJdR, sp.FluxDJdE, err = evaluateQuantity(rigidity, energy, params, cfg.Form)
			if err != nil {
				return nil, err
			}

			sp.FluxParams = &params
		}

		results[ev] = sp
	}

	return results, nil
}

// GenerateAll builds spectra for every SAPPHIRE event.
func GenerateAll(opts ...Option) (map[Event]*Spectrum, error) {
	return Generate(nil, opts...)
}

// evaluateQuantity evaluates one Band parameter set over the rigidity grid
// and converts the result to energy space.
func evaluateQuantity(rigidity, energy []float64, params band.Params, form band.Form) (dJdR, dJdE []float64, err error) {
	dJdR, err = band.EvaluateForm(rigidity, params, form)
	if err != nil {
		return nil, nil, err
	}

	dJdE, err = proton.ConvertDJdRToDJdE(dJdR, energy)
	if err != nil {
		return nil, nil, err
	}

	return dJdR, dJdE, nil
}

// selectEvents resolves the requested event set in canonical order. All
// unknown ids are collected so one error round-trip is enough to fix the
// request.
func selectEvents(events []Event) ([]Event, error) {
	if len(events) == 0 {
		return Events(), nil
	}

	var unknown []string

	var requested [numEvents]bool

	for _, ev := range events {
		if !ev.valid() {
			unknown = append(unknown, strconv.Itoa(int(ev)))
			continue
		}

		requested[ev] = true
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("sapphire: event id(s) %s: %w",
			strings.Join(unknown, ", "), ErrUnknownEvent)
	}

	out := make([]Event, 0, len(events))

	for i := Event(0); i < numEvents; i++ {
		if requested[i] {
			out = append(out, i)
		}
	}

	return out, nil
}

// logGrid returns n log-uniform points over [min, max] with the bounds
// pinned exactly, so the grid endpoints survive the log/exp round trip
// bitwise.
func logGrid(min, max float64, n int) []float64 {
	grid := floats.LogSpan(make([]float64, n), min, max)
	grid[0] = min
	grid[n-1] = max

	return grid
}
