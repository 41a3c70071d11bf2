package band

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Band function evaluation.
var (
	ErrNonPositiveRigidity = errors.New("band: rigidity must be positive")
	ErrNonPositiveR0       = errors.New("band: characteristic rigidity R0 must be positive")
	ErrNonPositiveNorm     = errors.New("band: normalization constant C must be positive")
	ErrUnknownForm         = errors.New("band: unknown spectral form")
)

// Params holds the Band function coefficients for one spectral quantity.
//
// GammaLow and GammaHigh are the low- and high-rigidity spectral indexes,
// R0 is the characteristic rigidity in GV, and C is the normalization
// constant (particles/cm²/sr for fluence, particles/cm²/sr/s for flux).
type Params struct {
	GammaLow  float64 `json:"ga"`
	GammaHigh float64 `json:"gb"`
	R0        float64 `json:"R0"`
	C         float64 `json:"C"`
}

// Validate checks that the coefficients describe a physical spectrum.
func (p Params) Validate() error {
	if !(p.R0 > 0) {
		return fmt.Errorf("band: R0 = %g GV: %w", p.R0, ErrNonPositiveR0)
	}

	if !(p.C > 0) {
		return fmt.Errorf("band: C = %g: %w", p.C, ErrNonPositiveNorm)
	}

	return nil
}

// BreakRigidity returns Rb = (γb - γa)·R0 in GV, the rigidity at which the
// two power-law regimes meet.
func (p Params) BreakRigidity() float64 {
	return (p.GammaHigh - p.GammaLow) * p.R0
}

// Form identifies a Band spectral shape.
type Form int

const (
	// FormSmooth is the smoothed broken power law
	// dJ/dR = C·R^(-γa)·(1 + R/R0)^(-(γb-γa)).
	FormSmooth Form = iota

	// FormExpCutoff is the piecewise Jiggens et al. (2018) form:
	// C·R^(-γa)·exp(-R/R0) below the break rigidity and a continuous
	// R^(-γb) power law above it.
	FormExpCutoff
)

// String returns a human-readable form name.
func (f Form) String() string {
	switch f {
	case FormSmooth:
		return "smooth"
	case FormExpCutoff:
		return "exp-cutoff"
	default:
		return fmt.Sprintf("band.Form(%d)", int(f))
	}
}

// EvaluateAt computes the differential spectrum dJ/dR at a single rigidity
// in GV using the smooth form.
func EvaluateAt(r float64, p Params) (float64, error) {
	return EvaluateFormAt(r, p, FormSmooth)
}

// EvaluateFormAt computes dJ/dR at a single rigidity in GV using the given
// spectral form.
func EvaluateFormAt(r float64, p Params, form Form) (float64, error) {
	err := p.Validate()
	if err != nil {
		return 0, err
	}

	if !(r > 0) {
		return 0, fmt.Errorf("band: rigidity = %g GV: %w", r, ErrNonPositiveRigidity)
	}

	switch form {
	case FormSmooth:
		return evalSmooth(r, p), nil
	case FormExpCutoff:
		return evalExpCutoff(r, p), nil
	default:
		return 0, fmt.Errorf("band: form %d: %w", int(form), ErrUnknownForm)
	}
}

// Evaluate computes the differential spectrum dJ/dR elementwise over a
// rigidity grid in GV using the smooth form. The result has the same
// length as r.
//
// Every element of r must be strictly positive; the whole call fails
// before any output is produced otherwise.
func Evaluate(r []float64, p Params) ([]float64, error) {
	return EvaluateForm(r, p, FormSmooth)
}

// EvaluateForm computes dJ/dR elementwise over a rigidity grid in GV using
// the given spectral form.
func EvaluateForm(r []float64, p Params, form Form) ([]float64, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	if form != FormSmooth && form != FormExpCutoff {
		return nil, fmt.Errorf("band: form %d: %w", int(form), ErrUnknownForm)
	}

	for i, v := range r {
		if !(v > 0) {
			return nil, fmt.Errorf("band: rigidity[%d] = %g GV: %w", i, v, ErrNonPositiveRigidity)
		}
	}

	out := make([]float64, len(r))

	switch form {
	case FormSmooth:
		for i, v := range r {
			out[i] = evalSmooth(v, p)
		}
	case FormExpCutoff:
		for i, v := range r {
			out[i] = evalExpCutoff(v, p)
		}
	}

	return out, nil
}

// evalSmooth computes C·r^(-γa)·(1 + r/R0)^(-(γb-γa)) in log space.
func evalSmooth(r float64, p Params) float64 {
	lnJ := math.Log(p.C) - p.GammaLow*math.Log(r) -
		(p.GammaHigh-p.GammaLow)*math.Log1p(r/p.R0)

	return math.Exp(lnJ)
}

// evalExpCutoff computes the piecewise Jiggens form. Below the break
// rigidity Rb = (γb-γa)·R0:
//
//	dJ/dR = C·r^(-γa)·exp(-r/R0)
//
// and above it the continuous power-law continuation:
//
//	dJ/dR = C·r^(-γb)·[(γb-γa)·R0]^(γb-γa)·exp(γa-γb)
func evalExpCutoff(r float64, p Params) float64 {
	dg := p.GammaHigh - p.GammaLow
	rb := dg * p.R0

	if r <= rb {
		lnJ := math.Log(p.C) - p.GammaLow*math.Log(r) - r/p.R0
		return math.Exp(lnJ)
	}

	lnJ := math.Log(p.C) - p.GammaHigh*math.Log(r) + dg*math.Log(rb) - dg

	return math.Exp(lnJ)
}
