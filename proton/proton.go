package proton

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RestEnergyMeV is the proton rest mass energy m_p·c² in MeV.
const RestEnergyMeV = 938.272

// mvPerGV converts between megavolts and gigavolts (charge Z = 1, so
// rigidity in MV is numerically equal to pc in MeV).
const mvPerGV = 1000.0

// Errors returned by kinematic conversions.
var (
	ErrNegativeEnergy    = errors.New("proton: kinetic energy must be non-negative")
	ErrNegativeRigidity  = errors.New("proton: rigidity must be non-negative")
	ErrNonPositiveEnergy = errors.New("proton: kinetic energy must be positive")
	ErrLengthMismatch    = errors.New("proton: spectrum and energy grids differ in length")
)

// EnergyToRigidity converts a proton kinetic energy in MeV to magnetic
// rigidity in GV. E = 0 maps to R = 0.
func EnergyToRigidity(eMeV float64) (float64, error) {
	if !(eMeV >= 0) {
		return 0, fmt.Errorf("proton: E = %g MeV: %w", eMeV, ErrNegativeEnergy)
	}

	return math.Sqrt(eMeV*(eMeV+2*RestEnergyMeV)) / mvPerGV, nil
}

// RigidityToEnergy converts a proton rigidity in GV to kinetic energy in
// MeV. Exact inverse of EnergyToRigidity. R = 0 maps to E = 0.
func RigidityToEnergy(rGV float64) (float64, error) {
	if !(rGV >= 0) {
		return 0, fmt.Errorf("proton: R = %g GV: %w", rGV, ErrNegativeRigidity)
	}

	rMeV := rGV * mvPerGV

	return math.Sqrt(rMeV*rMeV+RestEnergyMeV*RestEnergyMeV) - RestEnergyMeV, nil
}

// EnergiesToRigidities converts a grid of kinetic energies in MeV to
// rigidities in GV. Any negative element fails the whole call before any
// output is produced.
func EnergiesToRigidities(eMeV []float64) ([]float64, error) {
	for i, e := range eMeV {
		if !(e >= 0) {
			return nil, fmt.Errorf("proton: energy[%d] = %g MeV: %w", i, e, ErrNegativeEnergy)
		}
	}

	out := make([]float64, len(eMeV))
	for i, e := range eMeV {
		out[i] = math.Sqrt(e * (e + 2*RestEnergyMeV)) // MV
	}

	vecmath.ScaleBlockInPlace(out, 1/mvPerGV)

	return out, nil
}

// RigiditiesToEnergies converts a grid of rigidities in GV to kinetic
// energies in MeV. Any negative element fails the whole call before any
// output is produced.
func RigiditiesToEnergies(rGV []float64) ([]float64, error) {
	for i, r := range rGV {
		if !(r >= 0) {
			return nil, fmt.Errorf("proton: rigidity[%d] = %g GV: %w", i, r, ErrNegativeRigidity)
		}
	}

	out := make([]float64, len(rGV))
	vecmath.ScaleBlock(out, rGV, mvPerGV) // MV

	for i, rMeV := range out {
		out[i] = math.Sqrt(rMeV*rMeV+RestEnergyMeV*RestEnergyMeV) - RestEnergyMeV
	}

	return out, nil
}

// DRigidityDEnergy returns the Jacobian dR/dE in GV/MeV at a kinetic
// energy in MeV. The derivative is singular at E = 0, so the energy must
// be strictly positive.
func DRigidityDEnergy(eMeV float64) (float64, error) {
	if !(eMeV > 0) {
		return 0, fmt.Errorf("proton: E = %g MeV: %w", eMeV, ErrNonPositiveEnergy)
	}

	return (eMeV + RestEnergyMeV) / (mvPerGV * math.Sqrt(eMeV*(eMeV+2*RestEnergyMeV))), nil
}

// ConvertDJdRToDJdE transforms a differential spectrum dJ/dR (per GV) into
// dJ/dE (per MeV) via the chain rule dJ/dE = dJ/dR·|dR/dE|, evaluated at
// the kinetic energies eMeV. The grids must have equal length and every
// energy must be strictly positive.
func ConvertDJdRToDJdE(dJdR, eMeV []float64) ([]float64, error) {
	if len(dJdR) != len(eMeV) {
		return nil, fmt.Errorf("proton: len(dJdR) = %d, len(E) = %d: %w",
			len(dJdR), len(eMeV), ErrLengthMismatch)
	}

	for i, e := range eMeV {
		if !(e > 0) {
			return nil, fmt.Errorf("proton: energy[%d] = %g MeV: %w", i, e, ErrNonPositiveEnergy)
		}
	}

	jac := make([]float64, len(eMeV))
	for i, e := range eMeV {
		jac[i] = (e + RestEnergyMeV) / (mvPerGV * math.Sqrt(e*(e+2*RestEnergyMeV)))
	}

	out := make([]float64, len(dJdR))
	vecmath.MulBlock(out, dJdR, jac)

	return out, nil
}
