// Package proton provides relativistic kinematics for protons: conversion
// between kinetic energy and magnetic rigidity, and the Jacobian transform
// that carries a differential spectrum from rigidity space to energy space.
//
// Energies are kinetic energies in MeV, rigidities are in GV (momentum per
// unit charge for Z = 1), related by
//
//	R = sqrt(E·(E + 2·m_p)) / 1000
//	E = sqrt((1000·R)² + m_p²) - m_p
//
// with m_p·c² = 938.272 MeV. The two conversions are exact algebraic
// inverses; ConvertDJdRToDJdE applies |dR/dE| derived from the same
// relation, so results in both spaces stay mutually consistent.
//
// # Usage
//
//	rGV, err := proton.EnergiesToRigidities(energyMeV)
//	dJdE, err := proton.ConvertDJdRToDJdE(dJdR, energyMeV)
package proton
