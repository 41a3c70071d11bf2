package proton

import (
	"math"
	"testing"
)

func benchEnergies(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, -1+6*float64(i)/float64(n-1))
	}

	return out
}

func BenchmarkEnergiesToRigidities(b *testing.B) {
	energies := benchEnergies(200)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := EnergiesToRigidities(energies)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertDJdRToDJdE(b *testing.B) {
	energies := benchEnergies(200)

	dJdR := make([]float64, len(energies))
	for i := range dJdR {
		dJdR[i] = 1e6 / energies[i]
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := ConvertDJdRToDJdE(dJdR, energies)
		if err != nil {
			b.Fatal(err)
		}
	}
}
