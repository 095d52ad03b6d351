package main

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BoxWavefunction evaluates the ground state of a particle in a cubic box
// of side L, (1/L) sin(pi x/L) sin(pi y/L) sin(pi z/L), on every sample of g,
// then rescales it so that sum |psi|^2 (L/S)^3 = 1. The grid is not recentered.
func BoxWavefunction(g *Grid) RealField {
	n := g.Resolution()
	L := g.Extent()
	psi := RealField(newField3(n))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				x, y, z := g.At(i, j, k)
				psi[i][j][k] = (1 / L) * math.Sin(math.Pi*x/L) * math.Sin(math.Pi*y/L) * math.Sin(math.Pi*z/L)
			}
		}
	}

	// norm = sqrt( sum(|psi_ijk|^2) * dv )
	dv := math.Pow(g.Spacing(), 3)
	var totalNormSq float64
	for i := range psi {
		for j := range psi[i] {
			totalNormSq += floats.Dot(psi[i][j], psi[i][j])
		}
	}
	norm := math.Sqrt(totalNormSq * dv)
	log.Printf("Box state norm before normalization: %.5g", norm)

	if norm < 1e-300 {
		log.Println("Warning: box state norm is zero. Cannot normalize.")
		return psi
	}
	for i := range psi {
		for j := range psi[i] {
			floats.Scale(1/norm, psi[i][j])
		}
	}
	return psi
}
