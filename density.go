package main

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r3"
)

// DensityOf returns |psi|^2 at every grid point, in the shape of psi.
func DensityOf(psi ComplexField) [][][]float64 {
	d := make([][][]float64, len(psi))
	for i := range psi {
		d[i] = make([][]float64, len(psi[i]))
		for j := range psi[i] {
			d[i][j] = make([]float64, len(psi[i][j]))
			for k, v := range psi[i][j] {
				a := cmplx.Abs(v)
				d[i][j][k] = a * a
			}
		}
	}
	return d
}

// DensityOfReal returns psi^2 at every grid point.
func DensityOfReal(psi RealField) [][][]float64 {
	d := make([][][]float64, len(psi))
	for i := range psi {
		d[i] = make([][]float64, len(psi[i]))
		for j := range psi[i] {
			d[i][j] = make([]float64, len(psi[i][j]))
			for k, v := range psi[i][j] {
				d[i][j][k] = v * v
			}
		}
	}
	return d
}

// Select keeps the grid points whose density is strictly greater than
// threshold, in i-major order. NaN densities are never selected.
func Select(g *Grid, density [][][]float64, threshold float64) Selection {
	var sel Selection
	for i := range density {
		for j := range density[i] {
			for k, d := range density[i][j] {
				if d > threshold {
					x, y, z := g.At(i, j, k)
					sel.Points = append(sel.Points, r3.Vec{X: x, Y: y, Z: z})
					sel.Density = append(sel.Density, d)
				}
			}
		}
	}
	return sel
}

// PointSize maps a density to a marker size, min((d*1000)^exponent, cap).
func PointSize(d, exponent, cap float64) float64 {
	s := math.Pow(d*1000, exponent)
	if math.IsNaN(s) || s > cap {
		return cap
	}
	return s
}

// PointSizes applies PointSize to every density.
func PointSizes(density []float64, exponent, cap float64) []float64 {
	sizes := make([]float64, len(density))
	for i, d := range density {
		sizes[i] = PointSize(d, exponent, cap)
	}
	return sizes
}
