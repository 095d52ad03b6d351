package main

import (
	"log"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MomentumDensity returns |FFT psi|^2 / N over the grid, with the zero
// wave vector moved to the middle of each axis. Dividing by the number of
// samples N keeps the total density equal to that of psi.
//
// The 3D transform is done as 1D FFTs along z, then y, then x.
func MomentumDensity(psi ComplexField) [][][]float64 {
	n := len(psi)
	work := newComplexField3(n)
	for i := range psi {
		for j := range psi[i] {
			copy(work[i][j], psi[i][j])
		}
	}

	line := make([]complex128, n)
	// Along z.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			copy(work[i][j], fft.FFT(work[i][j]))
		}
	}
	// Along y.
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				line[j] = work[i][j][k]
			}
			out := fft.FFT(line)
			for j := 0; j < n; j++ {
				work[i][j][k] = out[j]
			}
		}
	}
	// Along x.
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				line[i] = work[i][j][k]
			}
			out := fft.FFT(line)
			for i := 0; i < n; i++ {
				work[i][j][k] = out[i]
			}
		}
	}

	total := float64(n * n * n)
	density := newField3(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				a := cmplx.Abs(work[shiftIndex(i, n)][shiftIndex(j, n)][shiftIndex(k, n)])
				density[i][j][k] = a * a / total
			}
		}
	}
	log.Printf("Computed momentum density on %d^3 grid", n)
	return density
}

// MomentumGrid returns the wave-vector grid matching MomentumDensity for a
// position grid g: k = 2*pi*f / (S*dx) in ascending order, zero in the middle.
func MomentumGrid(g *Grid) *Grid {
	n := g.Resolution()
	dx := 1.0
	if n > 1 {
		x0, _, _ := g.At(0, 0, 0)
		x1, _, _ := g.At(1, 0, 0)
		dx = x1 - x0
	}
	dk := 2 * math.Pi / (float64(n) * dx)

	kLin := make([]float64, n)
	for i := range kLin {
		kLin[i] = float64(fftFreq(shiftIndex(i, n), n)) * dk
	}

	k := &Grid{
		x:          newField3(n),
		y:          newField3(n),
		z:          newField3(n),
		extent:     float64(n) * dk,
		resolution: n,
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for l := 0; l < n; l++ {
				k.x[i][j][l] = kLin[i]
				k.y[i][j][l] = kLin[j]
				k.z[i][j][l] = kLin[l]
			}
		}
	}
	return k
}

// fftFreq is the integer frequency of FFT output index i:
// 0, 1, ..., then the negative frequencies.
func fftFreq(i, n int) int {
	if i < (n+1)/2 {
		return i
	}
	return i - n
}

// shiftIndex maps a centered index back to the FFT output index.
func shiftIndex(i, n int) int {
	return (i - n/2 + n) % n
}
