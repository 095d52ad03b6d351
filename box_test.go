package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBoxWavefunction_Normalized(t *testing.T) {
	for _, s := range []int{12, 30, 31} {
		g := NewGrid(30, 30, 30, s)
		d := DensityOfReal(BoxWavefunction(g))
		total := 0.0
		for i := range d {
			for j := range d[i] {
				total += floats.Sum(d[i][j])
			}
		}
		assert.InDelta(t, 1.0, total*math.Pow(g.Spacing(), 3), 1e-6, "S=%d", s)
	}
}

// argmax returns the indices of the largest density.
func argmax(d [][][]float64) (bi, bj, bk int) {
	best := math.Inf(-1)
	for i := range d {
		for j := range d[i] {
			for k, v := range d[i][j] {
				if v > best {
					best, bi, bj, bk = v, i, j, k
				}
			}
		}
	}
	return bi, bj, bk
}

func TestBoxWavefunction_PeaksAtCenter(t *testing.T) {
	g := NewGrid(30, 30, 30, 31)
	i, j, k := argmax(DensityOfReal(BoxWavefunction(g)))
	assert.Equal(t, [3]int{15, 15, 15}, [3]int{i, j, k})
	x, y, z := g.At(i, j, k)
	assert.InDelta(t, 15.0, x, 1e-12)
	assert.InDelta(t, 15.0, y, 1e-12)
	assert.InDelta(t, 15.0, z, 1e-12)

	// With an even sample count the center falls between samples 14 and 15.
	g = NewGrid(30, 30, 30, 30)
	i, j, k = argmax(DensityOfReal(BoxWavefunction(g)))
	for _, idx := range []int{i, j, k} {
		assert.Contains(t, []int{14, 15}, idx)
	}
}

func TestBoxWavefunction_NotRecentered(t *testing.T) {
	g := NewGrid(30, 30, 30, 30)
	BoxWavefunction(g)
	lo, hi := g.Bounds()
	require.Equal(t, 0.0, lo)
	require.InDelta(t, 30.0, hi, 1e-12)
}

func TestBoxWavefunction_NonNegative(t *testing.T) {
	// The walls sit on sin(pi), so allow rounding noise there.
	psi := BoxWavefunction(NewGrid(10, 10, 10, 10))
	for i := range psi {
		for j := range psi[i] {
			for _, v := range psi[i][j] {
				require.GreaterOrEqual(t, v, -1e-12)
			}
		}
	}
}
