package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a cubic lattice of sample coordinates. x[i][j][k] is the x
// coordinate of sample (i,j,k), and likewise for y and z ("ij" indexing).
type Grid struct {
	x, y, z    [][][]float64
	extent     float64
	resolution int
}

// NewGrid builds a resolution^3 lattice spanning [0, extent] on each axis,
// endpoints included. The three extents must be equal; anything else is a
// programming error and panics.
func NewGrid(lx, ly, lz float64, resolution int) *Grid {
	if lx != ly || ly != lz {
		panic(fmt.Sprintf("grid must be cubic, got extents %g x %g x %g", lx, ly, lz))
	}
	n := resolution
	L := lx

	// 1D sample positions, shared by all three axes.
	lin := make([]float64, n)
	if n > 1 {
		floats.Span(lin, 0, L)
	}

	g := &Grid{
		x:          newField3(n),
		y:          newField3(n),
		z:          newField3(n),
		extent:     L,
		resolution: n,
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				g.x[i][j][k] = lin[i]
				g.y[i][j][k] = lin[j]
				g.z[i][j][k] = lin[k]
			}
		}
	}
	return g
}

// Extent is the side length the grid was built with.
func (g *Grid) Extent() float64 { return g.extent }

// Resolution is the number of samples per axis.
func (g *Grid) Resolution() int { return g.resolution }

// Spacing is the cell size used for Riemann sums over the grid, L/S.
func (g *Grid) Spacing() float64 {
	if g.resolution == 0 {
		return 0
	}
	return g.extent / float64(g.resolution)
}

// At returns the coordinates of sample (i,j,k).
func (g *Grid) At(i, j, k int) (x, y, z float64) {
	return g.x[i][j][k], g.y[i][j][k], g.z[i][j][k]
}

// Recenter subtracts offset from every coordinate in place.
func (g *Grid) Recenter(offset float64) {
	n := g.resolution
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				g.x[i][j][k] -= offset
				g.y[i][j][k] -= offset
				g.z[i][j][k] -= offset
			}
		}
	}
}

// Bounds returns the min and max coordinate along any axis.
func (g *Grid) Bounds() (lo, hi float64) {
	n := g.resolution
	if n == 0 {
		return 0, 0
	}
	return g.x[0][0][0], g.x[n-1][0][0]
}
