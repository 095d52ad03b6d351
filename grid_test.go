package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_ShapeAndCorners(t *testing.T) {
	g := NewGrid(30, 30, 30, 30)
	require.Equal(t, 30, g.Resolution())
	require.Equal(t, 30.0, g.Extent())

	for _, axis := range [][][][]float64{g.x, g.y, g.z} {
		require.Len(t, axis, 30)
		for i := range axis {
			require.Len(t, axis[i], 30)
			for j := range axis[i] {
				require.Len(t, axis[i][j], 30)
			}
		}
	}

	x, y, z := g.At(0, 0, 0)
	assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{x, y, z})
	x, y, z = g.At(29, 29, 29)
	assert.InDelta(t, 30.0, x, 1e-12)
	assert.InDelta(t, 30.0, y, 1e-12)
	assert.InDelta(t, 30.0, z, 1e-12)
}

func TestNewGrid_IJIndexing(t *testing.T) {
	g := NewGrid(9, 9, 9, 10) // step 1
	x, y, z := g.At(3, 5, 7)
	assert.InDelta(t, 3.0, x, 1e-12)
	assert.InDelta(t, 5.0, y, 1e-12)
	assert.InDelta(t, 7.0, z, 1e-12)
}

func TestNewGrid_NonCubicPanics(t *testing.T) {
	require.Panics(t, func() { NewGrid(10, 12, 10, 4) })
	require.Panics(t, func() { NewGrid(10, 10, 11, 4) })
}

func TestGrid_Recenter(t *testing.T) {
	g := NewGrid(15, 15, 15, 15)
	g.Recenter(7.5)

	lo, hi := g.Bounds()
	assert.InDelta(t, -7.5, lo, 1e-12)
	assert.InDelta(t, 7.5, hi, 1e-12)

	x, y, z := g.At(7, 7, 7)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)
	assert.InDelta(t, 0.0, z, 1e-12)
}

func TestGrid_Spacing(t *testing.T) {
	assert.Equal(t, 1.0, NewGrid(30, 30, 30, 30).Spacing())
	assert.Equal(t, 0.5, NewGrid(10, 10, 10, 20).Spacing())
}
