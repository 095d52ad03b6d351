package main

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestViridis_Ends(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 68, G: 1, B: 84, A: 255}, viridis(0))
	assert.Equal(t, color.NRGBA{R: 253, G: 231, B: 37, A: 255}, viridis(1))
	assert.Equal(t, viridis(0), viridis(-3))
	assert.Equal(t, viridis(1), viridis(7))
	assert.Equal(t, viridis(0), viridis(math.NaN()))
	assert.Equal(t, color.NRGBA{R: 33, G: 144, B: 141, A: 255}, viridis(0.5))
}

func TestViridis_BrightensWithValue(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		c := viridis(v)
		lum := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
		require.Greater(t, lum, prev, "v=%g", v)
		prev = lum
	}
}

func TestCamera_ViewIsRotation(t *testing.T) {
	c := NewCamera()
	for _, p := range []r3.Vec{{X: 1}, {Y: 2}, {Z: -3}, {X: 1, Y: 2, Z: 3}} {
		assert.InDelta(t, r3.Norm(p), r3.Norm(c.View(p)), 1e-12)
	}
	// z points up on screen.
	assert.Greater(t, c.View(r3.Vec{Z: 1}).Y, 0.5)

	c.Rotate(r3.Vec{Y: 1}, 0.3)
	assert.InDelta(t, 5.0, r3.Norm(c.View(r3.Vec{X: 3, Y: 4})), 1e-12)
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 100; i++ {
		c.Zoom(2)
	}
	assert.Equal(t, 20.0, c.zoom)
	for i := 0; i < 100; i++ {
		c.Zoom(0.5)
	}
	assert.Equal(t, 0.1, c.zoom)
}

func TestScene_ScatterColorsByDensity(t *testing.T) {
	s := NewScene(0, 1)
	sel := Selection{
		Points:  []r3.Vec{{X: 0.1}, {X: 0.5}, {X: 0.9}},
		Density: []float64{0.25, 0.5, 0.75},
	}
	s.Scatter(sel, PointSizes(sel.Density, 3, 50))

	points, colors, sizes := s.Snapshot()
	assert.Equal(t, sel.Points, points)
	assert.Equal(t, viridis(0), colors[0])
	assert.Equal(t, viridis(0.5), colors[1])
	assert.Equal(t, viridis(1), colors[2])
	assert.Equal(t, []float64{50, 50, 50}, sizes)
	assert.Equal(t, 3, s.Len())

	s.SetSizes([]float64{1, 2, 3})
	points2, colors2, sizes2 := s.Snapshot()
	assert.Equal(t, points, points2)
	assert.Equal(t, colors, colors2)
	assert.Equal(t, []float64{1, 2, 3}, sizes2)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestScene_Draw(t *testing.T) {
	s := NewScene(-1, 1)
	s.Scatter(Selection{Points: []r3.Vec{{}}, Density: []float64{0.3}}, []float64{50})

	img := s.Draw(200, 200)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	bg := color.RGBAModel.Convert(sceneBackground)
	assert.Equal(t, bg, img.At(0, 0))
	// A lone point gets the middle of the colormap and sits at the image center.
	assert.Equal(t, color.RGBAModel.Convert(viridis(0.5)), img.At(100, 100))
}

func TestScene_RefreshHook(t *testing.T) {
	s := NewScene(0, 1)
	called := 0
	s.OnRefresh = func() { called++ }
	s.Refresh()
	s.Refresh()
	assert.Equal(t, 2, called)
}
