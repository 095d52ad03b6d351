package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// recordingPlotter logs every Plotter call.
type recordingPlotter struct {
	calls []string
	sel   Selection
	sizes []float64
}

func (p *recordingPlotter) Clear() {
	p.calls = append(p.calls, "clear")
	p.sel, p.sizes = Selection{}, nil
}

func (p *recordingPlotter) Scatter(sel Selection, sizes []float64) {
	p.calls = append(p.calls, "scatter")
	p.sel, p.sizes = sel, sizes
}

func (p *recordingPlotter) SetSizes(sizes []float64) {
	p.calls = append(p.calls, "sizes")
	p.sizes = sizes
}

func (p *recordingPlotter) Refresh() { p.calls = append(p.calls, "refresh") }

func newAtomController(t *testing.T, plot Plotter) *Controller {
	t.Helper()
	g := NewGrid(15, 15, 15, 15)
	d := DensityOf(HydrogenWavefunction(g, QuantumState{N: 2, L: 1, M: 0}, RadialClosed))
	return NewController(g, d, plot, 0.001, 3, 50)
}

func TestController_InitialDraw(t *testing.T) {
	plot := &recordingPlotter{}
	c := newAtomController(t, plot)

	require.Equal(t, []string{"scatter", "refresh"}, plot.calls)
	require.Greater(t, c.Selection().Len(), 0)
	assert.Equal(t, c.Selection().Len(), len(plot.sizes))
	assert.Equal(t, 0.001, c.Threshold())
	assert.Equal(t, 3.0, c.Exponent())
}

func TestController_ExponentOnlyResizes(t *testing.T) {
	plot := &recordingPlotter{}
	c := newAtomController(t, plot)
	before := c.Selection()
	plot.calls = nil

	c.Update(0.001, 1.5)

	require.Equal(t, []string{"sizes", "refresh"}, plot.calls)
	assert.Equal(t, before, c.Selection())
	require.Len(t, plot.sizes, before.Len())
	for i, d := range before.Density {
		assert.InDelta(t, PointSize(d, 1.5, 50), plot.sizes[i], 1e-12)
	}
	assert.Equal(t, 1.5, c.Exponent())
}

func TestController_ExponentOnlyKeepsPositionsAndColors(t *testing.T) {
	scene := NewScene(-7.5, 7.5)
	c := newAtomController(t, scene)
	points, colors, _ := scene.Snapshot()

	c.Update(0.001, 7)

	points2, colors2, sizes2 := scene.Snapshot()
	assert.Equal(t, points, points2)
	assert.Equal(t, colors, colors2)
	for i, d := range c.Selection().Density {
		assert.InDelta(t, PointSize(d, 7, 50), sizes2[i], 1e-12)
	}
}

func TestController_RaisedThresholdShrinksSelection(t *testing.T) {
	plot := &recordingPlotter{}
	c := newAtomController(t, plot)
	before := map[r3.Vec]bool{}
	for _, p := range c.Selection().Points {
		before[p] = true
	}
	plot.calls = nil

	c.Update(0.004, 3)

	require.Equal(t, []string{"clear", "scatter", "refresh"}, plot.calls)
	after := c.Selection()
	require.Less(t, after.Len(), len(before))
	for i, p := range after.Points {
		assert.True(t, before[p], "new point %v was not in the previous selection", p)
		assert.Greater(t, after.Density[i], 0.004)
	}
	assert.Equal(t, 0.004, c.Threshold())
	assert.Equal(t, after, plot.sel)
}

func TestController_LoweredThresholdUsesFullField(t *testing.T) {
	plot := &recordingPlotter{}
	c := newAtomController(t, plot)
	initial := c.Selection().Len()

	c.Update(0.004, 3)
	c.Update(0.001, 3)

	assert.Equal(t, initial, c.Selection().Len())
}

func TestController_RemembersLastThreshold(t *testing.T) {
	plot := &recordingPlotter{}
	c := newAtomController(t, plot)

	c.Update(0.002, 3)
	plot.calls = nil
	c.Update(0.002, 4)
	assert.Equal(t, []string{"sizes", "refresh"}, plot.calls)

	plot.calls = nil
	c.Update(0.0021, 4)
	assert.Equal(t, []string{"clear", "scatter", "refresh"}, plot.calls)
}
