package main

import "log"

// Controller keeps the atom view in sync with the threshold and exponent
// sliders. Both sliders call Update. A changed threshold reselects points from
// the full density field and redraws. An unchanged threshold only resizes
// the points already on screen.
type Controller struct {
	grid    *Grid
	density [][][]float64 // full, unfiltered field
	plot    Plotter
	sizeCap float64

	selection     Selection
	lastThreshold float64
	exponent      float64
}

// NewController selects the initial points for threshold and draws them.
func NewController(g *Grid, density [][][]float64, plot Plotter, threshold, exponent, sizeCap float64) *Controller {
	c := &Controller{
		grid:          g,
		density:       density,
		plot:          plot,
		sizeCap:       sizeCap,
		lastThreshold: threshold,
		exponent:      exponent,
	}
	c.selection = Select(g, density, threshold)
	c.plot.Scatter(c.selection, PointSizes(c.selection.Density, exponent, sizeCap))
	c.plot.Refresh()
	log.Printf("Initial selection: %d points above %.4g", c.selection.Len(), threshold)
	return c
}

// Update applies the current slider values.
func (c *Controller) Update(threshold, exponent float64) {
	c.exponent = exponent
	if threshold == c.lastThreshold {
		c.plot.SetSizes(PointSizes(c.selection.Density, exponent, c.sizeCap))
		c.plot.Refresh()
	} else {
		c.selection = Select(c.grid, c.density, threshold)
		c.plot.Clear()
		c.plot.Scatter(c.selection, PointSizes(c.selection.Density, exponent, c.sizeCap))
		c.plot.Refresh()
	}
	c.lastThreshold = threshold
}

// Selection returns the points currently on screen.
func (c *Controller) Selection() Selection { return c.selection }

// Threshold returns the last applied threshold.
func (c *Controller) Threshold() float64 { return c.lastThreshold }

// Exponent returns the last applied size exponent.
func (c *Controller) Exponent() float64 { return c.exponent }
