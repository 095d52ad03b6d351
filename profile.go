package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

// RadialProfile samples the radial probability r^2 |R(r)|^2 at samples
// evenly spaced radii in [0, rMax].
func RadialProfile(s QuantumState, model RadialModel, rMax float64, samples int) (r, p []float64) {
	radial := radialFunc(s, model)
	r = make([]float64, samples)
	p = make([]float64, samples)
	for i := range r {
		if samples > 1 {
			r[i] = rMax * float64(i) / float64(samples-1)
		}
		R := radial(r[i])
		p[i] = r[i] * r[i] * R * R
	}
	return r, p
}

// AxisProfile samples |psi|^2 along the +z axis (theta = 0) at the same
// radii as RadialProfile.
func AxisProfile(s QuantumState, model RadialModel, rMax float64, samples int) (r, d []float64) {
	radial := radialFunc(s, model)
	y := cmplx.Abs(sphericalHarmonic(s.M, s.L, 0, 0))
	r = make([]float64, samples)
	d = make([]float64, samples)
	for i := range r {
		if samples > 1 {
			r[i] = rMax * float64(i) / float64(samples-1)
		}
		a := radial(r[i]) * y
		d[i] = a * a
	}
	return r, d
}

// DensityTable returns |R(r)|^2 |Y(theta, 0)|^2 on an rSamples x thetaSamples
// table, r in [0, rMax) and theta in [0, pi).
func DensityTable(s QuantumState, model RadialModel, rMax float64, rSamples, thetaSamples int) [][]float64 {
	radial := radialFunc(s, model)
	table := make([][]float64, rSamples)
	for i := range table {
		r := rMax * float64(i) / float64(rSamples)
		R := radial(r)
		table[i] = make([]float64, thetaSamples)
		for j := range table[i] {
			theta := math.Pi * float64(j) / float64(thetaSamples)
			y := cmplx.Abs(sphericalHarmonic(s.M, s.L, 0, theta))
			table[i][j] = R * R * y * y
		}
	}
	return table
}

// WriteDensityTable prints a table from DensityTable as comma separated rows.
func WriteDensityTable(w io.Writer, table [][]float64) error {
	for _, row := range table {
		for j, v := range row {
			sep := ","
			if j == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%g%s", v, sep); err != nil {
				return fmt.Errorf("writing density table: %w", err)
			}
		}
	}
	return nil
}

// WriteProfilePNG renders the radial probability and the on-axis density of
// the orbital as a line chart.
func WriteProfilePNG(w io.Writer, s QuantumState, model RadialModel, rMax float64) error {
	const samples = 400
	r, p := RadialProfile(s, model, rMax, samples)
	_, d := AxisProfile(s, model, rMax, samples)

	graph := chart.Chart{
		Title:  fmt.Sprintf("Hydrogen orbital profile (%v, %s)", s, model),
		Width:  900,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "r (Bohr radii)",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "r² |R(r)|²",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "|ψ|² on +z",
			Style: chart.Style{FontSize: 10.0},
		},
	}
	graph.Series = append(graph.Series, chart.ContinuousSeries{
		Name:    "radial probability",
		XValues: r,
		YValues: p,
		Style:   chart.Style{StrokeColor: drawing.Color{R: 68, G: 1, B: 84, A: 255}, StrokeWidth: 3.0},
	})
	// The on-axis density is identically zero for m != 0; go-chart refuses a
	// flat axis range, so only plot it when it has one.
	if floats.Max(d) > floats.Min(d) {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    "on-axis density",
			YAxis:   chart.YAxisSecondary,
			XValues: r,
			YValues: d,
			Style:   chart.Style{StrokeColor: drawing.Color{R: 33, G: 144, B: 141, A: 255}, StrokeWidth: 3.0},
		})
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering profile chart: %w", err)
	}
	return nil
}
