package main

import (
	"image"
	"image/color"
	"math"
)

// viridisStops are samples of matplotlib's viridis at 0, 1/8, ..., 1.
var viridisStops = [...][3]float64{
	{68, 1, 84},
	{71, 44, 122},
	{59, 81, 139},
	{44, 113, 142},
	{33, 144, 141},
	{39, 173, 129},
	{92, 200, 99},
	{170, 220, 50},
	{253, 231, 37},
}

// viridis maps val in [0,1] to a color, dark purple at 0 and yellow at 1.
// Values outside the range are clamped.
func viridis(val float64) color.NRGBA {
	if math.IsNaN(val) {
		val = 0
	}
	val = math.Max(0, math.Min(1, val))
	pos := val * float64(len(viridisStops)-1)
	i := int(pos)
	if i >= len(viridisStops)-1 {
		i = len(viridisStops) - 2
	}
	f := pos - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	mix := func(c int) uint8 { return uint8(math.Round(a[c] + (b[c]-a[c])*f)) }
	return color.NRGBA{R: mix(0), G: mix(1), B: mix(2), A: 255}
}

// normalizer scales values into [0,1] over [lo, hi]. A flat range maps to 0.5.
type normalizer struct{ lo, hi float64 }

func (n normalizer) apply(v float64) float64 {
	if n.hi <= n.lo {
		return 0.5
	}
	return (v - n.lo) / (n.hi - n.lo)
}

// fill paints every pixel of img with c.
func fill(img *image.RGBA, c color.Color) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
