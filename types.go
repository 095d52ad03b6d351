package main

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for configuration problems detected before any grid is built.
var (
	ErrUnknownCase        = errors.New("atomfg: unknown case (want atom or box)")
	ErrUnknownRadialModel = errors.New("atomfg: unknown radial model (want closed or laguerre)")
	ErrUnknownSpace       = errors.New("atomfg: unknown space (want position or momentum)")
	ErrInvalidGrid        = errors.New("atomfg: extent and resolution must be positive")
	ErrInvalidState       = errors.New("atomfg: quantum numbers need n > l >= 0 and |m| <= l")
)

// QuantumState holds the hydrogen quantum numbers (n, l, m).
// The evaluators assume n > l >= 0 and |m| <= l; Check tests for it.
type QuantumState struct {
	N, L, M int
}

// Check reports whether s names a bound hydrogen state.
func (s QuantumState) Check() error {
	if s.N < 1 || s.L < 0 || s.L >= s.N || s.M > s.L || s.M < -s.L {
		return fmt.Errorf("%w: %v", ErrInvalidState, s)
	}
	return nil
}

func (s QuantumState) String() string {
	return fmt.Sprintf("n=%d, l=%d, m=%d", s.N, s.L, s.M)
}

// RadialModel selects the radial part of the hydrogen orbital.
type RadialModel string

const (
	RadialClosed   RadialModel = "closed"   // (2/n)^3 sqrt(1/(2(n-l-1)!)) (2r/n)^l exp(-r/n)
	RadialLaguerre RadialModel = "laguerre" // normalized, with associated Laguerre polynomial
)

// Params is the run configuration. Only values that the pipeline reads are here.
type Params struct {
	Case       string // "atom" or "box"
	State      QuantumState
	Extent     float64 // L, the same on every axis
	Resolution int     // S, samples per axis
	Threshold  float64 // initial density threshold
	Exponent   float64 // initial point-size exponent
	SizeCap    float64 // upper bound on rendered point size
	Radial     RadialModel
	Space      string // "position" or "momentum"
}

// DefaultAtomParams is the configuration the atom view starts with.
func DefaultAtomParams() Params {
	return Params{
		Case:       "atom",
		State:      QuantumState{N: 4, L: 3, M: 0},
		Extent:     15,
		Resolution: 15,
		Threshold:  0.001,
		Exponent:   3,
		SizeCap:    50,
		Radial:     RadialClosed,
		Space:      "position",
	}
}

// DefaultBoxParams is the configuration for the particle-in-a-box view.
func DefaultBoxParams() Params {
	return Params{
		Case:       "box",
		Extent:     30,
		Resolution: 30,
		Threshold:  1e-4,
		Exponent:   3,
		SizeCap:    50,
		Radial:     RadialClosed,
		Space:      "position",
	}
}

// Validate checks the enumerations and the grid size. It does not check the
// quantum numbers.
func (p Params) Validate() error {
	switch p.Case {
	case "atom", "box":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCase, p.Case)
	}
	switch p.Radial {
	case RadialClosed, RadialLaguerre:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRadialModel, p.Radial)
	}
	switch p.Space {
	case "position", "momentum":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSpace, p.Space)
	}
	if p.Extent <= 0 || p.Resolution <= 0 {
		return fmt.Errorf("%w: L=%g, S=%d", ErrInvalidGrid, p.Extent, p.Resolution)
	}
	return nil
}

// ComplexField is a complex amplitude per grid point, indexed [i][j][k].
type ComplexField [][][]complex128

// RealField is a real amplitude per grid point, indexed [i][j][k].
type RealField [][][]float64

// Selection is the part of the grid above a density threshold.
// Points and Density are co-indexed.
type Selection struct {
	Points  []r3.Vec
	Density []float64
}

// Len returns the number of selected points.
func (s Selection) Len() int { return len(s.Density) }

// newField3 allocates an n x n x n float array.
func newField3(n int) [][][]float64 {
	f := make([][][]float64, n)
	for i := range f {
		f[i] = make([][]float64, n)
		for j := range f[i] {
			f[i][j] = make([]float64, n)
		}
	}
	return f
}

// newComplexField3 allocates an n x n x n complex array.
func newComplexField3(n int) ComplexField {
	f := make(ComplexField, n)
	for i := range f {
		f[i] = make([][]complex128, n)
		for j := range f[i] {
			f[i][j] = make([]complex128, n)
		}
	}
	return f
}
