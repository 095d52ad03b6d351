package main

import (
	"log"
	"math"
	"math/cmplx"
)

// HydrogenWavefunction evaluates R_nl(r) Y_lm(theta, phi) on every sample of g.
//
// The grid is first recentered by L/2 so the nucleus sits at the middle of
// the domain. This modifies g; the uncentered coordinates are gone afterwards.
//
// At r = 0 the polar angle is taken to be 0. For l > 0 the radial factor
// vanishes there anyway, and for l = 0 the harmonic does not depend on angle.
func HydrogenWavefunction(g *Grid, s QuantumState, model RadialModel) ComplexField {
	g.Recenter(g.Extent() / 2)

	radial := radialFunc(s, model)
	n := g.Resolution()
	psi := newComplexField3(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				x, y, z := g.At(i, j, k)
				r := math.Sqrt(x*x + y*y + z*z)
				theta := 0.0
				if r > 0 {
					theta = math.Acos(math.Max(-1, math.Min(1, z/r)))
				}
				phi := math.Atan2(y, x)

				psi[i][j][k] = complex(radial(r), 0) * sphericalHarmonic(s.M, s.L, phi, theta)
			}
		}
	}
	log.Printf("Evaluated hydrogen orbital (%v, radial=%s) on %d^3 grid", s, model, n)
	return psi
}

// radialFunc returns R(r) for the given state. It evaluates the factorial
// prefactor once, so an n <= l state panics here rather than per point.
func radialFunc(s QuantumState, model RadialModel) func(r float64) float64 {
	n, l := float64(s.N), s.L
	switch model {
	case RadialLaguerre:
		k := s.N - s.L - 1
		norm := math.Sqrt(math.Pow(2/n, 3) * factorial(k) / (2 * n * factorial(s.N+s.L)))
		return func(r float64) float64 {
			rho := 2 * r / n
			return norm * math.Exp(-rho/2) * math.Pow(rho, float64(l)) * laguerre(k, float64(2*l+1), rho)
		}
	default:
		norm := math.Pow(2/n, 3) * math.Sqrt(1/(2*factorial(s.N-s.L-1)))
		return func(r float64) float64 {
			return norm * math.Pow(2*r/n, float64(l)) * math.Exp(-r/n)
		}
	}
}

// factorial returns k! as a float64. Negative k panics.
func factorial(k int) float64 {
	if k < 0 {
		panic("factorial() not defined for negative values")
	}
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// laguerre evaluates the generalized Laguerre polynomial L_k^a(x) by the
// three-term recurrence.
func laguerre(k int, a, x float64) float64 {
	if k == 0 {
		return 1
	}
	prev, cur := 1.0, 1+a-x
	for i := 2; i <= k; i++ {
		fi := float64(i)
		prev, cur = cur, ((2*fi-1+a-x)*cur-(fi-1+a)*prev)/fi
	}
	return cur
}

// sphericalHarmonic returns the complex Y_l^m with the Condon-Shortley phase.
// The argument order is (order m, degree l, azimuthal angle, polar angle).
func sphericalHarmonic(m, l int, azimuthal, polar float64) complex128 {
	am := m
	if am < 0 {
		am = -am
	}
	if am > l {
		return 0
	}
	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * factorial(l-am) / factorial(l+am))
	y := complex(norm*assocLegendre(l, am, math.Cos(polar)), 0) * cmplx.Exp(complex(0, float64(am)*azimuthal))
	if m < 0 {
		// Y_l^{-m} = (-1)^m conj(Y_l^m)
		y = cmplx.Conj(y)
		if am%2 == 1 {
			y = -y
		}
	}
	return y
}

// assocLegendre evaluates P_l^m(x) for 0 <= m <= l, including the
// (-1)^m Condon-Shortley factor.
func assocLegendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}
