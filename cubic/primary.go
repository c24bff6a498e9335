// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubic

import (
	"errors"
	"math"
)

// tunable constants of the fast solver, calibrated against the
// arbitrary-precision reference
const (
	liquidSeedEps = 1e-6  // offset of the liquid-like seed above B
	stepTol       = 6e-16 // relative-step convergence threshold
	resTol        = 1e-12 // relative-residual convergence threshold
	itMinRes      = 25    // iterations before the residual test applies
	itMaxHalley   = 100   // iteration cap of the safeguarded loop
	nearIdealTh   = 1e-14 // Θ/(1+B) below which the state is ideal
	polishPmin    = 1e-2  // [Pa] below: polishing unnecessary
	polishPmax    = 1e9   // [Pa] above: polishing may overflow
)

var errHalley = errors.New("cubic: safeguarded Halley iteration did not converge")

// solveHalley finds the real roots of the reduced cubic with a damped,
// bisection-safeguarded Halley iteration followed by deflation. Complex
// pairs are not resolved by this strategy (their slots are left as 0).
// P is the absolute pressure, used only for the polishing thresholds.
func solveHalley(o Reduced, P float64) (rs RootSet, it int, err error) {

	// near-ideal shortcut: with negligible attraction the cubic
	// factors as x·(x-1-B)·(x+D) and the only physical root is 1+B
	if math.Abs(o.Th) < nearIdealTh*(1.0+o.B) {
		rs[2] = complex(1.0+o.B, 0)
		rs = rs.Sorted()
		return
	}

	// bracket guaranteed to contain a real root: the cubic is monic, so
	// it is negative at -L and positive at +L for the Cauchy bound L
	L := o.bound()
	lo, hi := -L, L

	// liquid-like seed, capped by the ideal-gas estimate
	x := o.B * (1.0 + liquidSeedEps)
	if x > 1.0+o.B {
		x = 1.0 + o.B
	}
	if x <= lo || x >= hi {
		x = 0.5 * (lo + hi)
	}

	conv := false
	for it = 1; it <= itMaxHalley; it++ {
		f := o.F(x)
		if f == 0 {
			conv = true
			break
		}

		// tighten the bracket from the residual sign
		if f > 0 {
			hi = x
		} else {
			lo = x
		}

		// damped second-order step; rejected steps fall back to the
		// interval midpoint
		fp := o.Fp(x)
		den := 2.0*fp*fp - f*o.Fpp(x)
		var xnew float64
		if den != 0 {
			xnew = x - 2.0*f*fp/den
		}
		if den == 0 || xnew <= lo || xnew >= hi || math.IsNaN(xnew) {
			xnew = 0.5 * (lo + hi)
		}
		dx := xnew - x
		x = xnew

		if math.Abs(dx) <= stepTol*math.Abs(x) {
			conv = true
			break
		}
		if it >= itMinRes && math.Abs(o.F(x)) <= resTol*o.scale(x) {
			conv = true
			break
		}
	}
	if !conv || math.IsNaN(x) {
		return rs, it, errHalley
	}

	// deflate: factor the pinned root out, leaving x² + p·x + q
	p := o.C2 + x
	q := o.C1 + x*p
	disc := p*p - 4.0*q
	if disc < 0 {
		// genuinely complex pair: left to the slower strategies
		rs[2] = complex(x, 0)
		rs = rs.Sorted()
		return
	}

	// stable quadratic roots
	sq := math.Sqrt(disc)
	var x2 float64
	if p >= 0 {
		x2 = 0.5 * (-p - sq)
	} else {
		x2 = 0.5 * (-p + sq)
	}
	x3 := -p - x2
	if x2 != 0 {
		x3 = q / x2
	}

	// polish within the pressure window where corrections help
	if P >= polishPmin && P <= polishPmax {
		x2 = o.polish(x2)
		x3 = o.polish(x3)
	}
	rs = RootSet{complex(x, 0), complex(x2, 0), complex(x3, 0)}.Sorted()
	return
}

// polish applies up to two Newton corrections, keeping the current
// value whenever a correction fails to reduce the residual
func (o Reduced) polish(x float64) float64 {
	for k := 0; k < 2; k++ {
		f := o.F(x)
		fp := o.Fp(x)
		if fp == 0 {
			return x
		}
		xn := x - f/fp
		if math.IsNaN(xn) || math.Abs(o.F(xn)) >= math.Abs(f) {
			return x
		}
		x = xn
	}
	return x
}
