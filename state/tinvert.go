// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"fmt"
	"math"

	"github.com/cpmech/geos/mdl/eos"
)

// Tref is the reference temperature used to choose among multiple
// inversion solutions when no hint is given
const Tref = 298.15

// constants of the temperature inversion solvers
const (
	secantMaxIt  = 50    // secant iteration cap
	secantTol    = 1e-12 // relative-step convergence of the secant
	bisectMaxIt  = 200   // bisection iteration cap
	bisectTol    = 1e-13 // relative-width convergence of the bisection
	scanOctaves  = 60    // half-width of the factor-2 bracket scan
	sameTtol     = 1e-6  // relative distance that merges two solutions
	residTolFrac = 1e-8  // residual acceptance, relative to P
)

// fT is the pressure residual at trial temperature T for fixed P and V
func (o *State) fT(T float64) float64 {
	aα, _, _ := o.Mdl.AlphaA(T)
	b, δ, ε := o.Mdl.B(), o.Mdl.Delta(), o.Mdl.Epsilon()
	return eos.R*T/(o.V-b) - aα/(o.V*o.V+δ*o.V+ε) - o.P
}

// solveT inverts the equation of state for temperature at fixed P and
// V. A factor-2 scan around the ideal-gas estimate brackets every sign
// change of the residual and bisects each bracket, and a secant
// iteration from the ideal seed refines its own solution; the hint (or
// proximity to Tref) then selects among the distinct temperatures.
func (o *State) solveT() (T float64, err error) {
	if o.V <= o.Mdl.B() {
		return 0, fmt.Errorf("%w: V=%g is not greater than b=%g", ErrSpec, o.V, o.Mdl.B())
	}

	// ideal-gas estimate anchors the scan and the secant
	Tig := o.P * (o.V - o.Mdl.B()) / eos.R

	cands := o.scanT(Tig)
	if Ts, ok := o.secantT(Tig); ok {
		cands = append(cands, Ts)
	}

	// merge numerically equal solutions
	var uniq []float64
	for _, t := range cands {
		fresh := true
		for _, u := range uniq {
			if math.Abs(t-u) <= sameTtol*u {
				fresh = false
				break
			}
		}
		if fresh {
			uniq = append(uniq, t)
		}
	}
	switch len(uniq) {
	case 0:
		return 0, fmt.Errorf("%w: P=%g, V=%g, Tig=%g", ErrTinversion, o.P, o.V, Tig)
	case 1:
		return uniq[0], nil
	}

	// multiple admissible solutions: the hint biases towards the
	// liquid-like (small T) or vapour-like (large T) branch
	Tmin, Tmax := uniq[0], uniq[0]
	for _, t := range uniq[1:] {
		Tmin = math.Min(Tmin, t)
		Tmax = math.Max(Tmax, t)
	}
	switch o.Hint {
	case "l":
		return Tmin, nil
	case "g":
		return Tmax, nil
	}
	best := uniq[0]
	for _, t := range uniq[1:] {
		if math.Abs(t-Tref) < math.Abs(best-Tref) {
			best = t
		}
	}
	return best, nil
}

// scanT walks a factor-2 temperature grid centred on the ideal
// estimate and bisects every interval holding a sign change
func (o *State) scanT(Tig float64) (cands []float64) {
	lo := math.Ldexp(Tig, -scanOctaves)
	flo := o.fT(lo)
	for k := -scanOctaves + 1; k <= scanOctaves; k++ {
		hi := math.Ldexp(Tig, k)
		fhi := o.fT(hi)
		if flo == 0 {
			cands = append(cands, lo)
		} else if !math.IsNaN(flo) && !math.IsNaN(fhi) && (flo < 0) != (fhi < 0) {
			if t, ok := o.bisectT(lo, hi); ok {
				cands = append(cands, t)
			}
		}
		lo, flo = hi, fhi
	}
	return
}

// secantT runs a bounded secant iteration from the ideal estimate
func (o *State) secantT(T0 float64) (T float64, ok bool) {
	t0, t1 := T0, T0*1.0001
	f0, f1 := o.fT(t0), o.fT(t1)
	for k := 0; k < secantMaxIt; k++ {
		if f1 == f0 {
			return 0, false
		}
		t2 := t1 - f1*(t1-t0)/(f1-f0)
		if math.IsNaN(t2) || t2 <= 0 {
			return 0, false
		}
		t0, f0 = t1, f1
		t1, f1 = t2, o.fT(t2)
		if math.Abs(t1-t0) <= secantTol*t1 {
			if math.Abs(f1) <= residTolFrac*o.P {
				return t1, true
			}
			return 0, false
		}
	}
	return 0, false
}

// bisectT refines a bracket [lo, hi] known to hold a sign change
func (o *State) bisectT(lo, hi float64) (T float64, ok bool) {
	flo := o.fT(lo)
	for k := 0; k < bisectMaxIt; k++ {
		mid := 0.5 * (lo + hi)
		fmid := o.fT(mid)
		if fmid == 0 {
			lo, hi = mid, mid
			break
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
		if hi-lo <= bisectTol*hi {
			break
		}
	}
	T = 0.5 * (lo + hi)
	if math.Abs(o.fT(T)) > residTolFrac*o.P*10.0 {
		return 0, false
	}
	return T, true
}
