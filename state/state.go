// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"fmt"
	"math"

	"github.com/cpmech/geos/cubic"
	"github.com/cpmech/geos/mdl/eos"
)

// State holds one resolved thermodynamic state of a pure substance. It
// is mutable only during Solve and logically immutable afterwards;
// rebasing to another specification returns a new instance.
type State struct {

	// input
	Mdl eos.Model // EOS family supplying b, δ, ε and aα(T)

	// specification: two are given, the third is derived (0 = absent)
	T float64 // temperature [K]
	P float64 // pressure [Pa]
	V float64 // molar volume [m³/mol]

	// options
	OnlyL bool   // materialise only the liquid side of a two-root state
	OnlyG bool   // materialise only the vapour side of a two-root state
	Hint  string // "l" or "g" bias when inverting for T

	// attraction term at T
	Aα      float64 // aα(T)
	DAαDT   float64 // daα/dT
	D2AαDT2 float64 // d²aα/dT²

	// results
	Res   cubic.Outcome // roots and solver diagnostics
	L     *Props        // liquid bundle (nil = not computed)
	G     *Props        // vapour bundle (nil = not computed)
	Phase string        // "l", "g" or "l/g"
}

// Init initialises and solves the state. Exactly two of T, P, V must be
// positive; the remaining one is derived.
func (o *State) Init(mdl eos.Model, T, P, V float64) (err error) {
	o.Mdl = mdl
	o.T, o.P, o.V = T, P, V
	return o.Solve()
}

// Solve resolves the state according to which pair of T, P, V is given
func (o *State) Solve() (err error) {
	n := 0
	for _, v := range []float64{o.T, o.P, o.V} {
		if v > 0 {
			n++
		}
	}
	if n != 2 {
		return fmt.Errorf("%w: exactly two of T=%g, P=%g, V=%g must be given", ErrSpec, o.T, o.P, o.V)
	}
	switch {
	case o.T > 0 && o.P > 0:
		return o.solveTP()
	case o.T > 0 && o.V > 0:
		return o.solveTV()
	default:
		return o.solvePV()
	}
}

// To returns a new state at the given specification pair, reusing the
// model and options. The same instance is returned unchanged when the
// requested pair matches the current specification.
func (o *State) To(T, P, V float64) (*State, error) {
	match := func(want, have float64) bool { return want == 0 || want == have }
	n := 0
	for _, v := range []float64{T, P, V} {
		if v > 0 {
			n++
		}
	}
	if n == 2 && match(T, o.T) && match(P, o.P) && match(V, o.V) {
		return o, nil
	}
	s := new(State)
	s.OnlyL, s.OnlyG, s.Hint = o.OnlyL, o.OnlyG, o.Hint
	if err := s.Init(o.Mdl, T, P, V); err != nil {
		return nil, err
	}
	return s, nil
}

// SolveMissing materialises a phase bundle skipped through OnlyL or
// OnlyG, reusing the stored roots (no root-finding is re-run)
func (o *State) SolveMissing() (err error) {
	o.OnlyL, o.OnlyG = false, false
	return o.classify()
}

// ResolveDerivs recomputes both property bundles with freshly evaluated
// aα derivatives, reusing the stored roots. The higher derivatives do
// not enter the root equation, so the roots stay valid.
func (o *State) ResolveDerivs() (err error) {
	o.setAlpha(o.T)
	return o.classify()
}

// setAlpha evaluates the attraction term and its derivatives at T
func (o *State) setAlpha(T float64) {
	o.Aα, o.DAαDT, o.D2AαDT2 = o.Mdl.AlphaA(T)
}

// solveTP handles the common case: both T and P given
func (o *State) solveTP() (err error) {
	o.setAlpha(o.T)
	b, δ, ε := o.Mdl.B(), o.Mdl.Delta(), o.Mdl.Epsilon()
	o.Res, err = cubic.Solve(o.T, o.P, b, δ, ε, o.Aα)
	if err != nil {
		return
	}
	return o.classify()
}

// solveTV computes P directly and algebraically from T and V, then
// resolves the full state at the derived pressure
func (o *State) solveTV() (err error) {
	b, δ, ε := o.Mdl.B(), o.Mdl.Delta(), o.Mdl.Epsilon()
	if o.V <= b {
		return fmt.Errorf("%w: V=%g is not greater than b=%g", ErrSpec, o.V, b)
	}
	o.setAlpha(o.T)
	o.P = eos.R*o.T/(o.V-b) - o.Aα/(o.V*o.V+δ*o.V+ε)
	if o.P <= 0 || math.IsNaN(o.P) || math.IsInf(o.P, 0) {
		return fmt.Errorf("%w: derived pressure is not positive and finite. T=%g, V=%g, P=%g", ErrSpec, o.T, o.V, o.P)
	}
	return o.solveTP()
}

// solvePV inverts the equation of state for T, then resolves the full
// state at the recovered temperature
func (o *State) solvePV() (err error) {
	T, err := o.solveT()
	if err != nil {
		return
	}
	o.T = T
	return o.solveTP()
}

// classify filters the stored roots, selects the physical ones and
// materialises the phase property bundles
func (o *State) classify() (err error) {
	b := o.Mdl.B()
	s := o.P / (eos.R * o.T)
	good := o.Res.Roots.Good(b * s)
	if len(good) == 0 {
		return fmt.Errorf("%w: T=%g, P=%g, b=%g, δ=%g, ε=%g, aα=%g, roots=%v",
			ErrNoRoot, o.T, o.P, b, o.Mdl.Delta(), o.Mdl.Epsilon(), o.Aα, o.Res.Roots)
	}
	o.L, o.G = nil, nil

	// smallest and largest admissible volumes
	xmin, xmax := good[0], good[len(good)-1]
	Vmin, Vmax := xmin/s, xmax/s

	// the critical point is simultaneously both phases: any root spread
	// left by the solver is noise of the single merged root
	if o.atCritical() {
		o.L, o.G = o.props(Vmin), o.props(Vmin)
		o.Phase = "l/g"
		o.V = Vmin
		return
	}

	// single root, or roots numerically equal
	if xmax-xmin <= 1e-12*xmax {
		p := o.props(Vmin)
		if p.Liquidish() {
			o.L, o.Phase = p, "l"
		} else {
			o.G, o.Phase = p, "g"
		}
		o.V = p.V
		return
	}

	// two-phase: smallest root is the liquid candidate, largest the
	// vapour candidate
	o.Phase = "l/g"
	if !o.OnlyG {
		o.L = o.props(Vmin)
	}
	if !o.OnlyL {
		o.G = o.props(Vmax)
	}
	return
}

// props runs the derivative engine for one accepted volume root
func (o *State) props(V float64) *Props {
	return newProps(o.T, o.P, V, o.Mdl.B(), o.Mdl.Delta(), o.Mdl.Epsilon(), o.Aα, o.DAαDT, o.D2AαDT2)
}

// atCritical tells whether the specification coincides with the
// critical point
func (o *State) atCritical() bool {
	tc, pc := o.Mdl.Tcrit(), o.Mdl.Pcrit()
	return math.Abs(o.T-tc) <= 1e-12*tc && math.Abs(o.P-pc) <= 1e-12*pc
}
