// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubic

import (
	"errors"
	"fmt"
)

// ErrExhausted indicates that every root-finding strategy failed within
// its iteration cap
var ErrExhausted = errors.New("cubic: all root-finding strategies failed to converge")

// lowBratio is the reduced pressure ratio B = b·P/(R·T) below which
// double precision cannot resolve the coefficients; such states go
// straight to the arbitrary-precision strategy
const lowBratio = 1e-10

// Solve finds the three roots of the reduced cubic at T and P,
// escalating from the fast safeguarded solver to the multi-attempt
// Newton solver and finally to arbitrary precision
func Solve(T, P, b, δ, ε, aα float64) (res Outcome, err error) {
	return SolveReduced(Reduce(T, P, b, δ, ε, aα), P)
}

// SolveReduced runs the same escalation chain on an already reduced
// set of coefficients. P is the absolute pressure used for the fast
// solver's polishing thresholds.
func SolveReduced(o Reduced, P float64) (res Outcome, err error) {
	it := 0
	if o.B > lowBratio {
		rs, n, e := solveHalley(o, P)
		it += n
		if e == nil {
			return Outcome{rs, StratHalley, it}, nil
		}
		rs, n, e = solveNewton(o)
		it += n
		if e == nil {
			return Outcome{rs, StratNewton, it}, nil
		}
	}
	rs, n, e := solveBig(o)
	it += n
	if e != nil {
		return res, fmt.Errorf("%w: B=%g, C2=%g, C1=%g, C0=%g", ErrExhausted, o.B, o.C2, o.C1, o.C0)
	}
	return Outcome{rs, StratBig, it}, nil
}
