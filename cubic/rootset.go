// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubic

import "math"

// ImagTol is the relative threshold below which the imaginary part of a
// root is treated as numerical noise and the root as real
const ImagTol = 1e-12

// RootSet is the ordered triple of candidate dimensionless volumes of
// one (T, P) pair. Unused or discarded slots hold 0.
type RootSet [3]complex128

// Sorted returns the set ordered lexicographically by (real, imaginary)
// so results are deterministic across strategies
func (o RootSet) Sorted() (r RootSet) {
	r = o
	less := func(a, b complex128) bool {
		if real(a) != real(b) {
			return real(a) < real(b)
		}
		return imag(a) < imag(b)
	}
	if less(r[1], r[0]) {
		r[0], r[1] = r[1], r[0]
	}
	if less(r[2], r[1]) {
		r[1], r[2] = r[2], r[1]
	}
	if less(r[1], r[0]) {
		r[0], r[1] = r[1], r[0]
	}
	return
}

// Good returns the physically admissible roots: real part greater than
// the reduced covolume B and negligible imaginary part, in increasing
// order
func (o RootSet) Good(B float64) (xs []float64) {
	s := o.Sorted()
	for _, z := range s {
		x, y := real(z), imag(z)
		if x <= B {
			continue
		}
		if y != 0 && math.Abs(y) > ImagTol*math.Abs(x) {
			continue
		}
		xs = append(xs, x)
	}
	return
}

// Strategy names reported by Solve
const (
	StratHalley = "halley"   // fast safeguarded-iteration solver
	StratNewton = "newton"   // multi-attempt polishing solver
	StratBig    = "bigfloat" // arbitrary-precision fallback
)

// Outcome holds the roots together with solver diagnostics. Iteration
// counts are part of the result so the strategies stay reentrant.
type Outcome struct {
	Roots      RootSet // sorted candidate roots
	Strategy   string  // which strategy produced the roots
	Iterations int     // total iterations spent, all attempts included
}
