// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cubic finds the volume roots of a generic cubic equation of
// state. The pressure-volume relation is first rescaled by R·T/P into a
// dimensionless monic cubic; three interchangeable strategies then
// produce the (possibly complex) roots: a fast safeguarded Halley
// iteration, a multi-attempt Newton polisher and an arbitrary-precision
// fallback. Failure of a strategy is a value, not a crash; Solve
// escalates through the chain.
package cubic

import (
	"math"

	"github.com/cpmech/geos/mdl/eos"
)

// Reduced holds the dimensionless coefficients of the monic volume
// cubic at one (T, P) pair:
//   x³ + C2·x² + C1·x + C0 = 0   with   x = V·P/(R·T)
type Reduced struct {
	B  float64 // b·P/(R·T)
	D  float64 // δ·P/(R·T)
	Th float64 // aα·P/(R·T)²
	E  float64 // ε·[P/(R·T)]²

	// monic coefficients
	C2, C1, C0 float64
}

// Reduce computes the dimensionless cubic coefficients at T and P.
// Precondition: T > 0 and P > 0 (checked by the caller).
func Reduce(T, P, b, δ, ε, aα float64) (o Reduced) {
	s := P / (eos.R * T)
	o.B = b * s
	o.D = δ * s
	o.Th = aα * s * s / P
	o.E = ε * s * s
	o.C2 = o.D - o.B - 1.0
	o.C1 = o.Th + o.E - o.D*(o.B+1.0)
	o.C0 = -(o.E*(o.B+1.0) + o.Th*o.B)
	return
}

// F evaluates the monic cubic
func (o Reduced) F(x float64) float64 {
	return ((x+o.C2)*x+o.C1)*x + o.C0
}

// Fp evaluates the first derivative of the cubic
func (o Reduced) Fp(x float64) float64 {
	return (3.0*x+2.0*o.C2)*x + o.C1
}

// Fpp evaluates the second derivative of the cubic
func (o Reduced) Fpp(x float64) float64 {
	return 6.0*x + 2.0*o.C2
}

// Fc evaluates the cubic with complex argument
func (o Reduced) Fc(z complex128) complex128 {
	return ((z+complex(o.C2, 0))*z+complex(o.C1, 0))*z + complex(o.C0, 0)
}

// FpC evaluates the first derivative with complex argument
func (o Reduced) FpC(z complex128) complex128 {
	return (3.0*z+complex(2.0*o.C2, 0))*z + complex(o.C1, 0)
}

// scale returns the magnitude of the cubic's terms at x, used to make
// residual tests relative
func (o Reduced) scale(x float64) float64 {
	ax := math.Abs(x)
	return ax*ax*ax + math.Abs(o.C2)*ax*ax + math.Abs(o.C1)*ax + math.Abs(o.C0) + 1e-300
}

// bound returns the Cauchy bound: every root has magnitude below it
func (o Reduced) bound() float64 {
	return 1.0 + math.Max(math.Abs(o.C2), math.Max(math.Abs(o.C1), math.Abs(o.C0)))
}
