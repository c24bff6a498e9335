// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state resolves thermodynamic states of a pure substance with
// a cubic equation of state: given two of T, P, V it derives the third,
// finds the admissible volume roots, classifies the phases and computes
// partial derivatives and departure functions in closed form.
package state

import (
	"math"

	"github.com/cpmech/geos/mdl/eos"
)

// PipTol is the phase-identification threshold: PIP above it means
// liquid-like. The margin above 1 keeps the ideal-gas limit classified
// as vapour.
const PipTol = 1.00000000000001

// Props holds the volume root, the P-V-T partial derivatives and the
// departure functions of one phase. Instances are owned by a State and
// overwritten whenever the state is re-solved.
type Props struct {
	V float64 // molar volume
	Z float64 // compressibility factor

	// first order partials
	DPDT float64 // ∂P/∂T at constant V
	DPDV float64 // ∂P/∂V at constant T
	DVDT float64 // ∂V/∂T at constant P
	DVDP float64 // ∂V/∂P at constant T
	DTDV float64 // ∂T/∂V at constant P
	DTDP float64 // ∂T/∂P at constant V

	// second order partials
	D2PDT2  float64 // ∂²P/∂T²
	D2PDV2  float64 // ∂²P/∂V²
	D2PDTDV float64 // ∂²P/∂T∂V

	Pip float64 // phase identification parameter

	// departure functions
	Hdep  float64 // enthalpy departure
	Sdep  float64 // entropy departure
	Gdep  float64 // Gibbs energy departure
	CvDep float64 // isochoric heat capacity departure
	CpDep float64 // isobaric heat capacity departure

	// fugacity
	Fug    float64 // fugacity = P·exp(Gdep/(R·T))
	PhiFug float64 // fugacity coefficient
}

// newProps computes every derivative and departure quantity for one
// accepted volume root, in closed form (no numerical differencing)
func newProps(T, P, V, b, δ, ε, aα, daαdT, d2aαdT2 float64) (o *Props) {
	o = new(Props)
	o.V = V
	o.Z = P * V / (eos.R * T)

	Vmb := V - b
	q := V*V + δ*V + ε
	qp := 2.0*V + δ

	// direct partials
	o.DPDT = eos.R/Vmb - daαdT/q
	o.DPDV = -eos.R*T/(Vmb*Vmb) + aα*qp/(q*q)
	o.D2PDT2 = -d2aαdT2 / q
	o.D2PDV2 = 2.0 * (eos.R*T/(Vmb*Vmb*Vmb) + aα/(q*q) - aα*qp*qp/(q*q*q))
	o.D2PDTDV = -eos.R/(Vmb*Vmb) + daαdT*qp/(q*q)

	// inverses via the triple product rule; a vanishing ∂P/∂V maps to a
	// representable infinity instead of raising
	if o.DPDV == 0 {
		o.DVDP = math.Inf(1)
	} else {
		o.DVDP = 1.0 / o.DPDV
	}
	o.DVDT = -o.DPDT * o.DVDP
	if o.DPDT == 0 {
		o.DTDP = math.Inf(1)
	} else {
		o.DTDP = 1.0 / o.DPDT
	}
	if o.DVDT == 0 {
		o.DTDV = math.Inf(1)
	} else {
		o.DTDV = 1.0 / o.DVDT
	}

	o.Pip = V * (o.D2PDTDV/o.DPDT - o.D2PDV2/o.DPDV)

	// closed-form integral ∫ dV'/q from V to ∞, as an inverse hyperbolic
	// tangent for the generic cubic and as 1/V in the degenerate
	// van der Waals form
	var toInv float64
	if δ == 0 && ε == 0 {
		toInv = 1.0 / V
	} else {
		d24 := δ*δ - 4.0*ε
		if d24 <= 0 {
			// exact degeneracy δ² = 4ε: keep the generic branch finite.
			// Every shipped family has δ² ≥ 4ε; a genuinely negative
			// discriminant would continue the integral as an arctangent
			d24 = 1e-100
		}
		t := math.Sqrt(d24)
		toInv = 2.0 * math.Atanh(t/qp) / t
	}

	// departures
	o.Hdep = P*V - eos.R*T + (T*daαdT-aα)*toInv
	o.Sdep = eos.R*math.Log(o.Z) + eos.R*math.Log(Vmb/V) + daαdT*toInv
	o.CvDep = T * d2aαdT2 * toInv
	o.CpDep = o.CvDep + T*o.DPDT*o.DVDT - eos.R
	o.Gdep = o.Hdep - T*o.Sdep

	o.PhiFug = math.Exp(o.Gdep / (eos.R * T))
	o.Fug = P * o.PhiFug
	return
}

// Liquidish tells whether this root is liquid-like according to the
// phase identification parameter
func (o Props) Liquidish() bool {
	return o.Pip > PipTol
}
