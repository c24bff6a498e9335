// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Vdw implements the van der Waals equation of state:
//   P = R·T/(V-b) - a/V²
// The attraction term is temperature independent (α = 1) and the volume
// polynomial is degenerate (δ = ε = 0), which exercises the 1/V
// departure branch of the derivative engine.
type Vdw struct {

	// parameters
	tc float64 // critical temperature
	pc float64 // critical pressure

	// derived
	a float64 // attraction coefficient
	b float64 // covolume
}

// add model to factory
func init() {
	allocators["vdw"] = func() Model { return new(Vdw) }
}

// Init initialises model
func (o *Vdw) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.tc = p.V
		case "Pc":
			o.pc = p.V
		case "omega": // accepted and ignored
		default:
			return chk.Err("vdw: parameter named %q is incorrect", p.N)
		}
	}
	if o.tc <= 0 || o.pc <= 0 {
		return chk.Err("vdw: critical constants must be positive. Tc=%g, Pc=%g", o.tc, o.pc)
	}
	o.a = 27.0 * R * R * o.tc * o.tc / (64.0 * o.pc)
	o.b = R * o.tc / (8.0 * o.pc)
	return
}

// GetPrms gets (an example of) parameters
func (o Vdw) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // hexane
			&dbf.P{N: "Tc", V: 507.6},   // [K]
			&dbf.P{N: "Pc", V: 3.025e6}, // [Pa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.tc},
		&dbf.P{N: "Pc", V: o.pc},
	}
}

// B returns the covolume b
func (o Vdw) B() float64 { return o.b }

// Delta returns δ = 0
func (o Vdw) Delta() float64 { return 0 }

// Epsilon returns ε = 0
func (o Vdw) Epsilon() float64 { return 0 }

// Tcrit returns the critical temperature
func (o Vdw) Tcrit() float64 { return o.tc }

// Pcrit returns the critical pressure
func (o Vdw) Pcrit() float64 { return o.pc }

// AlphaA computes the attraction term; the derivatives vanish
func (o Vdw) AlphaA(T float64) (aα, daαdT, d2aαdT2 float64) {
	aα = o.a
	return
}
