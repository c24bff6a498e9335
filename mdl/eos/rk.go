// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rk implements the Redlich-Kwong (1949) equation of state:
//   P = R·T/(V-b) - aα(T)/(V² + b·V)
//   aα(T) = a·√(Tc/T)
// The acentric factor is not used by this family.
type Rk struct {

	// parameters
	tc float64 // critical temperature
	pc float64 // critical pressure

	// derived
	a float64 // attraction coefficient
	b float64 // covolume
}

// add model to factory
func init() {
	allocators["rk"] = func() Model { return new(Rk) }
}

// Init initialises model
func (o *Rk) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.tc = p.V
		case "Pc":
			o.pc = p.V
		case "omega": // accepted and ignored
		default:
			return chk.Err("rk: parameter named %q is incorrect", p.N)
		}
	}
	if o.tc <= 0 || o.pc <= 0 {
		return chk.Err("rk: critical constants must be positive. Tc=%g, Pc=%g", o.tc, o.pc)
	}
	o.a = 0.42748023354034137 * R * R * o.tc * o.tc / o.pc
	o.b = 0.08664034996495773 * R * o.tc / o.pc
	return
}

// GetPrms gets (an example of) parameters
func (o Rk) GetPrms(example bool) dbf.Params {
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
func (o Rk) B() float64 { return o.b }

// Delta returns δ = b
func (o Rk) Delta() float64 { return o.b }

// Epsilon returns ε = 0
func (o Rk) Epsilon() float64 { return 0 }

// Tcrit returns the critical temperature
func (o Rk) Tcrit() float64 { return o.tc }

// Pcrit returns the critical pressure
func (o Rk) Pcrit() float64 { return o.pc }

// AlphaA computes the attraction term aα and its first two temperature derivatives
func (o Rk) AlphaA(T float64) (aα, daαdT, d2aαdT2 float64) {
	aα = o.a * math.Sqrt(o.tc/T)
	daαdT = -0.5 * aα / T
	d2aαdT2 = 0.75 * aα / (T * T)
	return
}
