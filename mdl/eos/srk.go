// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Srk implements the Soave-Redlich-Kwong (1972) equation of state:
//   P = R·T/(V-b) - aα(T)/(V² + b·V)
//   aα(T) = a·[1 + m·(1 - √(T/Tc))]²
type Srk struct {

	// parameters
	tc float64 // critical temperature
	pc float64 // critical pressure
	ω  float64 // acentric factor

	// derived
	a float64 // attraction coefficient
	b float64 // covolume
	m float64 // alpha-function slope
}

// add model to factory
func init() {
	allocators["srk"] = func() Model { return new(Srk) }
}

// Init initialises model
func (o *Srk) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.tc = p.V
		case "Pc":
			o.pc = p.V
		case "omega":
			o.ω = p.V
		default:
			return chk.Err("srk: parameter named %q is incorrect", p.N)
		}
	}
	if o.tc <= 0 || o.pc <= 0 {
		return chk.Err("srk: critical constants must be positive. Tc=%g, Pc=%g", o.tc, o.pc)
	}
	o.a = 0.42748023354034137 * R * R * o.tc * o.tc / o.pc
	o.b = 0.08664034996495773 * R * o.tc / o.pc
	o.m = 0.480 + 1.574*o.ω - 0.176*o.ω*o.ω
	return
}

// GetPrms gets (an example of) parameters
func (o Srk) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // hexane
			&dbf.P{N: "Tc", V: 507.6},     // [K]
			&dbf.P{N: "Pc", V: 3.025e6},   // [Pa]
			&dbf.P{N: "omega", V: 0.2975}, // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.tc},
		&dbf.P{N: "Pc", V: o.pc},
		&dbf.P{N: "omega", V: o.ω},
	}
}

// B returns the covolume b
func (o Srk) B() float64 { return o.b }

// Delta returns δ = b
func (o Srk) Delta() float64 { return o.b }

// Epsilon returns ε = 0
func (o Srk) Epsilon() float64 { return 0 }

// Tcrit returns the critical temperature
func (o Srk) Tcrit() float64 { return o.tc }

// Pcrit returns the critical pressure
func (o Srk) Pcrit() float64 { return o.pc }

// AlphaA computes the attraction term aα and its first two temperature derivatives
func (o Srk) AlphaA(T float64) (aα, daαdT, d2aαdT2 float64) {
	x := 1.0 + o.m*(1.0-math.Sqrt(T/o.tc))
	aα = o.a * x * x
	daαdT = -o.a * o.m * x / math.Sqrt(T*o.tc)
	d2aαdT2 = 0.5 * o.a * o.m * (o.m/(T*o.tc) + x/(math.Sqrt(o.tc)*T*math.Sqrt(T)))
	return
}
