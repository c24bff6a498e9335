// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PengRob implements the Peng-Robinson (1976) equation of state:
//   P = R·T/(V-b) - aα(T)/(V² + 2·b·V - b²)
//   aα(T) = a·[1 + κ·(1 - √(T/Tc))]²
type PengRob struct {

	// parameters
	tc float64 // critical temperature
	pc float64 // critical pressure
	ω  float64 // acentric factor

	// derived
	a float64 // attraction coefficient
	b float64 // covolume
	κ float64 // alpha-function slope
}

// add model to factory
func init() {
	allocators["pr"] = func() Model { return new(PengRob) }
}

// Init initialises model
func (o *PengRob) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.tc = p.V
		case "Pc":
			o.pc = p.V
		case "omega":
			o.ω = p.V
		default:
			return chk.Err("pr: parameter named %q is incorrect", p.N)
		}
	}
	if o.tc <= 0 || o.pc <= 0 {
		return chk.Err("pr: critical constants must be positive. Tc=%g, Pc=%g", o.tc, o.pc)
	}
	o.a = 0.4572355289213822 * R * R * o.tc * o.tc / o.pc
	o.b = 0.07779607390388846 * R * o.tc / o.pc
	o.κ = 0.37464 + 1.54226*o.ω - 0.26992*o.ω*o.ω
	return
}

// GetPrms gets (an example of) parameters
func (o PengRob) GetPrms(example bool) dbf.Params {
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
func (o PengRob) B() float64 { return o.b }

// Delta returns δ = 2·b
func (o PengRob) Delta() float64 { return 2.0 * o.b }

// Epsilon returns ε = -b²
func (o PengRob) Epsilon() float64 { return -o.b * o.b }

// Tcrit returns the critical temperature
func (o PengRob) Tcrit() float64 { return o.tc }

// Pcrit returns the critical pressure
func (o PengRob) Pcrit() float64 { return o.pc }

// AlphaA computes the attraction term aα and its first two temperature derivatives
func (o PengRob) AlphaA(T float64) (aα, daαdT, d2aαdT2 float64) {
	x := 1.0 + o.κ*(1.0-math.Sqrt(T/o.tc))
	aα = o.a * x * x
	daαdT = -o.a * o.κ * x / math.Sqrt(T*o.tc)
	d2aαdT2 = 0.5 * o.a * o.κ * (o.κ/(T*o.tc) + x/(math.Sqrt(o.tc)*T*math.Sqrt(T)))
	return
}
