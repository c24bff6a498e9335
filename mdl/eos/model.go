// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equation-of-state families sharing the
// generic pressure-volume form
//   P = R·T/(V-b) - aα(T)/(V² + δ·V + ε)
// where b is the covolume, δ and ε are constant volume coefficients and
// aα(T) is the temperature-dependent attraction term. The root-finding
// engine, the phase classifier and the derivative engine are written
// once against the Model interface.
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// R is the universal gas constant [J/(mol·K)]
const R = 8.31446261815324

// Model defines a cubic EOS family through the coefficients of the
// generic cubic form. AlphaA returns the attraction term aα and its
// first two temperature derivatives
type Model interface {
	Init(prms dbf.Params) error                       // initialises model from Tc, Pc, omega
	GetPrms(example bool) dbf.Params                  // gets (an example of) parameters
	B() float64                                       // covolume b > 0
	Delta() float64                                   // linear volume coefficient δ
	Epsilon() float64                                 // quadratic volume coefficient ε
	AlphaA(T float64) (aα, daαdT, d2aαdT2 float64)    // attraction term and derivatives @ T
	Tcrit() float64                                   // critical temperature
	Pcrit() float64                                   // critical pressure
}

// New returns a new EOS model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
