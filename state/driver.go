// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cpmech/geos/mdl/eos"
	"github.com/cpmech/gosl/io"
)

// Driver solves a sequence of pressures at fixed temperature and
// collects the states. The liquid-vapour fugacity gap it reports is
// what saturation-curve solvers bracket to locate equifugacity.
type Driver struct {

	// input
	Mdl eos.Model // EOS model

	// settings
	Silent bool // do not show error messages

	// results
	Res []*State  // solved states, one per pressure
	Gap []float64 // fugacity_l - fugacity_g; NaN where a side is absent
}

// Init initialises driver
func (o *Driver) Init(mdl eos.Model) error {
	o.Mdl = mdl
	return nil
}

// Run solves all pressures of the path at temperature T
func (o *Driver) Run(T float64, Pvals []float64) (err error) {
	np := len(Pvals)
	o.Res = make([]*State, np)
	o.Gap = make([]float64, np)
	for i, P := range Pvals {
		st := new(State)
		if err = st.Init(o.Mdl, T, P, 0); err != nil {
			if !o.Silent {
				io.PfRed("driver: T=%g, P=%g failed: %v\n", T, P, err)
			}
			return
		}
		o.Res[i] = st
		o.Gap[i] = math.NaN()
		if st.L != nil && st.G != nil {
			o.Gap[i] = st.L.Fug - st.G.Fug
		}
	}
	return
}
