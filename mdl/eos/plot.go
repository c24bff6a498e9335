// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Pressure computes P directly from T and V
func Pressure(mdl Model, T, V float64) float64 {
	aα, _, _ := mdl.AlphaA(T)
	b, δ, ε := mdl.B(), mdl.Delta(), mdl.Epsilon()
	return R*T/(V-b) - aα/(V*V+δ*V+ε)
}

// PlotIsotherm plots P versus V at fixed temperature
func PlotIsotherm(mdl Model, T, Vini, Vfin float64, npts int, args *plt.A) {
	V := utl.LinSpace(Vini, Vfin, npts)
	P := make([]float64, npts)
	for i, v := range V {
		P[i] = Pressure(mdl, T, v)
	}
	if args == nil {
		args = &plt.A{C: "b", NoClip: true}
	}
	plt.Plot(V, P, args)
	plt.Gll("$V\\;[m^3/mol]$", "$P\\;[Pa]$", nil)
}
