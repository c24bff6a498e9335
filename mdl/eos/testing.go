// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckDerivs checks the analytical temperature derivatives of the
// attraction term against numerical differentiation over [T0, Tf]
func CheckDerivs(tst *testing.T, mdl Model, T0, Tf float64, npts int, tolD1, tolD2 float64, verbose bool) {
	TT := utl.LinSpace(T0, Tf, npts)
	for _, T := range TT {
		aα, d1, d2 := mdl.AlphaA(T)
		if verbose {
			io.Pforan("T=%g: aα=%g, daα/dT=%g, d²aα/dT²=%g\n", T, aα, d1, d2)
		}

		// numerical daα/dT
		chk.DerivScaSca(tst, io.Sf("daα/dT  @ %g", T), tolD1, d1, T, 1e-3, verbose, func(t float64) float64 {
			atmp, _, _ := mdl.AlphaA(t)
			return atmp
		})

		// numerical d²aα/dT²
		chk.DerivScaSca(tst, io.Sf("d²aα/dT² @ %g", T), tolD2, d2, T, 1e-3, verbose, func(t float64) float64 {
			_, dtmp, _ := mdl.AlphaA(t)
			return dtmp
		})
	}
}
