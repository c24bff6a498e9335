// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SpeciesPrms returns the critical constants of a known pure substance
// as model parameters. Values are in SI units: [K], [Pa].
func SpeciesPrms(name string) (prms dbf.Params, err error) {
	switch name {
	case "hexane":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 507.6},     // [K]
			&dbf.P{N: "Pc", V: 3.025e6},   // [Pa]
			&dbf.P{N: "omega", V: 0.2975}, // [-]
		}, nil
	case "methane":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 190.564},  // [K]
			&dbf.P{N: "Pc", V: 4.599e6},  // [Pa]
			&dbf.P{N: "omega", V: 0.008}, // [-]
		}, nil
	case "nitrogen":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 126.2},    // [K]
			&dbf.P{N: "Pc", V: 3.394e6},  // [Pa]
			&dbf.P{N: "omega", V: 0.040}, // [-]
		}, nil
	case "water":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 647.14},    // [K]
			&dbf.P{N: "Pc", V: 2.2048e7},  // [Pa]
			&dbf.P{N: "omega", V: 0.344},  // [-]
		}, nil
	}
	return nil, chk.Err("species %q is not available in 'eos' database", name)
}
