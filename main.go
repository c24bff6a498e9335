// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/geos/mdl/eos"
	"github.com/cpmech/geos/state"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	mdlname := io.ArgToString(0, "pr")
	species := io.ArgToString(1, "hexane")
	T := io.ArgToFloat(2, 400) // [K]
	P := io.ArgToFloat(3, 1e6) // [Pa]
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"EOS model", "mdlname", mdlname,
		"species", "species", species,
		"temperature [K]", "T", T,
		"pressure [Pa]", "P", P,
	))

	// allocate and initialise model
	mdl, err := eos.New(mdlname)
	if err != nil {
		chk.Panic("cannot allocate model: %v", err)
	}
	prms, err := eos.SpeciesPrms(species)
	if err != nil {
		chk.Panic("cannot find species: %v", err)
	}
	err = mdl.Init(prms)
	if err != nil {
		chk.Panic("cannot initialise model: %v", err)
	}

	// solve state
	st := new(state.State)
	err = st.Init(mdl, T, P, 0)
	if err != nil {
		chk.Panic("cannot solve state: %v", err)
	}

	// report
	io.Pf("phase = %q   (strategy=%q, iterations=%d)\n\n", st.Phase, st.Res.Strategy, st.Res.Iterations)
	show := func(tag string, p *state.Props) {
		io.Pf(">>> %s <<<\n", tag)
		io.Pf("V      = %23g [m³/mol]\n", p.V)
		io.Pf("Z      = %23g [-]\n", p.Z)
		io.Pf("PIP    = %23g [-]\n", p.Pip)
		io.Pf("H_dep  = %23g [J/mol]\n", p.Hdep)
		io.Pf("S_dep  = %23g [J/(mol·K)]\n", p.Sdep)
		io.Pf("G_dep  = %23g [J/mol]\n", p.Gdep)
		io.Pf("Cp_dep = %23g [J/(mol·K)]\n", p.CpDep)
		io.Pf("Cv_dep = %23g [J/(mol·K)]\n", p.CvDep)
		io.Pf("fug    = %23g [Pa]\n", p.Fug)
		io.Pf("φ      = %23g [-]\n\n", p.PhiFug)
	}
	if st.L != nil {
		show("liquid", st.L)
	}
	if st.G != nil {
		show("vapour", st.G)
	}
}
