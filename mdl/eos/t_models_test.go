// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_pr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr01. Peng-Robinson: coefficients and derivatives")

	mdl, err := New("pr")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// volume coefficients of the generic form
	b := mdl.B()
	chk.Float64(tst, "δ = 2·b ", 1e-17, mdl.Delta(), 2.0*b)
	chk.Float64(tst, "ε = -b² ", 1e-17, mdl.Epsilon(), -b*b)

	// hexane covolume
	chk.Float64(tst, "b", 1e-9, b, 0.07779607390388846*R*507.6/3.025e6)

	// attraction term derivatives
	CheckDerivs(tst, mdl, 250, 550, 7, 1e-7, 1e-9, chk.Verbose)
}

func Test_srk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("srk01. Soave-Redlich-Kwong: coefficients and derivatives")

	mdl, err := New("srk")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	b := mdl.B()
	chk.Float64(tst, "δ = b ", 1e-17, mdl.Delta(), b)
	chk.Float64(tst, "ε = 0 ", 1e-17, mdl.Epsilon(), 0)

	CheckDerivs(tst, mdl, 250, 550, 7, 1e-7, 1e-9, chk.Verbose)
}

func Test_rk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rk01. Redlich-Kwong: coefficients and derivatives")

	mdl, err := New("rk")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	b := mdl.B()
	chk.Float64(tst, "δ = b ", 1e-17, mdl.Delta(), b)
	chk.Float64(tst, "ε = 0 ", 1e-17, mdl.Epsilon(), 0)

	CheckDerivs(tst, mdl, 250, 550, 7, 1e-7, 1e-9, chk.Verbose)
}

func Test_vdw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vdw01. van der Waals: coefficients and derivatives")

	mdl, err := New("vdw")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Float64(tst, "δ = 0 ", 1e-17, mdl.Delta(), 0)
	chk.Float64(tst, "ε = 0 ", 1e-17, mdl.Epsilon(), 0)
	chk.Float64(tst, "b", 1e-9, mdl.B(), R*507.6/(8.0*3.025e6))

	// aα is constant in T
	aα, d1, d2 := mdl.AlphaA(300)
	aα2, _, _ := mdl.AlphaA(500)
	chk.Float64(tst, "aα(300) = aα(500)", 1e-17, aα, aα2)
	chk.Float64(tst, "daα/dT  ", 1e-17, d1, 0)
	chk.Float64(tst, "d²aα/dT²", 1e-17, d2, 0)

	CheckDerivs(tst, mdl, 250, 550, 5, 1e-12, 1e-12, chk.Verbose)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. model factory")

	for _, name := range []string{"pr", "srk", "rk", "vdw"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("allocation of %q failed: %v\n", name, err)
			return
		}
		if mdl == nil {
			tst.Errorf("allocation of %q returned nil\n", name)
			return
		}
	}

	_, err := New("invalid")
	if err == nil {
		tst.Errorf("allocation of invalid model must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// wrong parameter name
	mdl, _ := New("pr")
	prms, err := SpeciesPrms("hexane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	prms[0].N = "Tcc"
	err = mdl.Init(prms)
	if err == nil {
		tst.Errorf("Init with wrong parameter name must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_species01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("species01. species database")

	prms, err := SpeciesPrms("hexane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tc   ", 1e-17, prms.Find("Tc").V, 507.6)
	chk.Float64(tst, "Pc   ", 1e-17, prms.Find("Pc").V, 3.025e6)
	chk.Float64(tst, "omega", 1e-17, prms.Find("omega").V, 0.2975)

	for _, name := range []string{"methane", "nitrogen", "water"} {
		prms, err = SpeciesPrms(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if prms.Find("Tc") == nil || prms.Find("Pc") == nil || prms.Find("omega") == nil {
			tst.Errorf("species %q is missing critical constants\n", name)
			return
		}
	}

	_, err = SpeciesPrms("unobtainium")
	if err == nil {
		tst.Errorf("lookup of unknown species must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
