// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"
	"testing"

	"github.com/cpmech/geos/mdl/eos"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// prHexane allocates a Peng-Robinson model with hexane constants
func prHexane(tst *testing.T) eos.Model {
	mdl, err := eos.New("pr")
	if err != nil {
		tst.Fatalf("allocation failed: %v\n", err)
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Fatalf("initialisation failed: %v\n", err)
	}
	return mdl
}

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01. derivatives against numerical differentiation")

	mdl := prHexane(tst)
	T, P := 400.0, 1e6
	st := new(State)
	err := st.Init(mdl, T, P, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if st.L == nil || st.G == nil {
		tst.Errorf("both phases must be present at T=%g, P=%g: phase=%q\n", T, P, st.Phase)
		return
	}

	// closed forms evaluated independently of the engine
	b, δ, ε := mdl.B(), mdl.Delta(), mdl.Epsilon()
	aα, _, _ := mdl.AlphaA(T)
	q := func(v float64) float64 { return v*v + δ*v + ε }
	dPdT := func(t, v float64) float64 {
		_, d1, _ := mdl.AlphaA(t)
		return eos.R/(v-b) - d1/q(v)
	}
	dPdV := func(v float64) float64 {
		vmb := v - b
		return -eos.R*T/(vmb*vmb) + aα*(2.0*v+δ)/(q(v)*q(v))
	}

	for label, p := range map[string]*Props{"liq": st.L, "gas": st.G} {
		io.Pforan("%s: V=%g, Z=%g, Pip=%g\n", label, p.V, p.Z, p.Pip)

		chk.Float64(tst, label+": Z", 1e-13, p.Z, P*p.V/(eos.R*T))

		// first order partials
		chk.DerivScaSca(tst, label+": ∂P/∂T  ", 1e-6*math.Abs(p.DPDT), p.DPDT, T, 1e-3, chk.Verbose, func(t float64) float64 {
			return eos.Pressure(mdl, t, p.V)
		})
		chk.DerivScaSca(tst, label+": ∂P/∂V  ", 1e-6*math.Abs(p.DPDV), p.DPDV, p.V, 1e-9, chk.Verbose, func(v float64) float64 {
			return eos.Pressure(mdl, T, v)
		})

		// second order partials
		chk.DerivScaSca(tst, label+": ∂²P/∂T² ", 1e-6*math.Abs(p.D2PDT2)+1e-9, p.D2PDT2, T, 1e-3, chk.Verbose, func(t float64) float64 {
			return dPdT(t, p.V)
		})
		chk.DerivScaSca(tst, label+": ∂²P/∂V² ", 1e-6*math.Abs(p.D2PDV2), p.D2PDV2, p.V, 1e-9, chk.Verbose, func(v float64) float64 {
			return dPdV(v)
		})
		chk.DerivScaSca(tst, label+": ∂²P/∂T∂V", 1e-6*math.Abs(p.D2PDTDV), p.D2PDTDV, p.V, 1e-9, chk.Verbose, func(v float64) float64 {
			return dPdT(T, v)
		})

		// inverse partials close the triple product rule
		chk.Float64(tst, label+": (∂P/∂V)·(∂V/∂T)·(∂T/∂P)", 1e-12, p.DPDV*p.DVDT*p.DTDP, -1.0)
		chk.Float64(tst, label+": (∂V/∂P)·(∂P/∂V)", 1e-15, p.DVDP*p.DPDV, 1.0)
		chk.Float64(tst, label+": (∂T/∂V)·(∂V/∂T)", 1e-15, p.DTDV*p.DVDT, 1.0)

		// fugacity coefficient against the textbook Peng-Robinson form
		As := aα * P / (eos.R * T * eos.R * T)
		Bs := b * P / (eos.R * T)
		s2 := math.Sqrt2
		lnphi := p.Z - 1.0 - math.Log(p.Z-Bs) -
			As/(2.0*s2*Bs)*math.Log((p.Z+(1.0+s2)*Bs)/(p.Z+(1.0-s2)*Bs))
		chk.Float64(tst, label+": ln(φ)", 1e-9, p.Gdep/(eos.R*T), lnphi)
		chk.Float64(tst, label+": φ·P  ", 1e-9*p.Fug, p.Fug, P*math.Exp(lnphi))
	}

	// phase identification
	if !st.L.Liquidish() {
		tst.Errorf("liquid root must have Pip > %v: Pip=%v\n", PipTol, st.L.Pip)
		return
	}
	if st.G.Liquidish() {
		tst.Errorf("vapour root must have Pip ≤ %v: Pip=%v\n", PipTol, st.G.Pip)
		return
	}
}

func Test_props02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props02. departures against their Gibbs identities")

	mdl := prHexane(tst)
	T, P := 520.0, 1e6 // supercritical: one root along the whole path
	st := new(State)
	err := st.Init(mdl, T, P, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	p, err := st.Gas()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	gdep := func(t float64) float64 {
		s := new(State)
		if e := s.Init(mdl, t, P, 0); e != nil {
			chk.Panic("state at T=%g, P=%g failed: %v", t, P, e)
		}
		b, e := s.Gas()
		if e != nil {
			chk.Panic("vapour bundle at T=%g, P=%g is missing: %v", t, P, e)
		}
		return b.Gdep
	}
	hdep := func(t float64) float64 {
		s := new(State)
		if e := s.Init(mdl, t, P, 0); e != nil {
			chk.Panic("state at T=%g, P=%g failed: %v", t, P, e)
		}
		b, e := s.Gas()
		if e != nil {
			chk.Panic("vapour bundle at T=%g, P=%g is missing: %v", t, P, e)
		}
		return b.Hdep
	}

	// S = -(∂G/∂T)|P carries over to the departures
	chk.DerivScaSca(tst, "Sdep = -∂Gdep/∂T", 1e-6*math.Abs(p.Sdep)+1e-6, -p.Sdep, T, 1e-3, chk.Verbose, gdep)

	// Cp = (∂H/∂T)|P likewise
	chk.DerivScaSca(tst, "CpDep = ∂Hdep/∂T", 1e-6*math.Abs(p.CpDep)+1e-6, p.CpDep, T, 1e-3, chk.Verbose, hdep)
}

func Test_props03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props03. van der Waals closed-form departures")

	mdl, err := eos.New("vdw")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	T, P := 500.0, 1e5
	st := new(State)
	err = st.Init(mdl, T, P, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	p, err := st.Gas()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// for vdW the departure integrals have elementary forms
	a := 27.0 * eos.R * eos.R * 507.6 * 507.6 / (64.0 * 3.025e6)
	b := mdl.B()
	chk.Float64(tst, "P(V)  ", 1e-9*P, eos.Pressure(mdl, T, p.V), P)
	chk.Float64(tst, "Hdep  ", 1e-8, p.Hdep, P*p.V-eos.R*T-a/p.V)
	chk.Float64(tst, "Sdep  ", 1e-12, p.Sdep, eos.R*math.Log(p.Z)+eos.R*math.Log((p.V-b)/p.V))
	chk.Float64(tst, "CvDep ", 1e-17, p.CvDep, 0)
}

// nearIdeal is a degenerate family with no attraction and a vanishing
// covolume, for exercising the ideal-gas limit of the engine
type nearIdeal struct{ b float64 }

func (o nearIdeal) Init(prms dbf.Params) error      { return nil }
func (o nearIdeal) GetPrms(example bool) dbf.Params { return nil }
func (o nearIdeal) B() float64                      { return o.b }
func (o nearIdeal) Delta() float64                  { return 0 }
func (o nearIdeal) Epsilon() float64                { return 0 }
func (o nearIdeal) Tcrit() float64                  { return 1 }
func (o nearIdeal) Pcrit() float64                  { return 1 }

func (o nearIdeal) AlphaA(T float64) (aα, daαdT, d2aαdT2 float64) { return }

func Test_props04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props04. ideal-gas limit")

	mdl := nearIdeal{b: 1e-17}
	T, P := 300.0, 1e5
	st := new(State)
	err := st.Init(mdl, T, P, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, st.Phase, "g")
	p, err := st.Gas()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Float64(tst, "Z    ", 1e-12, p.Z, 1.0)
	chk.Float64(tst, "V    ", 1e-12, p.V, eos.R*T/P)
	chk.Float64(tst, "Hdep ", 1e-9, p.Hdep, 0)
	chk.Float64(tst, "Sdep ", 1e-11, p.Sdep, 0)
	chk.Float64(tst, "CvDep", 1e-17, p.CvDep, 0)
	chk.Float64(tst, "CpDep", 1e-11, p.CpDep, 0)
	chk.Float64(tst, "φ    ", 1e-11, p.PhiFug, 1.0)
}
