// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubic

import (
	"errors"
	"math"
	"math/cmplx"
)

// constants of the multi-attempt polishing solver
const (
	newtonMaxIt   = 11   // simultaneous Newton iterations per attempt
	newtonResTol  = 1e-2 // per-root relative residual threshold
	newtonSameTol = 1e-8 // distinct roots must stay this far apart
	newtonRetries = 2    // extra seeding attempts after the first
)

var errNewton = errors.New("cubic: multi-attempt Newton solver did not converge")

// cardano computes the closed-form complex roots of the monic cubic,
// used as seeds for the polishing loop
func (o Reduced) cardano() (z0, z1, z2 complex128) {
	a2 := complex(o.C2, 0)
	p := complex(o.C1-o.C2*o.C2/3.0, 0)
	q := complex(2.0*o.C2*o.C2*o.C2/27.0-o.C2*o.C1/3.0+o.C0, 0)
	d := cmplx.Sqrt(q*q/4.0 + p*p*p/27.0)
	u := cmplx.Pow(-q/2.0+d, complex(1.0/3.0, 0))
	if u == 0 {
		u = cmplx.Pow(-q/2.0-d, complex(1.0/3.0, 0))
	}
	off := a2 / 3.0
	if u == 0 { // p = q = 0: triple root
		return -off, -off, -off
	}
	w := complex(-0.5, 0.5*math.Sqrt(3.0)) // primitive cube root of unity
	u1 := u * w
	u2 := u1 * w
	z0 = u - p/(3.0*u) - off
	z1 = u1 - p/(3.0*u1) - off
	z2 = u2 - p/(3.0*u2) - off
	return
}

// scaleC is the complex counterpart of scale
func (o Reduced) scaleC(z complex128) float64 {
	az := cmplx.Abs(z)
	return az*az*az + math.Abs(o.C2)*az*az + math.Abs(o.C1)*az + math.Abs(o.C0) + 1e-300
}

// solveNewton refines three root candidates simultaneously with a
// bounded Newton loop, retrying with alternative seedings on failure.
// Unlike the fast solver it resolves genuinely complex pairs.
func solveNewton(o Reduced) (rs RootSet, it int, err error) {
	for attempt := 0; attempt <= newtonRetries; attempt++ {

		// seeds
		var z, seed [3]complex128
		switch attempt {
		case 0:
			z[0], z[1], z[2] = o.cardano()
		case 1:
			z[0] = complex(o.B*(1.0+liquidSeedEps), 0)
			z[1] = complex(1.0+o.B, 0)
			z[2] = complex(0.5*(1.0+2.0*o.B), 0)
		default:
			z[0], z[1], z[2] = o.cardano()
			for i := range z {
				z[i] *= complex(1.0, 1e-3) // nudge off pathological seeds
			}
		}
		seed = z

		// bounded simultaneous refinement
		for k := 0; k < newtonMaxIt; k++ {
			it++
			moved := false
			for i := range z {
				fp := o.FpC(z[i])
				if fp == 0 {
					z[i] += complex(1e-8, 1e-8)
					moved = true
					continue
				}
				dz := o.Fc(z[i]) / fp
				z[i] -= dz
				if cmplx.Abs(dz) > stepTol*(1.0+cmplx.Abs(z[i])) {
					moved = true
				}
			}
			if !moved {
				break
			}
		}

		// per-root convergence test
		ok := true
		for i := range z {
			if cmplx.IsNaN(z[i]) || cmplx.IsInf(z[i]) {
				ok = false
				break
			}
			if cmplx.Abs(o.Fc(z[i])) > newtonResTol*o.scaleC(z[i]) {
				ok = false
				break
			}
		}

		// identity preservation: seeds that started apart must not have
		// drifted into the same root
		if ok {
		outer:
			for i := 0; i < 3; i++ {
				for j := i + 1; j < 3; j++ {
					dSeed := cmplx.Abs(seed[i] - seed[j])
					dRoot := cmplx.Abs(z[i] - z[j])
					mag := cmplx.Abs(z[i]) + cmplx.Abs(z[j]) + 1e-300
					if dRoot < newtonSameTol*mag && dSeed > newtonSameTol*mag {
						ok = false
						break outer
					}
				}
			}
		}
		if !ok {
			continue
		}

		// flush imaginary noise and return
		for i := range z {
			if im := imag(z[i]); im != 0 && math.Abs(im) <= ImagTol*math.Abs(real(z[i])) {
				z[i] = complex(real(z[i]), 0)
			}
		}
		rs = RootSet{z[0], z[1], z[2]}.Sorted()
		return rs, it, nil
	}
	return rs, it, errNewton
}
