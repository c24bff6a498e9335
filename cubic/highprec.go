// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubic

import (
	"errors"
	"math"
	"math/big"
)

// bigDigits is the escalation schedule of the arbitrary-precision
// strategy, in decimal digits
var bigDigits = []int{40, 60, 80, 100}

var errBig = errors.New("cubic: arbitrary-precision strategy did not converge")

// solveBig recomputes the reduced cubic in extended precision,
// escalating the working precision until the residual is resolved. It
// is deliberately slow and sits on no common hot path.
func solveBig(o Reduced) (rs RootSet, it int, err error) {
	for _, digits := range bigDigits {
		prec := uint(float64(digits)*math.Log2(10)) + 16
		r, n, e := bigAttempt(o, prec)
		it += n
		if e == nil {
			return r, it, nil
		}
	}
	return rs, it, errBig
}

// bigAttempt runs one precision level: a sign-based bisection pins the
// first real root (a monic cubic always has one inside the Cauchy
// bound), then the deflated quadratic is solved exactly
func bigAttempt(o Reduced, prec uint) (rs RootSet, it int, err error) {
	nf := func(v float64) *big.Float { return big.NewFloat(v).SetPrec(prec) }
	c2, c1, c0 := nf(o.C2), nf(o.C1), nf(o.C0)

	f := func(x *big.Float) *big.Float {
		r := new(big.Float).SetPrec(prec).Add(x, c2)
		r.Mul(r, x)
		r.Add(r, c1)
		r.Mul(r, x)
		r.Add(r, c0)
		return r
	}

	// bisection over [-L, L]: f(-L) < 0 < f(L) holds for the monic form
	L := o.bound()
	lo, hi := nf(-L), nf(L)
	half := nf(0.5)
	mid := nf(0)
	for k := 0; k < int(prec)+2; k++ {
		it++
		mid = new(big.Float).SetPrec(prec).Add(lo, hi)
		mid.Mul(mid, half)
		s := f(mid).Sign()
		if s == 0 {
			break
		}
		if s > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	// residual test: escalate when this precision cannot resolve it
	res, _ := f(mid).Float64()
	midf, _ := mid.Float64()
	if math.Abs(res) > math.Ldexp(o.scale(midf), -int(prec)+8) {
		return rs, it, errBig
	}

	// deflate: x² + p·x + q
	p := new(big.Float).SetPrec(prec).Add(c2, mid)
	q := new(big.Float).SetPrec(prec).Mul(mid, p)
	q.Add(q, c1)
	disc := new(big.Float).SetPrec(prec).Mul(p, p)
	disc.Sub(disc, new(big.Float).SetPrec(prec).Mul(nf(4), q))
	negp := new(big.Float).SetPrec(prec).Neg(p)

	if disc.Sign() >= 0 {
		sq := new(big.Float).SetPrec(prec).Sqrt(disc)
		x2 := new(big.Float).SetPrec(prec).Sub(negp, sq)
		x2.Mul(x2, half)
		x3 := new(big.Float).SetPrec(prec).Add(negp, sq)
		x3.Mul(x3, half)
		a, _ := x2.Float64()
		b, _ := x3.Float64()
		rs = RootSet{complex(midf, 0), complex(a, 0), complex(b, 0)}.Sorted()
		return rs, it, nil
	}

	// complex pair: (-p ± i·√(-disc))/2
	nd := new(big.Float).SetPrec(prec).Neg(disc)
	sq := new(big.Float).SetPrec(prec).Sqrt(nd)
	re := new(big.Float).SetPrec(prec).Mul(negp, half)
	im := new(big.Float).SetPrec(prec).Mul(sq, half)
	ref, _ := re.Float64()
	imf, _ := im.Float64()
	rs = RootSet{complex(midf, 0), complex(ref, imf), complex(ref, -imf)}.Sorted()
	return rs, it, nil
}
