// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "errors"

// Error kinds of the resolution protocol. Callers discriminate with
// errors.Is; messages carry the offending inputs.
var (
	// ErrSpec indicates a given-value count other than two of T, P, V,
	// a derived pressure ≤ 0, or a volume at or below the covolume
	ErrSpec = errors.New("state: invalid specification")

	// ErrNoRoot indicates that no volume root satisfies V > b with a
	// negligible imaginary part
	ErrNoRoot = errors.New("state: no acceptable volume root")

	// ErrTinversion indicates that both the secant and the bracketed
	// solver failed to recover T from (P, V)
	ErrTinversion = errors.New("state: cannot solve temperature from P and V")

	// ErrPhase indicates a property accessor called for a phase that was
	// not materialised; re-solving for that phase recovers
	ErrPhase = errors.New("state: phase not computed")
)
