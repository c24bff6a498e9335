// Copyright 2016 The Geos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "fmt"

// Liq returns the liquid property bundle, or ErrPhase when that side
// was not materialised
func (o *State) Liq() (*Props, error) {
	if o.L == nil {
		return nil, fmt.Errorf("%w: liquid side absent (phase=%q)", ErrPhase, o.Phase)
	}
	return o.L, nil
}

// Gas returns the vapour property bundle, or ErrPhase when that side
// was not materialised
func (o *State) Gas() (*Props, error) {
	if o.G == nil {
		return nil, fmt.Errorf("%w: vapour side absent (phase=%q)", ErrPhase, o.Phase)
	}
	return o.G, nil
}

// VLiq returns the liquid molar volume
func (o *State) VLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.V, nil
}

// VGas returns the vapour molar volume
func (o *State) VGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.V, nil
}

// ZLiq returns the liquid compressibility factor
func (o *State) ZLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.Z, nil
}

// ZGas returns the vapour compressibility factor
func (o *State) ZGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.Z, nil
}

// HdepLiq returns the liquid enthalpy departure
func (o *State) HdepLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.Hdep, nil
}

// HdepGas returns the vapour enthalpy departure
func (o *State) HdepGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.Hdep, nil
}

// SdepLiq returns the liquid entropy departure
func (o *State) SdepLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.Sdep, nil
}

// SdepGas returns the vapour entropy departure
func (o *State) SdepGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.Sdep, nil
}

// FugLiq returns the liquid fugacity
func (o *State) FugLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.Fug, nil
}

// FugGas returns the vapour fugacity
func (o *State) FugGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.Fug, nil
}

// PipLiq returns the liquid phase identification parameter
func (o *State) PipLiq() (float64, error) {
	p, err := o.Liq()
	if err != nil {
		return 0, err
	}
	return p.Pip, nil
}

// PipGas returns the vapour phase identification parameter
func (o *State) PipGas() (float64, error) {
	p, err := o.Gas()
	if err != nil {
		return 0, err
	}
	return p.Pip, nil
}
