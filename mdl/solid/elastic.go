// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/gofrm/gofrm/inp"
)

// FrameElast implements a linear elastic model for frame members
type FrameElast struct {
	E  float64 // Young's modulus
	G  float64 // shear modulus
	A  float64 // cross-sectional area
	J  float64 // torsional constant
	Iy float64 // moment of inertia of cross section about local y
	Iz float64 // moment of inertia of cross section about local z
	Xp float64 // thermal expansion coefficient
}

// add models to factory
func init() {
	allocators["frame-elast"] = func() Model { return new(FrameElast) }
	allocators["shell-elast"] = func() Model { return new(ShellElast) }
}

// Init initialises model
func (o *FrameElast) Init(mat *inp.MaterialData) (err error) {
	o.E, o.G, o.A, o.J, o.Iy, o.Iz, o.Xp = mat.E, mat.G, mat.A, mat.J, mat.Iy, mat.Iz, mat.Xp
	if o.E < 0 || o.G < 0 || o.A < 0 || o.J < 0 || o.Iy < 0 || o.Iz < 0 {
		return chk.Err("frame-elast: material %q has negative constants", mat.Id)
	}
	return
}

// EA returns the axial rigidity
func (o *FrameElast) EA() float64 { return o.E * o.A }

// GJ returns the torsional rigidity
func (o *FrameElast) GJ() float64 { return o.G * o.J }

// EIy returns the bending rigidity about local y
func (o *FrameElast) EIy() float64 { return o.E * o.Iy }

// EIz returns the bending rigidity about local z
func (o *FrameElast) EIz() float64 { return o.E * o.Iz }

// ShellElast implements a linear elastic model for thick flat shells
type ShellElast struct {
	E     float64     // Young's modulus
	G     float64     // shear modulus
	Nu    float64     // Poisson's coefficient; derived from E and G
	Thick float64     // thickness
	D     [][]float64 // [5][5] plane stress and transverse shear moduli
}

// Init initialises model
func (o *ShellElast) Init(mat *inp.MaterialData) (err error) {
	o.E, o.G, o.Thick = mat.E, mat.G, mat.A
	if o.G <= 0 {
		return chk.Err("shell-elast: material %q must have a positive shear modulus; G = %g", mat.Id, o.G)
	}
	if o.Thick <= 0 {
		return chk.Err("shell-elast: material %q must have a positive thickness; A = %g", mat.Id, o.Thick)
	}
	o.Nu = 0.5*o.E/o.G - 1
	if o.Nu*o.Nu >= 1 {
		return chk.Err("shell-elast: material %q gives ν = %g outside of (-1, 1)", mat.Id, o.Nu)
	}
	ks := 5.0 / 6.0
	c := o.E / (1 - o.Nu*o.Nu)
	o.D = utl.Alloc(5, 5)
	o.D[0][0], o.D[0][1] = c, c*o.Nu
	o.D[1][0], o.D[1][1] = c*o.Nu, c
	o.D[2][2] = o.G
	o.D[3][3] = ks * o.G
	o.D[4][4] = ks * o.G
	return
}
