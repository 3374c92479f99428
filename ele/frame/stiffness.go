// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Section holds the rigidities and foundation springs of a bar segment
//  Note: a negative argument given to the coefficient functions selects the coupling term
//        between the two ends; zero selects the polynomial terms of the classical beam.
//        Springs are ignored by a family with zero rigidity.
type Section struct {
	L   float64 // length
	EA  float64 // axial rigidity
	GJ  float64 // torsional rigidity
	EIy float64 // bending rigidity about local y
	EIz float64 // bending rigidity about local z
	Tx  float64 // axial spring
	Ty  float64 // transverse spring along local y
	Tz  float64 // transverse spring along local z
	Tr  float64 // torsional spring
}

// axial returns the axial coefficients
func axial(EA, L, k float64) float64 {
	if k == 0 || EA == 0 {
		return EA / L
	}
	λ := math.Sqrt(math.Abs(k) / EA)
	if k > 0 {
		return EA * λ * math.Cosh(λ*L) / math.Sinh(λ*L)
	}
	return EA * λ / math.Sinh(λ*L)
}

// hyper holds the hyperbolic and trigonometric functions of a beam on elastic foundation
type hyper struct {
	l0             float64 // characteristic length (4EI/|k|)^¼
	ch, sh, co, si float64 // cosh, sinh, cos, sin of L/l0
	q              float64 // sh² - si²
}

func newHyper(EI, L, k float64) (o hyper) {
	o.l0 = math.Pow(4*EI/math.Abs(k), 0.25)
	x := L / o.l0
	o.ch, o.sh = math.Cosh(x), math.Sinh(x)
	o.co, o.si = math.Cos(x), math.Sin(x)
	o.q = o.sh*o.sh - o.si*o.si
	return
}

// shear returns the shear coefficients related to end translations (12EI/L³ when k = 0)
func shear(EI, L, k float64) float64 {
	if k == 0 || EI == 0 {
		return 12 * EI / (L * L * L)
	}
	h := newHyper(EI, L, k)
	c := 4 * EI / (h.l0 * h.l0 * h.l0)
	if k > 0 {
		return c * (h.sh*h.ch + h.si*h.co) / h.q
	}
	return c * (h.ch*h.si + h.sh*h.co) / h.q
}

// shearRot returns the shear coefficients related to end rotations (6EI/L² when k = 0)
func shearRot(EI, L, k float64) float64 {
	if k == 0 || EI == 0 {
		return 6 * EI / (L * L)
	}
	h := newHyper(EI, L, k)
	if k > 0 {
		return 2 * EI / (h.l0 * h.l0) * (h.sh*h.sh + h.si*h.si) / h.q
	}
	return 4 * EI / (h.l0 * h.l0) * (h.sh * h.si) / h.q
}

// bendNear returns the moment at one end due to a rotation at the same end (4EI/L when k = 0)
func bendNear(EI, L, k float64) float64 {
	if k == 0 || EI == 0 {
		return 4 * EI / L
	}
	h := newHyper(EI, L, k)
	return 2 * EI / h.l0 * (h.sh*h.ch - h.si*h.co) / h.q
}

// bendFar returns the moment at one end due to a rotation at the other end (2EI/L when k = 0)
func bendFar(EI, L, k float64) float64 {
	if k == 0 || EI == 0 {
		return 2 * EI / L
	}
	h := newHyper(EI, L, k)
	return 2 * EI / h.l0 * (h.ch*h.si - h.sh*h.co) / h.q
}

// torsion returns the torsional coefficients
func torsion(GJ, L, k float64) float64 {
	if k == 0 || GJ == 0 {
		return GJ / L
	}
	ω := math.Sqrt(math.Abs(k) / GJ)
	if k > 0 {
		return GJ * ω * math.Cosh(ω*L) / math.Sinh(ω*L)
	}
	return GJ * ω / math.Sinh(ω*L)
}

// coefficient functions
func (o *Section) ka(k float64) float64 { return axial(o.EA, o.L, k) }
func (o *Section) kb(k float64) float64 { return shear(o.EIz, o.L, k) }
func (o *Section) kc(k float64) float64 { return shearRot(o.EIz, o.L, k) }
func (o *Section) kd(k float64) float64 { return shear(o.EIy, o.L, k) }
func (o *Section) ke(k float64) float64 { return shearRot(o.EIy, o.L, k) }
func (o *Section) kf(k float64) float64 { return torsion(o.GJ, o.L, k) }
func (o *Section) kg(k float64) float64 { return bendNear(o.EIy, o.L, k) }
func (o *Section) kh(k float64) float64 { return bendFar(o.EIy, o.L, k) }
func (o *Section) ki(k float64) float64 { return bendNear(o.EIz, o.L, k) }
func (o *Section) kj(k float64) float64 { return bendFar(o.EIz, o.L, k) }

// LocalK computes the [12][12] stiffness matrix in local axes
//  DOFs: ux, uy, uz, rx, ry, rz at i followed by the same at j
func (o *Section) LocalK() (K *mat.Dense) {
	K = mat.NewDense(12, 12, nil)
	tx, ty, tz, tr := o.Tx, o.Ty, o.Tz, o.Tr
	set := func(i, j int, v float64) { K.Set(i, j, v) }

	// axial
	set(0, 0, o.ka(tx))
	set(6, 0, -o.ka(-tx))
	set(0, 6, -o.ka(-tx))
	set(6, 6, o.ka(tx))

	// shear along y and bending about z
	set(1, 1, o.kb(ty))
	set(5, 1, o.kc(ty))
	set(7, 1, -o.kb(-ty))
	set(11, 1, o.kc(-ty))
	set(1, 7, -o.kb(-ty))
	set(5, 7, -o.kc(-ty))
	set(7, 7, o.kb(ty))
	set(11, 7, -o.kc(ty))
	set(1, 5, o.kc(ty))
	set(5, 5, o.ki(ty))
	set(7, 5, -o.kc(-ty))
	set(11, 5, o.kj(ty))
	set(1, 11, o.kc(-ty))
	set(5, 11, o.kj(ty))
	set(7, 11, -o.kc(ty))
	set(11, 11, o.ki(ty))

	// shear along z and bending about y
	set(2, 2, o.kd(tz))
	set(4, 2, -o.ke(tz))
	set(8, 2, -o.kd(-tz))
	set(10, 2, -o.ke(-tz))
	set(2, 8, -o.kd(-tz))
	set(4, 8, o.ke(-tz))
	set(8, 8, o.kd(tz))
	set(10, 8, o.ke(tz))
	set(2, 4, -o.ke(tz))
	set(4, 4, o.kg(tz))
	set(8, 4, o.ke(-tz))
	set(10, 4, o.kh(tz))
	set(2, 10, -o.ke(-tz))
	set(4, 10, o.kh(tz))
	set(8, 10, o.ke(tz))
	set(10, 10, o.kg(tz))

	// torsion
	set(3, 3, o.kf(tr))
	set(9, 3, -o.kf(-tr))
	set(3, 9, -o.kf(-tr))
	set(9, 9, o.kf(tr))
	return
}
