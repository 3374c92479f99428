// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frame implements bar and flat shell elements for 3D frames
package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform holds the rotation from global to local axes of a straight segment
//
//   local x: from xa to xb
//   local y, z: rotated by the chord angle about local x
//
//  T3 -- [3][3] rows are the local axes in global components
//  T  -- [12][12] T3 repeated on the diagonal; maps {fi, mi, fj, mj} from global to local
type Transform struct {
	L  float64    // true length
	T3 *mat.Dense // [3][3]
	T  *mat.Dense // [12][12]
}

// NewTransform computes the transformation of segment xa→xb with chord angle given in degrees.
// It returns nil if the segment has zero length.
func NewTransform(xa, xb r3.Vec, angle float64) (o *Transform) {
	v := r3.Sub(xb, xa)
	el := r3.Norm(v)
	if el == 0 {
		return nil
	}
	o = &Transform{L: el}

	// chord angle
	θ := angle * math.Pi / 180.0
	c, s := math.Cos(θ), math.Sin(θ)
	t1 := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})

	// direction cosines
	l, m, n := v.X/el, v.Y/el, v.Z/el
	var t2 *mat.Dense
	if v.X == 0 && v.Y == 0 {
		t2 = mat.NewDense(3, 3, []float64{
			0, 0, n,
			n, 0, 0,
			0, 1, 0,
		})
	} else {
		q := math.Sqrt(l*l + m*m)
		t2 = mat.NewDense(3, 3, []float64{
			l, m, n,
			-m / q, l / q, 0,
			-l * n / q, -m * n / q, q,
		})
	}
	o.T3 = mat.NewDense(3, 3, nil)
	o.T3.Mul(t1, t2)

	// full matrix
	o.T = mat.NewDense(12, 12, nil)
	for k := 0; k < 4; k++ {
		o.T.Slice(3*k, 3*k+3, 3*k, 3*k+3).(*mat.Dense).Copy(o.T3)
	}
	return
}

// Axis returns local axis i ∈ {0,1,2} in global components
func (o *Transform) Axis(i int) r3.Vec {
	return r3.Vec{X: o.T3.At(i, 0), Y: o.T3.At(i, 1), Z: o.T3.At(i, 2)}
}

// ToWorld rotates a local 3-vector to global axes: T3ᵀ·v
func (o *Transform) ToWorld(v []float64) []float64 {
	var res mat.VecDense
	res.MulVec(o.T3.T(), mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return res.RawVector().Data
}

// ToMember rotates a global 3-vector to local axes: T3·v
func (o *Transform) ToMember(v []float64) []float64 {
	var res mat.VecDense
	res.MulVec(o.T3, mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return res.RawVector().Data
}

// Local converts a [12] vector from global to local axes: T·v
func (o *Transform) Local(v []float64) []float64 {
	var res mat.VecDense
	res.MulVec(o.T, mat.NewVecDense(12, append([]float64{}, v...)))
	return res.RawVector().Data
}

// Global converts a [12] vector from local to global axes: Tᵀ·v
func (o *Transform) Global(v []float64) []float64 {
	var res mat.VecDense
	res.MulVec(o.T.T(), mat.NewVecDense(12, append([]float64{}, v...)))
	return res.RawVector().Data
}

// components of local end forces flipped to follow the structural sign convention
//  fxi, mxi, mzi, fyj, fzj, myj
var secFlip = []int{0, 3, 5, 7, 8, 10}

// toSection converts global end forces of a segment into local section forces
func (o *Transform) toSection(fseg []float64) (fsec []float64) {
	fsec = o.Local(fseg)
	for _, i := range secFlip {
		fsec[i] = -fsec[i]
	}
	return
}
