// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PIVMIN is the smallest pivot, relative to the largest diagonal, taken as nonzero by Condense
const PIVMIN = 1e-13

// Condense removes the DOFs in S from K (and f) by static condensation (Schur complement):
//
//   K ← K_rr - K_rs · K_ss⁻¹ · K_sr      f ← f_r - K_rs · K_ss⁻¹ · f_s
//
// The rows and columns in S are zeroed afterwards. Indices are eliminated one at a time; an
// index whose pivot has already vanished carries no stiffness and is simply zeroed.
//  f -- may be nil
func Condense(K *mat.Dense, f []float64, S []int) {
	if len(S) == 0 {
		return
	}
	n, _ := K.Dims()
	dmax := 0.0
	for i := 0; i < n; i++ {
		dmax = math.Max(dmax, math.Abs(K.At(i, i)))
	}
	col := make([]float64, n)
	row := make([]float64, n)
	for _, s := range S {
		piv := K.At(s, s)
		if math.Abs(piv) > PIVMIN*dmax {
			mat.Col(col, s, K)
			mat.Row(row, s, K)
			if f != nil {
				floats.AddScaled(f, -f[s]/piv, col)
			}
			K.RankOne(K, -1/piv, mat.NewVecDense(n, col), mat.NewVecDense(n, row))
		}
		for i := 0; i < n; i++ {
			K.Set(s, i, 0)
			K.Set(i, s, 0)
		}
		if f != nil {
			f[s] = 0
		}
	}
}
