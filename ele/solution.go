// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//        / u \
//  y  =  |   |   with  u = {ux, uy, uz}  and  r = {rx, ry, rz}  per node
//        \ r / (ny x 1)
//
type Solution struct {
	Y []float64 // DOFs (solution variables)
}

// NewSolution allocates a zeroed solution
func NewSolution(ny int) *Solution {
	return &Solution{Y: make([]float64, ny)}
}

// Reset clear values
func (o *Solution) Reset() {
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
	}
}

// Gather collects the values at the given equations
func (o *Solution) Gather(eqs []int) (v []float64) {
	v = make([]float64, len(eqs))
	for i, eq := range eqs {
		v[i] = o.Y[eq]
	}
	return
}
