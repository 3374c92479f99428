// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import "github.com/gofrm/gofrm/linsol"

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() string                // returns the cell Id
	Verts() []int              // returns the vertices of the cell
	SetEqs(eqs [][]int) error  // set equations
	AddToRhs(fb []float64)     // adds equivalent nodal loads (global axes) to fb
	AddToKb(Kb *linsol.Matrix) // adds element K (global axes) to global matrix Kb

	// post-processing
	NodalForces(sol *Solution) []float64 // end forces in global axes; [nverts*6]
}

// CanOutputSecForces defines elements that compute section forces in local axes
type CanOutputSecForces interface {
	SecForces(sol *Solution) []*SecForce
}

// SecForce holds the end forces of a bar, or of the virtual bar along a shell edge, in local axes
//  F = {fxi, fyi, fzi, mxi, myi, mzi, fxj, fyj, fzj, mxj, myj, mzj}
type SecForce struct {
	Key string    // cell id or "IDi-IDj" for shell edges
	F   []float64 // [12]
}
