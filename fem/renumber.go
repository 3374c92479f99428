// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/gofrm/gofrm/inp"

// Numbering holds the order of vertices used to number equations
type Numbering struct {
	Order  []int // vertex indices in equation order
	Pos    []int // [nverts] position of each vertex in Order
	Passes int   // number of passes taken
	Capped bool  // the limit of passes was reached before a pass without swaps
}

// Renumber orders the vertices such that the start vertex of each bar comes before its end
// vertex. It starts from the arena order and swaps the positions of both end vertices of each
// offending bar, in full passes over all bars, until a pass makes no swap.
//  Note: cyclic orientations have no such order; passes are limited to nbars+1
func Renumber(msh *inp.Mesh) (o *Numbering) {
	nv := len(msh.Verts)
	o = &Numbering{Order: make([]int, nv), Pos: make([]int, nv)}
	for i := 0; i < nv; i++ {
		o.Order[i] = i
		o.Pos[i] = i
	}
	var bars []*inp.Cell
	for _, c := range msh.Cells {
		if c.IsBar() {
			bars = append(bars, c)
		}
	}
	for o.Passes < len(bars)+1 {
		o.Passes++
		swapped := false
		for _, c := range bars {
			a, b := c.Verts[0], c.Verts[1]
			if o.Pos[a] > o.Pos[b] {
				pa, pb := o.Pos[a], o.Pos[b]
				o.Order[pa], o.Order[pb] = b, a
				o.Pos[a], o.Pos[b] = pb, pa
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
	o.Capped = true
	return
}
