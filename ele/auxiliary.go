// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"
	"github.com/gofrm/gofrm/inp"
)

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
//  x -- [3][nverts]
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(3, len(cell.Verts))
	for i := 0; i < 3; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].X[i]
		}
	}
	return
}

// VertIds returns the ids of the vertices of a particular Cell
func VertIds(cell *inp.Cell, msh *inp.Mesh) (ids []string) {
	ids = make([]string, len(cell.Verts))
	for j, v := range cell.Verts {
		ids[j] = msh.Verts[v].Id
	}
	return
}
