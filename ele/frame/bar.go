// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/ele"
	"github.com/gofrm/gofrm/inp"
	"github.com/gofrm/gofrm/linsol"
	"github.com/gofrm/gofrm/mdl/solid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bar represents a 3D frame member (Euler-Bernoulli, linear elastic) with optional elastic
// foundation springs and end releases
//
//               y (local)
//               ^
//               |   wy          Props:            Nodes:
//       ri    __|_______   rj    E, G, A, J        i and j
//      (i)----------------(j) ---> x (local)       Iy, Iz, Xp
//             /                  springs:
//            z (local)           tx, ty, tz, tr
//
//  The local y-z axes are rotated about x by the chord angle.
//  Released rotations are condensed out in local axes.
type Bar struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [3][2]

	// parameters and properties
	Mdl *solid.FrameElast // material model
	Sec Section           // rigidities, springs and true length
	Tr  *Transform        // global to local transformation

	// vectors and matrices
	Kl  *mat.Dense // [12][12] condensed stiffness in local axes
	K   *mat.Dense // [12][12] stiffness in global axes
	Wl  []float64  // [12] condensed equivalent loads of distributed loads in local axes
	Tl  []float64  // [12] equivalent loads of temperature change in local axes
	Wfe []float64  // [12] Wl in global axes
	Tfe []float64  // [12] Tl in global axes

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc(inp.TypeBar, func(cell *inp.Cell) *ele.Info {
		return ele.NewFrameInfo(2)
	})

	// element allocator
	ele.SetAllocator(inp.TypeBar, func(cell *inp.Cell, msh *inp.Mesh, props *ele.Props) (ele.Element, error) {

		// basic data
		var o Bar
		o.Cell = cell
		o.X = ele.BuildCoordsMatrix(cell, msh)
		if len(cell.Verts) != 2 {
			return nil, chk.Err("bar %q must have 2 nodes; got %d", cell.Id, len(cell.Verts))
		}

		// transformation
		o.Tr = NewTransform(o.vertex(0), o.vertex(1), cell.Angle)
		if o.Tr == nil {
			return nil, inp.NewInvariantViolation(cell.Id, "bar has zero length")
		}

		// model
		mdl, err := solid.New("frame-elast")
		if err != nil {
			return nil, err
		}
		if err = mdl.Init(props.Mat); err != nil {
			return nil, err
		}
		o.Mdl = mdl.(*solid.FrameElast)

		// section
		o.Sec = Section{L: o.Tr.L, EA: o.Mdl.EA(), GJ: o.Mdl.GJ(), EIy: o.Mdl.EIy(), EIz: o.Mdl.EIz()}
		if s := props.Spring; s != nil {
			if s.Tx < 0 || s.Ty < 0 || s.Tz < 0 || s.Tr < 0 {
				return nil, chk.Err("springs of bar %q must not be negative; got tx=%g ty=%g tz=%g tr=%g", cell.Id, s.Tx, s.Ty, s.Tz, s.Tr)
			}
			o.Sec.Tx, o.Sec.Ty, o.Sec.Tz, o.Sec.Tr = s.Tx, s.Ty, s.Tz, s.Tr
		}

		// loads
		var w Wload
		if err = w.collect(cell.Id, o.Tr, props.Loads); err != nil {
			return nil, err
		}

		// local stiffness and loads, condensed at released ends
		o.Kl = o.Sec.LocalK()
		o.Wl = o.Sec.EquivLoads(&w)
		ele.Condense(o.Kl, o.Wl, Released(cell.Releases))
		o.Tl = ThermalLoads(o.Mdl.E, o.Mdl.A, o.Mdl.Xp, w.Temp)

		// global axes
		o.K = mat.NewDense(12, 12, nil)
		o.K.Product(o.Tr.T.T(), o.Kl, o.Tr.T)
		o.Wfe = o.Tr.Global(o.Wl)
		o.Tfe = o.Tr.Global(o.Tl)

		// return new element
		return &o, nil
	})
}

// Released returns the local DOFs of the rotations released by flags xi,yi,zi,xj,yj,zj
func Released(flags [6]int) (S []int) {
	dofs := [6]int{3, 4, 5, 9, 10, 11}
	for k, f := range flags {
		if f == 0 {
			S = append(S, dofs[k])
		}
	}
	return
}

// Id returns the cell Id
func (o *Bar) Id() string { return o.Cell.Id }

// Verts returns the vertices of the cell
func (o *Bar) Verts() []int { return o.Cell.Verts }

// SetEqs set equations [2][6]. Format of eqs == format of info.Dofs
func (o *Bar) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != 2 {
		return chk.Err("bar %q requires equations for 2 nodes; got %d", o.Cell.Id, len(eqs))
	}
	o.Umap = make([]int, 0, 12)
	for m := 0; m < 2; m++ {
		if len(eqs[m]) != 6 {
			return chk.Err("bar %q requires 6 equations per node; got %d", o.Cell.Id, len(eqs[m]))
		}
		o.Umap = append(o.Umap, eqs[m]...)
	}
	return
}

// AddToRhs adds the equivalent loads of distributed loads and temperature change to fb
func (o *Bar) AddToRhs(fb []float64) {
	for i, I := range o.Umap {
		fb[I] += o.Wfe[i] + o.Tfe[i]
	}
}

// AddToKb adds the global stiffness matrix to Kb
func (o *Bar) AddToKb(Kb *linsol.Matrix) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			if v := o.K.At(i, j); v != 0 {
				Kb.Add(I, J, v)
			}
		}
	}
}

// NodalForces computes the end forces in global axes: fseg = K·d - wfe - tfe
func (o *Bar) NodalForces(sol *ele.Solution) (fseg []float64) {
	var f mat.VecDense
	f.MulVec(o.K, mat.NewVecDense(12, sol.Gather(o.Umap)))
	fseg = f.RawVector().Data
	for i := range fseg {
		fseg[i] -= o.Wfe[i] + o.Tfe[i]
	}
	return
}

// SecForces computes the section forces at both ends in local axes
func (o *Bar) SecForces(sol *ele.Solution) []*ele.SecForce {
	return []*ele.SecForce{{Key: o.Cell.Id, F: o.Tr.toSection(o.NodalForces(sol))}}
}

// vertex returns the coordinates of vertex m
func (o *Bar) vertex(m int) r3.Vec {
	return r3.Vec{X: o.X[0][m], Y: o.X[1][m], Z: o.X[2][m]}
}
