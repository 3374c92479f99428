// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/ele"
	"github.com/gofrm/gofrm/inp"
	"github.com/gofrm/gofrm/linsol"
	"github.com/gofrm/gofrm/mdl/solid"
	"github.com/gofrm/gofrm/shp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shell represents a flat four-node shell (Mindlin type) with six DOFs per node
//
//   3-----------2       v3 = normal
//   |           |       v2 = unit(v3 × (p1 - p0))
//   |           |       v1 = v2 × v3
//   |           |
//   0-----------1       Props: E, G, A (thickness)
//
//  The drilling rotation is stabilised by a small penalty on the rotation about the normal.
type Shell struct {

	// basic data
	Cell *inp.Cell // the cell structure
	Ids  []string  // ids of vertices
	P    []r3.Vec  // [4] nodal coordinates

	// parameters and properties
	Mdl *solid.ShellElast // material model

	// geometry
	Shp   *shp.Shape   // shape structure
	Ipts  []*shp.Ipoint // integration points
	N     r3.Vec       // unit normal
	Dir   *mat.Dense   // [3][3] columns are v1, v2, v3
	Edges []*Transform // [4] virtual bars along edges (previous node → node)

	// vectors and matrices
	K *mat.Dense // [24][24] stiffness in global axes

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc(inp.TypeShell, func(cell *inp.Cell) *ele.Info {
		return ele.NewFrameInfo(4)
	})

	// element allocator
	ele.SetAllocator(inp.TypeShell, func(cell *inp.Cell, msh *inp.Mesh, props *ele.Props) (ele.Element, error) {

		// basic data
		var o Shell
		o.Cell = cell
		if len(cell.Verts) != 4 {
			return nil, chk.Err("shell %q must have 4 nodes; got %d", cell.Id, len(cell.Verts))
		}
		o.Ids = ele.VertIds(cell, msh)
		x := ele.BuildCoordsMatrix(cell, msh)
		o.P = make([]r3.Vec, 4)
		for m := 0; m < 4; m++ {
			o.P[m] = r3.Vec{X: x[0][m], Y: x[1][m], Z: x[2][m]}
		}

		// model
		mdl, err := solid.New("shell-elast")
		if err != nil {
			return nil, err
		}
		if err = mdl.Init(props.Mat); err != nil {
			return nil, inp.NewInvariantViolation(cell.Id, "%v", err)
		}
		o.Mdl = mdl.(*solid.ShellElast)

		// geometry
		if err = o.directions(); err != nil {
			return nil, err
		}
		o.Shp, err = shp.Get("qua4")
		if err != nil {
			return nil, err
		}
		o.Ipts = shp.GaussLegendre(2)

		// stiffness
		o.K = mat.NewDense(24, 24, nil)
		for _, ip := range o.Ipts {
			if err = o.addToK(ip.R, ip.S); err != nil {
				return nil, err
			}
		}

		// return new element
		return &o, nil
	})
}

// Id returns the cell Id
func (o *Shell) Id() string { return o.Cell.Id }

// Verts returns the vertices of the cell
func (o *Shell) Verts() []int { return o.Cell.Verts }

// SetEqs set equations [4][6]. Format of eqs == format of info.Dofs
func (o *Shell) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != 4 {
		return chk.Err("shell %q requires equations for 4 nodes; got %d", o.Cell.Id, len(eqs))
	}
	o.Umap = make([]int, 0, 24)
	for m := 0; m < 4; m++ {
		if len(eqs[m]) != 6 {
			return chk.Err("shell %q requires 6 equations per node; got %d", o.Cell.Id, len(eqs[m]))
		}
		o.Umap = append(o.Umap, eqs[m]...)
	}
	return
}

// AddToRhs does nothing: shells carry no element loads
func (o *Shell) AddToRhs(fb []float64) {}

// AddToKb adds the global stiffness matrix to Kb
func (o *Shell) AddToKb(Kb *linsol.Matrix) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			if v := o.K.At(i, j); v != 0 {
				Kb.Add(I, J, v)
			}
		}
	}
}

// NodalForces computes the nodal forces in global axes: fseg = K·d
func (o *Shell) NodalForces(sol *ele.Solution) []float64 {
	var f mat.VecDense
	f.MulVec(o.K, mat.NewVecDense(24, sol.Gather(o.Umap)))
	return f.RawVector().Data
}

// SecForces computes the end forces of the virtual bars along the edges, in local axes
func (o *Shell) SecForces(sol *ele.Solution) (res []*ele.SecForce) {
	fseg := o.NodalForces(sol)
	for k, tr := range o.Edges {
		a, b := (k+3)%4, k
		f := make([]float64, 0, 12)
		f = append(f, fseg[6*a:6*a+6]...)
		f = append(f, fseg[6*b:6*b+6]...)
		res = append(res, &ele.SecForce{Key: o.Ids[a] + "-" + o.Ids[b], F: tr.toSection(f)})
	}
	return
}

// directions computes the normal, the direction matrix and the edge transformations
func (o *Shell) directions() error {
	c := r3.Cross(r3.Sub(o.P[2], o.P[0]), r3.Sub(o.P[3], o.P[1]))
	if r3.Norm(c) == 0 {
		return inp.NewInvariantViolation(o.Cell.Id, "shell has zero area")
	}
	v3 := r3.Unit(c)
	v2 := r3.Cross(v3, r3.Sub(o.P[1], o.P[0]))
	if r3.Norm(v2) == 0 {
		return inp.NewInvariantViolation(o.Cell.Id, "first edge of shell has zero length")
	}
	v2 = r3.Unit(v2)
	v1 := r3.Cross(v2, v3)
	o.N = v3
	o.Dir = mat.NewDense(3, 3, []float64{
		v1.X, v2.X, v3.X,
		v1.Y, v2.Y, v3.Y,
		v1.Z, v2.Z, v3.Z,
	})

	// edges; local z as close as possible to the normal
	o.Edges = make([]*Transform, 4)
	for k := 0; k < 4; k++ {
		a, b := (k+3)%4, k
		tr := NewTransform(o.P[a], o.P[b], 0)
		if tr == nil {
			return inp.NewInvariantViolation(o.Cell.Id, "edge %s-%s has zero length", o.Ids[a], o.Ids[b])
		}
		θ := math.Atan2(-r3.Dot(o.N, tr.Axis(1)), r3.Dot(o.N, tr.Axis(2))) * 180.0 / math.Pi
		if θ != 0 {
			tr = NewTransform(o.P[a], o.P[b], θ)
		}
		o.Edges[k] = tr
	}
	return nil
}

// strains computes the Jacobian and the strain-displacement coefficients at (r,s)
//  B -- [4][4] for each node: derivatives along v1, v2, v3 and the thickness term
func (o *Shell) strains(r, s float64) (jac *mat.Dense, B [][]float64, err error) {

	// Jacobian; third column spans the thickness
	o.Shp.CalcAtR([]float64{r, s})
	t := o.Mdl.Thick
	jac = mat.NewDense(3, 3, nil)
	for m, p := range o.P {
		x := []float64{p.X, p.Y, p.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				jac.Set(i, j, jac.At(i, j)+o.Shp.DSdR[m][j]*x[i])
			}
		}
	}
	jac.Set(0, 2, 0.5*t*o.N.X)
	jac.Set(1, 2, 0.5*t*o.N.Y)
	jac.Set(2, 2, 0.5*t*o.N.Z)

	// inverse in the direction frame
	var jd, ji mat.Dense
	jd.Mul(jac.T(), o.Dir)
	jd.Set(2, 0, 0)
	jd.Set(2, 1, 0)
	if err = ji.Inverse(&jd); err != nil {
		return nil, nil, inp.NewInvariantViolation(o.Cell.Id, "shell has a degenerate geometry: %v", err)
	}

	// coefficients
	B = make([][]float64, 4)
	for m := 0; m < 4; m++ {
		B[m] = make([]float64, 4)
		for j := 0; j < 3; j++ {
			B[m][j] = ji.At(0, j)*o.Shp.DSdR[m][0] + ji.At(1, j)*o.Shp.DSdR[m][1]
		}
		B[m][3] = ji.At(2, 2) * o.Shp.S[m]
	}
	return
}

// addToK adds the contribution of the integration point at (ξ,η) to K. Transverse shear terms
// are sampled at (ξ,0) and (0,η).
func (o *Shell) addToK(ξ, η float64) (err error) {

	// strains
	jac, b0, err := o.strains(ξ, η)
	if err != nil {
		return
	}
	var bc [2][][]float64
	if _, bc[0], err = o.strains(ξ, 0); err != nil {
		return
	}
	if _, bc[1], err = o.strains(0, η); err != nil {
		return
	}

	// constants
	D := o.Mdl.D
	t := o.Mdl.Thick
	detJ := math.Abs(mat.Det(jac))
	tt6 := t * t / 6.0
	ce1 := 1e-3 * t * t * D[3][3]
	ce2 := -ce1 / 3.0

	// blocks for each pair of nodes
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var k1, k2, k3, k4 [3][3]float64
			for j1 := 0; j1 < 2; j1++ {
				for j2 := 0; j2 < 2; j2++ {
					k1[j1][j2] = b0[i][j1]*D[j1][j2]*b0[j][j2] + b0[i][1-j1]*D[2][2]*b0[j][1-j2]
				}
				dd := D[4-j1][4-j1]
				bi, bj := bc[1-j1][i], bc[1-j1][j]
				k1[j1][j1] += bi[2] * dd * bj[2]
				k1[j1][2] = bi[2] * dd * bc[j1][j][j1]
				k1[2][j1] = bc[j1][i][j1] * dd * bj[2]
				k2[j1][j1] = bi[2] * dd * bj[3]
				k2[2][j1] = bi[j1] * dd * bj[3]
				k3[j1][j1] = bi[3] * dd * bj[2]
				k3[j1][2] = bi[3] * dd * bj[j1]
			}
			k1[2][2] = bc[0][i][1]*D[3][3]*bc[0][j][1] + bc[1][i][0]*D[4][4]*bc[1][j][0]
			k4[0][0] = k1[1][1] + 3*bc[0][i][3]*D[3][3]*bc[0][j][3]
			k4[0][1] = -k1[1][0]
			k4[1][0] = -k1[0][1]
			k4[1][1] = k1[0][0] + 3*bc[1][i][3]*D[4][4]*bc[1][j][3]
			for j1 := 0; j1 < 3; j1++ {
				k2[j1][0], k2[j1][1] = -k2[j1][1], k2[j1][0]
				k3[0][j1], k3[1][j1] = -k3[1][j1], k3[0][j1]
			}
			if i == j {
				k4[2][2] = ce1
			} else {
				k4[2][2] = ce2
			}

			// rotate to global axes and scatter
			m1, m2, m3, m4 := o.toDir(&k1), o.toDir(&k2), o.toDir(&k3), o.toDir(&k4)
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					o.addK(6*i+a, 6*j+b, 2*detJ*m1.At(a, b))
					o.addK(6*i+a, 6*j+3+b, t*detJ*m2.At(a, b))
					o.addK(6*i+3+a, 6*j+b, t*detJ*m3.At(a, b))
					o.addK(6*i+3+a, 6*j+3+b, tt6*detJ*m4.At(a, b))
				}
			}
		}
	}
	return
}

// toDir computes d·k·dᵀ
func (o *Shell) toDir(k *[3][3]float64) *mat.Dense {
	var res mat.Dense
	res.Product(o.Dir, mat.NewDense(3, 3, []float64{
		k[0][0], k[0][1], k[0][2],
		k[1][0], k[1][1], k[1][2],
		k[2][0], k[2][1], k[2][2],
	}), o.Dir.T())
	return &res
}

func (o *Shell) addK(i, j int, v float64) {
	o.K.Set(i, j, o.K.At(i, j)+v)
}
