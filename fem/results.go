// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/ele"
	"gonum.org/v1/gonum/spatial/r3"
)

// Disp holds the displacements and rotations of a node
type Disp struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
	Dz float64 `json:"dz"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
}

// Reaction holds the support reactions of a node
type Reaction struct {
	Tx float64 `json:"tx"`
	Ty float64 `json:"ty"`
	Tz float64 `json:"tz"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}

// SecForces holds the end forces of a member, or of a shell edge, in local axes
type SecForces struct {
	Fxi float64 `json:"fxi"`
	Fyi float64 `json:"fyi"`
	Fzi float64 `json:"fzi"`
	Mxi float64 `json:"mxi"`
	Myi float64 `json:"myi"`
	Mzi float64 `json:"mzi"`
	Fxj float64 `json:"fxj"`
	Fyj float64 `json:"fyj"`
	Fzj float64 `json:"fzj"`
	Mxj float64 `json:"mxj"`
	Myj float64 `json:"myj"`
	Mzj float64 `json:"mzj"`
	L   float64 `json:"L,omitempty"` // length of the member
}

// Result holds the results of one load case
type Result struct {
	Disg      map[string]*Disp      `json:"disg"`       // original node id => displacements
	Reac      map[string]*Reaction  `json:"reac"`       // supported node id => reactions
	Fsec      map[string]*SecForces `json:"fsec"`       // original member id => section forces
	ShellFsec map[string]*SecForces `json:"shell_fsec"` // "IDi-IDj" => edge forces
	Size      int                   `json:"size"`       // number of nodes in the document
}

// Values returns the six components
func (o *Disp) Values() []float64 { return []float64{o.Dx, o.Dy, o.Dz, o.Rx, o.Ry, o.Rz} }

// Values returns the six components
func (o *Reaction) Values() []float64 { return []float64{o.Tx, o.Ty, o.Tz, o.Mx, o.My, o.Mz} }

// Values returns the twelve end forces
func (o *SecForces) Values() []float64 {
	return []float64{o.Fxi, o.Fyi, o.Fzi, o.Mxi, o.Myi, o.Mzi, o.Fxj, o.Fyj, o.Fzj, o.Mxj, o.Myj, o.Mzj}
}

// newSecForces returns section forces from twelve values
func newSecForces(f []float64, L float64) *SecForces {
	return &SecForces{f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7], f[8], f[9], f[10], f[11], L}
}

// Results computes displacements, reactions and section forces after Solve
func (o *Domain) Results() (res *Result, err error) {
	if o.Sol == nil {
		return nil, chk.Err("case %q has not been solved", o.Case.Id)
	}
	res = &Result{
		Disg:      make(map[string]*Disp),
		Reac:      make(map[string]*Reaction),
		Fsec:      make(map[string]*SecForces),
		ShellFsec: make(map[string]*SecForces),
		Size:      o.Nbase,
	}

	// displacements
	for vidx := 0; vidx < o.Nbase; vidx++ {
		u := o.Sol.Gather(o.Nodes[vidx].Eqs())
		res.Disg[o.Msh.Verts[vidx].Id] = &Disp{u[0], u[1], u[2], u[3], u[4], u[5]}
	}

	// reactions: loads minus element end forces at supported equations
	reac := make(map[int][]float64)
	for vidx, nod := range o.Nodes {
		for _, eq := range nod.Eqs() {
			if o.EssenBcs.IsSupported(eq) {
				reac[vidx] = make([]float64, 6)
				break
			}
		}
	}
	for _, e := range o.Elems {
		fseg := e.NodalForces(o.Sol)
		for m, v := range e.Verts() {
			r, ok := reac[v]
			if !ok {
				continue
			}
			for j, d := range o.Nodes[v].Dofs {
				if o.EssenBcs.IsSupported(d.Eq) {
					r[j] -= fseg[6*m+j]
				}
			}
		}
	}
	for _, l := range o.Case.LoadNode {
		r, ok := reac[l.Vert]
		if !ok {
			continue
		}
		for j, f := range l.Forces() {
			if o.EssenBcs.IsSupported(o.Nodes[l.Vert].Dofs[j].Eq) {
				r[j] += f
			}
		}
	}
	for vidx, r := range reac {
		res.Reac[o.Msh.Verts[vidx].Id] = &Reaction{r[0], r[1], r[2], r[3], r[4], r[5]}
	}

	// bar section forces: i end from the head and j end from the tail
	for cidx, cell := range o.Msh.Cells {
		if !cell.IsBar() || cell.Parent != cidx {
			continue
		}
		fi, err := o.secForces(cidx)
		if err != nil {
			return nil, err
		}
		fj, err := o.secForces(o.Msh.Tail(cidx))
		if err != nil {
			return nil, err
		}
		f := append(fi[:6:6], fj[6:]...)
		a, b := o.Msh.Verts[cell.Verts[0]].X, o.Msh.Verts[cell.EndVert].X
		res.Fsec[cell.Id] = newSecForces(f, r3.Norm(r3.Sub(vec(b), vec(a))))
	}

	// shell edge forces, summed over shells sharing an edge
	for cidx, cell := range o.Msh.Cells {
		if cell.IsBar() {
			continue
		}
		e, ok := o.Cid2elem[cidx].(ele.CanOutputSecForces)
		if !ok {
			continue
		}
		for _, sf := range e.SecForces(o.Sol) {
			sum, ok := res.ShellFsec[sf.Key]
			if !ok {
				sum = new(SecForces)
				res.ShellFsec[sf.Key] = sum
			}
			sum.add(sf.F)
		}
	}
	return
}

// secForces returns the twelve section forces of bar cidx
func (o *Domain) secForces(cidx int) ([]float64, error) {
	e, ok := o.Cid2elem[cidx].(ele.CanOutputSecForces)
	if !ok {
		return nil, chk.Err("cell %q cannot output section forces", o.Msh.Cells[cidx].Id)
	}
	return e.SecForces(o.Sol)[0].F, nil
}

// add adds twelve values
func (o *SecForces) add(f []float64) {
	o.Fxi += f[0]
	o.Fyi += f[1]
	o.Fzi += f[2]
	o.Mxi += f[3]
	o.Myi += f[4]
	o.Mzi += f[5]
	o.Fxj += f[6]
	o.Fyj += f[7]
	o.Fzj += f[8]
	o.Mxj += f[9]
	o.Myj += f[10]
	o.Mzj += f[11]
}
