// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/ele"
	"github.com/gofrm/gofrm/inp"
	"github.com/gofrm/gofrm/linsol"
	"gonum.org/v1/gonum/floats"
)

// Domain holds all data of one load case: its own copy of the arena, resolved sets, nodes,
// elements and the global system
type Domain struct {

	// case data
	Key      string                       // model key
	Case     *inp.LoadCase                // load case; loads are split together with bars
	Msh      *inp.Mesh                    // copy of the preprocessed arena
	Mats     map[string]*inp.MaterialData // material set
	Supports []*inp.SupportData           // support set
	Springs  []*inp.SpringData            // spring set
	Joints   []*inp.JointData             // joint set
	Nbase    int                          // number of nodes in the document
	LinSol   string                       // linear solver name
	ShowMsg  bool                         // show messages

	// nodes and elements
	Num      *Numbering          // vertex order
	Nodes    []*Node             // [nverts] all nodes
	Elems    []ele.Element       // [ncells] all elements
	Cid2elem map[int]ele.Element // cell index => element

	// system
	EssenBcs EssentialBcs   // supports and prescribed displacements
	Ny       int            // number of equations
	Kb       *linsol.Matrix // global stiffness
	Fb       []float64      // global loads
	Sol      *ele.Solution  // displacements
}

// NewDomain builds the domain of load case caseId from a preprocessed base model. An empty
// solver name selects the model's choice.
func NewDomain(base *inp.Model, caseId, solver string, verbose bool) (o *Domain, err error) {

	// case
	lc, ok := base.Cases[caseId]
	if !ok {
		return nil, chk.Err("cannot find load case %q", caseId)
	}
	o = new(Domain)
	o.Key = base.Key
	o.Case = cloneCase(lc)
	o.Msh = base.Msh.Clone()
	o.Nbase = base.Msh.Nbase
	o.LinSol = solver
	if o.LinSol == "" {
		o.LinSol = base.LinSol.Name
	}
	o.ShowMsg = verbose

	// sets and joints
	if err = o.resolveSets(base); err != nil {
		return nil, err
	}
	o.applyJoints()

	// split at load boundaries
	if err = o.splitAtLoads(); err != nil {
		return nil, err
	}

	// nodes and elements
	if err = o.setNodesAndElems(); err != nil {
		return nil, err
	}

	// boundary conditions
	o.setEssenBcs()
	if o.ShowMsg {
		io.Pf(">> Case %q: number of segments = %d\n", caseId, len(o.Msh.Cells))
		io.Pf(">> Case %q: number of equations = %d\n", caseId, o.Ny)
	}
	return
}

// setNodesAndElems numbers equations and allocates elements
func (o *Domain) setNodesAndElems() (err error) {

	// nodes: six equations per vertex, in renumbered order
	o.Num = Renumber(o.Msh)
	if o.Num.Capped {
		io.Pfyel("warning: case %q: bar orientations are cyclic; vertex order kept after %d passes\n", o.Case.Id, o.Num.Passes)
	}
	o.Nodes = make([]*Node, len(o.Msh.Verts))
	o.Ny = 0
	for vidx, v := range o.Msh.Verts {
		o.Nodes[vidx] = NewNode(v)
		eq := len(ele.FrameDofs) * o.Num.Pos[vidx]
		for _, key := range ele.FrameDofs {
			eq = o.Nodes[vidx].AddDofAndEq(key, eq)
		}
		if eq > o.Ny {
			o.Ny = eq
		}
	}

	// springs by cell id
	springs := make(map[string]*inp.SpringData)
	for _, s := range o.Springs {
		sum, ok := springs[string(s.M)]
		if !ok {
			sum = &inp.SpringData{M: s.M}
			springs[string(s.M)] = sum
		}
		sum.Tx += s.Tx
		sum.Ty += s.Ty
		sum.Tz += s.Tz
		sum.Tr += s.Tr
	}

	// loads by cell index
	loads := make(map[int][]*inp.MemberLoad)
	for _, l := range o.Case.LoadMember {
		loads[l.Cell] = append(loads[l.Cell], l)
	}

	// elements
	o.Elems = make([]ele.Element, 0, len(o.Msh.Cells))
	o.Cid2elem = make(map[int]ele.Element)
	for cidx, cell := range o.Msh.Cells {

		// material
		kind := "member"
		if !cell.IsBar() {
			kind = "shell"
		}
		mat, ok := o.Mats[cell.Mat]
		if !ok {
			return inp.NewValidationError(kind, o.Msh.Cells[cell.Parent].Id, "material %q in set %q", cell.Mat, o.Case.Element)
		}

		// element
		info, err := ele.GetInfo(cell)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}
		e, err := ele.New(cell, o.Msh, &ele.Props{Mat: mat, Spring: springs[cell.Id], Loads: loads[cidx]})
		if err != nil {
			return err
		}

		// equations
		eqs := make([][]int, len(cell.Verts))
		for m, v := range cell.Verts {
			for _, key := range info.Dofs[m] {
				eqs[m] = append(eqs[m], o.Nodes[v].GetEq(key))
			}
		}
		if err = e.SetEqs(eqs); err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}
		o.Elems = append(o.Elems, e)
		o.Cid2elem[cidx] = e
	}
	return
}

// setEssenBcs registers supports and prescribed displacements
func (o *Domain) setEssenBcs() {
	o.EssenBcs.Init()
	for _, s := range o.Supports {
		nod := o.Nodes[o.Msh.Vid[string(s.N)]]
		for j, flag := range s.Flags() {
			o.EssenBcs.SetSupport(nod.Dofs[j].Eq, flag)
		}
	}
	for _, l := range o.Case.LoadNode {
		nod := o.Nodes[l.Vert]
		for j, d := range l.Disps() {
			if d != 0 {
				o.EssenBcs.SetPrescribed(nod.Dofs[j].Eq, d)
			}
		}
	}
}

// Assemble assembles the global stiffness and loads and applies boundary conditions
func (o *Domain) Assemble() {
	o.Kb = linsol.NewMatrix(o.Ny)
	o.Fb = make([]float64, o.Ny)
	for _, e := range o.Elems {
		e.AddToKb(o.Kb)
		e.AddToRhs(o.Fb)
	}
	for _, l := range o.Case.LoadNode {
		nod := o.Nodes[l.Vert]
		for j, f := range l.Forces() {
			o.Fb[nod.Dofs[j].Eq] += f
		}
	}
	o.EssenBcs.Apply(o.Kb, o.Fb)
	if o.ShowMsg && len(o.EssenBcs.Guarded) > 0 {
		io.Pforan(">> Case %q: %d equations with zero stiffness were fixed\n", o.Case.Id, len(o.EssenBcs.Guarded))
	}
}

// Solve assembles and solves the global system
func (o *Domain) Solve() (err error) {
	o.Assemble()
	solver, err := linsol.GetSolver(o.LinSol)
	if err != nil {
		return err
	}
	y, err := solver.Solve(o.Kb, o.Fb)
	if err != nil {
		return &inp.NumericalError{Case: o.Case.Id, Msg: err.Error()}
	}
	if floats.HasNaN(y) {
		return &inp.NumericalError{Case: o.Case.Id, Msg: "solution has NaN entries"}
	}
	o.Sol = &ele.Solution{Y: y}
	if o.ShowMsg {
		io.Pf(">> Case %q: solved with %q; half-bandwidth = %d; max |y| = %g\n", o.Case.Id, o.LinSol, o.Kb.Bandwidth(), floats.Norm(y, math.Inf(1)))
	}
	return
}

// cloneCase returns a deep copy of a load case
func cloneCase(lc *inp.LoadCase) *inp.LoadCase {
	c := *lc
	c.LoadNode = make([]*inp.NodalLoad, len(lc.LoadNode))
	for i, l := range lc.LoadNode {
		n := *l
		c.LoadNode[i] = &n
	}
	c.LoadMember = make([]*inp.MemberLoad, len(lc.LoadMember))
	for i, l := range lc.LoadMember {
		c.LoadMember[i] = l.Clone()
	}
	c.Named = make(map[string]bool, len(lc.Named))
	for k, v := range lc.Named {
		c.Named[k] = v
	}
	return &c
}
