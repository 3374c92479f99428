// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/inp"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "ux"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof   // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof and respective equation number; returns the next equation number.
// Dofs that exist already are not added again.
func (o *Node) AddDofAndEq(ukey string, eqNumber int) (nextEqNumber int) {
	for _, d := range o.Dofs {
		if d.Key == ukey {
			return eqNumber
		}
	}
	o.Dofs = append(o.Dofs, &Dof{ukey, eqNumber})
	return eqNumber + 1
}

// GetDof returns the Dof structure for given Dof name (ukey)
//  Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == ukey {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (ukey)
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) (eqNumber int) {
	if d := o.GetDof(ukey); d != nil {
		return d.Eq
	}
	return -1
}

// Eqs returns the equation numbers of all dofs
func (o *Node) Eqs() (eqs []int) {
	for _, d := range o.Dofs {
		eqs = append(eqs, d.Eq)
	}
	return
}

// String returns a string representation of this node
func (o *Node) String() (l string) {
	l = io.Sf("node %q:", o.Vert.Id)
	for _, d := range o.Dofs {
		l += io.Sf(" %s=%d", d.Key, d.Eq)
	}
	return
}
