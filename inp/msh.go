// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cell types
const (
	TypeBar   = "bar"
	TypeShell = "shell"
)

// Vert holds vertex data
type Vert struct {
	Id string    // identifier; e.g. "3" or "3n1" for nodes created by subdivision
	X  []float64 // coordinates (size==3)
}

// Cell holds cell data. Bars and shells share the arena but not the id namespace.
type Cell struct {
	Id       string  // identifier
	Type     string  // "bar" or "shell"
	Verts    []int   // vertices
	Mat      string  // material id within the case's material set
	Angle    float64 // chord angle [degrees]; bars only
	Releases [6]int  // xi,yi,zi,xj,yj,zj: 1 => rigid, 0 => released; bars only
	L        int     // length × 1000; bars only

	// lineage
	Parent   int   // index of original cell; itself for cells in the document
	Children []int // segments created by subdivision; original cells only
	EndVert  int   // original j-end vertex of the lineage
}

// IsBar tells whether this cell is a bar
func (o *Cell) IsBar() bool { return o.Type == TypeBar }

// Mesh is the arena holding vertices and cells
//  Note: splitting appends to the arena and never reorders it
type Mesh struct {
	Verts []*Vert        // vertices
	Cells []*Cell        // bars followed by shells, then segments
	Vid   map[string]int // vertex id => index
	Bid   map[string]int // bar id => index
	Sid   map[string]int // shell id => index
	Nbase int            // number of vertices given in the document
}

// NewMesh allocates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{Vid: make(map[string]int), Bid: make(map[string]int), Sid: make(map[string]int)}
}

// AddVert appends a vertex and returns its index
func (o *Mesh) AddVert(id string, x []float64) (idx int, err error) {
	if _, ok := o.Vid[id]; ok {
		return 0, chk.Err("vertex %q is duplicated", id)
	}
	idx = len(o.Verts)
	o.Verts = append(o.Verts, &Vert{Id: id, X: []float64{x[0], x[1], x[2]}})
	o.Vid[id] = idx
	return
}

// AddCell appends a cell and returns its index. Parent is set to the new index when negative.
func (o *Mesh) AddCell(c *Cell) (idx int, err error) {
	ids := o.Bid
	if c.Type == TypeShell {
		ids = o.Sid
	}
	if _, ok := ids[c.Id]; ok {
		return 0, chk.Err("%s %q is duplicated", c.Type, c.Id)
	}
	idx = len(o.Cells)
	if c.Parent < 0 {
		c.Parent = idx
	}
	o.Cells = append(o.Cells, c)
	ids[c.Id] = idx
	return
}

// Dist returns the distance between the end vertices of a bar
func (o *Mesh) Dist(cidx int) float64 {
	c := o.Cells[cidx]
	a, b := o.Verts[c.Verts[0]].X, o.Verts[c.Verts[1]].X
	return math.Sqrt((b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1]) + (b[2]-a[2])*(b[2]-a[2]))
}

// Scaled converts metres to the integer length unit
func Scaled(x float64) int {
	return int(math.Round(x * 1000))
}

// Tail returns the segment of an original bar that ends at the original j-end vertex
func (o *Mesh) Tail(cidx int) int {
	c := o.Cells[cidx]
	if c.Verts[1] == c.EndVert {
		return cidx
	}
	for _, k := range c.Children {
		if o.Cells[k].Verts[1] == c.EndVert {
			return k
		}
	}
	chk.Panic("lineage of bar %q has no tail segment", c.Id)
	return -1
}

// Clone returns a deep copy
func (o *Mesh) Clone() *Mesh {
	m := &Mesh{
		Verts: make([]*Vert, len(o.Verts)),
		Cells: make([]*Cell, len(o.Cells)),
		Vid:   make(map[string]int, len(o.Vid)),
		Bid:   make(map[string]int, len(o.Bid)),
		Sid:   make(map[string]int, len(o.Sid)),
		Nbase: o.Nbase,
	}
	for i, v := range o.Verts {
		m.Verts[i] = &Vert{Id: v.Id, X: append([]float64{}, v.X...)}
	}
	for i, c := range o.Cells {
		d := *c
		d.Verts = append([]int{}, c.Verts...)
		d.Children = append([]int{}, c.Children...)
		m.Cells[i] = &d
	}
	for k, v := range o.Vid {
		m.Vid[k] = v
	}
	for k, v := range o.Bid {
		m.Bid[k] = v
	}
	for k, v := range o.Sid {
		m.Sid[k] = v
	}
	return m
}

// String returns a summary of the arena
func (o *Mesh) String() string {
	l := io.Sf("verts (%d):\n", len(o.Verts))
	for i, v := range o.Verts {
		l += io.Sf("  %3d %-6s %v\n", i, v.Id, v.X)
	}
	l += io.Sf("cells (%d):\n", len(o.Cells))
	for i, c := range o.Cells {
		l += io.Sf("  %3d %-6s %-5s verts=%v L=%d rel=%v parent=%d children=%v\n", i, c.Id, c.Type, c.Verts, c.L, c.Releases, c.Parent, c.Children)
	}
	return l
}
