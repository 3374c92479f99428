// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/ele/frame"
	"github.com/gofrm/gofrm/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// id separators of segments created by subdivision
const (
	SepNotice = "n" // split at notice points
	SepLoad   = "l" // split at load boundaries
)

// splitter subdivides bars and keeps the loads and springs referencing them consistent
type splitter struct {
	msh     *inp.Mesh                    // arena
	sep     string                       // id separator
	springs map[string][]*inp.SpringData // spring sets being tracked
	cases   []*inp.LoadCase              // load cases being tracked
}

// split cuts bar cidx at pos (scaled, from its i end) and returns the index of the new tail segment
func (o *splitter) split(cidx, pos int) (tidx int, err error) {

	// check
	head := o.msh.Cells[cidx]
	if !head.IsBar() {
		return 0, chk.Err("cannot split %s %q", head.Type, head.Id)
	}
	LL := head.L
	if pos <= 0 || pos >= LL {
		return 0, chk.Err("cannot split bar %q at %g; the position must lie within (0, %g)", head.Id, float64(pos)/1000, float64(LL)/1000)
	}

	// new vertex
	orig := o.msh.Cells[head.Parent]
	id := io.Sf("%s%s%d", orig.Id, o.sep, len(orig.Children)+1)
	a, b := o.msh.Verts[head.Verts[0]].X, o.msh.Verts[head.Verts[1]].X
	r := float64(pos) / float64(LL)
	x := []float64{a[0] + r*(b[0]-a[0]), a[1] + r*(b[1]-a[1]), a[2] + r*(b[2]-a[2])}
	vidx, err := o.msh.AddVert(id, x)
	if err != nil {
		return 0, chk.Err("cannot split bar %q:\n%v", head.Id, err)
	}

	// new segment
	tail := &inp.Cell{
		Id:       id,
		Type:     inp.TypeBar,
		Verts:    []int{vidx, head.Verts[1]},
		Mat:      head.Mat,
		Angle:    head.Angle,
		Releases: [6]int{1, 1, 1, head.Releases[3], head.Releases[4], head.Releases[5]},
		L:        LL - pos,
		Parent:   head.Parent,
		EndVert:  head.EndVert,
	}
	if tidx, err = o.msh.AddCell(tail); err != nil {
		return 0, chk.Err("cannot split bar %q:\n%v", head.Id, err)
	}
	orig.Children = append(orig.Children, tidx)

	// old segment
	head.Verts[1] = vidx
	head.Releases[3], head.Releases[4], head.Releases[5] = 1, 1, 1
	head.L = pos

	// springs
	for set, list := range o.springs {
		for _, s := range list {
			if string(s.M) == head.Id {
				c := *s
				c.M = inp.Key(tail.Id)
				o.springs[set] = append(o.springs[set], &c)
			}
		}
	}

	// loads
	for _, lc := range o.cases {
		if err = o.splitLoads(lc, cidx, tidx, vidx, pos, LL); err != nil {
			return
		}
	}
	return
}

// splitLoads moves, keeps or divides the member loads of segment cidx cut at pos
func (o *splitter) splitLoads(lc *inp.LoadCase, cidx, tidx, vidx, pos, LL int) (err error) {
	tail := o.msh.Cells[tidx]
	kept := lc.LoadMember[:0:0]
	var added []*inp.MemberLoad
	for _, l := range lc.LoadMember {
		if l.Cell != cidx {
			kept = append(kept, l)
			continue
		}
		switch l.Mark {

		case inp.MarkThermal:
			c := l.Clone()
			c.MoveTo(tidx, tail.Id)
			kept = append(kept, l)
			added = append(added, c)

		case inp.MarkDistributed:
			switch {
			case l.S1 >= pos: // beyond the cut
				l.MoveTo(tidx, tail.Id)
				l.SetOffsets(l.S1-pos, l.S2)
			case LL-l.S2 <= pos: // before the cut
				l.SetOffsets(l.S1, l.S2-(LL-pos))
			default:
				P3 := l.P1 + (l.P2-l.P1)/float64(LL-l.S1-l.S2)*float64(pos-l.S1)
				c := l.Clone()
				c.MoveTo(tidx, tail.Id)
				c.P1 = P3
				c.SetOffsets(0, l.S2)
				l.P2 = P3
				l.SetOffsets(l.S1, 0)
				added = append(added, c)
			}
			kept = append(kept, l)

		case inp.MarkPointForce, inp.MarkPointMoment:
			switch {
			case l.S1 == pos:
				if err = o.toNodal(lc, cidx, vidx, l); err != nil {
					return
				}
				continue
			case l.S1 > pos:
				l.MoveTo(tidx, tail.Id)
				l.SetOffsets(l.S1-pos, 0)
			}
			kept = append(kept, l)

		default:
			return chk.Err("load case %q: cannot split load with mark %d on bar %q", lc.Id, l.Mark, l.M)
		}
	}
	lc.LoadMember = append(kept, added...)
	return
}

// toNodal converts a concentrated load on segment cidx to a nodal load at vertex vidx
func (o *splitter) toNodal(lc *inp.LoadCase, cidx, vidx int, l *inp.MemberLoad) error {
	f, err := pointLoad(o.msh, cidx, l)
	if err != nil {
		return err
	}
	nl := &inp.NodalLoad{N: inp.Key(o.msh.Verts[vidx].Id), Vert: vidx}
	for i, v := range f {
		nl.AddForce(i, v)
	}
	lc.LoadNode = append(lc.LoadNode, nl)
	return nil
}

// pointLoad returns the six global force and moment components of a concentrated load on bar cidx
func pointLoad(msh *inp.Mesh, cidx int, l *inp.MemberLoad) (f []float64, err error) {
	f = make([]float64, 6)
	base := 0
	if l.Mark == inp.MarkPointMoment {
		base = 3
	}
	switch l.Direction {
	case "gx", "gy", "gz":
		f[base+int(l.Direction[1]-'x')] = l.P1
		return
	}
	v := make([]float64, 3)
	switch l.Direction {
	case "x", "r":
		v[0] = l.P1
	case "y":
		v[1] = l.P1
	case "z":
		v[2] = l.P1
	default:
		return nil, chk.Err("unknown load direction %q", l.Direction)
	}
	c := msh.Cells[cidx]
	tr := frame.NewTransform(vec(msh.Verts[c.Verts[0]].X), vec(msh.Verts[c.Verts[1]].X), c.Angle)
	if tr == nil {
		return nil, inp.NewInvariantViolation(c.Id, "bar has zero length")
	}
	copy(f[base:base+3], tr.ToWorld(v))
	return
}

// normalise splits concentrated records into single-point ones and drops loads with no effect.
// After this, a concentrated load acts at S1 with value P1.
func normalise(msh *inp.Mesh, lc *inp.LoadCase) {
	var res []*inp.MemberLoad
	for _, l := range lc.LoadMember {
		switch l.Mark {
		case inp.MarkPointForce, inp.MarkPointMoment:
			if l.P1 != 0 {
				c := l.Clone()
				c.P2 = 0
				c.SetOffsets(l.S1, 0)
				res = append(res, c)
			}
			if l.P2 != 0 {
				c := l.Clone()
				c.P1, c.P2 = l.P2, 0
				c.SetOffsets(l.S2, 0)
				res = append(res, c)
			}
		case inp.MarkDistributed:
			if l.P1 == 0 && l.P2 == 0 {
				continue
			}
			if l.S1+l.S2 >= msh.Cells[l.Cell].L {
				continue
			}
			res = append(res, l)
		default:
			res = append(res, l)
		}
	}
	lc.LoadMember = res
}

// vec converts coordinates to a vector
func vec(x []float64) r3.Vec {
	return r3.Vec{X: x[0], Y: x[1], Z: x[2]}
}
