// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/gofrm/gofrm/inp"
)

// resolveSets finds the material, support, spring and joint sets of the case.
//  Note: a missing set that was not named in the case is taken as empty
func (o *Domain) resolveSets(base *inp.Model) error {
	lc := o.Case

	// materials
	mats, ok := base.MatSets[string(lc.Element)]
	if !ok {
		return inp.NewValidationError("load case", lc.Id, "material set %q", lc.Element)
	}
	o.Mats = mats

	// supports
	supports, ok := base.Supports[string(lc.FixNode)]
	if !ok && lc.Named["fix_node"] {
		return inp.NewValidationError("load case", lc.Id, "support set %q", lc.FixNode)
	}
	o.Supports = supports

	// springs; copied because splitting adds records
	springs, ok := base.Springs[string(lc.FixMember)]
	if !ok && lc.Named["fix_member"] {
		return inp.NewValidationError("load case", lc.Id, "spring set %q", lc.FixMember)
	}
	o.Springs = make([]*inp.SpringData, len(springs))
	for i, s := range springs {
		c := *s
		o.Springs[i] = &c
	}

	// joints
	joints, ok := base.Joints[string(lc.Joint)]
	if !ok && lc.Named["joint"] {
		return inp.NewValidationError("load case", lc.Id, "joint set %q", lc.Joint)
	}
	o.Joints = joints
	return nil
}

// applyJoints sets end releases: i flags go to the head segment and j flags to the tail
func (o *Domain) applyJoints() {
	for _, j := range o.Joints {
		cidx := o.Msh.Bid[string(j.M)]
		rel := j.Releases()
		head := o.Msh.Cells[cidx]
		tail := o.Msh.Cells[o.Msh.Tail(cidx)]
		copy(head.Releases[:3], rel[:3])
		copy(tail.Releases[3:], rel[3:])
	}
}

// splitAtLoads converts concentrated loads at segment ends to nodal loads and splits segments
// at the interior boundaries of the remaining member loads. Afterwards, all concentrated
// loads are nodal and each distributed load covers a whole segment.
func (o *Domain) splitAtLoads() (err error) {
	sp := &splitter{
		msh:     o.Msh,
		sep:     SepLoad,
		springs: map[string][]*inp.SpringData{string(o.Case.FixMember): o.Springs},
		cases:   []*inp.LoadCase{o.Case},
	}

	// boundaries
	bounds := make(map[int][]int)
	var kept []*inp.MemberLoad
	for _, l := range o.Case.LoadMember {
		c := o.Msh.Cells[l.Cell]
		switch {
		case l.IsPoint():
			switch l.S1 {
			case 0:
				err = sp.toNodal(o.Case, l.Cell, c.Verts[0], l)
			case c.L:
				err = sp.toNodal(o.Case, l.Cell, c.Verts[1], l)
			default:
				bounds[l.Cell] = append(bounds[l.Cell], l.S1)
				kept = append(kept, l)
			}
			if err != nil {
				return
			}
			continue
		case l.Mark == inp.MarkDistributed:
			if l.S1 > 0 {
				bounds[l.Cell] = append(bounds[l.Cell], l.S1)
			}
			if l.S2 > 0 {
				bounds[l.Cell] = append(bounds[l.Cell], c.L-l.S2)
			}
		}
		kept = append(kept, l)
	}
	o.Case.LoadMember = kept

	// split, in arena order
	cids := make([]int, 0, len(bounds))
	for cidx := range bounds {
		cids = append(cids, cidx)
	}
	sort.Ints(cids)
	for _, cidx := range cids {
		if err = splitAll(sp, cidx, uniqueSorted(bounds[cidx])); err != nil {
			return
		}
	}
	o.Springs = sp.springs[string(o.Case.FixMember)]
	return
}

// uniqueSorted sorts v and removes duplicates
func uniqueSorted(v []int) []int {
	sort.Ints(v)
	res := v[:0]
	for _, x := range v {
		if len(res) == 0 || x != res[len(res)-1] {
			res = append(res, x)
		}
	}
	return res
}
