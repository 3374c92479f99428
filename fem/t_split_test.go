// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/inp"
)

// resultant returns the sum and the moment about x=0 of the distributed loads of a beam along x
func resultant(msh *inp.Mesh, lc *inp.LoadCase) (R, M float64) {
	for _, l := range lc.LoadMember {
		if l.Mark != inp.MarkDistributed {
			continue
		}
		c := msh.Cells[l.Cell]
		start := msh.Verts[c.Verts[0]].X[0] + l.L1
		a := float64(c.L-l.S1-l.S2) / 1000
		R += (l.P1 + l.P2) * a / 2
		M += start*(l.P1+l.P2)*a/2 + a*a*(l.P1/6+l.P2/3)
	}
	return
}

func Test_split01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("split01. loads and springs follow new segments")

	mdl, err := inp.DecodeModel([]byte(`{
		"node": {"1": {"x": 0, "y": 0, "z": 0}, "2": {"x": 6, "y": 0, "z": 0}},
		"member": {"1": {"ni": 1, "nj": 2, "e": 1}},
		"fix_member": {"1": [{"m": 1, "tz": 4}]},
		"load": {"1": {"load_member": [
			{"m": 1, "mark": 2, "L1": 1, "L2": 2, "P1": 2, "P2": 8, "direction": "gz"},
			{"m": 1, "mark": 1, "L1": 3, "P1": 5, "direction": "gz"},
			{"m": 1, "mark": 9, "P1": 20}
		]}}
	}`), "split")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	msh, lc := mdl.Msh, mdl.Cases["1"]
	msh.Cells[0].Releases = [6]int{1, 1, 0, 1, 1, 0}
	R0, M0 := resultant(msh, lc)
	chk.Float64(tst, "R before", 1e-13, R0, 15)
	chk.Float64(tst, "M before", 1e-13, M0, 42)

	// split at 2.5 and then the tail at 0.5
	sp := &splitter{msh: msh, sep: SepLoad, springs: mdl.Springs, cases: []*inp.LoadCase{lc}}
	tidx, err := sp.split(0, 2500)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, err = sp.split(tidx, 500); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v", msh)

	// arena
	chk.Ints(tst, "children", msh.Cells[0].Children, []int{1, 2})
	chk.Int(tst, "tail", msh.Tail(0), 2)
	chk.String(tst, msh.Cells[1].Id, "1l1")
	chk.String(tst, msh.Cells[2].Id, "1l2")
	chk.Ints(tst, "lengths", []int{msh.Cells[0].L, msh.Cells[1].L, msh.Cells[2].L}, []int{2500, 500, 3000})
	chk.Ints(tst, "releases of head", msh.Cells[0].Releases[:], []int{1, 1, 0, 1, 1, 1})
	chk.Ints(tst, "releases of middle", msh.Cells[1].Releases[:], []int{1, 1, 1, 1, 1, 1})
	chk.Ints(tst, "releases of tail", msh.Cells[2].Releases[:], []int{1, 1, 1, 1, 1, 0})
	chk.Array(tst, "x of 1l1", 1e-15, msh.Verts[msh.Vid["1l1"]].X, []float64{2.5, 0, 0})
	chk.Array(tst, "x of 1l2", 1e-15, msh.Verts[msh.Vid["1l2"]].X, []float64{3, 0, 0})
	chk.Int(tst, "end vertex of tail", msh.Cells[2].EndVert, 1)

	// springs
	var ids []string
	for _, s := range mdl.Springs["1"] {
		ids = append(ids, string(s.M))
		chk.Float64(tst, "tz", 1e-15, s.Tz, 4)
	}
	chk.Strings(tst, "springs", ids, []string{"1", "1l1", "1l2"})

	// loads: the distributed load is divided and keeps its resultant
	R, M := resultant(msh, lc)
	chk.Float64(tst, "R after", 1e-13, R, R0)
	chk.Float64(tst, "M after", 1e-13, M, M0)
	ndist, ntemp := 0, 0
	for _, l := range lc.LoadMember {
		switch l.Mark {
		case inp.MarkDistributed:
			ndist++
		case inp.MarkThermal:
			ntemp++
			chk.Float64(tst, "ΔT", 1e-15, l.P1, 20)
		default:
			tst.Errorf("concentrated load at the cut must become nodal")
		}
	}
	chk.Int(tst, "number of distributed loads", ndist, 3)
	chk.Int(tst, "number of thermal loads", ntemp, 3)

	// concentrated load at the cut
	chk.Int(tst, "number of nodal loads", len(lc.LoadNode), 1)
	nl := lc.LoadNode[0]
	chk.String(tst, string(nl.N), "1l2")
	chk.Array(tst, "forces", 1e-15, nl.Forces(), []float64{0, 0, 5, 0, 0, 0})

	// bad positions
	if _, err = sp.split(0, 2500); err == nil {
		tst.Errorf("split at the end of a segment must fail")
	}
}

func Test_split02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("split02. concentrated loads and normalisation")

	mdl, err := inp.DecodeModel([]byte(`{
		"node": {"1": {"x": 0, "y": 0, "z": 0}, "2": {"x": 4, "y": 0, "z": 0}},
		"member": {"1": {"ni": 1, "nj": 2, "e": 1, "cg": 90}},
		"load": {"1": {"load_member": [
			{"m": 1, "mark": 1, "L1": 1, "L2": 3, "P1": 2, "P2": -3, "direction": "y"},
			{"m": 1, "mark": 11, "L1": 2, "P1": 7, "direction": "gx"},
			{"m": 1, "mark": 2, "P1": 0, "P2": 0, "direction": "y"},
			{"m": 1, "mark": 2, "L1": 2, "L2": 2, "P1": 1, "P2": 1, "direction": "y"}
		]}}
	}`), "point")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	msh, lc := mdl.Msh, mdl.Cases["1"]

	// local y is global z when the chord angle is 90°
	f, err := pointLoad(msh, 0, lc.LoadMember[0])
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "force", 1e-15, f, []float64{0, 0, 2, 0, 0, 0})
	f, err = pointLoad(msh, 0, lc.LoadMember[1])
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "moment", 1e-15, f, []float64{0, 0, 0, 7, 0, 0})

	// two-point record is split; loads with no effect are dropped
	normalise(msh, lc)
	chk.Int(tst, "number of loads", len(lc.LoadMember), 3)
	a, b := lc.LoadMember[0], lc.LoadMember[1]
	chk.Ints(tst, "offsets", []int{a.S1, a.S2, b.S1, b.S2}, []int{1000, 0, 3000, 0})
	chk.Array(tst, "values", 1e-15, []float64{a.P1, a.P2, b.P1, b.P2}, []float64{2, 0, -3, 0})
	chk.Int(tst, "mark of moment", lc.LoadMember[2].Mark, inp.MarkPointMoment)
}
