// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadModel reads a model document. Gzip-compressed files are accepted.
func ReadModel(path string) (o *Model, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	if len(b) > 1 && b[0] == 0x1f && b[1] == 0x8b {
		zr, e := gzip.NewReader(bytes.NewReader(b))
		if e != nil {
			return nil, chk.Err("cannot open compressed model file %q:\n%v", path, e)
		}
		defer zr.Close()
		if b, err = goio.ReadAll(zr); err != nil {
			return nil, chk.Err("cannot decompress model file %q:\n%v", path, err)
		}
	}

	// decode
	fn := strings.TrimSuffix(filepath.Base(path), ".gz")
	return DecodeModel(b, io.FnKey(fn))
}

// DecodeModel decodes, validates and post-processes a model document
func DecodeModel(b []byte, key string) (o *Model, err error) {
	o = new(Model)
	o.LinSol.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal model %q:\n%v", key, err)
	}
	o.Key = key
	if o.LinSol.Name == "" {
		o.LinSol.SetDefault()
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess builds the arena and checks all references
func (o *Model) PostProcess() (err error) {

	// vertices
	o.Msh = NewMesh()
	for _, n := range o.Nodes {
		if _, err = o.Msh.AddVert(n.Id, []float64{n.X, n.Y, n.Z}); err != nil {
			return
		}
	}
	o.Msh.Nbase = len(o.Msh.Verts)

	// bars
	for _, m := range o.Members {
		c := &Cell{Id: m.Id, Type: TypeBar, Mat: string(m.E), Angle: m.Cg, Parent: -1, Releases: [6]int{1, 1, 1, 1, 1, 1}}
		for _, n := range []Key{m.Ni, m.Nj} {
			vid, ok := o.Msh.Vid[string(n)]
			if !ok {
				return NewValidationError("member", m.Id, "node %q", n)
			}
			c.Verts = append(c.Verts, vid)
		}
		c.EndVert = c.Verts[1]
		var idx int
		if idx, err = o.Msh.AddCell(c); err != nil {
			return
		}
		c.L = Scaled(o.Msh.Dist(idx))
	}

	// shells
	for _, s := range o.Shells {
		if len(s.Nodes) != 4 {
			return chk.Err("shell %q must have 4 nodes; got %d", s.Id, len(s.Nodes))
		}
		c := &Cell{Id: s.Id, Type: TypeShell, Mat: string(s.E), Parent: -1}
		for _, n := range s.Nodes {
			vid, ok := o.Msh.Vid[string(n)]
			if !ok {
				return NewValidationError("shell", s.Id, "node %q", n)
			}
			c.Verts = append(c.Verts, vid)
		}
		if _, err = o.Msh.AddCell(c); err != nil {
			return
		}
	}

	// materials
	for _, set := range o.MatSets {
		for id, m := range set {
			m.Id = id
		}
	}

	// notice points
	o.mergeNotices()

	// supports
	for set, list := range o.Supports {
		for _, s := range list {
			if _, ok := o.Msh.Vid[string(s.N)]; !ok {
				return NewValidationError("support set", set, "node %q", s.N)
			}
		}
	}

	// springs
	for set, list := range o.Springs {
		for _, s := range list {
			if _, ok := o.Msh.Bid[string(s.M)]; !ok {
				return NewValidationError("spring set", set, "member %q", s.M)
			}
		}
	}

	// joints
	for set, list := range o.Joints {
		for _, j := range list {
			if _, ok := o.Msh.Bid[string(j.M)]; !ok {
				return NewValidationError("joint set", set, "member %q", j.M)
			}
		}
	}

	// load cases
	for _, lc := range o.Cases {
		if err = o.checkCase(lc); err != nil {
			return
		}
	}
	return
}

// CaseIds returns the sorted ids of load cases
func (o *Model) CaseIds() (ids []string) {
	for id := range o.Cases {
		ids = append(ids, id)
	}
	sortIds(ids)
	return
}

// checkCase sets defaults of a load case and checks its loads
func (o *Model) checkCase(lc *LoadCase) error {
	for _, ref := range []*Key{&lc.FixNode, &lc.FixMember, &lc.Element, &lc.Joint} {
		if *ref == "" {
			*ref = "1"
		}
	}
	for _, l := range lc.LoadNode {
		vid, ok := o.Msh.Vid[string(l.N)]
		if !ok {
			return NewValidationError("load case", lc.Id, "node %q", l.N)
		}
		l.Vert = vid
	}
	for _, l := range lc.LoadMember {
		cid, ok := o.Msh.Bid[string(l.M)]
		if !ok {
			return NewValidationError("load case", lc.Id, "member %q", l.M)
		}
		l.Cell = cid
		l.S1, l.S2 = Scaled(l.L1), Scaled(l.L2)
		switch l.Mark {
		case MarkThermal:
		case MarkPointForce, MarkPointMoment, MarkDistributed:
			switch l.Direction {
			case "x", "y", "z", "r", "gx", "gy", "gz":
			default:
				return NewValidationError("load case", lc.Id, "direction %q", l.Direction)
			}
		default:
			return NewValidationError("load case", lc.Id, "load mark %d", l.Mark)
		}
		L := o.Msh.Cells[cid].L
		switch {
		case l.Mark == MarkDistributed && (l.S1 < 0 || l.S2 < 0 || l.S1+l.S2 > L):
			return chk.Err("load case %q: distributed load on member %q does not lie within [0, %g]", lc.Id, l.M, float64(L)/1000)
		case l.IsPoint() && (l.S1 < 0 || l.S2 < 0 || l.S1 > L || l.S2 > L):
			return chk.Err("load case %q: concentrated load on member %q does not lie within [0, %g]", lc.Id, l.M, float64(L)/1000)
		}
	}
	return nil
}

// mergeNotices scales, clips and merges notice points; entries on unknown members are removed
func (o *Model) mergeNotices() {
	var merged []*NoticePoint
	index := make(map[Key]*NoticePoint)
	for _, nc := range o.Notices {
		cid, ok := o.Msh.Bid[string(nc.M)]
		if !ok {
			continue
		}
		L := o.Msh.Cells[cid].L
		dest, ok := index[nc.M]
		if !ok {
			dest = &NoticePoint{M: nc.M}
			index[nc.M] = dest
			merged = append(merged, dest)
		}
		for _, p := range nc.Points {
			s := Scaled(p)
			if s <= 0 || s >= L {
				continue
			}
			dest.Points = append(dest.Points, p)
			dest.Scaled = append(dest.Scaled, s)
		}
	}
	for _, nc := range merged {
		sort.Ints(nc.Scaled)
		uniq := nc.Scaled[:0]
		for _, s := range nc.Scaled {
			if len(uniq) == 0 || s != uniq[len(uniq)-1] {
				uniq = append(uniq, s)
			}
		}
		nc.Scaled = uniq
	}
	o.Notices = merged
}
