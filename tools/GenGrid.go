// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Input holds the parameters of a regular building frame
type Input struct {
	Dir    string  // output directory
	Key    string  // model key; file is <Dir>/<Key>.json
	Nx     int     // number of bays along x
	Ny     int     // number of bays along y
	Nz     int     // number of storeys
	Dx     float64 // bay width along x
	Dy     float64 // bay width along y
	Dz     float64 // storey height
	Q      float64 // uniform load on beams (gravity)
	H      float64 // lateral load at each top node along x
	Slabs  bool    // add a shell on each floor panel
	Points int     // number of notice points on each beam
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.Dir, o.Key = "/tmp/gofrm", "grid"
	o.Nx, o.Ny, o.Nz = 3, 2, 4
	o.Dx, o.Dy, o.Dz = 6, 5, 3.5
	o.Q, o.H = 12, 8
	o.Points = 3
}

type M map[string]interface{}

func main() {

	// input
	var in Input
	in.SetDefault()
	if fn, _ := io.ArgToFilename(0, "", ".json", false); fn != "" {
		b, err := os.ReadFile(fn)
		if err != nil {
			chk.Panic("cannot read input file:\n%v", err)
		}
		if err = json.Unmarshal(b, &in); err != nil {
			chk.Panic("cannot unmarshal input file:\n%v", err)
		}
	}

	// nodes
	nid := func(i, j, k int) string { return io.Sf("%d", 1+i+j*(in.Nx+1)+k*(in.Nx+1)*(in.Ny+1)) }
	nodes := M{}
	for k := 0; k <= in.Nz; k++ {
		for j := 0; j <= in.Ny; j++ {
			for i := 0; i <= in.Nx; i++ {
				nodes[nid(i, j, k)] = M{"x": float64(i) * in.Dx, "y": float64(j) * in.Dy, "z": float64(k) * in.Dz}
			}
		}
	}

	// members
	members, shells := M{}, M{}
	var beams, notices []M
	nm := 0
	add := func(a, b string) string {
		nm++
		id := io.Sf("%d", nm)
		members[id] = M{"ni": a, "nj": b, "e": "1"}
		return id
	}
	for k := 0; k < in.Nz; k++ {
		for j := 0; j <= in.Ny; j++ {
			for i := 0; i <= in.Nx; i++ {
				add(nid(i, j, k), nid(i, j, k+1))
			}
		}
	}
	for k := 1; k <= in.Nz; k++ {
		for j := 0; j <= in.Ny; j++ {
			for i := 0; i <= in.Nx; i++ {
				if i < in.Nx {
					beams = append(beams, M{"m": add(nid(i, j, k), nid(i+1, j, k)), "L": in.Dx})
				}
				if j < in.Ny {
					beams = append(beams, M{"m": add(nid(i, j, k), nid(i, j+1, k)), "L": in.Dy})
				}
			}
		}
		if in.Slabs {
			for j := 0; j < in.Ny; j++ {
				for i := 0; i < in.Nx; i++ {
					id := io.Sf("%d", len(shells)+1)
					shells[id] = M{"nodes": []string{nid(i, j, k), nid(i+1, j, k), nid(i+1, j+1, k), nid(i, j+1, k)}, "e": "2"}
				}
			}
		}
	}

	// notice points and loads
	var gravity []M
	for _, b := range beams {
		gravity = append(gravity, M{"m": b["m"], "mark": 2, "P1": -in.Q, "P2": -in.Q, "direction": "gz"})
		if in.Points > 0 {
			L := b["L"].(float64)
			var pts []float64
			for p := 1; p <= in.Points; p++ {
				pts = append(pts, L*float64(p)/float64(in.Points+1))
			}
			notices = append(notices, M{"m": b["m"], "Points": pts})
		}
	}
	var lateral []M
	for j := 0; j <= in.Ny; j++ {
		lateral = append(lateral, M{"n": nid(0, j, in.Nz), "tx": in.H})
	}

	// supports
	var fixed []M
	for j := 0; j <= in.Ny; j++ {
		for i := 0; i <= in.Nx; i++ {
			fixed = append(fixed, M{"n": nid(i, j, 0), "tx": 1, "ty": 1, "tz": 1, "rx": 1, "ry": 1, "rz": 1})
		}
	}

	// model
	model := M{
		"node":   nodes,
		"member": members,
		"element": M{"1": M{
			"1": M{"E": 2.05e8, "G": 7.9e7, "A": 0.0118, "J": 2.0e-7, "Iy": 3.98e-4, "Iz": 1.34e-5, "Xp": 1.2e-5},
			"2": M{"E": 2.5e7, "G": 1.04e7, "A": 0.15},
		}},
		"notice_points": notices,
		"fix_node":      M{"1": fixed},
		"load": M{
			"1": M{"load_member": gravity},
			"2": M{"load_node": lateral},
			"3": M{"load_node": lateral, "load_member": gravity},
		},
	}
	if in.Slabs {
		model["shell"] = shells
	}
	b, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal model:\n%v", err)
	}
	io.WriteBytesToFileD(in.Dir, in.Key+".json", b)
	io.Pf("file <%s/%s.json> written: %d nodes, %d members, %d shells\n", in.Dir, in.Key, len(nodes), len(members), len(shells))
}
