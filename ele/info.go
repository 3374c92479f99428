// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to number the equations of an element
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "uz", "rx", "ry", "rz"], [...]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rz" => "mz"
}

// frame DOF keys
var (
	FrameDofs = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
	FrameY2F  = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"}
)

// NewFrameInfo returns information for an element with six DOFs at each of its nverts nodes
func NewFrameInfo(nverts int) *Info {
	info := &Info{Dofs: make([][]string, nverts), Y2F: FrameY2F}
	for m := 0; m < nverts; m++ {
		info.Dofs[m] = FrameDofs
	}
	return info
}
