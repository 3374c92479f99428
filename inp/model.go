// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json) model file
package inp

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Key is an identifier that may be written as a JSON string or number
type Key string

// UnmarshalJSON accepts "7" and 7
func (o *Key) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*o = Key(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return chk.Err("identifier must be a string or a number; got %s", string(b))
	}
	*o = Key(n.String())
	return nil
}

// NodeData holds the coordinates of one node
type NodeData struct {
	Id string  `json:"-"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// MaterialData holds section and material constants
//  Note: A is the thickness for shells
type MaterialData struct {
	Id string  `json:"-"`
	E  float64 `json:"E"`  // Young's modulus
	G  float64 `json:"G"`  // shear modulus
	A  float64 `json:"A"`  // area or thickness
	J  float64 `json:"J"`  // torsional constant
	Iy float64 `json:"Iy"` // moment of inertia around local y
	Iz float64 `json:"Iz"` // moment of inertia around local z
	Xp float64 `json:"Xp"` // thermal expansion coefficient
}

// MemberData holds a bar member
type MemberData struct {
	Id string  `json:"-"`
	Ni Key     `json:"ni"` // node at the i end
	Nj Key     `json:"nj"` // node at the j end
	E  Key     `json:"e"`  // material id
	Cg float64 `json:"cg"` // chord angle [degrees]
}

// ShellData holds a four-node shell
type ShellData struct {
	Id    string `json:"-"`
	Nodes []Key  `json:"nodes"`
	E     Key    `json:"e"`
}

// NoticePoint holds analysis points along a member
type NoticePoint struct {
	M      Key       `json:"m"`
	Points []float64 `json:"Points"` // distances from the i end [m]

	// derived
	Scaled []int `json:"-"` // points × 1000; sorted and unique
}

// SupportData holds support flags of a node: 0 => free, 1 => fixed, other => spring stiffness
type SupportData struct {
	N  Key     `json:"n"`
	Tx float64 `json:"tx"`
	Ty float64 `json:"ty"`
	Tz float64 `json:"tz"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
}

// Flags returns the six support flags
func (o *SupportData) Flags() []float64 {
	return []float64{o.Tx, o.Ty, o.Tz, o.Rx, o.Ry, o.Rz}
}

// SpringData holds elastic foundation constants of a member
type SpringData struct {
	M  Key     `json:"m"`
	Tx float64 `json:"tx"` // axial
	Ty float64 `json:"ty"` // local y
	Tz float64 `json:"tz"` // local z
	Tr float64 `json:"tr"` // torsion
}

// JointData holds end-release flags of a member: 1 => rigid, 0 => released
type JointData struct {
	M  Key `json:"m"`
	Xi int `json:"xi"`
	Yi int `json:"yi"`
	Zi int `json:"zi"`
	Xj int `json:"xj"`
	Yj int `json:"yj"`
	Zj int `json:"zj"`
}

// UnmarshalJSON sets omitted flags to rigid
func (o *JointData) UnmarshalJSON(b []byte) error {
	type plain JointData
	p := plain{Xi: 1, Yi: 1, Zi: 1, Xj: 1, Yj: 1, Zj: 1}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = JointData(p)
	return nil
}

// Releases returns the flags ordered as xi,yi,zi,xj,yj,zj
func (o *JointData) Releases() [6]int {
	return [6]int{o.Xi, o.Yi, o.Zi, o.Xj, o.Yj, o.Zj}
}

// NodalLoad holds forces and prescribed displacements at a node
type NodalLoad struct {
	N  Key     `json:"n"`
	Tx float64 `json:"tx"`
	Ty float64 `json:"ty"`
	Tz float64 `json:"tz"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
	Dz float64 `json:"dz"`
	Ax float64 `json:"ax"`
	Ay float64 `json:"ay"`
	Az float64 `json:"az"`

	// derived
	Vert int `json:"-"` // index of node in mesh
}

// Forces returns tx,ty,tz,rx,ry,rz
func (o *NodalLoad) Forces() []float64 {
	return []float64{o.Tx, o.Ty, o.Tz, o.Rx, o.Ry, o.Rz}
}

// Disps returns dx,dy,dz,ax,ay,az
func (o *NodalLoad) Disps() []float64 {
	return []float64{o.Dx, o.Dy, o.Dz, o.Ax, o.Ay, o.Az}
}

// AddForce adds to force (or moment) component idx ∈ [0,6)
func (o *NodalLoad) AddForce(idx int, val float64) {
	switch idx {
	case 0:
		o.Tx += val
	case 1:
		o.Ty += val
	case 2:
		o.Tz += val
	case 3:
		o.Rx += val
	case 4:
		o.Ry += val
	case 5:
		o.Rz += val
	default:
		chk.Panic("force index %d is out of range", idx)
	}
}

// member load marks
const (
	MarkPointForce  = 1  // concentrated force
	MarkDistributed = 2  // trapezoidal distributed load
	MarkThermal     = 9  // temperature change
	MarkPointMoment = 11 // concentrated moment
)

// MemberLoad holds a load acting on a member
//  Mark 1/11: P1 at L1 and P2 at L2; both measured from the i end
//  Mark 2:    P1 at L1 (from i end) varying linearly to P2 at L2 (from j end)
//  Mark 9:    P1 is the temperature change
type MemberLoad struct {
	M         Key     `json:"m"`
	Mark      int     `json:"mark"`
	L1        float64 `json:"L1"`
	L2        float64 `json:"L2"`
	P1        float64 `json:"P1"`
	P2        float64 `json:"P2"`
	Direction string  `json:"direction"` // x,y,z,r (local) or gx,gy,gz (global)

	// derived
	Cell int `json:"-"` // index of member in mesh
	S1   int `json:"-"` // L1 × 1000
	S2   int `json:"-"` // L2 × 1000
}

// Clone returns a copy of this load
func (o *MemberLoad) Clone() *MemberLoad {
	c := *o
	return &c
}

// MoveTo assigns this load to another cell
func (o *MemberLoad) MoveTo(cidx int, id string) {
	o.Cell, o.M = cidx, Key(id)
}

// SetOffsets sets the scaled offsets and the matching L1 and L2
func (o *MemberLoad) SetOffsets(s1, s2 int) {
	o.S1, o.S2 = s1, s2
	o.L1, o.L2 = float64(s1)/1000, float64(s2)/1000
}

// IsPoint tells whether this is a concentrated force or moment
func (o *MemberLoad) IsPoint() bool {
	return o.Mark == MarkPointForce || o.Mark == MarkPointMoment
}

// LoadCase holds one load case
type LoadCase struct {
	Id         string        `json:"-"`
	FixNode    Key           `json:"fix_node"`   // support set
	FixMember  Key           `json:"fix_member"` // spring set
	Element    Key           `json:"element"`    // material set
	Joint      Key           `json:"joint"`      // end-release set
	LoadNode   []*NodalLoad  `json:"load_node"`
	LoadMember []*MemberLoad `json:"load_member"`

	// derived
	Named map[string]bool `json:"-"` // which set references were given explicitly
}

// LinSolData holds data for the linear solver
type LinSolData struct {
	Name string `json:"name"` // "band", "lu" or "chol"
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "band"
}

// Model holds all data of one model document
type Model struct {

	// input
	Nodes    []*NodeData                         `json:"-"`
	MatSets  map[string]map[string]*MaterialData `json:"element"`
	Members  []*MemberData                       `json:"-"`
	Shells   []*ShellData                        `json:"-"`
	Notices  []*NoticePoint                      `json:"notice_points"`
	Supports map[string][]*SupportData           `json:"fix_node"`
	Springs  map[string][]*SpringData            `json:"fix_member"`
	Joints   map[string][]*JointData             `json:"joint"`
	Cases    map[string]*LoadCase                `json:"load"`
	LinSol   LinSolData                          `json:"solver"`

	// derived
	Key string `json:"-"` // model key; e.g. frame01.json => frame01
	Msh *Mesh  `json:"-"` // arena of nodes and members
	Pre bool   `json:"-"` // bars have been split at notice points
}

// UnmarshalJSON decodes a model keeping the document order of nodes, members and shells
func (o *Model) UnmarshalJSON(b []byte) (err error) {
	type plain Model
	var p plain
	p.LinSol = o.LinSol
	if err = json.Unmarshal(b, &p); err != nil {
		return
	}
	var raw struct {
		Node   json.RawMessage                       `json:"node"`
		Member json.RawMessage                       `json:"member"`
		Shell  json.RawMessage                       `json:"shell"`
		Load   map[string]map[string]json.RawMessage `json:"load"`
	}
	if err = json.Unmarshal(b, &raw); err != nil {
		return
	}
	err = decodeOrdered(raw.Node, func(id string, r json.RawMessage) error {
		var d NodeData
		if e := json.Unmarshal(r, &d); e != nil {
			return chk.Err("cannot decode node %q:\n%v", id, e)
		}
		d.Id = id
		p.Nodes = append(p.Nodes, &d)
		return nil
	})
	if err != nil {
		return
	}
	err = decodeOrdered(raw.Member, func(id string, r json.RawMessage) error {
		var d MemberData
		if e := json.Unmarshal(r, &d); e != nil {
			return chk.Err("cannot decode member %q:\n%v", id, e)
		}
		d.Id = id
		p.Members = append(p.Members, &d)
		return nil
	})
	if err != nil {
		return
	}
	err = decodeOrdered(raw.Shell, func(id string, r json.RawMessage) error {
		var d ShellData
		if e := json.Unmarshal(r, &d); e != nil {
			return chk.Err("cannot decode shell %q:\n%v", id, e)
		}
		d.Id = id
		p.Shells = append(p.Shells, &d)
		return nil
	})
	if err != nil {
		return
	}
	for id, lc := range p.Cases {
		lc.Id = id
		lc.Named = make(map[string]bool)
		for _, key := range []string{"fix_node", "fix_member", "element", "joint"} {
			if _, ok := raw.Load[id][key]; ok {
				lc.Named[key] = true
			}
		}
	}
	*o = Model(p)
	return
}

// decodeOrdered calls fcn for each member of a JSON object, in document order
func decodeOrdered(b json.RawMessage, fcn func(id string, r json.RawMessage) error) error {
	if len(bytes.TrimSpace(b)) == 0 || string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return chk.Err("expected a JSON object; got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return chk.Err("expected an object key; got %v", tok)
		}
		var r json.RawMessage
		if err = dec.Decode(&r); err != nil {
			return err
		}
		if err = fcn(strings.TrimSpace(id), r); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
