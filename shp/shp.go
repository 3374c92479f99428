// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/integrate/quad"
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "qua4" => gnd == 2 (even in 3D simulations)
	Nverts    int         // number of vertices in cell
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
}

// Ipoint holds the natural coordinates and weight of an integration point
type Ipoint struct {
	R, S, W float64
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns a new Shape structure
func Get(geoType string) (*Shape, error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot find shape type %q", geoType)
	}
	return &Shape{
		Type:      s.Type,
		Func:      s.Func,
		Gndim:     s.Gndim,
		Nverts:    s.Nverts,
		NatCoords: s.NatCoords,
		S:         make([]float64, s.Nverts),
		DSdR:      utl.Alloc(s.Nverts, s.Gndim),
	}, nil
}

// CalcAtR computes S and dSdR at natural coordinates r
func (o *Shape) CalcAtR(r []float64) {
	o.Func(o.S, o.DSdR, r, true)
}

// GaussLegendre returns the n×n tensor-product Gauss-Legendre points of the [-1,1]² square
func GaussLegendre(n int) (ips []*Ipoint) {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	sort.Sort(byLocation{x, w})
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			ips = append(ips, &Ipoint{R: x[i], S: x[j], W: w[i] * w[j]})
		}
	}
	return
}

// byLocation sorts points and weights by increasing location
type byLocation struct{ x, w []float64 }

func (o byLocation) Len() int           { return len(o.x) }
func (o byLocation) Less(i, j int) bool { return o.x[i] < o.x[j] }
func (o byLocation) Swap(i, j int) {
	o.x[i], o.x[j] = o.x[j], o.x[i]
	o.w[i], o.w[j] = o.w[j], o.w[i]
}

// qua4 computes the bilinear shape functions
//   3-----------2
//   |     s     |
//   |     |     |
//   |     +--r  |
//   |           |
//   0-----------1
func qua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r) * (1.0 - s) / 4.0
	S[1] = (1.0 + r) * (1.0 - s) / 4.0
	S[2] = (1.0 + r) * (1.0 + s) / 4.0
	S[3] = (1.0 - r) * (1.0 + s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = -(1.0 - s) / 4.0
	dSdR[1][0] = +(1.0 - s) / 4.0
	dSdR[2][0] = +(1.0 + s) / 4.0
	dSdR[3][0] = -(1.0 + s) / 4.0
	dSdR[0][1] = -(1.0 - r) / 4.0
	dSdR[1][1] = -(1.0 + r) / 4.0
	dSdR[2][1] = +(1.0 + r) / 4.0
	dSdR[3][1] = +(1.0 - r) / 4.0
}

func init() {
	factory["qua4"] = &Shape{
		Type:   "qua4",
		Func:   qua4,
		Gndim:  2,
		Nverts: 4,
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	}
}
