// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/ele"
	"github.com/gofrm/gofrm/inp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// material used in tests: EA=2000, GJ=400, EIy=3000, EIz=4000
var testMat = &inp.MaterialData{Id: "1", E: 1000, G: 400, A: 2, J: 1, Iy: 3, Iz: 4, Xp: 1e-5}

// newBar allocates a bar between xa and xb
func newBar(tst *testing.T, xa, xb []float64, angle float64, rel [6]int, props *ele.Props) (*Bar, error) {
	msh := inp.NewMesh()
	msh.AddVert("1", xa)
	msh.AddVert("2", xb)
	cell := &inp.Cell{Id: "1", Type: inp.TypeBar, Verts: []int{0, 1}, Angle: angle, Releases: rel, Parent: -1, EndVert: 1}
	if _, err := msh.AddCell(cell); err != nil {
		tst.Fatalf("cannot add cell:\n%v", err)
	}
	e, err := ele.New(cell, msh, props)
	if err != nil {
		return nil, err
	}
	return e.(*Bar), nil
}

func checkSymmetric(tst *testing.T, msg string, K mat.Matrix, tol float64) {
	n, _ := K.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(K.At(i, j)-K.At(j, i)) > tol {
				tst.Errorf("%s is not symmetric: K[%d][%d]=%g K[%d][%d]=%g", msg, i, j, K.At(i, j), j, i, K.At(j, i))
				return
			}
		}
	}
}

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01. classical stiffness")

	s := Section{L: 2, EA: 2000, GJ: 400, EIy: 3000, EIz: 4000}
	K := s.LocalK()
	io.Pforan("K =\n%v\n", mat.Formatted(K))
	checkSymmetric(tst, "K", K, 1e-15)

	L := 2.0
	chk.Float64(tst, "EA/L", 1e-15, K.At(0, 0), 2000/L)
	chk.Float64(tst, "-EA/L", 1e-15, K.At(0, 6), -2000/L)
	chk.Float64(tst, "GJ/L", 1e-15, K.At(3, 3), 400/L)
	chk.Float64(tst, "12EIz/L³", 1e-12, K.At(1, 1), 12*4000/(L*L*L))
	chk.Float64(tst, "6EIz/L²", 1e-12, K.At(1, 5), 6*4000/(L*L))
	chk.Float64(tst, "6EIz/L²", 1e-12, K.At(1, 11), 6*4000/(L*L))
	chk.Float64(tst, "-6EIz/L²", 1e-12, K.At(7, 11), -6*4000/(L*L))
	chk.Float64(tst, "4EIz/L", 1e-12, K.At(5, 5), 4*4000/L)
	chk.Float64(tst, "2EIz/L", 1e-12, K.At(5, 11), 2*4000/L)
	chk.Float64(tst, "12EIy/L³", 1e-12, K.At(2, 2), 12*3000/(L*L*L))
	chk.Float64(tst, "-6EIy/L²", 1e-12, K.At(2, 4), -6*3000/(L*L))
	chk.Float64(tst, "6EIy/L²", 1e-12, K.At(8, 4), 6*3000/(L*L))
	chk.Float64(tst, "4EIy/L", 1e-12, K.At(4, 4), 4*3000/L)
	chk.Float64(tst, "2EIy/L", 1e-12, K.At(4, 10), 2*3000/L)

	// rigid body translation along y
	u := mat.NewVecDense(12, []float64{0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0})
	var f mat.VecDense
	f.MulVec(K, u)
	chk.Array(tst, "K·u", 1e-12, f.RawVector().Data, make([]float64, 12))
}

func Test_bar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar02. foundation springs")

	// stiff springs: symmetric
	s := Section{L: 2, EA: 2000, GJ: 400, EIy: 3000, EIz: 4000, Tx: 1e4, Ty: 2e4, Tz: 3e4, Tr: 5e3}
	K := s.LocalK()
	io.Pforan("K =\n%v\n", mat.Formatted(K))
	checkSymmetric(tst, "K", K, 1e-9)
	for i := 0; i < 12; i++ {
		if K.At(i, i) <= 0 {
			tst.Errorf("diagonal %d must be positive; got %g", i, K.At(i, i))
		}
	}
	if K.At(0, 0) <= 1000 {
		tst.Errorf("axial springs must stiffen the bar; got %g", K.At(0, 0))
	}

	// soft springs: classical limit
	c := Section{L: 2, EA: 2000, GJ: 400, EIy: 3000, EIz: 4000}
	s = c
	s.Tx, s.Ty, s.Tz, s.Tr = 1e-6, 1e-6, 1e-6, 1e-6
	chk.Deep2(tst, "K(k→0)", 1e-5, rows(s.LocalK()), rows(c.LocalK()))
}

func Test_bar03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar03. transformation")

	// vertical member
	tr := NewTransform(r3.Vec{}, r3.Vec{Z: 3}, 0)
	chk.Float64(tst, "L", 1e-15, tr.L, 3)
	chk.Array(tst, "x", 1e-15, []float64{tr.Axis(0).X, tr.Axis(0).Y, tr.Axis(0).Z}, []float64{0, 0, 1})
	chk.Array(tst, "y", 1e-15, []float64{tr.Axis(1).X, tr.Axis(1).Y, tr.Axis(1).Z}, []float64{1, 0, 0})

	// inclined member with chord angle: orthonormal axes
	tr = NewTransform(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: -1, Z: 5}, 30)
	var I mat.Dense
	I.Mul(tr.T3, tr.T3.T())
	chk.Deep2(tst, "T3·T3ᵀ", 1e-14, rows(&I), [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	v := []float64{0.3, -0.7, 1.1}
	chk.Array(tst, "world(member(v))", 1e-14, tr.ToWorld(tr.ToMember(v)), v)
	x := r3.Unit(r3.Vec{X: 3, Y: -3, Z: 2})
	chk.Array(tst, "x", 1e-14, tr.ToMember([]float64{x.X, x.Y, x.Z}), []float64{1, 0, 0})

	// zero length
	if NewTransform(r3.Vec{X: 1}, r3.Vec{X: 1}, 0) != nil {
		tst.Errorf("zero-length segment must not have a transformation")
	}
}

func Test_bar04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar04. element and releases")

	// member along global y: local x = global y
	props := &ele.Props{Mat: testMat}
	o, err := newBar(tst, []float64{0, 0, 0}, []float64{0, 2, 0}, 0, [6]int{1, 1, 1, 1, 1, 1}, props)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkSymmetric(tst, "K", o.K, 1e-12)
	chk.Float64(tst, "K[uy,uy]", 1e-12, o.K.At(1, 1), 1000)
	chk.Float64(tst, "K[ux,ux]", 1e-12, o.K.At(0, 0), 12*4000/8.0)

	// propped cantilever: released rotation about z at j
	o, err = newBar(tst, []float64{0, 0, 0}, []float64{2, 0, 0}, 0, [6]int{1, 1, 1, 1, 1, 0}, props)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("Kl =\n%v\n", mat.Formatted(o.Kl))
	chk.Float64(tst, "3EIz/L³", 1e-9, o.Kl.At(1, 1), 3*4000/8.0)
	chk.Float64(tst, "3EIz/L²", 1e-9, o.Kl.At(1, 5), 3*4000/4.0)
	chk.Float64(tst, "3EIz/L", 1e-9, o.Kl.At(5, 5), 3*4000/2.0)
	chk.Float64(tst, "Kl[11][11]", 1e-15, o.Kl.At(11, 11), 0)
	chk.Float64(tst, "12EIy/L³", 1e-9, o.Kl.At(2, 2), 12*3000/8.0)
	chk.Ints(tst, "released", Released([6]int{0, 1, 1, 1, 0, 0}), []int{3, 10, 11})

	// zero length
	_, err = newBar(tst, []float64{1, 1, 1}, []float64{1, 1, 1}, 0, [6]int{1, 1, 1, 1, 1, 1}, props)
	var iv *inp.InvariantViolation
	if !errors.As(err, &iv) {
		tst.Errorf("zero-length bar must give an InvariantViolation; got %v", err)
		return
	}
	chk.String(tst, iv.Id, "1")

	// negative spring
	_, err = newBar(tst, []float64{0, 0, 0}, []float64{2, 0, 0}, 0, [6]int{1, 1, 1, 1, 1, 1}, &ele.Props{Mat: testMat, Spring: &inp.SpringData{Ty: -1}})
	if err == nil {
		tst.Errorf("negative spring must fail")
	}
}

func Test_bar05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar05. equivalent loads")

	L, w := 2.0, 10.0
	c := Section{L: L, EA: 2000, GJ: 400, EIy: 3000, EIz: 4000}
	ld := &Wload{Wx: [2]float64{1, 1}, Wy: [2]float64{w, w}, Wz: [2]float64{w, w}, Wt: [2]float64{2, 2}}
	f := c.EquivLoads(ld)
	io.Pforan("f = %v\n", f)
	chk.Array(tst, "f", 1e-14, f, []float64{
		1, w, w, 2, -w * L * L / 12, w * L * L / 12,
		1, w, w, 2, w * L * L / 12, -w * L * L / 12,
	})

	// triangular load: resultant and moment about i
	ld = &Wload{Wy: [2]float64{0, 6}}
	f = c.EquivLoads(ld)
	chk.Float64(tst, "ΣF", 1e-14, f[1]+f[7], 6*L/2)
	chk.Float64(tst, "ΣM", 1e-14, f[5]+f[11]+f[7]*L, 6*L/2*2*L/3)

	// soft springs: classical limit (uniform loads are integrated exactly)
	s := c
	s.Tx, s.Ty, s.Tz, s.Tr = 1e-6, 1e-6, 1e-6, 1e-6
	ld = &Wload{Wx: [2]float64{1, 1}, Wy: [2]float64{w, w}, Wz: [2]float64{-w, -w}, Wt: [2]float64{2, 2}}
	chk.Array(tst, "f(k→0)", 1e-6, s.EquivLoads(ld), c.EquivLoads(ld))

	// global direction on member along x with chord angle 90°: gz maps to local y
	props := &ele.Props{Mat: testMat, Loads: []*inp.MemberLoad{
		{Mark: inp.MarkDistributed, P1: -w, P2: -w, Direction: "gz"},
		{Mark: inp.MarkThermal, P1: 20},
	}}
	o, err := newBar(tst, []float64{0, 0, 0}, []float64{L, 0, 0}, 90, [6]int{1, 1, 1, 1, 1, 1}, props)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("Wl = %v\n", o.Wl)
	chk.Float64(tst, "Wl[y]", 1e-14, o.Wl[1], -w*L/2)
	chk.Float64(tst, "Wl[z]", 1e-14, o.Wl[2], 0)
	chk.Array(tst, "Wfe[fz]", 1e-14, []float64{o.Wfe[2], o.Wfe[8]}, []float64{-w * L / 2, -w * L / 2})
	chk.Array(tst, "Tfe", 1e-14, []float64{o.Tfe[0], o.Tfe[6]}, []float64{-1000 * 2 * 1e-5 * 20, 1000 * 2 * 1e-5 * 20})

	// pinned end moves the fixed-end moment to the other end
	props.Loads = []*inp.MemberLoad{{Mark: inp.MarkDistributed, P1: w, P2: w, Direction: "y"}}
	o, err = newBar(tst, []float64{0, 0, 0}, []float64{L, 0, 0}, 0, [6]int{1, 1, 1, 1, 1, 0}, props)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "Wl", 1e-13, []float64{o.Wl[1], o.Wl[5], o.Wl[7], o.Wl[11]}, []float64{5 * w * L / 8, w * L * L / 8, 3 * w * L / 8, 0})

	// concentrated loads are not accepted
	props.Loads = []*inp.MemberLoad{{Mark: inp.MarkPointForce, P1: w, Direction: "y"}}
	if _, err = newBar(tst, []float64{0, 0, 0}, []float64{L, 0, 0}, 0, [6]int{1, 1, 1, 1, 1, 1}, props); err == nil {
		tst.Errorf("concentrated load must fail")
	}
}

func Test_bar06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar06. section forces of a cantilever")

	// cantilever along x fixed at i; tip load P along -y at j
	L, P := 2.0, 5.0
	props := &ele.Props{Mat: testMat}
	o, err := newBar(tst, []float64{0, 0, 0}, []float64{L, 0, 0}, 0, [6]int{1, 1, 1, 1, 1, 1}, props)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	o.SetEqs([][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}})
	sol := ele.NewSolution(12)
	EI := 4000.0
	sol.Y[7] = -P * L * L * L / (3 * EI)
	sol.Y[11] = -P * L * L / (2 * EI)
	fseg := o.NodalForces(sol)
	io.Pforan("fseg = %v\n", fseg)
	chk.Float64(tst, "fy(j)", 1e-12, fseg[7], -P)
	chk.Float64(tst, "mz(j)", 1e-12, fseg[11], 0)
	chk.Float64(tst, "fy(i)", 1e-12, fseg[1], P)
	chk.Float64(tst, "mz(i)", 1e-12, fseg[5], P*L)

	sf := o.SecForces(sol)
	chk.Int(tst, "len(sf)", len(sf), 1)
	chk.String(tst, sf[0].Key, "1")
	chk.Float64(tst, "mzi", 1e-12, sf[0].F[5], -P*L)
	chk.Float64(tst, "fyj", 1e-12, sf[0].F[7], P)
}

func rows(a mat.Matrix) (res [][]float64) {
	r, c := a.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}
