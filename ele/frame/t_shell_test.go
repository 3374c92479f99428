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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// shell material: ν = 0.3, thickness = 0.1
var testShellMat = &inp.MaterialData{Id: "s", E: 260, G: 100, A: 0.1}

// newShell allocates a shell with the given corner coordinates
func newShell(tst *testing.T, X [][]float64, m *inp.MaterialData) (*Shell, error) {
	msh := inp.NewMesh()
	for i, x := range X {
		msh.AddVert(io.Sf("%d", i+1), x)
	}
	cell := &inp.Cell{Id: "s1", Type: inp.TypeShell, Verts: []int{0, 1, 2, 3}, Parent: -1}
	if _, err := msh.AddCell(cell); err != nil {
		tst.Fatalf("cannot add cell:\n%v", err)
	}
	e, err := ele.New(cell, msh, &ele.Props{Mat: m})
	if err != nil {
		return nil, err
	}
	return e.(*Shell), nil
}

func Test_shell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell01. symmetry and rigid translations")

	for _, X := range [][][]float64{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},             // flat, in x-y plane
		{{0, 0, 0}, {2, 0, 0.5}, {2.2, 1.5, 0.5}, {0.1, 1.4, 0}}, // skewed, inclined
	} {
		o, err := newShell(tst, X, testShellMat)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		kmax := mat.Max(o.K)
		io.Pforan("kmax = %v\n", kmax)
		checkSymmetric(tst, "K", o.K, 1e-12*kmax)

		// translations along global axes produce no forces
		for dir := 0; dir < 3; dir++ {
			u := make([]float64, 24)
			for m := 0; m < 4; m++ {
				u[6*m+dir] = 1
			}
			var f mat.VecDense
			f.MulVec(o.K, mat.NewVecDense(24, u))
			chk.Float64(tst, io.Sf("|K·u%d|", dir), 1e-12*kmax, floats.Norm(f.RawVector().Data, math.Inf(1)), 0)
		}

		// positive diagonal
		for i := 0; i < 24; i++ {
			if o.K.At(i, i) <= 0 {
				tst.Errorf("diagonal %d must be positive; got %g", i, o.K.At(i, i))
			}
		}
	}
}

func Test_shell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell02. geometry and edge forces")

	o, err := newShell(tst, [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, testShellMat)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "n", 1e-15, []float64{o.N.X, o.N.Y, o.N.Z}, []float64{0, 0, 1})
	chk.Deep2(tst, "dir", 1e-15, rows(o.Dir), [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// local z of every edge follows the normal
	for k, tr := range o.Edges {
		z := tr.Axis(2)
		chk.Array(tst, io.Sf("z%d", k), 1e-15, []float64{z.X, z.Y, z.Z}, []float64{0, 0, 1})
	}

	// stretch along x: edge forces keyed by previous node and node
	o.SetEqs([][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}, {12, 13, 14, 15, 16, 17}, {18, 19, 20, 21, 22, 23}})
	sol := ele.NewSolution(24)
	sol.Y[6] = 0.01
	sol.Y[12] = 0.01
	sf := o.SecForces(sol)
	keys := make([]string, len(sf))
	for i, s := range sf {
		keys[i] = s.Key
	}
	chk.Strings(tst, "keys", keys, []string{"4-1", "1-2", "2-3", "3-4"})

	// equilibrium of nodal forces
	f := o.NodalForces(sol)
	io.Pforan("f = %v\n", f)
	for dir := 0; dir < 3; dir++ {
		chk.Float64(tst, io.Sf("Σf%d", dir), 1e-13, f[dir]+f[6+dir]+f[12+dir]+f[18+dir], 0)
	}
	if f[6] <= 0 || f[0] >= 0 {
		tst.Errorf("stretching must pull node 2 along +x and node 1 along -x; got %g and %g", f[6], f[0])
	}
}

func Test_shell03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell03. degenerate shells")

	// collapsed
	_, err := newShell(tst, [][]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}, testShellMat)
	var iv *inp.InvariantViolation
	if !errors.As(err, &iv) {
		tst.Errorf("collapsed shell must give an InvariantViolation; got %v", err)
	}

	// zero shear modulus
	_, err = newShell(tst, [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, &inp.MaterialData{Id: "z", E: 1, A: 0.1})
	if !errors.As(err, &iv) {
		tst.Errorf("zero shear modulus must give an InvariantViolation; got %v", err)
		return
	}
	chk.String(tst, iv.Id, "s1")
}

func Test_shell04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell04. edge forces under uniform stretch")

	// unit square; u = ε·x and v = -ν·ε·y give σx = E·ε with σy = τ = 0
	o, err := newShell(tst, [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, testShellMat)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	o.SetEqs([][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}, {12, 13, 14, 15, 16, 17}, {18, 19, 20, 21, 22, 23}})
	ε, ν := 0.01, 0.3
	sol := ele.NewSolution(24)
	sol.Y[6], sol.Y[12] = ε, ε
	sol.Y[13], sol.Y[19] = -ν*ε, -ν*ε

	// each node carries half of σx·t over a unit edge
	P := 260 * ε * 0.1 / 2
	f := o.NodalForces(sol)
	io.Pforan("f = %v\n", f)
	chk.Array(tst, "f1", 1e-13, f[0:6], []float64{-P, 0, 0, 0, 0, 0})
	chk.Array(tst, "f2", 1e-13, f[6:12], []float64{P, 0, 0, 0, 0, 0})
	chk.Array(tst, "f3", 1e-13, f[12:18], []float64{P, 0, 0, 0, 0, 0})
	chk.Array(tst, "f4", 1e-13, f[18:24], []float64{-P, 0, 0, 0, 0, 0})

	// edges along x are in tension at both ends; edges along y carry shear only
	sf := o.SecForces(sol)
	tension := []float64{P, 0, 0, 0, 0, 0, P, 0, 0, 0, 0, 0}
	chk.String(tst, sf[1].Key, "1-2")
	chk.Array(tst, "1-2", 1e-13, sf[1].F, tension)
	chk.String(tst, sf[3].Key, "3-4")
	chk.Array(tst, "3-4", 1e-13, sf[3].F, tension)
	for _, k := range []int{0, 2} {
		F := sf[k].F
		io.Pforan("%s: %v\n", sf[k].Key, F)
		chk.Float64(tst, sf[k].Key+" Fxi", 1e-13, F[0], 0)
		chk.Float64(tst, sf[k].Key+" Fxj", 1e-13, F[6], 0)
		chk.Float64(tst, sf[k].Key+" |Fyi|", 1e-13, math.Abs(F[1]), P)
		chk.Float64(tst, sf[k].Key+" |Fyj|", 1e-13, math.Abs(F[7]), P)
	}
}
