// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// spd returns a 3×3 symmetric positive-definite matrix
func spd() *Matrix {
	A := NewMatrix(3)
	A.Put(0, 0, 4)
	A.Put(0, 1, 1)
	A.Put(1, 0, 1)
	A.Put(1, 1, 3)
	A.Put(1, 2, -1)
	A.Put(2, 1, -1)
	A.Put(2, 2, 2)
	return A
}

func Test_matrix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix01")

	A := spd()
	A.Add(2, 2, 1)
	chk.Float64(tst, "A22", 1e-15, A.Diag(2), 3)
	chk.Int(tst, "nnz", A.Nnz(), 7)
	chk.Array(tst, "A·x", 1e-15, A.MulVec([]float64{1, 1, 1}), []float64{5, 3, 2})

	A.ZeroRowCol(1)
	io.Pforan("A =\n%v", A)
	chk.Int(tst, "nnz after zeroing", A.Nnz(), 2)
	chk.Float64(tst, "A01", 1e-15, A.Get(0, 1), 0)
	chk.Float64(tst, "A21", 1e-15, A.Get(2, 1), 0)
	A.Put(1, 1, 1)
	chk.Deep2(tst, "dense", 1e-15, denseRows(A), [][]float64{
		{4, 0, 0},
		{0, 1, 0},
		{0, 0, 3},
	})
	if !A.IsSymmetric(1e-15) {
		tst.Errorf("A should be symmetric")
	}
	A.Put(0, 2, 1)
	if A.IsSymmetric(1e-15) {
		tst.Errorf("A should not be symmetric")
	}
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01")

	xcorrect := []float64{1, -2, 3}
	for _, name := range []string{"band", "lu", "chol"} {
		A := spd()
		b := A.MulVec(xcorrect)
		sol, err := GetSolver(name)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		x, err := sol.Solve(A, b)
		if err != nil {
			tst.Errorf("%s failed:\n%v", name, err)
			return
		}
		io.Pforan("%s: x = %v\n", name, x)
		chk.Array(tst, name, 1e-13, x, xcorrect)
	}
	if _, err := GetSolver("umfpack"); err == nil {
		tst.Errorf("unknown solver should fail")
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. singular and trivial systems")

	A := NewMatrix(2)
	A.Put(0, 0, 1)
	A.Put(0, 1, -1)
	A.Put(1, 0, -1)
	A.Put(1, 1, 1)
	for _, name := range []string{"band", "lu", "chol"} {
		sol, _ := GetSolver(name)
		_, err := sol.Solve(A, []float64{1, 0})
		if err == nil {
			tst.Errorf("%s: singular system should fail", name)
		}
		io.Pforan("%s: %v\n", name, err)
		x, err := sol.Solve(A, []float64{0, 0})
		if err != nil {
			tst.Errorf("%s: zero right-hand side should not fail:\n%v", name, err)
			return
		}
		chk.Array(tst, "zero solution", 1e-15, x, []float64{0, 0})
	}
}

func Test_band01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band01. banded storage")

	// block tridiagonal: two 2×2 blocks coupled by one entry
	A := NewMatrix(5)
	for i := 0; i < 5; i++ {
		A.Put(i, i, 10)
	}
	A.Put(0, 1, 2)
	A.Put(1, 0, 2)
	A.Put(1, 3, -1)
	A.Put(3, 1, -1)
	A.Put(3, 4, 3)
	A.Put(4, 3, 3)
	chk.Int(tst, "k", A.Bandwidth(), 2)

	B := A.ToSymBand()
	n, k := B.SymBand()
	chk.Int(tst, "n", n, 5)
	chk.Int(tst, "k of copy", k, 2)
	d := A.ToDense()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			chk.Float64(tst, io.Sf("B%d%d", i, j), 1e-15, B.At(i, j), d.At(i, j))
		}
	}

	A.ZeroRowCol(1)
	A.Put(1, 1, 1)
	chk.Int(tst, "k after zeroing", A.Bandwidth(), 1)
	chk.Int(tst, "diagonal", NewMatrix(3).Bandwidth(), 0)
}

func Test_band02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band02. banded Cholesky and fallback")

	// SPD chain of springs: banded Cholesky is used
	n := 6
	A := NewMatrix(n)
	for i := 0; i < n; i++ {
		A.Add(i, i, 2)
		if i+1 < n {
			A.Add(i, i+1, -1)
			A.Add(i+1, i, -1)
		}
	}
	xcorrect := []float64{1, 2, 3, -1, 0.5, 4}
	sol := new(bandSolver)
	x, err := sol.Solve(A, A.MulVec(xcorrect))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "x spd", 1e-13, x, xcorrect)
	if sol.Fallback {
		tst.Errorf("SPD system should not use the LU fallback")
	}

	// symmetric indefinite: LU fallback
	B := NewMatrix(2)
	B.Put(0, 0, 1)
	B.Put(0, 1, 2)
	B.Put(1, 0, 2)
	B.Put(1, 1, 1)
	x, err = sol.Solve(B, []float64{3, 3})
	if err != nil {
		tst.Errorf("indefinite system failed:\n%v", err)
		return
	}
	chk.Array(tst, "x indefinite", 1e-14, x, []float64{1, 1})
	if !sol.Fallback {
		tst.Errorf("indefinite system should use the LU fallback")
	}

	// unsymmetric: LU fallback
	C := NewMatrix(2)
	C.Put(0, 0, 2)
	C.Put(0, 1, 1)
	C.Put(1, 1, 1)
	x, err = sol.Solve(C, []float64{3, 1})
	if err != nil {
		tst.Errorf("unsymmetric system failed:\n%v", err)
		return
	}
	chk.Array(tst, "x unsymmetric", 1e-14, x, []float64{1, 1})
	if !sol.Fallback {
		tst.Errorf("unsymmetric system should use the LU fallback")
	}
}

func denseRows(A *Matrix) (res [][]float64) {
	d := A.ToDense()
	r, _ := d.Dims()
	for i := 0; i < r; i++ {
		res = append(res, append([]float64{}, d.RawRowView(i)...))
	}
	return
}
