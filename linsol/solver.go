// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver solves A·x = b
type Solver interface {
	Solve(A *Matrix, b []float64) (x []float64, err error)
}

// allocators holds all available solvers
var allocators = map[string]func() Solver{
	"band": func() Solver { return new(bandSolver) },
	"lu":   func() Solver { return new(luSolver) },
	"chol": func() Solver { return new(cholSolver) },
}

// GetSolver returns a new solver by name
func GetSolver(name string) (Solver, error) {
	allocator, ok := allocators[name]
	if !ok {
		var names []string
		for k := range allocators {
			names = append(names, k)
		}
		sort.Strings(names)
		return nil, chk.Err("cannot find linear solver named %q; available: %v", name, names)
	}
	return allocator(), nil
}

// luSolver uses the dense LU decomposition with partial pivoting
type luSolver struct {
	lu mat.LU
}

func (o *luSolver) Solve(A *Matrix, b []float64) (x []float64, err error) {
	if x, done := trivial(A, b); done {
		return x, nil
	}
	o.lu.Factorize(A.ToDense())
	xv := mat.NewVecDense(A.N(), nil)
	if err = o.lu.SolveVecTo(xv, false, mat.NewVecDense(A.N(), append([]float64{}, b...))); err != nil {
		return nil, chk.Err("LU solution failed: %v", err)
	}
	return finite(xv.RawVector().Data)
}

// cholSolver uses the dense Cholesky decomposition; A must be symmetric positive-definite
type cholSolver struct {
	ch mat.Cholesky
}

func (o *cholSolver) Solve(A *Matrix, b []float64) (x []float64, err error) {
	if x, done := trivial(A, b); done {
		return x, nil
	}
	if !A.IsSymmetric(1e-12) {
		return nil, chk.Err("Cholesky solver requires a symmetric matrix")
	}
	if ok := o.ch.Factorize(A.ToSym()); !ok {
		return nil, chk.Err("Cholesky factorisation failed: matrix is not positive-definite")
	}
	xv := mat.NewVecDense(A.N(), nil)
	if err = o.ch.SolveVecTo(xv, mat.NewVecDense(A.N(), append([]float64{}, b...))); err != nil {
		return nil, chk.Err("Cholesky solution failed: %v", err)
	}
	return finite(xv.RawVector().Data)
}

// bandSolver factorises the symmetric banded matrix with the banded Cholesky
// decomposition. Unsymmetric or indefinite systems fall back to luSolver
type bandSolver struct {
	ch       mat.BandCholesky
	Fallback bool // the last solution used the LU fallback
}

func (o *bandSolver) Solve(A *Matrix, b []float64) (x []float64, err error) {
	o.Fallback = false
	if x, done := trivial(A, b); done {
		return x, nil
	}
	if A.IsSymmetric(1e-12) {
		if ok := o.ch.Factorize(A.ToSymBand()); ok {
			xv := mat.NewVecDense(A.N(), nil)
			if err = o.ch.SolveVecTo(xv, mat.NewVecDense(A.N(), append([]float64{}, b...))); err != nil {
				return nil, chk.Err("banded Cholesky solution failed: %v", err)
			}
			return finite(xv.RawVector().Data)
		}
	}
	o.Fallback = true
	return new(luSolver).Solve(A, b)
}

// trivial handles empty systems and zero right-hand sides
func trivial(A *Matrix, b []float64) (x []float64, done bool) {
	if len(b) != A.N() {
		chk.Panic("len(b)=%d is incompatible with n=%d", len(b), A.N())
	}
	if A.N() == 0 {
		return []float64{}, true
	}
	if floats.Norm(b, math.Inf(1)) == 0 {
		return make([]float64, A.N()), true
	}
	return nil, false
}

// finite checks the solution
func finite(x []float64) ([]float64, error) {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("solution is not finite at equation %d", i)
		}
	}
	return x, nil
}
