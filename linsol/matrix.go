// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package linsol implements the global system matrix and linear solvers
package linsol

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a square sparse matrix with rows and columns that can be zeroed in place.
//  Note: entries are stored once per row; cols indexes which rows hold a given column
type Matrix struct {
	n    int
	rows []map[int]float64
	cols []map[int]struct{}
}

// NewMatrix allocates an n×n matrix of zeros
func NewMatrix(n int) *Matrix {
	o := &Matrix{n: n, rows: make([]map[int]float64, n), cols: make([]map[int]struct{}, n)}
	for i := 0; i < n; i++ {
		o.rows[i] = make(map[int]float64)
		o.cols[i] = make(map[int]struct{})
	}
	return o
}

// N returns the dimension
func (o *Matrix) N() int { return o.n }

// Add adds v to entry (i,j)
func (o *Matrix) Add(i, j int, v float64) {
	o.check(i, j)
	o.rows[i][j] += v
	o.cols[j][i] = struct{}{}
}

// Put sets entry (i,j)
func (o *Matrix) Put(i, j int, v float64) {
	o.check(i, j)
	o.rows[i][j] = v
	o.cols[j][i] = struct{}{}
}

// Get returns entry (i,j)
func (o *Matrix) Get(i, j int) float64 {
	o.check(i, j)
	return o.rows[i][j]
}

// Diag returns entry (i,i)
func (o *Matrix) Diag(i int) float64 {
	return o.Get(i, i)
}

// ZeroRowCol clears row i and column i
func (o *Matrix) ZeroRowCol(i int) {
	for j := range o.rows[i] {
		delete(o.cols[j], i)
	}
	o.rows[i] = make(map[int]float64)
	for r := range o.cols[i] {
		delete(o.rows[r], i)
	}
	o.cols[i] = make(map[int]struct{})
}

// MulVec returns y = A·x
func (o *Matrix) MulVec(x []float64) (y []float64) {
	if len(x) != o.n {
		chk.Panic("MulVec: len(x)=%d is incompatible with n=%d", len(x), o.n)
	}
	y = make([]float64, o.n)
	for i, row := range o.rows {
		for j, v := range row {
			y[i] += v * x[j]
		}
	}
	return
}

// Nnz returns the number of stored entries
func (o *Matrix) Nnz() (nnz int) {
	for _, row := range o.rows {
		nnz += len(row)
	}
	return
}

// IsSymmetric tells whether |a_ij - a_ji| ≤ tol·max|a| for all entries
func (o *Matrix) IsSymmetric(tol float64) bool {
	amax := 0.0
	for _, row := range o.rows {
		for _, v := range row {
			if v > amax {
				amax = v
			} else if -v > amax {
				amax = -v
			}
		}
	}
	for i, row := range o.rows {
		for j, v := range row {
			d := v - o.rows[j][i]
			if d > tol*amax || -d > tol*amax {
				return false
			}
		}
	}
	return true
}

// ToDense returns a dense copy
func (o *Matrix) ToDense() *mat.Dense {
	a := mat.NewDense(o.n, o.n, nil)
	for i, row := range o.rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
	}
	return a
}

// ToSym returns a dense symmetric copy built from the upper triangle
func (o *Matrix) ToSym() *mat.SymDense {
	a := mat.NewSymDense(o.n, nil)
	for i, row := range o.rows {
		for j, v := range row {
			if j >= i {
				a.SetSym(i, j, v)
			}
		}
	}
	return a
}

// Bandwidth returns the half-bandwidth: the largest |i-j| over stored entries
func (o *Matrix) Bandwidth() (k int) {
	for i, row := range o.rows {
		for j := range row {
			if j-i > k {
				k = j - i
			} else if i-j > k {
				k = i - j
			}
		}
	}
	return
}

// ToSymBand returns a symmetric banded copy built from the upper triangle.
//  Note: only the k+1 stored diagonals are allocated; k = Bandwidth()
func (o *Matrix) ToSymBand() *mat.SymBandDense {
	k := o.Bandwidth()
	a := mat.NewSymBandDense(o.n, k, nil)
	for i, row := range o.rows {
		for j, v := range row {
			if j >= i {
				a.SetSymBand(i, j, v)
			}
		}
	}
	return a
}

// String returns the stored entries sorted by row and column
func (o *Matrix) String() (l string) {
	for i, row := range o.rows {
		var js []int
		for j := range row {
			js = append(js, j)
		}
		sort.Ints(js)
		for _, j := range js {
			l += io.Sf("%4d %4d %23.15e\n", i, j, row[j])
		}
	}
	return
}

func (o *Matrix) check(i, j int) {
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		chk.Panic("index (%d,%d) is out of range; n=%d", i, j, o.n)
	}
}
