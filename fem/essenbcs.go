// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/linsol"
)

// EssentialBcs records supports and prescribed displacements and eliminates them from the
// global system by zeroing rows and columns.
//  Precedence: prescribed > fixed > spring
//  In addition, equations with a zero diagonal after assembly are fixed at zero.
type EssentialBcs struct {
	Prescribed map[int]float64 // equation => prescribed value
	Fixed      map[int]bool    // fixed equations
	Springs    map[int]float64 // equation => spring stiffness
	Guarded    []int           // equations with zero diagonal, fixed by Apply
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Prescribed = make(map[int]float64)
	o.Fixed = make(map[int]bool)
	o.Springs = make(map[int]float64)
	o.Guarded = nil
}

// SetSupport sets a support flag: 0 => free, 1 => fixed, other => spring stiffness.
// Springs given more than once are summed.
func (o *EssentialBcs) SetSupport(eq int, flag float64) {
	switch flag {
	case 0:
	case 1:
		o.Fixed[eq] = true
	default:
		o.Springs[eq] += flag
	}
}

// SetPrescribed prescribes a displacement. Values given more than once are summed;
// a sum of zero leaves the equation free.
func (o *EssentialBcs) SetPrescribed(eq int, val float64) {
	o.Prescribed[eq] += val
	if o.Prescribed[eq] == 0 {
		delete(o.Prescribed, eq)
	}
}

// IsSupported tells whether an equation has a support or a prescribed value
func (o *EssentialBcs) IsSupported(eq int) bool {
	if _, ok := o.Prescribed[eq]; ok {
		return true
	}
	if o.Fixed[eq] {
		return true
	}
	_, ok := o.Springs[eq]
	return ok
}

// Apply modifies Kb and fb
func (o *EssentialBcs) Apply(Kb *linsol.Matrix, fb []float64) {

	// prescribed displacements
	peqs := sortedKeys(o.Prescribed)
	if len(peqs) > 0 {
		dp := make([]float64, len(fb))
		for _, eq := range peqs {
			dp[eq] = o.Prescribed[eq]
		}
		kd := Kb.MulVec(dp)
		for i := range fb {
			fb[i] -= kd[i]
		}
		for _, eq := range peqs {
			Kb.ZeroRowCol(eq)
			Kb.Put(eq, eq, 1)
			fb[eq] = dp[eq]
		}
	}

	// fixed
	for _, eq := range sortedKeys(o.Fixed) {
		if _, ok := o.Prescribed[eq]; ok {
			continue
		}
		Kb.ZeroRowCol(eq)
		Kb.Put(eq, eq, 1)
		fb[eq] = 0
	}

	// springs
	for _, eq := range sortedKeys(o.Springs) {
		if _, ok := o.Prescribed[eq]; ok {
			continue
		}
		if o.Fixed[eq] {
			continue
		}
		Kb.Add(eq, eq, o.Springs[eq])
	}

	// zero diagonal
	o.Guarded = o.Guarded[:0]
	for eq := 0; eq < Kb.N(); eq++ {
		if Kb.Diag(eq) == 0 {
			Kb.ZeroRowCol(eq)
			Kb.Put(eq, eq, 1)
			fb[eq] = 0
			o.Guarded = append(o.Guarded, eq)
		}
	}
}

// List returns a list of essential boundary conditions
func (o *EssentialBcs) List() (l string) {
	l = "\n==================================================\n"
	l += io.Sf("%8s%8s%24s\n", "eq", "kind", "value")
	l += "--------------------------------------------------\n"
	for _, eq := range sortedKeys(o.Prescribed) {
		l += io.Sf("%8d%8s%24g\n", eq, "disp", o.Prescribed[eq])
	}
	for _, eq := range sortedKeys(o.Fixed) {
		l += io.Sf("%8d%8s%24g\n", eq, "fixed", 0.0)
	}
	for _, eq := range sortedKeys(o.Springs) {
		l += io.Sf("%8d%8s%24g\n", eq, "spring", o.Springs[eq])
	}
	l += "==================================================\n"
	return
}

// sortedKeys returns the keys of an equation map in increasing order
func sortedKeys[V any](m map[int]V) (keys []int) {
	keys = make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return
}
