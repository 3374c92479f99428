// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Cantilever computes the solution of a cantilever with a load at its free end
//
//   |                  P
//   |=================o ↓      deflections and loads
//   |                          are positive along P
//   x=0              x=L
type Cantilever struct {
	E float64 // Young's modulus
	I float64 // moment of inertia
	L float64 // length
	P float64 // tip load
}

// Deflection computes the deflection at x
func (o Cantilever) Deflection(x float64) float64 {
	return o.P * x * x * (3*o.L - x) / (6 * o.E * o.I)
}

// Slope computes dv/dx at x
func (o Cantilever) Slope(x float64) float64 {
	return o.P * x * (2*o.L - x) / (2 * o.E * o.I)
}

// Reactions returns the support force and moment; both have the sign of P
func (o Cantilever) Reactions() (force, moment float64) {
	return o.P, o.P * o.L
}

// CheckTip checks the deflection and slope at the free end
func (o Cantilever) CheckTip(tst *testing.T, v, dvdx, tol float64) {
	chk.Float64(tst, "tip deflection", tol, v, o.Deflection(o.L))
	chk.Float64(tst, "tip slope", tol, dvdx, o.Slope(o.L))
}

// UniformCantilever computes the solution of a cantilever under a uniform load W per length
type UniformCantilever struct {
	E, I, L, W float64
}

// Deflection computes the deflection at x
func (o UniformCantilever) Deflection(x float64) float64 {
	L := o.L
	return o.W * x * x * (6*L*L - 4*L*x + x*x) / (24 * o.E * o.I)
}

// Slope computes dv/dx at x
func (o UniformCantilever) Slope(x float64) float64 {
	L := o.L
	return o.W * x * (3*L*L - 3*L*x + x*x) / (6 * o.E * o.I)
}

// Reactions returns the support force and moment
func (o UniformCantilever) Reactions() (force, moment float64) {
	return o.W * o.L, o.W * o.L * o.L / 2
}

// SimplySupported computes the solution of a simply supported beam under a uniform load W
//
//      W ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓
//     o===============o
//     △               ○
type SimplySupported struct {
	E, I, L, W float64
}

// Deflection computes the deflection at x
func (o SimplySupported) Deflection(x float64) float64 {
	L := o.L
	return o.W * x * (L*L*L - 2*L*x*x + x*x*x) / (24 * o.E * o.I)
}

// Slope computes dv/dx at x
func (o SimplySupported) Slope(x float64) float64 {
	L := o.L
	return o.W * (L*L*L - 6*L*x*x + 4*x*x*x) / (24 * o.E * o.I)
}

// Moment computes the bending moment at x; positive when sagging
func (o SimplySupported) Moment(x float64) float64 {
	return o.W * x * (o.L - x) / 2
}

// Reactions returns the force at each support
func (o SimplySupported) Reactions() float64 {
	return o.W * o.L / 2
}

// FixedFixed computes the solution of a beam clamped at both ends under a uniform load W
type FixedFixed struct {
	E, I, L, W float64
}

// Deflection computes the deflection at x
func (o FixedFixed) Deflection(x float64) float64 {
	return o.W * x * x * (o.L - x) * (o.L - x) / (24 * o.E * o.I)
}

// Slope computes dv/dx at x
func (o FixedFixed) Slope(x float64) float64 {
	return o.W * x * (o.L - x) * (o.L - 2*x) / (12 * o.E * o.I)
}

// Reactions returns the force and the (hogging) moment at each support
func (o FixedFixed) Reactions() (force, moment float64) {
	return o.W * o.L / 2, o.W * o.L * o.L / 12
}

// Winkler computes the deflection of an infinite beam on an elastic foundation with modulus K
// under a point load P at x = 0
type Winkler struct {
	E, I, K, P float64
}

// Beta returns the characteristic number (K/(4EI))^¼
func (o Winkler) Beta() float64 {
	return math.Pow(o.K/(4*o.E*o.I), 0.25)
}

// Deflection computes the deflection at x
func (o Winkler) Deflection(x float64) float64 {
	β := o.Beta()
	a := β * math.Abs(x)
	return o.P * β / (2 * o.K) * math.Exp(-a) * (math.Cos(a) + math.Sin(a))
}

// AxialBar computes the elongation of a bar with an axial force P at its free end
type AxialBar struct {
	E, A, L, P float64
}

// Elongation returns P·L/(E·A)
func (o AxialBar) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Restrained computes the axial force of a bar clamped at both ends under a temperature change
type Restrained struct {
	E, A, Alpha, DT float64
}

// Force returns the axial force; negative means compression
func (o Restrained) Force() float64 {
	return -o.E * o.A * o.Alpha * o.DT
}
