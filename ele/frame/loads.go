// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/inp"
	"gonum.org/v1/gonum/integrate"
)

// Wload holds the loads acting along a whole bar segment, in local axes
type Wload struct {
	Wx   [2]float64 // axial intensity at i and j
	Wy   [2]float64 // transverse intensity along local y at i and j
	Wz   [2]float64 // transverse intensity along local z at i and j
	Wt   [2]float64 // torsional moment intensity at i and j
	Temp float64    // temperature change
}

// collect adds the distributed and thermal loads of a segment
//  Note: concentrated loads must have been converted to nodal loads and distributed loads must
//        span the whole segment
func (o *Wload) collect(id string, tr *Transform, loads []*inp.MemberLoad) error {
	for _, l := range loads {
		switch l.Mark {
		case inp.MarkThermal:
			o.Temp += l.P1
		case inp.MarkDistributed:
			if l.S1 != 0 || l.S2 != 0 {
				return chk.Err("distributed load on bar %q must span the whole segment; L1=%g L2=%g", id, l.L1, l.L2)
			}
			wi, wj := [3]float64{}, [3]float64{}
			switch l.Direction {
			case "x":
				wi[0], wj[0] = l.P1, l.P2
			case "y":
				wi[1], wj[1] = l.P1, l.P2
			case "z":
				wi[2], wj[2] = l.P1, l.P2
			case "r":
				o.Wt[0] += l.P1
				o.Wt[1] += l.P2
				continue
			case "gx", "gy", "gz":
				g := int(l.Direction[1] - 'x')
				ei, ej := make([]float64, 3), make([]float64, 3)
				ei[g], ej[g] = l.P1, l.P2
				copy(wi[:], tr.ToMember(ei))
				copy(wj[:], tr.ToMember(ej))
			default:
				return chk.Err("bar %q: unknown load direction %q", id, l.Direction)
			}
			o.Wx[0], o.Wx[1] = o.Wx[0]+wi[0], o.Wx[1]+wj[0]
			o.Wy[0], o.Wy[1] = o.Wy[0]+wi[1], o.Wy[1]+wj[1]
			o.Wz[0], o.Wz[1] = o.Wz[0]+wi[2], o.Wz[1]+wj[2]
		default:
			return chk.Err("concentrated load (mark %d) on bar %q must be converted to nodal loads", l.Mark, id)
		}
	}
	return nil
}

// EquivLoads computes the [12] equivalent nodal loads of distributed loads in local axes
func (o *Section) EquivLoads(w *Wload) (f []float64) {
	f = make([]float64, 12)
	L := o.L

	// axial and torsion
	if o.Tx > 0 && o.EA > 0 {
		f[0], f[6] = foundationAxial(o.EA, L, o.Tx, w.Wx[0], w.Wx[1])
	} else {
		f[0], f[6] = L/6*(2*w.Wx[0]+w.Wx[1]), L/6*(w.Wx[0]+2*w.Wx[1])
	}
	if o.Tr > 0 && o.GJ > 0 {
		f[3], f[9] = foundationAxial(o.GJ, L, o.Tr, w.Wt[0], w.Wt[1])
	} else {
		f[3], f[9] = L/6*(2*w.Wt[0]+w.Wt[1]), L/6*(w.Wt[0]+2*w.Wt[1])
	}

	// transverse y
	wi, wj := w.Wy[0], w.Wy[1]
	if o.Ty > 0 && o.EIz > 0 {
		f[1], f[7], f[5], f[11] = foundationBending(o.EIz, L, o.Ty, wi, wj)
		f[11] = -f[11]
	} else {
		f[1], f[7] = L/20*(7*wi+3*wj), L/20*(3*wi+7*wj)
		f[5], f[11] = L*L/60*(3*wi+2*wj), -L*L/60*(2*wi+3*wj)
	}

	// transverse z
	wi, wj = w.Wz[0], w.Wz[1]
	if o.Tz > 0 && o.EIy > 0 {
		f[2], f[8], f[4], f[10] = foundationBending(o.EIy, L, o.Tz, wi, wj)
		f[4] = -f[4]
	} else {
		f[2], f[8] = L/20*(7*wi+3*wj), L/20*(3*wi+7*wj)
		f[4], f[10] = -L*L/60*(3*wi+2*wj), L*L/60*(2*wi+3*wj)
	}
	return
}

// ThermalLoads computes the [12] equivalent nodal loads of a uniform temperature change in local axes
func ThermalLoads(E, A, α, ΔT float64) (f []float64) {
	f = make([]float64, 12)
	f[0] = -E * A * α * ΔT
	f[6] = +E * A * α * ΔT
	return
}

// simpson returns the abscissae of the composite Simpson rule used for foundation loads
func simpson(L float64) (x []float64) {
	n := 3
	switch {
	case L > 6:
		n = 19
	case L > 4:
		n = 15
	case L > 3:
		n = 9
	case L > 2:
		n = 7
	case L > 1.2:
		n = 5
	}
	x = make([]float64, n+2)
	for k := range x {
		x[k] = float64(k) * L / float64(n+1)
	}
	return
}

// foundationAxial integrates a trapezoidal load against the end reactions of a bar on axial
// (or torsional) springs with both ends fixed
func foundationAxial(EA, L, k, wi, wj float64) (fi, fj float64) {
	λ := math.Sqrt(k / EA)
	s := math.Sinh(λ * L)
	x := simpson(L)
	ga, gb := make([]float64, len(x)), make([]float64, len(x))
	for m, xm := range x {
		w := wi + (wj-wi)*xm/L
		ga[m] = w * math.Sinh(λ*(L-xm)) / s
		gb[m] = w * math.Sinh(λ*xm) / s
	}
	return integrate.Simpsons(x, ga), integrate.Simpsons(x, gb)
}

// foundationBending integrates a trapezoidal load against the end reactions of a fixed-fixed
// beam on transverse springs. Moments are returned as magnitudes.
func foundationBending(EI, L, k, wi, wj float64) (vi, vj, mi, mj float64) {
	if wi == 0 && wj == 0 {
		return
	}
	h := newHyper(EI, L, k)
	x := simpson(L)
	n := len(x)
	g1, g2, g3, g4 := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for m, xm := range x {
		w := wi + (wj-wi)*xm/L
		a, b := (L-xm)/h.l0, xm/h.l0
		cha, sha, coa, sia := math.Cosh(a), math.Sinh(a), math.Cos(a), math.Sin(a)
		chb, shb, cob, sib := math.Cosh(b), math.Sinh(b), math.Cos(b), math.Sin(b)
		g1[m] = (h.sh*(cha*sib+sha*cob) - h.si*(coa*shb+sia*chb)) * w / h.q
		g2[m] = (h.sh*(chb*sia+shb*coa) - h.si*(cob*sha+sib*cha)) * w / h.q
		g3[m] = (h.sh*sha*sib - h.si*sia*shb) * w * h.l0 / h.q
		g4[m] = (h.sh*shb*sia - h.si*sib*sha) * w * h.l0 / h.q
	}
	return integrate.Simpsons(x, g1), integrate.Simpsons(x, g2), integrate.Simpsons(x, g3), integrate.Simpsons(x, g4)
}
