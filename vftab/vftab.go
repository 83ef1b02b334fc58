/*
 * vftab.go, part of gomd.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package vftab builds the tabulated potential/force tables the tabulated
//kernel variants in gomd/nb read. Tables are filled in float64 and
//downcast once, as cubic Hermite segments on a uniform distance grid: each
//sample point stores Y, F, G, H per interaction such that, with
//eps = r*scale - i in [0,1),
//
//	V = Y + eps*(F + eps*(G + eps*H))
//
//interpolates the potential on [i/scale,(i+1)/scale) matching both the
//value and the derivative of the tabulated function at the two segment
//ends. The force the kernels derive from the same coefficients is then the
//exact negative derivative of the interpolated potential, which is what
//keeps tabulated forces consistent with tabulated energies over long
//trajectories.
//
//The tabulated functions diverge at r=0, and the neighbor-list contract
//keeps every pair at r >= 1/scale; point 0 holds a linear continuation of
//the first real segment, so a distance that rounds to just under the first
//sample still evaluates to the boundary value instead of garbage.
package vftab

import (
	"math"

	md "github.com/rmera/gomd"
	"gonum.org/v1/gonum/diff/fd"
)

// FuncDV is one tabulated interaction: the potential and, optionally, its
// analytic derivative. When DV is nil the derivative is taken numerically
// with central finite differences, which is accurate enough for smooth
// potentials but loses a few digits near steep walls; supply DV when you
// have it.
type FuncDV struct {
	V  func(r float64) float64
	DV func(r float64) float64
}

func (f FuncDV) deriv(r float64) float64 {
	if f.DV != nil {
		return f.DV(r)
	}
	return fd.Derivative(f.V, r, &fd.Settings{Formula: fd.Central})
}

// FromFuncs tabulates one to three interactions on npoints uniform samples
// with spacing 1/scale. One function builds a Coulomb-block table (stride
// 4), two build a dispersion/repulsion table (stride 8), three build a
// combined table (stride 12), matching what the kernel variants of the
// corresponding digits expect.
func FromFuncs(scale float32, npoints int, fns ...FuncDV) (*md.Table, error) {
	if len(fns) < 1 || len(fns) > 3 {
		return nil, md.NewCError("need 1 to 3 functions", "vftab.FromFuncs")
	}
	t := &md.Table{
		Scale:  scale,
		Stride: 4 * len(fns),
		Data:   make([]float32, 4*len(fns)*npoints),
	}
	if err := t.Check(); err != nil {
		return nil, errDecorate(err, "vftab.FromFuncs")
	}
	dx := 1 / float64(scale)
	for b, f := range fns {
		//point 0: linear continuation matching value and slope at r=dx,
		//never dereferenced by in-contract pairs but kept benign against
		//rounding at the domain edge.
		v1 := f.V(dx)
		d1 := f.deriv(dx)
		t.Data[4*b] = float32(v1 - d1*dx)
		t.Data[4*b+1] = float32(d1 * dx)
		for i := 1; i < npoints; i++ {
			r0 := float64(i) * dx
			v0 := f.V(r0)
			d0 := f.deriv(r0)
			l := i*t.Stride + 4*b
			if i == npoints-1 {
				//last point only bounds the previous segment; it is
				//evaluated at eps=0 exactly, so value and slope suffice.
				t.Data[l] = float32(v0)
				t.Data[l+1] = float32(d0 * dx)
				continue
			}
			r1 := r0 + dx
			v1 := f.V(r1)
			d1 := f.deriv(r1)
			t.Data[l] = float32(v0)
			t.Data[l+1] = float32(d0 * dx)
			t.Data[l+2] = float32(3*(v1-v0) - (2*d0+d1)*dx)
			t.Data[l+3] = float32(-2*(v1-v0) + (d0+d1)*dx)
		}
	}
	return t, nil
}

// Coulomb tabulates a plain 1/r potential (stride 4). The kernels scale
// lookups by facel*qi*qj, so the table itself is charge-free.
func Coulomb(scale float32, npoints int) (*md.Table, error) {
	t, err := FromFuncs(scale, npoints, FuncDV{
		V:  func(r float64) float64 { return 1 / r },
		DV: func(r float64) float64 { return -1 / (r * r) },
	})
	return t, errDecorate(err, "vftab.Coulomb")
}

// LJ tabulates the Lennard-Jones split (stride 8): -r^-6 dispersion and
// r^-12 repulsion, to be scaled by C6 and C12 at evaluation time.
func LJ(scale float32, npoints int) (*md.Table, error) {
	t, err := FromFuncs(scale, npoints, dispersion(), repulsion())
	return t, errDecorate(err, "vftab.LJ")
}

// CoulombLJ tabulates Coulomb, dispersion and repulsion together (stride
// 12), the layout the 33xx kernels and the Coulomb block of the 31xx
// kernels read.
func CoulombLJ(scale float32, npoints int) (*md.Table, error) {
	t, err := FromFuncs(scale, npoints,
		FuncDV{
			V:  func(r float64) float64 { return 1 / r },
			DV: func(r float64) float64 { return -1 / (r * r) },
		},
		dispersion(), repulsion())
	return t, errDecorate(err, "vftab.CoulombLJ")
}

func dispersion() FuncDV {
	return FuncDV{
		V:  func(r float64) float64 { return -math.Pow(r, -6) },
		DV: func(r float64) float64 { return 6 * math.Pow(r, -7) },
	}
}

func repulsion() FuncDV {
	return FuncDV{
		V:  func(r float64) float64 { return math.Pow(r, -12) },
		DV: func(r float64) float64 { return -12 * math.Pow(r, -13) },
	}
}

// Eval interpolates block b (in table order: Coulomb if present, then
// dispersion, then repulsion) at distance r, returning the
// potential and its r-derivative. It is the offline counterpart of the
// kernels' inline lookup, for tests and plotting; r must be inside the
// tabulated domain.
func Eval(t *md.Table, b int, r float32) (v, dv float32) {
	rt := r * t.Scale
	n := int32(rt)
	eps := rt - float32(n)
	l := n*int32(t.Stride) + 4*int32(b)
	y := t.Data[l]
	f := t.Data[l+1]
	geps := eps * t.Data[l+2]
	heps2 := eps * eps * t.Data[l+3]
	fp := f + geps + heps2
	return y + eps*fp, (fp + geps + 2*heps2) * t.Scale
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(md.Error); ok {
		e.Decorate(caller)
		return e
	}
	return md.NewCError(err.Error(), caller)
}
