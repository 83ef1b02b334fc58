/*
 * accum.go, part of gomd.
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

package md

import "fmt"

// Accum is the output contract of the nonbonded kernels: per-particle
// forces, per-shift-vector forces (for the virial) and per-energy-group
// electrostatic and van der Waals energies. Kernels only ever add to an
// Accum, never overwrite, so several calls (one per interaction-term
// combination, or one per concurrent neighbor-list chunk) can contribute
// to the same totals, and concurrent chunks can work on private Accums
// that are Merged afterwards.
type Accum struct {
	F      []float32 //3*natoms force components
	Fshift []float32 //3*nshift shift-force components
	Vc     []float32 //per-group-pair Coulomb energy
	Vnb    []float32 //per-group-pair van der Waals energy
}

// NewAccum returns a zeroed accumulator covering natoms particles, nshift
// shift vectors and ngroups energy-group pairs.
func NewAccum(natoms, nshift, ngroups int) *Accum {
	return &Accum{
		F:      make([]float32, 3*natoms),
		Fshift: make([]float32, 3*nshift),
		Vc:     make([]float32, ngroups),
		Vnb:    make([]float32, ngroups),
	}
}

// Like returns a zeroed accumulator with the same dimensions as the
// receiver. It is what a concurrent worker uses to build its private copy.
func (a *Accum) Like() *Accum {
	return &Accum{
		F:      make([]float32, len(a.F)),
		Fshift: make([]float32, len(a.Fshift)),
		Vc:     make([]float32, len(a.Vc)),
		Vnb:    make([]float32, len(a.Vnb)),
	}
}

// Zero clears all components in place.
func (a *Accum) Zero() {
	clear(a.F)
	clear(a.Fshift)
	clear(a.Vc)
	clear(a.Vnb)
}

// Merge adds b into the receiver element-wise. This is the reduction step
// of the chunked parallel evaluation; since kernel outputs are purely
// additive, merging private accumulators is equivalent to having run the
// chunks serially against one.
func (a *Accum) Merge(b *Accum) error {
	if len(a.F) != len(b.F) || len(a.Fshift) != len(b.Fshift) || len(a.Vc) != len(b.Vc) || len(a.Vnb) != len(b.Vnb) {
		return NewCError(fmt.Sprintf("dimension mismatch: %d/%d/%d/%d vs %d/%d/%d/%d",
			len(a.F), len(a.Fshift), len(a.Vc), len(a.Vnb),
			len(b.F), len(b.Fshift), len(b.Vc), len(b.Vnb)), "Accum.Merge")
	}
	for i, v := range b.F {
		a.F[i] += v
	}
	for i, v := range b.Fshift {
		a.Fshift[i] += v
	}
	for i, v := range b.Vc {
		a.Vc[i] += v
	}
	for i, v := range b.Vnb {
		a.Vnb[i] += v
	}
	return nil
}
