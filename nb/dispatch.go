/*
 * dispatch.go, part of gomd.
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

package nb

import (
	"fmt"

	md "github.com/rmera/gomd"
)

// Coul enumerates the electrostatics families of the kernel code's first
// digit.
type Coul int

const (
	CoulNone  Coul = 0
	CoulPlain Coul = 1
	CoulTab   Coul = 3
)

// Vdw enumerates the van der Waals families of the second digit.
type Vdw int

const (
	VdwNone Vdw = 0
	VdwLJ   Vdw = 1
	VdwTab  Vdw = 3
)

// Solvent enumerates the solvent-optimization sub-variants of the third
// digit.
type Solvent int

const (
	SolvNone       Solvent = 0
	SolvGeneral    Solvent = 1
	SolvWater      Solvent = 2
	SolvWaterWater Solvent = 3
)

// Code returns the 4-digit kernel code for a variant combination, e.g.
// 1130 for plain Coulomb + Lennard-Jones, water-water batched.
func Code(c Coul, v Vdw, s Solvent) int {
	return int(c)*1000 + int(v)*100 + int(s)*10
}

// Input bundles the per-call kernel arguments behind the uniform signature
// that Kernel returns. Tab is only read by tabulated variants, NsAtoms only
// by general-solvent ones; the rest is required by all.
type Input struct {
	List    *md.NeighborList
	Pos     []float32
	Par     *md.Params
	Tab     *md.Table
	NsAtoms []int32
}

// Func is a kernel entry point wrapped to a uniform signature.
type Func func(in *Input, out *md.Accum)

// Kernel resolves a variant combination to its entry point, once, before
// any hot loop runs. Combinations outside the family (no interaction at
// all, or water batching without electrostatics) return an error.
func Kernel(c Coul, v Vdw, s Solvent) (Func, error) {
	switch Code(c, v, s) {
	case 100:
		return func(in *Input, out *md.Accum) { Inl0100(in.List, in.Pos, in.Par, out) }, nil
	case 110:
		return func(in *Input, out *md.Accum) { Inl0110(in.List, in.Pos, in.Par, in.NsAtoms, out) }, nil
	case 300:
		return func(in *Input, out *md.Accum) { Inl0300(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 310:
		return func(in *Input, out *md.Accum) { Inl0310(in.List, in.Pos, in.Par, in.Tab, in.NsAtoms, out) }, nil
	case 1000:
		return func(in *Input, out *md.Accum) { Inl1000(in.List, in.Pos, in.Par, out) }, nil
	case 1010:
		return func(in *Input, out *md.Accum) { Inl1010(in.List, in.Pos, in.Par, in.NsAtoms, out) }, nil
	case 1020:
		return func(in *Input, out *md.Accum) { Inl1020(in.List, in.Pos, in.Par, out) }, nil
	case 1030:
		return func(in *Input, out *md.Accum) { Inl1030(in.List, in.Pos, in.Par, out) }, nil
	case 1100:
		return func(in *Input, out *md.Accum) { Inl1100(in.List, in.Pos, in.Par, out) }, nil
	case 1110:
		return func(in *Input, out *md.Accum) { Inl1110(in.List, in.Pos, in.Par, in.NsAtoms, out) }, nil
	case 1120:
		return func(in *Input, out *md.Accum) { Inl1120(in.List, in.Pos, in.Par, out) }, nil
	case 1130:
		return func(in *Input, out *md.Accum) { Inl1130(in.List, in.Pos, in.Par, out) }, nil
	case 3000:
		return func(in *Input, out *md.Accum) { Inl3000(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3010:
		return func(in *Input, out *md.Accum) { Inl3010(in.List, in.Pos, in.Par, in.Tab, in.NsAtoms, out) }, nil
	case 3020:
		return func(in *Input, out *md.Accum) { Inl3020(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3030:
		return func(in *Input, out *md.Accum) { Inl3030(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3100:
		return func(in *Input, out *md.Accum) { Inl3100(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3110:
		return func(in *Input, out *md.Accum) { Inl3110(in.List, in.Pos, in.Par, in.Tab, in.NsAtoms, out) }, nil
	case 3120:
		return func(in *Input, out *md.Accum) { Inl3120(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3130:
		return func(in *Input, out *md.Accum) { Inl3130(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3300:
		return func(in *Input, out *md.Accum) { Inl3300(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3310:
		return func(in *Input, out *md.Accum) { Inl3310(in.List, in.Pos, in.Par, in.Tab, in.NsAtoms, out) }, nil
	case 3320:
		return func(in *Input, out *md.Accum) { Inl3320(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	case 3330:
		return func(in *Input, out *md.Accum) { Inl3330(in.List, in.Pos, in.Par, in.Tab, out) }, nil
	}
	return nil, md.NewCError(fmt.Sprintf("no kernel for combination coul=%d vdw=%d solvent=%d", c, v, s), "nb.Kernel")
}
