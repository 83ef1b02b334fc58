/*
 * entry.go, part of gomd.
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
	md "github.com/rmera/gomd"
)

//The exported kernel family. Naming follows the Gromacs inner-loop 4-digit code:
//first digit Coulomb kind (0 none, 1 plain, 3 tabulated), second digit van
//der Waals kind likewise, third digit solvent optimization (0 none,
//1 general solvent, 2 water-other, 3 water-water). Each entry point is a
//thin compile-time instantiation of a loop skeleton with the matching term
//evaluator(s); all of them share the output contract documented on
//md.Accum. Tabulated variants take the table matching their digits: stride
//4 or 12 when only the Coulomb block is read (30xx, 31xx), stride 8 for
//vdw-only tables (03xx), stride 12 when both blocks are read (33xx).

//Term constructors. Each wires a term evaluator to the parameter set, and
//for tabulated terms to the table layout, once per kernel call.

func newLJ(p *md.Params) *ljTerm {
	return &ljTerm{typ: p.Type, nbfp: p.Nbfp, ntype2: 2 * int32(p.Ntype)}
}

func newCoul(p *md.Params) *coulTerm {
	return &coulTerm{charge: p.Charge, facel: p.Facel}
}

func newCoulLJ(p *md.Params) *coulLJTerm {
	return &coulLJTerm{charge: p.Charge, facel: p.Facel, typ: p.Type,
		nbfp: p.Nbfp, ntype2: 2 * int32(p.Ntype)}
}

func newVdwTab(p *md.Params, tab *md.Table) *vdwTabTerm {
	return &vdwTabTerm{typ: p.Type, nbfp: p.Nbfp, ntype2: 2 * int32(p.Ntype),
		tab: tab.Data, scale: tab.Scale, stride: int32(tab.Stride), voff: int32(tab.VdwOffset())}
}

func newTabCoul(p *md.Params, tab *md.Table) *tabCoulTerm {
	return &tabCoulTerm{charge: p.Charge, facel: p.Facel,
		tab: tab.Data, scale: tab.Scale, stride: int32(tab.Stride)}
}

func newTabCoulLJ(p *md.Params, tab *md.Table) *tabCoulLJTerm {
	return &tabCoulLJTerm{charge: p.Charge, facel: p.Facel, typ: p.Type,
		nbfp: p.Nbfp, ntype2: 2 * int32(p.Ntype),
		tab: tab.Data, scale: tab.Scale, stride: int32(tab.Stride)}
}

func newTabCoulVdw(p *md.Params, tab *md.Table) *tabCoulVdwTerm {
	return &tabCoulVdwTerm{charge: p.Charge, facel: p.Facel, typ: p.Type,
		nbfp: p.Nbfp, ntype2: 2 * int32(p.Ntype),
		tab: tab.Data, scale: tab.Scale, stride: int32(tab.Stride)}
}

//Lennard-Jones only.

// Inl0100 computes Lennard-Jones interactions.
func Inl0100(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	run(nl, pos, newLJ(p), out)
}

// Inl0110 computes Lennard-Jones interactions with general solvent
// batching: each partner entry of group k covers nsatoms[k] consecutive
// sites.
func Inl0110(nl *md.NeighborList, pos []float32, p *md.Params, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newLJ(p), out)
}

// Inl0300 computes tabulated van der Waals interactions.
func Inl0300(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	run(nl, pos, newVdwTab(p, tab), out)
}

// Inl0310 computes tabulated van der Waals interactions with general
// solvent batching.
func Inl0310(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newVdwTab(p, tab), out)
}

//Plain Coulomb only.

// Inl1000 computes Coulomb interactions.
func Inl1000(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	run(nl, pos, newCoul(p), out)
}

// Inl1010 computes Coulomb interactions with general solvent batching.
func Inl1010(nl *md.NeighborList, pos []float32, p *md.Params, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newCoul(p), out)
}

// Inl1020 computes Coulomb interactions between 3-site water molecules and
// other particles.
func Inl1020(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	runWater(nl, pos, newCoul(p), newCoul(p), out)
}

// Inl1030 computes Coulomb interactions between pairs of 3-site water
// molecules.
func Inl1030(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	runWaterWater(nl, pos, newCoul(p), newCoul(p), newCoul(p), out)
}

//Plain Coulomb + Lennard-Jones.

// Inl1100 computes Coulomb and Lennard-Jones interactions.
func Inl1100(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	run(nl, pos, newCoulLJ(p), out)
}

// Inl1110 computes Coulomb and Lennard-Jones interactions with general
// solvent batching.
func Inl1110(nl *md.NeighborList, pos []float32, p *md.Params, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newCoulLJ(p), out)
}

// Inl1120 computes Coulomb and Lennard-Jones interactions between 3-site
// water molecules and other particles; Lennard-Jones acts on the first
// site only.
func Inl1120(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	runWater(nl, pos, newCoulLJ(p), newCoul(p), out)
}

// Inl1130 computes Coulomb and Lennard-Jones interactions between pairs of
// 3-site water molecules; Lennard-Jones acts between the first sites only.
func Inl1130(nl *md.NeighborList, pos []float32, p *md.Params, out *md.Accum) {
	runWaterWater(nl, pos, newCoulLJ(p), newCoul(p), newCoul(p), out)
}

//Tabulated Coulomb only.

// Inl3000 computes tabulated Coulomb interactions.
func Inl3000(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	run(nl, pos, newTabCoul(p, tab), out)
}

// Inl3010 computes tabulated Coulomb interactions with general solvent
// batching.
func Inl3010(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newTabCoul(p, tab), out)
}

// Inl3020 computes tabulated Coulomb interactions between 3-site water
// molecules and other particles.
func Inl3020(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWater(nl, pos, newTabCoul(p, tab), newTabCoul(p, tab), out)
}

// Inl3030 computes tabulated Coulomb interactions between pairs of 3-site
// water molecules.
func Inl3030(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWaterWater(nl, pos, newTabCoul(p, tab), newTabCoul(p, tab), newTabCoul(p, tab), out)
}

//Tabulated Coulomb + analytic Lennard-Jones.

// Inl3100 computes tabulated Coulomb and analytic Lennard-Jones
// interactions.
func Inl3100(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	run(nl, pos, newTabCoulLJ(p, tab), out)
}

// Inl3110 computes tabulated Coulomb and analytic Lennard-Jones
// interactions with general solvent batching.
func Inl3110(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newTabCoulLJ(p, tab), out)
}

// Inl3120 computes tabulated Coulomb and analytic Lennard-Jones
// interactions between 3-site water molecules and other particles.
func Inl3120(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWater(nl, pos, newTabCoulLJ(p, tab), newTabCoul(p, tab), out)
}

// Inl3130 computes tabulated Coulomb and analytic Lennard-Jones
// interactions between pairs of 3-site water molecules.
func Inl3130(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWaterWater(nl, pos, newTabCoulLJ(p, tab), newTabCoul(p, tab), newTabCoul(p, tab), out)
}

//Fully tabulated Coulomb + van der Waals. The table must carry all three
//blocks (stride 12); the electrostatics-only site pairs of the water
//variants read just its Coulomb block.

// Inl3300 computes tabulated Coulomb and tabulated van der Waals
// interactions.
func Inl3300(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	run(nl, pos, newTabCoulVdw(p, tab), out)
}

// Inl3310 computes tabulated Coulomb and tabulated van der Waals
// interactions with general solvent batching.
func Inl3310(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, nsatoms []int32, out *md.Accum) {
	runSolvent(nl, pos, nsatoms, newTabCoulVdw(p, tab), out)
}

// Inl3320 computes tabulated Coulomb and tabulated van der Waals
// interactions between 3-site water molecules and other particles.
func Inl3320(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWater(nl, pos, newTabCoulVdw(p, tab), newTabCoul(p, tab), out)
}

// Inl3330 computes tabulated Coulomb and tabulated van der Waals
// interactions between pairs of 3-site water molecules.
func Inl3330(nl *md.NeighborList, pos []float32, p *md.Params, tab *md.Table, out *md.Accum) {
	runWaterWater(nl, pos, newTabCoulVdw(p, tab), newTabCoul(p, tab), newTabCoul(p, tab), out)
}
