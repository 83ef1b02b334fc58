/*
 * water_test.go, part of gomd.
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
	"testing"

	md "github.com/rmera/gomd"
	"github.com/rmera/gomd/vftab"
)

//waterSystem builds nmol 3-site waters (first site carries the LJ type,
//equal-charge hydrogens) followed by nother plain particles. The
//hydrogen type has zero C6/C12, so a plain kernel on the expanded site
//list reproduces what the water kernels compute.
func waterSystem(nmol, nother int) ([]float32, *md.Params) {
	n := 3*nmol + nother
	pos := make([]float32, 0, 3*n)
	charge := make([]float32, 0, n)
	typ := make([]int32, 0, n)
	for m := 0; m < nmol; m++ {
		ox := 0.5 * float32(m%2)
		oy := 0.5 * float32((m/2)%2)
		oz := 0.5 * float32(m/4)
		pos = append(pos, ox, oy, oz)
		pos = append(pos, ox+0.1, oy, oz)
		pos = append(pos, ox, oy+0.1, oz)
		charge = append(charge, -0.82, 0.41, 0.41)
		typ = append(typ, 0, 1, 1)
	}
	for i := 0; i < nother; i++ {
		pos = append(pos, 0.25+0.5*float32(i%2), 0.25+0.5*float32((i/2)%2), 1.1)
		q := float32(0.3)
		if i%2 == 1 {
			q = -0.3
		}
		charge = append(charge, q)
		typ = append(typ, 0)
	}
	nbfp, err := md.CombineGeometric([]float64{2.6e-3, 0}, []float64{2.6e-6, 0})
	if err != nil {
		panic(err.Error())
	}
	p, err := md.NewParams(md.ElectricConversion, 2, nbfp, charge, typ)
	if err != nil {
		panic(err.Error())
	}
	return pos, p
}

//siteExpanded turns a molecule-batched water list into a plain site-pair
//list: nsites i-site groups per original group, each against all partner
//sites (jsites per partner entry).
func siteExpanded(nl *md.NeighborList, nsites, jsites int32) *md.NeighborList {
	e := &md.NeighborList{Shiftvec: nl.Shiftvec}
	e.Jindex = append(e.Jindex, 0)
	for k := 0; k < nl.Len(); k++ {
		for s := int32(0); s < nsites; s++ {
			e.Iinr = append(e.Iinr, nl.Iinr[k]+s)
			for _, j := range nl.Jjnr[nl.Jindex[k]:nl.Jindex[k+1]] {
				for t := int32(0); t < jsites; t++ {
					e.Jjnr = append(e.Jjnr, j+t)
				}
			}
			e.Jindex = append(e.Jindex, int32(len(e.Jjnr)))
			e.Shift = append(e.Shift, nl.Shift[k])
			e.Gid = append(e.Gid, nl.Gid[k])
		}
	}
	return e
}

func TestWaterOtherEquivalence(Te *testing.T) {
	sv := unitShiftvec()
	pos, p := waterSystem(3, 4)
	nl := &md.NeighborList{
		Iinr:     []int32{0, 3, 6},
		Jindex:   []int32{0, 4, 8, 12},
		Jjnr:     []int32{9, 10, 11, 12, 9, 10, 11, 12, 9, 10, 11, 12},
		Shift:    []int32{md.CentralShift, md.CentralShift, md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0, 0, 0},
	}
	natoms := 13
	water := md.NewAccum(natoms, md.NShift, 1)
	plain := md.NewAccum(natoms, md.NShift, 1)
	Inl1120(nl, pos, p, water)
	Inl1100(siteExpanded(nl, 3, 1), pos, p, plain)
	if d := maxRelDev(water.F, plain.F); d > 1e-4 {
		Te.Errorf("water-other forces deviate from the plain kernel by %g", d)
	}
	if !closeEnough(water.Vc[0], plain.Vc[0], 1e-4) || !closeEnough(water.Vnb[0], plain.Vnb[0], 1e-4) {
		Te.Errorf("water-other energies Vc=%g Vnb=%g, plain Vc=%g Vnb=%g",
			water.Vc[0], water.Vnb[0], plain.Vc[0], plain.Vnb[0])
	}
}

func TestWaterWaterEquivalence(Te *testing.T) {
	sv := unitShiftvec()
	pos, p := waterSystem(3, 0)
	//molecule 0 against molecules 1 and 2, by first site
	nl := &md.NeighborList{
		Iinr:     []int32{0},
		Jindex:   []int32{0, 2},
		Jjnr:     []int32{3, 6},
		Shift:    []int32{md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0},
	}
	natoms := 9
	water := md.NewAccum(natoms, md.NShift, 1)
	plain := md.NewAccum(natoms, md.NShift, 1)
	Inl1130(nl, pos, p, water)
	Inl1100(siteExpanded(nl, 3, 3), pos, p, plain)
	if d := maxRelDev(water.F, plain.F); d > 1e-4 {
		Te.Errorf("water-water forces deviate from the plain kernel by %g", d)
	}
	if !closeEnough(water.Vc[0], plain.Vc[0], 1e-4) || !closeEnough(water.Vnb[0], plain.Vnb[0], 1e-4) {
		Te.Errorf("water-water energies Vc=%g Vnb=%g, plain Vc=%g Vnb=%g",
			water.Vc[0], water.Vnb[0], plain.Vc[0], plain.Vnb[0])
	}
	//momentum conservation holds for the unrolled loops too
	var sum, norm float64
	for _, v := range water.F {
		sum += float64(v)
		norm += float64(v) * float64(v)
	}
	if sum*sum > 1e-10*(1+norm) {
		Te.Errorf("water-water net force is %g", sum)
	}
}

func TestTabulatedWaterEquivalence(Te *testing.T) {
	sv := unitShiftvec()
	pos, p := waterSystem(3, 0)
	tab, err := vftab.Coulomb(2000, 4001)
	if err != nil {
		Te.Fatal(err)
	}
	nl := &md.NeighborList{
		Iinr:     []int32{0},
		Jindex:   []int32{0, 2},
		Jjnr:     []int32{3, 6},
		Shift:    []int32{md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0},
	}
	water := md.NewAccum(9, md.NShift, 1)
	plain := md.NewAccum(9, md.NShift, 1)
	Inl3030(nl, pos, p, tab, water)
	Inl3000(siteExpanded(nl, 3, 3), pos, p, tab, plain)
	if d := maxRelDev(water.F, plain.F); d > 1e-4 {
		Te.Errorf("tabulated water-water forces deviate by %g", d)
	}
	if !closeEnough(water.Vc[0], plain.Vc[0], 1e-4) {
		Te.Errorf("tabulated water-water Vc=%g, plain %g", water.Vc[0], plain.Vc[0])
	}
}

func TestWaterEnergyGroups(Te *testing.T) {
	//two i-molecules in different energy groups must land their energies
	//in different slots.
	sv := unitShiftvec()
	pos, p := waterSystem(3, 0)
	nl := &md.NeighborList{
		Iinr:     []int32{0, 3},
		Jindex:   []int32{0, 1, 2},
		Jjnr:     []int32{6, 6},
		Shift:    []int32{md.CentralShift, md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0, 1},
	}
	out := md.NewAccum(9, md.NShift, 2)
	Inl1130(nl, pos, p, out)
	if out.Vc[0] == 0 || out.Vc[1] == 0 {
		Te.Error("an energy-group slot was left empty")
	}
	if out.Vc[0] == out.Vc[1] {
		Te.Error("distinct group interactions produced identical energies")
	}
}
