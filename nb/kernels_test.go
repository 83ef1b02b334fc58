/*
 * kernels_test.go, part of gomd.
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
	"math"
	"math/rand"
	"testing"

	md "github.com/rmera/gomd"
	"github.com/rmera/gomd/vftab"
)

//Test helpers: small systems with controlled minimum separations, so
//float32 tolerances stay meaningful.

func unitShiftvec() []float32 {
	sv, err := md.ShiftVectors([]float64{3, 0, 0, 0, 3, 0, 0, 0, 3})
	if err != nil {
		panic(err.Error())
	}
	return sv
}

//gridSystem puts n particles on a jittered cubic grid (spacing 0.4,
//jitter 0.05) with alternating charges and two LJ types.
func gridSystem(n int, seed int64) ([]float32, *md.Params) {
	rnd := rand.New(rand.NewSource(seed))
	pos := make([]float32, 3*n)
	charge := make([]float32, n)
	typ := make([]int32, n)
	side := 1
	for side*side*side < n {
		side++
	}
	for i := 0; i < n; i++ {
		pos[3*i] = 0.4*float32(i%side) + 0.05*rnd.Float32()
		pos[3*i+1] = 0.4*float32((i/side)%side) + 0.05*rnd.Float32()
		pos[3*i+2] = 0.4*float32(i/(side*side)) + 0.05*rnd.Float32()
		charge[i] = 0.5
		if i%2 == 1 {
			charge[i] = -0.5
		}
		typ[i] = int32(i % 2)
	}
	nbfp, err := md.CombineGeometric([]float64{2.5e-3, 1e-3}, []float64{2.5e-6, 1e-6})
	if err != nil {
		panic(err.Error())
	}
	p, err := md.NewParams(md.ElectricConversion, 2, nbfp, charge, typ)
	if err != nil {
		panic(err.Error())
	}
	return pos, p
}

//allPairsList enumerates every i<j pair, one group per central particle,
//all in the home image and one energy group.
func allPairsList(n int, sv []float32) *md.NeighborList {
	nl := &md.NeighborList{Shiftvec: sv}
	nl.Jindex = append(nl.Jindex, 0)
	for i := 0; i < n-1; i++ {
		nl.Iinr = append(nl.Iinr, int32(i))
		for j := i + 1; j < n; j++ {
			nl.Jjnr = append(nl.Jjnr, int32(j))
		}
		nl.Jindex = append(nl.Jindex, int32(len(nl.Jjnr)))
		nl.Shift = append(nl.Shift, md.CentralShift)
		nl.Gid = append(nl.Gid, 0)
	}
	return nl
}

func pairList(i, j int32, sv []float32) *md.NeighborList {
	return &md.NeighborList{
		Iinr:     []int32{i},
		Jindex:   []int32{0, 1},
		Jjnr:     []int32{j},
		Shift:    []int32{md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0},
	}
}

func closeEnough(a, b, tol float32) bool {
	d := float64(a - b)
	return math.Abs(d) <= float64(tol)*(1+math.Abs(float64(a))+math.Abs(float64(b)))
}

func maxRelDev(a, b []float32) float64 {
	var worst float64
	for i := range a {
		d := math.Abs(float64(a[i] - b[i]))
		scale := 1 + math.Abs(float64(a[i])) + math.Abs(float64(b[i]))
		if d/scale > worst {
			worst = d / scale
		}
	}
	return worst
}

func TestCoulombPair(Te *testing.T) {
	sv := unitShiftvec()
	pos := []float32{0, 0, 0, 0.5, 0, 0}
	p, err := md.NewParams(1, 1, []float32{0, 0}, []float32{1, 1}, []int32{0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	out := md.NewAccum(2, md.NShift, 1)
	Inl1000(pairList(0, 1, sv), pos, p, out)
	if !closeEnough(out.Vc[0], 2, 1e-6) {
		Te.Errorf("Vc=%g, want 2", out.Vc[0])
	}
	//force on i is repulsive, along -x, magnitude qq/r^2 = 4
	if !closeEnough(out.F[0], -4, 1e-6) || out.F[1] != 0 || out.F[2] != 0 {
		Te.Errorf("force on i is (%g,%g,%g), want (-4,0,0)", out.F[0], out.F[1], out.F[2])
	}
	//momentum conservation is exact for a single pair
	if out.F[0]+out.F[3] != 0 || out.F[1]+out.F[4] != 0 || out.F[2]+out.F[5] != 0 {
		Te.Error("pair forces are not exact negatives")
	}
	//the home-image shift force equals the i-side force
	if out.Fshift[3*md.CentralShift] != out.F[0] {
		Te.Error("shift force does not track the central force")
	}
}

func TestLJPair(Te *testing.T) {
	sv := unitShiftvec()
	r := 0.3
	pos := []float32{0, 0, 0, float32(r), 0, 0}
	c6, c12 := 1e-3, 1e-6
	p, err := md.NewParams(1, 1, []float32{float32(c6), float32(c12)}, []float32{0, 0}, []int32{0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	out := md.NewAccum(2, md.NShift, 1)
	Inl0100(pairList(0, 1, sv), pos, p, out)
	wantV := c12*math.Pow(r, -12) - c6*math.Pow(r, -6)
	if !closeEnough(out.Vnb[0], float32(wantV), 1e-5) {
		Te.Errorf("Vnb=%g, want %g", out.Vnb[0], wantV)
	}
	wantF := (12*c12*math.Pow(r, -12) - 6*c6*math.Pow(r, -6)) / r
	//force on i along -x when repulsion dominates... sign follows wantF
	if !closeEnough(out.F[0], float32(-wantF), 1e-5) {
		Te.Errorf("Fx=%g, want %g", out.F[0], -wantF)
	}
	if out.Vc[0] != 0 {
		Te.Error("LJ-only kernel produced Coulomb energy")
	}
}

func TestEmptyPartnerRange(Te *testing.T) {
	sv := unitShiftvec()
	nl := &md.NeighborList{
		Iinr:     []int32{0, 1},
		Jindex:   []int32{0, 0, 0},
		Jjnr:     []int32{},
		Shift:    []int32{md.CentralShift, md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0, 0},
	}
	pos, p := gridSystem(2, 1)
	out := md.NewAccum(2, md.NShift, 1)
	Inl1100(nl, pos, p, out)
	for i, v := range out.F {
		if v != 0 {
			Te.Fatalf("F[%d]=%g after empty ranges", i, v)
		}
	}
	if out.Vc[0] != 0 || out.Vnb[0] != 0 {
		Te.Error("empty ranges produced energy")
	}
}

func TestMomentumConservation(Te *testing.T) {
	sv := unitShiftvec()
	pos, p := gridSystem(20, 7)
	nl := allPairsList(20, sv)
	out := md.NewAccum(20, md.NShift, 1)
	Inl1100(nl, pos, p, out)
	var sum, norm [3]float64
	for i := 0; i < 20; i++ {
		for c := 0; c < 3; c++ {
			sum[c] += float64(out.F[3*i+c])
			norm[c] += math.Abs(float64(out.F[3*i+c]))
		}
	}
	for c := 0; c < 3; c++ {
		if math.Abs(sum[c]) > 1e-5*(1+norm[c]) {
			Te.Errorf("net force component %d is %g (total magnitude %g)", c, sum[c], norm[c])
		}
	}
}

func TestAdditiveOutputs(Te *testing.T) {
	sv := unitShiftvec()
	pos, p := gridSystem(12, 3)
	nl := allPairsList(12, sv)
	once := md.NewAccum(12, md.NShift, 1)
	Inl1100(nl, pos, p, once)
	//two single calls merged are exactly twice one call
	a := once.Like()
	b := once.Like()
	Inl1100(nl, pos, p, a)
	Inl1100(nl, pos, p, b)
	if err := a.Merge(b); err != nil {
		Te.Fatal(err)
	}
	for i := range a.F {
		if a.F[i] != 2*once.F[i] {
			Te.Fatalf("merged F[%d]=%g, want %g", i, a.F[i], 2*once.F[i])
		}
	}
	if a.Vc[0] != 2*once.Vc[0] || a.Vnb[0] != 2*once.Vnb[0] {
		Te.Error("merged energies are not twice the single call")
	}
	//accumulating in place never overwrites
	twice := once.Like()
	Inl1100(nl, pos, p, twice)
	Inl1100(nl, pos, p, twice)
	if maxRelDev(twice.F, a.F) > 1e-5 {
		Te.Error("second in-place call did not accumulate onto the first")
	}
}

func TestShiftInvariance(Te *testing.T) {
	box := []float64{3, 0, 0, 0, 3, 0, 0, 0, 3}
	sv, err := md.ShiftVectors(box)
	if err != nil {
		Te.Fatal(err)
	}
	pos, p := gridSystem(8, 11)
	//one group, central particle 0 against everybody else; 0 is nobody's
	//partner, so moving it a lattice vector down in x while pointing the
	//group's shift at the +x image must leave everything unchanged.
	nl := allPairsList(8, sv).Slice(0, 1)
	shifted := make([]float32, len(pos))
	copy(shifted, pos)
	shifted[0] -= float32(box[0])
	moved := *nl
	moved.Shift = []int32{md.CentralShift + 9} //+1 in the first box vector
	ref := md.NewAccum(8, md.NShift, 1)
	got := md.NewAccum(8, md.NShift, 1)
	Inl1100(nl, pos, p, ref)
	Inl1100(&moved, shifted, p, got)
	if maxRelDev(ref.F, got.F) > 1e-5 {
		Te.Errorf("forces changed under a lattice translation, dev %g", maxRelDev(ref.F, got.F))
	}
	if !closeEnough(ref.Vc[0], got.Vc[0], 1e-5) || !closeEnough(ref.Vnb[0], got.Vnb[0], 1e-5) {
		Te.Error("energies changed under a lattice translation")
	}
	//the shift bookkeeping moves with the image index
	if got.Fshift[3*(md.CentralShift+9)] != got.F[0] {
		Te.Error("shift force was not booked under the new image")
	}
}

func TestTabulatedCoulombScenario(Te *testing.T) {
	//two unit charges at the first tabulated sample point of a 1/r table
	//with scale 500: energy must be facel*q1*q2/r and force q1*q2/r^2
	//along the separation, within table resolution.
	sv := unitShiftvec()
	tab, err := vftab.Coulomb(500, 600)
	if err != nil {
		Te.Fatal(err)
	}
	r := 1.0 / 500.0
	pos := []float32{0, 0, 0, float32(r), 0, 0}
	p, err := md.NewParams(1, 1, []float32{0, 0}, []float32{1, 1}, []int32{0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	out := md.NewAccum(2, md.NShift, 1)
	Inl3000(pairList(0, 1, sv), pos, p, tab, out)
	wantV := 1 / r
	if math.Abs(float64(out.Vc[0])-wantV)/wantV > 1e-3 {
		Te.Errorf("Vc=%g, want %g", out.Vc[0], wantV)
	}
	wantF := 1 / (r * r)
	if math.Abs(-float64(out.F[0])-wantF)/wantF > 1e-3 {
		Te.Errorf("Fx=%g, want %g", out.F[0], -wantF)
	}
	if out.F[1] != 0 || out.F[2] != 0 {
		Te.Error("force is not along the separation vector")
	}
}

func TestTabulatedMatchesAnalytic(Te *testing.T) {
	//a fine 1/r + LJ table must reproduce the analytic kernels within
	//float32 noise on a generic system.
	sv := unitShiftvec()
	pos, p := gridSystem(16, 23)
	nl := allPairsList(16, sv)
	tab, err := vftab.CoulombLJ(2000, 4001) //covers r up to 2.0
	if err != nil {
		Te.Fatal(err)
	}
	analytic := md.NewAccum(16, md.NShift, 1)
	tabulated := md.NewAccum(16, md.NShift, 1)
	Inl1100(nl, pos, p, analytic)
	Inl3300(nl, pos, p, tab, tabulated)
	if d := maxRelDev(analytic.F, tabulated.F); d > 1e-3 {
		Te.Errorf("tabulated forces deviate by %g", d)
	}
	if !closeEnough(analytic.Vc[0], tabulated.Vc[0], 1e-3) {
		Te.Errorf("Vc: analytic %g, tabulated %g", analytic.Vc[0], tabulated.Vc[0])
	}
	if !closeEnough(analytic.Vnb[0], tabulated.Vnb[0], 1e-3) {
		Te.Errorf("Vnb: analytic %g, tabulated %g", analytic.Vnb[0], tabulated.Vnb[0])
	}
	//and the mixed variant: tabulated Coulomb with analytic LJ
	mixed := md.NewAccum(16, md.NShift, 1)
	Inl3100(nl, pos, p, tab, mixed)
	if d := maxRelDev(analytic.F, mixed.F); d > 1e-3 {
		Te.Errorf("mixed-variant forces deviate by %g", d)
	}
}

func TestSolventBatchEquivalence(Te *testing.T) {
	//a batched list over 3-site molecules must match the plain kernel on
	//the site-expanded list exactly: same operations in the same order.
	sv := unitShiftvec()
	pos, p := gridSystem(13, 31)
	//central particle 12, partners: molecules starting at 0, 3, 6, 9
	batched := &md.NeighborList{
		Iinr:     []int32{12},
		Jindex:   []int32{0, 4},
		Jjnr:     []int32{0, 3, 6, 9},
		Shift:    []int32{md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0},
	}
	nsatoms := []int32{3}
	expanded := &md.NeighborList{
		Iinr:     []int32{12},
		Jindex:   []int32{0, 12},
		Jjnr:     []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Shift:    []int32{md.CentralShift},
		Shiftvec: sv,
		Gid:      []int32{0},
	}
	a := md.NewAccum(13, md.NShift, 1)
	b := md.NewAccum(13, md.NShift, 1)
	Inl1110(batched, pos, p, nsatoms, a)
	Inl1100(expanded, pos, p, b)
	for i := range a.F {
		if a.F[i] != b.F[i] {
			Te.Fatalf("F[%d]: batched %g, plain %g", i, a.F[i], b.F[i])
		}
	}
	if a.Vc[0] != b.Vc[0] || a.Vnb[0] != b.Vnb[0] {
		Te.Error("batched energies differ from the plain kernel's")
	}
	//same property for the LJ-only and tabulated-Coulomb families
	tab, err := vftab.Coulomb(2000, 4001)
	if err != nil {
		Te.Fatal(err)
	}
	a.Zero()
	b.Zero()
	Inl3010(batched, pos, p, tab, nsatoms, a)
	Inl3000(expanded, pos, p, tab, b)
	for i := range a.F {
		if a.F[i] != b.F[i] {
			Te.Fatalf("tabulated F[%d]: batched %g, plain %g", i, a.F[i], b.F[i])
		}
	}
}
