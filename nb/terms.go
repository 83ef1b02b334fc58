/*
 * terms.go, part of gomd.
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

import "math"

//The seven interaction-term evaluators. Each holds the parameter slices it
//needs, caches the central-particle-dependent values in beginI (charge
//times prefactor, type-row offset) and evaluates one pair in eval,
//returning the scalar force coefficient (force vector = fscal * dr) and
//the Coulomb and van der Waals energies of the pair. The kernels are
//generic over these types, so each kernel body is specialized at compile
//time and eval calls are inlined, with no per-pair dispatch.

type pairTerm interface {
	beginI(i int32)
	eval(j int32, rsq float32) (fscal, vc, vnb float32)
}

func invsqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}

//tabEval evaluates the cubic interpolation at one 4-value table block:
//VV is the potential and FF the eps-derivative (multiply by the table
//scale for the r-derivative).
func tabEval(tab []float32, l int32, eps float32) (vv, ff float32) {
	y := tab[l]
	f := tab[l+1]
	geps := eps * tab[l+2]
	heps2 := eps * eps * tab[l+3]
	fp := f + geps + heps2
	return y + eps*fp, fp + geps + 2*heps2
}

/*Plain Lennard-Jones (vdw digit 1, Coulomb digit 0). No square root is
needed: everything is a polynomial in 1/r^2.*/

type ljTerm struct {
	typ    []int32
	nbfp   []float32
	ntype2 int32 //2*ntype, the nbfp row stride
	nti    int32
}

func (t *ljTerm) beginI(i int32) {
	t.nti = t.ntype2 * t.typ[i]
}

func (t *ljTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinvsq := 1 / rsq
	rinvsix := rinvsq * rinvsq * rinvsq
	tj := t.nti + 2*t.typ[j]
	vnb6 := t.nbfp[tj] * rinvsix
	vnb12 := t.nbfp[tj+1] * rinvsix * rinvsix
	return (12*vnb12 - 6*vnb6) * rinvsq, 0, vnb12 - vnb6
}

/*Plain Coulomb (Coulomb digit 1, vdw digit 0).*/

type coulTerm struct {
	charge []float32
	facel  float32
	iq     float32
}

func (t *coulTerm) beginI(i int32) {
	t.iq = t.facel * t.charge[i]
}

func (t *coulTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	vcoul := t.iq * t.charge[j] * rinv
	return vcoul * rinv * rinv, vcoul, 0
}

/*Plain Coulomb + Lennard-Jones (11xx), sharing one inverse square root.*/

type coulLJTerm struct {
	charge []float32
	facel  float32
	typ    []int32
	nbfp   []float32
	ntype2 int32
	iq     float32
	nti    int32
}

func (t *coulLJTerm) beginI(i int32) {
	t.iq = t.facel * t.charge[i]
	t.nti = t.ntype2 * t.typ[i]
}

func (t *coulLJTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	rinvsq := rinv * rinv
	vcoul := t.iq * t.charge[j] * rinv
	rinvsix := rinvsq * rinvsq * rinvsq
	tj := t.nti + 2*t.typ[j]
	vnb6 := t.nbfp[tj] * rinvsix
	vnb12 := t.nbfp[tj+1] * rinvsix * rinvsix
	return (vcoul + 12*vnb12 - 6*vnb6) * rinvsq, vcoul, vnb12 - vnb6
}

/*Tabulated van der Waals (03xx): dispersion and repulsion blocks looked up
and scaled by C6/C12. The dispersion table holds -r^-6, so the sum matches
the analytic vnb12-vnb6 split.*/

type vdwTabTerm struct {
	typ    []int32
	nbfp   []float32
	ntype2 int32
	tab    []float32
	scale  float32
	stride int32
	voff   int32 //offset of the dispersion block within a point
	nti    int32
}

func (t *vdwTabTerm) beginI(i int32) {
	t.nti = t.ntype2 * t.typ[i]
}

func (t *vdwTabTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	rt := rsq * rinv * t.scale
	n := int32(rt)
	eps := rt - float32(n)
	l := n*t.stride + t.voff
	vvd, ffd := tabEval(t.tab, l, eps)
	vvr, ffr := tabEval(t.tab, l+4, eps)
	tj := t.nti + 2*t.typ[j]
	c6 := t.nbfp[tj]
	c12 := t.nbfp[tj+1]
	fscal = -(c6*ffd + c12*ffr) * t.scale * rinv
	return fscal, 0, c6*vvd + c12*vvr
}

/*Tabulated Coulomb (30xx). The stride is a property of the table, not the
term: a Coulomb-only table packs 4 values per point, a combined table 12,
with the Coulomb block first either way.*/

type tabCoulTerm struct {
	charge []float32
	facel  float32
	tab    []float32
	scale  float32
	stride int32
	iq     float32
}

func (t *tabCoulTerm) beginI(i int32) {
	t.iq = t.facel * t.charge[i]
}

func (t *tabCoulTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	rt := rsq * rinv * t.scale
	n := int32(rt)
	eps := rt - float32(n)
	vv, ff := tabEval(t.tab, n*t.stride, eps)
	qq := t.iq * t.charge[j]
	return -qq * ff * t.scale * rinv, qq * vv, 0
}

/*Tabulated Coulomb with analytic Lennard-Jones (31xx).*/

type tabCoulLJTerm struct {
	charge []float32
	facel  float32
	typ    []int32
	nbfp   []float32
	ntype2 int32
	tab    []float32
	scale  float32
	stride int32
	iq     float32
	nti    int32
}

func (t *tabCoulLJTerm) beginI(i int32) {
	t.iq = t.facel * t.charge[i]
	t.nti = t.ntype2 * t.typ[i]
}

func (t *tabCoulLJTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	rinvsq := rinv * rinv
	rt := rsq * rinv * t.scale
	n := int32(rt)
	eps := rt - float32(n)
	vv, ff := tabEval(t.tab, n*t.stride, eps)
	qq := t.iq * t.charge[j]
	rinvsix := rinvsq * rinvsq * rinvsq
	tj := t.nti + 2*t.typ[j]
	vnb6 := t.nbfp[tj] * rinvsix
	vnb12 := t.nbfp[tj+1] * rinvsix * rinvsix
	fscal = (12*vnb12-6*vnb6)*rinvsq - qq*ff*t.scale*rinv
	return fscal, qq * vv, vnb12 - vnb6
}

/*Fully tabulated Coulomb + van der Waals (33xx): three 4-value blocks per
point, one r -> eps reduction shared by all three lookups.*/

type tabCoulVdwTerm struct {
	charge []float32
	facel  float32
	typ    []int32
	nbfp   []float32
	ntype2 int32
	tab    []float32
	scale  float32
	stride int32
	iq     float32
	nti    int32
}

func (t *tabCoulVdwTerm) beginI(i int32) {
	t.iq = t.facel * t.charge[i]
	t.nti = t.ntype2 * t.typ[i]
}

func (t *tabCoulVdwTerm) eval(j int32, rsq float32) (fscal, vc, vnb float32) {
	rinv := invsqrt(rsq)
	rt := rsq * rinv * t.scale
	n := int32(rt)
	eps := rt - float32(n)
	l := n * t.stride
	vvc, ffc := tabEval(t.tab, l, eps)
	vvd, ffd := tabEval(t.tab, l+4, eps)
	vvr, ffr := tabEval(t.tab, l+8, eps)
	qq := t.iq * t.charge[j]
	tj := t.nti + 2*t.typ[j]
	c6 := t.nbfp[tj]
	c12 := t.nbfp[tj+1]
	fscal = -(qq*ffc + c6*ffd + c12*ffr) * t.scale * rinv
	return fscal, qq * vvc, c6*vvd + c12*vvr
}
