/*
 * water.go, part of gomd.
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

//Water-optimized skeletons (third digit 2 and 3). The central group is a
//rigid 3-site solvent molecule: Iinr[k] names its first site (the oxygen in
//the water models these exist for) and the two following particle ids are
//its hydrogen sites. Contract, inherited from the models that motivate the
//unrolling: only the first site carries a van der Waals type, and the two
//hydrogen sites carry equal charges, so one charge load serves both. The
//unrolled site block reuses each partner's coordinates across the three
//(or nine) site pairs, which is the entire point of these variants; the
//output contract is identical to the general skeleton's.

//runWater handles water-vs-other (x20): three electrostatic site pairs per
//partner, vdw on the first site only. to evaluates the full first-site
//interaction, th the electrostatics-only hydrogen interaction.
func runWater[TO, TH pairTerm](nl *md.NeighborList, pos []float32, to TO, th TH, out *md.Accum) {
	for k := 0; k < len(nl.Iinr); k++ {
		io := nl.Iinr[k]
		is3 := 3 * nl.Shift[k]
		shx := nl.Shiftvec[is3]
		shy := nl.Shiftvec[is3+1]
		shz := nl.Shiftvec[is3+2]
		i3 := 3 * io
		ox := shx + pos[i3]
		oy := shy + pos[i3+1]
		oz := shz + pos[i3+2]
		h1x := shx + pos[i3+3]
		h1y := shy + pos[i3+4]
		h1z := shz + pos[i3+5]
		h2x := shx + pos[i3+6]
		h2y := shy + pos[i3+7]
		h2z := shz + pos[i3+8]
		to.beginI(io)
		th.beginI(io + 1)
		var fox, foy, foz float32
		var f1x, f1y, f1z float32
		var f2x, f2y, f2z float32
		var vctot, vnbtot float32
		for n := nl.Jindex[k]; n < nl.Jindex[k+1]; n++ {
			jnr := nl.Jjnr[n]
			j3 := 3 * jnr
			jx := pos[j3]
			jy := pos[j3+1]
			jz := pos[j3+2]

			dx0 := ox - jx
			dy0 := oy - jy
			dz0 := oz - jz
			fs0, vc0, vnb0 := to.eval(jnr, dx0*dx0+dy0*dy0+dz0*dz0)

			dx1 := h1x - jx
			dy1 := h1y - jy
			dz1 := h1z - jz
			fs1, vc1, _ := th.eval(jnr, dx1*dx1+dy1*dy1+dz1*dz1)

			dx2 := h2x - jx
			dy2 := h2y - jy
			dz2 := h2z - jz
			fs2, vc2, _ := th.eval(jnr, dx2*dx2+dy2*dy2+dz2*dz2)

			vctot += vc0 + vc1 + vc2
			vnbtot += vnb0

			tx0 := fs0 * dx0
			ty0 := fs0 * dy0
			tz0 := fs0 * dz0
			tx1 := fs1 * dx1
			ty1 := fs1 * dy1
			tz1 := fs1 * dz1
			tx2 := fs2 * dx2
			ty2 := fs2 * dy2
			tz2 := fs2 * dz2
			fox += tx0
			foy += ty0
			foz += tz0
			f1x += tx1
			f1y += ty1
			f1z += tz1
			f2x += tx2
			f2y += ty2
			f2z += tz2
			out.F[j3] -= tx0 + tx1 + tx2
			out.F[j3+1] -= ty0 + ty1 + ty2
			out.F[j3+2] -= tz0 + tz1 + tz2
		}
		out.F[i3] += fox
		out.F[i3+1] += foy
		out.F[i3+2] += foz
		out.F[i3+3] += f1x
		out.F[i3+4] += f1y
		out.F[i3+5] += f1z
		out.F[i3+6] += f2x
		out.F[i3+7] += f2y
		out.F[i3+8] += f2z
		out.Fshift[is3] += fox + f1x + f2x
		out.Fshift[is3+1] += foy + f1y + f2y
		out.Fshift[is3+2] += foz + f1z + f2z
		gid := nl.Gid[k]
		out.Vc[gid] += vctot
		out.Vnb[gid] += vnbtot
	}
}

//runWaterWater handles water-vs-water (x30): each Jjnr entry names the
//first site of a partner water and the block evaluates the nine site-site
//electrostatic pairs, with vdw only between the two first sites. oo is the
//full first-site/first-site term, oh the electrostatics-only term with the
//first site's charge on the i side, and hx the electrostatics-only term
//with the hydrogen charge on the i side, shared by both hydrogen sites.
func runWaterWater[TOO, TOH, THX pairTerm](nl *md.NeighborList, pos []float32, oo TOO, oh TOH, hx THX, out *md.Accum) {
	for k := 0; k < len(nl.Iinr); k++ {
		io := nl.Iinr[k]
		is3 := 3 * nl.Shift[k]
		shx := nl.Shiftvec[is3]
		shy := nl.Shiftvec[is3+1]
		shz := nl.Shiftvec[is3+2]
		i3 := 3 * io
		ox := shx + pos[i3]
		oy := shy + pos[i3+1]
		oz := shz + pos[i3+2]
		h1x := shx + pos[i3+3]
		h1y := shy + pos[i3+4]
		h1z := shz + pos[i3+5]
		h2x := shx + pos[i3+6]
		h2y := shy + pos[i3+7]
		h2z := shz + pos[i3+8]
		oo.beginI(io)
		oh.beginI(io)
		hx.beginI(io + 1)
		var fox, foy, foz float32
		var f1x, f1y, f1z float32
		var f2x, f2y, f2z float32
		var vctot, vnbtot float32
		for n := nl.Jindex[k]; n < nl.Jindex[k+1]; n++ {
			jo := nl.Jjnr[n]
			j3 := 3 * jo
			jox := pos[j3]
			joy := pos[j3+1]
			joz := pos[j3+2]
			j1x := pos[j3+3]
			j1y := pos[j3+4]
			j1z := pos[j3+5]
			j2x := pos[j3+6]
			j2y := pos[j3+7]
			j2z := pos[j3+8]

			//i first site against the three j sites
			dx := ox - jox
			dy := oy - joy
			dz := oz - joz
			fs, vc, vnb := oo.eval(jo, dx*dx+dy*dy+dz*dz)
			vctot += vc
			vnbtot += vnb
			tx := fs * dx
			ty := fs * dy
			tz := fs * dz
			fox += tx
			foy += ty
			foz += tz
			fjox := -tx
			fjoy := -ty
			fjoz := -tz

			dx = ox - j1x
			dy = oy - j1y
			dz = oz - j1z
			fs, vc, _ = oh.eval(jo+1, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			fox += tx
			foy += ty
			foz += tz
			fj1x := -tx
			fj1y := -ty
			fj1z := -tz

			dx = ox - j2x
			dy = oy - j2y
			dz = oz - j2z
			fs, vc, _ = oh.eval(jo+2, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			fox += tx
			foy += ty
			foz += tz
			fj2x := -tx
			fj2y := -ty
			fj2z := -tz

			//first i hydrogen site
			dx = h1x - jox
			dy = h1y - joy
			dz = h1z - joz
			fs, vc, _ = hx.eval(jo, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f1x += tx
			f1y += ty
			f1z += tz
			fjox -= tx
			fjoy -= ty
			fjoz -= tz

			dx = h1x - j1x
			dy = h1y - j1y
			dz = h1z - j1z
			fs, vc, _ = hx.eval(jo+1, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f1x += tx
			f1y += ty
			f1z += tz
			fj1x -= tx
			fj1y -= ty
			fj1z -= tz

			dx = h1x - j2x
			dy = h1y - j2y
			dz = h1z - j2z
			fs, vc, _ = hx.eval(jo+2, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f1x += tx
			f1y += ty
			f1z += tz
			fj2x -= tx
			fj2y -= ty
			fj2z -= tz

			//second i hydrogen site
			dx = h2x - jox
			dy = h2y - joy
			dz = h2z - joz
			fs, vc, _ = hx.eval(jo, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f2x += tx
			f2y += ty
			f2z += tz
			fjox -= tx
			fjoy -= ty
			fjoz -= tz

			dx = h2x - j1x
			dy = h2y - j1y
			dz = h2z - j1z
			fs, vc, _ = hx.eval(jo+1, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f2x += tx
			f2y += ty
			f2z += tz
			fj1x -= tx
			fj1y -= ty
			fj1z -= tz

			dx = h2x - j2x
			dy = h2y - j2y
			dz = h2z - j2z
			fs, vc, _ = hx.eval(jo+2, dx*dx+dy*dy+dz*dz)
			vctot += vc
			tx = fs * dx
			ty = fs * dy
			tz = fs * dz
			f2x += tx
			f2y += ty
			f2z += tz
			fj2x -= tx
			fj2y -= ty
			fj2z -= tz

			out.F[j3] += fjox
			out.F[j3+1] += fjoy
			out.F[j3+2] += fjoz
			out.F[j3+3] += fj1x
			out.F[j3+4] += fj1y
			out.F[j3+5] += fj1z
			out.F[j3+6] += fj2x
			out.F[j3+7] += fj2y
			out.F[j3+8] += fj2z
		}
		out.F[i3] += fox
		out.F[i3+1] += foy
		out.F[i3+2] += foz
		out.F[i3+3] += f1x
		out.F[i3+4] += f1y
		out.F[i3+5] += f1z
		out.F[i3+6] += f2x
		out.F[i3+7] += f2y
		out.F[i3+8] += f2z
		out.Fshift[is3] += fox + f1x + f2x
		out.Fshift[is3+1] += foy + f1y + f2y
		out.Fshift[is3+2] += foz + f1z + f2z
		gid := nl.Gid[k]
		out.Vc[gid] += vctot
		out.Vnb[gid] += vnbtot
	}
}
