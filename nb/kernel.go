/*
 * kernel.go, part of gomd.
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

//run is the pairwise loop skeleton shared by every non-water kernel. Per
//central-particle group: the periodic shift is added once to the central
//coordinate (all partners of a group share one image), the partner loop
//accumulates the central force in registers while updating each partner's
//force in place, and the group totals are flushed to the force, shift-force
//and per-energy-group arrays afterwards. Momentum conservation is by
//construction: each pair adds fscal*dr to one side and subtracts it from
//the other.
func run[T pairTerm](nl *md.NeighborList, pos []float32, t T, out *md.Accum) {
	for k := 0; k < len(nl.Iinr); k++ {
		in := nl.Iinr[k]
		is3 := 3 * nl.Shift[k]
		i3 := 3 * in
		ix := nl.Shiftvec[is3] + pos[i3]
		iy := nl.Shiftvec[is3+1] + pos[i3+1]
		iz := nl.Shiftvec[is3+2] + pos[i3+2]
		t.beginI(in)
		var fix, fiy, fiz float32
		var vctot, vnbtot float32
		for n := nl.Jindex[k]; n < nl.Jindex[k+1]; n++ {
			jnr := nl.Jjnr[n]
			j3 := 3 * jnr
			dx := ix - pos[j3]
			dy := iy - pos[j3+1]
			dz := iz - pos[j3+2]
			rsq := dx*dx + dy*dy + dz*dz
			fs, vc, vnb := t.eval(jnr, rsq)
			vctot += vc
			vnbtot += vnb
			tx := fs * dx
			ty := fs * dy
			tz := fs * dz
			fix += tx
			fiy += ty
			fiz += tz
			out.F[j3] -= tx
			out.F[j3+1] -= ty
			out.F[j3+2] -= tz
		}
		out.F[i3] += fix
		out.F[i3+1] += fiy
		out.F[i3+2] += fiz
		out.Fshift[is3] += fix
		out.Fshift[is3+1] += fiy
		out.Fshift[is3+2] += fiz
		gid := nl.Gid[k]
		out.Vc[gid] += vctot
		out.Vnb[gid] += vnbtot
	}
}

//runSolvent is the general-solvent skeleton (third digit 1): each Jjnr
//entry of group k names the first of nsatoms[k] consecutive partner sites,
//and the site loop is unrolled by the compiler for the small fixed trip
//counts this is used with. Pair math and summation order are identical to
//run on the site-expanded list, so the two are numerically interchangeable.
func runSolvent[T pairTerm](nl *md.NeighborList, pos []float32, nsatoms []int32, t T, out *md.Accum) {
	for k := 0; k < len(nl.Iinr); k++ {
		in := nl.Iinr[k]
		is3 := 3 * nl.Shift[k]
		i3 := 3 * in
		ix := nl.Shiftvec[is3] + pos[i3]
		iy := nl.Shiftvec[is3+1] + pos[i3+1]
		iz := nl.Shiftvec[is3+2] + pos[i3+2]
		ns := nsatoms[k]
		if ns < 1 {
			ns = 1
		}
		t.beginI(in)
		var fix, fiy, fiz float32
		var vctot, vnbtot float32
		for n := nl.Jindex[k]; n < nl.Jindex[k+1]; n++ {
			j0 := nl.Jjnr[n]
			for s := int32(0); s < ns; s++ {
				jnr := j0 + s
				j3 := 3 * jnr
				dx := ix - pos[j3]
				dy := iy - pos[j3+1]
				dz := iz - pos[j3+2]
				rsq := dx*dx + dy*dy + dz*dz
				fs, vc, vnb := t.eval(jnr, rsq)
				vctot += vc
				vnbtot += vnb
				tx := fs * dx
				ty := fs * dy
				tz := fs * dz
				fix += tx
				fiy += ty
				fiz += tz
				out.F[j3] -= tx
				out.F[j3+1] -= ty
				out.F[j3+2] -= tz
			}
		}
		out.F[i3] += fix
		out.F[i3+1] += fiy
		out.F[i3+2] += fiz
		out.Fshift[is3] += fix
		out.Fshift[is3+1] += fiy
		out.Fshift[is3+2] += fiz
		gid := nl.Gid[k]
		out.Vc[gid] += vctot
		out.Vnb[gid] += vnbtot
	}
}
