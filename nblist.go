/*
 * nblist.go, part of gomd.
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

// NeighborList is the precomputed, immutable enumeration of interacting
// pairs that the nonbonded kernels walk, grouped by central ("i") particle.
// It is a structure of flat index arrays rather than pair objects: the
// kernels stream it sequentially and the layout is what makes them
// vectorizable.
//
// Invariants (upheld by the list builder, trusted by the kernels):
//
//   - len(Jindex) == len(Iinr)+1; group k owns the partner ids
//     Jjnr[Jindex[k]:Jindex[k+1]]. Ranges are contiguous, non-overlapping
//     and monotonically non-decreasing. Empty ranges are legal.
//   - Shift[k] selects the periodic image offset in Shiftvec that applies
//     uniformly to every partner of group k. One shift per group, not per
//     pair.
//   - Shiftvec holds xyz triplets, at most 27 for a 3D periodic system.
//   - Gid[k] indexes the Vc/Vnb energy accumulators; the energy-group
//     classification is resolved by the builder, not the kernel.
//   - No pair is at zero distance and every pair is inside the interaction
//     cutoff. Self pairs and excluded bonded pairs never appear.
//
// The solvent-batched kernel variants additionally take an nsatoms slice,
// one entry per group, giving the number of consecutive particles that form
// one rigid solvent molecule among that group's partners; it travels next
// to the list but is an argument of those entry points, not part of the
// list itself.
type NeighborList struct {
	Iinr     []int32
	Jindex   []int32
	Jjnr     []int32
	Shift    []int32
	Shiftvec []float32
	Gid      []int32
}

// Len returns the number of central-particle groups (nri).
func (nl *NeighborList) Len() int {
	return len(nl.Iinr)
}

// NPairs returns the total number of partner entries.
func (nl *NeighborList) NPairs() int {
	return len(nl.Jjnr)
}

// Check validates every invariant that can be checked against the given
// array sizes: index bounds, range monotonicity and cross-slice sizing.
// Kernels never call it; it is for list builders, tests and debug runs,
// where its cost does not matter. Pass nsatoms when the list will be fed
// to a solvent-batched variant, nil otherwise.
func (nl *NeighborList) Check(natoms, ngid int, nsatoms []int32) error {
	nri := len(nl.Iinr)
	if len(nl.Jindex) != nri+1 {
		return NewCError(fmt.Sprintf("jindex has %d entries, want %d", len(nl.Jindex), nri+1), "NeighborList.Check")
	}
	if len(nl.Shift) != nri || len(nl.Gid) != nri {
		return NewCError(fmt.Sprintf("shift/gid have %d/%d entries, want %d", len(nl.Shift), len(nl.Gid), nri), "NeighborList.Check")
	}
	if len(nl.Shiftvec)%3 != 0 {
		return NewCError(fmt.Sprintf("shiftvec length %d is not a multiple of 3", len(nl.Shiftvec)), "NeighborList.Check")
	}
	if nsatoms != nil && len(nsatoms) != nri {
		return NewCError(fmt.Sprintf("nsatoms has %d entries, want %d", len(nsatoms), nri), "NeighborList.Check")
	}
	nshift := int32(len(nl.Shiftvec) / 3)
	for k := 0; k < nri; k++ {
		if nl.Iinr[k] < 0 || int(nl.Iinr[k]) >= natoms {
			return NewCError(fmt.Sprintf("group %d: i particle %d outside [0,%d)", k, nl.Iinr[k], natoms), "NeighborList.Check")
		}
		if nl.Jindex[k] > nl.Jindex[k+1] {
			return NewCError(fmt.Sprintf("group %d: jindex range [%d,%d) is decreasing", k, nl.Jindex[k], nl.Jindex[k+1]), "NeighborList.Check")
		}
		if nl.Shift[k] < 0 || nl.Shift[k] >= nshift {
			return NewCError(fmt.Sprintf("group %d: shift index %d outside [0,%d)", k, nl.Shift[k], nshift), "NeighborList.Check")
		}
		if nl.Gid[k] < 0 || int(nl.Gid[k]) >= ngid {
			return NewCError(fmt.Sprintf("group %d: energy group id %d outside [0,%d)", k, nl.Gid[k], ngid), "NeighborList.Check")
		}
	}
	if nri > 0 && (nl.Jindex[0] < 0 || int(nl.Jindex[nri]) > len(nl.Jjnr)) {
		return NewCError(fmt.Sprintf("jindex spans [%d,%d) but jjnr has %d entries", nl.Jindex[0], nl.Jindex[nri], len(nl.Jjnr)), "NeighborList.Check")
	}
	for n, j := range nl.Jjnr {
		ns := int32(1)
		if nsatoms != nil {
			//find which group entry n belongs to; linear scan is fine here,
			//Check is not a hot path.
			for k := 0; k < nri; k++ {
				if n >= int(nl.Jindex[k]) && n < int(nl.Jindex[k+1]) {
					if nsatoms[k] > 1 {
						ns = nsatoms[k]
					}
					break
				}
			}
		}
		if j < 0 || int(j+ns) > natoms {
			return NewCError(fmt.Sprintf("jjnr[%d]=%d spans outside [0,%d)", n, j, natoms), "NeighborList.Check")
		}
	}
	return nil
}

// Slice returns a view of groups [k0,k1) sharing the backing arrays of the
// receiver. Jjnr and Shiftvec are kept whole, since Jindex entries are
// absolute offsets into Jjnr; the view is exactly what a concurrent caller
// needs to process a disjoint chunk of groups (see gomd/nb.ConcEval).
func (nl *NeighborList) Slice(k0, k1 int) *NeighborList {
	return &NeighborList{
		Iinr:     nl.Iinr[k0:k1],
		Jindex:   nl.Jindex[k0 : k1+1],
		Jjnr:     nl.Jjnr,
		Shift:    nl.Shift[k0:k1],
		Shiftvec: nl.Shiftvec,
		Gid:      nl.Gid[k0:k1],
	}
}
