/*
 * doc.go, part of gomd.
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

//Package md provides the shared data model for the gomd nonbonded kernel
//library: interaction parameters, neighbor lists, interpolation tables,
//periodic shift vectors and the additive output accumulators that the
//kernels in gomd/nb write into.
//
//The layout follows the conventions of short-range molecular dynamics:
//coordinates and forces are flat float32 slices of xyz triplets indexed by
//particle id, neighbor lists are structure-of-arrays index slices, and all
//kernel outputs are accumulated (added to, never overwritten) so several
//kernel calls, or several concurrent chunks later merged, can contribute to
//the same totals.
//
//Nothing in this package allocates on behalf of a kernel call: every array
//is sized by the caller, and the hot path in gomd/nb trusts the invariants
//documented on NeighborList rather than re-checking them.
package md
