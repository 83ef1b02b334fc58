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

//Package nb implements the nonbonded pair-interaction kernel family: the
//routines that walk a precomputed neighbor list and accumulate short-range
//Lennard-Jones, Coulomb and tabulated forces, shift forces and per-group
//energies.
//
//The family is a closed enumeration, one exported entry point per
//combination of Coulomb kind (none, plain, tabulated), van der Waals kind
//(none, Lennard-Jones, tabulated) and solvent optimization (none, general
//solvent, 3-site water vs. other, water vs. water), named after the
//Gromacs inner-loop 4-digit scheme: Inl1100 is plain Coulomb + Lennard-Jones with no
//solvent batching, Inl3330 is fully tabulated water-water, and so on. The
//variant is picked once at the call site (or through Kernel), never inside
//the pair loop: every entry point is a compile-time instantiation of one
//shared generic loop skeleton over one term evaluator, so the innermost
//loop carries no interaction branching.
//
//All arithmetic is float32. Kernels neither allocate nor check their
//inputs; the NeighborList invariants documented in the md package are
//preconditions. Outputs are strictly additive, which makes the chunked
//concurrent evaluation in ConcEval a pure partition-and-merge.
package nb
