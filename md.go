/*
 * md.go, part of gomd.
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

import (
	"fmt"
	"math"
)

// ElectricConversion is 1/(4 pi eps0) in kJ mol^-1 nm e^-2, the usual value
// of the Coulomb prefactor ("facel") when charges are in electron units,
// distances in nm and energies in kJ/mol, with a relative dielectric of 1.
// Divide by the relative dielectric constant for other media.
const ElectricConversion = 138.935485

// Params holds the per-particle and per-type-pair interaction parameters
// read by the nonbonded kernels. Nbfp is the symmetric ntype x ntype table
// of Lennard-Jones coefficients, flattened row-major with two values per
// type pair: C6 at Nbfp[2*(Ntype*ti+tj)] and C12 right after it.
// All slices are read-only for the kernels.
type Params struct {
	Facel  float32   //Coulomb prefactor, unit- and dielectric-dependent
	Ntype  int       //number of Lennard-Jones types
	Nbfp   []float32 //2*Ntype*Ntype C6/C12 coefficients
	Charge []float32 //per-particle charge
	Type   []int32   //per-particle Lennard-Jones type index
}

// NewParams builds a Params and validates the cross-slice sizing: Nbfp must
// hold 2*ntype*ntype values, Charge and Type must have one entry per
// particle, and every type index must be in [0,ntype).
func NewParams(facel float32, ntype int, nbfp, charge []float32, typ []int32) (*Params, error) {
	if ntype <= 0 {
		return nil, NewCError(fmt.Sprintf("ntype must be positive, got %d", ntype), "NewParams")
	}
	if len(nbfp) != 2*ntype*ntype {
		return nil, NewCError(fmt.Sprintf("nbfp has %d values, want %d for %d types", len(nbfp), 2*ntype*ntype, ntype), "NewParams")
	}
	if len(charge) != len(typ) {
		return nil, NewCError(fmt.Sprintf("%d charges but %d type indices", len(charge), len(typ)), "NewParams")
	}
	for i, t := range typ {
		if t < 0 || int(t) >= ntype {
			return nil, NewCError(fmt.Sprintf("particle %d has type %d, outside [0,%d)", i, t, ntype), "NewParams")
		}
	}
	return &Params{Facel: facel, Ntype: ntype, Nbfp: nbfp, Charge: charge, Type: typ}, nil
}

// NAtoms returns the number of particles the parameter set covers.
func (p *Params) NAtoms() int {
	return len(p.Charge)
}

// C6C12 returns the Lennard-Jones coefficients for a type pair.
func (p *Params) C6C12(ti, tj int32) (float32, float32) {
	n := 2 * (int32(p.Ntype)*ti + tj)
	return p.Nbfp[n], p.Nbfp[n+1]
}

// SigmaEps converts a sigma/epsilon Lennard-Jones parametrization to the
// C6/C12 coefficients the kernels use. Sigma in the same length unit as the
// coordinates, epsilon in the energy unit of the run.
func SigmaEps(sigma, eps float64) (c6, c12 float32) {
	s6 := sigma * sigma * sigma * sigma * sigma * sigma
	c6 = float32(4 * eps * s6)
	c12 = float32(4 * eps * s6 * s6)
	return c6, c12
}

// CombineGeometric fills a full Nbfp table from per-type C6/C12 values using
// the geometric combination rule c_ij = sqrt(c_i*c_j). Other rules can be
// applied by filling Nbfp directly.
func CombineGeometric(c6, c12 []float64) ([]float32, error) {
	if len(c6) != len(c12) {
		return nil, NewCError(fmt.Sprintf("%d C6 values but %d C12 values", len(c6), len(c12)), "CombineGeometric")
	}
	ntype := len(c6)
	nbfp := make([]float32, 2*ntype*ntype)
	for i := 0; i < ntype; i++ {
		for j := 0; j < ntype; j++ {
			n := 2 * (ntype*i + j)
			nbfp[n] = float32(geomMean(c6[i], c6[j]))
			nbfp[n+1] = float32(geomMean(c12[i], c12[j]))
		}
	}
	return nbfp, nil
}

func geomMean(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	return math.Sqrt(a * b)
}
