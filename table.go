/*
 * table.go, part of gomd.
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

// Table stride values, i.e. floats per sample point. Each tabulated
// interaction contributes four values per point (see Table).
const (
	StrideCoul    = 4  //Coulomb only
	StrideVdw     = 8  //dispersion + repulsion
	StrideCoulVdw = 12 //Coulomb + dispersion + repulsion
)

// Table is a tabulated potential/force table ("VFtab") with uniform
// spacing 1/Scale in distance. Each sample point holds Stride float32
// values: four cubic-interpolation coefficients Y, F, G, H per tabulated
// interaction, in the order Coulomb, dispersion, repulsion (whichever are
// present, per the stride). Sample i describes r in [i/Scale, (i+1)/Scale)
// through the fractional offset eps = r*Scale - i:
//
//	V(r)  = Y + eps*(F + eps*(G + eps*H))
//	V'(r) = (F + eps*(2*G + 3*eps*H)) * Scale
//
// The dispersion block tabulates -r^-6 and the repulsion block r^-12, so
// that scaling them by C6 and C12 reproduces the analytic Lennard-Jones
// split. Lookups require r >= 1/Scale (point 0 only bounds interval 0 from
// above and is never dereferenced for in-contract lists) and
// r*Scale + 1 < NPoints; the neighbor-list cutoff contract is what keeps
// distances inside the tabulated domain.
//
// Construction lives in gomd/vftab; the kernels only read Data.
type Table struct {
	Scale  float32
	Stride int
	Data   []float32
}

// NPoints returns the number of sample points.
func (t *Table) NPoints() int {
	return len(t.Data) / t.Stride
}

// Rmax returns the largest distance the table can be evaluated at.
func (t *Table) Rmax() float32 {
	return float32(t.NPoints()-1) / t.Scale
}

// HasCoul reports whether the table carries a Coulomb block.
func (t *Table) HasCoul() bool {
	return t.Stride == StrideCoul || t.Stride == StrideCoulVdw
}

// HasVdw reports whether the table carries dispersion/repulsion blocks.
func (t *Table) HasVdw() bool {
	return t.Stride == StrideVdw || t.Stride == StrideCoulVdw
}

// VdwOffset returns the offset of the dispersion block within a sample
// point; the repulsion block follows 4 floats later.
func (t *Table) VdwOffset() int {
	return t.Stride - 8
}

// Check validates stride and sizing.
func (t *Table) Check() error {
	if t.Stride != StrideCoul && t.Stride != StrideVdw && t.Stride != StrideCoulVdw {
		return NewCError(fmt.Sprintf("invalid stride %d", t.Stride), "Table.Check")
	}
	if t.Scale <= 0 {
		return NewCError(fmt.Sprintf("scale must be positive, got %g", t.Scale), "Table.Check")
	}
	if len(t.Data)%t.Stride != 0 {
		return NewCError(fmt.Sprintf("%d values do not tile stride %d", len(t.Data), t.Stride), "Table.Check")
	}
	if t.NPoints() < 2 {
		return NewCError(fmt.Sprintf("need at least 2 points, got %d", t.NPoints()), "Table.Check")
	}
	return nil
}
