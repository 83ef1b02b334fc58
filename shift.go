/*
 * shift.go, part of gomd.
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

// NShift is the number of periodic image shifts in 3D: all combinations of
// -1, 0 and +1 of the three box vectors.
const NShift = 27

// CentralShift is the index of the zero shift vector (the home image) in a
// table built by ShiftVectors.
const CentralShift = 13

// ShiftVectors builds the table of 27 periodic-image offset vectors for a
// (possibly triclinic) box given as 9 values, the three box vectors in
// rows, following the same convention the stf trajectory format uses for
// its box line. The resulting slice holds xyz triplets and is indexed by a
// NeighborList's Shift entries; entry CentralShift is the zero vector.
//
// Ordering: index (i+1)*9+(j+1)*3+(k+1) holds i*a + j*b + k*c for
// i,j,k in {-1,0,1}, with a, b, c the box rows.
func ShiftVectors(box []float64) ([]float32, error) {
	if len(box) != 9 {
		return nil, NewCError(fmt.Sprintf("box needs 9 values, got %d", len(box)), "ShiftVectors")
	}
	sv := make([]float32, 3*NShift)
	n := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				sv[n] = float32(fi*box[0] + fj*box[3] + fk*box[6])
				sv[n+1] = float32(fi*box[1] + fj*box[4] + fk*box[7])
				sv[n+2] = float32(fi*box[2] + fj*box[5] + fk*box[8])
				n += 3
			}
		}
	}
	return sv, nil
}
