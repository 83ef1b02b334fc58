/*
 * top.go, part of gomd.
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

//Package top reads the subset of the Gromacs itp/top format needed to
//parametrize the nonbonded kernels: the [defaults] combination rule, the
//[atomtypes] nonbonded parameters and the per-particle [atoms] charges and
//types. Bonded sections are skipped; this is a kernel-parameter reader,
//not a general topology editor.
package top

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	md "github.com/rmera/gomd"
)

// StringReader is the line-oriented reading interface this package needs;
// bufio.Reader implements it.
type StringReader interface {
	ReadString(delim byte) (string, error)
}

type atomType struct {
	name   string
	c6     float64 //C6 or sigma, depending on the combination rule
	c12    float64 //C12 or epsilon
	sigeps bool
}

// FF accumulates the nonbonded parameters read from a topology. Fill it
// from one or more readers, then build the kernel parameter set with
// Params.
type FF struct {
	SigmaEpsilon bool
	types        []atomType
	charges      []float32
	typeids      []int32
	current      string
}

func NewFF() *FF {
	return new(FF)
}

// Fill reads nonbonded parameters from r, which must be in Gromacs itp/top
// format. Only the [defaults], [atomtypes] and [atoms] sections are
// interpreted; everything else is skipped. It can be called several times
// to read split topologies, as long as [atomtypes] come before the [atoms]
// that use them.
func (F *FF) Fill(r StringReader) error {
	var err error
	var s string
	for s, err = r.ReadString('\n'); err == nil; s, err = r.ReadString('\n') {
		s = cleanString(s)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.HasPrefix(s, "[") {
			F.current = strings.Trim(s, "[] \t")
			continue
		}
		switch F.current {
		case "defaults":
			f := fi(s)
			//second field is the combination rule: 2 and 3 use
			//sigma/epsilon, 1 uses C6/C12.
			if len(f) >= 2 && (f[1] == "2" || f[1] == "3") {
				F.SigmaEpsilon = true
			}
		case "atomtypes":
			err = F.atomTypeFromGro(s)
		case "atoms":
			err = F.atomFromGro(s)
		default:
			continue
		}
		if err != nil {
			return errDecorate(err, "top.Fill")
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return errDecorate(err, "top.Fill")
	}
	return nil
}

//An atomtypes line carries name ... charge ptype and two nonbonded values
//at the end; field counts vary between topologies, so the nonbonded values
//are taken from the tail, which is what Gromacs itself does.
func (F *FF) atomTypeFromGro(s string) error {
	f := fi(s)
	if len(f) < 4 {
		return md.NewCError(fmt.Sprintf("atomtypes line too short: %q", s), "top.atomTypeFromGro")
	}
	v, err := strconv.ParseFloat(f[len(f)-2], 64)
	if err != nil {
		return md.NewCError(err.Error(), "top.atomTypeFromGro")
	}
	w, err := strconv.ParseFloat(f[len(f)-1], 64)
	if err != nil {
		return md.NewCError(err.Error(), "top.atomTypeFromGro")
	}
	F.types = append(F.types, atomType{name: f[0], c6: v, c12: w, sigeps: F.SigmaEpsilon})
	return nil
}

//An atoms line: nr type resnr residue atom cgnr charge [mass ...].
func (F *FF) atomFromGro(s string) error {
	f := fi(s)
	if len(f) < 7 {
		return md.NewCError(fmt.Sprintf("atoms line too short: %q", s), "top.atomFromGro")
	}
	tid := -1
	for i, t := range F.types {
		if t.name == f[1] {
			tid = i
			break
		}
	}
	if tid < 0 {
		return md.NewCError(fmt.Sprintf("atom type %q not in [atomtypes]", f[1]), "top.atomFromGro")
	}
	q, err := strconv.ParseFloat(f[6], 64)
	if err != nil {
		return md.NewCError(err.Error(), "top.atomFromGro")
	}
	F.charges = append(F.charges, float32(q))
	F.typeids = append(F.typeids, int32(tid))
	return nil
}

// NAtoms returns the number of atoms read so far.
func (F *FF) NAtoms() int {
	return len(F.charges)
}

// Params builds the kernel parameter set from everything read: per-type
// C6/C12 (converting from sigma/epsilon if the combination rule asked for
// it) combined geometrically into the full type-pair table, plus the
// per-particle charges and type indices. facel is the Coulomb prefactor
// for the run, normally md.ElectricConversion over the relative
// dielectric.
func (F *FF) Params(facel float32) (*md.Params, error) {
	if len(F.types) == 0 || len(F.charges) == 0 {
		return nil, md.NewCError("no atomtypes or no atoms were read", "top.Params")
	}
	c6 := make([]float64, len(F.types))
	c12 := make([]float64, len(F.types))
	for i, t := range F.types {
		if t.sigeps {
			v, w := md.SigmaEps(t.c6, t.c12)
			c6[i] = float64(v)
			c12[i] = float64(w)
		} else {
			c6[i] = t.c6
			c12[i] = t.c12
		}
	}
	nbfp, err := md.CombineGeometric(c6, c12)
	if err != nil {
		return nil, errDecorate(err, "top.Params")
	}
	p, err := md.NewParams(facel, len(F.types), nbfp, F.charges, F.typeids)
	return p, errDecorate(err, "top.Params")
}

//cleanString removes comments and surrounding whitespace.
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\n\t ")
}

//fi splits a line in fields.
func fi(s string) []string {
	return strings.Fields(s)
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(md.Error); ok {
		e.Decorate(caller)
		return e
	}
	return md.NewCError(err.Error(), caller)
}
