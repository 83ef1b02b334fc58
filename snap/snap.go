/*
 * snap.go, part of gomd.
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

//Package snap writes and reads per-step snapshots of kernel output (forces
//and grouped energies) and compares two snapshot files, which is how two
//runs of the same system are checked against each other for
//reproducibility. It is an offline utility, not part of the force
//evaluation itself.
//
//The format is deliberately trivial to parse: a zstd-compressed ASCII
//stream with a key=value header ended by a line starting with "**", then,
//per frame, one line per energy group ("vc vnb"), one line per particle
//("fx fy fz") and a "*" terminator. Numbers are plain decimal; the writer
//rounds to 6 significant digits, which is below float32 force noise but
//keeps files small after compression.
package snap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	md "github.com/rmera/gomd"
	"gonum.org/v1/gonum/floats"
)

// Writer writes kernel-output snapshots to a compressed file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	w         *bufio.Writer
	natoms    int
	ngroups   int
	writeable bool
}

// NewWriter creates a snapshot file for natoms particles and ngroups
// energy-group pairs. The optional argument selects the zstd compression
// level as one of the zstd.EncoderLevel values; the default favors
// compression over speed, since snapshots are written once and read many
// times.
func NewWriter(name string, natoms, ngroups int, level ...zstd.EncoderLevel) (*Writer, error) {
	if natoms <= 0 || ngroups <= 0 {
		return nil, md.NewCError(fmt.Sprintf("need positive sizes, got %d atoms, %d groups", natoms, ngroups), "snap.NewWriter")
	}
	l := zstd.SpeedBestCompression
	if len(level) > 0 {
		l = level[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, md.NewCError(err.Error(), "snap.NewWriter")
	}
	h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(l))
	if err != nil {
		f.Close()
		return nil, md.NewCError(err.Error(), "snap.NewWriter")
	}
	S := &Writer{f: f, h: h, w: bufio.NewWriter(h), natoms: natoms, ngroups: ngroups, writeable: true}
	fmt.Fprintf(S.w, "natoms=%d\n", natoms)
	fmt.Fprintf(S.w, "ngroups=%d\n", ngroups)
	fmt.Fprintf(S.w, "** %d\n", natoms)
	return S, nil
}

// WNext appends one frame with the accumulator's forces and energies.
func (S *Writer) WNext(acc *md.Accum) error {
	if !S.writeable {
		return md.NewCError("writer is closed", "snap.WNext")
	}
	if len(acc.F) != 3*S.natoms || len(acc.Vc) != S.ngroups {
		return md.NewCError(fmt.Sprintf("accumulator covers %d atoms and %d groups, file wants %d and %d",
			len(acc.F)/3, len(acc.Vc), S.natoms, S.ngroups), "snap.WNext")
	}
	for g := 0; g < S.ngroups; g++ {
		fmt.Fprintf(S.w, "%.6g %.6g\n", acc.Vc[g], acc.Vnb[g])
	}
	for i := 0; i < S.natoms; i++ {
		fmt.Fprintf(S.w, "%.6g %.6g %.6g\n", acc.F[3*i], acc.F[3*i+1], acc.F[3*i+2])
	}
	fmt.Fprintln(S.w, "*")
	return nil
}

// Close flushes and closes the file. The Writer is unusable afterwards.
func (S *Writer) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	if err := S.w.Flush(); err != nil {
		return md.NewCError(err.Error(), "snap.Close")
	}
	if err := S.h.Close(); err != nil {
		return md.NewCError(err.Error(), "snap.Close")
	}
	return S.f.Close()
}

// Frame is one decoded snapshot frame.
type Frame struct {
	Vc  []float64
	Vnb []float64
	F   []float64
}

// Reader reads snapshot files written by Writer.
type Reader struct {
	f       *os.File
	h       *zstd.Decoder
	r       *bufio.Reader
	natoms  int
	ngroups int
}

// NewReader opens a snapshot file and parses its header.
func NewReader(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, md.NewCError(err.Error(), "snap.NewReader")
	}
	h, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, md.NewCError(err.Error(), "snap.NewReader")
	}
	R := &Reader{f: f, h: h, r: bufio.NewReader(h)}
	for {
		s, err := R.r.ReadString('\n')
		if err != nil {
			R.Close()
			return nil, md.NewCError("file ended inside the header: "+err.Error(), "snap.NewReader")
		}
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "**") {
			break
		}
		k, v, found := strings.Cut(s, "=")
		if !found {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(k) {
		case "natoms":
			R.natoms = n
		case "ngroups":
			R.ngroups = n
		}
	}
	if R.natoms <= 0 || R.ngroups <= 0 {
		R.Close()
		return nil, md.NewCError("header lacks natoms or ngroups", "snap.NewReader")
	}
	return R, nil
}

// NAtoms returns the per-frame particle count.
func (R *Reader) NAtoms() int {
	return R.natoms
}

// Next reads one frame, or returns io.EOF after the last one.
func (R *Reader) Next() (*Frame, error) {
	fr := &Frame{
		Vc:  make([]float64, R.ngroups),
		Vnb: make([]float64, R.ngroups),
		F:   make([]float64, 3*R.natoms),
	}
	for g := 0; g < R.ngroups; g++ {
		f, err := R.fields(2)
		if err != nil {
			if g == 0 && err == io.EOF {
				return nil, io.EOF
			}
			return nil, errDecorate(err, "snap.Next")
		}
		fr.Vc[g] = f[0]
		fr.Vnb[g] = f[1]
	}
	for i := 0; i < R.natoms; i++ {
		f, err := R.fields(3)
		if err != nil {
			return nil, errDecorate(err, "snap.Next")
		}
		copy(fr.F[3*i:], f)
	}
	s, err := R.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, md.NewCError(err.Error(), "snap.Next")
	}
	if !strings.HasPrefix(strings.TrimSpace(s), "*") {
		return nil, md.NewCError(fmt.Sprintf("frame not terminated, got %q", s), "snap.Next")
	}
	return fr, nil
}

func (R *Reader) fields(n int) ([]float64, error) {
	s, err := R.r.ReadString('\n')
	if err != nil && s == "" {
		return nil, io.EOF
	}
	f := strings.Fields(s)
	if len(f) != n {
		return nil, md.NewCError(fmt.Sprintf("want %d fields, got %q", n, s), "snap.fields")
	}
	r := make([]float64, n)
	for i, v := range f {
		r[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, md.NewCError(err.Error(), "snap.fields")
		}
	}
	return r, nil
}

// Close releases the decoder and the file.
func (R *Reader) Close() error {
	if R == nil {
		return nil
	}
	R.h.Close()
	return R.f.Close()
}

// Deviation summarizes how far apart two snapshot files are.
type Deviation struct {
	Frames    int     //frames compared
	MaxForce  float64 //largest absolute per-component force difference
	RMSForce  float64 //root mean square force-component difference
	MaxEnergy float64 //largest absolute per-group energy difference
}

// Compare reads two snapshot files frame by frame and reports their
// deviation. Files must describe the same system (same particle and group
// counts); comparison stops at the shorter file, and at least one shared
// frame is required. The typical use is checking a restarted or
// re-parallelized run against a reference run at some tolerance.
func Compare(nameA, nameB string) (*Deviation, error) {
	a, err := NewReader(nameA)
	if err != nil {
		return nil, errDecorate(err, "snap.Compare")
	}
	defer a.Close()
	b, err := NewReader(nameB)
	if err != nil {
		return nil, errDecorate(err, "snap.Compare")
	}
	defer b.Close()
	if a.natoms != b.natoms || a.ngroups != b.ngroups {
		return nil, md.NewCError(fmt.Sprintf("%s covers %d/%d atoms/groups but %s covers %d/%d",
			nameA, a.natoms, a.ngroups, nameB, b.natoms, b.ngroups), "snap.Compare")
	}
	d := new(Deviation)
	var sumsq float64
	var nf int
	for {
		fa, err := a.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errDecorate(err, "snap.Compare")
		}
		fb, err := b.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errDecorate(err, "snap.Compare")
		}
		diff := make([]float64, len(fa.F))
		floats.SubTo(diff, fa.F, fb.F)
		for i, v := range diff {
			diff[i] = math.Abs(v)
			sumsq += v * v
		}
		nf += len(diff)
		if m := floats.Max(diff); m > d.MaxForce {
			d.MaxForce = m
		}
		for g := range fa.Vc {
			if m := math.Abs(fa.Vc[g] - fb.Vc[g]); m > d.MaxEnergy {
				d.MaxEnergy = m
			}
			if m := math.Abs(fa.Vnb[g] - fb.Vnb[g]); m > d.MaxEnergy {
				d.MaxEnergy = m
			}
		}
		d.Frames++
	}
	if d.Frames == 0 {
		return nil, md.NewCError("no frames to compare", "snap.Compare")
	}
	d.RMSForce = math.Sqrt(sumsq / float64(nf))
	return d, nil
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
