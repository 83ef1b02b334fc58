/*
 * nbplot.go, part of gomd.
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

//Package nbplot plots tabulated potentials and their forces, mostly to
//eyeball a freshly built table before trusting it with a long run.
package nbplot

import (
	"fmt"
	"image/color"

	md "github.com/rmera/gomd"
	"github.com/rmera/gomd/vftab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var blockNames = [3]string{"Coulomb", "dispersion", "repulsion"}

var blockColors = [3]color.RGBA{
	{R: 200, A: 255},
	{G: 160, A: 255},
	{B: 200, A: 255},
}

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "r"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Table plots every block of a table between rmin and rmax, potential and
// derived force as two files, name+"_v.png" and name+"_f.png". rmin must
// be at least one table spacing, and rmax inside the tabulated domain.
func Table(t *md.Table, rmin, rmax float32, name string) error {
	if rmin*t.Scale < 1 || rmax > t.Rmax() || rmin >= rmax {
		return md.NewCError(fmt.Sprintf("range [%g,%g] outside the tabulated domain [%g,%g]",
			rmin, rmax, 1/t.Scale, t.Rmax()), "nbplot.Table")
	}
	nblocks := t.Stride / 4
	first := 0
	if !t.HasCoul() {
		first = 1 //vdw-only tables start at the dispersion block
	}
	const samples = 512
	vp := basicPlot("tabulated potential", "V")
	fp := basicPlot("tabulated force", "-dV/dr")
	for b := 0; b < nblocks; b++ {
		vs := make(plotter.XYs, samples)
		fs := make(plotter.XYs, samples)
		for s := 0; s < samples; s++ {
			r := rmin + (rmax-rmin)*float32(s)/(samples-1)
			v, dv := vftab.Eval(t, b, r)
			vs[s].X = float64(r)
			vs[s].Y = float64(v)
			fs[s].X = float64(r)
			fs[s].Y = float64(-dv)
		}
		vline, err := plotter.NewLine(vs)
		if err != nil {
			return md.NewCError(err.Error(), "nbplot.Table")
		}
		fline, err := plotter.NewLine(fs)
		if err != nil {
			return md.NewCError(err.Error(), "nbplot.Table")
		}
		vline.Color = blockColors[first+b]
		fline.Color = blockColors[first+b]
		vp.Add(vline)
		fp.Add(fline)
		vp.Legend.Add(blockNames[first+b], vline)
		fp.Legend.Add(blockNames[first+b], fline)
	}
	if err := vp.Save(12*vg.Centimeter, 10*vg.Centimeter, name+"_v.png"); err != nil {
		return md.NewCError(err.Error(), "nbplot.Table")
	}
	if err := fp.Save(12*vg.Centimeter, 10*vg.Centimeter, name+"_f.png"); err != nil {
		return md.NewCError(err.Error(), "nbplot.Table")
	}
	return nil
}
