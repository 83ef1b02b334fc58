/*
 * parallel.go, part of gomd.
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
	"runtime"

	md "github.com/rmera/gomd"
)

// Options holds the settings of the concurrent evaluation.
type Options struct {
	cpus int
}

// DefaultOptions returns an Options with the default settings.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	return ret
}

// Cpus returns the number of worker goroutines to use, and sets it first if
// a valid value is given.
func (o *Options) Cpus(cpus ...int) int {
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return o.cpus
}

// ConcEval evaluates a kernel concurrently by partitioning the
// central-particle group range into one contiguous chunk per worker. Every
// worker runs the same kernel on its chunk against a private accumulator
// (the per-pair partner updates make racing on a shared one unsafe), and
// the private accumulators are merged into out by addition, in chunk
// order, so the result is deterministic for a given worker count. Input
// arrays are shared read-only. The kernel always runs to completion; there
// is nothing to cancel.
//
// Merging in chunk order reorders float32 additions relative to a serial
// call, so totals match a single-call evaluation to rounding, not bit for
// bit, unless one worker is used.
func ConcEval(k Func, in *Input, out *md.Accum, options ...*Options) error {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	nri := in.List.Len()
	workers := o.cpus
	if workers > nri {
		workers = nri
	}
	if workers <= 1 {
		k(in, out)
		return nil
	}
	chunk := (nri + workers - 1) / workers
	//rounding the chunk up can leave the last workers with nothing to do;
	//keep only as many as have a nonempty range.
	workers = (nri + chunk - 1) / chunk
	//one channel per worker, read in order, as in the concurrent
	//trajectory-processing template this follows.
	results := make([]chan *md.Accum, workers)
	for w := 0; w < workers; w++ {
		results[w] = make(chan *md.Accum, 1)
	}
	for w := 0; w < workers; w++ {
		k0 := w * chunk
		k1 := k0 + chunk
		if k1 > nri {
			k1 = nri
		}
		go func(k0, k1 int, res chan *md.Accum) {
			sub := *in
			sub.List = in.List.Slice(k0, k1)
			if in.NsAtoms != nil {
				sub.NsAtoms = in.NsAtoms[k0:k1]
			}
			priv := out.Like()
			k(&sub, priv)
			res <- priv
		}(k0, k1, results[w])
	}
	for _, res := range results {
		if err := out.Merge(<-res); err != nil {
			return errDecorate(err, "ConcEval")
		}
	}
	return nil
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
