// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements the driving term of the FDTD engine: a fixed
// spatial weight pattern (point, line or plane, depending on how many axes
// are wildcarded) modulated by a gated sinusoidal temporal profile.
package source

import (
	"math"

	"github.com/cpmech/gofdtd/field"
)

// Coord is a tagged union for one axis of a Location: either a fixed
// position in meters, or Any, meaning "broadcast along the whole extent of
// this axis". gofem represents closed tagged alternatives with small
// dedicated types rather than sentinel values; the same idea is used here
// instead of a magic NaN or negative number.
type Coord struct {
	any bool
	val float64
}

// Fixed returns a Coord pinned at the given position, in meters.
func Fixed(v float64) Coord { return Coord{val: v} }

// Any returns a wildcard Coord broadcasting along the whole axis.
func Any() Coord { return Coord{any: true} }

// IsAny reports whether c is the wildcard coordinate.
func (c Coord) IsAny() bool { return c.any }

// Location is a source position, one Coord per grid axis.
type Location []Coord

// LocationToIndex resolves a Location into a slice of (index, isWildcard)
// pairs against shape, at the given spacing. A fixed coordinate resolves
// to its nearest interior index, clamped to [0, shape[i]-1]; a wildcard
// coordinate carries no meaningful index and broadcasts along the axis.
func LocationToIndex(loc Location, spacing float64, shape []int) (idx []int, wildcard []bool) {
	n := len(shape)
	idx = make([]int, n)
	wildcard = make([]bool, n)
	for d := 0; d < n; d++ {
		if d >= len(loc) || loc[d].IsAny() {
			wildcard[d] = true
			continue
		}
		i := int(math.Round(loc[d].val / spacing))
		if i < 0 {
			i = 0
		}
		if i > shape[d]-1 {
			i = shape[d] - 1
		}
		idx[d] = i
	}
	return idx, wildcard
}

// Source drives the wave equation with a fixed spatial weight and a
// sinusoidal temporal profile, gated to a finite number of cycles when
// Ncycles is non-nil.
type Source struct {
	Location Location
	Shape    []int
	Spacing  float64
	Period   float64
	Ncycles  *float64 // nil means unbounded (continuous)
	Phase    float64

	weight *field.Array
}

// New builds a Source. Shape is the interior grid shape the source's weight
// pattern is defined on.
func New(loc Location, shape []int, spacing, period float64, ncycles *float64, phase float64) *Source {
	o := &Source{
		Location: loc,
		Shape:    append([]int{}, shape...),
		Spacing:  spacing,
		Period:   period,
		Ncycles:  ncycles,
		Phase:    phase,
	}
	o.weight = buildWeight(loc, spacing, shape)
	return o
}

// buildWeight materializes the {0,1} spatial weight pattern: a single 1 at
// the resolved index, broadcast along every wildcard axis.
func buildWeight(loc Location, spacing float64, shape []int) *field.Array {
	idx, wildcard := LocationToIndex(loc, spacing, shape)
	w := field.New(shape...)
	w.Each(func(pos []int, flat int) {
		for d, wc := range wildcard {
			if !wc && pos[d] != idx[d] {
				return
			}
		}
		w.Data[flat] = 1
	})
	return w
}

// Weight returns the {0,1} spatial weight pattern on the interior grid.
func (o *Source) Weight() *field.Array { return o.weight }

// Profile returns sin(2*pi*t/period + phase), gated to zero once
// t/period exceeds Ncycles (when Ncycles is set).
func (o *Source) Profile(t float64) float64 {
	if o.Ncycles != nil && t/o.Period > *o.Ncycles {
		return 0
	}
	return math.Sin(2*math.Pi*t/o.Period + o.Phase)
}

// F implements gosl/fun/dbf.T so a Source can be handed anywhere a
// function-of-time-and-position callback is expected, the way gofem's
// boundary conditions carry a dbf.T-typed Fcn field. x is ignored: the
// spatial dependence of a Source lives in its Weight, not in this
// callback.
func (o *Source) F(t float64, x []float64) float64 {
	return o.Profile(t)
}

// Value returns the realized source field on the interior grid at time t:
// weight elementwise-scaled by the temporal profile.
func (o *Source) Value(t float64) *field.Array {
	p := o.Profile(t)
	out := o.weight.Clone()
	for i := range out.Data {
		out.Data[i] *= p
	}
	return out
}
