// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package speed implements the scalar speed-of-wave field carried by the
// grid and the closed catalog of speed-field samplers (flat, random, ifft,
// fourier, and their 50/50 mixes).
package speed

import (
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/gofdtderr"
)

// Field is the interior speed-of-wave array, always clipped to
// [MinSpeed, MaxSpeed].
type Field struct {
	Array    *field.Array
	MinSpeed float64
	MaxSpeed float64
}

// New clips value (a scalar, broadcast to shape, or an array already shaped
// like shape, or resampled from a different shape of the same rank) into
// [minSpeed, min(maxSpeed, simMaxSpeed)], the way Simulation.set_speed does.
func New(shape []int, value *field.Array, minSpeed, maxSpeed, simMaxSpeed float64) (*Field, error) {
	maxAllowed := maxSpeed
	if maxAllowed > simMaxSpeed {
		maxAllowed = simMaxSpeed
	}
	arr, err := resample(shape, value)
	if err != nil {
		return nil, err
	}
	for i, v := range arr.Data {
		arr.Data[i] = clip(v, minSpeed, maxAllowed)
	}
	return &Field{Array: arr, MinSpeed: minSpeed, MaxSpeed: maxAllowed}, nil
}

// Flat builds a speed field constant at value, shaped like shape.
func Flat(shape []int, value float64) *Field {
	arr := field.New(shape...)
	arr.Fill(value)
	return &Field{Array: arr, MinSpeed: value, MaxSpeed: value}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resample either broadcasts a scalar-shaped source to shape, zoom-resamples
// a same-rank source of a different shape onto shape (nearest-neighbor, a
// monotone zoom), or copies a source already matching shape.
func resample(shape []int, src *field.Array) (*field.Array, error) {
	if src.Ndim() == 1 && src.Len() == 1 {
		out := field.New(shape...)
		out.Fill(src.Data[0])
		return out, nil
	}
	if sameShape(src.Shape, shape) {
		return src.Clone(), nil
	}
	if src.Ndim() == len(shape) {
		return zoom(src, shape), nil
	}
	return nil, gofdtderr.NewShapeMismatch(src.Shape, shape)
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// zoom resamples src onto the given shape using nearest-neighbor lookup,
// for when a supplied speed array does not already match the grid shape.
func zoom(src *field.Array, shape []int) *field.Array {
	out := field.New(shape...)
	out.Each(func(idx []int, pos int) {
		srcIdx := make([]int, len(idx))
		for d, i := range idx {
			ratio := float64(src.Shape[d]) / float64(shape[d])
			si := int(float64(i) * ratio)
			if si > src.Shape[d]-1 {
				si = src.Shape[d] - 1
			}
			srcIdx[d] = si
		}
		out.Data[pos] = src.At(srcIdx...)
	})
	return out
}

// Padded returns the speed field replicate-padded into the PML region.
func (o *Field) Padded(pmlThickness int) *field.Array {
	return field.PadEdge(o.Array, pmlThickness)
}
