// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// PadConstant returns a copy of o zero-padded by n cells on every side of
// every axis, the way the reference simulation pads the interior source
// field to the PML-padded grid shape before driving the wave equation.
func PadConstant(o *Array, n int) *Array {
	shape := make([]int, o.Ndim())
	for d := range shape {
		shape[d] = o.Shape[d] + 2*n
	}
	out := New(shape...)
	if n == 0 {
		copy(out.Data, o.Data)
		return out
	}
	o.Each(func(idx []int, pos int) {
		dst := make([]int, len(idx))
		for d, i := range idx {
			dst[d] = i + n
		}
		out.Set(o.Data[pos], dst...)
	})
	return out
}

// PadEdge returns a copy of o replicate-padded by n cells on every side of
// every axis (edge/replicate padding), used to extend the interior speed
// field into the PML region.
func PadEdge(o *Array, n int) *Array {
	shape := make([]int, o.Ndim())
	for d := range shape {
		shape[d] = o.Shape[d] + 2*n
	}
	out := New(shape...)
	out.Each(func(idx []int, pos int) {
		src := make([]int, len(idx))
		for d, i := range idx {
			src[d] = clamp(i-n, 0, o.Shape[d]-1)
		}
		out.Data[pos] = o.At(src...)
	})
	return out
}

// Interior returns the sub-array obtained by trimming n cells from every
// side of every axis, the inverse of PadConstant/PadEdge.
func Interior(o *Array, n int) *Array {
	if n == 0 {
		return o.Clone()
	}
	shape := make([]int, o.Ndim())
	for d := range shape {
		shape[d] = o.Shape[d] - 2*n
	}
	out := New(shape...)
	out.Each(func(idx []int, pos int) {
		src := make([]int, len(idx))
		for d, i := range idx {
			src[d] = i + n
		}
		out.Data[pos] = o.At(src...)
	})
	return out
}

// StridedView returns the array obtained by slicing every axis of o with a
// fixed step, the grid-index operation a Detector applies before any
// boundary sampling: out[i] = o[i*step].
func StridedView(o *Array, step int) *Array {
	if step == 1 {
		return o.Clone()
	}
	shape := make([]int, o.Ndim())
	for d := range shape {
		shape[d] = (o.Shape[d]-1)/step + 1
	}
	out := New(shape...)
	out.Each(func(idx []int, pos int) {
		src := make([]int, len(idx))
		for d, i := range idx {
			src[d] = i * step
		}
		out.Data[pos] = o.At(src...)
	})
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
