// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/cpmech/gosl/chk"

// SliceAxis extracts the half-open range [lo,hi) of o along axis, keeping
// every other axis whole. The rank is preserved.
func SliceAxis(o *Array, axis, lo, hi int) *Array {
	if lo < 0 || hi > o.Shape[axis] || lo >= hi {
		chk.Panic("field.SliceAxis: invalid range [%d,%d) on axis %d with length %d", lo, hi, axis, o.Shape[axis])
	}
	shape := append([]int{}, o.Shape...)
	shape[axis] = hi - lo
	out := New(shape...)
	out.Each(func(idx []int, pos int) {
		src := append([]int{}, idx...)
		src[axis] += lo
		out.Data[pos] = o.At(src...)
	})
	return out
}

// MoveAxisToFront returns a copy of o with axis moved to position 0 and all
// other axes kept in their relative order, mirroring numpy.moveaxis(a, axis, 0).
func MoveAxisToFront(o *Array, axis int) *Array {
	if axis == 0 {
		return o.Clone()
	}
	perm := make([]int, o.Ndim())
	perm[0] = axis
	k := 1
	for d := 0; d < o.Ndim(); d++ {
		if d == axis {
			continue
		}
		perm[k] = d
		k++
	}
	shape := make([]int, o.Ndim())
	for i, p := range perm {
		shape[i] = o.Shape[p]
	}
	out := New(shape...)
	out.Each(func(idx []int, pos int) {
		src := make([]int, o.Ndim())
		for i, p := range perm {
			src[p] = idx[i]
		}
		out.Data[pos] = o.At(src...)
	})
	return out
}

// ConcatAxis0 concatenates arrays along axis 0; every array must share the
// same shape on axes 1..N-1.
func ConcatAxis0(arrays []*Array) *Array {
	if len(arrays) == 0 {
		chk.Panic("field.ConcatAxis0: need at least one array")
	}
	total := 0
	tail := arrays[0].Shape[1:]
	for _, a := range arrays {
		for d, s := range a.Shape[1:] {
			if s != tail[d] {
				chk.Panic("field.ConcatAxis0: shape mismatch on axis %d: %d != %d", d+1, s, tail[d])
			}
		}
		total += a.Shape[0]
	}
	shape := append([]int{total}, append([]int{}, tail...)...)
	out := New(shape...)
	offset := 0
	for _, a := range arrays {
		a.Each(func(idx []int, pos int) {
			dst := append([]int{}, idx...)
			dst[0] += offset
			out.Set(a.Data[pos], dst...)
		})
		offset += a.Shape[0]
	}
	return out
}

// SetFrame writes frame into dst at position index along a leading axis 0
// that frame itself does not have, i.e. dst.Shape == (n, *frame.Shape).
// This is how a Simulation writes one detected time step into the
// (nsteps_detected, *detector_shape) output buffer.
func SetFrame(dst *Array, index int, frame *Array) {
	if dst.Ndim() != frame.Ndim()+1 {
		chk.Panic("field.SetFrame: dst rank %d must be frame rank %d plus one", dst.Ndim(), frame.Ndim())
	}
	for d, s := range frame.Shape {
		if dst.Shape[d+1] != s {
			chk.Panic("field.SetFrame: dst shape %v incompatible with frame shape %v", dst.Shape, frame.Shape)
		}
	}
	frame.Each(func(idx []int, pos int) {
		d := append([]int{index}, idx...)
		dst.Set(frame.Data[pos], d...)
	})
}
