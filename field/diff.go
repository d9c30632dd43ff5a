// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// ForwardDiff returns the forward difference of o along axis, appending a
// zero at the far edge: out[i] = o[i+1] - o[i] for i < Shape[axis]-1, and
// out[Shape[axis]-1] = 0. Used by the PML split-field update to build the
// pressure gradient.
func ForwardDiff(o *Array, axis int) *Array {
	out := New(o.Shape...)
	last := o.Shape[axis] - 1
	o.Each(func(idx []int, pos int) {
		if idx[axis] == last {
			return
		}
		fwd := make([]int, len(idx))
		copy(fwd, idx)
		fwd[axis]++
		out.Data[pos] = o.At(fwd...) - o.Data[pos]
	})
	return out
}

// BackwardDiff returns the backward difference of o along axis, prepending
// a zero: out[0] = o[0], out[i] = o[i] - o[i-1] for i > 0. Used by the PML
// split-field update to build the velocity divergence.
func BackwardDiff(o *Array, axis int) *Array {
	out := New(o.Shape...)
	o.Each(func(idx []int, pos int) {
		if idx[axis] == 0 {
			out.Data[pos] = o.Data[pos]
			return
		}
		prv := make([]int, len(idx))
		copy(prv, idx)
		prv[axis]--
		out.Data[pos] = o.Data[pos] - o.At(prv...)
	})
	return out
}

// Grad returns the forward-difference gradient of a scalar field, one
// component per axis.
func Grad(o *Array) []*Array {
	g := make([]*Array, o.Ndim())
	for d := range g {
		g[d] = ForwardDiff(o, d)
	}
	return g
}

// Div returns the backward-difference divergence of a vector field (one
// Array per axis, all sharing the same shape).
func Div(v []*Array) *Array {
	out := New(v[0].Shape...)
	for d, comp := range v {
		out.AddScaled(1, BackwardDiff(comp, d))
	}
	return out
}
