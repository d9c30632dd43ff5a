// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements a dense N-dimensional (N=1,2,3) float64 array,
// the common representation for every physical quantity carried by the
// FDTD engine: pressure, velocity components, PML damping, speed and the
// detected output buffers.
//
// There is no dedicated N-dimensional dense array in gosl (la.MatAlloc and
// utl.Deep3alloc only go up to rank 2 and 3 respectively, each with its own
// nested-slice shape) so Array keeps a single flat backing slice and walks
// it with strides, the same flattening gofem uses internally for global
// vectors handed to gosl/la routines.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Array is a dense row-major N-dimensional array of float64.
type Array struct {
	Shape   []int     // length of each axis
	Strides []int     // row-major strides, len(Strides) == len(Shape)
	Data    la.Vector // flat backing storage, len(Data) == product(Shape)
}

// New allocates a zeroed Array with the given shape.
func New(shape ...int) *Array {
	if len(shape) == 0 {
		chk.Panic("field.New: shape must have at least one axis")
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			chk.Panic("field.New: shape axes must be positive, got %v", shape)
		}
		n *= s
	}
	o := &Array{
		Shape:   append([]int{}, shape...),
		Strides: stridesOf(shape),
		Data:    make(la.Vector, n),
	}
	return o
}

// stridesOf computes row-major strides for shape.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}
	return strides
}

// Ndim returns the number of axes.
func (o *Array) Ndim() int { return len(o.Shape) }

// Len returns the total number of elements.
func (o *Array) Len() int { return len(o.Data) }

// offset converts a multi-index into a flat offset into Data.
func (o *Array) offset(idx []int) int {
	if len(idx) != len(o.Shape) {
		chk.Panic("field.Array: index rank %d does not match array rank %d", len(idx), len(o.Shape))
	}
	pos := 0
	for d, i := range idx {
		if i < 0 || i >= o.Shape[d] {
			chk.Panic("field.Array: index %d out of range [0,%d) on axis %d", i, o.Shape[d], d)
		}
		pos += i * o.Strides[d]
	}
	return pos
}

// At returns the value at idx.
func (o *Array) At(idx ...int) float64 {
	return o.Data[o.offset(idx)]
}

// Set assigns v at idx.
func (o *Array) Set(v float64, idx ...int) {
	o.Data[o.offset(idx)] = v
}

// Fill sets every element to v.
func (o *Array) Fill(v float64) {
	for i := range o.Data {
		o.Data[i] = v
	}
}

// Clone returns a deep copy of o.
func (o *Array) Clone() *Array {
	c := &Array{
		Shape:   append([]int{}, o.Shape...),
		Strides: append([]int{}, o.Strides...),
		Data:    make(la.Vector, len(o.Data)),
	}
	copy(c.Data, o.Data)
	return c
}

// SameShape returns true if o and b have identical shapes.
func (o *Array) SameShape(b *Array) bool {
	if len(o.Shape) != len(b.Shape) {
		return false
	}
	for d := range o.Shape {
		if o.Shape[d] != b.Shape[d] {
			return false
		}
	}
	return true
}

// AddScaled performs o.Data[i] += alpha * b.Data[i] element-wise. Panics if
// shapes differ.
func (o *Array) AddScaled(alpha float64, b *Array) {
	if !o.SameShape(b) {
		chk.Panic("field.Array.AddScaled: shape mismatch %v != %v", o.Shape, b.Shape)
	}
	for i := range o.Data {
		o.Data[i] += alpha * b.Data[i]
	}
}

// Each calls f with every multi-index of o, in row-major order.
func (o *Array) Each(f func(idx []int, pos int)) {
	idx := make([]int, len(o.Shape))
	for pos := range o.Data {
		f(idx, pos)
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < o.Shape[d] {
				break
			}
			idx[d] = 0
		}
	}
}

// Max returns the maximum element and its multi-index.
func (o *Array) Max() (max float64, idx []int) {
	max = o.Data[0]
	best := 0
	for pos, v := range o.Data {
		if v > max {
			max = v
			best = pos
		}
	}
	idx = make([]int, len(o.Shape))
	pos := best
	for d := 0; d < len(o.Shape); d++ {
		idx[d] = pos / o.Strides[d]
		pos -= idx[d] * o.Strides[d]
	}
	return
}
