// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package detector implements the geometric selector that decides which
// cells of the wave field get recorded at each detected time step: the
// full (possibly spatially downsampled) grid, a slab around every face of
// the grid, or a single face.
package detector

import (
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/gofdtderr"
)

// NoEdge marks Detector.Edge as unset ("record every edge" when Boundary>0,
// or "record the whole grid" when Boundary==0).
const NoEdge = -1

// Detector selects a subset of the grid to record at each detected step.
type Detector struct {
	Shape             []int // grid shape (interior or full, depending on WithPml)
	Spacing           float64
	SpatialDownsample int // >= 1
	Boundary          int // >= 0; slab thickness in downsampled coordinates
	Edge              int // NoEdge, or in [0, 2*ndim)
	WithPml           bool

	gridShape []int
}

// New builds a Detector. It fails with a GeometryMismatch error if
// boundary>0, edge==NoEdge, and the downsampled grid shape cannot support a
// full-boundary (cubic-like) recording.
func New(shape []int, spacing float64, spatialDownsample, boundary, edge int, withPml bool) (*Detector, error) {
	if spatialDownsample < 1 {
		spatialDownsample = 1
	}
	if edge < 0 {
		edge = NoEdge
	}
	o := &Detector{
		Shape:             append([]int{}, shape...),
		Spacing:           spacing,
		SpatialDownsample: spatialDownsample,
		Boundary:          boundary,
		Edge:              edge,
		WithPml:           withPml,
	}
	o.gridShape = gridShapeOf(shape, spatialDownsample)
	if boundary > 0 && edge == NoEdge {
		if !cubicLike(o.gridShape) {
			return nil, gofdtderr.NewGeometryMismatch(o.gridShape)
		}
	}
	return o, nil
}

// gridShapeOf returns the downsampled grid shape: ceil(shape[i]/ds).
func gridShapeOf(shape []int, ds int) []int {
	out := make([]int, len(shape))
	for d, s := range shape {
		out[d] = (s-1)/ds + 1
	}
	return out
}

// cubicLike reports whether every axis-reduced (N-1)-face of shape has the
// same extent, the precondition for full-boundary recording.
func cubicLike(shape []int) bool {
	if len(shape) == 1 {
		return true
	}
	var want []int
	for dim := range shape {
		face := removeAxis(shape, dim)
		if want == nil {
			want = face
			continue
		}
		if !equalInts(face, want) {
			return false
		}
	}
	return true
}

func removeAxis(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	for d, s := range shape {
		if d == axis {
			continue
		}
		out = append(out, s)
	}
	return out
}

func equalInts(a, b []int) bool {
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

// GridShape returns the downsampled grid shape.
func (o *Detector) GridShape() []int { return append([]int{}, o.gridShape...) }

// DownsampleShape returns the shape of a single detected frame.
func (o *Detector) DownsampleShape() []int {
	if o.Boundary == 0 {
		return o.GridShape()
	}
	if o.Edge == NoEdge {
		face := removeAxis(o.gridShape, 0)
		return append([]int{2 * len(o.gridShape) * o.Boundary}, face...)
	}
	dim := o.Edge % len(o.gridShape)
	face := removeAxis(o.gridShape, dim)
	return append([]int{o.Boundary}, face...)
}

// GridIndex applies the detector's spatial stride to w, which must have
// Detector.Shape.
func (o *Detector) GridIndex(w *field.Array) *field.Array {
	return field.StridedView(w, o.SpatialDownsample)
}

// Sample applies the boundary/edge selection to w, which must already be
// strided to the downsampled grid shape (i.e. the result of GridIndex).
func (o *Detector) Sample(w *field.Array) *field.Array {
	if o.Boundary == 0 {
		return w
	}
	if o.Edge == NoEdge {
		slabs := make([]*field.Array, 0, 2*w.Ndim())
		for dim := 0; dim < w.Ndim(); dim++ {
			lower := field.SliceAxis(w, dim, 0, o.Boundary)
			upper := field.SliceAxis(w, dim, w.Shape[dim]-o.Boundary, w.Shape[dim])
			slabs = append(slabs, field.MoveAxisToFront(lower, dim))
			slabs = append(slabs, field.MoveAxisToFront(upper, dim))
		}
		return field.ConcatAxis0(slabs)
	}
	dim := o.Edge % w.Ndim()
	var slab *field.Array
	if o.Edge < w.Ndim() {
		slab = field.SliceAxis(w, dim, 0, o.Boundary)
	} else {
		slab = field.SliceAxis(w, dim, w.Shape[dim]-o.Boundary, w.Shape[dim])
	}
	return field.MoveAxisToFront(slab, dim)
}
