// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the immutable geometric and temporal descriptors
// that every other FDTD component is built against, in the same spirit as
// gofem's shape-function descriptors: plain value structs computing derived
// quantities on demand rather than caching mutable state.
package grid

import "math"

// Grid describes the geometric extent the simulation runs on: an isotropic
// N-dimensional (N=1,2,3) box of the given size and spacing, optionally
// surrounded by a perfectly matched layer of pml_thickness cells.
type Grid struct {
	Size         []float64 // extent of the grid along each axis, in meters
	Spacing      float64   // isotropic cell spacing, in meters
	PmlThickness int       // PML thickness in cells, >= 0
}

// New builds a Grid descriptor. Size determines the dimensionality.
func New(size []float64, spacing float64, pmlThickness int) *Grid {
	return &Grid{
		Size:         append([]float64{}, size...),
		Spacing:      spacing,
		PmlThickness: pmlThickness,
	}
}

// Ndim returns the number of spatial axes.
func (o *Grid) Ndim() int { return len(o.Size) }

// Shape returns the interior grid shape, in cells, along each axis.
func (o *Grid) Shape() []int {
	shape := make([]int, len(o.Size))
	for d, s := range o.Size {
		shape[d] = int(math.Floor(s / o.Spacing))
	}
	return shape
}

// FullShape returns the grid shape including the PML on every side of
// every axis.
func (o *Grid) FullShape() []int {
	shape := o.Shape()
	for d := range shape {
		shape[d] += 2 * o.PmlThickness
	}
	return shape
}
