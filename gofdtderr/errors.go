// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gofdtderr holds the closed set of error kinds the engine can
// report. gofem itself reports construction failures as untyped strings
// built with gosl/chk.Err, because its callers only ever print and abort.
// Here callers need to distinguish StabilityViolation from GeometryMismatch
// from MissingSource, etc, so each kind gets its own type discoverable with
// errors.As. The formatted messages underneath are still built with
// gosl/chk.Err's conventions.
package gofdtderr

import "github.com/cpmech/gosl/chk"

// StabilityViolation reports a user-supplied time step larger than the
// Courant-stable maximum.
type StabilityViolation struct {
	TimeStep float64
	MaxStep  float64
}

func (e *StabilityViolation) Error() string {
	return chk.Err("time step %g exceeds maximum stable time step %g", e.TimeStep, e.MaxStep).Error()
}

// NewStabilityViolation builds a StabilityViolation error.
func NewStabilityViolation(timeStep, maxStep float64) error {
	return &StabilityViolation{TimeStep: timeStep, MaxStep: maxStep}
}

// GeometryMismatch reports a full-boundary detector requested on a grid
// whose downsampled axes do not all reduce to an equal (N-1)-face.
type GeometryMismatch struct {
	GridShape []int
}

func (e *GeometryMismatch) Error() string {
	return chk.Err("grid shape %v does not allow for full boundary detection; use a single edge instead", e.GridShape).Error()
}

// NewGeometryMismatch builds a GeometryMismatch error.
func NewGeometryMismatch(gridShape []int) error {
	return &GeometryMismatch{GridShape: append([]int{}, gridShape...)}
}

// MissingSource reports Run called before AddSource.
type MissingSource struct{}

func (e *MissingSource) Error() string {
	return chk.Err("please add a source before running, use Simulation.AddSource").Error()
}

// NewMissingSource builds a MissingSource error.
func NewMissingSource() error { return &MissingSource{} }

// MissingDetector reports Run called before AddDetector.
type MissingDetector struct{}

func (e *MissingDetector) Error() string {
	return chk.Err("please add a detector before running, use Simulation.AddDetector").Error()
}

// NewMissingDetector builds a MissingDetector error.
func NewMissingDetector() error { return &MissingDetector{} }

// UnknownSampler reports a speed-sampler tag outside the closed catalog.
type UnknownSampler struct {
	Tag string
}

func (e *UnknownSampler) Error() string {
	return chk.Err("speed sampling method %q not recognized", e.Tag).Error()
}

// NewUnknownSampler builds an UnknownSampler error.
func NewUnknownSampler(tag string) error { return &UnknownSampler{Tag: tag} }

// ShapeMismatch reports a speed array whose rank is neither
// scalar-broadcastable nor grid-matching.
type ShapeMismatch struct {
	Got  []int
	Want []int
}

func (e *ShapeMismatch) Error() string {
	return chk.Err("speed array shape %v cannot be broadcast or resampled to grid shape %v", e.Got, e.Want).Error()
}

// NewShapeMismatch builds a ShapeMismatch error.
func NewShapeMismatch(got, want []int) error {
	return &ShapeMismatch{Got: append([]int{}, got...), Want: append([]int{}, want...)}
}

// WithPmlBoundaryConflict reports with_pml=true combined with boundary>0,
// a combination Simulation.AddDetector rejects outright.
type WithPmlBoundaryConflict struct {
	Boundary int
}

func (e *WithPmlBoundaryConflict) Error() string {
	return chk.Err("detector with_pml=true requires boundary=0, got boundary=%d", e.Boundary).Error()
}

// NewWithPmlBoundaryConflict builds a WithPmlBoundaryConflict error.
func NewWithPmlBoundaryConflict(boundary int) error {
	return &WithPmlBoundaryConflict{Boundary: boundary}
}
