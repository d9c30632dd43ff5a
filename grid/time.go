// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// Time describes the temporal extent of a run: a fixed step size over a
// fixed duration, with an optional temporal downsample factor applied when
// recording.
type Time struct {
	Step               float64 // timestep, in seconds, > 0
	Duration           float64 // total duration, in seconds, > 0
	TemporalDownsample int     // record every TemporalDownsample-th step, >= 1
}

// NewTime builds a Time descriptor.
func NewTime(step, duration float64, temporalDownsample int) *Time {
	if temporalDownsample < 1 {
		temporalDownsample = 1
	}
	return &Time{Step: step, Duration: duration, TemporalDownsample: temporalDownsample}
}

// Nsteps returns the number of simulation steps.
func (o *Time) Nsteps() int {
	return int(math.Floor(o.Duration / o.Step))
}

// NstepsDetected returns the number of steps that get recorded.
func (o *Time) NstepsDetected() int {
	return (o.Nsteps()-1)/o.TemporalDownsample + 1
}

// At returns the simulation time at the given step index.
func (o *Time) At(step int) float64 {
	return float64(step) * o.Step
}
