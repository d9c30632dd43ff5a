// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements Simulation, the orchestrator binding Grid, Time,
// Source, Detector, SpeedField and the wave equation into a runnable FDTD
// experiment, the way gofem's fem.FEM binds input data, domains and a
// solver into a runnable finite-element analysis.
package sim

import (
	"context"
	"math"

	"github.com/cpmech/gofdtd/detector"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/gofdtderr"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gofdtd/speed"
	"github.com/cpmech/gofdtd/wave"
	"github.com/cpmech/gosl/io"
)

// Simulation orchestrates a single FDTD run: build the grid, derive a
// stable time step, accept a speed field, a source and a detector, and run
// the split-field PML wave equation, recording samples as it goes.
//
// Right now, like the reference implementation, only one source and one
// detector can be attached per Simulation; RunMultipleSources covers the
// multi-source case by running several Simulations that share a speed
// field.
type Simulation struct {
	Verbose bool // show progress messages via gosl/io, mirroring fem.FEM.ShowMsg

	grid          *grid.Grid
	maxSpeed      float64
	timeStep      float64
	gridSpeed     *speed.Field
	source        *source.Source
	detector      *detector.Detector
	recordWithPml bool

	time         *grid.Time
	detectedWave *field.Array
	detectedSrc  *field.Array
	ran          bool
}

// New builds a Simulation on a grid of the given size and spacing,
// surrounded by a PML of pmlThickness cells. If timeStep is nil the
// largest stable step is derived and rounded down to one significant
// digit; if timeStep is set it must not exceed the Courant-stable maximum,
// or a StabilityViolation error is returned.
func New(size []float64, spacing, maxSpeed float64, timeStep *float64, pmlThickness int) (*Simulation, error) {
	g := grid.New(size, spacing, pmlThickness)
	maxStep := courantNumber(g.Ndim()) * spacing / maxSpeed

	var step float64
	if timeStep != nil {
		if *timeStep > maxStep {
			return nil, gofdtderr.NewStabilityViolation(*timeStep, maxStep)
		}
		step = *timeStep
	} else {
		step = roundDownOneSigFig(maxStep)
	}

	o := &Simulation{
		grid:      g,
		maxSpeed:  maxSpeed,
		timeStep:  step,
		gridSpeed: speed.Flat(g.Shape(), maxSpeed),
	}
	return o, nil
}

// courantNumber returns 0.9/sqrt(ndim), the stable upper bound on the
// Courant number for an ndim-dimensional explicit update.
func courantNumber(ndim int) float64 {
	return 0.9 / math.Sqrt(float64(ndim))
}

// roundDownOneSigFig rounds v down to a single significant decimal digit,
// e.g. 5.047e-7 -> 5e-7.
func roundDownOneSigFig(v float64) float64 {
	power := math.Pow(10, math.Floor(math.Log10(v)))
	coef := math.Floor(v / power)
	return coef * power
}

// Grid returns the grid the simulation is defined on.
func (o *Simulation) Grid() *grid.Grid { return o.grid }

// TimeStep returns the derived or user-supplied stable timestep.
func (o *Simulation) TimeStep() float64 { return o.timeStep }

// Time returns the Time descriptor built by the most recent Run, or nil if
// Run has not been called yet.
func (o *Simulation) Time() *grid.Time { return o.time }

// Detector returns the detector attached to the simulation, or nil.
func (o *Simulation) Detector() *detector.Detector { return o.detector }

// GridSpeed returns the interior speed-of-wave array.
func (o *Simulation) GridSpeed() *field.Array { return o.gridSpeed.Array }

// DetectedWave returns the recorded wave buffer. It is only valid after Run
// has completed successfully.
func (o *Simulation) DetectedWave() *field.Array { return o.detectedWave }

// DetectedSource returns the recorded source buffer. It is only valid after
// Run has completed successfully.
func (o *Simulation) DetectedSource() *field.Array { return o.detectedSrc }

// SetSpeed sets the interior speed field from a scalar or array value,
// clipped to [minSpeed, min(maxSpeed, simMaxSpeed)] and resampled onto the
// grid shape if needed. It invalidates any previous Run.
func (o *Simulation) SetSpeed(value *field.Array, minSpeed, maxSpeed float64) error {
	f, err := speed.New(o.grid.Shape(), value, minSpeed, maxSpeed, o.maxSpeed)
	if err != nil {
		return err
	}
	o.gridSpeed = f
	o.ran = false
	return nil
}

// AddSource attaches a sinusoidal source at the given location, with the
// given period, optional cycle gate and phase. It invalidates any previous
// Run.
func (o *Simulation) AddSource(loc source.Location, period float64, ncycles *float64, phase float64) {
	o.source = source.New(loc, o.grid.Shape(), o.grid.Spacing, period, ncycles, phase)
	o.ran = false
}

// AddDetector attaches a detector with the given spatial downsample,
// boundary thickness and edge selection. If withPml is true the detector
// is built against the full (PML-inclusive) grid shape and boundary must be
// zero; withPml combined with boundary>0 fails with WithPmlBoundaryConflict.
// It invalidates any previous Run.
func (o *Simulation) AddDetector(spatialDownsample, boundary, edge int, withPml bool) error {
	if withPml && boundary > 0 {
		return gofdtderr.NewWithPmlBoundaryConflict(boundary)
	}
	shape := o.grid.Shape()
	if withPml {
		shape = o.grid.FullShape()
	}
	d, err := detector.New(shape, o.grid.Spacing, spatialDownsample, boundary, edge, withPml)
	if err != nil {
		return err
	}
	o.detector = d
	o.recordWithPml = withPml
	o.ran = false
	return nil
}

// Run drives the simulation for the given duration, recording every
// temporalDownsample-th step into DetectedWave/DetectedSource. A source and
// a detector must already be attached.
//
// ctx is checked once per iteration; on cancellation Run returns ctx.Err()
// and leaves DetectedWave/DetectedSource holding whatever steps were
// recorded before the cut, not zeroed buffers. Run does not otherwise touch
// ctx: there is no I/O or deadline-bound work in the step loop.
func (o *Simulation) Run(ctx context.Context, duration float64, temporalDownsample int) error {
	if o.source == nil {
		return gofdtderr.NewMissingSource()
	}
	if o.detector == nil {
		return gofdtderr.NewMissingDetector()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	o.time = grid.NewTime(o.timeStep, duration, temporalDownsample)
	paddedSpeed := o.gridSpeed.Padded(o.grid.PmlThickness)
	eq := wave.New(o.grid.FullShape(), o.time.Step, o.grid.Spacing, o.grid.PmlThickness)

	frameShape := append([]int{o.time.NstepsDetected()}, o.detector.DownsampleShape()...)
	o.detectedWave = field.New(frameShape...)
	o.detectedSrc = field.New(frameShape...)

	if o.Verbose {
		io.Pf("> running %d steps (%d recorded)\n", o.time.Nsteps(), o.time.NstepsDetected())
	}

	for step := 0; step < o.time.Nsteps(); step++ {
		if err := ctx.Err(); err != nil {
			if o.Verbose {
				io.PfRed("> cancelled at step %d/%d\n", step, o.time.Nsteps())
			}
			return err
		}

		t := o.time.At(step)

		sourceInterior := o.source.Value(t)
		sourcePadded := field.PadConstant(sourceInterior, o.grid.PmlThickness)

		eq.Update(paddedSpeed, sourcePadded)

		if step%temporalDownsample == 0 {
			index := step / temporalDownsample

			waveRecorded := o.recordedView(eq.P)
			o.writeFrame(o.detectedWave, index, waveRecorded)

			srcRecorded := o.recordedView(sourcePadded)
			o.writeFrame(o.detectedSrc, index, srcRecorded)
		}
	}

	o.ran = true
	if o.Verbose {
		io.PfGreen("> simulation complete\n")
	}
	return nil
}

// recordedView trims the PML out of w (unless the detector was built with
// with_pml) and applies the detector's spatial stride.
func (o *Simulation) recordedView(w *field.Array) *field.Array {
	view := w
	if !o.recordWithPml && o.grid.PmlThickness > 0 {
		view = field.Interior(w, o.grid.PmlThickness)
	}
	return o.detector.GridIndex(view)
}

// writeFrame samples view through the detector's boundary algebra and
// writes it into dst at the given time index.
func (o *Simulation) writeFrame(dst *field.Array, index int, view *field.Array) {
	field.SetFrame(dst, index, o.detector.Sample(view))
}
