// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gofdtd/speed"
)

// SingleSourceParams bundles the arguments RunSingleSource needs, mirroring
// the reference implementation's run_single_source keyword arguments.
type SingleSourceParams struct {
	Ctx context.Context // nil means context.Background()

	Size         []float64
	Spacing      float64
	MaxSpeed     float64
	TimeStep     *float64
	PmlThickness int

	SpeedSampler speed.Sampler // used when SpeedValue is nil
	SpeedValue   *field.Array  // explicit speed field; overrides SpeedSampler
	MinSpeed     float64
	Seed         *int64 // seeds gosl/rnd before sampling, for reproducible speed fields

	Location source.Location
	Period   float64
	Ncycles  *float64
	Phase    float64

	SpatialDownsample  int
	Boundary           int
	Edge               int
	WithPml            bool
	Duration           float64
	TemporalDownsample int

	Verbose bool
}

// ctxOrBackground returns ctx if non-nil, else context.Background().
func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// RunSingleSource builds a Simulation from p, generates or accepts a speed
// field, attaches one source and one detector, runs it, and returns the
// detected wave together with the grid speed with a leading singleton axis
// prepended (so RunMultipleSources's stacked output and this one share a
// shape convention).
func RunSingleSource(p SingleSourceParams) (detectedWave, gridSpeed *field.Array, err error) {
	s, err := New(p.Size, p.Spacing, p.MaxSpeed, p.TimeStep, p.PmlThickness)
	if err != nil {
		return nil, nil, err
	}
	s.Verbose = p.Verbose

	value := p.SpeedValue
	if value == nil {
		sampler := p.SpeedSampler
		if sampler == "" {
			sampler = speed.Flat
		}
		speed.NewRandomSource(p.Seed)
		value, err = speed.Sample(sampler, s.Grid().Shape(), p.MinSpeed, p.MaxSpeed)
		if err != nil {
			return nil, nil, err
		}
	}
	if err = s.SetSpeed(value, p.MinSpeed, p.MaxSpeed); err != nil {
		return nil, nil, err
	}

	s.AddSource(p.Location, p.Period, p.Ncycles, p.Phase)
	if err = s.AddDetector(p.SpatialDownsample, p.Boundary, p.Edge, p.WithPml); err != nil {
		return nil, nil, err
	}
	if err = s.Run(ctxOrBackground(p.Ctx), p.Duration, p.TemporalDownsample); err != nil {
		return nil, nil, err
	}

	return s.DetectedWave(), withLeadingAxis(s.GridSpeed()), nil
}

// MultipleSourcesParams bundles the arguments RunMultipleSources needs. It
// embeds SingleSourceParams, whose Location field is ignored: the source
// positions are supplied as Locations, and Period, Ncycles and Phase apply
// to every source.
type MultipleSourcesParams struct {
	SingleSourceParams
	Locations []source.Location
}

// RunMultipleSources builds one shared speed field and runs a Simulation
// per entry in p.Locations against it, stacking the detected waves along a
// new leading axis. The returned grid speed carries two leading singleton
// axes, matching the reference implementation's broadcasting convention
// for the multi-source case.
func RunMultipleSources(p MultipleSourcesParams) (detectedWaves, gridSpeed *field.Array, err error) {
	base, err := New(p.Size, p.Spacing, p.MaxSpeed, p.TimeStep, p.PmlThickness)
	if err != nil {
		return nil, nil, err
	}

	value := p.SpeedValue
	if value == nil {
		sampler := p.SpeedSampler
		if sampler == "" {
			sampler = speed.Flat
		}
		speed.NewRandomSource(p.Seed)
		value, err = speed.Sample(sampler, base.Grid().Shape(), p.MinSpeed, p.MaxSpeed)
		if err != nil {
			return nil, nil, err
		}
	}

	ctx := ctxOrBackground(p.Ctx)
	frames := make([]*field.Array, len(p.Locations))
	var sharedSpeed *field.Array
	for i, loc := range p.Locations {
		s, err := New(p.Size, p.Spacing, p.MaxSpeed, p.TimeStep, p.PmlThickness)
		if err != nil {
			return nil, nil, err
		}
		s.Verbose = p.Verbose
		if err = s.SetSpeed(value, p.MinSpeed, p.MaxSpeed); err != nil {
			return nil, nil, err
		}
		s.AddSource(loc, p.Period, p.Ncycles, p.Phase)
		if err = s.AddDetector(p.SpatialDownsample, p.Boundary, p.Edge, p.WithPml); err != nil {
			return nil, nil, err
		}
		if err = s.Run(ctx, p.Duration, p.TemporalDownsample); err != nil {
			return nil, nil, err
		}
		frames[i] = s.DetectedWave()
		sharedSpeed = s.GridSpeed()
	}

	stacked := field.New(append([]int{len(frames)}, frames[0].Shape...)...)
	for i, frame := range frames {
		field.SetFrame(stacked, i, frame)
	}

	return stacked, withLeadingAxis(withLeadingAxis(sharedSpeed)), nil
}

// withLeadingAxis returns a in, unrolled with a new leading axis of size 1.
func withLeadingAxis(a *field.Array) *field.Array {
	out := field.New(append([]int{1}, a.Shape...)...)
	copy(out.Data, a.Data)
	return out
}
