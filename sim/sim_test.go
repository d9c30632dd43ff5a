// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"testing"

	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gosl/chk"
)

func Test_new_derives_stable_timestep(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new_derives_stable_timestep")

	s, err := New([]float64{0.01}, 1e-4, 1e4, nil, 20)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if s.TimeStep() <= 0 {
		tst.Errorf("expected a positive derived timestep, got %g\n", s.TimeStep())
	}
	if s.TimeStep() > 0.9*1e-4/1e4 {
		tst.Errorf("derived timestep %g exceeds the Courant limit\n", s.TimeStep())
	}
}

func Test_new_rejects_unstable_explicit_timestep(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new_rejects_unstable_explicit_timestep")

	bad := 1.0
	_, err := New([]float64{0.01}, 1e-4, 1e4, &bad, 20)
	if err == nil {
		tst.Errorf("expected a StabilityViolation error\n")
	}
}

func Test_run_requires_source_and_detector(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run_requires_source_and_detector")

	s, err := New([]float64{0.01}, 1e-4, 1e4, nil, 5)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := s.Run(context.Background(), 1e-5, 1); err == nil {
		tst.Errorf("expected MissingSource error\n")
	}

	s.AddSource(source.Location{source.Any()}, 1e-6, nil, 0)
	if err := s.Run(context.Background(), 1e-5, 1); err == nil {
		tst.Errorf("expected MissingDetector error\n")
	}
}

func Test_run_records_expected_nsteps(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run_records_expected_nsteps")

	s, err := New([]float64{0.01}, 1e-4, 1e4, nil, 5)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	s.AddSource(source.Location{source.Fixed(0.005)}, 5e-6, nil, 0)
	if err := s.AddDetector(1, 0, -1, false); err != nil {
		tst.Errorf("AddDetector failed: %v\n", err)
		return
	}

	duration := 20 * s.TimeStep()
	if err := s.Run(context.Background(), duration, 2); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	wave := s.DetectedWave()
	if wave.Shape[0] != s.Time().NstepsDetected() {
		tst.Errorf("detected_wave.shape[0]=%d != nsteps_detected=%d\n", wave.Shape[0], s.Time().NstepsDetected())
	}
}

func Test_run_cancellation_returns_partial_buffers(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run_cancellation_returns_partial_buffers")

	s, err := New([]float64{0.01}, 1e-4, 1e4, nil, 5)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	s.AddSource(source.Location{source.Fixed(0.005)}, 5e-6, nil, 0)
	if err := s.AddDetector(1, 0, -1, false); err != nil {
		tst.Errorf("AddDetector failed: %v\n", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	duration := 20 * s.TimeStep()
	if err := s.Run(ctx, duration, 2); err == nil {
		tst.Errorf("expected a cancellation error\n")
	}
	if s.DetectedWave() == nil {
		tst.Errorf("expected a partial buffer to still be allocated\n")
	}
}

func Test_run_single_source_shapes(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run_single_source_shapes")

	dt := 5e-9
	wave, gridSpeed, err := RunSingleSource(SingleSourceParams{
		Size:               []float64{0.01},
		Spacing:            1e-4,
		MaxSpeed:           1e4,
		TimeStep:           &dt,
		PmlThickness:       5,
		MinSpeed:           1e4,
		Location:           source.Location{source.Any()},
		Period:             5e-6,
		SpatialDownsample:  1,
		Boundary:           0,
		Edge:               -1,
		Duration:           20 * dt,
		TemporalDownsample: 1,
	})
	if err != nil {
		tst.Errorf("RunSingleSource failed: %v\n", err)
		return
	}
	if gridSpeed.Shape[0] != 1 {
		tst.Errorf("expected a leading singleton axis, got shape %v\n", gridSpeed.Shape)
	}
	if wave.Ndim() != 2 {
		tst.Errorf("expected a rank-2 detected wave, got shape %v\n", wave.Shape)
	}
}
