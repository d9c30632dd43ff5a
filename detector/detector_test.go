// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package detector

import (
	"testing"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

func Test_detector_identity(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detector_identity")

	d, err := New([]int{128}, 1e-4, 1, 0, NoEdge, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Ints(tst, "downsample_shape", d.DownsampleShape(), []int{128})

	w := field.New(128)
	for i := range w.Data {
		w.Data[i] = float64(i)
	}
	sampled := d.Sample(d.GridIndex(w))
	for i := range w.Data {
		chk.Scalar(tst, "identity", 1e-15, sampled.Data[i], w.Data[i])
	}
}

func Test_detector_2d_full_boundary(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detector_2d_full_boundary")

	d, err := New([]int{128, 128}, 1e-4, 1, 1, NoEdge, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Ints(tst, "downsample_shape", d.DownsampleShape(), []int{4, 128})
}

func Test_detector_2d_edge(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detector_2d_edge")

	d, err := New([]int{128, 128}, 1e-4, 1, 1, 0, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Ints(tst, "downsample_shape", d.DownsampleShape(), []int{1, 128})
}

func Test_detector_3d_thick_boundary(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detector_3d_thick_boundary")

	d, err := New([]int{32, 32, 32}, 1e-4, 1, 5, NoEdge, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Ints(tst, "downsample_shape", d.DownsampleShape(), []int{30, 32, 32})
}

func Test_detector_geometry_mismatch(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detector_geometry_mismatch")

	_, err := New([]int{128, 64}, 1e-4, 1, 1, NoEdge, false)
	if err == nil {
		tst.Errorf("expected a GeometryMismatch error\n")
	}
}
