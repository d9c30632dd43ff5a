// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speed

import (
	"testing"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

func Test_flat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flat01")

	f := Flat([]int{8, 8}, 343)
	for _, v := range f.Array.Data {
		chk.Scalar(tst, "flat speed", 1e-15, v, 343)
	}
}

func Test_clip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clip01")

	scalar := field.New(1)
	scalar.Data[0] = 900
	f, err := New([]int{4}, scalar, 0, 686, 686)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	for _, v := range f.Array.Data {
		chk.Scalar(tst, "clipped speed", 1e-15, v, 686)
	}
}

func Test_sample_flat(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample_flat")

	arr, err := Sample(Flat, []int{4, 4}, 100, 300)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}
	for _, v := range arr.Data {
		chk.Scalar(tst, "flat sample", 1e-15, v, 100)
	}
}

func Test_sample_unknown(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample_unknown")

	_, err := Sample("not-a-real-sampler", []int{4}, 0, 1)
	if err == nil {
		tst.Errorf("expected an UnknownSampler error\n")
	}
}

func Test_new_random_source_reproducible(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new_random_source_reproducible")

	seed := int64(42)

	NewRandomSource(&seed)
	a, err := Sample(Random, []int{8}, 100, 300)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}

	NewRandomSource(&seed)
	b, err := Sample(Random, []int{8}, 100, 300)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}

	for i := range a.Data {
		chk.Scalar(tst, "seeded sample", 1e-15, a.Data[i], b.Data[i])
	}
}

func Test_sample_ifft_range(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample_ifft_range")

	arr, err := Sample(Ifft, []int{16, 16}, 100, 300)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}
	for _, v := range arr.Data {
		if v < 100-1e-9 || v > 300+1e-9 {
			tst.Errorf("ifft sample %g outside [100,300]\n", v)
		}
	}
}
