// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_location01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("location01")

	loc := Location{Fixed(10), Any(), Fixed(20)}
	idx, wildcard := LocationToIndex(loc, 0.1, []int{100})
	chk.Ints(tst, "idx", idx, []int{99})
	if wildcard[0] {
		tst.Errorf("axis 0 should not be a wildcard")
	}
}

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01")

	loc := Location{Fixed(0)}
	src := New(loc, []int{128}, 1e-4, 5e-6, nil, 0)

	chk.Scalar(tst, "profile(0)", 1e-15, src.Profile(0), 0)
	chk.Scalar(tst, "profile(period/4)", 1e-12, src.Profile(5e-6/4), 1)

	ncycles := 1.0
	srcGated := New(loc, []int{128}, 1e-4, 5e-6, &ncycles, 0)
	chk.Scalar(tst, "gated before cutoff", 1e-12, srcGated.Profile(5e-6*0.5), math.Sin(math.Pi))
	chk.Scalar(tst, "gated after cutoff", 1e-15, srcGated.Profile(5e-6*1.5), 0)
}

func Test_weight01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weight01")

	loc := Location{Fixed(0)}
	src := New(loc, []int{128}, 1e-4, 5e-6, nil, 0)
	w := src.Weight()
	sum := 0.0
	for _, v := range w.Data {
		sum += v
	}
	chk.Scalar(tst, "sum(weight)", 1e-15, sum, 1)
}
