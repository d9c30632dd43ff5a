// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"testing"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

func Test_sigma_nonnegative_and_zero_interior(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sigma_nonnegative_and_zero_interior")

	eq := New([]int{168}, 5e-8, 1e-4, 20)
	for d, s := range eq.σ {
		for i, v := range s.Data {
			if v < 0 {
				tst.Errorf("sigma[%d][%d] = %g is negative\n", d, i, v)
			}
		}
	}
	// interior cells (indices 20..147) must have sigma == 0
	interior := field.SliceAxis(eq.σ[0], 0, 20, 148)
	for _, v := range interior.Data {
		chk.Scalar(tst, "interior sigma", 1e-15, v, 0)
	}
}

func Test_zero_source_keeps_silence(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero_source_keeps_silence")

	eq := New([]int{40}, 5e-8, 1e-4, 10)
	c := field.New(40)
	c.Fill(686)
	q := field.New(40)

	for step := 0; step < 10; step++ {
		eq.Update(c, q)
	}
	for _, v := range eq.P.Data {
		chk.Scalar(tst, "pressure", 1e-15, v, 0)
	}
}
