// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01")

	g := New([]float64{12.8e-3}, 1e-4, 20)
	chk.IntAssert(g.Ndim(), 1)
	chk.Ints(tst, "shape", g.Shape(), []int{128})
	chk.Ints(tst, "full_shape", g.FullShape(), []int{168})
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02")

	g := New([]float64{12.8e-3, 12.8e-3}, 1e-4, 20)
	chk.Ints(tst, "shape", g.Shape(), []int{128, 128})
	chk.Ints(tst, "full_shape", g.FullShape(), []int{168, 168})
}

func Test_time01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("time01")

	t := NewTime(5e-8, 20e-6, 1)
	chk.IntAssert(t.Nsteps(), 400)
	chk.IntAssert(t.NstepsDetected(), 400)

	t2 := NewTime(5e-8, 20e-6, 2)
	chk.IntAssert(t2.Nsteps(), 400)
	chk.IntAssert(t2.NstepsDetected(), 200)
}
