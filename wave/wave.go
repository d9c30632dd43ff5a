// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wave implements the split-field pressure/velocity FDTD core with
// a perfectly matched layer absorbing boundary, structured the way gofem's
// material models are: immutable parameters fixed by New, mutable state
// advanced one Update call per time step.
package wave

import (
	"math"

	"github.com/cpmech/gofdtd/field"
)

// pmlExponent is the damping ramp exponent used by the reference
// implementation (σ ramps as ((L-i)/L)^p).
const pmlExponent = 3.0

// Equation holds the split-field PML state: pressure P, velocity v (one
// component per axis) and the precomputed damping field σ (one component
// per axis, zero outside the PML slabs).
type Equation struct {
	Dt  float64 // timestep
	Dx  float64 // grid spacing
	Pml int     // PML thickness in cells

	P *field.Array   // pressure, shape full_shape
	V []*field.Array // velocity, ndim components, each shape full_shape
	σ []*field.Array // PML damping, ndim components, each shape full_shape
}

// New builds an Equation over a grid of the given full shape (interior plus
// PML on every side), ready to run with timestep dt, spacing dx and PML
// thickness pml.
func New(fullShape []int, dt, dx float64, pml int) *Equation {
	ndim := len(fullShape)
	o := &Equation{
		Dt:  dt,
		Dx:  dx,
		Pml: pml,
		P:   field.New(fullShape...),
		V:   make([]*field.Array, ndim),
		σ:   make([]*field.Array, ndim),
	}
	for d := 0; d < ndim; d++ {
		o.V[d] = field.New(fullShape...)
		o.σ[d] = buildSigma(fullShape, d, pml)
	}
	return o
}

// buildSigma builds the PML damping field along axis d: it ramps from
// sigma_max at the outer face to 0 at the interior face over the lower and
// upper slabs of thickness pml, and is zero in the interior. sigma_max is
// taken equal to the PML thickness, an empirical choice rather than one
// derived from a reflection target, and may be reparameterized.
func buildSigma(fullShape []int, axis, pml int) *field.Array {
	out := field.New(fullShape...)
	if pml == 0 {
		return out
	}
	sigmaMax := float64(pml)
	n := fullShape[axis]
	out.Each(func(idx []int, pos int) {
		i := idx[axis]
		switch {
		case i < pml:
			// lower slab: outer face (i=0) has full damping, ramps to 0 at i=pml
			frac := float64(pml-i) / float64(pml)
			out.Data[pos] = math.Pow(frac, pmlExponent) * sigmaMax
		case i >= n-pml:
			frac := float64(i-(n-pml)+1) / float64(pml)
			out.Data[pos] = math.Pow(frac, pmlExponent) * sigmaMax
		default:
			out.Data[pos] = 0
		}
	})
	return out
}

// Update advances the pressure/velocity state by one timestep, driven by
// the padded speed field c and the padded source field q. c and q must
// share P's shape.
//
// D = dt/dx. The four-step split-field PML update:
//  1. g = grad(P), forward differences with a zero appended at the far edge.
//  2. v -= D*g + dt*c*sigma*v
//  3. d_v = div(v), backward differences with a zero prepended.
//  4. P -= D*c^2*d_v + dt*c*(sum_d sigma_d)*P - q
func (o *Equation) Update(c, q *field.Array) {
	D := o.Dt / o.Dx
	ndim := len(o.V)

	g := field.Grad(o.P)
	for d := 0; d < ndim; d++ {
		damping := mul(mul(c, o.σ[d]), o.V[d])
		o.V[d].AddScaled(-D, g[d])
		o.V[d].AddScaled(-o.Dt, damping)
	}

	dv := field.Div(o.V)
	c2 := mul(c, c)
	sigmaSum := field.New(o.P.Shape...)
	for d := 0; d < ndim; d++ {
		sigmaSum.AddScaled(1, o.σ[d])
	}
	pDamping := mul(mul(c, sigmaSum), o.P)

	o.P.AddScaled(-D, mul(c2, dv))
	o.P.AddScaled(-o.Dt, pDamping)
	o.P.AddScaled(1, q)
}

// mul returns the elementwise product of a and b as a new Array.
func mul(a, b *field.Array) *field.Array {
	out := a.Clone()
	for i := range out.Data {
		out.Data[i] *= b.Data[i]
	}
	return out
}
