// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speed

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/gofdtderr"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Sampler is the closed set of speed-field generation tags. Unlike gofem's
// registry of solver/element allocators (a map of name to constructor),
// this set never grows at runtime, so a plain tagged switch in Sample()
// below is enough: no registration mechanism is needed.
type Sampler string

// The closed catalog of speed samplers.
const (
	Flat               Sampler = "flat"
	Random             Sampler = "random"
	Ifft               Sampler = "ifft"
	Fourier            Sampler = "fourier"
	MixedRandomIfft    Sampler = "mixed_random_ifft"
	MixedRandomFourier Sampler = "mixed_random_fourier"
)

// NewRandomSource seeds the package-level random generator gosl/rnd uses
// for every sampler below. A nil seed yields a non-reproducible,
// time-derived sequence; a non-nil seed makes sampleRandom/sampleIfft/
// sampleFourier's draws reproducible across runs.
func NewRandomSource(seed *int64) {
	if seed == nil {
		rnd.Init(0)
		return
	}
	rnd.Init(int(*seed))
}

// Sample generates a speed field on shape within [minSpeed, maxSpeed]
// according to the requested sampler tag.
func Sample(tag Sampler, shape []int, minSpeed, maxSpeed float64) (*field.Array, error) {
	switch tag {
	case Flat:
		out := field.New(shape...)
		out.Fill(minSpeed)
		return out, nil
	case Random:
		return sampleRandom(shape, minSpeed, maxSpeed), nil
	case Ifft:
		return sampleIfft(shape, minSpeed, maxSpeed), nil
	case Fourier:
		return sampleFourier(shape, minSpeed, maxSpeed), nil
	case MixedRandomIfft:
		if rnd.Float64(0, 1) > 0.5 {
			return sampleRandom(shape, minSpeed, maxSpeed), nil
		}
		return sampleIfft(shape, minSpeed, maxSpeed), nil
	case MixedRandomFourier:
		if rnd.Float64(0, 1) > 0.5 {
			return sampleRandom(shape, minSpeed, maxSpeed), nil
		}
		return sampleFourier(shape, minSpeed, maxSpeed), nil
	default:
		return nil, gofdtderr.NewUnknownSampler(string(tag))
	}
}

func sampleRandom(shape []int, minSpeed, maxSpeed float64) *field.Array {
	out := field.New(shape...)
	for i := range out.Data {
		out.Data[i] = rnd.Float64(minSpeed, maxSpeed)
	}
	return out
}

// sampleIfft builds the tensor product of per-axis 1-D ifft samples (§4.2)
// and rescales into [minSpeed, maxSpeed].
func sampleIfft(shape []int, minSpeed, maxSpeed float64) *field.Array {
	axisSamples := make([][]float64, len(shape))
	for d, n := range shape {
		axisSamples[d] = ifftSample1D(n)
	}
	out := field.New(shape...)
	out.Each(func(idx []int, pos int) {
		v := 1.0
		for d, i := range idx {
			v *= axisSamples[d][i]
		}
		out.Data[pos] = minSpeed + v*(maxSpeed-minSpeed)
	})
	return out
}

// ifftSample1D draws a random low-frequency cutoff k, a nonnegative weight
// vector of length k normalized to sum 1, inverse-transforms a length-n
// spectrum whose first k bins hold those weights and the rest are zero,
// applies a random cyclic shift, and clips |.| to [0,1].
//
// The inverse transform uses gonum's complex FFT (gonum.org/v1/gonum/dsp/fourier),
// the same FFT package the audio-processing repo in the retrieval pack uses
// for its spectral analysis, rather than a hand-rolled DFT.
func ifftSample1D(n int) []float64 {
	k := rnd.Int(1, n)
	w := make([]float64, k)
	sum := 0.0
	for i := range w {
		w[i] = rnd.Float64(0, 1)
		sum += w[i]
	}
	spectrum := make([]complex128, n)
	for i := 0; i < k; i++ {
		spectrum[i] = complex(float64(n)*w[i]/sum, 0)
	}
	fft := fourier.NewCmplxFFT(n)
	timeDomain := fft.Sequence(nil, spectrum)

	shift := rnd.Int(0, n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		src := (i - shift + n) % n
		v := cmplx.Abs(timeDomain[src]) / float64(n)
		out[i] = clip(v, 0, 1)
	}
	return out
}

// sampleFourier sums random low-frequency spectral modes
// sum_i w_i*cos(k_i.x + phi_i), normalizes, and rescales into
// [minSpeed, maxSpeed] (§4.2).
func sampleFourier(shape []int, minSpeed, maxSpeed float64) *field.Array {
	const nmodes = 8
	ndim := len(shape)
	cutoff := 4.0

	weights := make([]float64, nmodes)
	wavevecs := make([][]float64, nmodes)
	phases := make([]float64, nmodes)
	wsum := 0.0
	for m := 0; m < nmodes; m++ {
		weights[m] = rnd.Float64(0, 1)
		wsum += weights[m]
		wavevecs[m] = make([]float64, ndim)
		for d := 0; d < ndim; d++ {
			wavevecs[m][d] = rnd.Float64(-cutoff, cutoff)
		}
		phases[m] = rnd.Float64(0, 2*math.Pi)
	}
	for m := range weights {
		weights[m] /= wsum
	}

	out := field.New(shape...)
	out.Each(func(idx []int, pos int) {
		x := make([]float64, ndim)
		for d, i := range idx {
			x[d] = float64(i) / float64(shape[d])
		}
		v := 0.0
		for m := 0; m < nmodes; m++ {
			dot := 0.0
			for d := 0; d < ndim; d++ {
				dot += wavevecs[m][d] * x[d]
			}
			v += weights[m] * math.Cos(dot+phases[m])
		}
		out.Data[pos] = v
	})

	lo, hi := out.Data[0], out.Data[0]
	for _, v := range out.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, v := range out.Data {
		norm := (v - lo) / span
		out.Data[i] = minSpeed + norm*(maxSpeed-minSpeed)
	}
	return out
}
