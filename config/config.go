// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config reads a JSON description of a run and builds a
// sim.Simulation from it, the way gofem's inp package reads a .sim JSON
// file into an inp.Data/inp.Simulation pair.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/sim"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gofdtd/speed"
	"github.com/cpmech/gosl/io"
)

// SourceSpec describes one source entry in a config file. Location holds
// one string per grid axis, each either a fixed coordinate (given as a
// number, JSON-encoded as a string so "any" can share the field) or the
// literal "any" for a wildcard axis.
type SourceSpec struct {
	Location []string `json:"location"`
	Period   float64  `json:"period"`
	Ncycles  *float64 `json:"ncycles,omitempty"`
	Phase    float64  `json:"phase"`
}

// Data is the JSON-decodable description of a single-source run, mirroring
// inp.Data's flat field-bag style.
type Data struct {
	Desc string `json:"desc"` // free-form description, never interpreted

	Size         []float64 `json:"size"`         // physical size per axis
	Spacing      float64   `json:"spacing"`      // grid spacing
	MaxSpeed     float64   `json:"max_speed"`    // fastest speed the simulation must remain stable for
	MinSpeed     float64   `json:"min_speed"`    // slowest speed sampled/clipped to
	TimeStep     *float64  `json:"time_step"`    // explicit timestep; nil derives the largest stable one
	PmlThickness int       `json:"pml_thickness"` // PML thickness in cells

	SpeedSampler string `json:"speed_sampler"` // e.g. "flat", "random", "ifft"; empty means "flat"
	Seed         *int64 `json:"seed,omitempty"` // seeds gosl/rnd before sampling; nil means non-reproducible

	Source SourceSpec `json:"source"`

	SpatialDownsample  int     `json:"spatial_downsample"`
	Boundary           int     `json:"boundary"`
	Edge               int     `json:"edge"`
	WithPml            bool    `json:"with_pml"`
	Duration           float64 `json:"duration"`
	TemporalDownsample int     `json:"temporal_downsample"`

	Verbose bool `json:"verbose"`
}

// Load reads and decodes a JSON configuration file from path.
func Load(path string) (*Data, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %q: %v", path, err)
	}
	var o Data
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, fmt.Errorf("config: cannot decode %q: %v", path, err)
	}
	return &o, nil
}

// toLocation converts the JSON location spec into a source.Location.
func (o *SourceSpec) toLocation() (source.Location, error) {
	loc := make(source.Location, len(o.Location))
	for i, tok := range o.Location {
		if tok == "any" {
			loc[i] = source.Any()
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(tok, "%g", &v); err != nil {
			return nil, fmt.Errorf("config: invalid location token %q at axis %d", tok, i)
		}
		loc[i] = source.Fixed(v)
	}
	return loc, nil
}

// Run drives a single-source simulation fully described by o, via
// sim.RunSingleSource.
func (o *Data) Run() (detectedWave, gridSpeed *field.Array, err error) {
	loc, err := o.Source.toLocation()
	if err != nil {
		return nil, nil, err
	}
	wave, gs, err := sim.RunSingleSource(sim.SingleSourceParams{
		Size:               o.Size,
		Spacing:            o.Spacing,
		MaxSpeed:           o.MaxSpeed,
		TimeStep:           o.TimeStep,
		PmlThickness:       o.PmlThickness,
		SpeedSampler:       speed.Sampler(o.SpeedSampler),
		MinSpeed:           o.MinSpeed,
		Seed:               o.Seed,
		Location:           loc,
		Period:             o.Source.Period,
		Ncycles:            o.Source.Ncycles,
		Phase:              o.Source.Phase,
		SpatialDownsample:  o.SpatialDownsample,
		Boundary:           o.Boundary,
		Edge:               o.Edge,
		WithPml:            o.WithPml,
		Duration:           o.Duration,
		TemporalDownsample: o.TemporalDownsample,
		Verbose:            o.Verbose,
	})
	if err != nil {
		return nil, nil, err
	}
	return wave, gs, nil
}
