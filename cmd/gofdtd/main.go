// Copyright 2024 The Gofdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"flag"
	"os"

	"github.com/cpmech/gofdtd/config"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nGofdtd -- scalar wave FDTD simulation engine\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("please provide a configuration filename. Ex.: run.json")
	}
	fnamepath := flag.Arg(0)

	outpath := "detected_wave.bin"
	if len(flag.Args()) > 1 {
		outpath = flag.Arg(1)
	}

	cfg, err := config.Load(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("> loaded %q\n", fnamepath)
	wave, gridSpeed, err := cfg.Run()
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("> grid speed shape: %v\n", gridSpeed.Shape)
	io.PfGreen("> detected wave shape: %v\n", wave.Shape)

	if err := writeBinary(outpath, wave.Data); err != nil {
		chk.Panic("%v", err)
	}
	io.PfGreen("> wrote %q\n", outpath)
}

// writeBinary writes data as a flat little-endian float64 stream, the
// simplest format a downstream numerical tool can mmap without a header.
func writeBinary(path string, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, data)
}
