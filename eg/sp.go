// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log"

	"github.com/gazed/trace"
	"github.com/gazed/trace/sample"
)

// sp scatter plots 256 samples from each 2D sampler, plus the two disc
// warps fed by a 16x16 strata sampler. Expected output: uniform is clumpy,
// strata a jittered grid, latin and the low discrepancy sequences
// progressively more even, and the disc plots fill a circle with the
// concentric warp noticeably more uniform than the polar one.
func sp() {
	const n = 256
	plots := map[string]sample.Sampler2D{
		"uniform":    sample.NewUniform2D(n, 1),
		"strata":     sample.NewStrata2D(16, 16, 1),
		"latin":      sample.NewLatin2D(n, 1),
		"halton":     sample.NewHalton2D(n),
		"hammersley": sample.NewHammersley2D(n),
		"s02":        sample.NewS02(0x51ce95f6, 0x83d2c9bd, n),
	}
	for name, s := range plots {
		film := trace.NewFilm(256, 256)
		for _, uv := range s.Samples() {
			film.Splat(int(uv.U*255), int(uv.V*255), 255, 1)
		}
		write(film, "out/sample_"+name+".png")
	}

	// disc warps: map the square onto the disc and recenter.
	warps := map[string]func(sample.UV) (float64, float64){
		"disc_uniform":    sample.ToDiscUniform,
		"disc_concentric": sample.ToDiscConcentric,
	}
	for name, warp := range warps {
		film := trace.NewFilm(256, 256)
		s := sample.NewStrata2D(16, 16, 1)
		for round := 0; round < 4; round++ {
			for _, uv := range s.Samples() {
				x, y := warp(uv)
				film.Splat(int((x+1)*127), int((y+1)*127), 255, 1)
			}
		}
		write(film, "out/sample_"+name+".png")
	}
}

func write(film *trace.Film, path string) {
	if err := film.Save(path); err != nil {
		log.Fatalf("sp: %s", err)
	}
	log.Printf("sp: wrote %s", path)
}
