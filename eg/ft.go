// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log"

	"github.com/gazed/trace"
	"github.com/gazed/trace/filter"
)

// ft plots each reconstruction filter's weight surface as a 256x256
// grayscale tile. Expected output: box is a solid square, triangle a
// soft pyramid, gaussian a round falloff, mitchell a bright center with
// a dark surround, sinc a ringed bullseye. The caching wrapper should
// be indistinguishable from its wrapped filter at this scale.
func ft() {
	plots := map[string]filter.Filter{
		"box":      filter.NewBox(2, 2),
		"triangle": filter.NewTriangle(2, 2),
		"gaussian": filter.NewGaussian(2, 2, 0.5),
		"mitchell": filter.NewMitchell(3, 3, 1.0/3, 1.0/3),
		"sinc":     filter.NewSinc(3, 3, 3),
		"cached":   filter.NewCaching(filter.NewGaussian(2, 2, 0.5)),
	}
	for name, f := range plots {
		size := 256
		film := trace.NewFilm(size, size)
		ex, ey := f.Extent()
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx := (float64(x)/float64(size-1)*2 - 1) * ex
				dy := (float64(y)/float64(size-1)*2 - 1) * ey
				film.Splat(x, y, f.Weight(dx, dy)*255, 1)
			}
		}
		path := "out/filter_" + name + ".png"
		if err := film.Save(path); err != nil {
			log.Fatalf("ft: %s", err)
		}
		log.Printf("ft: wrote %s", path)
	}
}
