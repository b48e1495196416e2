// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Pixel accumulates filter weighted samples: the final pixel value is
// the weighted average Sum/WeightSum.
type Pixel struct {
	Sum       float64 // accumulated value*weight.
	WeightSum float64 // accumulated weight.
}

// Film is the grayscale accumulation target of a render. Film
// coordinates put (0,0) at the bottom left; export flips rows so the
// written image has its origin at the top left.
//
// Splat is safe for concurrent use: render workers share one film and
// each splat holds the film lock just long enough for its pixel write.
type Film struct {
	W, H int // film size in pixels.

	mu  sync.Mutex
	pix []Pixel // row major, bottom row first.
}

// NewFilm creates a film of the given size in pixels.
func NewFilm(w, h int) *Film {
	return &Film{W: w, H: h, pix: make([]Pixel, w*h)}
}

// Resolution preset films matching the common output sizes.
func NewFilm4K() *Film    { return NewFilm(3840, 2160) }
func NewFilm2K() *Film    { return NewFilm(1920, 1080) }
func NewFilm1080p() *Film { return NewFilm(1920, 1080) }
func NewFilm720p() *Film  { return NewFilm(1280, 720) }
func NewFilmVGA() *Film   { return NewFilm(640, 480) }
func NewFilmQVGA() *Film  { return NewFilm(320, 240) }

// Splat adds a sample value and weight to pixel (x, y). Splats commute,
// so the final image does not depend on the order workers deliver them.
// Out of range coordinates are dropped.
func (f *Film) Splat(x, y int, sum, weight float64) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.mu.Lock()
	p := &f.pix[y*f.W+x]
	p.Sum += sum
	p.WeightSum += weight
	f.mu.Unlock()
}

// Pixel returns a copy of pixel (x, y) for inspection.
func (f *Film) Pixel(x, y int) Pixel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pix[y*f.W+x]
}

// Gray normalizes the film into an 8 bit grayscale image: each pixel is
// round(Sum/WeightSum) clamped to [0,255], with unsampled and NaN
// pixels black. Rows are flipped so the image origin is top left.
func (f *Film) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		row := f.pix[y*f.W : (y+1)*f.W]
		out := img.Pix[(f.H-y-1)*img.Stride:]
		for x, p := range row {
			out[x] = quantize(p)
		}
	}
	return img
}

// quantize converts one accumulated pixel to a byte.
func quantize(p Pixel) uint8 {
	if p.WeightSum == 0 {
		return 0
	}
	v := math.Round(p.Sum / p.WeightSum)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Save encodes the normalized film to the given path, choosing the
// format by extension: .png, .bmp, or .tif/.tiff. Missing directories
// are created. Encode and write failures are the only errors a finished
// render surfaces.
func (f *Film) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer out.Close()

	img := f.Gray()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(out, img)
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".tif", ".tiff":
		err = tiff.Encode(out, img, nil)
	default:
		err = fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("Save: encode %s %w", path, err)
	}
	return out.Close()
}
