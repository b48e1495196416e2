// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// splats are additive: two partial splats equal one combined splat.
func TestSplatAdditive(t *testing.T) {
	a, b := NewFilm(4, 4), NewFilm(4, 4)
	a.Splat(1, 2, 10, 0.5)
	a.Splat(1, 2, 30, 1.5)
	b.Splat(1, 2, 40, 2.0)
	if a.Pixel(1, 2) != b.Pixel(1, 2) {
		t.Error("split splats should equal the combined splat")
	}
	if !bytes.Equal(a.Gray().Pix, b.Gray().Pix) {
		t.Error("normalized images should match")
	}
}

func TestSplatIgnoresOutOfRange(t *testing.T) {
	f := NewFilm(2, 2)
	f.Splat(-1, 0, 100, 1)
	f.Splat(0, 2, 100, 1)
	for _, b := range f.Gray().Pix {
		if b != 0 {
			t.Fatal("out of range splats should not land")
		}
	}
}

func TestGrayNormalization(t *testing.T) {
	f := NewFilm(2, 1)
	f.Splat(0, 0, 510, 2)  // 255.
	f.Splat(1, 0, 1000, 1) // clamps to 255.
	img := f.Gray()
	if img.Pix[0] != 255 || img.Pix[1] != 255 {
		t.Error("normalization", img.Pix[0], img.Pix[1])
	}

	// unsampled pixels are black, as are NaN sums.
	f2 := NewFilm(2, 1)
	f2.Splat(1, 0, math.NaN(), 1)
	img2 := f2.Gray()
	if img2.Pix[0] != 0 || img2.Pix[1] != 0 {
		t.Error("empty and NaN pixels should be black")
	}
}

// film coordinates are bottom-left, image coordinates top-left: a splat
// at film (0,0) lands on the bottom image row.
func TestGrayRowFlip(t *testing.T) {
	f := NewFilm(2, 2)
	f.Splat(0, 0, 255, 1)
	img := f.Gray()
	if img.GrayAt(0, 1).Y != 255 || img.GrayAt(0, 0).Y != 0 {
		t.Error("film origin should flip to the bottom image row")
	}
}

// concurrent splats to the same pixel never lose updates.
func TestSplatConcurrent(t *testing.T) {
	f := NewFilm(8, 8)
	var wg sync.WaitGroup
	workers, splats := 8, 1000
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < splats; i++ {
				f.Splat(3, 3, 1, 1)
			}
		}()
	}
	wg.Wait()
	p := f.Pixel(3, 3)
	if p.Sum != float64(workers*splats) || p.WeightSum != float64(workers*splats) {
		t.Error("lost splats", p)
	}
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	f := NewFilm(4, 4)
	f.Splat(1, 1, 128, 1)
	for _, name := range []string{"t.png", "t.bmp", "t.tif"} {
		path := filepath.Join(dir, name)
		if err := f.Save(path); err != nil {
			t.Error(name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Error(name, "should produce a non-empty file")
		}
	}
	if err := f.Save(filepath.Join(dir, "t.gif")); err == nil {
		t.Error("unsupported format should error")
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := NewFilm(3, 2)
	f.Splat(2, 0, 200, 1)
	path := filepath.Join(dir, "round.png")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Error("decoded size", img.Bounds())
	}
}
