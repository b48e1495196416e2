// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gazed/trace/camera"
	"github.com/gazed/trace/filter"
	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/sample"
)

// Renderer ties the pieces together: it cuts the film into tiles,
// fans the tiles out over a fixed pool of workers, and has each worker
// trace primary rays through the shared camera into the shared scene,
// splatting filter weighted sample values back onto the shared film.
//
// Program flow:
//
//	Render()      - queue the film tiles and start the worker pool.
//	worker()      - pull tiles until the queue closes.
//	renderPatch() - trace every pixel of one tile with a private sampler.
//	shade()       - turn one scene hit into a sample value.
type Renderer struct {
	cam     camera.Camera    // shared immutable ray generator.
	filt    filter.Filter    // shared immutable reconstruction filter.
	scn     *Scene           // shared immutable scene.
	film    *Film            // shared mutable accumulation target.
	factory sample.Factory2D // produces one private sampler per tile.

	workers int // pool size.
	patch   int // tile side in pixels.
}

// patchRegion is one film tile: the half open pixel region
// [x0,x1) x [y0,y1). The index identifies the tile's sampler stream so
// renders do not depend on which worker picks the tile up.
type patchRegion struct {
	x0, y0, x1, y1 int
	index          int64
}

// NewRenderer assembles a renderer from its five collaborators and any
// option overrides.
func NewRenderer(film *Film, cam camera.Camera, filt filter.Filter,
	factory sample.Factory2D, scn *Scene, attrs ...Attr) *Renderer {
	cfg := renderDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}
	return &Renderer{
		cam: cam, filt: filt, scn: scn, film: film, factory: factory,
		workers: cfg.workers,
		patch:   cfg.patch,
	}
}

// Render traces the whole film and blocks until every tile is done.
// The film is left normalizable: call Film.Save or Film.Gray next.
func (r *Renderer) Render() {
	start := time.Now()
	patches := r.patches()

	queue := make(chan patchRegion, len(patches))
	var wg sync.WaitGroup
	wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go r.worker(queue, &wg)
	}
	for _, p := range patches {
		queue <- p
	}
	close(queue) // closing the queue terminates the workers...
	wg.Wait()    // ... once they finish their current tile.

	slog.Info("render done", "size", r.film.W*r.film.H,
		"tiles", len(patches), "workers", r.workers,
		"duration", time.Since(start))
}

// patches cuts the film into patch sized tiles. The right and bottom
// edge tiles grow to cover the remainder when the film size is not a
// multiple of the patch size, so every pixel belongs to exactly one
// tile.
func (r *Renderer) patches() []patchRegion {
	nx := r.film.W / r.patch
	ny := r.film.H / r.patch
	if nx == 0 {
		nx = 1
	}
	if ny == 0 {
		ny = 1
	}
	ps := make([]patchRegion, 0, nx*ny)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			p := patchRegion{
				x0: ix * r.patch, y0: iy * r.patch,
				x1: (ix + 1) * r.patch, y1: (iy + 1) * r.patch,
			}
			if ix == nx-1 {
				p.x1 = r.film.W
			}
			if iy == ny-1 {
				p.y1 = r.film.H
			}
			p.index = int64(len(ps))
			ps = append(ps, p)
		}
	}
	return ps
}

// worker pulls tiles until the queue closes. Each tile gets a fresh
// sampler so random state is never shared between goroutines.
func (r *Renderer) worker(queue <-chan patchRegion, wg *sync.WaitGroup) {
	defer wg.Done()
	for p := range queue {
		r.renderPatch(p, r.factory.NewSampler(p.index))
	}
}

// renderPatch traces every pixel of one tile in row-major order. For
// each pixel the sampler supplies jittered offsets in [0,1)²; each
// sample is filter weighted by its distance from the pixel center and
// the accumulated (sum, weight) pair is splatted once per pixel.
func (r *Renderer) renderPatch(p patchRegion, sampler sample.Sampler2D) {
	xscale := 2 / float64(r.film.W)
	yscale := 2 / float64(r.film.H)

	ray := lin.Ray{}
	for y := p.y0; y < p.y1; y++ {
		for x := p.x0; x < p.x1; x++ {
			sum, weight := 0.0, 0.0
			for _, s := range sampler.Samples() {
				fx := float64(x) + s.U
				fy := float64(y) + s.V
				r.cam.Cast(fx*xscale-1, fy*yscale-1, &ray)

				value := 0.0
				if hit, ok := r.scn.Intersect(&ray); ok {
					value = shade(&hit)
				}
				if math.IsNaN(value) { // numeric edge cases become black.
					value = 0
				}

				w := r.filt.Weight(s.U-0.5, s.V-0.5)
				sum += value * w
				weight += w
			}
			r.film.Splat(x, y, sum, weight)
		}
	}
}

// shade turns a scene hit into a grayscale sample value: an 8x8 uv
// checker over the surface parameterization, shaded by how directly the
// surface faces the ray origin. A visual correctness signal for the
// geometry rather than a lighting model.
func shade(h *Hit) float64 {
	// hit point and normal into world space.
	tr := h.Shape.Transform()
	p, n := lin.V3{}, lin.V3{}
	tr.AppPt(p.Set(&h.P))
	tr.AppN(n.Set(&h.N))
	p.Unit()
	n.Unit()

	// lambert-like falloff: 0 where the surface faces the viewer
	// squarely, 0.5 at the silhouette. The face-forwarded normal keeps
	// the dot product non-positive for visible surfaces.
	cos := lin.Clamp(p.Dot(&n)/2+0.5, 0, 1)

	checker := (int(math.Floor(h.U*8))%2 ^ int(math.Floor(h.V*8))%2) != 0
	if checker {
		return 255 * (1 - cos)
	}
	return 64 * (1 - cos)
}
