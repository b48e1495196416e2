// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// config.go reduces the NewRenderer API footprint using functional
// options, and maps the external configuration surface (CLI flags,
// scene files) onto renderer collaborators.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"errors"
	"fmt"

	"github.com/gazed/trace/camera"
	"github.com/gazed/trace/filter"
	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/sample"
)

// ErrConfig is wrapped by configuration problems caught before any
// rendering starts, eg. a camera preset missing its field of view.
var ErrConfig = errors.New("bad configuration")

// renderConfig holds the renderer tunables that have usable defaults.
type renderConfig struct {
	workers int // worker pool size.
	patch   int // tile side in pixels.
}

// renderDefaults runs even if no attributes are set: four workers over
// 16 pixel tiles.
var renderDefaults = renderConfig{
	workers: 4,
	patch:   16,
}

// Attr defines optional renderer attributes for NewRenderer:
//
//	r := trace.NewRenderer(film, cam, filt, samples, scene,
//	   trace.Workers(8),
//	   trace.PatchSize(32),
//	)
type Attr func(*renderConfig)

// Workers sets the worker pool size. For use in NewRenderer().
func Workers(n int) Attr {
	return func(c *renderConfig) {
		if n > 0 && n <= 1024 {
			c.workers = n
		}
	}
}

// PatchSize sets the tile side in pixels. For use in NewRenderer().
func PatchSize(px int) Attr {
	return func(c *renderConfig) {
		if px > 0 && px <= 4096 {
			c.patch = px
		}
	}
}

// ============================================================================
// external configuration record

// Config is the render setup record produced by the CLI flag parser or
// a scene file. Zero values select the documented defaults. Build
// validates the record and assembles the collaborators.
type Config struct {
	Res     string  `yaml:"res"`    // 4k 2k 1080p 720p VGA QVGA.
	Filter  string  `yaml:"filter"` // box or gaussian.
	Camera  string  `yaml:"camera"` // perspective ortho hemisphere sphere perspective-lens.
	Fov     float64 `yaml:"fov"`    // degrees, perspective cameras.
	Scale   float64 `yaml:"scale"`  // world half height, ortho camera.
	LensR   float64 `yaml:"lensRadius"`
	FocalD  float64 `yaml:"focalDistance"`
	Samples int     `yaml:"samples"` // per pixel, minimum 1.
	Seed    int64   `yaml:"seed"`    // 0 picks a random stream.
	Workers int     `yaml:"workers"`
	Output  string  `yaml:"output"` // image path, format by extension.
}

// resolutions maps the preset names onto film sizes.
var resolutions = map[string][2]int{
	"4k":    {3840, 2160},
	"2k":    {1920, 1080},
	"1080p": {1920, 1080},
	"720p":  {1280, 720},
	"VGA":   {640, 480},
	"QVGA":  {320, 240},
}

// normalize fills unset Config fields with the documented defaults.
func (c *Config) normalize() {
	if c.Res == "" {
		c.Res = "1080p"
	}
	if c.Filter == "" {
		c.Filter = "gaussian"
	}
	if c.Camera == "" {
		c.Camera = "perspective"
	}
	if c.Samples < 1 {
		c.Samples = 16
	}
	if c.Output == "" {
		c.Output = "out/test.png"
	}
}

// Build validates the configuration and assembles the film, camera,
// filter, and sampler factory it describes.
func (c *Config) Build() (film *Film, cam camera.Camera, filt filter.Filter, factory sample.Factory2D, err error) {
	c.normalize()

	size, ok := resolutions[c.Res]
	if !ok {
		return nil, nil, nil, nil, fmt.Errorf("resolution %q: %w", c.Res, ErrConfig)
	}
	film = NewFilm(size[0], size[1])
	aspect := float64(film.W) / float64(film.H)

	switch c.Filter {
	case "box":
		filt = filter.NewCaching(filter.NewBox(0.5, 0.5))
	case "gaussian":
		filt = filter.NewCaching(filter.NewGaussian(1.4, 1.4, 0.25))
	default:
		return nil, nil, nil, nil, fmt.Errorf("filter %q: %w", c.Filter, ErrConfig)
	}

	switch c.Camera {
	case "perspective":
		if c.Fov <= 0 {
			return nil, nil, nil, nil, fmt.Errorf("perspective camera needs --fov: %w", ErrConfig)
		}
		cam, err = camera.NewPerspective(lin.Rad(c.Fov), aspect)
	case "perspective-lens":
		if c.Fov <= 0 {
			return nil, nil, nil, nil, fmt.Errorf("lens camera needs --fov: %w", ErrConfig)
		}
		if c.LensR <= 0 || c.FocalD <= 0 {
			return nil, nil, nil, nil, fmt.Errorf("lens camera needs --lens-radius and --focal-distance: %w", ErrConfig)
		}
		cam, err = camera.NewPerspectiveLens(lin.Rad(c.Fov), aspect, c.LensR, c.FocalD)
	case "ortho":
		if c.Scale <= 0 {
			return nil, nil, nil, nil, fmt.Errorf("ortho camera needs --scale: %w", ErrConfig)
		}
		cam, err = camera.NewOrthographic(c.Scale, aspect)
	case "hemisphere":
		cam = camera.NewHemisphere()
	case "sphere":
		cam = camera.NewSphere()
	default:
		return nil, nil, nil, nil, fmt.Errorf("camera %q: %w", c.Camera, ErrConfig)
	}
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%s: %w", err, ErrConfig)
	}

	factory = sample.NewFactory(c.Samples, c.Seed)
	return film, cam, filt, factory, nil
}

// Attrs returns the renderer options the configuration carries.
func (c *Config) Attrs() []Attr {
	attrs := []Attr{}
	if c.Workers > 0 {
		attrs = append(attrs, Workers(c.Workers))
	}
	return attrs
}
