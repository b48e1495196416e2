// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Trace renders a scene of analytic primitives to a grayscale image.
// With no scene file it renders a built-in gallery of every primitive.
//
//	trace --res 720p --camera perspective --fov 60 --samples 16 --output out/test.png
//	trace --scene gallery.yaml
//	trace --mesh model.glb --fov 60
//
// The output format follows the file extension: .png, .bmp, or .tiff.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gazed/trace"
)

func main() {
	cfg, scenePath, meshPath := parseFlags()
	if err := run(cfg, scenePath, meshPath); err != nil {
		slog.Error("render failed", "error", err)
		if errors.Is(err, trace.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// parseFlags maps the command line onto a configuration record.
func parseFlags() (cfg trace.Config, scenePath, meshPath string) {
	flag.StringVar(&cfg.Res, "res", "1080p", "resolution preset: 4k 2k 1080p 720p VGA QVGA")
	flag.StringVar(&cfg.Filter, "filter", "gaussian", "reconstruction filter: box gaussian")
	flag.StringVar(&cfg.Camera, "camera", "perspective",
		"camera: perspective ortho hemisphere sphere perspective-lens")
	flag.Float64Var(&cfg.Fov, "fov", 0, "vertical field of view in degrees (perspective cameras)")
	flag.Float64Var(&cfg.Scale, "scale", 0, "film half height in world units (ortho camera)")
	flag.Float64Var(&cfg.LensR, "lens-radius", 0, "lens disc radius (perspective-lens camera)")
	flag.Float64Var(&cfg.FocalD, "focal-distance", 0, "distance in perfect focus (perspective-lens camera)")
	flag.IntVar(&cfg.Samples, "samples", 16, "samples per pixel, minimum 1")
	flag.Int64Var(&cfg.Seed, "seed", 0, "sampler seed, 0 picks one at random")
	flag.IntVar(&cfg.Workers, "workers", 0, "render worker count, 0 for the default")
	flag.StringVar(&cfg.Output, "output", "out/test.png", "output image path")
	flag.StringVar(&scenePath, "scene", "", "yaml scene description to render")
	flag.StringVar(&meshPath, "mesh", "", "glb triangle mesh to render")
	flag.Parse()

	// the common perspective default: a scene file may still override.
	if cfg.Camera == "perspective" && cfg.Fov == 0 && !flagSet("fov") {
		cfg.Fov = 60
	}
	return cfg, scenePath, meshPath
}

// flagSet reports whether the named flag was given explicitly.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// run assembles the renderer and renders one image.
func run(cfg trace.Config, scenePath, meshPath string) error {
	scn := trace.NewScene()
	switch {
	case scenePath != "":
		if err := loadScene(scenePath, &cfg, scn); err != nil {
			return err
		}
	case meshPath != "":
		if err := loadMesh(meshPath, nil, scn); err != nil {
			return err
		}
	default:
		gallery(scn)
	}
	if scn.Len() == 0 {
		return fmt.Errorf("empty scene: %w", trace.ErrConfig)
	}

	film, cam, filt, samples, err := cfg.Build()
	if err != nil {
		return err
	}
	slog.Info("rendering", "size", fmt.Sprintf("%dx%d", film.W, film.H),
		"camera", cfg.Camera, "filter", cfg.Filter,
		"samples", cfg.Samples, "shapes", scn.Len())

	r := trace.NewRenderer(film, cam, filt, samples, scn, cfg.Attrs()...)
	r.Render()
	if err := film.Save(cfg.Output); err != nil {
		return err
	}
	slog.Info("wrote", "output", cfg.Output)
	return nil
}
