package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFrame renders the selected scene and writes the image to disk.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneID := ctx.String("scene")
	sc, err := scene.Create(sceneID, ctx.Int64("seed"), geometry.CameraConfig{})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	cameraConfig, err := cameraConfigFromFlags(ctx, sc.CameraConfig)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := sc.SetCameraConfig(cameraConfig); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	sampling := scene.MergeSamplingConfig(sc.SamplingConfig, scene.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
	})
	if ctx.IsSet("depth") {
		sampling.MaxDepth = ctx.Int("depth")
	}

	opts := renderer.Config{
		SamplesPerPixel: sampling.SamplesPerPixel,
		MaxDepth:        sampling.MaxDepth,
		NumWorkers:      ctx.Int("workers"),
		TileSize:        ctx.Int("tile-size"),
		Seed:            ctx.Int64("seed"),
	}

	width := sc.CameraConfig.Width
	height := sc.CameraConfig.ImageHeight()
	logger.Noticef("rendering scene %q at %dx%d", sceneID, width, height)

	// Ctrl-C stops the workers after their current tile
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := renderer.NewRaytracer(sc, width, height, opts)
	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	displayRenderStats(stats)

	outPath := ctx.String("out")
	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", sceneID, fmt.Sprintf("render_%s.ppm", timestamp))
	}
	if err := output.Save(outPath, frame); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.Noticef("render saved as %s", outPath)

	return nil
}

// cameraConfigFromFlags applies every camera flag the user set on top of
// base. Explicit zeros such as --aperture 0 are kept.
func cameraConfigFromFlags(ctx *cli.Context, base geometry.CameraConfig) (geometry.CameraConfig, error) {
	config := base

	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("vfov") {
		config.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("aperture") {
		config.Aperture = ctx.Float64("aperture")
	}
	if ctx.IsSet("focus") {
		config.FocusDistance = ctx.Float64("focus")
	}

	if ctx.IsSet("aspect") {
		ratio, err := parseAspectRatio(ctx.String("aspect"))
		if err != nil {
			return base, err
		}
		config.AspectRatio = ratio
	}

	for flag, target := range map[string]*core.Vec3{
		"lookfrom": &config.Center,
		"lookat":   &config.LookAt,
		"up":       &config.Up,
	} {
		if !ctx.IsSet(flag) {
			continue
		}
		vec, err := parseVec3(ctx.String(flag))
		if err != nil {
			return base, fmt.Errorf("--%s: %w", flag, err)
		}
		*target = vec
	}

	return config, nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("render statistics (%.1f samples per pixel)\n%s", stats.AverageSamples(), buf.String())
}
