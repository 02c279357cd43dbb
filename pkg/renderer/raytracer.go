package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	TileSize        int   // Size of each square tile in pixels
	Seed            int64 // Base seed for the per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		TileSize:        32,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
}

// Raytracer renders a scene into a frame
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     Config
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config Config) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     log.New("renderer"),
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the rendering configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Validate checks that the raytracer can render
func (rt *Raytracer) Validate() error {
	if rt.scene == nil || rt.scene.GetWorld() == nil {
		return ErrSceneNotDefined
	}
	if rt.scene.GetCamera() == nil {
		return ErrCameraNotDefined
	}
	if rt.width <= 0 || rt.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rt.width, rt.height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, rt.config.SamplesPerPixel)
	}
	if rt.config.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, rt.config.MaxDepth)
	}
	return nil
}

// RenderPixel takes all samples for the pixel at column i, row j (j=0 is the top row)
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	// Rows are counted from the bottom of the viewport
	row := rt.height - 1 - j
	sDenominator := float64(max(rt.width-1, 1))
	tDenominator := float64(max(rt.height-1, 1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel for antialiasing
		s := (float64(i) + sampler.Get1D()) / sDenominator
		t := (float64(row) + sampler.Get1D()) / tDenominator

		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, world, sampler, rt.config.MaxDepth))
	}

	return ps
}

// RenderBounds renders every pixel inside bounds into the shared pixel stats array.
// Callers must hand disjoint bounds to concurrent calls.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) int {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixelStats[j][i] = rt.RenderPixel(i, j, sampler)
			samples += pixelStats[j][i].SampleCount
		}
	}
	return samples
}

// Render renders the whole image in parallel and returns the finished frame
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if err := rt.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()

	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize, rt.config.Seed)
	pixelStats := make([][]PixelStats, rt.height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, rt.width)
	}

	workerPool := NewWorkerPool(ctx, rt, rt.config.NumWorkers, len(tiles))
	workerPool.Start()

	rt.logger.Infof("rendering %dx%d at %d samples per pixel, max depth %d (%d tiles, %d workers)",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		TotalTiles:  len(tiles),
		Workers:     make([]WorkerStats, workerPool.GetNumWorkers()),
	}
	for id := range stats.Workers {
		stats.Workers[id].ID = id
	}

	// Every task produces exactly one result, so this loop also acts as the join
	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %w", ErrInterrupted, result.Error)
			}
			continue
		}

		worker := &stats.Workers[result.WorkerID]
		worker.Tiles++
		worker.Samples += result.Samples
		worker.RenderTime += result.RenderTime
		stats.TotalSamples += result.Samples

		rt.logger.Debugf("tile %d/%d done by worker %d in %v", i+1, len(tiles), result.WorkerID, result.RenderTime)
	}
	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	frame := rt.assembleFrame(pixelStats)
	stats.RenderTime = time.Since(startTime)

	rt.logger.Infof("render completed in %v (%.1f samples per pixel)", stats.RenderTime, stats.AverageSamples())

	return frame, stats, nil
}

// assembleFrame averages, gamma corrects and quantizes every pixel
func (rt *Raytracer) assembleFrame(pixelStats [][]PixelStats) *Frame {
	frame := NewFrame(rt.width, rt.height)
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			pixel := &pixelStats[y][x]
			frame.Sums[y*rt.width+x] = pixel.ColorAccum
			frame.SetRGB(x, y, ToRGB(pixel.GetColor()))
		}
	}
	return frame
}
