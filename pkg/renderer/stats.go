package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// PixelStats accumulates the samples taken for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB sum of all samples, before averaging and gamma
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// WorkerStats describes the work done by a single worker
type WorkerStats struct {
	ID         int
	Tiles      int
	Samples    int
	RenderTime time.Duration // Time spent rendering tiles
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	TotalTiles   int           // Number of tiles the image was split into
	RenderTime   time.Duration // Wall clock time for the whole frame
	Workers      []WorkerStats // Per-worker breakdown, indexed by worker ID
}

// AverageSamples returns the average number of samples per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// WriteTable renders the per-worker statistics as a text table
func (rs RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Samples", "% of frame", "Render time"})
	for _, stat := range rs.Workers {
		percent := 0.0
		if rs.TotalSamples > 0 {
			percent = 100 * float64(stat.Samples) / float64(rs.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d", rs.TotalTiles), fmt.Sprintf("%d", rs.TotalSamples), "TOTAL", rs.RenderTime.String()})
	table.Render()
}
