package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestPixelStats_GetColor(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black for empty pixel, got %v", got)
	}

	ps.AddSample(core.NewVec3(1, 0, 0.5))
	ps.AddSample(core.NewVec3(0, 1, 0.5))
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if got, expected := ps.GetColor(), core.NewVec3(0.5, 0.5, 0.5); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRenderStats_WriteTable(t *testing.T) {
	stats := RenderStats{
		TotalPixels:  100,
		TotalSamples: 400,
		TotalTiles:   4,
		RenderTime:   2 * time.Second,
		Workers: []WorkerStats{
			{ID: 0, Tiles: 3, Samples: 300, RenderTime: time.Second},
			{ID: 1, Tiles: 1, Samples: 100, RenderTime: time.Second},
		},
	}

	if avg := stats.AverageSamples(); avg != 4 {
		t.Errorf("Expected 4 average samples, got %v", avg)
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	out := buf.String()
	for _, want := range []string{"Worker", "TOTAL", "75.0 %", "25.0 %", "400"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}
}
