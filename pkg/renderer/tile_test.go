package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
		expectedTiles           int
	}{
		{64, 64, 32, 4},
		{65, 33, 32, 6},
		{10, 7, 3, 12},
		{5, 5, 64, 1},
	}

	for _, tt := range tests {
		tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
		if len(tiles) != tt.expectedTiles {
			t.Errorf("%dx%d/%d: expected %d tiles, got %d", tt.width, tt.height, tt.tileSize, tt.expectedTiles, len(tiles))
		}

		covered := make([]int, tt.width*tt.height)
		full := image.Rect(0, 0, tt.width, tt.height)
		for id, tile := range tiles {
			if tile.ID != id {
				t.Errorf("Expected tile ID %d, got %d", id, tile.ID)
			}
			if !tile.Bounds.In(full) {
				t.Errorf("Tile %v exceeds image %v", tile.Bounds, full)
			}
			for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					covered[y*tt.width+x]++
				}
			}
		}
		for i, n := range covered {
			if n != 1 {
				t.Fatalf("%dx%d/%d: pixel %d covered %d times", tt.width, tt.height, tt.tileSize, i, n)
			}
		}
	}
}

func TestNewTile_SeedsIndependentStreams(t *testing.T) {
	a := NewTile(0, image.Rect(0, 0, 1, 1), 42)
	b := NewTile(0, image.Rect(0, 0, 1, 1), 42)
	c := NewTile(1, image.Rect(0, 0, 1, 1), 42)

	va, vb, vc := a.Sampler.Get1D(), b.Sampler.Get1D(), c.Sampler.Get1D()
	if va != vb {
		t.Errorf("Same tile and seed gave %v and %v", va, vb)
	}
	if va == vc {
		t.Errorf("Different tiles gave the same first sample %v", va)
	}
}
