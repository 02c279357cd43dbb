package output

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

func newTestFrame() *renderer.Frame {
	frame := renderer.NewFrame(2, 2)
	frame.SetRGB(0, 0, [3]uint8{255, 0, 0})
	frame.SetRGB(1, 0, [3]uint8{0, 255, 0})
	frame.SetRGB(0, 1, [3]uint8{0, 0, 255})
	frame.SetRGB(1, 1, [3]uint8{12, 34, 56})
	return frame
}

const expectedPPM = "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, newTestFrame()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if got := buf.String(); got != expectedPPM {
		t.Errorf("Unexpected PPM output:\n%q\nexpected:\n%q", got, expectedPPM)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, newTestFrame()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding PNG failed: %v", err)
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r>>8 != 12 || g>>8 != 34 || b>>8 != 56 || a>>8 != 255 {
		t.Errorf("Unexpected pixel (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"image.ppm", FormatPPM, false},
		{"out/render.PNG", FormatPNG, false},
		{"frame.ppm.zst", FormatPPMZstd, false},
		{"frame.ppm.sz", FormatPPMSnappy, false},
		{"frame.jpg", 0, true},
		{"frame", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if format != tt.expected {
				t.Errorf("Expected format %d, got %d", tt.expected, format)
			}
		})
	}
}

func TestSave_CompressedStreams(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		decode func(io.Reader) (io.Reader, error)
	}{
		{"frame.ppm", func(r io.Reader) (io.Reader, error) { return r, nil }},
		{"frame.ppm.zst", func(r io.Reader) (io.Reader, error) { return zstd.NewReader(r) }},
		{"frame.ppm.sz", func(r io.Reader) (io.Reader, error) { return snappy.NewReader(r), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", tt.name)
			if err := Save(path, newTestFrame()); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer file.Close()

			reader, err := tt.decode(file)
			if err != nil {
				t.Fatalf("Opening stream failed: %v", err)
			}
			data, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("Reading stream failed: %v", err)
			}
			if string(data) != expectedPPM {
				t.Errorf("Round trip mismatch:\n%q", data)
			}
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := Save(path, newTestFrame()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be created")
	}
}
