package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// ErrUnsupportedFormat is returned when the output path has an unknown extension
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Format identifies an output encoding
type Format int

const (
	FormatPPM       Format = iota // Plain P3 text
	FormatPNG                     // PNG image
	FormatPPMZstd                 // P3 text in a zstd stream
	FormatPPMSnappy               // P3 text in a framed snappy stream
)

// Extensions lists the recognised file suffixes
var Extensions = []string{".ppm", ".png", ".ppm.zst", ".ppm.sz"}

// FormatFromPath picks the encoding from the file name suffix
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".ppm.zst"):
		return FormatPPMZstd, nil
	case strings.HasSuffix(name, ".ppm.sz"):
		return FormatPPMSnappy, nil
	case strings.HasSuffix(name, ".ppm"):
		return FormatPPM, nil
	case strings.HasSuffix(name, ".png"):
		return FormatPNG, nil
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnsupportedFormat, path, strings.Join(Extensions, ", "))
}

// Encode writes the frame to w in the given format
func Encode(w io.Writer, frame *renderer.Frame, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame)
	case FormatPNG:
		return WritePNG(w, frame)
	case FormatPPMZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := WritePPM(encoder, frame); err != nil {
			encoder.Close()
			return err
		}
		return encoder.Close()
	case FormatPPMSnappy:
		stream := snappy.NewBufferedWriter(w)
		if err := WritePPM(stream, frame); err != nil {
			stream.Close()
			return err
		}
		return stream.Close()
	}
	return fmt.Errorf("%w: format %d", ErrUnsupportedFormat, format)
}

// Save writes the frame to path, creating parent directories as needed
func Save(path string, frame *renderer.Frame) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	// Surface the first failure, but always release the file handle
	encodeErr := Encode(file, frame, format)
	closeErr := file.Close()
	if encodeErr != nil {
		return fmt.Errorf("encoding %s: %w", path, encodeErr)
	}
	return closeErr
}
