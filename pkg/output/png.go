package output

import (
	"image/png"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// WritePNG encodes the frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, frame.ToImage())
}
