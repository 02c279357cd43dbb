package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text (P3) PPM image: a header with
// the dimensions and a max value of 255, then one "r g b" line per pixel
// from the top row down, left to right.
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := frame.RGB(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
