package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Frame is a finished image: row-major RGB bytes with row 0 at the top
type Frame struct {
	Width  int
	Height int
	Pix    []uint8     // 3 bytes per pixel
	Sums   []core.Vec3 // Accumulated sample sums per pixel, before averaging and gamma
}

// NewFrame allocates an empty frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
		Sums:   make([]core.Vec3, width*height),
	}
}

// RGB returns the channel values of the pixel at column x, row y (y=0 is the top)
func (f *Frame) RGB(x, y int) (r, g, b uint8) {
	i := 3 * (y*f.Width + x)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// SetRGB stores the channel values of the pixel at column x, row y
func (f *Frame) SetRGB(x, y int, rgb [3]uint8) {
	i := 3 * (y*f.Width + x)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = rgb[0], rgb[1], rgb[2]
}

// Sum returns the accumulated sample sum of the pixel at column x, row y
func (f *Frame) Sum(x, y int) core.Vec3 {
	return f.Sums[y*f.Width+x]
}

// ToImage converts the frame to an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// ToRGB maps an averaged linear color to output bytes: gamma 2,
// clamp to [0, 0.999], scale to 256 and truncate.
func ToRGB(colorVec core.Vec3) [3]uint8 {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return [3]uint8{
		uint8(256 * colorVec.X),
		uint8(256 * colorVec.Y),
		uint8(256 * colorVec.Z),
	}
}
