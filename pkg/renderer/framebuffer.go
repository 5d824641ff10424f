package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameBuffer is a caller-owned, row-major grid of packed 0xRRGGBB pixels
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Set stores a packed pixel
func (fb *FrameBuffer) Set(x, y int, pixel uint32) {
	fb.Pixels[y*fb.Width+x] = pixel
}

// At returns the packed pixel at (x, y)
func (fb *FrameBuffer) At(x, y int) uint32 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the buffer to an opaque RGBA image
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := core.UnpackRGB(fb.At(x, y))
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = r
			img.Pix[offset+1] = g
			img.Pix[offset+2] = b
			img.Pix[offset+3] = 255
		}
	}
	return img
}
