package core

import "image/color"

// Color is a linear RGBA color. Channels are unbounded while light is being
// accumulated and are clamped to [0, 1] before conversion to a pixel.
// Alpha is carried along but never blended.
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NewColor creates an opaque color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar, c.A * scalar}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Clamp returns a color with every channel clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
		A: max(minVal, min(maxVal, c.A)),
	}
}

// Pack clamps the color and packs it as 0xRRGGBB
func (c Color) Pack() uint32 {
	cl := c.Clamp(0, 1)
	return PackRGB(cl.R, cl.G, cl.B)
}

// ToRGBA converts the color to an opaque 8-bit color
func (c Color) ToRGBA() color.RGBA {
	cl := c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * cl.R),
		G: uint8(255 * cl.G),
		B: uint8(255 * cl.B),
		A: 255,
	}
}

// PackRGB packs channels in [0, 1] as 0xRRGGBB
func PackRGB(r, g, b float64) uint32 {
	red := uint32(r * 255)
	green := uint32(g * 255)
	blue := uint32(b * 255)
	return red<<16 | green<<8 | blue
}

// UnpackRGB splits a packed 0xRRGGBB pixel into 8-bit channels
func UnpackRGB(pixel uint32) (r, g, b uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}
