package types

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// An additive linear RGB color. Channels are unbounded while accumulating
// light contributions and are clamped to [0, 1] before display.
type Color f32.Vec3

// Define a color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }

// Add a color.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Component-wise color multiplication.
func (c Color) Mul(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Multiply all channels with a scalar.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Saturate each channel to the [0, 1] range. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

// Convert to an opaque 8-bit color. Channels are clamped and then scaled
// with a truncating cast.
func (c Color) RGBA8() color.RGBA {
	cc := c.Clamp()
	return color.RGBA{
		R: uint8(cc[0] * 255.0),
		G: uint8(cc[1] * 255.0),
		B: uint8(cc[2] * 255.0),
		A: 255,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c[0], c[1], c[2])
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0.0, math32.Min(1.0, v))
}
