package tracer

import (
	"image"

	"github.com/anuraags/raytracer/types"
)

// Frame is a row-major grid of colors with its origin at the top-left corner.
type Frame struct {
	Width  uint32
	Height uint32
	Pixels []types.Color
}

// Allocate a frame; all pixels are initialized to the background color.
func NewFrame(width, height uint32) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]types.Color, int(width)*int(height)),
	}
}

// Get pixel color.
func (f *Frame) At(x, y uint32) types.Color {
	return f.Pixels[f.offset(x, y)]
}

// Set pixel color.
func (f *Frame) Set(x, y uint32, c types.Color) {
	f.Pixels[f.offset(x, y)] = c
}

// Get the pixels of row y. The returned slice aliases the frame storage.
func (f *Frame) Row(y uint32) []types.Color {
	start := f.offset(0, y)
	return f.Pixels[start : start+int(f.Width)]
}

// Get the frame contents as a Height x Width grid.
func (f *Frame) Grid() [][]types.Color {
	grid := make([][]types.Color, f.Height)
	for y := uint32(0); y < f.Height; y++ {
		grid[y] = append([]types.Color(nil), f.Row(y)...)
	}
	return grid
}

// Convert frame to an opaque 8-bit image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.Width), int(f.Height)))
	for y := uint32(0); y < f.Height; y++ {
		for x := uint32(0); x < f.Width; x++ {
			img.SetRGBA(int(x), int(y), f.At(x, y).RGBA8())
		}
	}
	return img
}

func (f *Frame) offset(x, y uint32) int {
	return int(y)*int(f.Width) + int(x)
}
