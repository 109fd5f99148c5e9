package tracer

import (
	"image/color"
	"testing"

	"github.com/anuraags/raytracer/types"
)

func TestFrameLayout(t *testing.T) {
	frame := NewFrame(3, 2)
	if len(frame.Pixels) != 6 {
		t.Fatalf("expected 6 pixels; got %d", len(frame.Pixels))
	}

	frame.Set(2, 1, types.RGB(1, 0, 0))
	if frame.Pixels[5] != types.RGB(1, 0, 0) {
		t.Fatal("expected pixel (2, 1) to be stored row-major at offset 5")
	}
	if got := frame.At(2, 1); got != types.RGB(1, 0, 0) {
		t.Fatalf("expected At to return the stored color; got %v", got)
	}

	row := frame.Row(1)
	if len(row) != 3 || row[2] != types.RGB(1, 0, 0) {
		t.Fatalf("unexpected row contents %v", row)
	}

	grid := frame.Grid()
	if len(grid) != 2 || len(grid[0]) != 3 {
		t.Fatalf("expected a 2x3 grid; got %dx%d", len(grid), len(grid[0]))
	}
	grid[1][2] = types.RGB(0, 1, 0)
	if frame.At(2, 1) != types.RGB(1, 0, 0) {
		t.Fatal("expected grid to be a copy of the frame")
	}
}

func TestFrameImage(t *testing.T) {
	frame := NewFrame(2, 1)
	frame.Set(0, 0, types.RGB(1, 0.5, 2))

	img := frame.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("expected 2x1 image; got %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 127, 255, 255}) {
		t.Fatalf("unexpected pixel %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("expected background pixel to be opaque black; got %v", got)
	}
}
