package renderer

import "github.com/anuraags/raytracer/tracer"

type Renderer interface {
	// Render frame.
	Render() (*tracer.Frame, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics for the last rendered frame.
	Stats() FrameStats
}
