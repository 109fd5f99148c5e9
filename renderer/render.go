package renderer

import (
	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/tracer"
)

// Render the scene sequentially on the calling goroutine. The returned frame
// holds exactly Width x Height clamped colors. Scenes whose frame width does
// not exceed their height are rejected before any pixel is traced.
func Render(sc *scene.Scene) (*tracer.Frame, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if err := sc.Camera().Validate(); err != nil {
		return nil, err
	}

	frame := tracer.NewFrame(sc.Width, sc.Height)
	tracer.TraceBlock(sc, frame, 0, sc.Height)
	return frame, nil
}
