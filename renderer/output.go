package renderer

import (
	"fmt"
	"time"

	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/tracer"
	"github.com/fogleman/gg"
)

var outputLogger = log.New("output")

// Encode the frame as a PNG image. Channels are mapped from [0, 1] to
// [0, 255] with a truncating cast.
func SavePNG(frame *tracer.Frame, filename string) error {
	start := time.Now()

	if err := gg.SavePNG(filename, frame.Image()); err != nil {
		return fmt.Errorf("renderer: could not write %s: %w", filename, err)
	}

	outputLogger.Noticef("wrote %dx%d frame to %s in %d ms", frame.Width, frame.Height, filename, time.Since(start).Nanoseconds()/1000000)
	return nil
}
