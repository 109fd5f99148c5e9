package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/anuraags/raytracer/types"
)

var ErrPortraitFrame = errors.New("scene: frame width must exceed frame height")

// A pinhole camera located at the origin looking down the negative Z axis.
type Camera struct {
	Width  uint32
	Height uint32

	// Field of view in degrees.
	FOV float64
}

// Check that the camera can generate primary rays. Only landscape frames are
// supported.
func (c Camera) Validate() error {
	if c.Width <= c.Height {
		return fmt.Errorf("%w (got %dx%d)", ErrPortraitFrame, c.Width, c.Height)
	}
	return nil
}

// Generate the primary ray through the center of pixel (x, y). Row 0 is the
// top of the frame.
//
// PrimaryRay panics if the frame width does not exceed its height; callers
// should check Validate before generating rays.
func (c Camera) PrimaryRay(x, y uint32) types.Ray {
	if c.Width <= c.Height {
		panic(ErrPortraitFrame)
	}

	fovAdjustment := math.Tan(c.FOV * (math.Pi / 180.0) / 2.0)
	aspectRatio := float64(c.Width) / float64(c.Height)
	sensorX := (((float64(x)+0.5)/float64(c.Width))*2.0 - 1.0) * aspectRatio * fovAdjustment
	sensorY := (1.0 - ((float64(y)+0.5)/float64(c.Height))*2.0) * fovAdjustment

	return types.Ray{
		Origin:    types.Origin(),
		Direction: types.XYZ(sensorX, sensorY, -1.0).Normalize(),
	}
}
