package tracer

import (
	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/types"
	"github.com/chewxy/math32"
)

// The color of pixels whose primary ray does not hit anything.
var Background = types.Color{}

// Shade an intersection using Lambertian reflectance from every scene light.
// A light contributes nothing if a shadow ray towards it hits any primitive.
func Shade(sc *scene.Scene, ray types.Ray, isect scene.Intersection) types.Color {
	var color types.Color

	obj := isect.Object
	hitPoint := ray.At(isect.Distance)
	normal := obj.NormalAt(hitPoint)
	reflected := obj.Albedo / math32.Pi

	// The bias keeps shadow rays from re-hitting the surface they start on
	shadowOrigin := hitPoint.Add(normal.Mul(sc.ShadowBias))

	for idx := range sc.Lights {
		light := &sc.Lights[idx]
		dirToLight := light.DirectionToLight()

		var intensity float32
		if _, occluded := sc.Trace(types.Ray{Origin: shadowOrigin, Direction: dirToLight}); !occluded {
			intensity = light.Intensity
		}

		power := math32.Max(0.0, float32(normal.Dot(dirToLight))) * intensity
		color = color.Add(obj.Color.Mul(light.Color).Scale(power).Scale(reflected))
	}

	return color.Clamp()
}

// Render rows [blockY, blockY+blockH) of the scene into the frame. The scene
// camera must be valid.
func TraceBlock(sc *scene.Scene, frame *Frame, blockY, blockH uint32) {
	cam := sc.Camera()
	for y := blockY; y < blockY+blockH; y++ {
		for x := uint32(0); x < frame.Width; x++ {
			ray := cam.PrimaryRay(x, y)
			isect, hit := sc.Trace(ray)
			if !hit {
				frame.Set(x, y, Background)
				continue
			}
			frame.Set(x, y, Shade(sc, ray, isect))
		}
	}
}
