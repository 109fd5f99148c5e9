package scene

import (
	"math"

	"github.com/anuraags/raytracer/types"
)

// Create the demo scene: three spheres resting above a grey ground plane lit
// by a red, a green and a blue directional light.
func Default() *Scene {
	const albedo = float32(math.Pi)

	primitives := []Primitive{
		NewSphere(types.Point{-2, 5, -10}, 5.0, types.RGB(0.4, 0.4, 1.0), albedo),
		NewSphere(types.Point{0, 0, -5}, 1.0, types.RGB(0.4, 1.0, 0.4), albedo),
		NewSphere(types.Point{3, 2, -3}, 2.5, types.RGB(1.0, 0.4, 0.4), albedo),
		NewPlane(types.Point{0, -1, 0}, types.XYZ(0, 1, 0), types.RGB(0.4, 0.4, 0.4), albedo),
	}

	lights := []Light{
		{Direction: types.XYZ(1, -2, -1), Color: types.RGB(1, 0, 0), Intensity: 1.0},
		{Direction: types.XYZ(-1, -1, -1), Color: types.RGB(0, 1, 0), Intensity: 2.0},
		{Direction: types.XYZ(1, -1, -1), Color: types.RGB(0, 0, 1), Intensity: 2.0},
	}

	return New(800, 600, 90.0, DefaultShadowBias, primitives, lights)
}
