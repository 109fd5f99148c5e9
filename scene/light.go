package scene

import "github.com/anuraags/raytracer/types"

// A directional light infinitely far away. Direction points from the light
// towards the scene.
type Light struct {
	Direction types.Vec3
	Color     types.Color
	Intensity float32
}

// Get the unit vector pointing from the scene towards the light.
func (l *Light) DirectionToLight() types.Vec3 {
	return l.Direction.Normalize().Neg()
}
