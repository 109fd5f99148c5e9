package types

// A half-line with a unit length direction.
type Ray struct {
	Origin    Point
	Direction Vec3
}

// Create a ray. The direction is normalized.
func NewRay(origin Point, dir Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: dir.Normalize(),
	}
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Mul(t))
}
