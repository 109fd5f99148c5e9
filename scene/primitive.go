package scene

import (
	"fmt"
	"math"

	"github.com/anuraags/raytracer/types"
)

type PrimitiveType uint8

// The closed set of supported primitives. Adding a new primitive type requires
// extending every switch on PrimitiveType in this file.
const (
	SpherePrimitive PrimitiveType = iota
	PlanePrimitive
)

// Rays whose direction is this close to perpendicular to a plane normal are
// treated as parallel to the plane.
const planeParallelEpsilon = 1e-6

func (t PrimitiveType) String() string {
	switch t {
	case SpherePrimitive:
		return "sphere"
	case PlanePrimitive:
		return "plane"
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(t))
}

// Defines a scene primitive.
type Primitive struct {
	// The primitive type.
	Type PrimitiveType

	// Sphere center or a point on the plane.
	Origin types.Point

	// Sphere radius.
	Radius float64

	// Plane normal (unit length).
	Normal types.Vec3

	// Diffuse color and reflectance coefficient.
	Color  types.Color
	Albedo float32
}

// Create new sphere primitive.
func NewSphere(center types.Point, radius float64, color types.Color, albedo float32) Primitive {
	return Primitive{
		Type:   SpherePrimitive,
		Origin: center,
		Radius: radius,
		Color:  color,
		Albedo: albedo,
	}
}

// Create new plane primitive. The normal is normalized and must not be zero.
func NewPlane(origin types.Point, normal types.Vec3, color types.Color, albedo float32) Primitive {
	return Primitive{
		Type:   PlanePrimitive,
		Origin: origin,
		Normal: normal.Normalize(),
		Color:  color,
		Albedo: albedo,
	}
}

// Intersect the primitive with a ray. It returns the parametric distance of
// the hit along the ray and a flag indicating whether the ray hits the primitive.
func (p *Primitive) Intersect(ray types.Ray) (float64, bool) {
	switch p.Type {
	case SpherePrimitive:
		return p.intersectSphere(ray)
	case PlanePrimitive:
		return p.intersectPlane(ray)
	}
	panic(fmt.Sprintf("scene: unknown primitive type %d", p.Type))
}

// Get the surface normal at a point on the primitive.
func (p *Primitive) NormalAt(hitPoint types.Point) types.Vec3 {
	switch p.Type {
	case SpherePrimitive:
		return hitPoint.Sub(p.Origin).Normalize()
	case PlanePrimitive:
		return p.Normal
	}
	panic(fmt.Sprintf("scene: unknown primitive type %d", p.Type))
}

// Project the origin-to-center vector onto the ray and compare the squared
// distance of the center from the ray against the squared radius.
//
// When the ray origin lies inside the sphere t0 is negative while t1 is not;
// the smaller root is still returned so such hits report a negative distance.
func (p *Primitive) intersectSphere(ray types.Ray) (float64, bool) {
	toCenter := p.Origin.Sub(ray.Origin)
	adj := toCenter.Dot(ray.Direction)
	d2 := toCenter.Dot(toCenter) - adj*adj
	radius2 := p.Radius * p.Radius
	if d2 > radius2 {
		return 0, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := adj - thc
	t1 := adj + thc
	if t0 < 0 && t1 < 0 {
		return 0, false
	}

	if t0 < t1 {
		return t0, true
	}
	return t1, true
}

func (p *Primitive) intersectPlane(ray types.Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math.Abs(denom) <= planeParallelEpsilon {
		return 0, false
	}

	dist := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	if dist >= 0 {
		return dist, true
	}
	return 0, false
}
