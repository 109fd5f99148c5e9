package types

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// A position in 3D space. Point and Vec3 share a representation but are kept
// as distinct types so positions and directions cannot be mixed up.
type Point f64.Vec3

// The coordinate space origin.
func Origin() Point {
	return Point{}
}

// Subtract a point to get the displacement between the two.
func (p Point) Sub(p2 Point) Vec3 {
	return Vec3{p[0] - p2[0], p[1] - p2[1], p[2] - p2[2]}
}

// Move point along a vector.
func (p Point) Add(v Vec3) Point {
	return Point{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}
