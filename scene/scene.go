package scene

import (
	"bytes"
	"fmt"
	"math"

	"github.com/anuraags/raytracer/types"
	"github.com/olekukonko/tablewriter"
)

// The default offset applied to shadow ray origins.
const DefaultShadowBias = 1e-6

// A scene is built once before rendering and is never mutated while a frame
// is being rendered; tracers share it without synchronization.
type Scene struct {
	// Frame dimensions in pixels. Width must exceed Height.
	Width  uint32
	Height uint32

	// Camera field of view in degrees.
	FOV float64

	// Offset along the surface normal for shadow ray origins.
	ShadowBias float64

	Primitives []Primitive
	Lights     []Light
}

// The result of a nearest hit query. Object points into the primitive list of
// the scene that produced the intersection and must not outlive it.
type Intersection struct {
	Distance float64
	Index    int
	Object   *Primitive
}

// Create a new scene.
func New(width, height uint32, fov, shadowBias float64, primitives []Primitive, lights []Light) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		FOV:        fov,
		ShadowBias: shadowBias,
		Primitives: primitives,
		Lights:     lights,
	}
}

// Get the camera for this scene's frame dimensions and field of view.
func (s *Scene) Camera() Camera {
	return Camera{
		Width:  s.Width,
		Height: s.Height,
		FOV:    s.FOV,
	}
}

// Check that every primitive and light can be rendered. Scenes loaded from
// compiled archives bypass document validation and must pass this check.
func (s *Scene) Validate() error {
	for idx := range s.Primitives {
		prim := &s.Primitives[idx]
		switch prim.Type {
		case SpherePrimitive:
			if prim.Radius < 0 || math.IsNaN(prim.Radius) {
				return fmt.Errorf("primitive %d: %w", idx, ErrNegativeRadius)
			}
		case PlanePrimitive:
			if prim.Normal.IsZero() || prim.Normal.IsNaN() {
				return fmt.Errorf("primitive %d: %w", idx, ErrZeroPlaneNormal)
			}
		default:
			return fmt.Errorf("primitive %d: %w: %s", idx, ErrUnknownPrimitive, prim.Type)
		}
	}

	for idx := range s.Lights {
		dir := s.Lights[idx].Direction
		if dir.IsZero() || dir.IsNaN() {
			return fmt.Errorf("light %d: %w", idx, ErrZeroLightDirection)
		}
	}
	return nil
}

// Find the nearest primitive hit by the ray. Primitives are tested in order
// and the first primitive wins ties. NaN distances are treated as misses.
func (s *Scene) Trace(ray types.Ray) (Intersection, bool) {
	var (
		nearest Intersection
		found   bool
	)

	for idx := range s.Primitives {
		dist, hit := s.Primitives[idx].Intersect(ray)
		if !hit || math.IsNaN(dist) {
			continue
		}

		if !found || dist < nearest.Distance {
			nearest = Intersection{
				Distance: dist,
				Index:    idx,
				Object:   &s.Primitives[idx],
			}
			found = true
		}
	}

	return nearest, found
}

// Generate a printable summary of the scene contents.
func (s *Scene) Stats() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "frame %dx%d, fov %g, shadow bias %g\n", s.Width, s.Height, s.FOV, s.ShadowBias)

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Primitive", "Origin", "Radius / Normal", "Color", "Albedo"})
	for idx, prim := range s.Primitives {
		var shape string
		switch prim.Type {
		case SpherePrimitive:
			shape = fmt.Sprintf("%g", prim.Radius)
		case PlanePrimitive:
			shape = prim.Normal.String()
		}
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			prim.Type.String(),
			prim.Origin.String(),
			shape,
			prim.Color.String(),
			fmt.Sprintf("%g", prim.Albedo),
		})
	}
	table.Render()

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Light direction", "Color", "Intensity"})
	for idx, light := range s.Lights {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			light.Direction.String(),
			light.Color.String(),
			fmt.Sprintf("%g", light.Intensity),
		})
	}
	table.Render()

	return buf.String()
}
