package scene

import (
	"errors"
	"fmt"

	"github.com/anuraags/raytracer/types"
)

// Defaults applied to fields missing from a scene document.
const DefaultFOV = 90.0

var (
	ErrZeroPlaneNormal    = errors.New("scene: plane normal must not be a zero vector")
	ErrZeroLightDirection = errors.New("scene: light direction must not be a zero vector")
	ErrNegativeRadius     = errors.New("scene: sphere radius must not be negative")
	ErrUnknownPrimitive   = errors.New("scene: unknown primitive type")
)

// The serializable text representation of a scene.
type Document struct {
	Width      uint32           `json:"width"`
	Height     uint32           `json:"height"`
	FOV        *float64         `json:"fov,omitempty"`
	ShadowBias *float64         `json:"shadow_bias,omitempty"`
	Objects    []DocumentObject `json:"objects"`
	Lights     []DocumentLight  `json:"lights"`
}

// A primitive entry. Type selects which geometry fields are used.
type DocumentObject struct {
	Type   string       `json:"type"`
	Center *types.Point `json:"center,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	Origin *types.Point `json:"origin,omitempty"`
	Normal *types.Vec3  `json:"normal,omitempty"`
	Color  types.Color  `json:"color"`
	Albedo float32      `json:"albedo"`
}

type DocumentLight struct {
	Direction types.Vec3  `json:"direction"`
	Color     types.Color `json:"color"`
	Intensity float32     `json:"intensity"`
}

// Create a document describing an existing scene.
func NewDocument(sc *Scene) *Document {
	fov, bias := sc.FOV, sc.ShadowBias
	doc := &Document{
		Width:      sc.Width,
		Height:     sc.Height,
		FOV:        &fov,
		ShadowBias: &bias,
		Objects:    make([]DocumentObject, len(sc.Primitives)),
		Lights:     make([]DocumentLight, len(sc.Lights)),
	}

	for idx, prim := range sc.Primitives {
		origin, normal := prim.Origin, prim.Normal
		obj := DocumentObject{
			Type:   prim.Type.String(),
			Color:  prim.Color,
			Albedo: prim.Albedo,
		}
		switch prim.Type {
		case SpherePrimitive:
			obj.Center = &origin
			obj.Radius = prim.Radius
		case PlanePrimitive:
			obj.Origin = &origin
			obj.Normal = &normal
		}
		doc.Objects[idx] = obj
	}

	for idx, light := range sc.Lights {
		doc.Lights[idx] = DocumentLight{
			Direction: light.Direction,
			Color:     light.Color,
			Intensity: light.Intensity,
		}
	}

	return doc
}

// Build the scene described by the document. Geometry that cannot be
// rendered (zero normals or light directions, negative radii, unknown object
// types) is rejected.
func (doc *Document) Scene() (*Scene, error) {
	fov := DefaultFOV
	if doc.FOV != nil {
		fov = *doc.FOV
	}
	bias := DefaultShadowBias
	if doc.ShadowBias != nil {
		bias = *doc.ShadowBias
	}

	primitives := make([]Primitive, 0, len(doc.Objects))
	for idx, obj := range doc.Objects {
		switch obj.Type {
		case SpherePrimitive.String():
			if obj.Center == nil {
				return nil, fmt.Errorf("scene: object %d: sphere center is missing", idx)
			}
			if obj.Radius < 0 {
				return nil, fmt.Errorf("object %d: %w", idx, ErrNegativeRadius)
			}
			primitives = append(primitives, NewSphere(*obj.Center, obj.Radius, obj.Color, obj.Albedo))
		case PlanePrimitive.String():
			if obj.Origin == nil {
				return nil, fmt.Errorf("scene: object %d: plane origin is missing", idx)
			}
			if obj.Normal == nil || obj.Normal.IsZero() {
				return nil, fmt.Errorf("object %d: %w", idx, ErrZeroPlaneNormal)
			}
			primitives = append(primitives, NewPlane(*obj.Origin, *obj.Normal, obj.Color, obj.Albedo))
		default:
			return nil, fmt.Errorf("scene: object %d: unknown object type %q", idx, obj.Type)
		}
	}

	lights := make([]Light, 0, len(doc.Lights))
	for idx, l := range doc.Lights {
		if l.Direction.IsZero() {
			return nil, fmt.Errorf("light %d: %w", idx, ErrZeroLightDirection)
		}
		lights = append(lights, Light{
			Direction: l.Direction,
			Color:     l.Color,
			Intensity: l.Intensity,
		})
	}

	sc := New(doc.Width, doc.Height, fov, bias, primitives, lights)
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
