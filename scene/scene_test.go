package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/anuraags/raytracer/types"
)

func TestTraceNearest(t *testing.T) {
	sc := New(4, 2, 90, DefaultShadowBias, []Primitive{
		NewSphere(types.Point{0, 0, -20}, 1, white, 1),
		NewPlane(types.Point{0, 0, -30}, types.XYZ(0, 0, 1), white, 1),
		NewSphere(types.Point{0, 0, -10}, 1, white, 1),
	}, nil)

	isect, hit := sc.Trace(types.NewRay(types.Origin(), types.XYZ(0, 0, -1)))
	if !hit {
		t.Fatal("expected ray to hit a primitive")
	}
	if isect.Index != 2 {
		t.Fatalf("expected nearest primitive to be 2; got %d", isect.Index)
	}
	if isect.Object != &sc.Primitives[2] {
		t.Fatal("expected intersection to reference the scene primitive")
	}
	if math.Abs(isect.Distance-9) > tolerance {
		t.Fatalf("expected distance 9; got %f", isect.Distance)
	}
}

func TestTraceMiss(t *testing.T) {
	sc := New(4, 2, 90, DefaultShadowBias, []Primitive{
		NewSphere(types.Point{0, 0, -10}, 1, white, 1),
		NewPlane(types.Point{0, -1, 0}, types.XYZ(0, 1, 0), white, 1),
	}, nil)

	if _, hit := sc.Trace(types.NewRay(types.Origin(), types.XYZ(0, 1, 1))); hit {
		t.Fatal("expected ray pointing away from all primitives to miss")
	}

	empty := New(4, 2, 90, DefaultShadowBias, nil, nil)
	if _, hit := empty.Trace(types.NewRay(types.Origin(), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected empty scene to never report a hit")
	}
}

func TestTraceTieKeepsFirstPrimitive(t *testing.T) {
	sc := New(4, 2, 90, DefaultShadowBias, []Primitive{
		NewSphere(types.Point{0, 0, -10}, 1, types.RGB(1, 0, 0), 1),
		NewSphere(types.Point{0, 0, -10}, 1, types.RGB(0, 1, 0), 1),
	}, nil)

	isect, hit := sc.Trace(types.NewRay(types.Origin(), types.XYZ(0, 0, -1)))
	if !hit || isect.Index != 0 {
		t.Fatalf("expected tie to resolve to primitive 0; got %d (hit %t)", isect.Index, hit)
	}
}

func TestTraceIgnoresNaNDistances(t *testing.T) {
	sc := New(4, 2, 90, DefaultShadowBias, []Primitive{
		NewSphere(types.Point{0, 0, -10}, math.NaN(), white, 1),
		NewSphere(types.Point{0, 0, -20}, 1, white, 1),
	}, nil)

	if dist, hit := sc.Primitives[0].Intersect(types.NewRay(types.Origin(), types.XYZ(0, 0, -1))); !hit || !math.IsNaN(dist) {
		t.Fatalf("expected NaN radius sphere to report a NaN hit; got %f (hit %t)", dist, hit)
	}

	isect, hit := sc.Trace(types.NewRay(types.Origin(), types.XYZ(0, 0, -1)))
	if !hit || isect.Index != 1 {
		t.Fatalf("expected NaN distance to be skipped in favor of primitive 1; got %d (hit %t)", isect.Index, hit)
	}

	sc.Primitives = sc.Primitives[:1]
	if _, hit = sc.Trace(types.NewRay(types.Origin(), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected a scene with only NaN hits to report a miss")
	}
}

func TestSceneStats(t *testing.T) {
	stats := Default().Stats()
	for _, exp := range []string{"800x600", "sphere", "plane", "Intensity"} {
		if !strings.Contains(stats, exp) {
			t.Fatalf("expected scene stats to contain %q; got:\n%s", exp, stats)
		}
	}
}

func TestCameraValidate(t *testing.T) {
	type spec struct {
		w, h   uint32
		expErr bool
	}
	specs := []spec{
		{800, 600, false},
		{2, 1, false},
		{5, 5, true},
		{600, 800, true},
	}

	for index, s := range specs {
		err := Camera{Width: s.w, Height: s.h, FOV: 90}.Validate()
		if s.expErr && !errors.Is(err, ErrPortraitFrame) {
			t.Fatalf("[spec %d] expected ErrPortraitFrame; got %v", index, err)
		}
		if !s.expErr && err != nil {
			t.Fatalf("[spec %d] unexpected error %v", index, err)
		}
	}
}

func TestPrimaryRay(t *testing.T) {
	cam := Camera{Width: 4, Height: 2, FOV: 90}

	ray := cam.PrimaryRay(0, 0)
	if ray.Origin != types.Origin() {
		t.Fatalf("expected primary ray to start at the origin; got %v", ray.Origin)
	}

	fovAdj := math.Tan(math.Pi / 4)
	exp := types.XYZ(-1.5*fovAdj, 0.5*fovAdj, -1).Normalize()
	for i := 0; i < 3; i++ {
		if math.Abs(ray.Direction[i]-exp[i]) > tolerance {
			t.Fatalf("expected direction %v; got %v", exp, ray.Direction)
		}
	}

	// bottom-right pixel mirrors the top-left one
	br := cam.PrimaryRay(3, 1)
	if math.Abs(br.Direction[0]+ray.Direction[0]) > tolerance || math.Abs(br.Direction[1]+ray.Direction[1]) > tolerance {
		t.Fatalf("expected bottom-right ray %v to mirror top-left ray %v", br.Direction, ray.Direction)
	}

	for y := uint32(0); y < cam.Height; y++ {
		for x := uint32(0); x < cam.Width; x++ {
			if l := cam.PrimaryRay(x, y).Direction.Len(); math.Abs(l-1) > tolerance {
				t.Fatalf("expected unit direction for pixel (%d, %d); got len %f", x, y, l)
			}
		}
	}
}

func TestPrimaryRayPanicsForSquareFrames(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPortraitFrame) {
			t.Fatalf("expected panic with ErrPortraitFrame; got %v", r)
		}
	}()

	Camera{Width: 5, Height: 5, FOV: 90}.PrimaryRay(0, 0)
}

func TestSceneValidate(t *testing.T) {
	nan := math.NaN()
	type spec struct {
		primitives []Primitive
		lights     []Light
		expErr     error
	}
	light := Light{Direction: types.XYZ(0, -1, 0), Color: white, Intensity: 1}
	specs := []spec{
		{[]Primitive{NewSphere(types.Point{0, 0, -5}, 1, white, 1)}, []Light{light}, nil},
		{[]Primitive{{Type: PlanePrimitive, Normal: types.XYZ(0, 0, 0)}}, nil, ErrZeroPlaneNormal},
		{[]Primitive{{Type: PlanePrimitive, Normal: types.XYZ(0, nan, 0)}}, nil, ErrZeroPlaneNormal},
		{[]Primitive{{Type: SpherePrimitive, Radius: -2}}, nil, ErrNegativeRadius},
		{[]Primitive{{Type: PrimitiveType(7)}}, nil, ErrUnknownPrimitive},
		{nil, []Light{light, {Direction: types.XYZ(0, 0, 0), Intensity: 1}}, ErrZeroLightDirection},
	}

	for index, s := range specs {
		err := New(4, 2, 90, DefaultShadowBias, s.primitives, s.lights).Validate()
		if s.expErr == nil {
			if err != nil {
				t.Fatalf("[spec %d] expected no error; got %v", index, err)
			}
			continue
		}
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("expected the built-in scene to be valid; got %v", err)
	}
}
