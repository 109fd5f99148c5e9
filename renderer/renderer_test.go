package renderer

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/tracer"
	"github.com/anuraags/raytracer/types"
)

func singleSphereScene() *scene.Scene {
	return scene.New(
		800, 600, 90, scene.DefaultShadowBias,
		[]scene.Primitive{
			scene.NewSphere(types.Point{0, 0, -5}, 1, types.RGB(1, 1, 1), 3.14159265),
		},
		[]scene.Light{
			{Direction: types.XYZ(0, 0, -1), Color: types.RGB(1, 1, 1), Intensity: 1},
		},
	)
}

func TestRenderRejectsPortraitFrames(t *testing.T) {
	specs := []struct {
		w, h uint32
	}{
		{5, 5},
		{600, 800},
	}

	for specIndex, spec := range specs {
		sc := singleSphereScene()
		sc.Width, sc.Height = spec.w, spec.h

		frame, err := Render(sc)
		if !errors.Is(err, scene.ErrPortraitFrame) {
			t.Fatalf("[spec %d] expected ErrPortraitFrame; got %v", specIndex, err)
		}
		if frame != nil {
			t.Fatalf("[spec %d] expected no frame to be returned", specIndex)
		}

		if _, err = NewDefault(sc, tracer.NaiveScheduler(), Options{NumTracers: 1}); !errors.Is(err, scene.ErrPortraitFrame) {
			t.Fatalf("[spec %d] expected NewDefault to fail with ErrPortraitFrame; got %v", specIndex, err)
		}
	}
}

func TestRenderNilScene(t *testing.T) {
	if _, err := Render(nil); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
	if _, err := NewDefault(nil, tracer.NaiveScheduler(), Options{}); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
}

func TestRenderSingleSphere(t *testing.T) {
	frame, err := Render(singleSphereScene())
	if err != nil {
		t.Fatal(err)
	}

	grid := frame.Grid()
	if len(grid) != 600 {
		t.Fatalf("expected 600 rows; got %d", len(grid))
	}
	for y, row := range grid {
		if len(row) != 800 {
			t.Fatalf("expected row %d to contain 800 pixels; got %d", y, len(row))
		}
	}

	center := frame.At(400, 300)
	if center.R() < 0.9 || center.G() < 0.9 || center.B() < 0.9 {
		t.Fatalf("expected center pixel to be lit; got %v", center)
	}

	corners := [][2]uint32{{0, 0}, {799, 0}, {0, 599}, {799, 599}}
	for _, c := range corners {
		if got := frame.At(c[0], c[1]); got != tracer.Background {
			t.Fatalf("expected pixel (%d, %d) to be background; got %v", c[0], c[1], got)
		}
	}

	for idx, px := range frame.Pixels {
		for ch := 0; ch < 3; ch++ {
			if px[ch] < 0 || px[ch] > 1 {
				t.Fatalf("pixel %d channel %d out of range: %v", idx, ch, px)
			}
		}
	}
}

func TestDefaultRendererMatchesSequentialRender(t *testing.T) {
	sc := scene.Default()
	sc.Width, sc.Height = 160, 90

	expFrame, err := Render(sc)
	if err != nil {
		t.Fatal(err)
	}

	specs := []struct {
		scheduler  tracer.BlockScheduler
		numTracers int
	}{
		{tracer.NaiveScheduler(), 1},
		{tracer.NaiveScheduler(), 3},
		{tracer.PerfectScheduler(), 4},
	}

	for specIndex, spec := range specs {
		r, err := NewDefault(sc, spec.scheduler, Options{NumTracers: spec.numTracers})
		if err != nil {
			t.Fatalf("[spec %d] %v", specIndex, err)
		}

		// Render twice so the perfect scheduler uses collected block stats
		for pass := 0; pass < 2; pass++ {
			frame, err := r.Render()
			if err != nil {
				r.Close()
				t.Fatalf("[spec %d] pass %d: %v", specIndex, pass, err)
			}

			for idx := range expFrame.Pixels {
				if frame.Pixels[idx] != expFrame.Pixels[idx] {
					r.Close()
					t.Fatalf("[spec %d] pass %d: pixel %d mismatch: expected %v; got %v", specIndex, pass, idx, expFrame.Pixels[idx], frame.Pixels[idx])
				}
			}

			stats := r.Stats()
			if len(stats.Tracers) != spec.numTracers {
				r.Close()
				t.Fatalf("[spec %d] expected stats for %d tracers; got %d", specIndex, spec.numTracers, len(stats.Tracers))
			}

			var rows uint32
			for _, stat := range stats.Tracers {
				rows += stat.BlockH
			}
			if rows != sc.Height {
				r.Close()
				t.Fatalf("[spec %d] expected block assignments to cover %d rows; got %d", specIndex, sc.Height, rows)
			}
		}
		r.Close()
	}
}

func TestDefaultRendererAfterClose(t *testing.T) {
	sc := scene.Default()
	sc.Width, sc.Height = 40, 30

	r, err := NewDefault(sc, tracer.NaiveScheduler(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	r.Close()

	if _, err = r.Render(); err != ErrNoTracers {
		t.Fatalf("expected ErrNoTracers; got %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	frame := tracer.NewFrame(4, 2)
	frame.Set(0, 0, types.RGB(1, 0, 0))
	frame.Set(3, 1, types.RGB(0.5, 2, -1))

	filename := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(frame, filename); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 2 {
		t.Fatalf("expected a 4x2 image; got %dx%d", bounds.Dx(), bounds.Dy())
	}

	specs := []struct {
		x, y       int
		r, g, b, a uint32
	}{
		{0, 0, 255, 0, 0, 255},
		{1, 0, 0, 0, 0, 255},
		{3, 1, 127, 255, 0, 255},
	}
	for specIndex, spec := range specs {
		r, g, b, a := img.At(spec.x, spec.y).RGBA()
		r, g, b, a = r>>8, g>>8, b>>8, a>>8
		if r != spec.r || g != spec.g || b != spec.b || a != spec.a {
			t.Fatalf("[spec %d] expected pixel (%d, %d) to be (%d, %d, %d, %d); got (%d, %d, %d, %d)", specIndex, spec.x, spec.y, spec.r, spec.g, spec.b, spec.a, r, g, b, a)
		}
	}
}

func TestSavePNGError(t *testing.T) {
	frame := tracer.NewFrame(2, 1)
	if err := SavePNG(frame, filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Fatal("expected an error writing to a missing directory")
	}
}
