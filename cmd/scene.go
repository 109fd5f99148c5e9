package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/scene/reader"
	"github.com/anuraags/raytracer/scene/writer"
	"github.com/urfave/cli"
)

// Load the scene named by the first command argument or fall back to the
// built-in scene. Frame flags that were explicitly set override the values
// stored in the scene.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)
	if ctx.NArg() == 0 {
		logger.Info("no scene file specified; using the built-in scene")
		sc = scene.Default()
	} else if sc, err = reader.ReadScene(ctx.Args().First()); err != nil {
		return nil, err
	}

	if ctx.IsSet("width") {
		if sc.Width, err = frameDimension(ctx, "width"); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet("height") {
		if sc.Height, err = frameDimension(ctx, "height"); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet("fov") {
		sc.FOV = ctx.Float64("fov")
	}
	if ctx.IsSet("shadow-bias") {
		sc.ShadowBias = ctx.Float64("shadow-bias")
	}

	return sc, nil
}

// Read a frame dimension flag. Values that do not fit a frame size are rejected.
func frameDimension(ctx *cli.Context, name string) (uint32, error) {
	val := ctx.Int(name)
	if val < 1 || int64(val) > math.MaxUint32 {
		return 0, fmt.Errorf("--%s must be between 1 and %d; got %d", name, uint32(math.MaxUint32), val)
	}
	return uint32(val), nil
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}

// Write the built-in scene to a file.
func WriteDemoScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing output file argument")
	}

	sceneFile := ctx.Args().First()
	if err := writer.WriteScene(scene.Default(), sceneFile); err != nil {
		return err
	}

	logger.Noticef("wrote built-in scene to %s", sceneFile)
	return nil
}

// Trace a single primary ray and display the hit information.
func TracePixel(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	camera := sc.Camera()
	if err = camera.Validate(); err != nil {
		return err
	}

	px, py := ctx.Int("x"), ctx.Int("y")
	if px < 0 || py < 0 || int64(px) >= int64(sc.Width) || int64(py) >= int64(sc.Height) {
		return fmt.Errorf("pixel (%d, %d) is outside the %dx%d frame", px, py, sc.Width, sc.Height)
	}
	x, y := uint32(px), uint32(py)

	ray := camera.PrimaryRay(x, y)
	logger.Noticef("primary ray for pixel (%d, %d): origin %s, direction %s", x, y, ray.Origin, ray.Direction)

	isect, hit := sc.Trace(ray)
	if !hit {
		logger.Notice("ray does not hit any primitive")
		return nil
	}

	hitPoint := ray.At(isect.Distance)
	logger.Noticef(
		"hit primitive %d (%s) at distance %f\n  point  %s\n  normal %s",
		isect.Index, isect.Object.Type, isect.Distance, hitPoint, isect.Object.NormalAt(hitPoint),
	)
	return nil
}
