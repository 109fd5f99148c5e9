package cmd

import (
	"bytes"
	"fmt"

	"github.com/anuraags/raytracer/renderer"
	"github.com/anuraags/raytracer/renderer/opengl"
	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, scheduler, opts, err := renderSetup(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	frame, err := r.Render()
	if err != nil {
		return err
	}

	displayFrameStats(r.Stats())

	return renderer.SavePNG(frame, ctx.String("out"))
}

// Render the scene in an opengl window until it is closed.
func RenderInteractive(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, scheduler, opts, err := renderSetup(ctx)
	if err != nil {
		return err
	}

	r, err := opengl.NewInteractive(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if _, err = r.Render(); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

func renderSetup(ctx *cli.Context) (sc *scene.Scene, scheduler tracer.BlockScheduler, opts renderer.Options, err error) {
	if sc, err = loadScene(ctx); err != nil {
		return
	}

	if scheduler, err = blockScheduler(ctx.String("scheduler")); err != nil {
		return
	}

	opts = renderer.Options{
		NumTracers: ctx.Int("tracers"),
	}
	return
}

func blockScheduler(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "naive":
		return tracer.NaiveScheduler(), nil
	case "perfect":
		return tracer.PerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown block scheduler %q", name)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
