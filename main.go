package main

import (
	"fmt"
	"os"

	"github.com/anuraags/raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "override the scene frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "override the scene frame height",
		},
		cli.Float64Flag{
			Name:  "fov",
			Usage: "override the scene camera field of view in degrees",
		},
		cli.Float64Flag{
			Name:  "shadow-bias",
			Usage: "override the scene shadow ray bias",
		},
	}

	renderFlags := append([]cli.Flag{
		cli.IntFlag{
			Name:  "tracers",
			Value: 0,
			Usage: "number of cpu tracers to attach (0 = number of cpus)",
		},
		cli.StringFlag{
			Name:  "scheduler",
			Value: "naive",
			Usage: "block scheduler to use (naive or perfect)",
		},
	}, frameFlags...)

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes of spheres and planes lit by directional lights"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log verbosity (debug, info, notice, warning or error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile json scene definitions into a binary compressed format",
			Description: `
Parse and validate a scene definition from a json file and package it
into a zip archive which can be supplied as an argument to the render
and scene-info commands.`,
			ArgsUsage: "scene_file1.json scene_file2.json ...",
			Action:    cmd.CompileScene,
		},
		{
			Name:      "scene-info",
			Usage:     "display scene information",
			ArgsUsage: "scene_file",
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:      "demo-scene",
			Usage:     "write the built-in scene to a json or zip file",
			ArgsUsage: "out.json",
			Action:    cmd.WriteDemoScene,
		},
		{
			Name:  "list-tracers",
			Usage: "list the cpu tracers attached by the render commands",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "tracers",
					Value: 0,
					Usage: "number of cpu tracers to attach (0 = number of cpus)",
				},
			},
			Action: cmd.ListTracers,
		},
		{
			Name:   "render",
			Usage:  "render scene",
			Action: nil,
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame and save it as a png image. If no scene file is
specified the built-in scene is rendered.`,
					ArgsUsage: "[scene_file]",
					Flags: append([]cli.Flag{
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					}, renderFlags...),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "interactive",
					Usage: "render interactive view of the scene",
					Description: `
Continuously render the scene into an opengl window. Press TAB to toggle
the tracer block overlay and ESC to exit.`,
					ArgsUsage: "[scene_file]",
					Flags:     renderFlags,
					Action:    cmd.RenderInteractive,
				},
			},
		},
		{
			Name:      "trace-pixel",
			Usage:     "trace the primary ray of a single pixel and display hit information",
			ArgsUsage: "[scene_file]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "x",
					Usage: "pixel column",
				},
				cli.IntFlag{
					Name:  "y",
					Usage: "pixel row",
				},
			}, frameFlags...),
			Action: cmd.TracePixel,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
