package cmd

import (
	"github.com/anuraags/raytracer/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// Apply the global verbosity flags. The -v and -vv shortcuts take precedence
// over --log-level.
func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
	return nil
}
