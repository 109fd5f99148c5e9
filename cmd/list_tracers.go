package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/anuraags/raytracer/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the cpu tracers that a render would attach.
func ListTracers(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	numTracers := ctx.Int("tracers")
	if numTracers <= 0 {
		numTracers = runtime.NumCPU()
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Tracer", "Speed estimate"})
	for idx := 0; idx < numTracers; idx++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", idx))
		table.Append([]string{tr.Id(), fmt.Sprintf("%3.1f", tr.SpeedEstimate())})
		tr.Close()
	}
	table.Render()

	logger.Noticef("system provides %d cpu(s); %d tracer(s) will be attached\n%s", runtime.NumCPU(), numTracers, buf.String())
	return nil
}
