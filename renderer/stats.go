package renderer

import "time"

// Per-tracer share of the last rendered frame.
type TracerStat struct {
	Id string

	// Rows assigned by the block scheduler and the fraction of the frame
	// height they cover, in percent.
	BlockH       uint32
	FramePercent float32

	// Time spent tracing the assigned rows. Zero for idle tracers.
	RenderTime time.Duration
}

// Timing breakdown for the last rendered frame.
type FrameStats struct {
	// One entry per attached tracer, in attachment order.
	Tracers []TracerStat

	// Wall time from scheduling until the last block completed.
	RenderTime time.Duration
}
