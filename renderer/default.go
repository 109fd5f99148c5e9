package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/tracer"
)

// A renderer that splits each frame into row blocks and traces them in
// parallel on a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	frame     *tracer.Frame
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	options   Options

	blockAssignments []uint32
	stats            FrameStats

	doneChan chan uint32
	errChan  chan error
}

// Create a new default renderer using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if err := sc.Camera().Validate(); err != nil {
		return nil, err
	}

	if opts.NumTracers <= 0 {
		opts.NumTracers = runtime.NumCPU()
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		frame:     tracer.NewFrame(sc.Width, sc.Height),
		scheduler: scheduler,
		options:   opts,
	}

	for idx := 0; idx < opts.NumTracers; idx++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", idx))
		if err := tr.Setup(sc, r.frame); err != nil {
			tr.Close()
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	// Buffered so tracers never block on reporting
	r.doneChan = make(chan uint32, len(r.tracers))
	r.errChan = make(chan error, len(r.tracers))

	r.logger.Infof("attached %d tracer(s) for a %dx%d frame", len(r.tracers), sc.Width, sc.Height)
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame. The same frame buffer is reused by subsequent calls.
func (r *defaultRenderer) Render() (*tracer.Frame, error) {
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	if err := r.renderFrame(); err != nil {
		return nil, err
	}
	return r.frame, nil
}

func (r *defaultRenderer) renderFrame() error {
	start := time.Now()

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.frame.Height)

	var blockY uint32
	pending := 0
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockH,
			DoneChan: r.doneChan,
			ErrChan:  r.errChan,
		})
		blockY += blockH
		pending++
	}

	// Wait for all blocks even if one fails so no tracer is left writing
	var err error
	for ; pending > 0; pending-- {
		select {
		case <-r.doneChan:
		case blockErr := <-r.errChan:
			if err == nil {
				err = blockErr
			}
		}
	}
	if err != nil {
		return err
	}

	r.updateStats(time.Since(start))
	return nil
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		stat := TracerStat{
			Id:     tr.Id(),
			BlockH: r.blockAssignments[idx],
		}
		if stat.BlockH > 0 {
			stat.RenderTime = tr.Stats().BlockTime
		}
		if r.frame.Height > 0 {
			stat.FramePercent = 100.0 * float32(stat.BlockH) / float32(r.frame.Height)
		}
		r.stats.Tracers[idx] = stat
	}

	r.logger.Debugf("rendered frame in %s", renderTime)
}
