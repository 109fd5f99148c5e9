package tracer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/scene"
)

var (
	ErrNotSetup      = errors.New("tracer: no scene attached")
	ErrFrameMismatch = errors.New("tracer: frame dimensions do not match scene")
	ErrBlockBounds   = errors.New("tracer: block exceeds frame bounds")
)

// A tracer that renders blocks on a dedicated goroutine.
type cpuTracer struct {
	id     string
	logger log.Logger

	sc    *scene.Scene
	frame *Frame

	queue     chan BlockRequest
	wg        sync.WaitGroup
	closeOnce sync.Once

	stats Stats
}

// Create a new cpu tracer and start its worker goroutine.
func NewCPUTracer(id string) Tracer {
	tr := &cpuTracer{
		id:     id,
		logger: log.New(id),
		queue:  make(chan BlockRequest, 1),
	}

	tr.wg.Add(1)
	go tr.run()
	return tr
}

func (tr *cpuTracer) Id() string {
	return tr.id
}

func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

func (tr *cpuTracer) Setup(sc *scene.Scene, frame *Frame) error {
	if err := sc.Camera().Validate(); err != nil {
		return err
	}
	if frame.Width != sc.Width || frame.Height != sc.Height {
		return fmt.Errorf("%w: frame %dx%d, scene %dx%d", ErrFrameMismatch, frame.Width, frame.Height, sc.Width, sc.Height)
	}

	tr.sc = sc
	tr.frame = frame
	return nil
}

func (tr *cpuTracer) Enqueue(req BlockRequest) {
	tr.queue <- req
}

func (tr *cpuTracer) Stats() *Stats {
	return &tr.stats
}

// Stop the worker once all queued blocks have been processed.
func (tr *cpuTracer) Close() {
	tr.closeOnce.Do(func() {
		close(tr.queue)
		tr.wg.Wait()
	})
}

func (tr *cpuTracer) run() {
	defer tr.wg.Done()

	for req := range tr.queue {
		err := tr.process(req)
		if err != nil {
			tr.logger.Errorf("block [%d, %d) failed: %s", req.BlockY, req.BlockY+req.BlockH, err)
			req.ErrChan <- err
			continue
		}
		req.DoneChan <- req.BlockH
	}
}

func (tr *cpuTracer) process(req BlockRequest) (err error) {
	if tr.sc == nil {
		return ErrNotSetup
	}
	if req.BlockY+req.BlockH > tr.frame.Height {
		return fmt.Errorf("%w: rows [%d, %d) of %d", ErrBlockBounds, req.BlockY, req.BlockY+req.BlockH, tr.frame.Height)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tracer %s: %v", tr.id, r)
		}
	}()

	start := time.Now()
	TraceBlock(tr.sc, tr.frame, req.BlockY, req.BlockH)

	tr.stats.BlockH = req.BlockH
	tr.stats.BlockTime = time.Since(start)
	tr.logger.Debugf("traced rows [%d, %d) in %s", req.BlockY, req.BlockY+req.BlockH, tr.stats.BlockTime)
	return nil
}
