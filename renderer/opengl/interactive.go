package opengl

import (
	"fmt"
	"runtime"

	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/renderer"
	"github.com/anuraags/raytracer/scene"
	"github.com/anuraags/raytracer/tracer"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Height in pixels for stacked series widgets
const stackedSeriesHeight uint32 = 20

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

// An interactive renderer that continuously re-renders the scene and
// displays the frame in an opengl window.
type interactiveGLRenderer struct {
	renderer.Renderer

	logger log.Logger
	frameW uint32
	frameH uint32

	// opengl handles
	window *glfw.Window

	// Display options
	showUI                bool
	blockAssignmentSeries *stackedSeries
}

// Create a new interactive opengl renderer using the specified block scheduler.
func NewInteractive(sc *scene.Scene, scheduler tracer.BlockScheduler, opts renderer.Options) (renderer.Renderer, error) {
	base, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return nil, err
	}

	r := &interactiveGLRenderer{
		Renderer: base,
		logger:   log.New("opengl"),
		frameW:   sc.Width,
		frameH:   sc.Height,
	}

	if err = r.initGL(); err != nil {
		r.Close()
		return nil, err
	}

	numTracers := opts.NumTracers
	if numTracers <= 0 {
		numTracers = runtime.NumCPU()
	}
	r.initUI(numTracers)

	return r, nil
}

func (r *interactiveGLRenderer) Close() {
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
		glfw.Terminate()
	}
	r.Renderer.Close()
}

func (r *interactiveGLRenderer) initGL() error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("opengl: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	r.window, err = glfw.CreateWindow(int(r.frameW), int(r.frameH), "raytracer", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("opengl: could not create window: %w", err)
	}
	r.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("opengl: could not init opengl: %w", err)
	}
	r.logger.Infof("opengl version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	r.window.SetKeyCallback(r.onKeyEvent)
	return nil
}

// Render frames until the window is closed. The last rendered frame is returned.
func (r *interactiveGLRenderer) Render() (*tracer.Frame, error) {
	var frame *tracer.Frame
	for !r.window.ShouldClose() {
		glfw.PollEvents()

		var err error
		frame, err = r.Renderer.Render()
		if err != nil {
			return nil, err
		}

		// Frame rows are stored top to bottom
		img := frame.Image()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.RasterPos2i(0, 0)
		gl.PixelZoom(1, -1)
		gl.DrawPixels(int32(r.frameW), int32(r.frameH), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

		// Display tracer block assignments
		if r.showUI {
			r.renderUI()
		}

		r.window.SwapBuffers()
	}
	return frame, nil
}

func (r *interactiveGLRenderer) initUI(numTracers int) {
	// Setup ortho projection with the origin at the top-left corner
	gl.Disable(gl.DEPTH_TEST)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(r.frameW), float64(r.frameH), 0, -1, 1)
	gl.Viewport(0, 0, int32(r.frameW), int32(r.frameH))
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	r.blockAssignmentSeries = makeStackedSeries(numTracers, int(r.frameW))
}

func (r *interactiveGLRenderer) renderUI() {
	stats := r.Stats()

	var y int32 = 1
	var frameW int32 = int32(r.frameW) - 1
	gl.LineWidth(2.0)
	for seriesIndex, stat := range stats.Tracers {
		gl.Color3fv(&r.blockAssignmentSeries.colors[seriesIndex][0])
		gl.Begin(gl.LINE_LOOP)
		gl.Vertex2i(0, y)
		gl.Vertex2i(frameW, y)
		gl.Vertex2i(frameW, y+int32(stat.BlockH))
		gl.Vertex2i(0, y+int32(stat.BlockH))
		gl.End()

		y += int32(stat.BlockH)
	}

	for seriesIndex, stat := range stats.Tracers {
		r.blockAssignmentSeries.Append(seriesIndex, float32(stat.BlockH))
	}
	r.blockAssignmentSeries.Render(r.frameH-stackedSeriesHeight, stackedSeriesHeight)
	gl.Color3f(1, 1, 1)
}

func (r *interactiveGLRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyTab:
		r.showUI = !r.showUI
		if r.showUI {
			r.blockAssignmentSeries.Clear()
		}
	}
}
