// Package frame runs the per-frame control loop: event pumping, GUI frame
// setup, the application draw callback and buffer swaps.
package frame

import (
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/internal/logger"
)

// DefaultPollsPerWait is the number of polling iterations between two
// blocking waits.
const DefaultPollsPerWait = 5

// Window is the platform window driven by the loop.
type Window interface {
	Poll()
	Wait()
	IsClosed() bool
	Close()

	Size() (int, int)
	FramebufferSize() (int, int)
	Scale() float32
	Tick() float32
	Pointer() (x, y float32, buttons uint32)
	Mods() input.Mod
	Mirror() *input.Mirror
	SyncCursor(shape input.Cursor, allowChange bool)

	SwapBuffers()
}

// GUI is the immediate-mode GUI library.
type GUI interface {
	NewFrame(in input.GUIInput)
	// Render finalizes the frame. Texture requests go to textures before
	// the batches are returned.
	Render(textures renderer.TextureUploader) (renderer.DisplayInfo, []renderer.DrawBatch)
	Cursor() (input.Cursor, bool)
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
}

// GUIRenderer owns the GUI textures and rasterizes GUI draw batches.
type GUIRenderer interface {
	renderer.TextureUploader
	Render(display renderer.DisplayInfo, batches []renderer.DrawBatch, filter renderer.Filter)
}

// Application is driven by the loop once per frame.
type Application interface {
	// ShouldStop ends the loop before the next frame is drawn.
	ShouldStop() bool
	// Draw renders one frame. It may call Loop.DrawGUI itself; otherwise the
	// loop renders the whole GUI after Draw returns.
	Draw(loop *Loop, state State)
}

// Status is the loop state.
type Status int

const (
	Running Status = iota
	Closed
)

func (s Status) String() string {
	if s == Closed {
		return "closed"
	}
	return "running"
}

// Config holds loop settings.
type Config struct {
	// PollsPerWait polling iterations run before each blocking wait. Zero
	// waits every iteration; a negative value never waits.
	PollsPerWait int
}

// Loop is the frame orchestrator for one window.
type Loop struct {
	window   Window
	gui      GUI
	renderer GUIRenderer
	config   Config

	status    Status
	iteration int
	frame     uint64
	rendered  bool
}

// New creates a running loop.
func New(window Window, gui GUI, r GUIRenderer, cfg Config) *Loop {
	return &Loop{
		window:   window,
		gui:      gui,
		renderer: r,
		config:   cfg,
		status:   Running,
	}
}

// Status returns the current loop state.
func (l *Loop) Status() Status {
	return l.status
}

// Frames returns the number of frames drawn.
func (l *Loop) Frames() uint64 {
	return l.frame
}

// Close stops the loop after the current frame.
func (l *Loop) Close() {
	l.window.Close()
}

// Run iterates until the loop is closed.
func (l *Loop) Run(app Application) {
	logger.Info("frame loop started", zap.Int("polls_per_wait", l.config.PollsPerWait))
	for l.Step(app) {
	}
	logger.Info("frame loop stopped", zap.Uint64("frames", l.frame))
}

// Step runs one iteration and reports whether the loop is still running.
func (l *Loop) Step(app Application) bool {
	if l.status == Closed {
		return false
	}

	if l.shouldWait() {
		l.window.Wait()
	} else {
		l.window.Poll()
	}
	l.iteration++

	switch {
	case l.window.IsClosed():
		logger.Debug("window closed")
		l.status = Closed
	case app.ShouldStop():
		logger.Debug("application requested stop")
		l.status = Closed
	default:
		l.drawFrame(app)
		if l.window.IsClosed() {
			l.status = Closed
		}
	}
	return l.status == Running
}

func (l *Loop) shouldWait() bool {
	n := l.config.PollsPerWait
	if n < 0 {
		return false
	}
	return l.iteration%(n+1) == n
}

func (l *Loop) drawFrame(app Application) {
	width, height := l.window.Size()
	fbW, fbH := l.window.FramebufferSize()
	scale := l.window.Scale()
	dt := l.window.Tick()
	x, y, buttons := l.window.Pointer()

	mirror := l.window.Mirror()
	in := mirror.Flush()

	l.gui.NewFrame(input.GUIInput{
		DisplayWidth:     float32(width),
		DisplayHeight:    float32(height),
		FramebufferScale: scale,
		DeltaTime:        dt,
		MouseX:           x,
		MouseY:           y,
		Frame:            in,
	})
	overGUI := l.gui.WantCaptureMouse()
	mirror.SetCapture(l.gui.WantCaptureKeyboard(), overGUI)
	l.window.SyncCursor(l.gui.Cursor())

	l.frame++
	state := State{
		WindowWidth:       width,
		WindowHeight:      height,
		FramebufferWidth:  fbW,
		FramebufferHeight: fbH,
		Scale:             scale,
		Mods:              l.window.Mods(),
		Buttons:           buttons,
		PointerX:          x,
		PointerY:          y,
		MouseOverGUI:      overGUI,
		ScrollX:           in.ScrollX,
		ScrollY:           in.ScrollY,
		DeltaTime:         dt,
		Frame:             l.frame,
	}

	l.rendered = false
	app.Draw(l, state)
	if !l.rendered {
		l.DrawGUI(renderer.AcceptAll)
	}

	l.window.SwapBuffers()
}

// DrawGUI finalizes the GUI frame and renders the batches accepted by
// filter. Calls after the first in a frame do nothing.
func (l *Loop) DrawGUI(filter renderer.Filter) {
	if l.rendered {
		return
	}
	l.rendered = true

	display, batches := l.gui.Render(l.renderer)
	l.renderer.Render(display, batches, filter)
}
