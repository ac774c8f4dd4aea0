package platform

import (
	"fmt"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/logger"
)

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	// WaitTimeout bounds Wait. Zero blocks until an event arrives.
	WaitTimeout time.Duration
}

// Window wraps an SDL2 window and its OpenGL context.
type Window struct {
	ctx       *Context
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	id        uint32

	router *input.Router
	mirror *input.Mirror

	closed   bool
	lastTick time.Time
	cursor   input.Cursor
}

// NewWindow creates a window with a current OpenGL context.
// The first window of ctx initializes SDL and loads OpenGL.
func NewWindow(ctx *Context, cfg Config) (*Window, error) {
	if err := ctx.acquire(); err != nil {
		return nil, err
	}

	mirror := input.NewMirror()
	w := &Window{
		ctx:    ctx,
		config: cfg,
		mirror: mirror,
		router: input.NewRouter(mirror),
		cursor: input.CursorArrow,
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		return nil, ctx.releaseAll(fmt.Errorf("SDL_CreateWindow failed: %w", err))
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		return nil, ctx.releaseAll(fmt.Errorf("SDL_GL_CreateContext failed: %w", err), w.sdlWindow.Destroy())
	}

	if err := ctx.ensureGL(); err != nil {
		sdl.GLDeleteContext(w.glContext)
		return nil, ctx.releaseAll(err, w.sdlWindow.Destroy())
	}

	w.id, err = w.sdlWindow.GetID()
	if err != nil {
		logger.Warn("window id unavailable", zap.Error(err))
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	sdl.StartTextInput()
	w.lastTick = time.Now()

	fbW, fbH := w.FramebufferSize()
	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("framebuffer_width", fbW),
		zap.Int("framebuffer_height", fbH),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// SetHandler installs the application's event handler.
func (w *Window) SetHandler(h input.Handler) {
	w.router.SetHandler(h)
}

// Mirror returns the GUI input model fed by this window.
func (w *Window) Mirror() *input.Mirror {
	return w.mirror
}

// Poll drains pending events without blocking.
func (w *Window) Poll() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		w.dispatch(event)
	}
}

// Wait blocks until an event arrives or the configured timeout expires,
// then drains the queue.
func (w *Window) Wait() {
	var event sdl.Event
	if w.config.WaitTimeout > 0 {
		event = sdl.WaitEventTimeout(int(w.config.WaitTimeout / time.Millisecond))
	} else {
		event = sdl.WaitEvent()
	}
	if event != nil {
		w.dispatch(event)
	}
	w.Poll()
}

func (w *Window) dispatch(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		w.closed = true

	case *sdl.WindowEvent:
		if e.WindowID != w.id {
			return
		}
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			w.closed = true
		}

	case *sdl.KeyboardEvent:
		if e.WindowID != w.id {
			return
		}
		action := input.Release
		if e.State == sdl.PRESSED {
			action = input.Press
			if e.Repeat != 0 {
				action = input.Repeat
			}
		}
		w.router.Key(input.KeyEvent{
			Key:      mapKey(e.Keysym.Sym),
			Scancode: int(e.Keysym.Scancode),
			Action:   action,
			Mods:     mapMods(uint32(e.Keysym.Mod)),
		})

	case *sdl.TextInputEvent:
		if e.WindowID != w.id {
			return
		}
		for _, r := range e.GetText() {
			w.router.Char(r)
		}

	case *sdl.MouseButtonEvent:
		if e.WindowID != w.id {
			return
		}
		btn, ok := mapButton(e.Button)
		if !ok {
			return
		}
		action := input.Release
		if e.State == sdl.PRESSED {
			action = input.Press
		}
		w.router.Mouse(input.MouseEvent{
			Button: btn,
			Action: action,
			Mods:   w.Mods(),
		})

	case *sdl.MouseWheelEvent:
		if e.WindowID != w.id {
			return
		}
		dx, dy := float32(e.X), float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		w.router.Scroll(dx, dy)
	}
}

// Size returns the window size in logical units.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// FramebufferSize returns the drawable size in physical pixels.
func (w *Window) FramebufferSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Scale returns framebuffer pixels per logical unit.
func (w *Window) Scale() float32 {
	width, _ := w.Size()
	fbW, _ := w.FramebufferSize()
	if width <= 0 || fbW <= 0 {
		return 1
	}
	return float32(fbW) / float32(width)
}

// Tick returns the seconds elapsed since the previous call.
func (w *Window) Tick() float32 {
	now := time.Now()
	dt := float32(now.Sub(w.lastTick).Seconds())
	w.lastTick = now
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return dt
}

// Focused reports whether the window has keyboard focus.
func (w *Window) Focused() bool {
	return w.sdlWindow.GetFlags()&sdl.WINDOW_INPUT_FOCUS != 0
}

// Pointer returns the mouse position in logical units and the held buttons
// as a mask indexed by input.MouseButton. The position is NaN while the
// window is unfocused.
func (w *Window) Pointer() (x, y float32, buttons uint32) {
	mx, my, state := sdl.GetMouseState()
	buttons = buttonMask(state)
	if !w.Focused() {
		nan := float32(math.NaN())
		return nan, nan, buttons
	}
	return float32(mx), float32(my), buttons
}

// Mods returns the held modifier keys.
func (w *Window) Mods() input.Mod {
	return mapMods(uint32(sdl.GetModState()))
}

// SyncCursor shows the cursor shape the GUI asks for. Nothing changes while
// the GUI forbids cursor changes or the mouse is grabbed in relative mode.
func (w *Window) SyncCursor(shape input.Cursor, allowChange bool) {
	if !allowChange || sdl.GetRelativeMouseMode() {
		return
	}
	if shape == input.CursorNone {
		sdl.ShowCursor(sdl.DISABLE)
		w.cursor = shape
		return
	}

	cur := w.ctx.cursor(shape)
	if cur == nil {
		cur = w.ctx.cursor(input.CursorArrow)
	}
	if shape != w.cursor {
		sdl.SetCursor(cur)
		w.cursor = shape
	}
	sdl.ShowCursor(sdl.ENABLE)
}

// SetClipboard replaces the system clipboard text.
func (w *Window) SetClipboard(text string) error {
	err := sdl.SetClipboardText(text)
	if err == nil {
		return nil
	}
	logger.Debug("SDL clipboard failed, using fallback", zap.Error(err))
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("setting clipboard: %w", err)
	}
	return nil
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Close asks the window to close. IsClosed reports true afterwards.
func (w *Window) Close() {
	w.closed = true
}

// IsClosed reports whether the user or the application closed the window.
func (w *Window) IsClosed() bool {
	return w.closed
}

// Destroy releases the OpenGL context and the window. Destroying the last
// window shuts SDL down.
func (w *Window) Destroy() error {
	if w.sdlWindow == nil {
		return nil
	}
	logger.Info("destroying window", zap.String("title", w.config.Title))

	sdl.StopTextInput()
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	err := w.sdlWindow.Destroy()
	w.sdlWindow = nil
	w.closed = true

	return multierr.Append(err, w.ctx.release())
}
