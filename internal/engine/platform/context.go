// Package platform owns the SDL2 windows, their OpenGL contexts and the
// translation of SDL events into normalized input events.
package platform

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/logger"
)

// Context is the process-wide platform state shared by all windows.
// SDL and the system cursors are set up when the first window is created
// and torn down when the last one is destroyed.
type Context struct {
	mu       sync.Mutex
	windows  int
	glLoaded bool

	setup    func() error
	teardown func() error
	loadGL   func() error

	cursors [input.CursorCount]*sdl.Cursor
}

// NewContext creates a platform context with no live windows.
func NewContext() *Context {
	c := &Context{loadGL: initGL}
	c.setup = c.setupSDL
	c.teardown = c.teardownSDL
	return c
}

// Windows returns the number of live windows.
func (c *Context) Windows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.windows
}

// acquire registers a new window. The first registration runs setup; if it
// fails the count is left unchanged.
func (c *Context) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.windows == 0 {
		if err := c.setup(); err != nil {
			return err
		}
	}
	c.windows++
	return nil
}

// release unregisters a window. The last release runs teardown.
func (c *Context) release() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.windows == 0 {
		return nil
	}
	c.windows--
	if c.windows > 0 {
		return nil
	}
	c.glLoaded = false
	return c.teardown()
}

// ensureGL loads the OpenGL entry points once a context is current.
func (c *Context) ensureGL() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.glLoaded {
		return nil
	}
	if err := c.loadGL(); err != nil {
		return fmt.Errorf("loading OpenGL functions: %w", err)
	}
	c.glLoaded = true
	return nil
}

func initGL() error {
	if err := gl.Init(); err != nil {
		return err
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

func (c *Context) setupSDL() error {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile, the most macOS supports.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	c.createCursors()
	return nil
}

func (c *Context) teardownSDL() error {
	logger.Info("shutting down SDL2")
	freed := make(map[*sdl.Cursor]bool)
	for i, cur := range c.cursors {
		if cur != nil && !freed[cur] {
			sdl.FreeCursor(cur)
			freed[cur] = true
		}
		c.cursors[i] = nil
	}
	sdl.Quit()
	return nil
}

// releaseAll is used when window creation fails half way.
func (c *Context) releaseAll(errs ...error) error {
	return multierr.Append(multierr.Combine(errs...), c.release())
}
