package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/picsort/internal/engine/input"
)

var systemCursors = [input.CursorCount]sdl.SystemCursor{
	input.CursorArrow:      sdl.SYSTEM_CURSOR_ARROW,
	input.CursorTextInput:  sdl.SYSTEM_CURSOR_IBEAM,
	input.CursorResizeAll:  sdl.SYSTEM_CURSOR_SIZEALL,
	input.CursorResizeNS:   sdl.SYSTEM_CURSOR_SIZENS,
	input.CursorResizeEW:   sdl.SYSTEM_CURSOR_SIZEWE,
	input.CursorResizeNESW: sdl.SYSTEM_CURSOR_SIZENESW,
	input.CursorResizeNWSE: sdl.SYSTEM_CURSOR_SIZENWSE,
	input.CursorHand:       sdl.SYSTEM_CURSOR_HAND,
	input.CursorNotAllowed: sdl.SYSTEM_CURSOR_NO,
}

// createCursors loads the system cursors. Shapes the host lacks fall back
// to the arrow.
func (c *Context) createCursors() {
	for i, id := range systemCursors {
		c.cursors[i] = sdl.CreateSystemCursor(id)
	}
	for i := range c.cursors {
		if c.cursors[i] == nil {
			c.cursors[i] = c.cursors[input.CursorArrow]
		}
	}
}

// cursor returns the SDL cursor for shape, or nil for CursorNone.
func (c *Context) cursor(shape input.Cursor) *sdl.Cursor {
	if shape < 0 || shape >= input.CursorCount {
		return nil
	}
	return c.cursors[shape]
}
