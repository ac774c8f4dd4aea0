// Package renderer draws the photograph and the GUI draw lists with OpenGL.
package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BeginFrame sets the viewport to the whole framebuffer and clears it.
func BeginFrame(fbWidth, fbHeight int, clear [3]float32) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(clear[0], clear[1], clear[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
