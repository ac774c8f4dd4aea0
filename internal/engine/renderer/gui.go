package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/shader"
	"github.com/Faultbox/picsort/internal/engine/texture"
	"github.com/Faultbox/picsort/internal/logger"
)

const guiVertexShader = `
#version 410 core

uniform mat4 ProjMtx;

in vec2 Position;
in vec2 UV;
in vec4 Color;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0.0, 1.0);
}
`

const guiFragmentShader = `
#version 410 core

uniform sampler2D Texture;

in vec2 Frag_UV;
in vec4 Frag_Color;

out vec4 Out_Color;

void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// GUIRenderer draws GUI draw batches with OpenGL.
type GUIRenderer struct {
	program *shader.Program

	uProj    int32
	uTexture int32
	aPos     uint32
	aUV      uint32
	aColor   uint32

	vbo uint32
	ebo uint32

	textures map[uint32]*texture.Texture

	// per-Render state
	vao     uint32
	display DisplayInfo
}

// NewGUIRenderer compiles the GUI program and allocates buffers. GUI
// textures arrive later through UpdateTexture.
func NewGUIRenderer() (*GUIRenderer, error) {
	program, err := shader.Compile("gui", guiVertexShader, guiFragmentShader)
	if err != nil {
		return nil, err
	}
	r := &GUIRenderer{
		program:  program,
		textures: make(map[uint32]*texture.Texture),
	}

	if err := r.lookupLocations(); err != nil {
		r.Destroy()
		return nil, err
	}

	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	logger.Debug("gui renderer created", zap.Uint32("program", program.ID))
	return r, nil
}

// UpdateTexture implements TextureUploader. An update of an unknown
// texture creates a new one.
func (r *GUIRenderer) UpdateTexture(req TextureRequest) (uint32, error) {
	if req.Op == TextureDestroy {
		if t, ok := r.textures[req.ID]; ok {
			t.Destroy()
			delete(r.textures, req.ID)
		}
		return 0, nil
	}

	if t, ok := r.textures[req.ID]; ok && req.Op == TextureUpdate {
		if err := t.Upload(req.Width, req.Height, req.Pixels); err != nil {
			return t.ID, fmt.Errorf("updating GUI texture %d: %w", t.ID, err)
		}
		return t.ID, nil
	}

	t := texture.New(texture.RGBA8)
	if err := t.Upload(req.Width, req.Height, req.Pixels); err != nil {
		t.Destroy()
		return 0, fmt.Errorf("creating GUI texture: %w", err)
	}
	r.textures[t.ID] = t
	logger.Debug("gui texture created",
		zap.Uint32("texture", t.ID),
		zap.Int("width", req.Width),
		zap.Int("height", req.Height),
	)
	return t.ID, nil
}

func (r *GUIRenderer) lookupLocations() error {
	var err error
	if r.uProj, err = r.program.Uniform("ProjMtx"); err != nil {
		return err
	}
	if r.uTexture, err = r.program.Uniform("Texture"); err != nil {
		return err
	}
	if r.aPos, err = r.program.Attrib("Position"); err != nil {
		return err
	}
	if r.aUV, err = r.program.Attrib("UV"); err != nil {
		return err
	}
	if r.aColor, err = r.program.Attrib("Color"); err != nil {
		return err
	}
	return nil
}

// Render draws the batches accepted by filter. GL state touched here is
// restored or reset to disabled before returning.
func (r *GUIRenderer) Render(display DisplayInfo, batches []DrawBatch, filter Filter) {
	fbW, fbH := display.FramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}

	var prevViewport, prevScissor [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &prevScissor[0])

	// VAOs are per context.
	gl.GenVertexArrays(1, &r.vao)
	r.display = display
	r.setupRenderState()

	walkBatches(display, batches, filter, r)

	gl.DeleteVertexArrays(1, &r.vao)
	r.vao = 0

	gl.UseProgram(0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BlendEquationSeparate(gl.FUNC_ADD, gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.ONE, gl.ZERO, gl.ONE, gl.ZERO)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	gl.Scissor(prevScissor[0], prevScissor[1], prevScissor[2], prevScissor[3])
}

func (r *GUIRenderer) setupRenderState() {
	fbW, fbH := r.display.FramebufferSize()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.STENCIL_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	proj := r.display.Projection()
	r.program.Use()
	gl.Uniform1i(r.uTexture, 0)
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.EnableVertexAttribArray(r.aPos)
	gl.EnableVertexAttribArray(r.aUV)
	gl.EnableVertexAttribArray(r.aColor)
	gl.VertexAttribPointerWithOffset(r.aPos, 2, gl.FLOAT, false, VertexSize, VertexPos)
	gl.VertexAttribPointerWithOffset(r.aUV, 2, gl.FLOAT, false, VertexSize, VertexUV)
	gl.VertexAttribPointerWithOffset(r.aColor, 4, gl.UNSIGNED_BYTE, true, VertexSize, VertexColor)
}

func (r *GUIRenderer) upload(batch *DrawBatch) {
	if len(batch.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(batch.Vertices), gl.Ptr(batch.Vertices), gl.STREAM_DRAW)
	}
	if len(batch.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(batch.Indices), gl.Ptr(batch.Indices), gl.STREAM_DRAW)
	}
}

func (r *GUIRenderer) resetState() {
	r.setupRenderState()
}

func (r *GUIRenderer) callback(batch *DrawBatch, cmd *DrawCommand) {
	cmd.Callback(batch, cmd)
}

func (r *GUIRenderer) draw(batch *DrawBatch, cmd *DrawCommand, s Scissor) {
	indexType := uint32(gl.UNSIGNED_SHORT)
	indexSize := 2
	if batch.IndexSize == 4 {
		indexType = gl.UNSIGNED_INT
		indexSize = 4
	}

	gl.Scissor(s.X, s.Y, s.W, s.H)
	gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
	gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), indexType,
		uintptr(cmd.IdxOffset*indexSize), int32(cmd.VtxOffset))
}

// Destroy releases the program, buffers and GUI textures.
func (r *GUIRenderer) Destroy() {
	logger.Debug("destroying gui renderer")
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	for id, t := range r.textures {
		t.Destroy()
		delete(r.textures, id)
	}
	if r.program != nil {
		r.program.Destroy()
		r.program = nil
	}
}
