package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/picsort/internal/engine/shader"
	"github.com/Faultbox/picsort/internal/engine/texture"
	"github.com/Faultbox/picsort/pkg/math"
)

const imageVertexShader = `
#version 410 core

uniform mat4 mat;

in vec2 vertex;
in vec2 texcoord;

out vec2 uv;

void main() {
	uv = texcoord;
	gl_Position = mat * vec4(vertex, 0.0, 1.0);
}
`

const imageFragmentShader = `
#version 410 core

uniform sampler2D map;

in vec2 uv;

out vec4 color;

void main() {
	color = texture(map, uv);
}
`

// Unit quad. Corner (-1, 1) samples the first stored pixel.
var (
	quadVertices  = []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	quadTexcoords = []float32{0, 1, 1, 1, 0, 0, 1, 0}
	quadIndices   = []uint16{0, 1, 2, 3, 2, 1}
)

// ImageQuad draws one photograph fitted to the framebuffer.
type ImageQuad struct {
	program *shader.Program
	uMat    int32
	uMap    int32

	vao uint32
	vbo uint32
	tbo uint32
	ebo uint32

	tex         *texture.Texture
	orientation math.Orientation
}

// NewImageQuad compiles the image program and builds the static quad.
func NewImageQuad() (*ImageQuad, error) {
	program, err := shader.Compile("image", imageVertexShader, imageFragmentShader)
	if err != nil {
		return nil, err
	}
	q := &ImageQuad{program: program, orientation: math.OrientationNormal}

	if err := q.build(); err != nil {
		q.Destroy()
		return nil, err
	}
	q.tex = texture.New(texture.RGB8)
	return q, nil
}

func (q *ImageQuad) build() error {
	var err error
	if q.uMat, err = q.program.Uniform("mat"); err != nil {
		return err
	}
	if q.uMap, err = q.program.Uniform("map"); err != nil {
		return err
	}
	aVertex, err := q.program.Attrib("vertex")
	if err != nil {
		return err
	}
	aTexcoord, err := q.program.Attrib("texcoord")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(aVertex)
	gl.VertexAttribPointerWithOffset(aVertex, 2, gl.FLOAT, false, 0, 0)

	gl.GenBuffers(1, &q.tbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.tbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadTexcoords)*4, gl.Ptr(quadTexcoords), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(aTexcoord)
	gl.VertexAttribPointerWithOffset(aTexcoord, 2, gl.FLOAT, false, 0, 0)

	gl.GenBuffers(1, &q.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*2, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// SetImage uploads a tightly-packed RGB8 image with its EXIF orientation.
// An empty image clears the quad.
func (q *ImageQuad) SetImage(pixels []byte, width, height int, orientation math.Orientation) error {
	if width == 0 || height == 0 {
		q.Clear()
		return nil
	}
	if err := q.tex.Upload(width, height, pixels); err != nil {
		q.Clear()
		return fmt.Errorf("uploading image: %w", err)
	}
	q.orientation = orientation
	return nil
}

// Clear forgets the current image. Draw does nothing until the next SetImage.
func (q *ImageQuad) Clear() {
	q.tex.Width, q.tex.Height = 0, 0
	q.orientation = math.OrientationNormal
}

// Transform returns the quad transform for a framebuffer size.
func (q *ImageQuad) Transform(fbWidth, fbHeight int) math.Mat4 {
	return math.OrientationFit(fbWidth, fbHeight, q.tex.Width, q.tex.Height, q.orientation)
}

// Draw draws the image upright and letterboxed into the framebuffer.
func (q *ImageQuad) Draw(fbWidth, fbHeight int) {
	if q.tex.Empty() || fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	m := q.Transform(fbWidth, fbHeight)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	q.program.Use()
	gl.UniformMatrix4fv(q.uMat, 1, false, m.Ptr())
	gl.Uniform1i(q.uMap, 0)
	q.tex.Bind(0)

	gl.BindVertexArray(q.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Destroy releases the program, buffers and texture.
func (q *ImageQuad) Destroy() {
	if q.tex != nil {
		q.tex.Destroy()
		q.tex = nil
	}
	for _, b := range []*uint32{&q.vbo, &q.tbo, &q.ebo} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.program != nil {
		q.program.Destroy()
		q.program = nil
	}
}
