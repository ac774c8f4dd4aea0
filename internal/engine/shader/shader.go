// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrNotFound is returned when a uniform or attribute is missing or inactive.
var ErrNotFound = errors.New("not found")

// Program is a linked GLSL program. Name appears in every error.
type Program struct {
	Name string
	ID   uint32
}

// Compile compiles vertex and fragment shaders and links them into a program.
// Errors name the program, the failing stage and carry the driver's log.
func Compile(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program %q: vertex shader: %w", name, err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program %q: fragment shader: %w", name, err)
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("program %q: link: %s", name, trimLog(log))
	}

	return &Program{Name: name, ID: program}, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(trimLog(log))
	}

	return shader, nil
}

// trimLog turns a NUL-terminated driver log into a single readable string.
func trimLog(log []byte) string {
	if i := strings.IndexByte(string(log), 0); i >= 0 {
		log = log[:i]
	}
	s := strings.TrimSpace(string(log))
	if s == "" {
		return "no log available"
	}
	return s
}

// Uniform returns the location of a uniform.
func (p *Program) Uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, lookupError(p.Name, "uniform", name)
	}
	return loc, nil
}

// Attrib returns the location of a vertex attribute.
func (p *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, lookupError(p.Name, "attribute", name)
	}
	return uint32(loc), nil
}

func lookupError(program, kind, name string) error {
	return fmt.Errorf("program %q: %s %q: %w", program, kind, name, ErrNotFound)
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
