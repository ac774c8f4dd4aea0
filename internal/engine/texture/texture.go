// Package texture manages 2D OpenGL textures.
package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Format is a pixel layout for uploads.
type Format int

// Supported pixel formats.
const (
	RGB8 Format = iota
	RGBA8
)

// BytesPerPixel returns the tightly-packed size of one pixel.
func (f Format) BytesPerPixel() int {
	if f == RGBA8 {
		return 4
	}
	return 3
}

func (f Format) String() string {
	if f == RGBA8 {
		return "RGBA8"
	}
	return "RGB8"
}

func (f Format) glFormats() (internal int32, format uint32) {
	if f == RGBA8 {
		return gl.RGBA8, gl.RGBA
	}
	return gl.RGB8, gl.RGB
}

// Texture is a 2D texture with linear filtering, edge clamping and no mipmaps.
type Texture struct {
	Format Format
	Width  int
	Height int
	ID     uint32
}

// New creates an empty texture.
func New(format Format) *Texture {
	t := &Texture{Format: format}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// CheckSize reports whether pixels holds exactly width x height pixels of format.
func CheckSize(format Format, width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	want := width * height * format.BytesPerPixel()
	if len(pixels) != want {
		return fmt.Errorf("%s %dx%d needs %d bytes, got %d", format, width, height, want, len(pixels))
	}
	return nil
}

// Upload replaces the whole texture image. Rows are tightly packed.
func (t *Texture) Upload(width, height int, pixels []byte) error {
	if err := CheckSize(t.Format, width, height, pixels); err != nil {
		return err
	}

	var prevAlign int32
	gl.GetIntegerv(gl.UNPACK_ALIGNMENT, &prevAlign)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	internal, format := t.Format.glFormats()
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, prevAlign)

	t.Width = width
	t.Height = height
	return nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Empty reports whether no image has been uploaded.
func (t *Texture) Empty() bool {
	return t.Width == 0 || t.Height == 0
}

// Destroy releases the texture.
func (t *Texture) Destroy() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
	t.Width, t.Height = 0, 0
}
