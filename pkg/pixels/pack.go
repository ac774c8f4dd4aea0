// Package pixels converts images to the tightly-packed byte layouts the GPU
// uploads expect.
package pixels

import (
	"image"

	"golang.org/x/image/draw"
)

// PackRGBA converts img to tightly-packed 8-bit RGBA rows, top row first.
func PackRGBA(img image.Image) (pixels []byte, width, height int) {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() && b.Min == (image.Point{}) {
		return rgba.Pix, b.Dx(), b.Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, b.Dx(), b.Dy()
}

// PackRGB converts img to tightly-packed 8-bit RGB rows, top row first.
// Alpha is dropped.
func PackRGB(img image.Image) (pixels []byte, width, height int) {
	rgba, width, height := PackRGBA(img)
	pixels = make([]byte, width*height*3)
	for i, j := 0, 0; i < len(rgba); i, j = i+4, j+3 {
		pixels[j] = rgba[i]
		pixels[j+1] = rgba[i+1]
		pixels[j+2] = rgba[i+2]
	}
	return pixels, width, height
}

// AlphaToRGBA expands 8-bit coverage values to white RGBA pixels.
func AlphaToRGBA(alpha []byte) []byte {
	out := make([]byte, len(alpha)*4)
	for i, a := range alpha {
		out[4*i] = 255
		out[4*i+1] = 255
		out[4*i+2] = 255
		out[4*i+3] = a
	}
	return out
}
