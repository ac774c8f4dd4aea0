package math

// Orientation is an EXIF orientation code (1-8).
// See http://jpegclub.org/exif_orientation.html
type Orientation int

// EXIF orientation codes.
const (
	OrientationNormal     Orientation = 1
	OrientationMirrorH    Orientation = 2
	OrientationRotate180  Orientation = 3
	OrientationMirrorV    Orientation = 4
	OrientationTranspose  Orientation = 5
	OrientationRotate90   Orientation = 6 // clockwise
	OrientationTransverse Orientation = 7
	OrientationRotate270  Orientation = 8 // clockwise, i.e. 90 counter-clockwise
)

// Valid reports whether o is one of the eight EXIF codes.
func (o Orientation) Valid() bool {
	return o >= OrientationNormal && o <= OrientationRotate270
}

// SwapsAxes reports whether the displayed width is the stored height.
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationTranspose && o <= OrientationRotate270
}

// orientationBasis holds the unscaled 2x2 part (x' = a*x + b*y, y' = c*x + d*y)
// that maps the quad corner sampling the first stored pixel to the screen corner
// where the EXIF code wants it.
var orientationBasis = [9][4]float32{
	OrientationNormal:     {1, 0, 0, 1},
	OrientationMirrorH:    {-1, 0, 0, 1},
	OrientationRotate180:  {-1, 0, 0, -1},
	OrientationMirrorV:    {1, 0, 0, -1},
	OrientationTranspose:  {0, -1, -1, 0},
	OrientationRotate90:   {0, 1, -1, 0},
	OrientationTransverse: {0, 1, 1, 0},
	OrientationRotate270:  {0, -1, 1, 0},
}

// FitScale returns the per-axis screen scale that fits an image of the given
// displayed size into the framebuffer while preserving its aspect ratio.
// The overflowing axis is shrunk; equal aspect ratios scale neither axis.
func FitScale(fbWidth, fbHeight, width, height int) (sx, sy float32) {
	sx, sy = 1, 1
	if fbWidth <= 0 || fbHeight <= 0 || width <= 0 || height <= 0 {
		return sx, sy
	}

	// Compare aspect ratios with exact integer cross products.
	fbSide := int64(fbWidth) * int64(height)
	imgSide := int64(fbHeight) * int64(width)
	switch {
	case fbSide > imgSide:
		sx = float32(imgSide) / float32(fbSide)
	case fbSide < imgSide:
		sy = float32(fbSide) / float32(imgSide)
	}
	return sx, sy
}

// OrientationFit returns the transform for the unit image quad so that an
// image of width x height stored pixels, tagged with the given EXIF
// orientation, fills a fbWidth x fbHeight framebuffer upright and letterboxed.
// The quad corner (-1, 1) samples the first stored pixel.
func OrientationFit(fbWidth, fbHeight, width, height int, o Orientation) Mat4 {
	if !o.Valid() {
		o = OrientationNormal
	}
	if o.SwapsAxes() {
		width, height = height, width
	}
	sx, sy := FitScale(fbWidth, fbHeight, width, height)

	b := orientationBasis[o]
	m := Identity()
	m[0] = b[0] // a
	m[4] = b[1] // b
	m[1] = b[2] // c
	m[5] = b[3] // d
	return Scale(sx, sy, 1).Mul(m)
}
