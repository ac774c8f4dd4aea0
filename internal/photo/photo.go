// Package photo loads JPEG photographs with their EXIF metadata.
package photo

import (
	"fmt"
	"time"

	"github.com/Faultbox/picsort/pkg/math"
)

// DateLayout formats capture times for display.
const DateLayout = "2006-01-02 15:04"

// Photo is a decoded photograph. A photo that failed to load has zero
// width and height and a non-empty ErrAction.
type Photo struct {
	Path string

	Pixels        []byte // packed RGB8, top row first
	Width, Height int
	Orientation   math.Orientation

	// CaptureTime is the EXIF capture time, or the file's modification time
	// when the photo carries none.
	CaptureTime time.Time
	Date        string

	HasGPS    bool
	Latitude  float64
	Longitude float64

	ErrAction  string
	ErrMessage string
}

// Failed reports whether the photo could not be decoded.
func (p *Photo) Failed() bool {
	return p.ErrAction != ""
}

// Error describes the load failure, or returns "" for a good photo.
func (p *Photo) Error() string {
	if !p.Failed() {
		return ""
	}
	return p.ErrAction + ": " + p.ErrMessage
}

// GeoText returns the coordinates as "lat, lon", or "" without GPS data.
func (p *Photo) GeoText() string {
	if !p.HasGPS {
		return ""
	}
	return fmt.Sprintf("%.6g, %.6g", p.Latitude, p.Longitude)
}

// Release drops the pixel buffer.
func (p *Photo) Release() {
	p.Pixels = nil
}

func (p *Photo) setTime(t time.Time) {
	p.CaptureTime = t
	p.Date = t.Format(DateLayout)
}

func (p *Photo) fail(action string, err error) {
	p.ErrAction = action
	p.ErrMessage = err.Error()
	p.Pixels = nil
	p.Width, p.Height = 0, 0
}
