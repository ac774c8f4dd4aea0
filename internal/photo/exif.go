package photo

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/Faultbox/picsort/pkg/math"
)

// Metadata is the EXIF data picsort uses. Zero values mean absent.
type Metadata struct {
	Orientation math.Orientation
	Time        time.Time

	HasGPS    bool
	Latitude  float64
	Longitude float64
}

// MetadataReader extracts metadata from an encoded image.
type MetadataReader interface {
	ReadMetadata(data []byte) (Metadata, error)
}

// EXIFReader reads metadata with goexif.
type EXIFReader struct{}

// ReadMetadata decodes the EXIF block of data. Missing individual tags are
// not errors.
func (EXIFReader) ReadMetadata(data []byte) (Metadata, error) {
	var md Metadata

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return md, fmt.Errorf("decoding EXIF: %w", err)
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			md.Orientation = math.Orientation(v)
		}
	}

	// DateTimeOriginal, falling back to DateTime.
	if t, err := x.DateTime(); err == nil && !t.IsZero() {
		md.Time = t
	}

	if lat, lon, err := x.LatLong(); err == nil {
		md.HasGPS = true
		md.Latitude = lat
		md.Longitude = lon
	}

	return md, nil
}
