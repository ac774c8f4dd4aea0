package photo

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/pkg/math"
	"github.com/Faultbox/picsort/pkg/pixels"
)

// Decoder decodes an encoded image to packed RGB8.
type Decoder interface {
	Decode(data []byte) (pixels []byte, width, height int, err error)
}

// JPEGDecoder decodes baseline and progressive JPEG.
type JPEGDecoder struct{}

// Decode implements Decoder.
func (JPEGDecoder) Decode(data []byte) ([]byte, int, int, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}
	packed, width, height := pixels.PackRGB(img)
	return packed, width, height, nil
}

// Loader produces photographs from file paths. Load never fails outright;
// problems are recorded on the returned photo.
type Loader interface {
	Load(path string) *Photo
}

// FileLoader reads photographs from disk.
type FileLoader struct {
	decoder Decoder
	meta    MetadataReader
}

// NewLoader returns a loader using the JPEG decoder and the EXIF reader.
func NewLoader() *FileLoader {
	return NewLoaderWith(JPEGDecoder{}, EXIFReader{})
}

// NewLoaderWith returns a loader with custom collaborators.
func NewLoaderWith(decoder Decoder, meta MetadataReader) *FileLoader {
	return &FileLoader{decoder: decoder, meta: meta}
}

// Load reads, inspects and decodes the file at path.
func (l *FileLoader) Load(path string) *Photo {
	p := &Photo{Path: path, Orientation: math.OrientationNormal}
	log := logger.Named("photo").With(zap.String("path", path))

	info, err := os.Stat(path)
	if err != nil {
		p.fail("reading file", err)
		log.Warn("failed to stat photo", zap.Error(err))
		return p
	}
	p.setTime(info.ModTime())

	data, err := os.ReadFile(path)
	if err != nil {
		p.fail("reading file", err)
		log.Warn("failed to read photo", zap.Error(err))
		return p
	}

	md, err := l.meta.ReadMetadata(data)
	if err != nil {
		log.Debug("no usable EXIF data", zap.Error(err))
	} else {
		l.apply(p, md)
	}

	rgb, width, height, err := l.decoder.Decode(data)
	if err != nil {
		p.fail("decoding JPEG image", err)
		log.Warn("failed to decode photo", zap.Error(err))
		return p
	}
	if width <= 0 || height <= 0 {
		p.fail("decoding JPEG image", fmt.Errorf("empty image %dx%d", width, height))
		log.Warn("decoded photo is empty")
		return p
	}

	p.Pixels = rgb
	p.Width = width
	p.Height = height

	log.Debug("photo loaded",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("orientation", int(p.Orientation)),
		zap.Time("capture_time", p.CaptureTime),
	)
	return p
}

func (l *FileLoader) apply(p *Photo, md Metadata) {
	if md.Orientation.Valid() {
		p.Orientation = md.Orientation
	}
	if !md.Time.IsZero() {
		p.setTime(md.Time)
	}
	if md.HasGPS {
		p.HasGPS = true
		p.Latitude = md.Latitude
		p.Longitude = md.Longitude
	}
}
