// Package picfix restores the modification time of JPEG files from their
// EXIF capture time.
package picfix

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/internal/photo"
)

// Fixer sets file times from EXIF metadata.
type Fixer struct {
	reader photo.MetadataReader
	// DryRun logs the new times without touching any file.
	DryRun bool
}

// New creates a Fixer reading metadata with reader. A nil reader selects
// photo.EXIFReader.
func New(reader photo.MetadataReader) *Fixer {
	if reader == nil {
		reader = photo.EXIFReader{}
	}
	return &Fixer{reader: reader}
}

// Stats counts the outcome of a Walk.
type Stats struct {
	Visited int // entries seen, directories included
	Fixed   int
	Skipped int // JPEGs without a capture time
}

// IsJPEG reports whether path has one of the extensions picfix handles.
func IsJPEG(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".jpg" || ext == ".JPG"
}

// Walk fixes every JPEG under root. A file that cannot be read or changed
// does not stop the walk; all such errors are returned together.
func (f *Fixer) Walk(root string) (Stats, error) {
	var (
		stats Stats
		errs  error
	)
	log := logger.Named("picfix")

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = multierr.Append(errs, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		stats.Visited++
		log.Debug("visiting", zap.String("path", path))
		if d.IsDir() || !IsJPEG(path) {
			return nil
		}

		mtime, ok, ferr := f.FixFile(path)
		switch {
		case ferr != nil:
			errs = multierr.Append(errs, ferr)
		case !ok:
			stats.Skipped++
		default:
			stats.Fixed++
			log.Info("fixed modification time",
				zap.String("path", path),
				zap.Time("mtime", mtime),
				zap.Bool("dry_run", f.DryRun),
			)
		}
		return nil
	})
	return stats, multierr.Append(errs, err)
}

// FixFile sets the modification time of path to its EXIF capture time
// converted from central European local time. ok is false when the file
// carries no capture time.
func (f *Fixer) FixFile(path string) (mtime time.Time, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	md, err := f.reader.ReadMetadata(data)
	if err != nil || md.Time.IsZero() {
		logger.Debug("no capture time", zap.String("path", path), zap.Error(err))
		return time.Time{}, false, nil
	}

	mtime = FromCentralEurope(md.Time)
	if f.DryRun {
		return mtime, true, nil
	}
	if err := os.Chtimes(path, time.Now(), mtime); err != nil {
		return time.Time{}, false, fmt.Errorf("setting modification time of %s: %w", path, err)
	}
	return mtime, true, nil
}
