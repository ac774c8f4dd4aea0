// Package sorter holds the photo triage state: the source file list with
// the current photograph, and the destination directory the user sorts
// into.
package sorter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/internal/photo"
)

var (
	// ErrEmpty is returned when an operation needs a current photo.
	ErrEmpty = errors.New("no photos left")
	// ErrInvalidName is returned for directory names that are not a single
	// path element.
	ErrInvalidName = errors.New("invalid directory name")
)

// IsPhoto reports whether name has a JPEG extension picsort lists.
func IsPhoto(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".jpg" || ext == ".JPG"
}

// Sorter is the application state. It is not safe for concurrent use.
type Sorter struct {
	loader photo.Loader
	now    func() time.Time

	sourceDir string
	files     []string // full paths, lexicographic
	index     int
	current   *photo.Photo

	destination string
	subdirs     []string
}

// New lists the photos of sourceDir, uses it as the initial destination
// and loads the first photo.
func New(sourceDir string, loader photo.Loader) (*Sorter, error) {
	dir, err := canonical(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolving source directory: %w", err)
	}

	s := &Sorter{
		loader:    loader,
		now:       time.Now,
		sourceDir: dir,
	}
	if s.files, err = listPhotos(dir); err != nil {
		return nil, err
	}
	if err := s.SetDestination(dir); err != nil {
		return nil, err
	}

	logger.Info("source directory scanned", zap.String("dir", dir), zap.Int("photos", len(s.files)))
	s.load()
	return s, nil
}

func canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func listPhotos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsPhoto(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

func listSubdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// SourceDir returns the canonical source directory.
func (s *Sorter) SourceDir() string { return s.sourceDir }

// Empty reports whether every photo has been sorted away.
func (s *Sorter) Empty() bool { return len(s.files) == 0 }

// Files returns the remaining photo paths.
func (s *Sorter) Files() []string { return append([]string(nil), s.files...) }

// Index returns the position of the current photo.
func (s *Sorter) Index() int { return s.index }

// Current returns the current photo, or nil when empty.
func (s *Sorter) Current() *photo.Photo { return s.current }

// CurrentName returns the file name of the current photo.
func (s *Sorter) CurrentName() string {
	if s.Empty() {
		return ""
	}
	return filepath.Base(s.files[s.index])
}

func (s *Sorter) load() {
	if s.current != nil {
		s.current.Release()
		s.current = nil
	}
	if s.Empty() {
		return
	}
	s.current = s.loader.Load(s.files[s.index])
}

// Navigate moves delta photos forward, wrapping at both ends, and loads
// the new current photo.
func (s *Sorter) Navigate(delta int) {
	n := len(s.files)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
	s.load()
}

// Sort moves the current photo into the destination directory and sets
// its modification time to the capture time. replaced reports that a
// same-named file at the destination was overwritten. On a failed move
// the list is unchanged.
func (s *Sorter) Sort() (replaced bool, err error) {
	if s.Empty() {
		return false, ErrEmpty
	}
	src := s.files[s.index]
	dst := filepath.Join(s.destination, filepath.Base(src))
	if dst != src {
		if _, serr := os.Stat(dst); serr == nil {
			replaced = true
		}
	}
	if err := os.Rename(src, dst); err != nil {
		return false, fmt.Errorf("moving photo: %w", err)
	}
	if replaced {
		logger.Warn("sorted photo replaced an existing file", zap.String("path", dst))
	}

	if capture := s.current.CaptureTime; !capture.IsZero() {
		if cerr := os.Chtimes(dst, s.now(), capture); cerr != nil {
			err = fmt.Errorf("setting modification time of %s: %w", dst, cerr)
		}
	}
	logger.Info("photo sorted", zap.String("from", src), zap.String("to", dst))

	s.files = append(s.files[:s.index], s.files[s.index+1:]...)
	if s.index >= len(s.files) {
		s.index = len(s.files) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
	s.load()
	return replaced, err
}

// Destination returns the current destination directory.
func (s *Sorter) Destination() string { return s.destination }

// Subdirectories returns the cached subdirectory names of the destination.
func (s *Sorter) Subdirectories() []string { return s.subdirs }

// SetDestination makes dir the destination and lists its subdirectories.
func (s *Sorter) SetDestination(dir string) error {
	dir, err := canonical(dir)
	if err != nil {
		return fmt.Errorf("resolving destination: %w", err)
	}
	subdirs, err := listSubdirectories(dir)
	if err != nil {
		return err
	}
	s.destination = dir
	s.subdirs = subdirs
	return nil
}

// EnterDestination descends into the named subdirectory.
func (s *Sorter) EnterDestination(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return s.SetDestination(filepath.Join(s.destination, name))
}

// ExitDestination moves to the parent directory and returns the name of
// the directory that was left. At the filesystem root nothing changes and
// "" is returned.
func (s *Sorter) ExitDestination() (string, error) {
	parent := filepath.Dir(s.destination)
	if parent == s.destination {
		return "", nil
	}
	left := filepath.Base(s.destination)
	if err := s.SetDestination(parent); err != nil {
		return "", err
	}
	return left, nil
}

// CreateDestination creates the named subdirectory and makes it the
// destination. An existing directory is not an error.
func (s *Sorter) CreateDestination(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	dir := filepath.Join(s.destination, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("creating directory: %w", err)
		}
		if info, serr := os.Stat(dir); serr != nil || !info.IsDir() {
			return fmt.Errorf("creating directory: %w", err)
		}
	} else {
		logger.Info("destination created", zap.String("dir", dir))
	}
	return s.SetDestination(dir)
}

// ExistsAtDestination reports whether the destination already holds a
// file named like the current photo.
func (s *Sorter) ExistsAtDestination() bool {
	if s.Empty() {
		return false
	}
	_, err := os.Stat(filepath.Join(s.destination, s.CurrentName()))
	return err == nil
}

// Close releases the current photo.
func (s *Sorter) Close() {
	if s.current != nil {
		s.current.Release()
		s.current = nil
	}
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
