package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/photo"
	"github.com/Faultbox/picsort/internal/sorter"
	"github.com/Faultbox/picsort/pkg/math"
)

type fakeWindow struct {
	closed    bool
	clipboard []string
	clipErr   error
}

func (w *fakeWindow) Close() { w.closed = true }

func (w *fakeWindow) SetClipboard(text string) error {
	w.clipboard = append(w.clipboard, text)
	return w.clipErr
}

type fakeImage struct {
	uploads []int // widths
	last    math.Orientation
}

func (f *fakeImage) SetImage(_ []byte, width, _ int, o math.Orientation) error {
	f.uploads = append(f.uploads, width)
	f.last = o
	return nil
}

func (f *fakeImage) Draw(int, int) {}

type fakeShots struct{ captures int }

func (f *fakeShots) Capture(int, int) (string, error) {
	f.captures++
	return "shot.png", nil
}

// geoLoader returns tiny photos; names starting with "g" carry GPS data and
// names starting with "x" fail to decode.
type geoLoader struct{}

func (geoLoader) Load(path string) *photo.Photo {
	p := &photo.Photo{Path: path, Width: 2, Height: 1, Pixels: make([]byte, 6), Orientation: math.OrientationRotate180}
	switch filepath.Base(path)[0] {
	case 'g':
		p.HasGPS, p.Latitude, p.Longitude = true, 1.5, -2.25
	case 'x':
		p.Width, p.Height, p.Pixels = 0, 0, nil
		p.ErrAction, p.ErrMessage = "decoding JPEG image", "bad"
	}
	return p
}

func newTestApp(t *testing.T, files ...string) (*App, *fakeWindow, *fakeImage, string) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	w := &fakeWindow{}
	s, err := sorter.New(dir, ClipboardLoader(geoLoader{}, w))
	if err != nil {
		t.Fatal(err)
	}
	img := &fakeImage{}
	return New(w, s, img, &fakeShots{}, Config{}), w, img, dir
}

func press(k input.Key, mods input.Mod) input.KeyEvent {
	return input.KeyEvent{Key: k, Action: input.Press, Mods: mods}
}

func TestKeyBindings(t *testing.T) {
	a, w, _, _ := newTestApp(t, "a.jpg", "b.jpg", "c.jpg")

	if !a.OnKey(press(input.KeyDown, 0), false) || a.sorter.Index() != 1 {
		t.Errorf("Down: index = %d, want 1", a.sorter.Index())
	}
	if !a.OnKey(press(input.KeyUp, 0), false) || a.sorter.Index() != 0 {
		t.Errorf("Up: index = %d, want 0", a.sorter.Index())
	}
	if !a.OnKey(press(input.KeyUp, 0), false) || a.sorter.Index() != 2 {
		t.Errorf("Up at 0: index = %d, want 2", a.sorter.Index())
	}
	if a.OnKey(press(input.KeyA, 0), false) {
		t.Error("unbound key consumed")
	}
	if !a.OnKey(press(input.KeyEscape, 0), false) || !w.closed {
		t.Error("Escape did not close the window")
	}
}

func TestKeysIgnoredWhileGUITyping(t *testing.T) {
	a, w, _, _ := newTestApp(t, "a.jpg", "b.jpg")

	for _, ev := range []input.KeyEvent{
		press(input.KeyDown, 0),
		press(input.KeySpace, input.ModShift),
		press(input.KeyF12, 0),
	} {
		if a.OnKey(ev, true) {
			t.Errorf("%v consumed while GUI wants keyboard", ev.Key)
		}
	}
	if a.sorter.Index() != 0 || len(a.sorter.Files()) != 2 || w.closed {
		t.Error("state changed while GUI wants keyboard")
	}
}

func TestEscapeQuitsWhileGUITyping(t *testing.T) {
	for _, focused := range []bool{false, true} {
		a, w, _, _ := newTestApp(t, "a.jpg")
		if !a.OnKey(press(input.KeyEscape, 0), focused) {
			t.Errorf("Escape not consumed (GUI focused %v)", focused)
		}
		if !w.closed {
			t.Errorf("window still open after Escape (GUI focused %v)", focused)
		}
	}
}

func TestReleaseAndRepeatIgnored(t *testing.T) {
	a, _, _, _ := newTestApp(t, "a.jpg", "b.jpg")
	for _, action := range []input.Action{input.Release, input.Repeat} {
		if a.OnKey(input.KeyEvent{Key: input.KeyDown, Action: action}, false) {
			t.Errorf("action %v consumed", action)
		}
	}
	if a.sorter.Index() != 0 {
		t.Errorf("Index() = %d, want 0", a.sorter.Index())
	}
}

func TestShiftSpaceSorts(t *testing.T) {
	a, _, _, dir := newTestApp(t, "a.jpg", "b.jpg")
	if err := a.sorter.CreateDestination("keep"); err != nil {
		t.Fatal(err)
	}

	if a.OnKey(press(input.KeySpace, 0), false) {
		t.Error("Space without Shift consumed")
	}
	if !a.OnKey(press(input.KeySpace, input.ModShift), false) {
		t.Fatal("Shift+Space not consumed")
	}
	if _, err := os.Stat(filepath.Join(dir, "keep", "a.jpg")); err != nil {
		t.Errorf("a.jpg not sorted: %v", err)
	}
	if a.status != "" {
		t.Errorf("status = %q after successful sort", a.status)
	}

	if err := os.Remove(filepath.Join(dir, "keep", "a.jpg")); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, "keep")); err != nil {
		t.Fatal(err)
	}
	a.OnKey(press(input.KeySpace, input.ModShift), false)
	if a.status == "" {
		t.Error("failed sort not reported")
	}
	if a.ShouldStop() {
		t.Error("ShouldStop() after failed sort")
	}
}

func TestSortOverwriteShownInStatus(t *testing.T) {
	a, _, _, dir := newTestApp(t, "a.jpg", "b.jpg")
	if err := a.sorter.CreateDestination("keep"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "keep", "a.jpg"), []byte("older"), 0o644); err != nil {
		t.Fatal(err)
	}

	a.OnKey(press(input.KeySpace, input.ModShift), false)
	if a.status != "replaced existing a.jpg" {
		t.Errorf("status = %q, want overwrite warning", a.status)
	}

	a.OnKey(press(input.KeySpace, input.ModShift), false)
	if a.status != "" {
		t.Errorf("status = %q after a clean sort", a.status)
	}
}

func TestShouldStopWhenEmpty(t *testing.T) {
	a, _, _, _ := newTestApp(t, "a.jpg")
	if err := a.sorter.CreateDestination("out"); err != nil {
		t.Fatal(err)
	}
	if a.ShouldStop() {
		t.Fatal("ShouldStop() with photos left")
	}
	a.OnKey(press(input.KeySpace, input.ModShift), false)
	if !a.ShouldStop() {
		t.Error("ShouldStop() = false after sorting the last photo")
	}
}

func TestScreenshotKey(t *testing.T) {
	a, _, _, _ := newTestApp(t, "a.jpg")
	if !a.OnKey(press(input.KeyF12, 0), false) || !a.screenshotPending {
		t.Error("F12 did not request a screenshot")
	}

	a.shots = nil
	a.screenshotPending = false
	a.OnKey(press(input.KeyF12, 0), false)
	if a.screenshotPending {
		t.Error("screenshot requested without a capturer")
	}
}

func TestClipboardCoordinates(t *testing.T) {
	a, w, _, _ := newTestApp(t, "a.jpg", "g.jpg")
	a.sorter.Navigate(1)
	a.sorter.Navigate(1)

	want := []string{"", "1.5, -2.25", ""}
	if len(w.clipboard) != len(want) {
		t.Fatalf("clipboard writes = %q, want %q", w.clipboard, want)
	}
	for i := range want {
		if w.clipboard[i] != want[i] {
			t.Errorf("clipboard[%d] = %q, want %q", i, w.clipboard[i], want[i])
		}
	}
}

func TestClipboardErrorIgnored(t *testing.T) {
	w := &fakeWindow{clipErr: errors.New("no clipboard")}
	p := ClipboardLoader(geoLoader{}, w).Load(filepath.Join(t.TempDir(), "g.jpg"))
	if p == nil || !p.HasGPS {
		t.Error("photo lost when clipboard fails")
	}
}

func TestSyncImage(t *testing.T) {
	a, _, img, _ := newTestApp(t, "a.jpg", "x.jpg")

	a.syncImage()
	a.syncImage()
	if len(img.uploads) != 1 || img.uploads[0] != 2 {
		t.Fatalf("uploads = %v, want one upload of width 2", img.uploads)
	}
	if img.last != math.OrientationRotate180 {
		t.Errorf("orientation = %d, want 3", img.last)
	}

	a.sorter.Navigate(1)
	a.syncImage()
	if len(img.uploads) != 2 || img.uploads[1] != 0 {
		t.Errorf("failed photo uploads = %v, want a clear", img.uploads)
	}
}

func TestDirBrowser(t *testing.T) {
	a, _, _, dir := newTestApp(t, "a.jpg")
	target := filepath.Join(dir, "picked")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	calls := 0
	a.browser.browse = func(start string) (string, error) {
		calls++
		return target, nil
	}
	a.browser.open(a.sorter.Destination())
	a.browser.open(a.sorter.Destination())

	deadline := time.After(2 * time.Second)
	for filepath.Base(a.sorter.Destination()) != "picked" {
		select {
		case <-deadline:
			t.Fatal("dialog result never applied")
		default:
		}
		a.browser.poll(a)
		time.Sleep(time.Millisecond)
	}
	if calls != 1 {
		t.Errorf("dialog opened %d times, want 1", calls)
	}
	if a.browser.showing {
		t.Error("browser still marked as showing")
	}
}

func TestIndexOf(t *testing.T) {
	list := []string{"a", "b", "c"}
	if indexOf(list, "b") != 1 || indexOf(list, "z") != -1 {
		t.Error("indexOf mismatch")
	}
}
