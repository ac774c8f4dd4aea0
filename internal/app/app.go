// Package app is picsort's application layer: keyboard bindings, the
// photograph view and the destination and info panels.
package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/frame"
	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/internal/photo"
	"github.com/Faultbox/picsort/internal/sorter"
	"github.com/Faultbox/picsort/pkg/math"
)

// Window is the part of the platform window the application uses.
type Window interface {
	Close()
	SetClipboard(text string) error
}

// ImageView shows one photograph.
type ImageView interface {
	SetImage(pixels []byte, width, height int, orientation math.Orientation) error
	Draw(fbWidth, fbHeight int)
}

// Screenshotter saves the current framebuffer.
type Screenshotter interface {
	Capture(width, height int) (string, error)
}

// Config holds application settings.
type Config struct {
	ClearColor [3]float32
}

// App drives the sorter from keyboard and GUI input.
type App struct {
	input.NopHandler

	window  Window
	sorter  *sorter.Sorter
	image   ImageView
	shots   Screenshotter
	config  Config
	browser *dirBrowser

	shown *photo.Photo

	// destination panel state
	newDir   string
	scrollTo int
	status   string

	screenshotPending bool
}

// New creates the application. shots may be nil to disable screenshots.
func New(window Window, s *sorter.Sorter, image ImageView, shots Screenshotter, cfg Config) *App {
	return &App{
		window:   window,
		sorter:   s,
		image:    image,
		shots:    shots,
		config:   cfg,
		browser:  newDirBrowser(),
		scrollTo: -1,
	}
}

// OnKey handles the application's key bindings. While a GUI widget has
// keyboard focus only Escape is consumed.
func (a *App) OnKey(ev input.KeyEvent, guiWantsKeyboard bool) bool {
	if ev.Action != input.Press {
		return false
	}
	if ev.Key == input.KeyEscape {
		a.window.Close()
		return true
	}
	if guiWantsKeyboard {
		return false
	}

	switch {
	case ev.Key == input.KeyUp:
		a.sorter.Navigate(-1)
	case ev.Key == input.KeyDown:
		a.sorter.Navigate(1)
	case ev.Key == input.KeySpace && ev.Mods.Has(input.ModShift):
		a.sort()
	case ev.Key == input.KeyF12:
		a.screenshotPending = a.shots != nil
	default:
		return false
	}
	return true
}

func (a *App) sort() {
	name := a.sorter.CurrentName()
	replaced, err := a.sorter.Sort()
	if err != nil {
		a.report("sort failed", err, zap.String("file", name))
		return
	}
	a.status = ""
	if replaced {
		a.status = "replaced existing " + name
	}
}

func (a *App) report(msg string, err error, fields ...zap.Field) {
	logger.Error(msg, append(fields, zap.Error(err))...)
	a.status = msg + ": " + err.Error()
}

// ShouldStop ends the loop once every photo is sorted.
func (a *App) ShouldStop() bool {
	return a.sorter.Empty()
}

// Draw renders one frame.
func (a *App) Draw(loop *frame.Loop, st frame.State) {
	a.browser.poll(a)
	a.syncImage()

	renderer.BeginFrame(st.FramebufferWidth, st.FramebufferHeight, a.config.ClearColor)
	a.image.Draw(st.FramebufferWidth, st.FramebufferHeight)

	a.destinationPanel()
	a.infoPanel()
	loop.DrawGUI(renderer.AcceptAll)

	if a.screenshotPending {
		a.screenshotPending = false
		a.screenshot(st.FramebufferWidth, st.FramebufferHeight)
	}
}

// syncImage uploads the current photo when it changed since the last frame.
func (a *App) syncImage() {
	p := a.sorter.Current()
	if p == a.shown {
		return
	}
	a.shown = p
	if p == nil || p.Failed() {
		if err := a.image.SetImage(nil, 0, 0, math.OrientationNormal); err != nil {
			logger.Warn("failed to clear image", zap.Error(err))
		}
		return
	}
	if err := a.image.SetImage(p.Pixels, p.Width, p.Height, p.Orientation); err != nil {
		logger.Error("failed to upload photo", zap.String("path", p.Path), zap.Error(err))
	}
}

func (a *App) screenshot(width, height int) {
	name, err := a.shots.Capture(width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// clipboardLoader copies each loaded photo's GPS coordinates to the
// clipboard. Photos without coordinates clear it.
type clipboardLoader struct {
	photo.Loader
	window Window
}

// ClipboardLoader wraps l so that every load publishes the photo's
// coordinates through window.
func ClipboardLoader(l photo.Loader, window Window) photo.Loader {
	return clipboardLoader{Loader: l, window: window}
}

func (l clipboardLoader) Load(path string) *photo.Photo {
	p := l.Loader.Load(path)
	if err := l.window.SetClipboard(p.GeoText()); err != nil {
		logger.Warn("failed to copy coordinates", zap.Error(err))
	}
	return p
}
