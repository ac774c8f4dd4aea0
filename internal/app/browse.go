package app

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
)

// dirBrowser runs the native directory dialog off the UI thread and hands
// the choice back to the frame loop.
type dirBrowser struct {
	chosen  chan string
	showing bool
	browse  func(startDir string) (string, error)
}

func newDirBrowser() *dirBrowser {
	return &dirBrowser{
		chosen: make(chan string, 1),
		browse: browseDirectory,
	}
}

func browseDirectory(startDir string) (string, error) {
	return dialog.Directory().Title("Choose destination").SetStartDir(startDir).Browse()
}

// open shows the dialog unless one is already showing.
func (b *dirBrowser) open(startDir string) {
	if b.showing {
		return
	}
	b.showing = true
	go func() {
		dir, err := b.browse(startDir)
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("directory dialog failed", zap.Error(err))
			}
			dir = ""
		}
		b.chosen <- dir
	}()
}

// poll applies a finished dialog's choice to a.
func (b *dirBrowser) poll(a *App) {
	select {
	case dir := <-b.chosen:
		b.showing = false
		if dir != "" {
			a.setDestination(dir)
		}
	default:
	}
}
