// Package main is picsort: it shows the JPEG photographs of a directory one
// at a time and moves each into a chosen destination directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/app"
	"github.com/Faultbox/picsort/internal/config"
	"github.com/Faultbox/picsort/internal/engine/debug"
	"github.com/Faultbox/picsort/internal/engine/frame"
	"github.com/Faultbox/picsort/internal/engine/platform"
	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/internal/engine/ui"
	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/internal/photo"
	"github.com/Faultbox/picsort/internal/sorter"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	sourceDir := "."
	if flag.NArg() > 0 {
		sourceDir = flag.Arg(0)
	}

	cfg, cfgPath, err := config.Load(sourceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if cfgPath != "" {
		logger.Info("loaded config", zap.String("path", cfgPath))
	}

	ctx := platform.NewContext()
	window, err := platform.NewWindow(ctx, platform.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		VSync:       cfg.Window.VSync,
		WaitTimeout: cfg.Window.WaitTimeout,
	})
	if err != nil {
		logger.Fatal("window creation failed", zap.Error(err))
	}
	defer func() {
		if err := window.Destroy(); err != nil {
			logger.Error("window teardown failed", zap.Error(err))
		}
	}()

	photos, err := sorter.New(sourceDir, app.ClipboardLoader(photo.NewLoader(), window))
	if err != nil {
		logger.Fatal("failed to open source directory", zap.String("dir", sourceDir), zap.Error(err))
	}
	defer photos.Close()
	if photos.Empty() {
		logger.Info("no input files", zap.String("dir", photos.SourceDir()))
		return
	}

	gui := ui.New(ui.Config{
		FontPath:  cfg.GUI.FontPath,
		FontSize:  cfg.GUI.FontSize,
		FontScale: cfg.GUI.FontScale,
	})
	defer gui.Destroy()

	guiRenderer, err := renderer.NewGUIRenderer()
	if err != nil {
		logger.Fatal("failed to create GUI renderer", zap.Error(err))
	}
	defer guiRenderer.Destroy()

	quad, err := renderer.NewImageQuad()
	if err != nil {
		logger.Fatal("failed to create image renderer", zap.Error(err))
	}
	defer quad.Destroy()

	a := app.New(window, photos, quad,
		debug.NewScreenshotCapture(cfg.Screenshots.Dir, "picsort"),
		app.Config{ClearColor: cfg.GUI.ClearColor},
	)
	window.SetHandler(a)

	loop := frame.New(window, gui, guiRenderer, frame.Config{PollsPerWait: cfg.Loop.PollsPerWait})
	loop.Run(a)

	logger.Info("exiting", zap.Int("photos_left", len(photos.Files())))
}
