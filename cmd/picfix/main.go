// picfix sets the modification time of every JPEG below a directory to its
// EXIF capture time, taking the camera clock as German local time.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/internal/photo"
	"github.com/Faultbox/picsort/internal/picfix"
)

func main() {
	dryRun := flag.Bool("n", false, "Print the new times without changing files")
	debug := flag.Bool("debug", false, "Log every visited path")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `picfix - restore JPEG modification times from EXIF

Usage:
  picfix [-n] [-debug] [directory]

The directory defaults to the current one and is searched recursively
for .jpg and .JPG files.`)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	fixer := picfix.New(photo.EXIFReader{})
	fixer.DryRun = *dryRun

	stats, err := fixer.Walk(root)
	logger.Info("done",
		zap.String("root", root),
		zap.Int("visited", stats.Visited),
		zap.Int("fixed", stats.Fixed),
		zap.Int("skipped", stats.Skipped),
	)
	if err != nil {
		logger.Error("some files could not be fixed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
