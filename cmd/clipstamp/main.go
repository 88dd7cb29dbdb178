package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/clipstamp/clipstamp/internal/captions"
	"github.com/clipstamp/clipstamp/internal/config"
	"github.com/clipstamp/clipstamp/internal/logging"
	"github.com/clipstamp/clipstamp/internal/metadata"
	"github.com/clipstamp/clipstamp/internal/srt"
	"github.com/clipstamp/clipstamp/internal/timeline"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitNoClips = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: clipstamp <sequence.xml>")
		return exitUsage
	}
	xmlPath := args[0]

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipstamp: %v\n", err)
		return exitUsage
	}

	logger := logging.NewLogger(cfg.LogLevel())
	logger.Debug("starting clipstamp", "version", config.Version, "input", logging.SanitizePath(xmlPath))

	fps, clips, err := timeline.Parse(xmlPath)
	if err != nil {
		if errors.Is(err, timeline.ErrNoClips) {
			logger.Error("no clips found on the first video track; make sure the sequence has clips on V1",
				"input", logging.SanitizePath(xmlPath))
			return exitNoClips
		}
		logger.Error("cannot parse timeline document", "input", logging.SanitizePath(xmlPath), "error", err)
		return exitUsage
	}

	var extractor metadata.Extractor
	if exif, err := metadata.NewExifTool(cfg.ExifTool(), logger); err != nil {
		logger.Warn("exiftool unavailable, relying on filename timestamps only", "error", err)
	} else {
		extractor = exif
	}

	resolver := metadata.NewResolver(extractor, cfg.Fields(), logging.WithComponent(logger, "resolver"))
	builder := captions.NewBuilder(resolver, time.Local, logging.WithComponent(logger, "captions"))
	cues := builder.Build(clips, fps)

	outPath := srt.OutputPath(xmlPath)
	if err := srt.WriteFile(outPath, cues); err != nil {
		logger.Error("cannot write subtitle file", "path", logging.SanitizePath(outPath), "error", err)
		return exitUsage
	}

	logger.Info("subtitle file written",
		"path", logging.SanitizePath(outPath),
		"cues", len(cues),
		"fps", fps,
	)
	return exitOK
}
