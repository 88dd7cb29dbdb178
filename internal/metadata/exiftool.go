// Package metadata resolves the authoritative capture timestamp of a
// media file, first through exiftool tag queries in priority order, then
// through filename patterns when no tag yields a usable value.
package metadata

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultFields is the tag priority order queried per file. QuickTime
// creation tags first, Apple Keys lower, filesystem dates as last resort.
var DefaultFields = []string{
	"QuickTime:CreateDate",
	"QuickTime:MediaCreateDate",
	"QuickTime:TrackCreateDate",
	"QuickTime:ModifyDate",
	"Keys:CreationDate",
	"System:FileCreateDate",
	"System:FileModifyDate",
}

// Extractor is the boundary to the external metadata capability: one tag
// query against one file, returning the formatted value or empty.
type Extractor interface {
	Field(path, field string) (string, error)
}

// ExifTool is the production Extractor. Each Field call runs one exiftool
// subprocess and blocks until it exits.
type ExifTool struct {
	bin    string
	logger *slog.Logger
}

// NewExifTool resolves the exiftool binary and returns the extractor.
// An empty bin means look up "exiftool" on PATH.
func NewExifTool(bin string, logger *slog.Logger) (*ExifTool, error) {
	resolved, err := resolveBinary(bin)
	if err != nil {
		return nil, err
	}
	logger.Debug("exiftool resolved", "bin", resolved)
	return &ExifTool{bin: resolved, logger: logger}, nil
}

// Field queries a single tag. QuickTimeUTC makes naive QuickTime dates
// come back as UTC; the -d format pins "YYYY-MM-DD HH:MM:SS±HHMM".
func (e *ExifTool) Field(path, field string) (string, error) {
	cmd := exec.Command(e.bin,
		"-api", "largefilesupport=1",
		"-api", "QuickTimeUTC=1",
		"-S", "-s", "-s",
		"-d", "%Y-%m-%d %H:%M:%S%z",
		"-"+field,
		path,
	)
	cmd.Stderr = io.Discard

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("exiftool %s failed: %w", field, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// resolveBinary finds a usable exiftool binary.
func resolveBinary(preferred string) (string, error) {
	if preferred != "" && preferred != "exiftool" {
		if p, err := exec.LookPath(preferred); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("configured exiftool %q not found", preferred)
	}
	p, err := exec.LookPath("exiftool")
	if err != nil {
		return "", fmt.Errorf("no exiftool binary found on PATH")
	}
	return p, nil
}
