// Package srt renders subtitle cues as SubRip text and handles the
// frame-to-timecode conversion for the cue timing lines.
package srt

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Cue is one numbered subtitle block.
type Cue struct {
	Index   int
	Start   string // "HH:MM:SS,mmm"
	End     string
	Caption string
}

// Render serializes cues as sequential SubRip blocks separated by blank
// lines. Output is deterministic for identical input.
func Render(cues []Cue) string {
	lines := make([]string, 0, len(cues)*4)
	for _, c := range cues {
		lines = append(lines,
			strconv.Itoa(c.Index),
			c.Start+" --> "+c.End,
			c.Caption,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// OutputPath derives the subtitle path from the input document:
// timestamps_<basename>.srt in the input's directory.
func OutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), "timestamps_"+base+".srt")
}

// WriteFile renders cues to path, overwriting any existing file.
func WriteFile(path string, cues []Cue) error {
	return os.WriteFile(path, []byte(Render(cues)), 0644)
}
