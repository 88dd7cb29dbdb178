package srt

import (
	"fmt"
	"math"
)

// FramesToTimecode converts a timeline frame count at the given frame
// rate into an SRT "HH:MM:SS,mmm" timecode. Rates may be fractional
// (29.97 and friends). Hours grow past 99 without wrapping.
func FramesToTimecode(frames int, fps float64) string {
	seconds := float64(frames) / fps
	whole := int(seconds)
	ms := int(math.Round((seconds - float64(whole)) * 1000))
	hh := whole / 3600
	mm := (whole % 3600) / 60
	ss := whole % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hh, mm, ss, ms)
}
