// Package timeline parses FCP7 XMEML sequence exports into an ordered
// list of first-video-track clip placements plus the project frame rate.
package timeline

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrNoClips is returned when the document holds no usable clips on the
// first video track (or no video track at all).
var ErrNoClips = errors.New("no clips on first video track")

// DefaultFrameRate is used when a sequence carries no parseable rate.
const DefaultFrameRate = 25.0

// Parse reads an XMEML document and returns the sequence frame rate and
// the clips of the first video track, sorted by timeline start frame.
// ErrNoClips is returned together with the rate so the caller can still
// report it; any other error means the document itself is unusable.
func Parse(path string) (float64, []Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot open timeline document: %w", err)
	}
	defer f.Close()

	seq, err := firstSequence(f)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot decode timeline XML: %w", err)
	}
	if seq == nil {
		return DefaultFrameRate, nil, ErrNoClips
	}

	fps := sequenceRate(seq)
	clips := firstTrackClips(seq)
	if len(clips) == 0 {
		return fps, nil, ErrNoClips
	}
	return fps, clips, nil
}

// firstSequence scans the token stream for the first <sequence> element at
// any depth. Premiere and FCP nest sequences under project/children, so a
// fixed struct path is not enough.
func firstSequence(r io.Reader) (*sequence, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "sequence" {
			var seq sequence
			if err := dec.DecodeElement(&seq, &se); err != nil {
				return nil, err
			}
			return &seq, nil
		}
	}
}

// sequenceRate derives frames per second from the sequence rate descriptor.
// NTSC timebases map to their exact fractional rates; everything else
// passes through as a float.
func sequenceRate(seq *sequence) float64 {
	if seq.Rate == nil {
		return DefaultFrameRate
	}
	tb, err := strconv.Atoi(strings.TrimSpace(seq.Rate.Timebase))
	if err != nil {
		tb = 25
	}
	if strings.EqualFold(strings.TrimSpace(seq.Rate.NTSC), "true") {
		switch tb {
		case 30:
			return 29.97
		case 60:
			return 59.94
		case 24:
			return 23.976
		}
	}
	return float64(tb)
}

// firstTrackClips walks the first video track only and keeps items that
// are enabled and carry a start, end and file path.
func firstTrackClips(seq *sequence) []Clip {
	if seq.Media.Video == nil || len(seq.Media.Video.Tracks) == 0 {
		return nil
	}

	var clips []Clip
	for _, ci := range seq.Media.Video.Tracks[0].ClipItems {
		// Only the literal FALSE disables a clip; anything else is enabled.
		if strings.TrimSpace(ci.Enabled) == "FALSE" {
			continue
		}
		if ci.File == nil || ci.File.PathURL == "" {
			continue
		}
		start, err := strconv.Atoi(strings.TrimSpace(ci.Start))
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(strings.TrimSpace(ci.End))
		if err != nil {
			continue
		}
		name := ci.File.Name
		if name == "" {
			name = ci.Name
		}
		clips = append(clips, Clip{
			Start: start,
			End:   end,
			Path:  urlToPath(ci.File.PathURL),
			Name:  name,
		})
	}

	// Timeline order regardless of document order; ties keep document order.
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].Start < clips[j].Start
	})
	return clips
}

// urlToPath converts a file:// pathurl to a filesystem path, decoding
// percent escapes. Plain paths pass through unchanged.
func urlToPath(raw string) string {
	if !strings.HasPrefix(raw, "file://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
