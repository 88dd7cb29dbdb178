// Package captions assembles one subtitle cue per timeline clip: timecodes
// from the sequence rate, caption text from the resolved capture timestamp.
package captions

import (
	"log/slog"
	"time"

	"github.com/clipstamp/clipstamp/internal/srt"
	"github.com/clipstamp/clipstamp/internal/timeline"
	"github.com/clipstamp/clipstamp/internal/timestamp"
)

// NoDateMarker prefixes captions of clips whose capture time could not be
// resolved, so gaps are easy to spot in review.
const NoDateMarker = "[NO-DATE]"

// progressInterval throttles operator progress reports.
const progressInterval = 3 * time.Second

// Resolver yields the raw capture datetime of a media file, or "".
type Resolver interface {
	Resolve(path string) string
}

// Builder turns clip placements into cues, strictly in timeline order.
type Builder struct {
	resolver Resolver
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewBuilder creates a Builder. loc is the zone captions are displayed in,
// normally time.Local.
func NewBuilder(resolver Resolver, loc *time.Location, logger *slog.Logger) *Builder {
	return &Builder{
		resolver: resolver,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Build produces one cue per clip. Each clip's resolution blocks the next;
// cue order matches clip order by contract. Progress is reported at most
// once per three seconds of wall time.
func (b *Builder) Build(clips []timeline.Clip, fps float64) []srt.Cue {
	cues := make([]srt.Cue, 0, len(clips))
	lastReport := b.now()

	for i, clip := range clips {
		cues = append(cues, srt.Cue{
			Index:   i + 1,
			Start:   srt.FramesToTimecode(clip.Start, fps),
			End:     srt.FramesToTimecode(clip.End, fps),
			Caption: b.caption(clip),
		})

		if now := b.now(); now.Sub(lastReport) >= progressInterval {
			b.logger.Info("progress",
				"processed", i+1,
				"total", len(clips),
				"percent", float64(i+1)*100/float64(len(clips)),
			)
			lastReport = now
		}
	}
	return cues
}

// caption picks the display text for a clip. Resolution failure gets the
// marker; normalization failure still shows the raw value.
func (b *Builder) caption(clip timeline.Clip) string {
	raw := b.resolver.Resolve(clip.Path)
	if raw == "" {
		return NoDateMarker + " " + clip.Name
	}
	if local, ok := timestamp.ToLocalNoSeconds(raw, b.loc); ok {
		return local
	}
	return raw
}
