package metadata

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
)

// Filename fallbacks, e.g. "2025-09-29 22-51-34.mov" or
// "ScreenRecording_10-01-2025 07-20-37_1.mp4".
var (
	isoNamePattern = regexp.MustCompile(`(20\d{2})[-_](\d{2})[-_](\d{2})[ _](\d{2})[:.\-](\d{2})[:.\-](\d{2})`)
	usNamePattern  = regexp.MustCompile(`(\d{2})-(\d{2})-(20\d{2})[ _](\d{2})-(\d{2})-(\d{2})`)
)

// Resolver walks an ordered chain of timestamp sources and returns the
// first usable value.
type Resolver struct {
	ext    Extractor // nil when no external capability is available
	fields []string
	logger *slog.Logger
}

// NewResolver builds a Resolver. A nil extractor skips metadata queries
// entirely; empty fields fall back to DefaultFields.
func NewResolver(ext Extractor, fields []string, logger *slog.Logger) *Resolver {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	return &Resolver{ext: ext, fields: fields, logger: logger}
}

// Resolve returns the capture datetime of the file as
// "YYYY-MM-DD HH:MM:SS±HHMM", or "" when no source yields one.
func (r *Resolver) Resolve(path string) string {
	for _, candidate := range []func(string) string{r.fromFields, fromFilename} {
		if v := candidate(path); v != "" {
			return v
		}
	}
	return ""
}

// fromFields queries the extractor tag by tag, first accepted value wins.
// A failed query counts the same as an absent tag.
func (r *Resolver) fromFields(path string) string {
	if r.ext == nil {
		return ""
	}
	for _, field := range r.fields {
		v, err := r.ext.Field(path, field)
		if err != nil {
			r.logger.Debug("metadata query failed", "field", field, "error", err)
			continue
		}
		if accepted(v) {
			return v
		}
	}
	return ""
}

// accepted rejects empty values, truncated values ending in ":" and
// zero dates like "0000-00-00 00:00:00".
func accepted(v string) bool {
	if v == "" {
		return false
	}
	if v[len(v)-1] == ':' {
		return false
	}
	if len(v) >= 4 && v[:4] == "0000" {
		return false
	}
	return true
}

// fromFilename extracts a timestamp from the base name. The ISO-ordered
// pattern is tried before the US-ordered one; seconds are truncated to 00
// and the result is pinned to UTC.
func fromFilename(path string) string {
	name := filepath.Base(path)
	if m := isoNamePattern.FindStringSubmatch(name); m != nil {
		return fmt.Sprintf("%s-%s-%s %s:%s:00+0000", m[1], m[2], m[3], m[4], m[5])
	}
	if m := usNamePattern.FindStringSubmatch(name); m != nil {
		return fmt.Sprintf("%s-%s-%s %s:%s:00+0000", m[3], m[1], m[2], m[4], m[5])
	}
	return ""
}
