// Package timestamp normalizes raw metadata datetimes to the canonical
// caption form: local time, 24-hour, seconds and zone suffix dropped.
package timestamp

import "time"

// Accepted input shapes, tried in order. Values without an explicit
// offset are interpreted as UTC, which matches QuickTime metadata.
var layouts = []string{
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04-0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ToLocalNoSeconds converts raw to "YYYY-MM-DD HH:MM" in the given
// location. The second return is false when raw matches no accepted shape.
func ToLocalNoSeconds(raw string, loc *time.Location) (string, bool) {
	if raw == "" || loc == nil {
		return "", false
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		// time.Parse yields UTC when the layout carries no zone, so
		// offset-less values are already interpreted as UTC here.
		return t.In(loc).Format("2006-01-02 15:04"), true
	}
	return "", false
}
