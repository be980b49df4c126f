package dbx

import "time"

// Timestamps are stored as RFC 3339 text in UTC so both dialects read them
// back the same way.

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
