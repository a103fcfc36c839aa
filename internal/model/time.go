package model

import "time"

var sgsTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseSGSTime parses the timestamps returned by the storage gateway. Unknown
// formats yield the zero time.
func parseSGSTime(s string) time.Time {
	for _, layout := range sgsTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
