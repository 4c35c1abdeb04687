// Package codec converts the canonical strings accepted by date and
// timestamp schemas to time.Time and back.
package codec

import (
	"strings"
	"time"

	"github.com/reoring/valueschema"
)

// TimestampLayout is the wire form of timestamps: UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const endOfDay = "T24:00:00.000Z"

// Date parses a yyyy-mm-dd string as midnight in loc (UTC when nil).
func Date(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(valueschema.DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, &valueschema.Error{Code: valueschema.CodeInvalidDate}
	}
	return t, nil
}

// Timestamp parses a yyyy-mm-ddThh:mm:ss.fffZ string. The end-of-day form
// T24:00:00.000Z is midnight of the following day.
func Timestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if day, ok := strings.CutSuffix(s, endOfDay); ok {
		t, err := time.ParseInLocation(valueschema.DateLayout, day, time.UTC)
		if err != nil {
			return time.Time{}, &valueschema.Error{Code: valueschema.CodeInvalidTimestamp}
		}
		return t.AddDate(0, 0, 1), nil
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &valueschema.Error{Code: valueschema.CodeInvalidTimestamp}
	}
	return t, nil
}

// FormatDate renders the calendar day of t in its own zone.
func FormatDate(t time.Time) string {
	return t.Format(valueschema.DateLayout)
}

// FormatTimestamp renders t in UTC, truncated to milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(TimestampLayout)
}
