package valueschema

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the canonical form of dates and of the date bounds reported
// in error params.
const DateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// Hours run 00-23; 24:00:00.000 is the only form accepted past 23:59:59.999.
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T(?:(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d\.\d{3}|24:00:00\.000)Z$`)
)

// maxDayOffset keeps day offsets within what time.AddDate handles sensibly
// (about 10,000 years).
const maxDayOffset = 10 * DefaultDaysRange

// dateWindow holds day offsets relative to today. The absolute bounds are
// computed on every call because today moves.
type dateWindow struct {
	minDays int
	maxDays int
	clock   func() time.Time
	loc     *time.Location
}

func newDateWindow(s Schema, cfg config) dateWindow {
	return dateWindow{
		minDays: dayOffset(s.MinValue, -DefaultDaysRange),
		maxDays: dayOffset(s.MaxValue, DefaultDaysRange),
		clock:   cfg.clock,
		loc:     cfg.loc,
	}
}

func dayOffset(p *float64, def int) int {
	if p == nil || math.IsNaN(*p) {
		return def
	}
	d := math.Round(*p)
	switch {
	case d > maxDayOffset:
		return maxDayOffset
	case d < -maxDayOffset:
		return -maxDayOffset
	}
	return int(d)
}

// bounds returns the earliest and latest accepted dates, at 00:00 in the
// window's zone.
func (w dateWindow) bounds() (lower, upper time.Time) {
	now := w.clock().In(w.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, w.loc)
	return today.AddDate(0, 0, w.minDays), today.AddDate(0, 0, w.maxDays)
}

// check compares d against the window; the lower bound is checked first.
func (w dateWindow) check(d time.Time) *Error {
	lower, upper := w.bounds()
	if d.Before(lower) {
		return &Error{Code: CodeEarliestDate, Params: []string{lower.Format(DateLayout)}}
	}
	if d.After(upper) {
		return &Error{Code: CodeLatestDate, Params: []string{upper.Format(DateLayout)}}
	}
	return nil
}

// calendarDate parses the leading yyyy-mm-dd of s (already pattern-checked)
// and reports false unless it names a real calendar day. time.Date
// normalizes overflow (Feb 30 becomes Mar 2), so the parts must survive the
// round trip unchanged.
func calendarDate(s string, loc *time.Location) (time.Time, bool) {
	y, err1 := strconv.Atoi(s[0:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.Atoi(s[8:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

type dateValidator struct {
	text   textParams
	window dateWindow
}

func (dv dateValidator) validate(v Value) Result {
	s, err := dv.text.check(v)
	if err != nil {
		return Result{Err: err}
	}
	d, ok := calendarDate(s, dv.window.loc)
	if !ok {
		return fail(dv.text.invalid)
	}
	if err := dv.window.check(d); err != nil {
		return Result{Err: err}
	}
	return accept(String(s))
}

// timestampValidator range-checks the date part only; the time of day is
// checked for syntax by the pattern.
type timestampValidator struct {
	text   textParams
	window dateWindow
}

func (tv timestampValidator) validate(v Value) Result {
	s, err := tv.text.check(v)
	if err != nil {
		return Result{Err: err}
	}
	d, ok := calendarDate(s, tv.window.loc)
	if !ok {
		return fail(tv.text.invalid)
	}
	if err := tv.window.check(d); err != nil {
		return Result{Err: err}
	}
	return accept(String(s))
}
