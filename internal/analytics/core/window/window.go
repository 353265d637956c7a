package window

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the full local date-time format shared with the metrics
// backend. Full date-times, not dates: granularity may be hourly.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrMalformedWindow rejects unparseable or inverted comparison windows. A
// silently misaligned window would corrupt every downstream percentage, so
// this fails loudly.
var ErrMalformedWindow = errors.New("malformed comparison window")

// Period is a current window plus the aligned previous window of identical
// duration, shifted back by that duration (not by a calendar unit).
type Period struct {
	CurrentFrom  string
	CurrentTo    string
	PreviousFrom string
	PreviousTo   string
}

// Window is one closed date-time span.
type Window struct {
	From string
	To   string
}

// FixedWindows are the rolling-dashboard spans, independent of the shifted
// period logic.
type FixedWindows struct {
	Today           Window
	Yesterday       Window
	SameDayLastWeek Window
}

// ParseTimestamp parses a backend date-time in local time.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedWindow, s)
	}
	return t, nil
}

// BuildShiftedPeriod derives the aligned previous period for an arbitrary
// current window: previous = current shifted back by the window's own
// duration. A window whose end precedes its start is malformed.
func BuildShiftedPeriod(fromStr, toStr string) (Period, error) {
	from, err := ParseTimestamp(fromStr)
	if err != nil {
		return Period{}, err
	}
	to, err := ParseTimestamp(toStr)
	if err != nil {
		return Period{}, err
	}
	if to.Before(from) {
		return Period{}, fmt.Errorf("%w: %q after %q", ErrMalformedWindow, fromStr, toStr)
	}

	d := to.Sub(from)
	return Period{
		CurrentFrom:  from.Format(TimestampLayout),
		CurrentTo:    to.Format(TimestampLayout),
		PreviousFrom: from.Add(-d).Format(TimestampLayout),
		PreviousTo:   to.Add(-d).Format(TimestampLayout),
	}, nil
}

// BuildFixedWindows returns today's full-day span plus the same span one
// calendar day back and seven calendar days back.
func BuildFixedWindows(now time.Time) FixedWindows {
	return FixedWindows{
		Today:           dayWindow(now),
		Yesterday:       dayWindow(now.AddDate(0, 0, -1)),
		SameDayLastWeek: dayWindow(now.AddDate(0, 0, -7)),
	}
}

func dayWindow(t time.Time) Window {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, t.Location())
	return Window{
		From: start.Format(TimestampLayout),
		To:   end.Format(TimestampLayout),
	}
}
