package timecalc

import (
	"fmt"
	"time"
)

// IsWeekday reports whether t falls on Monday through Friday in its own location.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// civilDay returns the number of days between 1970-01-01 and t's calendar
// date in t's location.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// FormatAnchor renders t the way the results table shows anchors. The
// "ordinal" layout (or an empty one) produces "1st Jan 2018, 10:30:00AM UTC";
// anything else is used as a Go time layout.
func FormatAnchor(t time.Time, layout string) string {
	if layout != "" && layout != LayoutOrdinal {
		return t.Format(layout)
	}
	return fmt.Sprintf("%d%s %s", t.Day(), ordinalSuffix(t.Day()), t.Format("Jan 2006, 15:04:05PM MST"))
}

// LayoutOrdinal selects the ordinal day rendering in FormatAnchor.
const LayoutOrdinal = "ordinal"

func ordinalSuffix(day int) string {
	switch {
	case day >= 11 && day <= 13:
		return "th"
	case day%10 == 1:
		return "st"
	case day%10 == 2:
		return "nd"
	case day%10 == 3:
		return "rd"
	}
	return "th"
}
