package timecalc

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Tiliavir/timetraveler/internal/model"
)

// Accepted input layouts.
const (
	LayoutDate     = "2006-01-02"
	LayoutDateTime = "2006-01-02 15:04:05"
)

// ErrInvalidDateFormat is returned when a string is not one of the accepted
// layouts or names a date that does not exist.
var ErrInvalidDateFormat = errors.New("invalid date format")

var (
	dateTimePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$`)
	datePattern     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// ParsedDate is a validated wall-clock date and time, not yet bound to a
// timezone. Layout records which of the accepted layouts matched.
type ParsedDate struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Layout string
}

// ParseDate validates raw against "YYYY-MM-DD" and "YYYY-MM-DD HH:MM:SS".
// A date without a time means midnight. Calendar values out of range
// (month 13, February 30th, hour 24) are rejected, never normalized.
func ParseDate(raw string) (ParsedDate, error) {
	var layout string
	switch {
	case dateTimePattern.MatchString(raw):
		layout = LayoutDateTime
	case datePattern.MatchString(raw):
		layout = LayoutDate
	default:
		return ParsedDate{}, fmt.Errorf("%q: %w", raw, ErrInvalidDateFormat)
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return ParsedDate{}, fmt.Errorf("%q: %w: %v", raw, ErrInvalidDateFormat, err)
	}
	return ParsedDate{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Layout: layout,
	}, nil
}

// String renders the parsed value in the full date-time layout.
func (p ParsedDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", p.Year, int(p.Month), p.Day, p.Hour, p.Minute, p.Second)
}

// NewAnchor binds a parsed wall-clock time to loc. timezone is the catalog
// identifier loc was loaded from.
func NewAnchor(p ParsedDate, loc *time.Location, timezone string) model.Anchor {
	t := time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, 0, loc)
	return model.NewAnchor(t, loc, timezone)
}
