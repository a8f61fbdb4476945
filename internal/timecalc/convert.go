package timecalc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a fixed-length elapsed-time unit.
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
	Weeks   Unit = "weeks"
	Years   Unit = "years"
)

// ErrInvalidOutputUnit is returned for unit names outside Units().
var ErrInvalidOutputUnit = errors.New("invalid output unit")

// unitSeconds holds the fixed length of each unit. A year is the
// leap-year-averaged 365.25 days.
var unitSeconds = map[Unit]float64{
	Seconds: 1,
	Minutes: 60,
	Hours:   3600,
	Days:    86400,
	Weeks:   86400 * 7,
	Years:   86400 * 365.25,
}

// Units returns every supported unit, shortest first.
func Units() []Unit {
	return []Unit{Seconds, Minutes, Hours, Days, Weeks, Years}
}

// ParseUnit resolves a user-supplied unit name. Matching is case-insensitive,
// ignores surrounding whitespace and accepts the singular form.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name != "" && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	u := Unit(name)
	if _, ok := unitSeconds[u]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidOutputUnit)
	}
	return u, nil
}

// Convert re-expresses quantity from one unit in another using fixed unit
// lengths. The result is rounded to two decimal places.
func Convert(quantity float64, from, to Unit) (float64, error) {
	fs, ok := unitSeconds[from]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(from), ErrInvalidOutputUnit)
	}
	ts, ok := unitSeconds[to]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(to), ErrInvalidOutputUnit)
	}
	return math.Round(quantity*fs/ts*100) / 100, nil
}

// FormatQuantity renders a converted value as "744 hours".
func FormatQuantity(v float64, u Unit) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + string(u)
}
