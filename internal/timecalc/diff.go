package timecalc

import (
	"fmt"
	"time"

	"github.com/Tiliavir/timetraveler/internal/model"
)

// Difference computes the calendar-aware duration between two anchors.
//
// Anchors sharing a timezone are compared on that zone's wall clock; anchors
// in different zones are both moved to UTC first, so two anchors naming the
// same instant always differ by zero. When to precedes from the result is
// marked Inverted and every count is still a magnitude.
//
// Difference panics if either anchor is unset.
func Difference(from, to model.Anchor) model.Duration {
	if from.IsZero() || to.IsZero() {
		panic("timecalc: Difference called before both anchors are set")
	}

	a, b := frame(from, to)
	d := model.Duration{}
	if b.Before(a) {
		a, b = b, a
		d.Inverted = true
	}

	d.TotalDays = wholeDays(a, b)

	d.Years = wholeYears(a, b)
	afterYears := a.AddDate(d.Years, 0, 0)
	d.Days = wholeDays(afterYears, b)

	rest := b.Sub(afterYears.AddDate(0, 0, d.Days))
	d.Hours = int(rest / time.Hour)
	d.Minutes = int(rest % time.Hour / time.Minute)
	d.Seconds = int(rest % time.Minute / time.Second)

	d.Weekdays = WeekdaysBetween(from, to)
	return d
}

// DaysBetween returns the number of whole days between the anchors,
// regardless of direction.
func DaysBetween(from, to model.Anchor) int {
	a, b := frame(from, to)
	if b.Before(a) {
		a, b = b, a
	}
	return wholeDays(a, b)
}

// WeeksBetween returns the number of complete weeks between the anchors.
func WeeksBetween(from, to model.Anchor) int {
	return DaysBetween(from, to) / 7
}

// WeekdaysBetween counts Monday–Friday days in [earlier, later), stepping one
// calendar day at a time from the earlier anchor in its own timezone until
// less than a whole day remains.
func WeekdaysBetween(from, to model.Anchor) int {
	cur, end := from.Time(), to.Time()
	if end.Before(cur) {
		cur, end = end, cur
	}

	count := 0
	for wholeDays(cur, end) > 0 {
		if IsWeekday(cur) {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// FormatDifference renders d as "D days, H hours, M minutes, S seconds",
// prefixed with "Y years, " once the interval spans 365 days or more.
func FormatDifference(d model.Duration) string {
	s := fmt.Sprintf("%d days, %d hours, %d minutes, %d seconds", d.Days, d.Hours, d.Minutes, d.Seconds)
	if d.TotalDays >= 365 {
		s = fmt.Sprintf("%d years, ", d.Years) + s
	}
	return s
}

// frame returns both instants in a shared frame. Anchors in the same zone
// keep their wall clock readings, re-based on UTC so that a DST transition
// in between neither adds nor removes an hour. Otherwise both move to UTC.
func frame(from, to model.Anchor) (time.Time, time.Time) {
	if from.Timezone() == to.Timezone() {
		return wallClock(from.Time()), wallClock(to.Time().In(from.Time().Location()))
	}
	return from.Time().UTC(), to.Time().UTC()
}

// wallClock reads t's date and clock and returns them as a UTC time.
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// wholeDays counts the calendar days that fit between a and b (a <= b) on
// a's wall clock. Partial days are dropped.
func wholeDays(a, b time.Time) int {
	b = b.In(a.Location())
	n := int(civilDay(b) - civilDay(a))
	for n > 0 && a.AddDate(0, 0, n).After(b) {
		n--
	}
	return n
}

// wholeYears counts the calendar years that fit between a and b (a <= b).
func wholeYears(a, b time.Time) int {
	n := b.In(a.Location()).Year() - a.Year()
	for n > 0 && a.AddDate(n, 0, 0).After(b) {
		n--
	}
	return n
}
