package timecalc_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Tiliavir/timetraveler/internal/model"
	"github.com/Tiliavir/timetraveler/internal/timecalc"
)

// anchor builds an anchor from an accepted date string in the named zone.
func anchor(t *testing.T, raw, tz string) model.Anchor {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Skipf("tz database unavailable for %s: %v", tz, err)
	}
	p, err := timecalc.ParseDate(raw)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", raw, err)
	}
	return timecalc.NewAnchor(p, loc, tz)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     int
	}{
		{"same day", "2018-01-01", "2018-01-01", 0},
		{"next day", "2018-01-01", "2018-01-02", 1},
		{"next month", "2018-01-01", "2018-02-01", 31},
		{"end before start", "2018-01-01", "2017-12-31", 1},
		{"one second short of two days", "2018-05-01 00:00:00", "2018-05-02 23:59:59", 1},
		{"february non-leap", "2018-02-28", "2018-03-01", 1},
		{"february leap", "2016-02-28", "2016-03-01", 2},
		{"whole year", "2018-01-01", "2019-01-01", 365},
		{"leap year", "2016-01-01", "2017-01-01", 366},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := anchor(t, tt.from, "UTC")
			to := anchor(t, tt.to, "UTC")
			if got := timecalc.DaysBetween(from, to); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
			if got := timecalc.DaysBetween(to, from); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.to, tt.from, got, tt.want)
			}
			if got := timecalc.WeeksBetween(from, to); got != tt.want/7 {
				t.Errorf("WeeksBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want/7)
			}
		})
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	// 2018-03-11 has 23 hours in New York.
	from := anchor(t, "2018-03-10", "America/New_York")
	to := anchor(t, "2018-03-12", "America/New_York")
	if got := timecalc.DaysBetween(from, to); got != 2 {
		t.Errorf("DaysBetween across DST = %d, want 2", got)
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		tz       string
		want     model.Duration
	}{
		{
			name: "reflexive",
			from: "2018-01-01 10:30:00", to: "2018-01-01 10:30:00",
			want: model.Duration{},
		},
		{
			name: "month folded into days",
			from: "2018-01-01", to: "2018-02-01 10:20:30",
			want: model.Duration{Days: 31, Hours: 10, Minutes: 20, Seconds: 30, TotalDays: 31, Weekdays: 23},
		},
		{
			name: "inverted",
			from: "2018-01-08", to: "2018-01-01",
			want: model.Duration{Inverted: true, Days: 7, TotalDays: 7, Weekdays: 5},
		},
		{
			name: "years",
			from: "2016-01-01", to: "2018-03-01 01:00:00",
			want: model.Duration{Years: 2, Days: 59, Hours: 1, TotalDays: 790, Weekdays: 564},
		},
		{
			name: "leap day anniversary",
			from: "2016-02-29", to: "2017-02-28",
			want: model.Duration{Days: 365, TotalDays: 365, Weekdays: 261},
		},
		{
			// 2018-11-04 has 25 hours in New York.
			name: "fall back",
			from: "2018-11-03 12:00:00", to: "2018-11-04 11:30:00", tz: "America/New_York",
			want: model.Duration{Hours: 23, Minutes: 30},
		},
		{
			// 2018-03-11 has 23 hours in New York.
			name: "spring forward",
			from: "2018-03-10 12:00:00", to: "2018-03-11 12:30:00", tz: "America/New_York",
			want: model.Duration{Days: 1, Minutes: 30, TotalDays: 1},
		},
		{
			name: "fall back inverted",
			from: "2018-11-05 09:00:00", to: "2018-11-02 09:00:00", tz: "America/New_York",
			want: model.Duration{Inverted: true, Days: 3, TotalDays: 3, Weekdays: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz := tt.tz
			if tz == "" {
				tz = "UTC"
			}
			got := timecalc.Difference(anchor(t, tt.from, tz), anchor(t, tt.to, tz))
			if got.Hours >= 24 {
				t.Errorf("Difference(%s, %s) has %d hours, want fewer than 24", tt.from, tt.to, got.Hours)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference(%s, %s) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestDifferenceCrossTimezone(t *testing.T) {
	// 10:30 in Kolkata (UTC+05:30) is 05:00 UTC.
	from := anchor(t, "2018-01-01 10:30:00", "Asia/Kolkata")
	to := anchor(t, "2018-01-01 05:00:00", "UTC")

	got := timecalc.Difference(from, to)
	if diff := cmp.Diff(model.Duration{}, got); diff != "" {
		t.Errorf("same instant in two zones should differ by zero (-want +got):\n%s", diff)
	}
}

func TestDifferencePanicsWithoutAnchors(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when an anchor is unset")
		}
	}()
	timecalc.Difference(model.Anchor{}, anchor(t, "2018-01-01", "UTC"))
}

func TestWeekdaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2018-01-01", "2018-01-01", 0},
		{"2018-01-01", "2018-01-08", 5}, // Monday to Monday
		{"2018-01-06", "2018-01-13", 5}, // Saturday to Saturday
		{"2018-01-03", "2018-01-10", 5},
		{"2018-01-06", "2018-01-08", 0}, // weekend only
		{"2018-01-05", "2018-01-06", 1},
		{"2018-01-05", "2018-01-05 23:59:59", 0},
		{"2018-01-08", "2018-01-01", 5},
	}
	for _, tt := range tests {
		from := anchor(t, tt.from, "UTC")
		to := anchor(t, tt.to, "UTC")
		if got := timecalc.WeekdaysBetween(from, to); got != tt.want {
			t.Errorf("WeekdaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestWeekdaysBetweenFullWeeks(t *testing.T) {
	start := time.Date(2018, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		s := start.AddDate(0, 0, i)
		from := model.NewAnchor(s, time.UTC, "UTC")
		to := model.NewAnchor(s.AddDate(0, 0, 7), time.UTC, "UTC")
		if got := timecalc.WeekdaysBetween(from, to); got != 5 {
			t.Errorf("WeekdaysBetween over 7 days from %s = %d, want 5", s.Format("Mon 2006-01-02"), got)
		}
	}
}

func TestWeekdaysBetweenLeavesAnchorsUntouched(t *testing.T) {
	from := anchor(t, "2018-01-01", "UTC")
	to := anchor(t, "2018-02-01", "UTC")
	before := from.Time()
	timecalc.WeekdaysBetween(from, to)
	if !from.Time().Equal(before) {
		t.Errorf("from anchor changed to %v", from.Time())
	}
}

func TestFormatDifference(t *testing.T) {
	tests := []struct {
		d    model.Duration
		want string
	}{
		{model.Duration{}, "0 days, 0 hours, 0 minutes, 0 seconds"},
		{model.Duration{Days: 31, Hours: 10, Minutes: 20, Seconds: 30, TotalDays: 31}, "31 days, 10 hours, 20 minutes, 30 seconds"},
		{model.Duration{Days: 364, TotalDays: 364}, "364 days, 0 hours, 0 minutes, 0 seconds"},
		{model.Duration{Years: 1, TotalDays: 365}, "1 years, 0 days, 0 hours, 0 minutes, 0 seconds"},
		{model.Duration{Years: 2, Days: 59, Hours: 1, TotalDays: 790}, "2 years, 59 days, 1 hours, 0 minutes, 0 seconds"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatDifference(tt.d); got != tt.want {
			t.Errorf("FormatDifference(%+v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
