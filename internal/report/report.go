// Package report assembles the result of a comparison and renders it.
package report

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/Tiliavir/timetraveler/internal/model"
	"github.com/Tiliavir/timetraveler/internal/timecalc"
)

// Builder turns two anchors into a Report.
type Builder struct {
	// Layout is passed to timecalc.FormatAnchor.
	Layout string
	Logger *log.Logger
}

// Build computes the difference between from and to and expresses the day,
// weekday and complete-week counts in unit.
func (b Builder) Build(from, to model.Anchor, unit timecalc.Unit) (model.Report, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := timecalc.Difference(from, to)
	logger.Debug("difference computed", "duration", litter.Sdump(d))

	r := model.Report{
		From:       timecalc.FormatAnchor(from.Time(), b.Layout),
		To:         timecalc.FormatAnchor(to.Time(), b.Layout),
		Difference: timecalc.FormatDifference(d),
		Duration:   d,
		Weeks:      d.Weeks(),
		Unit:       string(unit),
	}

	var err error
	if r.DaysInUnit, err = timecalc.Convert(float64(d.TotalDays), timecalc.Days, unit); err != nil {
		return model.Report{}, err
	}
	if r.WeekdaysInUnit, err = timecalc.Convert(float64(d.Weekdays), timecalc.Days, unit); err != nil {
		return model.Report{}, err
	}
	if r.WeeksInUnit, err = timecalc.Convert(float64(r.Weeks), timecalc.Weeks, unit); err != nil {
		return model.Report{}, err
	}
	return r, nil
}

// Rows lays out a report as the lines of the results table.
func Rows(r model.Report) []model.Row {
	unit := timecalc.Unit(r.Unit)
	return []model.Row{
		{Label: "From Date", Value: r.From},
		{Label: "To Date", Value: r.To},
		{Label: "Difference", Value: r.Difference},
		{
			Label:  "Difference - Days",
			Value:  itoa(r.Duration.TotalDays) + " days",
			Custom: timecalc.FormatQuantity(r.DaysInUnit, unit),
		},
		{
			Label:  "Difference - Weekdays",
			Value:  itoa(r.Duration.Weekdays) + " weekdays",
			Custom: timecalc.FormatQuantity(r.WeekdaysInUnit, unit),
		},
		{
			Label:  "Difference - Complete Weeks",
			Value:  itoa(r.Weeks) + " weeks",
			Custom: timecalc.FormatQuantity(r.WeeksInUnit, unit),
		},
	}
}
