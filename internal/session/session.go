// Package session drives the interactive comparison: it asks for both
// anchors and the output unit, re-prompting until each answer validates.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/timetraveler/internal/model"
	"github.com/Tiliavir/timetraveler/internal/prompt"
	"github.com/Tiliavir/timetraveler/internal/timecalc"
	"github.com/Tiliavir/timetraveler/internal/tzcatalog"
)

const dateHint = "Acceptable Formats: YYYY-MM-DD, YYYY-MM-DD HH:MM:SS"

// Options configures a Session.
type Options struct {
	// DefaultTimezone is used for an anchor unless the user overrides it.
	DefaultTimezone string
	// DefaultUnit answers the output unit question when it is left empty.
	DefaultUnit timecalc.Unit
	Logger      *log.Logger
}

// Session owns the retry loops around the pure parsing and validation
// functions. It never validates anything itself.
type Session struct {
	prompter    prompt.Prompter
	catalog     *tzcatalog.Catalog
	defaultTZ   string
	defaultUnit timecalc.Unit
	logger      *log.Logger
}

// Result holds everything the user supplied in one run.
type Result struct {
	From model.Anchor
	To   model.Anchor
	Unit timecalc.Unit
}

// New returns a Session. The default timezone must be in catalog.
func New(p prompt.Prompter, catalog *tzcatalog.Catalog, opts Options) (*Session, error) {
	if err := catalog.Validate(opts.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("default timezone: %w", err)
	}
	if opts.DefaultUnit == "" {
		opts.DefaultUnit = timecalc.Days
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		prompter:    p,
		catalog:     catalog,
		defaultTZ:   opts.DefaultTimezone,
		defaultUnit: opts.DefaultUnit,
		logger:      opts.Logger,
	}, nil
}

// Run asks for the From anchor, the To anchor and the output unit, in that
// order.
func (s *Session) Run() (Result, error) {
	from, err := s.RequestAnchor(model.From)
	if err != nil {
		return Result{}, err
	}
	to, err := s.RequestAnchor(model.To)
	if err != nil {
		return Result{}, err
	}
	unit, err := s.RequestUnit()
	if err != nil {
		return Result{}, err
	}
	return Result{From: from, To: to, Unit: unit}, nil
}

// RequestAnchor asks for a date and, optionally, a timezone override, and
// builds a new anchor from them.
func (s *Session) RequestAnchor(side model.Side) (model.Anchor, error) {
	parsed, err := s.RequestDate(side)
	if err != nil {
		return model.Anchor{}, err
	}

	override, err := s.prompter.GetConfirmation(
		fmt.Sprintf("Would you like to override the Timezone? (Default %s)", s.defaultTZ))
	if err != nil {
		return model.Anchor{}, err
	}

	tz := s.defaultTZ
	if override {
		tz, err = s.RequestTimezone(side)
		if err != nil {
			return model.Anchor{}, err
		}
	}

	loc, err := s.catalog.Location(tz)
	if err != nil {
		return model.Anchor{}, err
	}
	a := timecalc.NewAnchor(parsed, loc, tz)
	s.logger.Debug("anchor set", "side", side, "time", a.Time().Format(time.RFC3339), "timezone", tz)
	return a, nil
}

// RequestDate asks until the answer parses as a date.
func (s *Session) RequestDate(side model.Side) (timecalc.ParsedDate, error) {
	for {
		s.prompter.AskQuestion(fmt.Sprintf("What is the %s Date?", side), dateHint)
		raw, err := s.prompter.GetLine(fmt.Sprintf("%s Date:", side))
		if err != nil {
			return timecalc.ParsedDate{}, err
		}

		parsed, err := timecalc.ParseDate(raw)
		if errors.Is(err, timecalc.ErrInvalidDateFormat) {
			s.logger.Debug("rejected date", "side", side, "err", err)
			s.prompter.ReportError(fmt.Sprintf("'%s' is not a valid Date, please try again", raw))
			continue
		}
		if err != nil {
			return timecalc.ParsedDate{}, err
		}
		return parsed, nil
	}
}

// RequestTimezone asks until the answer is a catalog identifier.
func (s *Session) RequestTimezone(side model.Side) (string, error) {
	for {
		s.prompter.AskQuestion(
			fmt.Sprintf("What is the Timezone for the %s Date?", side),
			"Must be a valid IANA Timezone, eg 'Africa/Algiers'")
		tz, err := s.prompter.GetLine("New Timezone:")
		if err != nil {
			return "", err
		}
		if err := s.catalog.Validate(tz); err != nil {
			s.logger.Debug("rejected timezone", "side", side, "err", err)
			s.prompter.ReportError(fmt.Sprintf("'%s' is not a valid Timezone, please try again", tz))
			continue
		}
		return tz, nil
	}
}

// RequestUnit asks until the answer names a supported unit. An empty answer
// selects the default unit.
func (s *Session) RequestUnit() (timecalc.Unit, error) {
	for {
		s.prompter.AskQuestion(
			"Would you like to return the results in an additional time interval?",
			fmt.Sprintf("Leave empty for %s", s.defaultUnit))
		raw, err := s.prompter.GetLine("Format (Seconds, Minutes, Hours, Days, Weeks, Years):")
		if err != nil {
			return "", err
		}
		if raw == "" {
			return s.defaultUnit, nil
		}

		unit, err := timecalc.ParseUnit(raw)
		if err != nil {
			s.logger.Debug("rejected unit", "err", err)
			s.prompter.ReportError(fmt.Sprintf("'%s' is not a valid Format, please try again", raw))
			continue
		}
		return unit, nil
	}
}
