package model

import "time"

// Anchor is one side of a comparison: an instant together with the timezone
// it was interpreted in. Anchors are built by timecalc.NewAnchor and never
// modified afterwards; re-prompting produces a new Anchor.
type Anchor struct {
	instant  time.Time
	timezone string
}

// NewAnchor pairs an instant with the identifier of its timezone. The
// instant is moved into its location so wall-clock fields match the zone.
func NewAnchor(instant time.Time, loc *time.Location, timezone string) Anchor {
	return Anchor{instant: instant.In(loc), timezone: timezone}
}

// Time returns the anchored instant in its own location.
func (a Anchor) Time() time.Time { return a.instant }

// Timezone returns the catalog identifier the anchor was interpreted in.
func (a Anchor) Timezone() string { return a.timezone }

// IsZero reports whether the anchor was never set.
func (a Anchor) IsZero() bool { return a.instant.IsZero() && a.timezone == "" }

// Side names which end of the comparison an anchor belongs to.
type Side string

const (
	From Side = "From"
	To   Side = "To"
)
