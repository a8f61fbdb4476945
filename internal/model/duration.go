package model

// Duration is the calendar-aware difference between two anchors. Months are
// folded into Days; TotalDays is the whole-day count of the full interval.
type Duration struct {
	// Inverted is set when the "to" anchor precedes the "from" anchor.
	// All counts below are magnitudes regardless of direction.
	Inverted bool `json:"inverted" yaml:"inverted"`

	Years   int `json:"years" yaml:"years"`
	Days    int `json:"days" yaml:"days"`
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
	Seconds int `json:"seconds" yaml:"seconds"`

	TotalDays int `json:"total_days" yaml:"total_days"`
	// Weekdays counts the Monday–Friday days stepped through in the interval.
	Weekdays int `json:"weekdays" yaml:"weekdays"`
}

// Weeks returns the number of complete weeks in the interval.
func (d Duration) Weeks() int {
	return d.TotalDays / 7
}
