package model

// Report is the result of one comparison, ready for rendering.
type Report struct {
	From       string   `json:"from" yaml:"from"`
	To         string   `json:"to" yaml:"to"`
	Difference string   `json:"difference" yaml:"difference"`
	Duration   Duration `json:"duration" yaml:"duration"`
	Weeks      int      `json:"weeks" yaml:"weeks"`

	// Unit is the additional output unit requested by the user.
	Unit           string  `json:"unit" yaml:"unit"`
	DaysInUnit     float64 `json:"days_in_unit" yaml:"days_in_unit"`
	WeekdaysInUnit float64 `json:"weekdays_in_unit" yaml:"weekdays_in_unit"`
	WeeksInUnit    float64 `json:"weeks_in_unit" yaml:"weeks_in_unit"`
}

// Row is one line of the rendered results table.
type Row struct {
	Label  string
	Value  string
	Custom string
}
