package model

import "strconv"

const (
	// EndToday is the only supported value of the end query parameter.
	EndToday = "today"

	// PeriodMaximum is the largest accepted period in days (20 years).
	PeriodMaximum = 7300

	// MaxDatasets caps the projected number of output data points
	// (projects x timestamps) of a single request.
	MaxDatasets = 5000
)

// Params is the parsed form of the raw key-performance query parameters.
// Parsing is lenient: fields that fail to parse stay at their zero values
// and are flagged, so validation and retrieval can each decide how to react.
type Params struct {
	// Selector is the raw projectId parameter (project/category selector).
	Selector string
	// PeriodDays is the requested period length; only meaningful when
	// PeriodValid is true.
	PeriodDays int64
	// PeriodValid reports whether the period parameter parsed as an integer.
	PeriodValid bool
	// Interval is the parsed sampling granularity.
	Interval Interval
	// End is the raw end parameter.
	End string
	// EndIsToday reports whether End holds the supported "today" literal.
	EndIsToday bool
}

// ParseRequest builds Params from the raw query parameter values in a
// single parsing step.
func ParseRequest(selector, period, interval, end string) Params {
	p := Params{
		Selector:   selector,
		Interval:   ParseInterval(interval),
		End:        end,
		EndIsToday: end == EndToday,
	}
	if v, err := strconv.ParseInt(period, 10, 64); err == nil {
		p.PeriodDays = v
		p.PeriodValid = true
	}
	return p
}
