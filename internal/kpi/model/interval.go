// Package model provides request parameters, DTOs and KPI constants for the
// key-performance module.
package model

// Interval is the sampling granularity of a KPI timeline.
type Interval int

const (
	// IntervalUnknown marks an unrecognized interval parameter.
	IntervalUnknown Interval = iota
	// IntervalDaily samples one bucket per day.
	IntervalDaily
	// IntervalWeekly samples one bucket per week.
	IntervalWeekly
	// IntervalMonthly samples one bucket per calendar month.
	IntervalMonthly
)

const (
	intervalDailyString   = "daily"
	intervalWeeklyString  = "weekly"
	intervalMonthlyString = "monthly"
)

// ParseInterval maps the raw interval query parameter onto the closed
// interval set. Anything unrecognized maps to IntervalUnknown.
func ParseInterval(s string) Interval {
	switch s {
	case intervalDailyString:
		return IntervalDaily
	case intervalWeeklyString:
		return IntervalWeekly
	case intervalMonthlyString:
		return IntervalMonthly
	default:
		return IntervalUnknown
	}
}

// String returns the wire form of the interval.
func (i Interval) String() string {
	switch i {
	case IntervalDaily:
		return intervalDailyString
	case IntervalWeekly:
		return intervalWeeklyString
	case IntervalMonthly:
		return intervalMonthlyString
	default:
		return "unknown"
	}
}
