// Package timeline turns a requested period and interval into the ordered
// sequence of normalized timestamps that serve as cache keys and series
// x-axis points.
package timeline

import (
	"time"

	"github.com/jschweizer/kpi-service/internal/kpi/model"
)

// noDateLabel is returned for timestamps of an unknown interval.
const noDateLabel = "No date"

const day = 24 * time.Hour

// Expand computes one normalized timestamp per interval step of the period
// ending at now. The result is strictly increasing and deterministic for
// identical inputs; an unknown interval yields no sequence.
func Expand(periodDays int64, interval model.Interval, now time.Time) []time.Time {
	if interval == model.IntervalUnknown {
		return nil
	}

	start := Normalize(now.Add(-time.Duration(periodDays)*day), interval)

	var stamps []time.Time
	for cur := start; cur.Before(now); {
		cur = Next(cur, interval)
		stamps = append(stamps, cur)
	}
	return stamps
}

// Normalize snaps a timestamp to the canonical closing instant of its
// bucket, 23:59:59.999 of the bucket's last day, so that repeated requests
// within the same bucket produce identical cache keys.
//
// Weekly buckets close on Sunday. Monthly buckets snap to day-of-month
// zero, which lands on the last day of the previous month; that literal
// behavior is load-bearing for cache-key identity and is pinned by tests.
func Normalize(ts time.Time, interval model.Interval) time.Time {
	year, month, dayOfMonth := ts.Date()
	n := time.Date(year, month, dayOfMonth, 23, 59, 59, 999000000, ts.Location())

	switch interval {
	case model.IntervalWeekly:
		n = n.AddDate(0, 0, (7-int(n.Weekday()))%7)
	case model.IntervalMonthly:
		n = time.Date(year, month, 0, 23, 59, 59, 999000000, ts.Location())
	}
	return n
}

// Next advances a normalized timestamp by one interval step. Monthly steps
// use calendar-month arithmetic with Go's date normalization.
func Next(ts time.Time, interval model.Interval) time.Time {
	switch interval {
	case model.IntervalDaily:
		return ts.Add(day)
	case model.IntervalWeekly:
		return ts.Add(7 * day)
	case model.IntervalMonthly:
		return ts.AddDate(0, 1, 0)
	default:
		return ts
	}
}

// Label returns the calendar-date form of a timestamp for the series
// x-axis, or a fixed sentinel for an unknown interval.
func Label(ts time.Time, interval model.Interval) string {
	switch interval {
	case model.IntervalDaily, model.IntervalWeekly, model.IntervalMonthly:
		return ts.Format("2006-01-02")
	default:
		return noDateLabel
	}
}
