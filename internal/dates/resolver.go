// Package dates resolves the calendar day a chat message is talking
// about. Group members rarely spell out full dates; they say "ngày 25"
// or "hôm qua" and expect the bot to know which month they mean.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate reports a day-of-month that does not exist in the
// resolved target month, e.g. 31 against a 30-day month.
var ErrInvalidDate = errors.New("dates: day does not exist in target month")

// Resolve turns a day-of-month hint into a concrete calendar date.
//
// A positive explicitDay names a day in ref's month, except that a day
// strictly greater than ref's own day belongs to the previous month (a
// "ngày 25" said on the 3rd means last month's 25th). A January
// reference rolls back to December of the previous year. Without an
// explicit day, yesterday selects the day before ref, otherwise ref's
// own date is used. Results are midnight in ref's location.
//
// explicitDay of zero (or less) means no day was given. A day/month
// combination that does not exist fails with ErrInvalidDate; it is
// never clamped or wrapped into a neighboring month.
func Resolve(ref time.Time, explicitDay int, yesterday bool) (time.Time, error) {
	loc := ref.Location()
	switch {
	case explicitDay >= 1:
		year, month := ref.Year(), ref.Month()
		if explicitDay > ref.Day() {
			if month == time.January {
				year, month = year-1, time.December
			} else {
				month--
			}
		}
		d := time.Date(year, month, explicitDay, 0, 0, 0, 0, loc)
		if d.Day() != explicitDay || d.Month() != month {
			return time.Time{}, fmt.Errorf("%w: day %d in %s %d", ErrInvalidDate, explicitDay, month, year)
		}
		return d, nil
	case yesterday:
		y := ref.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc), nil
	default:
		return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc), nil
	}
}
