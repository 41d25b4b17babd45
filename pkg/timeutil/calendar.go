// Package timeutil holds the calendar arithmetic the planner layout is built on.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// MonthsInYear is the number of months laid out per planner.
	MonthsInYear = 12
)

// NonLeapMonthLengths are the day counts of a common (365 day) year.
var NonLeapMonthLengths = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in the given month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeap reports whether year has a February 29.
func IsLeap(year int) bool {
	return DaysIn(year, time.February) == 29
}

// MonthLengths returns the day counts of every month in year, January first.
func MonthLengths(year int) []int {
	out := make([]int, MonthsInYear)
	for i := range out {
		out[i] = DaysIn(year, time.Month(i+1))
	}
	return out
}

// MonthName returns the English name of a 0-based month index.
func MonthName(month int) string {
	return time.Month(month + 1).String()
}

// MonthAbbrev returns the three letter abbreviation of a 0-based month index.
func MonthAbbrev(month int) string {
	return MonthName(month)[:3]
}

// DayLabel formats the header used on a daily page, for example "Jan 5".
func DayLabel(month, day int) string {
	return fmt.Sprintf("%s %d", MonthAbbrev(month), day)
}

// ParseYear validates a planner year.
func ParseYear(year int) (int, error) {
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %d", year)
	}
	return year, nil
}
