// Package layout computes where every section and instance of the planner
// lives in the finished document. Everything here is closed-form arithmetic
// over a handful of structural counts.
package layout

import (
	"errors"
	"fmt"

	"tableflip.dev/planner/pkg/timeutil"
)

// Structure holds the per-section page counts the offset table is derived from.
type Structure struct {
	GuidePages          int
	FutureLogPages      int
	Months              int
	Weeks               int
	DaysPerMonth        []int
	PagesPerDay         int
	PagesPerCollection  int
	CollectionsPerIndex int
	CollectionIndexes   int
}

// Default returns the structure of the standard planner: a common year of
// 365 daily pages, 53 weeks and two indexes of 18 collections.
func Default() Structure {
	days := make([]int, len(timeutil.NonLeapMonthLengths))
	copy(days, timeutil.NonLeapMonthLengths)
	return Structure{
		GuidePages:          6,
		FutureLogPages:      4,
		Months:              timeutil.MonthsInYear,
		Weeks:               53,
		DaysPerMonth:        days,
		PagesPerDay:         1,
		PagesPerCollection:  1,
		CollectionsPerIndex: 18,
		CollectionIndexes:   2,
	}
}

// ForYear returns the default structure with February 29 laid out when year
// is a leap year. Default keeps the common-year counts for every year.
func ForYear(year int) Structure {
	s := Default()
	if timeutil.IsLeap(year) {
		s.DaysPerMonth = timeutil.MonthLengths(year)
	}
	return s
}

// Validate reports structural counts that cannot produce a contiguous book.
func (s Structure) Validate() error {
	var errs []error
	positive := []struct {
		name string
		n    int
	}{
		{"guide pages", s.GuidePages},
		{"future log pages", s.FutureLogPages},
		{"months", s.Months},
		{"weeks", s.Weeks},
		{"pages per day", s.PagesPerDay},
		{"pages per collection", s.PagesPerCollection},
		{"collections per index", s.CollectionsPerIndex},
		{"collection indexes", s.CollectionIndexes},
	}
	for _, p := range positive {
		if p.n <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.n))
		}
	}
	if len(s.DaysPerMonth) != s.Months {
		errs = append(errs, fmt.Errorf("expected %d month lengths, got %d", s.Months, len(s.DaysPerMonth)))
	}
	for i, d := range s.DaysPerMonth {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("month %d has %d days", i, d))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("layout: invalid structure: %w", err)
	}
	return nil
}

// TotalDays is the sum of all month lengths.
func (s Structure) TotalDays() int {
	n := 0
	for _, d := range s.DaysPerMonth {
		n += d
	}
	return n
}

// Collections is the number of collection pages across every index.
func (s Structure) Collections() int {
	return s.CollectionsPerIndex * s.CollectionIndexes
}
