package layout

import "fmt"

// Section is a structurally distinct run of pages.
type Section int

// Sections in document order.
const (
	Cover Section = iota
	MainIndex
	YearIndex
	CollectionIndexes
	Guide
	FutureLog
	Monthly
	Weekly
	Daily
	Collections
	numSections
)

var sectionNames = [...]string{
	Cover:             "cover",
	MainIndex:         "main index",
	YearIndex:         "year index",
	CollectionIndexes: "collection indexes",
	Guide:             "guide",
	FutureLog:         "future log",
	Monthly:           "monthly",
	Weekly:            "weekly",
	Daily:             "daily",
	Collections:       "collections",
}

func (s Section) String() string {
	if s < 0 || s >= numSections {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// Sections returns every section in document order.
func Sections() []Section {
	out := make([]Section, 0, numSections)
	for s := Cover; s < numSections; s++ {
		out = append(out, s)
	}
	return out
}

const (
	pagesPerMonth = 2 // timeline, action plan
	pagesPerWeek  = 2 // action plan, reflection
)

// Table maps sections and their instances to absolute 1-based page numbers.
// It is immutable once built.
type Table struct {
	s          Structure
	pages      [numSections]int
	starts     [numSections]int
	dailyStart []int
}

// New derives the offset table for s.
func New(s Structure) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	days := make([]int, len(s.DaysPerMonth))
	copy(days, s.DaysPerMonth)
	s.DaysPerMonth = days

	t := &Table{s: s}
	t.pages = [numSections]int{
		Cover:             1,
		MainIndex:         1,
		YearIndex:         1,
		CollectionIndexes: s.CollectionIndexes,
		Guide:             s.GuidePages,
		FutureLog:         s.FutureLogPages,
		Monthly:           s.Months * pagesPerMonth,
		Weekly:            s.Weeks * pagesPerWeek,
		Daily:             s.TotalDays() * s.PagesPerDay,
		Collections:       s.Collections() * s.PagesPerCollection,
	}
	next := 1
	for sec := Cover; sec < numSections; sec++ {
		t.starts[sec] = next
		next += t.pages[sec]
	}

	t.dailyStart = make([]int, s.Months)
	before := 0
	for m := 0; m < s.Months; m++ {
		t.dailyStart[m] = t.starts[Daily] + before*s.PagesPerDay
		before += s.DaysPerMonth[m]
	}
	return t, nil
}

// Structure returns a copy of the counts the table was built from.
func (t *Table) Structure() Structure {
	s := t.s
	s.DaysPerMonth = append([]int(nil), t.s.DaysPerMonth...)
	return s
}

// Start is the first page of a section.
func (t *Table) Start(s Section) int {
	t.checkSection(s)
	return t.starts[s]
}

// Pages is the number of pages in a section.
func (t *Table) Pages(s Section) int {
	t.checkSection(s)
	return t.pages[s]
}

// End is the last page of a section.
func (t *Table) End(s Section) int {
	return t.Start(s) + t.Pages(s) - 1
}

// TotalPages is the page count of the whole book.
func (t *Table) TotalPages() int {
	return t.starts[Collections] + t.pages[Collections] - 1
}

// Months is the number of months laid out.
func (t *Table) Months() int { return t.s.Months }

// Weeks is the number of weeks laid out.
func (t *Table) Weeks() int { return t.s.Weeks }

// PagesPerDay is the number of pages each daily log occupies.
func (t *Table) PagesPerDay() int { return t.s.PagesPerDay }

// CollectionsPerIndex is the number of collections listed on each collection index.
func (t *Table) CollectionsPerIndex() int { return t.s.CollectionsPerIndex }

// CollectionCount is the number of collections across every index.
func (t *Table) CollectionCount() int { return t.s.Collections() }

// TotalDays is the number of days laid out.
func (t *Table) TotalDays() int { return t.s.TotalDays() }

// DaysInMonth is the day count of a 0-based month.
func (t *Table) DaysInMonth(month int) int {
	t.checkMonth(month)
	return t.s.DaysPerMonth[month]
}

// DailyPageStart is the first daily page of a 0-based month.
func (t *Table) DailyPageStart(month int) int {
	t.checkMonth(month)
	return t.dailyStart[month]
}

// DayPage is the first page of a day; month is 0-based, day is the 1-based
// day of the month.
func (t *Table) DayPage(month, day int) int {
	t.checkMonth(month)
	if day < 1 || day > t.s.DaysPerMonth[month] {
		panic(fmt.Sprintf("layout: day %d out of range for month %d", day, month))
	}
	return t.dailyStart[month] + (day-1)*t.s.PagesPerDay
}

// MonthlyTimelinePage is the timeline page of a 0-based month.
func (t *Table) MonthlyTimelinePage(month int) int {
	t.checkMonth(month)
	return t.starts[Monthly] + pagesPerMonth*month
}

// MonthlyActionPage is the action plan page following a month's timeline.
func (t *Table) MonthlyActionPage(month int) int {
	return t.MonthlyTimelinePage(month) + 1
}

// WeeklyActionPage is the action plan page of a 0-based week.
func (t *Table) WeeklyActionPage(week int) int {
	if week < 0 || week >= t.s.Weeks {
		panic(fmt.Sprintf("layout: week %d out of range [0,%d)", week, t.s.Weeks))
	}
	return t.starts[Weekly] + pagesPerWeek*week
}

// WeeklyReflectionPage is the reflection page following a week's action plan.
func (t *Table) WeeklyReflectionPage(week int) int {
	return t.WeeklyActionPage(week) + 1
}

// CollectionIndexPage is the page of a 0-based collection index.
func (t *Table) CollectionIndexPage(index int) int {
	if index < 0 || index >= t.s.CollectionIndexes {
		panic(fmt.Sprintf("layout: collection index %d out of range [0,%d)", index, t.s.CollectionIndexes))
	}
	return t.starts[CollectionIndexes] + index
}

// CollectionPage is the first page of a 0-based collection.
func (t *Table) CollectionPage(collection int) int {
	t.checkCollection(collection)
	return t.starts[Collections] + collection*t.s.PagesPerCollection
}

// CollectionIndexOf is the 0-based collection index that lists collection.
func (t *Table) CollectionIndexOf(collection int) int {
	t.checkCollection(collection)
	return collection / t.s.CollectionsPerIndex
}

// GuidePage is the page of a 0-based guide page.
func (t *Table) GuidePage(i int) int {
	if i < 0 || i >= t.s.GuidePages {
		panic(fmt.Sprintf("layout: guide page %d out of range [0,%d)", i, t.s.GuidePages))
	}
	return t.starts[Guide] + i
}

// FutureLogPage is the page of a 0-based future log page.
func (t *Table) FutureLogPage(i int) int {
	if i < 0 || i >= t.s.FutureLogPages {
		panic(fmt.Sprintf("layout: future log page %d out of range [0,%d)", i, t.s.FutureLogPages))
	}
	return t.starts[FutureLog] + i
}

func (t *Table) checkSection(s Section) {
	if s < 0 || s >= numSections {
		panic(fmt.Sprintf("layout: unknown section %d", int(s)))
	}
}

func (t *Table) checkMonth(month int) {
	if month < 0 || month >= t.s.Months {
		panic(fmt.Sprintf("layout: month %d out of range [0,%d)", month, t.s.Months))
	}
}

func (t *Table) checkCollection(collection int) {
	if collection < 0 || collection >= t.s.Collections() {
		panic(fmt.Sprintf("layout: collection %d out of range [0,%d)", collection, t.s.Collections()))
	}
}
