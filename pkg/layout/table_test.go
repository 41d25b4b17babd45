package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestSectionStartsContiguous(t *testing.T) {
	tbl := defaultTable(t)
	secs := Sections()
	if tbl.Start(secs[0]) != 1 {
		t.Fatalf("expected cover on page 1, got %d", tbl.Start(secs[0]))
	}
	for i := 1; i < len(secs); i++ {
		prev, next := secs[i-1], secs[i]
		if got, want := tbl.Start(next), tbl.Start(prev)+tbl.Pages(prev); got != want {
			t.Fatalf("%s starts at %d, want %s start + pages = %d", next, got, prev, want)
		}
		if tbl.Start(next) <= tbl.Start(prev) {
			t.Fatalf("%s does not start after %s", next, prev)
		}
	}
}

func TestDefaultStarts(t *testing.T) {
	tbl := defaultTable(t)
	got := map[string]int{}
	for _, s := range Sections() {
		got[s.String()] = tbl.Start(s)
	}
	want := map[string]int{
		"cover":              1,
		"main index":         2,
		"year index":         3,
		"collection indexes": 4,
		"guide":              6,
		"future log":         12,
		"monthly":            16,
		"weekly":             40,
		"daily":              146,
		"collections":        511,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected section starts (-want +got):\n%s", diff)
	}
	if tbl.TotalPages() != 546 {
		t.Fatalf("expected 546 pages, got %d", tbl.TotalPages())
	}
	if tbl.End(Collections) != tbl.TotalPages() {
		t.Fatalf("collections should end on the last page")
	}
}

func TestDailyPageStart(t *testing.T) {
	tbl := defaultTable(t)
	if tbl.DailyPageStart(0) != tbl.Start(Daily) {
		t.Fatalf("expected January to start the daily section")
	}
	for i := 1; i < tbl.Months(); i++ {
		want := tbl.DailyPageStart(i-1) + tbl.DaysInMonth(i-1)
		if got := tbl.DailyPageStart(i); got != want {
			t.Fatalf("month %d: got %d, want %d", i, got, want)
		}
	}
}

func TestLastDailyPagePrecedesCollections(t *testing.T) {
	tbl := defaultTable(t)
	if tbl.TotalDays() != 365 {
		t.Fatalf("expected 365 days, got %d", tbl.TotalDays())
	}
	if got, want := tbl.DailyPageStart(11)+30, tbl.Start(Collections)-1; got != want {
		t.Fatalf("December 31 on page %d, want %d", got, want)
	}
	if tbl.DayPage(11, 31) != tbl.Start(Collections)-1 {
		t.Fatalf("DayPage disagrees with DailyPageStart")
	}
}

func TestDayPageOffsets(t *testing.T) {
	tbl := defaultTable(t)
	before := 0
	for m := 0; m < tbl.Months(); m++ {
		for d := 1; d <= tbl.DaysInMonth(m); d++ {
			if got, want := tbl.DayPage(m, d), tbl.Start(Daily)+before+d-1; got != want {
				t.Fatalf("day %d/%d: got %d, want %d", m, d, got, want)
			}
		}
		before += tbl.DaysInMonth(m)
	}
}

func TestMonthlyTimelinePage(t *testing.T) {
	tbl := defaultTable(t)
	for i := 0; i < 12; i++ {
		if got, want := tbl.MonthlyTimelinePage(i), tbl.Start(Monthly)+2*i; got != want {
			t.Fatalf("month %d: got %d, want %d", i, got, want)
		}
		if tbl.MonthlyActionPage(i) != tbl.MonthlyTimelinePage(i)+1 {
			t.Fatalf("month %d: action plan does not follow timeline", i)
		}
	}
	if tbl.MonthlyActionPage(11) != tbl.End(Monthly) {
		t.Fatalf("December action plan should close the monthly section")
	}
}

func TestWeeklyPages(t *testing.T) {
	tbl := defaultTable(t)
	if tbl.WeeklyActionPage(0) != tbl.Start(Weekly) {
		t.Fatalf("week 1 should open the weekly section")
	}
	if tbl.WeeklyReflectionPage(tbl.Weeks()-1) != tbl.End(Weekly) {
		t.Fatalf("last reflection should close the weekly section")
	}
}

func TestCollectionPage(t *testing.T) {
	tbl := defaultTable(t)
	prev := 0
	for i := 0; i < tbl.CollectionCount(); i++ {
		got := tbl.CollectionPage(i)
		if want := tbl.Start(Collections) + i; got != want {
			t.Fatalf("collection %d: got %d, want %d", i, got, want)
		}
		if got <= prev {
			t.Fatalf("collection pages not strictly increasing at %d", i)
		}
		prev = got
	}
	if tbl.CollectionIndexOf(17) != 0 || tbl.CollectionIndexOf(18) != 1 {
		t.Fatalf("unexpected collection index split")
	}
	if tbl.CollectionIndexPage(0) != 4 || tbl.CollectionIndexPage(1) != 5 {
		t.Fatalf("unexpected collection index pages")
	}
}

func TestTwoPagesPerDay(t *testing.T) {
	s := Default()
	s.PagesPerDay = 2
	tbl := mustTable(t, s)
	if tbl.Pages(Daily) != 730 {
		t.Fatalf("expected 730 daily pages, got %d", tbl.Pages(Daily))
	}
	if tbl.DayPage(0, 2) != tbl.Start(Daily)+2 {
		t.Fatalf("second day should skip the continuation page")
	}
	if tbl.DayPage(11, 31)+1 != tbl.Start(Collections)-1 {
		t.Fatalf("last continuation page should precede collections")
	}
}

func TestForLeapYear(t *testing.T) {
	tbl := mustTable(t, ForYear(2028))
	if tbl.DaysInMonth(1) != 29 {
		t.Fatalf("expected 29 days in February")
	}
	if tbl.TotalPages() != 547 {
		t.Fatalf("expected 547 pages, got %d", tbl.TotalPages())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tbl := defaultTable(t)
	cases := map[string]func(){
		"month":      func() { tbl.MonthlyTimelinePage(12) },
		"negative":   func() { tbl.DailyPageStart(-1) },
		"day":        func() { tbl.DayPage(1, 29) },
		"week":       func() { tbl.WeeklyActionPage(53) },
		"collection": func() { tbl.CollectionPage(36) },
		"index":      func() { tbl.CollectionIndexPage(2) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.DaysPerMonth = s.DaysPerMonth[:11]
	if _, err := New(s); err == nil {
		t.Fatalf("expected error for missing month length")
	}
	s = Default()
	s.Weeks = 0
	if _, err := New(s); err == nil {
		t.Fatalf("expected error for zero weeks")
	}
}

func TestTableCopiesDayCounts(t *testing.T) {
	s := Default()
	tbl := mustTable(t, s)
	s.DaysPerMonth[0] = 1
	if tbl.DaysInMonth(0) != 31 {
		t.Fatalf("table shares caller's day counts")
	}
}

func mustTable(t *testing.T, s Structure) *Table {
	t.Helper()
	tbl, err := New(s)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return tbl
}

func TestForCommonYear(t *testing.T) {
	if diff := cmp.Diff(Default(), ForYear(2026)); diff != "" {
		t.Fatalf("ForYear(2026) differs from Default (-want +got):\n%s", diff)
	}
}
