package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/render/rendertest"
	"tableflip.dev/planner/pkg/richtext"
)

func generate(t *testing.T, g *Generator) (*rendertest.Recorder, Result) {
	t.Helper()
	r := rendertest.New()
	res, err := g.Generate(context.Background(), r)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	return r, res
}

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(2026)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return g
}

func TestGenerate(t *testing.T) {
	r, res := generate(t, newGenerator(t))
	if res.Pages != 546 {
		t.Errorf("Pages = %d, want 546", res.Pages)
	}
	if got := r.PageCount(); got != res.Pages {
		t.Errorf("PageCount() = %d, want %d", got, res.Pages)
	}
	if res.Links.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", res.Links.Dropped)
	}
	if got := r.Count(rendertest.KindLink); got != res.Links.Created {
		t.Errorf("recorded %d links, created %d", got, res.Links.Created)
	}
	for _, op := range r.Ops {
		if op.Page < 0 || op.Page >= res.Pages {
			t.Fatalf("%s drawn on page %d", op.Kind, op.Page)
		}
		if op.Kind == rendertest.KindLink && (op.Target < 0 || op.Target >= res.Pages) {
			t.Fatalf("link on page %d targets %d", op.Page, op.Target)
		}
	}
}

func TestEveryPageDrawn(t *testing.T) {
	r, res := generate(t, newGenerator(t))
	drawn := make([]bool, res.Pages)
	for _, op := range r.Ops {
		drawn[op.Page] = true
	}
	for i, ok := range drawn {
		if !ok {
			t.Errorf("page %d is blank", i+1)
		}
	}
}

func TestCover(t *testing.T) {
	r, _ := generate(t, newGenerator(t))
	got := r.PageText(0)
	if got != "Bullet Journal 2026" {
		t.Errorf("cover text = %q", got)
	}
	if n := len(r.OnPage(0, rendertest.KindLink)); n != 0 {
		t.Errorf("cover has %d links", n)
	}
}

func TestCollectionIndexLinks(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table
	per := tb.CollectionsPerIndex()
	for idx := 0; idx < tb.Pages(layout.CollectionIndexes); idx++ {
		var got []int
		for _, target := range r.Targets(tb.CollectionIndexPage(idx) - 1) {
			if target+1 >= tb.Start(layout.Collections) {
				got = append(got, target)
			}
		}
		var want []int
		for i := 0; i < per; i++ {
			want = append(want, tb.CollectionPage(idx*per+i)-1)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("index %d collection links (-want +got):\n%s", idx, diff)
		}
	}
}

func TestCollectionsLinkBackToTheirIndex(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table
	for i := 0; i < tb.CollectionCount(); i++ {
		want := []int{tb.CollectionIndexPage(tb.CollectionIndexOf(i)) - 1}
		if diff := cmp.Diff(want, r.Targets(tb.CollectionPage(i)-1)); diff != "" {
			t.Errorf("collection %d links (-want +got):\n%s", i, diff)
		}
	}
}

func TestMonthlyTimelineLinksEveryDay(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table
	for m := 0; m < tb.Months(); m++ {
		want := []int{tb.Start(layout.MainIndex) - 1, tb.Start(layout.YearIndex) - 1}
		for d := 1; d <= tb.DaysInMonth(m); d++ {
			want = append(want, tb.DayPage(m, d)-1)
		}
		if diff := cmp.Diff(want, r.Targets(tb.MonthlyTimelinePage(m)-1)); diff != "" {
			t.Errorf("month %d links (-want +got):\n%s", m, diff)
		}
	}
}

func TestDailyNavigation(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table

	n := tb.DayPage(2, 15) - 1
	want := []int{tb.Start(layout.YearIndex) - 1, tb.MonthlyTimelinePage(2) - 1}
	if diff := cmp.Diff(want, r.Targets(n)); diff != "" {
		t.Errorf("daily links (-want +got):\n%s", diff)
	}
	text := r.PageText(n)
	for _, s := range []string{"Index", "March", "Mar 15", "Daily"} {
		if !strings.Contains(text, s) {
			t.Errorf("daily page text missing %q", s)
		}
	}
}

func TestYearIndexLinksEveryDay(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table
	seen := make(map[int]bool)
	for _, target := range r.Targets(tb.Start(layout.YearIndex) - 1) {
		seen[target] = true
	}
	for m := 0; m < tb.Months(); m++ {
		for d := 1; d <= tb.DaysInMonth(m); d++ {
			if !seen[tb.DayPage(m, d)-1] {
				t.Errorf("year index has no link to month %d day %d", m, d)
			}
		}
	}
}

func TestMainIndexLinksGuideAndLogs(t *testing.T) {
	g := newGenerator(t)
	r, _ := generate(t, g)
	tb := g.Table
	seen := make(map[int]bool)
	for _, target := range r.Targets(tb.Start(layout.MainIndex) - 1) {
		seen[target+1] = true
	}
	want := []int{tb.Start(layout.FutureLog)}
	for i := 0; i < tb.Pages(layout.Guide); i++ {
		want = append(want, tb.GuidePage(i))
	}
	for m := 0; m < tb.Months(); m++ {
		want = append(want, tb.MonthlyTimelinePage(m))
	}
	for _, n := range want {
		if !seen[n] {
			t.Errorf("main index has no link to page %d", n)
		}
	}
}

func TestTwoPagesPerDay(t *testing.T) {
	s := layout.ForYear(2026)
	s.PagesPerDay = 2
	g := newGenerator(t)
	tbl, err := layout.New(s)
	if err != nil {
		t.Fatal(err)
	}
	g.Table = tbl

	r, res := generate(t, g)
	if res.Pages != 911 {
		t.Errorf("Pages = %d, want 911", res.Pages)
	}
	if res.Links.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", res.Links.Dropped)
	}

	first := g.Table.DayPage(0, 1) - 1
	cont := first + 1
	if !strings.Contains(r.PageText(cont), "Jan 1") {
		t.Errorf("continuation page text = %q", r.PageText(cont))
	}
	if len(r.OnPage(cont, rendertest.KindPolygon)) != 0 {
		t.Error("continuation page has a footer")
	}
	if len(r.OnPage(first, rendertest.KindPolygon)) == 0 {
		t.Error("first daily page has no footer")
	}
	if got, want := r.Targets(cont), r.Targets(first); !cmp.Equal(got, want) {
		t.Errorf("continuation links = %v, want %v", got, want)
	}
}

func TestLeapYear(t *testing.T) {
	g, err := New(2028)
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Table.DaysInMonth(1); n != 28 {
		t.Fatalf("New(2028) lays out %d February days, want 28", n)
	}
	if g.Table, err = layout.New(layout.ForYear(2028)); err != nil {
		t.Fatal(err)
	}
	r, res := generate(t, g)
	if res.Pages != 547 {
		t.Errorf("Pages = %d, want 547", res.Pages)
	}
	if got := r.PageText(g.Table.DayPage(1, 29) - 1); !strings.Contains(got, "Feb 29") {
		t.Errorf("Feb 29 page text = %q", got)
	}
}

func TestProgress(t *testing.T) {
	g := newGenerator(t)
	var got []layout.Section
	g.Progress = func(s layout.Section, first, last int) {
		if first != g.Table.Start(s) || last != g.Table.End(s) {
			t.Errorf("%s reported [%d, %d]", s, first, last)
		}
		got = append(got, s)
	}
	generate(t, g)
	if diff := cmp.Diff(layout.Sections(), got); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newGenerator(t).Generate(ctx, rendertest.New())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() = %v, want context.Canceled", err)
	}
}

func TestGenerateCanvasError(t *testing.T) {
	boom := errors.New("boom")
	r := rendertest.New()
	r.Fail = boom
	_, err := newGenerator(t).Generate(context.Background(), r)
	if !errors.Is(err, boom) {
		t.Fatalf("Generate() = %v, want %v", err, boom)
	}
	if !strings.Contains(err.Error(), "cover") {
		t.Errorf("error %q does not name the section", err)
	}
}

func TestGenerateRejectsUsedCanvas(t *testing.T) {
	r := rendertest.New()
	r.NewPage()
	if _, err := newGenerator(t).Generate(context.Background(), r); err == nil {
		t.Fatal("Generate() on a non-empty canvas succeeded")
	}
}

func TestGenerateRejectsUnsupportedStructure(t *testing.T) {
	for name, mod := range map[string]func(*layout.Structure){
		"guide":  func(s *layout.Structure) { s.GuidePages = 3 },
		"days":   func(s *layout.Structure) { s.PagesPerDay = 3 },
		"months": func(s *layout.Structure) { s.Months = 6; s.DaysPerMonth = s.DaysPerMonth[:6] },
	} {
		t.Run(name, func(t *testing.T) {
			s := layout.Default()
			mod(&s)
			tb, err := layout.New(s)
			if err != nil {
				t.Skipf("layout rejected the structure: %v", err)
			}
			g := newGenerator(t)
			g.Table = tb
			if _, err := g.Generate(context.Background(), rendertest.New()); err == nil {
				t.Fatal("Generate() succeeded")
			}
		})
	}
}

func TestGuideCopyBalanced(t *testing.T) {
	for _, s := range guideCopy() {
		if !richtext.Balanced(s) {
			t.Errorf("unbalanced emphasis in %q", s)
		}
	}
}

func TestFooterKinds(t *testing.T) {
	for _, k := range FooterKinds() {
		if FooterText(k) == "" {
			t.Errorf("%s has no text", k)
		}
		got, ok := ParseFooterKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseFooterKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if FooterText(FooterNone) != "" {
		t.Error("FooterNone has text")
	}
	if _, ok := ParseFooterKind("nope"); ok {
		t.Error("ParseFooterKind(nope) succeeded")
	}
}
