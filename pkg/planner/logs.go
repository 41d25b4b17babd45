package planner

import (
	"strconv"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/timeutil"
)

func (g *Generator) indexNav() navItem {
	return navItem{"Index", g.Table.Start(layout.MainIndex)}
}

func (g *Generator) futureLog(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	pages := t.Pages(layout.FutureLog)
	perPage := (t.Months() + pages - 1) / pages
	for i := 0; i < pages; i++ {
		first := i * perPage
		last := min(first+perPage, t.Months())
		g.futureLogPage(g.pageAt(c, lb, t.FutureLogPage(i)), first, last, perPage)
	}
}

// futureLogPage draws months [first, last) stacked in perPage bands.
func (g *Generator) futureLogPage(p *page, first, last, perPage int) {
	gridPage{
		Nav:        g.indexNav(),
		Title:      "Future Log",
		GridTop:    gridTop,
		GridBottom: gridBottom,
		Footer:     FooterFutureLog,
	}.draw(p)

	band := float64(int(layout.ContentHeight-265) / perPage)
	for m := first; m < last; m++ {
		y := gridTop + float64(m-first)*band
		p.text(timeutil.MonthName(m), layout.ContentLeft, y, sizeBody)
		p.rule(y+45, p.theme.Ink)
	}
}

func (g *Generator) monthly(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	for m := 0; m < t.Months(); m++ {
		g.monthlyTimeline(g.pageAt(c, lb, t.MonthlyTimelinePage(m)), m)
		gridPage{
			Nav:        g.indexNav(),
			Title:      timeutil.MonthName(m),
			GridTop:    gridTop,
			GridBottom: gridBottom,
			Footer:     FooterMonthlyAction,
		}.draw(g.pageAt(c, lb, t.MonthlyActionPage(m)))
	}
}

// monthlyTimeline lists every day of the month, each linked to its daily log.
func (g *Generator) monthlyTimeline(p *page, month int) {
	t := g.Table
	gridPage{
		Nav:        g.indexNav(),
		Title:      timeutil.MonthName(month),
		GridTop:    gridTop,
		GridBottom: gridBottom,
		Footer:     FooterMonthlyTimeline,
		BottomNav:  []navItem{{"Year", t.Start(layout.YearIndex)}},
	}.draw(p)

	days := t.DaysInMonth(month)
	row := (layout.ContentHeight - 265) / float64(days)
	for d := 1; d <= days; d++ {
		y := gridTop + float64(d-1)*row + sizeDayNumber/2
		p.text(strconv.Itoa(d), layout.ContentLeft, y, sizeDayNumber)
		p.link(layout.ContentLeft-5, y-5, layout.ContentLeft+35, y+sizeDayNumber+5, t.DayPage(month, d))
	}
}

func (g *Generator) weekly(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	for w := 0; w < t.Weeks(); w++ {
		for _, pg := range []struct {
			n      int
			title  string
			footer FooterKind
		}{
			{t.WeeklyActionPage(w), "Weekly Action plan", FooterWeeklyAction},
			{t.WeeklyReflectionPage(w), "Weekly Reflection", FooterWeeklyReflection},
		} {
			gridPage{
				Nav:        g.indexNav(),
				Title:      pg.title,
				DateRange:  true,
				GridTop:    gridTop,
				GridBottom: gridBottom,
				Footer:     pg.footer,
			}.draw(g.pageAt(c, lb, pg.n))
		}
	}
}

func (g *Generator) daily(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	back := navItem{"Index", t.Start(layout.YearIndex)}
	for m := 0; m < t.Months(); m++ {
		month := &navItem{timeutil.MonthName(m), t.MonthlyTimelinePage(m)}
		for d := 1; d <= t.DaysInMonth(m); d++ {
			n := t.DayPage(m, d)
			day := gridPage{
				Nav:        back,
				NavRight:   month,
				Title:      timeutil.DayLabel(m, d),
				TitleY:     70,
				GridTop:    gridTopDaily,
				GridBottom: gridBottom,
				Footer:     FooterDailyLog,
			}
			day.draw(g.pageAt(c, lb, n))

			// Later pages of the same day keep the header and give the
			// footer's space to the grid.
			for extra := 1; extra < t.PagesPerDay(); extra++ {
				day.GridBottom = gridBottomBare
				day.Footer = FooterNone
				day.draw(g.pageAt(c, lb, n+extra))
			}
		}
	}
}

func (g *Generator) collections(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	per := t.Pages(layout.Collections) / max(t.CollectionCount(), 1)
	for i := 0; i < t.CollectionCount(); i++ {
		back := navItem{"Index", t.CollectionIndexPage(t.CollectionIndexOf(i))}
		for k := 0; k < per; k++ {
			gridPage{
				Nav:        back,
				GridTop:    gridTopCollected,
				GridBottom: gridBottomBare,
			}.draw(g.pageAt(c, lb, t.CollectionPage(i)+k))
		}
	}
}
