package planner

import (
	"fmt"
	"strconv"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/timeutil"
)

// weekStarts is the first week number listed next to each month on the main
// index.
var weekStarts = []int{1, 6, 10, 14, 19, 23, 27, 32, 36, 40, 45, 49}

// indexLetter names the indexes: A main, B year, C onwards collections.
func indexLetter(i int) string {
	return string(rune('A' + i))
}

func (g *Generator) mainIndex(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	p := g.pageAt(c, lb, t.Start(layout.MainIndex))
	p.text("Index "+indexLetter(0), layout.ContentLeft, layout.ContentTop+10, sizeTitle)

	guide := []navItem{
		{"Bullet Journal Guide", t.GuidePage(0)},
		{"Set up logs", t.GuidePage(1)},
		{"The Practice Overview", t.GuidePage(2)},
		{"How to reflect", t.GuidePage(3)},
		{"Intention", t.GuidePage(4)},
		{"Goals", t.GuidePage(5)},
		{"Future log", t.Start(layout.FutureLog)},
	}
	y := float64(layout.ContentTop + 80)
	const rowHeight = 52
	for _, item := range guide {
		p.navLink(item.Text, item.Dest, layout.ContentLeft, y, sizeBody, false)
		arrowX := float64(layout.ContentRight - 25)
		p.arrowRight(arrowX, y+sizeBody*0.65, arrowLarge, p.theme.Ink)
		p.link(arrowX-10, y-5, layout.ContentRight, y+sizeBody+5, item.Dest)
		p.line(layout.ContentLeft, y+40, layout.ContentRight, y+40, p.theme.Rule, 0.5)
		y += rowHeight
	}
	y += 35

	const monthColWidth = 180
	weekCol := float64(layout.ContentLeft + monthColWidth + 50)
	p.text("Monthly logs", layout.ContentLeft, y, sizeBody)
	p.text("Weekly logs", weekCol, y, sizeBody)
	y += 55

	monthRow := float64(int(layout.ContentBottom-y-20) / t.Months())
	const weekStep = 95
	for m := 0; m < t.Months(); m++ {
		textY := y + (monthRow-sizeSmall)/2 - 10
		p.text(timeutil.MonthName(m), layout.ContentLeft, textY, sizeSmall)
		p.arrowRight(layout.ContentLeft+120, textY+sizeSmall*0.65, arrowSmall, p.theme.Ink)
		p.link(layout.ContentLeft-5, textY-5, monthColWidth, textY+sizeSmall+5, t.MonthlyTimelinePage(m))

		sepX := weekCol - 25
		p.line(sepX, y, sepX, y+monthRow-12, p.theme.Rule, 0.5)

		first, last := weekRange(m, t.Weeks())
		for i, w := 0, first; w <= last; i, w = i+1, w+1 {
			wx := weekCol + float64(i*weekStep)
			p.text(strconv.Itoa(w), wx, textY, sizeSmall)
			p.arrowRight(wx+30, textY+sizeSmall*0.65, arrowSmall, p.theme.Ink)
			p.link(wx-5, textY-5, wx+weekStep-5, textY+sizeSmall+5, t.WeeklyActionPage(w-1))
		}

		p.rule(y+monthRow-12, p.theme.Rule)
		y += monthRow
	}
}

// weekRange returns the 1-based weeks listed for a month, clipped to weeks.
func weekRange(month, weeks int) (first, last int) {
	first = weekStarts[month]
	last = weeks
	if month+1 < len(weekStarts) {
		last = weekStarts[month+1] - 1
	}
	if last > weeks {
		last = weeks
	}
	return first, last
}

func (g *Generator) yearIndex(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	p := g.pageAt(c, lb, t.Start(layout.YearIndex))
	p.text("Index "+indexLetter(1), layout.ContentLeft, layout.ContentTop+10, sizeTitle)
	p.text("Daily logs", layout.ContentLeft, layout.ContentTop+75, sizeBody)

	y := float64(layout.ContentTop + 130)
	block := float64(int(layout.ContentBottom-y-60) / t.Months())

	const (
		perRow   = 16
		dayCol   = layout.ContentLeft + 115
		dayWidth = layout.ContentRight - dayCol - 20
	)
	spacing := float64(dayWidth) / perRow

	for m := 0; m < t.Months(); m++ {
		row1 := y + 8
		row2 := y + block/2 + 2
		p.text(timeutil.MonthName(m), layout.ContentLeft, row1, sizeSmall)

		// Click areas of the two rows must not overlap.
		pad := min(8, (row2-row1-sizeTiny)/2-1)

		for day := 1; day <= t.DaysInMonth(m); day++ {
			rowY, col := row1, day-1
			if day > perRow {
				rowY, col = row2, day-perRow-1
			}
			left := dayCol + float64(col)*spacing
			label := strconv.Itoa(day)
			p.text(label, left+(spacing-p.width(label, sizeTiny))/2, rowY, sizeTiny)
			p.link(left, rowY-pad, left+spacing, rowY+sizeTiny+pad, t.DayPage(m, day))
		}

		p.rule(y+block-8, p.theme.Rule)
		y += block
	}

	p.bottomNav(navItem{"Index", t.Start(layout.MainIndex)})
}

func (g *Generator) collectionIndexes(c render.Canvas, lb *links.Buffer) {
	t := g.Table
	n := t.Pages(layout.CollectionIndexes)
	for i := 0; i < n; i++ {
		g.collectionIndex(g.pageAt(c, lb, t.CollectionIndexPage(i)), i)
	}
}

func (g *Generator) collectionIndex(p *page, index int) {
	t := g.Table
	p.topNav(navItem{"Index", t.Start(layout.MainIndex)}, nil)
	p.text(fmt.Sprintf("Index %s", indexLetter(index+2)), layout.ContentLeft, layout.ContentTop+50, sizeTitle)

	const spacing = 60
	top := float64(layout.ContentTop + 130)
	rows := t.CollectionsPerIndex()
	for i := 0; i < rows; i++ {
		ly := top + float64(i*spacing)
		p.rule(ly, p.theme.Rule)

		ay := ly + spacing/2
		ax := float64(layout.ContentRight - 22)
		p.arrowRight(ax, ay, arrowLarge, p.theme.Ink)
		p.link(ax-15, ay-15, layout.ContentRight, ay+15, t.CollectionPage(index*rows+i))
	}
	p.rule(top+float64(rows*spacing), p.theme.Rule)
	p.footer(FooterCollectionIndex)
}
