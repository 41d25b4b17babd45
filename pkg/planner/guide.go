package planner

import (
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
)

// guidePages are drawn in order onto the guide section.
var guidePages = []func(g *Generator, p *page){
	(*Generator).guideSystem,
	(*Generator).guideSetUpLogs,
	(*Generator).guidePractice,
	(*Generator).guideReflect,
	(*Generator).guideIntention,
	(*Generator).guideGoals,
}

func (g *Generator) guide(c render.Canvas, lb *links.Buffer) {
	for i, draw := range guidePages {
		draw(g, g.pageAt(c, lb, g.Table.GuidePage(i)))
	}
}

// guideHeader draws the back link and title shared by guide pages.
func (g *Generator) guideHeader(p *page, title string) {
	p.topNav(navItem{"Index", g.Table.Start(layout.MainIndex)}, nil)
	p.text(title, layout.ContentLeft, layout.ContentTop+50, sizeHeader)
}

func (g *Generator) guideSystem(p *page) {
	const (
		body = 26
		lh   = 1.5
		wrap = layout.ContentWidth - 40
	)
	g.guideHeader(p, "The Bullet Journal Guide: System")
	y := float64(layout.ContentTop + 100)

	p.text("Description", layout.ContentLeft, y, sizeSubheader)
	y += subheaderSpacing
	y += p.richText(systemDescription, layout.ContentLeft, y, body, wrap, lh) + 20

	p.text("Rapid logging", layout.ContentLeft, y, sizeSubheader)
	y += subheaderSpacing
	y += p.richText(systemRapidLogging, layout.ContentLeft, y, body, wrap, lh) + 15

	const (
		symbolX = layout.ContentLeft + 12
		labelX  = layout.ContentLeft + 45
	)
	center := func(y float64) float64 { return y + body*0.65 }

	bullets := glyph.DefaultBullets()
	symbols := map[glyph.Bullet]func(x, y float64){
		glyph.Note:   p.noteDash,
		glyph.Action: p.actionDot,
		glyph.Mood:   p.moodLines,
		glyph.Event:  p.eventRing,
	}
	for b := glyph.Note; b <= glyph.Event; b++ {
		symbols[b](symbolX, center(y))
		p.text(bullets[b].Caption(), labelX, y, body)
		y += body * lh
	}
	y += 15

	y += p.richText(systemActionStates, layout.ContentLeft, y, body, wrap, lh) + 15

	states := glyph.DefaultStates()
	marks := map[glyph.State]func(x, y float64){
		glyph.Incomplete: p.actionDot,
		glyph.Complete:   p.completeCross,
		glyph.Migrated:   p.migratedChevron,
		glyph.Irrelevant: p.actionDot,
	}
	for s := glyph.Incomplete; s <= glyph.Irrelevant; s++ {
		caption := states[s].Caption()
		marks[s](symbolX, center(y))
		p.text(caption, labelX, y, body)
		if s == glyph.Irrelevant {
			p.strike(symbolX, labelX+p.width(caption, body), center(y))
		}
		y += body * lh
	}
}

func (g *Generator) guideSetUpLogs(p *page) {
	const (
		body  = 22
		small = 19
		lh    = 1.35
		wrap  = layout.ContentWidth - 30
		colW  = (layout.ContentWidth - 40) / 2
		col1  = layout.ContentLeft
		col2  = layout.ContentLeft + colW + 25
	)
	t := g.Table
	g.guideHeader(p, "Set up your logs")
	y := float64(layout.ContentTop + 95)

	section := func(title string, dest int) {
		startX := float64(layout.ContentRight - 110)
		p.text(title, layout.ContentLeft, y, sizeSubheader)
		p.text("Get started", startX, y, small)
		p.arrowRight(layout.ContentRight-15, y+small/2, arrowSmall, p.theme.Ink)
		p.link(startX-5, y-5, layout.ContentRight, y+small+5, dest)
		y += subheaderSpacing
	}
	separator := func() {
		p.rule(y, p.theme.Ink)
		y += 15
	}
	columns := func(h1, h2, t1, t2 string) {
		p.italic(h1, col1, y, body)
		p.italic(h2, col2, y, body)
		y += body * 1.3
		a := p.richText(t1, col1, y, body, colW-10, lh)
		b := p.richText(t2, col2, y, body, colW-10, lh)
		y += max(a, b) + 10
	}

	section("Future log", t.Start(layout.FutureLog))
	y += p.richText(setupFuture, layout.ContentLeft, y, body, wrap, lh) + 10
	separator()

	section("Monthly log", t.Start(layout.Monthly))
	y += p.richText(setupMonthly, layout.ContentLeft, y, body, wrap, lh) + 10
	columns("Timeline", "Action Plan", setupTimeline, setupMonthlyAction)
	separator()

	section("Weekly log", t.Start(layout.Weekly))
	columns("Reflection", "Action plan", setupReflection, setupWeeklyAction)
	separator()

	section("Daily log", t.Start(layout.Daily))
	p.richText(setupDaily, layout.ContentLeft, y, body, wrap, lh)
}

func (g *Generator) guidePractice(p *page) {
	const (
		body = 24
		lh   = 1.5
		wrap = layout.ContentWidth - 40
	)
	g.guideHeader(p, "The Practice")
	y := float64(layout.ContentTop + 100)

	y += p.richText(practiceIntro, layout.ContentLeft, y, body, wrap, lh) + 20
	y += p.richText(practiceName, layout.ContentLeft, y, body, wrap, lh) + 25
	y += p.richText(practiceTame, layout.ContentLeft, y, body, wrap, lh) + 25

	for _, step := range tameSteps {
		p.text(step.title, layout.ContentLeft+20, y, body)
		tw := p.width(step.title, body)
		h := p.richText(step.desc, layout.ContentLeft+25+tw, y, body, layout.ContentWidth-65-tw, lh)
		y += max(h, body*lh) + 15
	}
}

func (g *Generator) guideReflect(p *page) {
	const (
		body = 24
		lh   = 1.5
		wrap = layout.ContentWidth - 40
	)
	g.guideHeader(p, "How to reflect")
	y := float64(layout.ContentTop + 100)

	for _, s := range []struct{ title, text string }{
		{"Daily reflection", reflectDaily},
		{"Weekly reflection", reflectWeekly},
		{"Monthly reflection", reflectMonthly},
	} {
		p.text(s.title, layout.ContentLeft, y, sizeSubheader)
		y += subheaderSpacing
		y += p.richText(s.text, layout.ContentLeft, y, body, wrap, lh) + 25
	}
}

func (g *Generator) guideIntention(p *page) {
	g.guideWriting(p, "Intention", FooterIntention)
}

func (g *Generator) guideGoals(p *page) {
	g.guideWriting(p, "Goals", FooterGoals)
}

// guideWriting is a blank dot-grid page for the reader's own words.
func (g *Generator) guideWriting(p *page, title string, footer FooterKind) {
	gridPage{
		Nav:        navItem{"Index", g.Table.Start(layout.MainIndex)},
		Title:      title,
		TitleSize:  sizeHeader,
		GridTop:    gridTopGuide,
		GridBottom: gridBottomGuide,
		Footer:     footer,
	}.draw(p)
}
