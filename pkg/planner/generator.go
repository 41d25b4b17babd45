// Package planner draws every page of the bullet-journal planner and records
// the links between them.
package planner

import (
	"context"
	"fmt"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/timeutil"
)

// Generator lays out the planner described by Table.
type Generator struct {
	Table *layout.Table
	Theme Theme
	// Title is set one word per line on the cover.
	Title string
	Year  int
	// Progress, when set, is called after each section is drawn.
	Progress func(s layout.Section, first, last int)
}

// Result summarizes a completed generation.
type Result struct {
	Pages int
	Links links.Stats
}

// New returns a generator for the default common-year structure and theme.
func New(year int) (*Generator, error) {
	t, err := layout.New(layout.Default())
	if err != nil {
		return nil, err
	}
	return &Generator{
		Table: t,
		Theme: DefaultTheme(),
		Title: "Bullet Journal",
		Year:  year,
	}, nil
}

type sectionFunc func(c render.Canvas, lb *links.Buffer)

// Render creates every page on c and draws the sections in document order.
// The returned buffer holds all links, not yet resolved. c must be empty.
func (g *Generator) Render(ctx context.Context, c render.Canvas) (*links.Buffer, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	total := g.Table.TotalPages()
	for i := 0; i < total; i++ {
		c.NewPage()
	}

	sections := map[layout.Section]sectionFunc{
		layout.Cover:             g.cover,
		layout.MainIndex:         g.mainIndex,
		layout.YearIndex:         g.yearIndex,
		layout.CollectionIndexes: g.collectionIndexes,
		layout.Guide:             g.guide,
		layout.FutureLog:         g.futureLog,
		layout.Monthly:           g.monthly,
		layout.Weekly:            g.weekly,
		layout.Daily:             g.daily,
		layout.Collections:       g.collections,
	}

	all := links.New()
	for _, s := range layout.Sections() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lb := links.New()
		sections[s](c, lb)
		if err := c.Err(); err != nil {
			return nil, fmt.Errorf("planner: drawing %s: %w", s, err)
		}
		all.Merge(lb)
		if g.Progress != nil {
			g.Progress(s, g.Table.Start(s), g.Table.End(s))
		}
	}
	return all, nil
}

// Generate renders the planner and resolves its links.
func (g *Generator) Generate(ctx context.Context, c render.Canvas) (Result, error) {
	lb, err := g.Render(ctx, c)
	if err != nil {
		return Result{}, err
	}
	total := g.Table.TotalPages()
	st := lb.Resolve(total, c)
	if err := c.Err(); err != nil {
		return Result{}, fmt.Errorf("planner: resolving links: %w", err)
	}
	return Result{Pages: total, Links: st}, nil
}

func (g *Generator) check(c render.Canvas) error {
	if g.Table == nil {
		return fmt.Errorf("planner: no layout table")
	}
	if n := c.PageCount(); n != 0 {
		return fmt.Errorf("planner: canvas already has %d pages", n)
	}
	s := g.Table.Structure()
	if s.Months != timeutil.MonthsInYear {
		return fmt.Errorf("planner: %d months laid out, pages are written for %d", s.Months, timeutil.MonthsInYear)
	}
	if s.GuidePages != len(guidePages) {
		return fmt.Errorf("planner: %d guide pages laid out, %d are written", s.GuidePages, len(guidePages))
	}
	if s.PagesPerDay > 2 {
		return fmt.Errorf("planner: %d pages per day, at most 2 are supported", s.PagesPerDay)
	}
	return nil
}

// pageAt returns a drawing handle for the 1-based page number n.
func (g *Generator) pageAt(c render.Canvas, lb *links.Buffer, n int) *page {
	return &page{c: c, n: n - 1, links: lb, theme: g.Theme}
}
