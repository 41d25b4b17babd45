package planner

import (
	"strconv"
	"strings"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
)

func (g *Generator) cover(c render.Canvas, lb *links.Buffer) {
	p := g.pageAt(c, lb, g.Table.Start(layout.Cover))
	c.Rect(p.n, render.Rect{X1: layout.PageWidth, Y1: layout.PageHeight}, render.StrokeFill(p.theme.Ink, 1))

	const (
		left      = 50
		wordSize  = 90
		wordStep  = 95
		yearSize  = 140
		yearAfter = 130
	)
	titleY := layout.PageHeight * 0.15
	p.lightning(left, titleY+20, 8, p.theme.CoverInk)

	x := float64(left + 130)
	y := titleY
	words := strings.Fields(g.Title)
	for i, w := range words {
		if i > 0 {
			y += wordStep
		}
		p.styled(w, x, y, wordSize, p.theme.CoverInk, render.Regular)
	}
	if len(words) > 0 {
		y += yearAfter
	}
	p.styled(strconv.Itoa(g.Year), x, y, yearSize, p.theme.CoverInk, render.Regular)
}
