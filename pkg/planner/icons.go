package planner

import "tableflip.dev/planner/pkg/render"

// lightningShape is the bolt outline on a 16x26 grid.
var lightningShape = []render.Point{
	{X: 8, Y: 0}, {X: 15, Y: 0}, {X: 9, Y: 10}, {X: 16, Y: 10},
	{X: 0, Y: 26}, {X: 5, Y: 13}, {X: 0, Y: 13},
}

func (p *page) lightning(x, y, scale float64, c render.Color) {
	pts := make([]render.Point, len(lightningShape))
	for i, pt := range lightningShape {
		pts[i] = render.Point{X: x + pt.X*scale, Y: y + pt.Y*scale}
	}
	p.c.Polygon(p.n, pts, render.Fill(c))
}

// arrowRight draws a shaft and chevron pointing right; x is the tail, y the
// vertical center.
func (p *page) arrowRight(x, y, size float64, c render.Color) {
	shaft, head, w := size*1.2, size*0.6, size*0.12
	tip := x + shaft
	p.line(x, y, tip-head*0.3, y, c, w)
	p.line(tip, y, tip-head, y-head*0.7, c, w)
	p.line(tip, y, tip-head, y+head*0.7, c, w)
}

// arrowLeft mirrors arrowRight; x is the tip.
func (p *page) arrowLeft(x, y, size float64, c render.Color) {
	shaft, head, w := size*1.2, size*0.6, size*0.12
	p.line(x+shaft, y, x+head*0.3, y, c, w)
	p.line(x, y, x+head, y-head*0.7, c, w)
	p.line(x, y, x+head, y+head*0.7, c, w)
}

// Bullet symbols. x is the left edge of the symbol, y its vertical center.

func (p *page) noteDash(x, y float64) {
	p.line(x-2, y, x+12, y, p.theme.Ink, 2)
}

func (p *page) actionDot(x, y float64) {
	const r = 4
	p.c.Circle(p.n, render.Point{X: x + r, Y: y}, r, render.StrokeFill(p.theme.Ink, 1))
}

func (p *page) moodLines(x, y float64) {
	for _, off := range []float64{-4, 4} {
		p.line(x-2, y+off, x+12, y+off, p.theme.Ink, 1.8)
	}
}

func (p *page) eventRing(x, y float64) {
	const r = 5
	p.c.Circle(p.n, render.Point{X: x + r, Y: y}, r, render.Stroke(p.theme.Ink, 1.8))
}

func (p *page) completeCross(x, y float64) {
	const s = 8
	p.line(x, y-s/2, x+s, y+s/2, p.theme.Ink, 2)
	p.line(x, y+s/2, x+s, y-s/2, p.theme.Ink, 2)
}

func (p *page) migratedChevron(x, y float64) {
	const s = 8
	p.line(x, y-s/2, x+s, y, p.theme.Ink, 2)
	p.line(x, y+s/2, x+s, y, p.theme.Ink, 2)
}

// strike draws the line through an irrelevant action, from its dot to the
// end of its label.
func (p *page) strike(x0, x1, y float64) {
	p.line(x0, y, x1, y, p.theme.Ink, 1)
}
