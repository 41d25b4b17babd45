package planner

import (
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/links"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/richtext"
)

// page draws onto one canvas page and records its links. Text positions are
// given by the top of the line, not the baseline.
type page struct {
	c     render.Canvas
	n     int
	links *links.Buffer
	theme Theme
}

func (p *page) text(s string, x, y, size float64) {
	p.styled(s, x, y, size, p.theme.Ink, render.Regular)
}

func (p *page) italic(s string, x, y, size float64) {
	p.styled(s, x, y, size, p.theme.Ink, render.Italic)
}

func (p *page) styled(s string, x, y, size float64, c render.Color, style render.Style) {
	p.c.Text(p.n, render.Point{X: x, Y: y + size}, s, style, size, c)
}

func (p *page) width(s string, size float64) float64 {
	return p.c.TextWidth(s, size)
}

func (p *page) line(x0, y0, x1, y1 float64, c render.Color, width float64) {
	p.c.Line(p.n, render.Point{X: x0, Y: y0}, render.Point{X: x1, Y: y1}, c, width)
}

// rule draws a thin full-width separator.
func (p *page) rule(y float64, c render.Color) {
	p.line(layout.ContentLeft, y, layout.ContentRight, y, c, 0.5)
}

func (p *page) link(x0, y0, x1, y1 float64, dest int) {
	p.links.Add(p.n, links.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, dest)
}

// richText wraps text at x, y and returns the height it used.
func (p *page) richText(text string, x, y, size, maxWidth, lineHeight float64) float64 {
	b := richtext.Layout(text, richtext.Params{
		X:          x,
		Y:          y,
		FontSize:   size,
		MaxWidth:   maxWidth,
		LineHeight: lineHeight,
	}, richtext.MeasureFunc(p.c.TextWidth))
	for _, r := range b.Runs {
		style := render.Regular
		if r.Emphasis {
			style = render.Italic
		}
		p.styled(r.Word, r.X, r.Y, size, p.theme.Ink, style)
	}
	return b.Height
}

// dotGrid fills the content width between top and bottom with square dots.
func (p *page) dotGrid(top, bottom float64) {
	fill := render.Fill(p.theme.Dot)
	for y := top; y < bottom; y += dotSpacing {
		for x := float64(layout.ContentLeft); x < layout.ContentRight; x += dotSpacing {
			p.c.Rect(p.n, render.Rect{X0: x, Y0: y, X1: x + dotSize, Y1: y + dotSize}, fill)
		}
	}
}

// footer draws the separator, lightning icon and explanatory text that close
// most log pages.
func (p *page) footer(kind FooterKind) {
	text := FooterText(kind)
	if text == "" {
		return
	}
	y := float64(layout.ContentBottom - 125)
	p.rule(y-15, p.theme.Ink)
	p.lightning(layout.ContentLeft, y+5, 1.8, p.theme.Ink)
	p.richText(text, layout.ContentLeft+45, y, sizeFooter, layout.ContentWidth-75, footerLineHeight)
}

// navLink draws a text link, optionally preceded by a left arrow.
func (p *page) navLink(text string, dest int, x, y, size float64, withArrow bool) {
	textX := x
	if withArrow {
		arrow := size * 0.5
		p.arrowLeft(x, y+size*0.65, arrow, p.theme.Ink)
		textX = x + arrow*1.5 + 8
	}
	p.text(text, textX, y, size)
	p.link(x-5, y-2, textX+p.width(text, size)+10, y+size+6, dest)
}

type navItem struct {
	Text string
	Dest int
}

// topNav places the back link on the left and an optional second link on the
// right of the toolbar row.
func (p *page) topNav(left navItem, right *navItem) {
	y := float64(layout.ContentTop + 5)
	p.navLink(left.Text, left.Dest, layout.ContentLeft, y, sizeNav, true)
	if right != nil {
		w := p.width(right.Text, sizeNav)
		p.navLink(right.Text, right.Dest, layout.ContentRight-w-40, y, sizeNav, true)
	}
}

// bottomNav right-aligns plain links along the bottom edge.
func (p *page) bottomNav(items ...navItem) {
	y := float64(layout.PageHeight - 50)
	x := float64(layout.ContentRight - 10)
	for i := len(items) - 1; i >= 0; i-- {
		x -= p.width(items[i].Text, sizeNav) + 30
		p.navLink(items[i].Text, items[i].Dest, x, y, sizeNav, false)
	}
}

// dateRange draws a "__/__ to __/__" field.
func (p *page) dateRange(x, y, size float64) {
	const (
		blank = 25
		slash = 8
	)
	lineY := y + size - 2
	field := func(x float64) float64 {
		p.line(x, lineY, x+blank, lineY, p.theme.Muted, 0.8)
		x += blank + slash
		p.text("/", x, y, size)
		x += 12
		p.line(x, lineY, x+blank, lineY, p.theme.Muted, 0.8)
		return x + blank
	}
	x = field(x) + 20
	p.italic("to", x, y, size)
	field(x + 30)
}
