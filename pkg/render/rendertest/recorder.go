// Package rendertest provides a Canvas that records drawing calls instead of
// producing a document.
package rendertest

import (
	"strings"

	"tableflip.dev/planner/pkg/render"
)

// Kind names a recorded operation.
type Kind string

const (
	KindText    Kind = "text"
	KindLine    Kind = "line"
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindPolygon Kind = "polygon"
	KindLink    Kind = "link"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   Kind
	Page   int
	Text   string
	Style  render.Style
	Size   float64
	Color  render.Color
	Points []render.Point
	Rect   render.Rect
	Radius float64
	Paint  render.Paint
	Target int
}

// Recorder is an in-memory Canvas. Text is measured as half the font size
// per rune.
type Recorder struct {
	Ops   []Op
	Saved []string
	Fail  error
	pages int
}

var _ render.Canvas = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewPage() int {
	r.pages++
	return r.pages - 1
}

func (r *Recorder) PageCount() int { return r.pages }

func (r *Recorder) Text(page int, at render.Point, s string, style render.Style, size float64, c render.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindText, Page: page, Text: s, Style: style, Size: size, Color: c, Points: []render.Point{at}})
}

func (r *Recorder) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

func (r *Recorder) Line(page int, from, to render.Point, c render.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: KindLine, Page: page, Color: c, Points: []render.Point{from, to}, Paint: render.Stroke(c, width)})
}

func (r *Recorder) Rect(page int, rect render.Rect, p render.Paint) {
	r.Ops = append(r.Ops, Op{Kind: KindRect, Page: page, Rect: rect, Paint: p})
}

func (r *Recorder) Circle(page int, center render.Point, radius float64, p render.Paint) {
	r.Ops = append(r.Ops, Op{Kind: KindCircle, Page: page, Points: []render.Point{center}, Radius: radius, Paint: p})
}

func (r *Recorder) Polygon(page int, pts []render.Point, p render.Paint) {
	r.Ops = append(r.Ops, Op{Kind: KindPolygon, Page: page, Points: append([]render.Point(nil), pts...), Paint: p})
}

func (r *Recorder) Link(page int, rect render.Rect, target int) {
	r.Ops = append(r.Ops, Op{Kind: KindLink, Page: page, Rect: rect, Target: target})
}

func (r *Recorder) Err() error { return r.Fail }

func (r *Recorder) Save(path string) error {
	if r.Fail != nil {
		return r.Fail
	}
	r.Saved = append(r.Saved, path)
	return nil
}

// OnPage returns the operations of one kind recorded for page.
func (r *Recorder) OnPage(page int, kind Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Page == page && op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Count is the number of operations of a kind across all pages.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// PageText joins the text runs of a page with single spaces.
func (r *Recorder) PageText(page int) string {
	var words []string
	for _, op := range r.OnPage(page, KindText) {
		words = append(words, op.Text)
	}
	return strings.Join(words, " ")
}

// Targets lists the link targets of a page in drawing order.
func (r *Recorder) Targets(page int) []int {
	var out []int
	for _, op := range r.OnPage(page, KindLink) {
		out = append(out, op.Target)
	}
	return out
}
