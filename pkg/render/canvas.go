// Package render is the drawing surface the planner pages are emitted onto.
//
// Coordinates are in points with the origin at the top-left corner of the
// page. Pages are addressed by the 0-based index NewPage returns.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/planner/pkg/links"
)

// Color is an RGB color with components in [0, 1].
type Color = colorful.Color

// Rect is an axis-aligned region, top-left origin.
type Rect = links.Rect

// Point is a position on a page.
type Point struct {
	X, Y float64
}

// Style selects the face a text run is set in.
type Style int

const (
	Regular Style = iota
	Italic
)

func (s Style) String() string {
	if s == Italic {
		return "italic"
	}
	return "regular"
}

// Paint describes how a shape is stroked and filled. A nil Stroke or Fill
// skips that part.
type Paint struct {
	Stroke *Color
	Fill   *Color
	Width  float64
}

// Stroke outlines a shape in c with a line of width w.
func Stroke(c Color, w float64) Paint {
	return Paint{Stroke: &c, Width: w}
}

// Fill fills a shape with c.
func Fill(c Color) Paint {
	return Paint{Fill: &c}
}

// StrokeFill outlines and fills a shape in the same color.
func StrokeFill(c Color, w float64) Paint {
	return Paint{Stroke: &c, Fill: &c, Width: w}
}

// Canvas is the document being generated.
type Canvas interface {
	// NewPage appends a blank page and returns its index.
	NewPage() int
	PageCount() int

	// Text places s with its baseline at at.
	Text(page int, at Point, s string, style Style, size float64, c Color)
	// TextWidth is the reference width of s at size.
	TextWidth(s string, size float64) float64

	Line(page int, from, to Point, c Color, width float64)
	Rect(page int, r Rect, p Paint)
	Circle(page int, center Point, radius float64, p Paint)
	// Polygon draws a closed polyline through pts.
	Polygon(page int, pts []Point, p Paint)

	// Link makes r on page jump to the page at index target.
	Link(page int, r Rect, target int)

	// Err reports the first failure of the underlying document, if any.
	Err() error
	Save(path string) error
}
