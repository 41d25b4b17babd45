// Package richtext lays out short paragraphs with inline emphasis.
//
// Emphasis is marked with paired '|' delimiters: "a |b c| d" renders "b c"
// emphasized. Text is wrapped greedily, one word at a time.
package richtext

import "strings"

// Delimiter opens and closes an emphasis span.
const Delimiter = "|"

// Measurer reports the rendered width of s at the given font size.
type Measurer interface {
	Width(s string, size float64) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(s string, size float64) float64

// Width implements Measurer.
func (f MeasureFunc) Width(s string, size float64) float64 { return f(s, size) }

// Token is a single word and whether it sits inside an emphasis span.
type Token struct {
	Word     string
	Emphasis bool
}

// Run is a token placed at a position. Y is the top of the line.
type Run struct {
	Token
	X, Y  float64
	Width float64
}

// Block is the result of laying out a paragraph.
type Block struct {
	Runs []Run
	// Height is the vertical extent consumed, so the next element can be
	// placed at originY + Height.
	Height float64
}

// Tokenize splits text into words tagged with their emphasis. Spans between
// delimiters alternate plain and emphasized starting with plain; with an odd
// number of delimiters the last span takes the emphasis of its index parity.
// Words from neighbouring spans are never joined, so "|N|otes" yields "N"
// and "otes".
func Tokenize(text string) []Token {
	var out []Token
	for i, span := range strings.Split(text, Delimiter) {
		em := i%2 == 1
		for _, w := range strings.Fields(span) {
			out = append(out, Token{Word: w, Emphasis: em})
		}
	}
	return out
}

// Balanced reports whether every emphasis span in text is closed.
func Balanced(text string) bool {
	return strings.Count(text, Delimiter)%2 == 0
}

// Plain strips the delimiters from text.
func Plain(text string) string {
	return strings.ReplaceAll(text, Delimiter, "")
}

// Params controls a layout pass.
type Params struct {
	X, Y       float64
	FontSize   float64
	MaxWidth   float64
	LineHeight float64
}

// Layout wraps text into lines no wider than p.MaxWidth starting at (p.X, p.Y).
//
// Every word is measured with m regardless of emphasis. A word that would
// cross p.X+p.MaxWidth starts a new line first, including the first word,
// so a word wider than p.MaxWidth always sits alone below a blank line.
func Layout(text string, p Params, m Measurer) Block {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Block{}
	}

	advance := p.FontSize * p.LineHeight
	space := m.Width(" ", p.FontSize)
	limit := p.X + p.MaxWidth

	runs := make([]Run, 0, len(tokens))
	x, y := p.X, p.Y
	for _, tok := range tokens {
		w := m.Width(tok.Word, p.FontSize)
		if x+w > limit {
			x = p.X
			y += advance
		}
		runs = append(runs, Run{Token: tok, X: x, Y: y, Width: w})
		x += w + space
	}
	return Block{Runs: runs, Height: y - p.Y + advance}
}
