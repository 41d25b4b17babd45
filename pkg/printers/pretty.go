// Package printers writes human readable planner output to the terminal.
package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/links"
)

// PrettyPrint writes colored output to Out, or to color.Output when Out is
// nil.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints a title followed by a faint "- n nouns".
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	if count != 1 {
		noun += "s"
	}
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

// Warn reports a problem that did not stop the command on color.Error.
func Warn(err error) {
	y := color.New(color.FgYellow)
	_, _ = y.Fprintf(color.Error, "warning: %v\n", err)
}

// Summary describes a written planner.
func (pp *PrettyPrint) Summary(path string, pages int, st links.Stats) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Fprintf(pp.out(), "Generated %d pages", pages)
	_, _ = fmt.Fprintf(pp.out(), " -> %s\n", path)
	_, _ = f.Fprintf(pp.out(), "  %d links", st.Created)
	if st.Dropped > 0 {
		y := color.New(color.FgYellow)
		_, _ = y.Fprintf(pp.out(), ", %d dropped", st.Dropped)
	}
	_, _ = fmt.Fprintln(pp.out())
}
