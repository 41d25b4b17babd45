// Package footer prints the explanatory page copy for reading on a terminal.
package footer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/richtext"
)

// Copy prints footer copy with emphasized words in italics.
type Copy struct {
	// Kinds to print, every footer when empty.
	Kinds []planner.FooterKind
	Width int
	Out   io.Writer
}

func (c *Copy) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	width := c.Width
	if width <= 0 {
		width = 80
	}
	kinds := c.Kinds
	if len(kinds) == 0 {
		kinds = planner.FooterKinds()
	}

	pp := &printers.PrettyPrint{Out: out}
	for _, k := range kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := planner.FooterText(k)
		if text == "" {
			return fmt.Errorf("copy: no text for %s", k)
		}
		pp.Title(k.String())
		_, _ = fmt.Fprintln(out, wordwrap.String(Styled(text), width))
		pp.NewLine()
	}
	return nil
}

// Styled renders emphasis markup with terminal italics.
func Styled(text string) string {
	italic := color.New(color.Italic)
	tokens := richtext.Tokenize(text)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		if t.Emphasis {
			words[i] = italic.Sprint(t.Word)
		} else {
			words[i] = t.Word
		}
	}
	return strings.Join(words, " ")
}
