// Package key provides CLI helpers to display the rapid-logging legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/glyph"
)

// Key prints the bullets and action states drawn on the system guide page.
type Key struct {
	Out io.Writer
}

// Do renders the bullet and state keys.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, "Bullets", glyph.DefaultBullets())
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, "States", glyph.DefaultStates())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one glyph table under heading.
func (k *Key) Key(_ context.Context, out io.Writer, heading string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprintf("%10s", heading), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Caption())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
