// Package generate renders the configured planner to a PDF file.
package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/progress"
	"tableflip.dev/planner/pkg/render"
)

// Generate writes the planner described by Config to Config.Output.
type Generate struct {
	Config   *config.Config
	Reporter progress.Reporter
	// Canvas is drawn on instead of a new PDF when set.
	Canvas render.Canvas
	// Warn receives non-fatal problems such as a missing font file.
	Warn func(error)
	Out  io.Writer
}

func (g *Generate) Do(ctx context.Context) error {
	if g.Config == nil {
		return fmt.Errorf("generate: no configuration")
	}
	if err := g.Config.Validate(); err != nil {
		return err
	}
	gen, err := g.Config.Generator()
	if err != nil {
		return err
	}

	warn := g.Warn
	if warn == nil {
		warn = printers.Warn
	}
	canvas := g.Canvas
	if canvas == nil {
		fonts := render.LoadFonts(g.Config.Fonts, warn)
		canvas = render.NewPDF(fonts,
			render.WithPageSize(layout.PageWidth, layout.PageHeight),
			render.WithTitle(fmt.Sprintf("%s %d", g.Config.Title, g.Config.Year)),
			render.WithAuthor(g.Config.Author),
			render.WithCompression(g.Config.Compress),
		)
	}

	rep := g.Reporter
	if rep == nil {
		rep = progress.Discard{}
	}
	rep.Start(gen.Table.TotalPages())
	gen.Progress = func(s layout.Section, first, last int) {
		rep.Update(last, fmt.Sprintf("[%d-%d] %s", first, last, s))
	}
	res, err := gen.Generate(ctx, canvas)
	rep.Finish()
	if err != nil {
		return err
	}

	if err := canvas.Save(g.Config.Output); err != nil {
		return fmt.Errorf("generate: saving %s: %w", g.Config.Output, err)
	}

	out := g.Out
	if out == nil {
		out = color.Output
	}
	pp := &printers.PrettyPrint{Out: out}
	pp.Summary(g.Config.Output, res.Pages, res.Links)
	return nil
}
