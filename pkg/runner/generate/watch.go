package generate

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/watch"
)

// Watch regenerates the planner whenever the config file or a font file
// changes, until the context is cancelled.
type Watch struct {
	// Load rereads the settings.
	Load func() (*config.Config, error)
	// Run draws one planner.
	Run  func(ctx context.Context, c *config.Config) error
	Warn func(error)
	Out  io.Writer
}

func (w *Watch) Do(ctx context.Context) error {
	out := w.Out
	if out == nil {
		out = color.Output
	}
	warn := w.Warn
	if warn == nil {
		warn = printers.Warn
	}

	c, err := w.Load()
	if err != nil {
		return err
	}
	if err := w.Run(ctx, c); err != nil {
		warn(err)
	}

	paths := WatchedPaths(c)
	if len(paths) == 0 {
		return fmt.Errorf("generate: nothing to watch, no config file or font files are set")
	}
	pp := &printers.PrettyPrint{Out: out}
	for {
		wctx, cancel := context.WithCancel(ctx)
		events, err := watch.Files(wctx, paths...)
		if err != nil {
			cancel()
			return err
		}
		pp.TitleWithCount("Watching", len(paths), "file")
		next := w.follow(ctx, events, paths, out, warn)
		cancel()
		if next == nil {
			return nil
		}
		paths = next
	}
}

// follow regenerates on every event. It returns nil once ctx is done, or
// the new file set when a reload points at different files.
func (w *Watch) follow(ctx context.Context, events <-chan watch.Event, paths []string, out io.Writer, warn func(error)) []string {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s changed\n", ev.Path)
			c, err := w.Load()
			if err != nil {
				warn(err)
				continue
			}
			if err := w.Run(ctx, c); err != nil {
				warn(err)
			}
			if next := WatchedPaths(c); len(next) > 0 && !slices.Equal(next, paths) {
				return next
			}
		}
	}
}

// WatchedPaths lists the files whose changes alter the output of c.
func WatchedPaths(c *config.Config) []string {
	var out []string
	for _, p := range []string{c.File, c.Fonts.Regular, c.Fonts.Italic} {
		if p == "" {
			continue
		}
		if expanded, err := homedir.Expand(p); err == nil {
			p = expanded
		}
		out = append(out, p)
	}
	return out
}
