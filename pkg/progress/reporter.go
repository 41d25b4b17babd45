// Package progress reports how far planner generation has got.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter receives page progress while a planner is rendered.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter when out is an interactive terminal
// and a LineReporter otherwise.
func NewReporter(out *os.File) Reporter {
	if os.Getenv("CI") == "" && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return &TerminalReporter{Out: out}
	}
	return &LineReporter{Out: out}
}

// TerminalReporter displays a progress bar.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Drawing pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per update, for logs and pipes.
type LineReporter struct {
	Out   io.Writer
	total int
}

func (r *LineReporter) Start(total int) {
	r.total = total
	_, _ = fmt.Fprintf(r.Out, "Drawing %d pages\n", total)
}

func (r *LineReporter) Update(current int, message string) {
	_, _ = fmt.Fprintf(r.Out, "  [%d/%d] %s\n", current, r.total, message)
}

func (r *LineReporter) Finish() {
	_, _ = fmt.Fprintln(r.Out, "Drawing complete")
}

// Discard ignores every update.
type Discard struct{}

func (Discard) Start(int)          {}
func (Discard) Update(int, string) {}
func (Discard) Finish()            {}
