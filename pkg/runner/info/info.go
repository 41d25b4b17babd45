// Package info reports where settings come from and what they resolve to.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/render"
)

type Info struct {
	Config *config.Config
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load(nil)
		if err != nil {
			return err
		}
	}
	c := n.Config

	file := c.File
	if file == "" {
		file = "none"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config file:", file)
	tbl.AddRow("output:", c.Output)
	tbl.AddRow("year:", c.Year)
	tbl.AddRow("title:", c.Title)
	tbl.AddRow("pages per day:", c.PagesPerDay)
	tbl.AddRow("leap year:", c.LeapYear)
	tbl.AddRow("compress:", c.Compress)
	tbl.AddRow("regular font:", fontState(c.Fonts.Regular))
	tbl.AddRow("italic font:", fontState(c.Fonts.Italic))
	tbl.AddRow("fonts:", fontsSummary(c.Fonts))
	names := make([]string, 0, len(c.Colors))
	for name := range c.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tbl.AddRow("color "+strings.ToLower(name)+":", c.Colors[name])
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

// fontsSummary reports whether pages are set entirely in the configured faces.
func fontsSummary(paths render.FontPaths) string {
	if render.LoadFonts(paths, nil).Degraded() {
		return color.New(color.FgYellow).Sprint("degraded, some text falls back to a core font")
	}
	return "embedded"
}

func fontState(path string) string {
	if path == "" {
		return "core font"
	}
	fonts := render.LoadFonts(render.FontPaths{Regular: path}, nil)
	if fonts.Face(render.Regular).Core {
		return color.New(color.FgYellow).Sprintf("%s (unreadable, falls back to a core font)", path)
	}
	return path
}
