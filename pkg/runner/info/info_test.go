package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/render"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv(config.EnvConfigPath, "")
	var buf bytes.Buffer
	i := &Info{
		Out: &buf,
		Config: &config.Config{
			Output:      "out.pdf",
			Year:        2027,
			Title:       "Bullet Journal",
			PagesPerDay: 1,
			Fonts:       render.FontPaths{Regular: "/does/not/exist.ttf"},
			Colors:      map[string]string{"rule": "#cccccc"},
		},
	}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"env var not set",
		"out.pdf",
		"2027",
		"/does/not/exist.ttf (unreadable",
		"core font",
		"color rule:",
		"degraded",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
