package generate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/progress"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/render/rendertest"
)

func testConfig(output string) *config.Config {
	return &config.Config{
		Output:      output,
		Year:        2026,
		Title:       "Bullet Journal",
		PagesPerDay: 1,
	}
}

func TestGenerateRecorder(t *testing.T) {
	color.NoColor = true
	var out, lines bytes.Buffer
	r := rendertest.New()
	g := &Generate{
		Config:   testConfig("planner.pdf"),
		Canvas:   r,
		Reporter: &progress.LineReporter{Out: &lines},
		Out:      &out,
	}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if diff := cmp.Diff([]string{"planner.pdf"}, r.Saved); diff != "" {
		t.Errorf("Saved (-want +got):\n%s", diff)
	}
	if r.PageCount() != 546 {
		t.Errorf("PageCount() = %d", r.PageCount())
	}
	if !strings.HasPrefix(out.String(), "Generated 546 pages -> planner.pdf\n") {
		t.Errorf("summary = %q", out.String())
	}
	if !strings.Contains(lines.String(), "[511-546] collections") {
		t.Errorf("progress = %q", lines.String())
	}
}

func TestGeneratePDF(t *testing.T) {
	if testing.Short() {
		t.Skip("writes a full planner")
	}
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "out", "planner.pdf")
	c := testConfig(path)
	c.Fonts = render.FontPaths{Regular: "/does/not/exist.ttf"}

	var warnings []error
	g := &Generate{
		Config: c,
		Warn:   func(err error) { warnings = append(warnings, err) },
		Out:    &bytes.Buffer{},
	}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], render.ErrNoFont) {
		t.Errorf("warnings = %v", warnings)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	c := testConfig("x.pdf")
	c.PagesPerDay = 5
	r := rendertest.New()
	if err := (&Generate{Config: c, Canvas: r}).Do(context.Background()); err == nil {
		t.Fatal("Do() succeeded")
	}
	if r.PageCount() != 0 {
		t.Errorf("drew %d pages before failing", r.PageCount())
	}
}

func TestGenerateCanvasFailure(t *testing.T) {
	boom := errors.New("boom")
	r := rendertest.New()
	r.Fail = boom
	err := (&Generate{Config: testConfig("x.pdf"), Canvas: r}).Do(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Do() = %v, want %v", err, boom)
	}
	if len(r.Saved) != 0 {
		t.Errorf("saved %v after a failure", r.Saved)
	}
}
