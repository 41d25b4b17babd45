package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var black = colorful.Color{}

func TestMissingFontFallsBack(t *testing.T) {
	var warnings []error
	fonts := LoadFonts(FontPaths{
		Regular: filepath.Join(t.TempDir(), "missing-regular.ttf"),
		Italic:  filepath.Join(t.TempDir(), "missing-italic.ttf"),
	}, func(err error) { warnings = append(warnings, err) })

	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if !errors.Is(warnings[0], ErrNoFont) {
		t.Fatalf("expected ErrNoFont, got %v", warnings[0])
	}
	if !fonts.Degraded() {
		t.Fatalf("expected degraded registry")
	}
	if f := fonts.Face(Italic); f.Family != fallbackFamily || f.Style != "I" {
		t.Fatalf("unexpected italic fallback: %+v", f)
	}
}

func TestSaveWithoutPages(t *testing.T) {
	d := NewPDF(LoadFonts(FontPaths{}, nil))
	err := d.Save(filepath.Join(t.TempDir(), "empty.pdf"))
	if !errors.Is(err, ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestDrawAndSave(t *testing.T) {
	d := NewPDF(LoadFonts(FontPaths{}, nil), WithPageSize(300, 400), WithTitle("test"))
	first := d.NewPage()
	second := d.NewPage()
	if first != 0 || second != 1 || d.PageCount() != 2 {
		t.Fatalf("unexpected page indexes %d, %d (count %d)", first, second, d.PageCount())
	}

	d.Text(first, Point{10, 30}, "Index", Regular, 12, black)
	d.Text(second, Point{10, 30}, "Back", Italic, 12, black)
	d.Text(first, Point{10, 60}, "again", Regular, 12, black)
	d.Line(second, Point{0, 0}, Point{100, 100}, black, 0.5)
	d.Rect(first, Rect{X0: 10, Y0: 10, X1: 20, Y1: 20}, Fill(black))
	d.Circle(second, Point{50, 50}, 4, StrokeFill(black, 1))
	d.Polygon(first, []Point{{0, 0}, {10, 0}, {5, 8}}, Fill(black))
	d.Link(second, Rect{X0: 0, Y0: 0, X1: 50, Y1: 20}, first)
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "nested", "out.pdf")
	if err := d.Save(out); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected a non-empty file")
	}
}

func TestOutOfRangePageIsAnError(t *testing.T) {
	d := NewPDF(LoadFonts(FontPaths{}, nil))
	d.NewPage()
	d.Line(3, Point{}, Point{1, 1}, black, 1)
	if err := d.Err(); !errors.Is(err, ErrPageRange) {
		t.Fatalf("expected ErrPageRange, got %v", err)
	}
}

func TestMetricsScaleWithSize(t *testing.T) {
	m := NewMetrics()
	small := m.Width("Journal", 10)
	large := m.Width("Journal", 20)
	if small <= 0 {
		t.Fatalf("expected positive width, got %v", small)
	}
	if diff := large - 2*small; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("width should scale linearly: %v vs %v", small, large)
	}
}

func TestCompression(t *testing.T) {
	const marker = "Uncompressed marker"
	write := func(on bool) []byte {
		t.Helper()
		d := NewPDF(LoadFonts(FontPaths{}, nil), WithCompression(on))
		p := d.NewPage()
		d.Text(p, Point{X: 20, Y: 40}, marker, Regular, 12, black)
		path := filepath.Join(t.TempDir(), "out.pdf")
		if err := d.Save(path); err != nil {
			t.Fatalf("Save() = %v", err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}
	if !bytes.Contains(write(false), []byte(marker)) {
		t.Error("uncompressed content stream does not contain the text")
	}
	if bytes.Contains(write(true), []byte(marker)) {
		t.Error("compressed content stream contains the text verbatim")
	}
}
