package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".planner.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, t.TempDir())
	t.Chdir(t.TempDir())

	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if c.Year != 2026 || c.PagesPerDay != 1 || c.Title != "Bullet Journal" {
		t.Errorf("Load() = %+v", c)
	}
	if c.Output != "output/BulletJournal_rPPM_v2.pdf" {
		t.Errorf("Output = %q", c.Output)
	}
	if c.File != "" {
		t.Errorf("File = %q, want none", c.File)
	}
	if c.LeapYear || !c.Compress {
		t.Errorf("LeapYear = %v, Compress = %v", c.LeapYear, c.Compress)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
year: 2028
pages-per-day: 2
leap-year: true
compress: false
title: Field Notes
fonts:
  regular: /fonts/a.ttf
colors:
  rule: "#cccccc"
`)
	t.Setenv(EnvConfigPath, dir)

	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if c.Year != 2028 || c.PagesPerDay != 2 || c.Title != "Field Notes" || !c.LeapYear || c.Compress {
		t.Errorf("Load() = %+v", c)
	}
	if c.Fonts.Regular != "/fonts/a.ttf" {
		t.Errorf("Fonts.Regular = %q", c.Fonts.Regular)
	}
	if diff := cmp.Diff(map[string]string{"rule": "#cccccc"}, c.Colors); diff != "" {
		t.Errorf("Colors (-want +got):\n%s", diff)
	}
	if filepath.Dir(c.File) != dir {
		t.Errorf("File = %q, want it in %q", c.File, dir)
	}
	if got := c.Structure(); got.PagesPerDay != 2 || got.DaysPerMonth[1] != 29 {
		t.Errorf("Structure() = %+v", got)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, "year: 2028\n"))
	t.Setenv("PLANNER_YEAR", "2030")
	t.Setenv("PLANNER_PAGES_PER_DAY", "2")

	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if c.Year != 2030 || c.PagesPerDay != 2 {
		t.Errorf("Load() = %+v", c)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, `
year: 0
pages-per-day: 3
colors:
  mauve: "#ff00ff"
`))
	_, err := Load(nil)
	if err == nil {
		t.Fatal("Load() succeeded")
	}
	for _, key := range []string{KeyYear, KeyPagesPerDay, KeyColors} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestGenerator(t *testing.T) {
	c := &Config{
		Output:      "out.pdf",
		Year:        2027,
		Title:       "Log",
		PagesPerDay: 2,
		Colors:      map[string]string{"ink": "#112233"},
	}
	g, err := c.Generator()
	if err != nil {
		t.Fatalf("Generator() = %v", err)
	}
	if g.Year != 2027 || g.Title != "Log" {
		t.Errorf("Generator() = %+v", g)
	}
	if g.Table.PagesPerDay() != 2 {
		t.Errorf("PagesPerDay() = %d", g.Table.PagesPerDay())
	}
	if got := g.Theme.Ink.Hex(); got != "#112233" {
		t.Errorf("Ink = %s", got)
	}
}

func TestStructureLeapYearOptIn(t *testing.T) {
	tests := map[string]struct {
		year int
		leap bool
		feb  int
	}{
		"leap year, default":   {2028, false, 28},
		"leap year, opted in":  {2028, true, 29},
		"common year, opt in":  {2027, true, 28},
		"common year, default": {2027, false, 28},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := &Config{Year: tc.year, PagesPerDay: 1, LeapYear: tc.leap}
			if got := c.Structure().DaysPerMonth[1]; got != tc.feb {
				t.Errorf("February has %d days, want %d", got, tc.feb)
			}
		})
	}
}
