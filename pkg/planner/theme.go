package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/planner/pkg/render"
)

// Theme is the palette pages are drawn with.
type Theme struct {
	Ink      render.Color
	Paper    render.Color
	Muted    render.Color
	Rule     render.Color
	Dot      render.Color
	Accent   render.Color
	CoverInk render.Color
}

func gray(v float64) render.Color {
	return colorful.Color{R: v, G: v, B: v}
}

// DefaultTheme is black ink on white paper with light gray rules.
func DefaultTheme() Theme {
	return Theme{
		Ink:      gray(0),
		Paper:    gray(1),
		Muted:    gray(0.5),
		Rule:     gray(0.85),
		Dot:      gray(0),
		Accent:   colorful.Color{R: 1, G: 0.84, B: 0},
		CoverInk: gray(1),
	}
}

func (t *Theme) slots() map[string]*render.Color {
	return map[string]*render.Color{
		"ink":       &t.Ink,
		"paper":     &t.Paper,
		"muted":     &t.Muted,
		"rule":      &t.Rule,
		"dot":       &t.Dot,
		"accent":    &t.Accent,
		"cover-ink": &t.CoverInk,
	}
}

// ColorNames lists the names NewTheme accepts.
func ColorNames() []string {
	t := Theme{}
	var names []string
	for n := range t.slots() {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewTheme returns the default theme with colors replaced by hex values
// keyed by name, for example {"rule": "#d9d9d9"}.
func NewTheme(overrides map[string]string) (Theme, error) {
	t := DefaultTheme()
	slots := t.slots()
	for name, hex := range overrides {
		slot, ok := slots[strings.ToLower(name)]
		if !ok {
			return t, fmt.Errorf("planner: unknown color %q (known: %s)", name, strings.Join(ColorNames(), ", "))
		}
		c, err := colorful.Hex(normalizeHex(hex))
		if err != nil {
			return t, fmt.Errorf("planner: color %s: %w", name, err)
		}
		*slot = c
	}
	return t, nil
}

func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}
