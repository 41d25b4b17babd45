package planner

import (
	"sort"
	"testing"
)

func TestNewTheme(t *testing.T) {
	th, err := NewTheme(map[string]string{"rule": "d9d9d9", "Accent": "#ff0000"})
	if err != nil {
		t.Fatalf("NewTheme() = %v", err)
	}
	if got := th.Rule.Hex(); got != "#d9d9d9" {
		t.Errorf("Rule = %s, want #d9d9d9", got)
	}
	if got := th.Accent.Hex(); got != "#ff0000" {
		t.Errorf("Accent = %s, want #ff0000", got)
	}
	if th.Ink != DefaultTheme().Ink {
		t.Errorf("Ink changed to %s", th.Ink.Hex())
	}
}

func TestNewThemeErrors(t *testing.T) {
	for name, in := range map[string]map[string]string{
		"unknown": {"chartreuse": "#00ff00"},
		"hex":     {"ink": "#zzz"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := NewTheme(in); err == nil {
				t.Fatal("NewTheme() succeeded")
			}
		})
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if len(names) != 7 {
		t.Errorf("ColorNames() = %v", names)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("ColorNames() not sorted: %v", names)
	}
}
