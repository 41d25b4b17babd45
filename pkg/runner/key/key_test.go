package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKey(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := (&Key{Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"Bullets", "States",
		"Notes (things to remember)",
		"Actions (things to do)",
		"Migrated (moved)",
		"Irrelevant",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
