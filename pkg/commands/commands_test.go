package commands

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommands(t *testing.T) {
	var got []string
	for _, c := range New().Commands() {
		got = append(got, c.Name())
	}
	sort.Strings(got)
	want := []string{"completion", "copy", "generate", "info", "key", "layout", "mcp", "version"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
}

func TestCopyRejectsUnknownKind(t *testing.T) {
	cmd := New()
	cmd.SetArgs([]string{"copy", "shopping-list"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() succeeded")
	}
}

func TestGenerateFlagsBound(t *testing.T) {
	cmd := New()
	gen, _, err := cmd.Find([]string{"generate"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"year", "pages-per-day", "output", "title", "quiet", "watch", "json"} {
		if gen.Flags().Lookup(name) == nil {
			t.Errorf("generate has no --%s flag", name)
		}
	}
}

func TestMCPFlags(t *testing.T) {
	cmd := New()
	m, _, err := cmd.Find([]string{"mcp"})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]string{
		"transport": "stdio",
		"addr":      "127.0.0.1:8080",
		"path":      "/mcp",
		"year":      "0",
	} {
		f := m.Flags().Lookup(name)
		if f == nil {
			t.Errorf("mcp has no --%s flag", name)
			continue
		}
		if f.DefValue != want {
			t.Errorf("--%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}
