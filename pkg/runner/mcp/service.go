// Package mcp exposes the planner layout and generator over the Model
// Context Protocol.
package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/progress"
	"tableflip.dev/planner/pkg/richtext"
	"tableflip.dev/planner/pkg/runner/generate"
	runlayout "tableflip.dev/planner/pkg/runner/layout"
	"tableflip.dev/planner/pkg/timeutil"
)

// Service answers planner questions for the MCP server.
type Service struct {
	Config *config.Config
}

var (
	// ErrUnknownKind is returned for a page kind FindPage does not know.
	ErrUnknownKind = errors.New("unknown page kind")
	// ErrOutputPath is returned for a requested output outside the
	// configured output directory.
	ErrOutputPath = errors.New("output must be a relative .pdf path inside the output directory")
)

// Page kinds understood by FindPage.
const (
	KindDay             = "day"
	KindMonthTimeline   = "month-timeline"
	KindMonthAction     = "month-action"
	KindWeekAction      = "week-action"
	KindWeekReflection  = "week-reflection"
	KindCollection      = "collection"
	KindCollectionIndex = "collection-index"
	KindGuide           = "guide"
	KindFutureLog       = "future-log"
)

// PageKinds lists every kind FindPage accepts.
func PageKinds() []string {
	return []string{
		KindDay, KindMonthTimeline, KindMonthAction,
		KindWeekAction, KindWeekReflection,
		KindCollection, KindCollectionIndex,
		KindGuide, KindFutureLog,
	}
}

// PageQuery locates one page. Month, Day, Week and Number are 1-based; zero
// Year and PagesPerDay take the configured values.
type PageQuery struct {
	Kind        string `json:"kind"`
	Year        int    `json:"year,omitempty"`
	PagesPerDay int    `json:"pagesPerDay,omitempty"`
	Month       int    `json:"month,omitempty"`
	Day         int    `json:"day,omitempty"`
	Week        int    `json:"week,omitempty"`
	Number      int    `json:"number,omitempty"`
}

// PageAnswer is the located page.
type PageAnswer struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Page  int    `json:"page"`
	Total int    `json:"total"`
}

// GenerateOptions overrides configured settings for one generation. Output
// is resolved against the directory of the configured output.
type GenerateOptions struct {
	Year        int    `json:"year,omitempty"`
	PagesPerDay int    `json:"pagesPerDay,omitempty"`
	Output      string `json:"output,omitempty"`
}

// NewService builds a service around resolved settings.
func NewService(c *config.Config) *Service {
	return &Service{Config: c}
}

func (s *Service) settings(year, pagesPerDay int) (*config.Config, error) {
	if s.Config == nil {
		return nil, errors.New("configuration is not loaded")
	}
	c := *s.Config
	if year != 0 {
		c.Year = year
	}
	if pagesPerDay != 0 {
		c.PagesPerDay = pagesPerDay
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) table(year, pagesPerDay int) (*config.Config, *layout.Table, error) {
	c, err := s.settings(year, pagesPerDay)
	if err != nil {
		return nil, nil, err
	}
	t, err := layout.New(c.Structure())
	if err != nil {
		return nil, nil, err
	}
	return c, t, nil
}

// Layout returns the section table.
func (s *Service) Layout(_ context.Context, year, pagesPerDay int) (runlayout.Report, error) {
	c, t, err := s.table(year, pagesPerDay)
	if err != nil {
		return runlayout.Report{}, err
	}
	return runlayout.Report{Year: c.Year, Total: t.TotalPages(), Sections: runlayout.Rows(t)}, nil
}

// FindPage returns the 1-based page number q refers to.
func (s *Service) FindPage(_ context.Context, q PageQuery) (PageAnswer, error) {
	_, t, err := s.table(q.Year, q.PagesPerDay)
	if err != nil {
		return PageAnswer{}, err
	}
	kind := strings.ToLower(strings.TrimSpace(q.Kind))
	ans := PageAnswer{Kind: kind, Total: t.TotalPages()}

	inRange := func(what string, n, limit int) error {
		if n < 1 || n > limit {
			return fmt.Errorf("%s %d out of range 1-%d", what, n, limit)
		}
		return nil
	}
	month := func() error { return inRange("month", q.Month, t.Months()) }

	switch kind {
	case KindDay:
		if err := month(); err != nil {
			return ans, err
		}
		if err := inRange("day", q.Day, t.DaysInMonth(q.Month-1)); err != nil {
			return ans, err
		}
		ans.Page = t.DayPage(q.Month-1, q.Day)
		ans.Label = timeutil.DayLabel(q.Month-1, q.Day)
	case KindMonthTimeline, KindMonthAction:
		if err := month(); err != nil {
			return ans, err
		}
		ans.Page = t.MonthlyTimelinePage(q.Month - 1)
		ans.Label = timeutil.MonthName(q.Month-1) + " timeline"
		if kind == KindMonthAction {
			ans.Page = t.MonthlyActionPage(q.Month - 1)
			ans.Label = timeutil.MonthName(q.Month-1) + " action plan"
		}
	case KindWeekAction, KindWeekReflection:
		if err := inRange("week", q.Week, t.Weeks()); err != nil {
			return ans, err
		}
		ans.Page = t.WeeklyActionPage(q.Week - 1)
		ans.Label = fmt.Sprintf("week %d action plan", q.Week)
		if kind == KindWeekReflection {
			ans.Page = t.WeeklyReflectionPage(q.Week - 1)
			ans.Label = fmt.Sprintf("week %d reflection", q.Week)
		}
	case KindCollection:
		if err := inRange("collection", q.Number, t.CollectionCount()); err != nil {
			return ans, err
		}
		ans.Page = t.CollectionPage(q.Number - 1)
		ans.Label = fmt.Sprintf("collection %d", q.Number)
	case KindCollectionIndex:
		if err := inRange("collection index", q.Number, t.Pages(layout.CollectionIndexes)); err != nil {
			return ans, err
		}
		ans.Page = t.CollectionIndexPage(q.Number - 1)
		ans.Label = fmt.Sprintf("collection index %d", q.Number)
	case KindGuide:
		if err := inRange("guide page", q.Number, t.Pages(layout.Guide)); err != nil {
			return ans, err
		}
		ans.Page = t.GuidePage(q.Number - 1)
		ans.Label = fmt.Sprintf("guide page %d", q.Number)
	case KindFutureLog:
		if err := inRange("future log page", q.Number, t.Pages(layout.FutureLog)); err != nil {
			return ans, err
		}
		ans.Page = t.FutureLogPage(q.Number - 1)
		ans.Label = fmt.Sprintf("future log page %d", q.Number)
	default:
		return ans, fmt.Errorf("%w %q, one of: %s", ErrUnknownKind, q.Kind, strings.Join(PageKinds(), ", "))
	}
	return ans, nil
}

// Copy returns the footer copy of kind without emphasis markup.
func (s *Service) Copy(kind string) (string, error) {
	k, ok := planner.ParseFooterKind(kind)
	if !ok {
		names := make([]string, 0, len(planner.FooterKinds()))
		for _, k := range planner.FooterKinds() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		return "", fmt.Errorf("unknown footer %q, one of: %s", kind, strings.Join(names, ", "))
	}
	return richtext.Plain(planner.FooterText(k)), nil
}

// Generate writes a planner and returns its summary line.
func (s *Service) Generate(ctx context.Context, o GenerateOptions) (string, error) {
	c, err := s.settings(o.Year, o.PagesPerDay)
	if err != nil {
		return "", err
	}
	if o.Output != "" {
		if c.Output, err = outputPath(c.Output, o.Output); err != nil {
			return "", err
		}
	}

	var out bytes.Buffer
	var warnings []string
	g := generate.Generate{
		Config:   c,
		Reporter: progress.Discard{},
		Warn:     func(err error) { warnings = append(warnings, err.Error()) },
		Out:      &out,
	}
	if err := g.Do(ctx); err != nil {
		return "", err
	}
	summary := strings.TrimSpace(out.String())
	for _, w := range warnings {
		summary += "\nwarning: " + w
	}
	return summary, nil
}

// outputPath places requested next to configured. Absolute paths, paths
// leaving the directory and files other than PDFs are refused.
func outputPath(configured, requested string) (string, error) {
	dir := filepath.Dir(configured)
	if !filepath.IsLocal(requested) || !strings.EqualFold(filepath.Ext(requested), ".pdf") {
		return "", fmt.Errorf("%w: %q (directory %s)", ErrOutputPath, requested, dir)
	}
	return filepath.Join(dir, requested), nil
}
