// Package layout prints where each section of the planner lands.
package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/printers"
)

// Layout prints the section offset table of Structure.
type Layout struct {
	Structure layout.Structure
	Year      int
	JSON      bool
	// Calendar adds a month calendar with daily page ranges.
	Calendar bool
	Out      io.Writer
}

// Row is one section in the offset table.
type Row struct {
	Section string `json:"section"`
	First   int    `json:"first"`
	Last    int    `json:"last"`
	Pages   int    `json:"pages"`
}

// Report is the JSON form of the table.
type Report struct {
	Year     int   `json:"year"`
	Total    int   `json:"total"`
	Sections []Row `json:"sections"`
}

// Rows lists every section of t in document order.
func Rows(t *layout.Table) []Row {
	rows := make([]Row, 0, len(layout.Sections()))
	for _, s := range layout.Sections() {
		rows = append(rows, Row{
			Section: s.String(),
			First:   t.Start(s),
			Last:    t.End(s),
			Pages:   t.Pages(s),
		})
	}
	return rows
}

func (l *Layout) Do(ctx context.Context) error {
	out := l.Out
	if out == nil {
		out = color.Output
	}
	t, err := layout.New(l.Structure)
	if err != nil {
		return err
	}

	if l.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(Report{Year: l.Year, Total: t.TotalPages(), Sections: Rows(t)})
	}

	pp := &printers.PrettyPrint{Out: out}
	pp.TitleWithCount(fmt.Sprintf("Planner %d", l.Year), t.TotalPages(), "page")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Section"), bold.Sprint("First"), bold.Sprint("Last"), bold.Sprint("Pages"))
	for _, r := range Rows(t) {
		tbl.AddRow(r.Section, r.First, r.Last, r.Pages)
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(out, tbl)

	if l.Calendar {
		pp.NewLine()
		for m := 0; m < t.Months(); m++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			last := t.DayPage(m, t.DaysInMonth(m)) + t.PagesPerDay() - 1
			pp.PrintMonth(l.Year, time.Month(m+1), t.DailyPageStart(m), last)
		}
	}
	return nil
}
