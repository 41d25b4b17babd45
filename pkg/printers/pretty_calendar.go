package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints a small calendar of month with Sundays underlined,
// followed by the planner pages its daily logs occupy.
func (pp *PrettyPrint) PrintMonth(year int, month time.Month, firstPage, lastPage int) {
	out := pp.out()
	tf := color.New(color.Bold)

	m := month.String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	d := StartDay(year, month)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(out, strings.Repeat("   ", int(d)))

	plain := color.New()
	sunday := color.New(color.Underline)
	for i := 1; i <= timeutil.DaysIn(year, month); i++ {
		printer := plain
		if d == time.Sunday {
			printer = sunday
		}
		_, _ = printer.Fprintf(out, "%2d", i)
		_, _ = fmt.Fprint(out, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(out, "\n")
	}

	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(out, "pages %d-%d\n\n", firstPage, lastPage)
}

// StartDay is the weekday of the first of month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 1, 0, 0, 0, time.UTC).Weekday()
}
