package planner

import "tableflip.dev/planner/pkg/layout"

// Vertical bounds of the dot grid shared by log pages.
const (
	gridTop          = layout.ContentTop + 115
	gridBottom       = layout.ContentBottom - 130
	gridBottomBare   = layout.ContentBottom - 30
	gridBottomGuide  = layout.ContentBottom - 160
	gridTopDaily     = layout.ContentTop + 145
	gridTopGuide     = layout.ContentTop + 100
	gridTopCollected = layout.ContentTop + 50
)

// gridPage is the common "navigation, title, dot grid, footer" page.
type gridPage struct {
	Nav      navItem
	NavRight *navItem

	Title     string
	TitleSize float64
	// TitleY is the offset of the title below the top of the content area.
	TitleY float64

	DateRange bool

	GridTop    float64
	GridBottom float64

	Footer    FooterKind
	BottomNav []navItem
}

func (g gridPage) draw(p *page) {
	p.topNav(g.Nav, g.NavRight)
	if g.Title != "" {
		size := g.TitleSize
		if size == 0 {
			size = sizeTitle
		}
		ty := g.TitleY
		if ty == 0 {
			ty = 50
		}
		p.text(g.Title, layout.ContentLeft, layout.ContentTop+ty, size)
	}
	if g.DateRange {
		p.dateRange(layout.ContentRight-220, layout.ContentTop+55, 22)
	}
	p.dotGrid(g.GridTop, g.GridBottom)
	p.footer(g.Footer)
	if len(g.BottomNav) > 0 {
		p.bottomNav(g.BottomNav...)
	}
}
