package layout

// Page geometry of the target tablet, in points.
const (
	PageWidth     = 954
	PageHeight    = 1696
	ToolbarHeight = 130
	MarginSide    = 25
	MarginBottom  = 100

	ContentLeft   = MarginSide
	ContentRight  = PageWidth - MarginSide
	ContentTop    = ToolbarHeight
	ContentBottom = PageHeight - MarginBottom
	ContentWidth  = ContentRight - ContentLeft
	ContentHeight = ContentBottom - ContentTop
)
