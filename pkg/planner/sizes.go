package planner

// Font sizes, in points.
const (
	sizeTitle     = 52
	sizeHeader    = 32
	sizeSubheader = 28
	sizeBody      = 32
	sizeNav       = 24
	sizeFooter    = 22
	sizeSmall     = 24
	sizeTiny      = 20
	sizeDayNumber = 26
)

const (
	arrowLarge = 14
	arrowSmall = 10

	subheaderSpacing = 55
	footerLineHeight = 1.4

	dotSpacing = 50
	dotSize    = 1
)
