// Package pdf renders normalized resume documents into paginated PDFs.
// Layout is computed manually: a page cursor flows top to bottom, text
// is measured and word-wrapped against the page width, and page breaks
// are decided line by line. There is no retained layout tree.
package pdf

// Geometry fixes the page dimensions and flow thresholds, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	// Margin is the top/left/right margin.
	Margin float64
	// MinBottomMargin is the floor below which no content may be
	// placed; reaching it forces a page break.
	MinBottomMargin float64
}

// DefaultGeometry returns A4 geometry: 595.28 x 841.89pt, 50pt
// margins, 70pt bottom floor.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       595.28,
		PageHeight:      841.89,
		Margin:          50,
		MinBottomMargin: 70,
	}
}

// Flow constants, in points.
const (
	lineLeading = 5 // advance after a text line (fontSize + this)
	wrapLeading = 2 // advance between wrapped lines of one text run

	sectionBreakThreshold = 100 // remaining space forcing a section onto a new page
	sectionHeadingReserve = 40  // space reserved for a heading plus its rule
	sectionGap            = 20  // gap above a section heading
	sectionRuleGap        = 10  // gap between the rule and the first item

	itemGap       = 10 // gap above a timeline/list item
	itemSpace     = 70 // space required before starting a timeline/list item
	bulletGap     = 3  // gap above a bullet line
	bulletSpace   = 15 // space required before starting a bullet line
	bulletIndent  = 10
	skillsGap     = 8 // gap above a skills category
	skillsSpace   = 20
	paragraphGap  = 5
	skillsPerLine = 5 // skills joined per chunked line
	contactGap    = 20
)

// Font sizes, in points.
const (
	sizeName        = 24
	sizeHeadline    = 14
	sizeSectionHead = 14
	sizeItemTitle   = 12
	sizeSubtitle    = 11
	sizeBody        = 10
)

type color struct{ r, g, b int }

var (
	colorText    = color{0, 0, 0}
	colorHeading = color{51, 51, 51}
	colorMuted   = color{102, 102, 102}
	colorRule    = color{204, 204, 204}
	colorPageNum = color{153, 153, 153}
)
