package pdf

import "strings"

// writer owns the page cursor for one document render: the current
// page and vertical position, plus every pagination decision. One
// writer is created per Generate call and discarded with it.
type writer struct {
	c    canvas
	geom Geometry
	y    float64
}

func newWriter(c canvas, geom Geometry) *writer {
	return &writer{c: c, geom: geom}
}

func (w *writer) newPage() {
	w.c.AddPage()
	w.y = w.geom.Margin
}

// remaining reports the vertical space left above the bottom floor.
func (w *writer) remaining() float64 {
	return w.geom.PageHeight - w.geom.MinBottomMargin - w.y
}

// ensure starts a new page when less than space points remain.
func (w *writer) ensure(space float64) {
	if w.remaining() < space {
		w.newPage()
	}
}

// space advances the cursor by a fixed gap. At the top of a fresh page
// the gap is dropped so content starts at the margin.
func (w *writer) space(dy float64) {
	if !w.atTop() {
		w.y += dy
	}
}

// atTop reports whether nothing has been placed on the current page.
func (w *writer) atTop() bool {
	return w.y <= w.geom.Margin
}

type textOpts struct {
	size   float64
	bold   bool
	color  color
	indent float64
}

// addText draws text at the cursor, word-wrapping against the
// available width and breaking to a new page whenever a line would
// cross the bottom floor. Lines are never split across pages: a line
// either fits or moves whole to the next page. Advances and returns
// the cursor.
func (w *writer) addText(text string, o textOpts) float64 {
	if text == "" {
		return w.y
	}
	if o.size == 0 {
		o.size = sizeBody
	}
	style := ""
	if o.bold {
		style = "B"
	}
	w.c.SetFont(style, o.size)
	w.c.SetTextColor(o.color.r, o.color.g, o.color.b)

	avail := w.geom.PageWidth - 2*w.geom.Margin - o.indent
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, w.wrap(paragraph, avail)...)
	}

	for i, line := range lines {
		if w.remaining() < o.size+lineLeading {
			w.newPage()
		}
		w.c.Text(w.geom.Margin+o.indent, w.y+o.size, line)
		if i < len(lines)-1 {
			w.y += o.size + wrapLeading
		} else {
			w.y += o.size + lineLeading
		}
	}
	return w.y
}

// wrap greedily packs words into lines no wider than avail, measured
// at the current canvas font. A single word wider than avail keeps its
// own line rather than being split.
func (w *writer) wrap(text string, avail float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if w.c.TextWidth(candidate) > avail {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

// rule draws a full-width horizontal line at the given offset above
// the cursor.
func (w *writer) rule(above float64) {
	w.c.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	y := w.y - above
	w.c.Line(w.geom.Margin, y, w.geom.PageWidth-w.geom.Margin, y)
}
