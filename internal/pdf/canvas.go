package pdf

import "github.com/jung-kurt/gofpdf"

// canvas is the drawing surface the layout engine writes to. The
// production implementation wraps gofpdf; tests inject a recording
// fake and assert on the sequence of draw and paginate calls.
type canvas interface {
	AddPage()
	// SetFont selects Helvetica in the given style ("" or "B") and size.
	SetFont(style string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	// TextWidth measures s at the current font.
	TextWidth(s string) float64
	// Text draws s with its baseline at y.
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	PageCount() int
	// SetPage makes an already-emitted page current again, for the
	// final page-number pass.
	SetPage(n int)
}

// fpdfCanvas adapts gofpdf. Core fonts are cp1252; the translator maps
// UTF-8 input (bullets, accented names) onto it.
type fpdfCanvas struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func newFpdfCanvas(pdf *gofpdf.Fpdf) *fpdfCanvas {
	return &fpdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *fpdfCanvas) SetTextColor(r, g, b int) {
	c.pdf.SetTextColor(r, g, b)
}

func (c *fpdfCanvas) SetDrawColor(r, g, b int) {
	c.pdf.SetDrawColor(r, g, b)
}

func (c *fpdfCanvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.translate(s))
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.translate(s))
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *fpdfCanvas) SetPage(n int) {
	c.pdf.SetPage(n)
}
