package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resumepdf/internal/resume"
	"github.com/jonathan/resumepdf/internal/websites"
)

// Generator renders documents with a fixed geometry and website label
// registry. Generation never fails structurally for a well-formed
// document: missing optional fields are skipped, and a document with
// zero sections still yields a valid one-page PDF.
type Generator struct {
	geom     Geometry
	registry websites.Registry
}

// NewGenerator returns a generator using the given label registry.
func NewGenerator(reg websites.Registry) *Generator {
	return &Generator{geom: DefaultGeometry(), registry: reg}
}

// NewGeneratorWithGeometry returns a generator with custom page geometry.
func NewGeneratorWithGeometry(reg websites.Registry, geom Geometry) *Generator {
	return &Generator{geom: geom, registry: reg}
}

// Generate renders doc into PDF bytes using the default registry.
func Generate(doc *resume.Document) ([]byte, error) {
	return NewGenerator(websites.DefaultRegistry()).Generate(doc)
}

// Generate renders doc as a paginated PDF with embedded standard fonts.
func (g *Generator) Generate(doc *resume.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	g.render(newFpdfCanvas(pdf), doc)

	if pdf.Err() {
		return nil, fmt.Errorf("pdf generation failed: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}
	return buf.Bytes(), nil
}

// render walks the document onto the canvas. Split from Generate so
// tests can drive it with a recording canvas.
func (g *Generator) render(c canvas, doc *resume.Document) {
	w := newWriter(c, g.geom)
	w.newPage()

	g.renderHeader(w, doc)
	for _, section := range doc.Sections {
		g.renderSection(w, section)
	}
	g.stampPageNumbers(c)
}

func (g *Generator) renderHeader(w *writer, doc *resume.Document) {
	w.addText(doc.Name, textOpts{size: sizeName, bold: true, color: colorText})
	if doc.Title != "" {
		w.addText(doc.Title, textOpts{size: sizeHeadline, color: colorMuted})
	}

	contact := doc.Contact
	var parts []string
	if contact.Email != "" {
		parts = append(parts, "Email: "+contact.Email)
	}
	if contact.Phone != "" {
		parts = append(parts, "Phone: "+contact.Phone)
	}
	if contact.Location != "" {
		parts = append(parts, "Location: "+contact.Location)
	}
	if len(parts) > 0 || len(contact.Websites) > 0 {
		w.space(contactGap)
	}
	if len(parts) > 0 {
		w.addText(strings.Join(parts, "  "), textOpts{size: sizeBody, color: colorText})
	}
	if len(contact.Websites) > 0 {
		var sites []string
		for _, site := range contact.Websites {
			label := site.Label
			if label == "" {
				label = g.registry.Lookup(site.Type).Label
			}
			sites = append(sites, fmt.Sprintf("%s (%s)", label, site.URL))
		}
		w.addText("Websites: "+strings.Join(sites, ", "), textOpts{size: sizeBody, color: colorText})
	}
}

// sectionHeading places a section title with its rule, forcing a page
// break when too little space remains for the heading plus the start
// of its first item. firstReserve is the space the first item renderer
// will demand; including it here keeps the break decisions in sync, so
// a heading is never the last line on a page.
func (g *Generator) sectionHeading(w *writer, title string, firstReserve float64) {
	needed := sectionGap + sectionHeadingReserve + firstReserve
	if w.remaining() < sectionBreakThreshold || w.remaining() < needed {
		w.newPage()
	}
	w.space(sectionGap)
	w.addText(title, textOpts{size: sizeSectionHead, bold: true, color: colorHeading})
	w.rule(bulletGap)
	w.space(sectionRuleGap)
}

// stampPageNumbers writes "i / total" bottom-center on every page, but
// only when the document spans more than one page.
func (g *Generator) stampPageNumbers(c canvas) {
	total := c.PageCount()
	if total <= 1 {
		return
	}
	c.SetFont("", sizeBody)
	c.SetTextColor(colorPageNum.r, colorPageNum.g, colorPageNum.b)
	for i := 1; i <= total; i++ {
		c.SetPage(i)
		c.Text(g.geom.PageWidth/2-15, g.geom.PageHeight-30, fmt.Sprintf("%d / %d", i, total))
	}
}
