package parsing

import (
	"strings"

	"github.com/jonathan/resumepdf/internal/resume"
)

// NormalizeDates collapses every single-date period into a degenerate
// start==end range so downstream renderers need only one date code
// path. Periods with an explicit end, and items without a period, are
// left alone. The pass is idempotent and recurses into nested items.
func NormalizeDates(doc *resume.Document) *resume.Document {
	if doc == nil {
		return nil
	}
	for i := range doc.Sections {
		normalizeItems(doc.Sections[i].Items)
	}
	return doc
}

func normalizeItems(items []resume.Item) {
	for i := range items {
		if p := items[i].Period; p != nil {
			p.Start = strings.TrimSpace(p.Start)
			p.End = strings.TrimSpace(p.End)
			if p.Start != "" && p.End == "" {
				p.End = p.Start
			}
		}
		normalizeItems(items[i].Items)
	}
}
