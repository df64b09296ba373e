package pdf

import (
	"strings"

	"github.com/jonathan/resumepdf/internal/resume"
)

// Rendering strategies, chosen per section from its title and content
// shape.
type strategy int

const (
	strategyList strategy = iota // default: projects and other lists
	strategySummary              // flowing paragraph text
	strategySkills               // bold categories with chunked comma lines
	strategyTimeline             // dated entries: title, date, bullets
)

// classify picks the rendering strategy: "summary" and "skills" match
// by title, any dated item makes the section a timeline, everything
// else renders as a list.
func classify(section resume.Section) strategy {
	switch {
	case strings.EqualFold(section.Title, "summary"):
		return strategySummary
	case strings.EqualFold(section.Title, "skills"):
		return strategySkills
	case anyItemDated(section.Items):
		return strategyTimeline
	default:
		return strategyList
	}
}

func anyItemDated(items []resume.Item) bool {
	for _, item := range items {
		if item.Period != nil && item.Period.Start != "" {
			return true
		}
	}
	return false
}

func (g *Generator) renderSection(w *writer, section resume.Section) {
	g.sectionHeading(w, section.Title, firstItemReserve(section))

	switch classify(section) {
	case strategySummary:
		g.renderSummary(w, section)
	case strategySkills:
		g.renderSkills(w, section)
	case strategyTimeline:
		g.renderTimeline(w, section)
	default:
		g.renderList(w, section)
	}
}

// firstItemReserve mirrors the space check the section's first item
// renderer will make, so the heading break decision can account for it.
func firstItemReserve(section resume.Section) float64 {
	if len(section.Items) == 0 {
		return 0
	}
	switch classify(section) {
	case strategySummary:
		return bulletSpace
	case strategySkills:
		return skillsSpace
	case strategyTimeline:
		return itemSpace + float64(len(section.Items[0].Content))*bulletSpace
	default:
		return itemSpace
	}
}

// renderSummary flows the first item's description and content as
// plain paragraphs: no bullets, no item heading.
func (g *Generator) renderSummary(w *writer, section resume.Section) {
	if len(section.Items) == 0 {
		return
	}
	item := section.Items[0]
	if item.Description != "" {
		w.addText(item.Description, textOpts{size: sizeBody, color: colorText})
	}
	for _, paragraph := range item.Content {
		w.addText(paragraph, textOpts{size: sizeBody, color: colorText})
		w.space(paragraphGap)
	}
}

// renderSkills prints each item as a bold category followed by its
// entries chunked into comma-joined bullet lines.
func (g *Generator) renderSkills(w *writer, section resume.Section) {
	for _, item := range section.Items {
		g.renderSkillCategory(w, item, 0)
	}
}

func (g *Generator) renderSkillCategory(w *writer, item resume.Item, indent float64) {
	w.ensure(skillsSpace)
	w.space(skillsGap)
	if item.Title != "" {
		w.addText(item.Title, textOpts{size: sizeBody, bold: true, color: colorText, indent: indent})
	}

	entries := item.Content
	if len(entries) == 0 {
		entries = item.Tags
	}
	for start := 0; start < len(entries); start += skillsPerLine {
		end := start + skillsPerLine
		if end > len(entries) {
			end = len(entries)
		}
		w.ensure(bulletSpace)
		line := "• " + strings.Join(entries[start:end], ", ")
		w.addText(line, textOpts{size: sizeBody, color: colorText, indent: indent + bulletIndent})
	}

	// Nested sub-categories render one level deeper.
	for _, sub := range item.Items {
		g.renderSkillCategory(w, sub, indent+bulletIndent)
	}
}

// renderTimeline prints dated entries: title (with the organization
// inline for experience-like sections), date line, description, and
// bulleted content.
func (g *Generator) renderTimeline(w *writer, section resume.Section) {
	inline := strings.Contains(strings.ToLower(section.Title), "experience")

	for _, item := range section.Items {
		w.ensure(itemSpace + float64(len(item.Content))*bulletSpace)
		w.space(itemGap)

		switch {
		case item.Title != "" && inline && item.Subtitle != "":
			w.addText(item.Title+" at "+item.Subtitle, textOpts{size: sizeItemTitle, bold: true, color: colorText})
		case item.Title != "":
			w.addText(item.Title, textOpts{size: sizeItemTitle, bold: true, color: colorText})
			if item.Subtitle != "" {
				w.addText(item.Subtitle, textOpts{size: sizeSubtitle, color: colorText})
			}
		case item.Subtitle != "":
			w.addText(item.Subtitle, textOpts{size: sizeSubtitle, color: colorText})
		}

		if date := formatPeriod(item.Period); date != "" {
			w.addText(date, textOpts{size: sizeBody, color: colorMuted})
		}
		if item.Description != "" {
			w.space(paragraphGap)
			w.addText(item.Description, textOpts{size: sizeBody, color: colorText})
		}
		g.renderBullets(w, item.Content)
	}
}

// renderList is the fallback strategy: title, optional subtitle and
// description, bulleted content, and a trailing technologies line from
// tags. Untitled items flow their content as paragraphs instead.
func (g *Generator) renderList(w *writer, section resume.Section) {
	for _, item := range section.Items {
		w.ensure(itemSpace)
		w.space(itemGap)

		if item.Title != "" {
			w.addText(item.Title, textOpts{size: sizeItemTitle, bold: true, color: colorText})
			if item.Subtitle != "" {
				w.addText(item.Subtitle, textOpts{size: sizeSubtitle, color: colorText, indent: bulletIndent})
			}
			if item.Description != "" {
				w.addText(item.Description, textOpts{size: sizeBody, color: colorText})
			}
			g.renderBullets(w, item.Content)
		} else {
			// Paragraph-style item: flowing text, no bullets.
			if item.Description != "" {
				w.addText(item.Description, textOpts{size: sizeBody, color: colorText})
			}
			for _, paragraph := range item.Content {
				w.addText(paragraph, textOpts{size: sizeBody, color: colorText})
				w.space(paragraphGap)
			}
		}

		if len(item.Tags) > 0 {
			w.ensure(bulletSpace)
			w.addText("Technologies: "+strings.Join(item.Tags, ", "), textOpts{size: sizeBody, color: colorMuted})
		}
	}
}

func (g *Generator) renderBullets(w *writer, content []string) {
	if len(content) == 0 {
		return
	}
	w.space(paragraphGap)
	for _, line := range content {
		w.ensure(bulletSpace)
		w.space(bulletGap)
		w.addText("• "+line, textOpts{size: sizeBody, color: colorText, indent: bulletIndent})
	}
}

// formatPeriod renders a period through the single code path every
// strategy shares: a degenerate start==end range prints the start
// alone, a missing end reads as ongoing, otherwise the full range.
func formatPeriod(p *resume.Period) string {
	if p == nil || p.Start == "" {
		return ""
	}
	switch {
	case p.Single():
		return p.Start
	case p.Open():
		return p.Start + " - Present"
	default:
		return p.Start + " - " + p.End
	}
}
