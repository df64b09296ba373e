package parsing

import (
	"strings"

	"github.com/jonathan/resumepdf/internal/dates"
	"github.com/jonathan/resumepdf/internal/resume"
	"github.com/jonathan/resumepdf/internal/websites"
)

const (
	contactHeader = "contact information:"
	summaryPrefix = "summary:"
	bulletPrefix  = "-"
)

var contactFieldPrefixes = []string{
	"email:", "phone:", "location:", "website:", "portfolio:", "linkedin:",
}

// Line classification predicates, checked in this order by the block
// scanner: main section header, subsection header, bullet, date, text.

// isDateLine reports whether a line is date-like: it passes the span
// recognizer's pre-filter, or digits outnumber letters.
func isDateLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if dates.Looks(trimmed) {
		return true
	}
	digits, letters := 0, 0
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		}
	}
	return digits > letters
}

// isMainSectionHeader recognizes standalone all-caps headers. Date-like
// lines are excluded so a lone year is not promoted to a section.
func isMainSectionHeader(line string) bool {
	return line == strings.ToUpper(line) &&
		strings.TrimSpace(line) != "" &&
		!strings.Contains(line, ":") &&
		!strings.HasPrefix(line, bulletPrefix) &&
		!isDateLine(line)
}

// isSubsectionHeader recognizes "Category:" lines that are not contact
// fields.
func isSubsectionHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	lower := strings.ToLower(line)
	for _, prefix := range contactFieldPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

type sectionBlock struct {
	title string
	lines []string
}

// parsePlainText infers document structure purely from line shape: the
// first non-blank line is the name, all-caps lines open sections, and
// contiguous non-blank runs inside a section form items.
func (p *Parser) parsePlainText(content string) (*resume.Document, error) {
	lines := strings.Split(content, "\n")

	blocks, summary := splitSectionBlocks(lines)

	doc := &resume.Document{}
	p.scanHeader(lines, doc)
	if doc.Name == "" {
		return nil, errMissingName()
	}

	if len(summary) > 0 {
		doc.Sections = append(doc.Sections, resume.Section{
			Title: "SUMMARY",
			Items: []resume.Item{{Content: summary}},
		})
	}
	for _, block := range blocks {
		doc.Sections = append(doc.Sections, buildPlainSection(block))
	}
	return doc, nil
}

// splitSectionBlocks groups lines under their main section headers and
// pulls out "summary:" content, which becomes a synthetic leading
// section.
func splitSectionBlocks(lines []string) ([]sectionBlock, []string) {
	var blocks []sectionBlock
	var summary []string
	var current *sectionBlock

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(strings.ToLower(line), summaryPrefix) {
			if rest := strings.TrimSpace(line[len(summaryPrefix):]); rest != "" {
				summary = append(summary, rest)
			}
			for i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if next == "" || isMainSectionHeader(next) ||
					strings.HasPrefix(strings.ToLower(next), summaryPrefix) {
					break
				}
				summary = append(summary, next)
				i++
			}
			continue
		}

		switch {
		case isMainSectionHeader(line):
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &sectionBlock{title: line}
		case current != nil:
			current.lines = append(current.lines, line)
		}
	}
	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks, summary
}

// scanHeader extracts the name, headline, and contact fields from the
// lines preceding the first section.
func (p *Parser) scanHeader(lines []string, doc *resume.Document) {
	inContact := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if doc.Name == "" {
			doc.Name = line
			// The following line is the headline unless it reads like a
			// header or a contact field.
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if next != "" && !strings.Contains(strings.ToLower(next), contactHeader) &&
					!isMainSectionHeader(next) && !strings.Contains(next, ":") {
					doc.Title = next
					i++
				}
			}
			continue
		}

		if strings.ToLower(line) == contactHeader {
			inContact = true
			continue
		}
		if !inContact {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "email:"):
			doc.Contact.Email = valueAfterColon(line)
		case strings.HasPrefix(lower, "phone:"):
			doc.Contact.Phone = valueAfterColon(line)
		case strings.HasPrefix(lower, "location:"):
			doc.Contact.Location = valueAfterColon(line)
		case strings.HasPrefix(lower, "website:"),
			strings.HasPrefix(lower, "portfolio:"),
			strings.HasPrefix(lower, "linkedin:"):
			if site := websites.Extract(line, p.registry); site != nil {
				doc.Contact.Websites = append(doc.Contact.Websites, *site)
			}
		case isMainSectionHeader(line):
			inContact = false
		}
	}
}

func valueAfterColon(line string) string {
	if _, after, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// buildPlainSection turns one section block into items: each contiguous
// run of lines is an item whose first line is the title, a date-like
// line its period, and bullet lines its content.
func buildPlainSection(block sectionBlock) resume.Section {
	section := resume.Section{Title: block.title}

	var items []resume.Item
	var itemLines []string
	var title string
	var period *resume.Period

	flush := func() {
		if title == "" && len(itemLines) == 0 {
			return
		}
		item := resume.Item{Title: title, Period: period}
		for _, line := range itemLines {
			if strings.HasPrefix(line, bulletPrefix) {
				item.Content = append(item.Content, strings.TrimSpace(line[1:]))
			}
		}
		if item.Title != "" || len(item.Content) > 0 {
			items = append(items, item)
		}
		title, period, itemLines = "", nil, nil
	}

	for i := 0; i < len(block.lines); i++ {
		line := strings.TrimSpace(block.lines[i])

		switch {
		case line == "":
			flush()
		case isSubsectionHeader(line):
			flush()
			title = line
		case strings.HasPrefix(line, bulletPrefix):
			itemLines = append(itemLines, line)
		case isDateLine(line) && title != "":
			period = parseLinePeriod(line)
		case title == "":
			// A title, possibly followed directly by its date line.
			title = line
			if i+1 < len(block.lines) {
				next := strings.TrimSpace(block.lines[i+1])
				if isDateLine(next) {
					period = parseLinePeriod(next)
					i++
				}
			}
		default:
			itemLines = append(itemLines, line)
		}
	}
	flush()

	section.Items = mergeContinuations(items)
	return section
}

// parseLinePeriod reads a date line through the span recognizer,
// falling back to the raw line as a bare start date.
func parseLinePeriod(line string) *resume.Period {
	if p := dates.ParsePeriod(line); p != nil {
		return p
	}
	return &resume.Period{Start: line}
}

// mergeContinuations folds an untitled item with content into the
// titled item preceding it; such runs are continuation lines, not
// separate entries.
func mergeContinuations(items []resume.Item) []resume.Item {
	var merged []resume.Item
	for i := 0; i < len(items); i++ {
		current := items[i]
		if i+1 < len(items) {
			next := items[i+1]
			if current.Title != "" && next.Title == "" && len(next.Content) > 0 {
				if current.Period == nil {
					current.Period = next.Period
				}
				current.Content = append(current.Content, next.Content...)
				i++
			}
		}
		merged = append(merged, current)
	}
	return merged
}
