package parsing

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/jonathan/resumepdf/internal/dates"
	"github.com/jonathan/resumepdf/internal/resume"
	"github.com/jonathan/resumepdf/internal/websites"
)

// Heading depths carry the document structure: H1 is the name or a
// section, H2 is an item (or the document headline), H3 nests a
// sub-item.
const (
	headingName       = 1
	headingItem       = 2
	headingNestedItem = 3
)

// mdState is the accumulator threaded through the block fold. Each
// block token maps the previous state onto the next one; nothing else
// mutates it.
type mdState struct {
	parser *Parser

	name     string
	title    string
	email    string
	phone    string
	location string
	sites    []resume.Website

	sections []resume.Section
	section  *resume.Section
	item     *resume.Item
}

// parseMarkdown tokenizes the input into block-level elements and folds
// parser state across them. Only headings, paragraphs, and lists are
// interpreted.
func (p *Parser) parseMarkdown(content string) (*resume.Document, error) {
	source := []byte(content)
	root := goldmark.New().Parser().Parse(gtext.NewReader(source))

	state := &mdState{parser: p}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		state.processBlock(n, source)
	}
	state.flushItem()
	state.flushSection()

	if state.name == "" {
		return nil, errMissingName()
	}

	return &resume.Document{
		Name:  state.name,
		Title: state.title,
		Contact: resume.Contact{
			Email:    state.email,
			Phone:    state.phone,
			Location: state.location,
			Websites: state.sites,
		},
		Sections: state.sections,
	}, nil
}

func (s *mdState) processBlock(n ast.Node, source []byte) {
	switch block := n.(type) {
	case *ast.Heading:
		s.processHeading(block.Level, blockText(block, source))
	case *ast.Paragraph:
		s.processParagraph(blockText(block, source))
	case *ast.List:
		s.processList(block, source)
	}
}

func (s *mdState) processHeading(level int, text string) {
	switch level {
	case headingName:
		if s.name == "" {
			s.name = text
			return
		}
		s.flushItem()
		s.flushSection()
		s.section = &resume.Section{Title: text, Items: []resume.Item{}}
	case headingItem:
		if s.section != nil {
			s.flushItem()
			s.item = &resume.Item{Title: text}
		} else if s.title == "" {
			s.title = text
		}
	case headingNestedItem:
		if s.section != nil && s.item != nil {
			s.item.Items = append(s.item.Items, resume.Item{Title: text, Content: []string{}})
		}
	}
}

func (s *mdState) processParagraph(text string) {
	if text == "" {
		return
	}

	if s.section == nil {
		// Still in the header: scan each line for contact fields.
		for _, line := range strings.Split(text, "\n") {
			s.processContactLine(strings.TrimSpace(line))
		}
		return
	}

	period := dates.ParsePeriod(text)

	// An existing untitled item in the section can absorb further
	// paragraph-style content.
	emptyIdx := -1
	for i := range s.section.Items {
		if s.section.Items[i].Title == "" {
			emptyIdx = i
			break
		}
	}

	firstInSection := len(s.section.Items) == 0 && s.item == nil && period == nil
	continueUntitled := s.item != nil && s.item.Title == "" && period == nil
	reuseUntitled := emptyIdx >= 0 && s.item == nil && period == nil

	switch {
	case firstInSection || continueUntitled || reuseUntitled:
		if reuseUntitled {
			// Pull the item back out of the section so it is not added
			// twice when flushed.
			reclaimed := s.section.Items[emptyIdx]
			s.section.Items = append(s.section.Items[:emptyIdx], s.section.Items[emptyIdx+1:]...)
			s.item = &reclaimed
		} else if s.item == nil || s.item.Title != "" {
			s.item = &resume.Item{}
		}
		s.item.Content = append(s.item.Content, text)
	case s.item == nil:
		if period != nil {
			s.item = &resume.Item{Period: period}
		} else {
			s.item = &resume.Item{Content: []string{text}}
		}
	case period != nil:
		s.item.Period = period
	default:
		s.processItemText(text)
	}
}

// processItemText files a non-date paragraph into the current titled
// item: description first, then subtitle, then content.
func (s *mdState) processItemText(text string) {
	switch {
	case s.item.Description == "":
		s.item.Description = text
	case s.item.Subtitle == "":
		s.item.Subtitle = text
	default:
		s.item.Content = append(s.item.Content, text)
	}
}

func (s *mdState) processContactLine(line string) {
	switch {
	case strings.HasPrefix(line, "Email:"):
		s.email = strings.TrimSpace(strings.TrimPrefix(line, "Email:"))
	case strings.HasPrefix(line, "Phone:"):
		s.phone = strings.TrimSpace(strings.TrimPrefix(line, "Phone:"))
	case strings.HasPrefix(line, "Location:"):
		s.location = strings.TrimSpace(strings.TrimPrefix(line, "Location:"))
	default:
		if site := websites.Extract(line, s.parser.registry); site != nil {
			s.sites = append(s.sites, *site)
		}
	}
}

func (s *mdState) processList(list *ast.List, source []byte) {
	if s.item == nil {
		return
	}
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		if text := blockText(li, source); text != "" {
			s.item.Content = append(s.item.Content, text)
		}
	}
}

func (s *mdState) flushItem() {
	if s.item != nil && s.section != nil {
		s.section.Items = append(s.section.Items, *s.item)
	}
	s.item = nil
}

func (s *mdState) flushSection() {
	if s.section != nil {
		s.sections = append(s.sections, *s.section)
	}
	s.section = nil
}

// blockText joins a block's source lines, one entry per line, without
// inline rendering. For list items the text block child carries the
// lines.
func blockText(n ast.Node, source []byte) string {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		var lines []string
		for i := 0; i < n.Lines().Len(); i++ {
			seg := n.Lines().At(i)
			lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}

	var lines []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if text := blockText(child, source); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
