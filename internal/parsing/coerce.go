package parsing

import (
	"fmt"

	"github.com/jonathan/resumepdf/internal/resume"
)

// buildDocument coerces a decoded JSON or YAML value into the document
// model. All legacy-shape migration lives here: the core model never
// sees a "date" or "details" field, a scalar content value, or a
// string-typed item.
func (p *Parser) buildDocument(data map[string]interface{}) (*resume.Document, error) {
	if len(data) == 0 {
		return nil, errEmptyDocument()
	}

	name := asString(data["name"])
	if name == "" {
		return nil, errMissingName()
	}

	doc := &resume.Document{
		Name:  name,
		Title: asString(data["title"]),
	}

	if contact, ok := data["contact"].(map[string]interface{}); ok {
		doc.Contact = p.coerceContact(contact)
	}

	if sections, ok := data["sections"].([]interface{}); ok {
		doc.Sections = make([]resume.Section, 0, len(sections))
		for _, raw := range sections {
			sec, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			doc.Sections = append(doc.Sections, coerceSection(sec))
		}
	}

	return doc, nil
}

func (p *Parser) coerceContact(data map[string]interface{}) resume.Contact {
	contact := resume.Contact{
		Email:    asString(data["email"]),
		Phone:    asString(data["phone"]),
		Location: asString(data["location"]),
	}
	sites, ok := data["websites"].([]interface{})
	if !ok {
		return contact
	}
	for _, raw := range sites {
		site, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		url := asString(site["url"])
		if url == "" {
			continue
		}
		typ := asString(site["type"])
		if typ == "" {
			typ = "other"
		}
		label := asString(site["label"])
		if label == "" {
			label = p.registry.Lookup(typ).Label
		}
		contact.Websites = append(contact.Websites, resume.Website{
			URL:   url,
			Type:  typ,
			Label: label,
		})
	}
	return contact
}

func coerceSection(data map[string]interface{}) resume.Section {
	section := resume.Section{Title: asString(data["title"])}

	// "items" is the current field name; "content" is the legacy one.
	rawItems, ok := data["items"].([]interface{})
	if !ok {
		rawItems, _ = data["content"].([]interface{})
	}
	for _, raw := range rawItems {
		section.Items = append(section.Items, coerceItem(raw))
	}

	section.Items = collapseParagraphItems(section.Items)
	return section
}

// coerceItem converts one raw item value. A bare string becomes an
// untitled single-paragraph item.
func coerceItem(raw interface{}) resume.Item {
	switch v := raw.(type) {
	case string:
		return resume.Item{Content: []string{v}}
	case map[string]interface{}:
		item := resume.Item{
			Title:       asString(v["title"]),
			Subtitle:    asString(v["subtitle"]),
			Description: asString(v["description"]),
			Content:     asStringList(v["content"]),
			Tags:        asStringList(v["tags"]),
		}

		if period, ok := v["period"].(map[string]interface{}); ok {
			start := asString(period["start"])
			if start != "" {
				item.Period = &resume.Period{Start: start, End: asString(period["end"])}
			}
		}
		// Legacy single "date" field wraps into a start-only period.
		if item.Period == nil {
			if date := asString(v["date"]); date != "" {
				item.Period = &resume.Period{Start: date}
			}
		}

		// Legacy "details" entries merge into content, skipping values
		// already present and preserving order.
		for _, detail := range asStringList(v["details"]) {
			if !contains(item.Content, detail) {
				item.Content = append(item.Content, detail)
			}
		}

		if nested, ok := v["items"].([]interface{}); ok {
			for _, sub := range nested {
				item.Items = append(item.Items, coerceItem(sub))
			}
		}
		return item
	default:
		return resume.Item{}
	}
}

// collapseParagraphItems merges a paragraph-style section into a single
// untitled item. A section qualifies only when every item has an empty
// title, non-empty content, and no period, subtitle, tags, or nested
// items; the merged content keeps one entry per original string.
func collapseParagraphItems(items []resume.Item) []resume.Item {
	if len(items) < 2 {
		return items
	}
	var merged []string
	for _, item := range items {
		if item.Title != "" || len(item.Content) == 0 ||
			item.Period != nil || item.Subtitle != "" ||
			len(item.Tags) > 0 || len(item.Items) > 0 {
			return items
		}
		merged = append(merged, item.Content...)
	}
	return []resume.Item{{Content: merged}}
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case bool:
		return fmt.Sprintf("%t", s)
	case float64:
		// JSON numbers arrive as float64; years and versions should not
		// grow a decimal point.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	case int:
		return fmt.Sprintf("%d", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asStringList(v interface{}) []string {
	switch list := v.(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, entry := range list {
			if s := asString(entry); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		// Scalar content coerces to a one-element list.
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func contains(list []string, s string) bool {
	for _, entry := range list {
		if entry == s {
			return true
		}
	}
	return false
}
