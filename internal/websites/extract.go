package websites

import (
	"regexp"
	"strings"

	"github.com/jonathan/resumepdf/internal/resume"
)

// Labeled prefixes imply the category directly; everything after the
// prefix is the URL value.
var labeledPrefixes = []struct {
	prefix string
	typ    string
}{
	{"website:", "personal"},
	{"portfolio:", "portfolio"},
	{"linkedin:", "linkedin"},
}

var (
	urlPattern     = regexp.MustCompile(`(?i)https?://\S+`)
	commentPattern = regexp.MustCompile(`(?i)#\s*website:(\w+)`)
)

// Extract decides whether a line of text names a website reference and, if
// so, which category it belongs to. Labeled prefixes ("Website:",
// "Portfolio:", "LinkedIn:") win over the bare-URL fallback; values still
// carrying template placeholder brackets are rejected. Returns nil when
// the line names no URL at all.
func Extract(line string, reg Registry) *resume.Website {
	normalized := strings.ToLower(line)

	for _, lp := range labeledPrefixes {
		if !strings.HasPrefix(normalized, lp.prefix) {
			continue
		}
		url := strings.TrimSpace(line[len(lp.prefix):])
		if url == "" || strings.ContainsAny(url, "[]") {
			return nil
		}
		return &resume.Website{
			URL:   url,
			Type:  lp.typ,
			Label: reg.Lookup(lp.typ).Label,
		}
	}

	// Fallback: a bare URL, optionally annotated with "# website:<type>".
	url := urlPattern.FindString(line)
	if url == "" {
		return nil
	}
	typ := "other"
	if m := commentPattern.FindStringSubmatch(line); m != nil {
		typ = strings.ToLower(m[1])
	}
	// Drop an annotation comment glued onto the URL itself. A plain
	// fragment ("#work") is part of the URL and stays.
	if idx := strings.Index(url, "#"); idx > 0 && commentPattern.MatchString(url[idx:]) {
		url = url[:idx]
	}
	return &resume.Website{
		URL:   strings.TrimSpace(url),
		Type:  typ,
		Label: reg.Lookup(typ).Label,
	}
}
