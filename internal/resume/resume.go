// Package resume defines the converged document model that every format
// parser produces and every renderer consumes.
package resume

// Document is the root of a parsed resume.
type Document struct {
	Name     string    `json:"name"`
	Title    string    `json:"title,omitempty"`
	Contact  Contact   `json:"contact"`
	Sections []Section `json:"sections"`
}

// Contact holds the header contact fields. All fields are opaque strings;
// no validation is applied beyond presence.
type Contact struct {
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Location string    `json:"location,omitempty"`
	Websites []Website `json:"websites,omitempty"`
}

// Website is a typed link in the contact header. Label, when empty, is
// resolved at render time through the website type registry.
type Website struct {
	URL   string `json:"url"`
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
}

// Section is a titled, ordered group of items. The title doubles as a
// semantic hint for the PDF renderer (e.g. "Skills" vs "Experience").
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is the recursive unit of content. An empty title marks a
// paragraph-style entry that renders without a heading.
type Item struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Period      *Period  `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     []string `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Items       []Item   `json:"items,omitempty"`
}

// Period is a date range with a required start and an optional end.
// Both endpoints are opaque display strings, never calendar values.
// An empty End means the range is open ("Present") until normalization
// collapses single-date entries into End == Start.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Single reports whether the period is a degenerate one-date range.
func (p *Period) Single() bool {
	return p != nil && p.Start == p.End
}

// Open reports whether the period has no end date.
func (p *Period) Open() bool {
	return p != nil && p.Start != "" && p.End == ""
}
