// Package parsing converts raw resume text in one of four formats into
// the converged document model, and normalizes the result so every
// renderer sees one date representation.
package parsing

import (
	"github.com/jonathan/resumepdf/internal/resume"
	"github.com/jonathan/resumepdf/internal/websites"
)

// Format tags the syntax of a raw input.
type Format string

// Supported input formats.
const (
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
	FormatMarkdown  Format = "markdown"
	FormatPlainText Format = "plaintext"
)

// Parser converts raw input into documents using a fixed website
// registry. The zero-cost constructor exists so callers can swap the
// registry; the package-level Parse uses the default table.
type Parser struct {
	registry websites.Registry
}

// NewParser returns a parser resolving website labels through reg.
func NewParser(reg websites.Registry) *Parser {
	return &Parser{registry: reg}
}

// Parse converts content in the given format into a Document. The
// document is parsed but not normalized; call NormalizeDates before
// rendering. Fails with a SyntaxError on malformed JSON/YAML, a
// DocumentError when no name is derivable, and an
// UnsupportedFormatError for unknown format tags.
func (p *Parser) Parse(content string, format Format) (*resume.Document, error) {
	switch format {
	case FormatJSON:
		return p.parseJSON(content)
	case FormatYAML:
		return p.parseYAML(content)
	case FormatMarkdown:
		return p.parseMarkdown(content)
	case FormatPlainText:
		return p.parsePlainText(content)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}

// Parse converts content using the default website registry.
func Parse(content string, format Format) (*resume.Document, error) {
	return NewParser(websites.DefaultRegistry()).Parse(content, format)
}
