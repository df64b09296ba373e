package parsing

import (
	"encoding/json"

	"github.com/jonathan/resumepdf/internal/resume"
)

// parseJSON decodes a JSON resume and coerces it into the document
// model, migrating legacy field shapes along the way.
func (p *Parser) parseJSON(content string) (*resume.Document, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, &SyntaxError{Format: FormatJSON, Cause: err}
	}
	return p.buildDocument(data)
}
