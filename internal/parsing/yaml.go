package parsing

import (
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resumepdf/internal/resume"
)

// parseYAML decodes a YAML resume and coerces it through the same
// legacy-shape migration as JSON.
func (p *Parser) parseYAML(content string) (*resume.Document, error) {
	var data map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, &SyntaxError{Format: FormatYAML, Cause: err}
	}
	return p.buildDocument(normalizeYAMLValue(data).(map[string]interface{}))
}

// normalizeYAMLValue rewrites yaml.v3's decoded shapes into the ones
// the shared coercion expects: map keys become strings and scalar
// leaves stay as-is.
func normalizeYAMLValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, entry := range val {
			out[k] = normalizeYAMLValue(entry)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, entry := range val {
			out[asString(k)] = normalizeYAMLValue(entry)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, entry := range val {
			out[i] = normalizeYAMLValue(entry)
		}
		return out
	default:
		return v
	}
}
