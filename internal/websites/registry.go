// Package websites classifies website references found in resume text and
// resolves their display labels through a type registry.
package websites

// TypeInfo describes how a website category is presented.
type TypeInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Registry maps a website category token to its presentation. Every
// registry must carry an "other" entry; Lookup falls back to it for
// unknown categories.
type Registry map[string]TypeInfo

// DefaultRegistry returns the built-in category table.
func DefaultRegistry() Registry {
	return Registry{
		"personal":  {Label: "Website", Icon: "globe"},
		"portfolio": {Label: "Portfolio", Icon: "briefcase"},
		"linkedin":  {Label: "LinkedIn", Icon: "linkedin"},
		"github":    {Label: "GitHub", Icon: "github"},
		"other":     {Label: "Website", Icon: "link"},
	}
}

// Lookup resolves a category token, falling back to the "other" entry
// when the token is unknown.
func (r Registry) Lookup(typ string) TypeInfo {
	if info, ok := r[typ]; ok {
		return info
	}
	return r["other"]
}
