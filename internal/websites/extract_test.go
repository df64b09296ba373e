package websites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_LabeledPrefixes(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name      string
		line      string
		wantURL   string
		wantType  string
		wantLabel string
	}{
		{"website prefix", "Website: https://jane.dev", "https://jane.dev", "personal", "Website"},
		{"portfolio prefix", "Portfolio: https://jane.dev/work", "https://jane.dev/work", "portfolio", "Portfolio"},
		{"linkedin prefix", "LinkedIn: https://linkedin.com/in/jane", "https://linkedin.com/in/jane", "linkedin", "LinkedIn"},
		{"lowercase prefix", "website: https://jane.dev", "https://jane.dev", "personal", "Website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Extract(tt.line, reg)
			require.NotNil(t, site)
			assert.Equal(t, tt.wantURL, site.URL)
			assert.Equal(t, tt.wantType, site.Type)
			assert.Equal(t, tt.wantLabel, site.Label)
		})
	}
}

func TestExtract_RejectsTemplatePlaceholders(t *testing.T) {
	reg := DefaultRegistry()

	assert.Nil(t, Extract("Website: [your website]", reg))
	assert.Nil(t, Extract("LinkedIn: [linkedin profile url]", reg))
	assert.Nil(t, Extract("Portfolio:", reg))
}

func TestExtract_BareURLFallback(t *testing.T) {
	reg := DefaultRegistry()

	site := Extract("See https://github.com/jane for code", reg)
	require.NotNil(t, site)
	assert.Equal(t, "https://github.com/jane", site.URL)
	assert.Equal(t, "other", site.Type)
	assert.Equal(t, "Website", site.Label)
}

func TestExtract_AnnotatedURL(t *testing.T) {
	reg := DefaultRegistry()

	site := Extract("https://github.com/jane # website:github", reg)
	require.NotNil(t, site)
	assert.Equal(t, "https://github.com/jane", site.URL)
	assert.Equal(t, "github", site.Type)
	assert.Equal(t, "GitHub", site.Label)
}

func TestExtract_URLFragmentPreserved(t *testing.T) {
	reg := DefaultRegistry()

	site := Extract("https://jane.dev/about#work", reg)
	require.NotNil(t, site)
	assert.Equal(t, "https://jane.dev/about#work", site.URL)
	assert.Equal(t, "other", site.Type)
}

func TestExtract_GluedAnnotationStripped(t *testing.T) {
	reg := DefaultRegistry()

	site := Extract("https://github.com/jane#website:github", reg)
	require.NotNil(t, site)
	assert.Equal(t, "https://github.com/jane", site.URL)
	assert.Equal(t, "github", site.Type)
}

func TestExtract_NoURL(t *testing.T) {
	assert.Nil(t, Extract("Led the platform team", DefaultRegistry()))
	assert.Nil(t, Extract("", DefaultRegistry()))
}

func TestRegistry_LookupFallsBackToOther(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, "GitHub", reg.Lookup("github").Label)
	assert.Equal(t, reg["other"], reg.Lookup("mastodon"))
}
