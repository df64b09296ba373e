package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumepdf/internal/resume"
)

func testDocument() *resume.Document {
	return &resume.Document{
		Name: "Test User",
		Sections: []resume.Section{
			{
				Title: "Certifications",
				Items: []resume.Item{
					{Title: "AWS Certified Developer", Period: &resume.Period{Start: "2019"}},
					{Title: "Google Cloud Professional", Period: &resume.Period{Start: "March 2022"}},
				},
			},
			{
				Title: "Experience",
				Items: []resume.Item{
					{Title: "Software Developer", Period: &resume.Period{Start: "2020", End: "2022"}},
					{Title: "Current Role", Period: &resume.Period{Start: "2023"}},
					{Title: "Untimed Role"},
				},
			},
		},
	}
}

func TestNormalizeDates_SingleDateCollapse(t *testing.T) {
	doc := NormalizeDates(testDocument())

	certs := doc.Sections[0].Items
	assert.Equal(t, "2019", certs[0].Period.End)
	assert.Equal(t, "March 2022", certs[1].Period.End)

	exp := doc.Sections[1].Items
	assert.Equal(t, "2022", exp[0].Period.End, "explicit end left alone")
	assert.Equal(t, "2023", exp[1].Period.End)
	assert.Nil(t, exp[2].Period, "absent period left alone")
}

func TestNormalizeDates_Idempotent(t *testing.T) {
	once := NormalizeDates(testDocument())
	twice := NormalizeDates(NormalizeDates(testDocument()))
	assert.Equal(t, once, twice)
}

func TestNormalizeDates_TrimsEndpoints(t *testing.T) {
	doc := &resume.Document{
		Name: "Test User",
		Sections: []resume.Section{
			{Items: []resume.Item{
				{Period: &resume.Period{Start: "  June 2021  "}},
			}},
		},
	}

	NormalizeDates(doc)
	p := doc.Sections[0].Items[0].Period
	assert.Equal(t, "June 2021", p.Start)
	assert.Equal(t, "June 2021", p.End)
}

func TestNormalizeDates_RecursesIntoNestedItems(t *testing.T) {
	doc := &resume.Document{
		Name: "Test User",
		Sections: []resume.Section{
			{Items: []resume.Item{
				{
					Title: "Parent",
					Items: []resume.Item{
						{Title: "Child", Period: &resume.Period{Start: "2021"}},
					},
				},
			}},
		},
	}

	NormalizeDates(doc)
	assert.Equal(t, "2021", doc.Sections[0].Items[0].Items[0].Period.End)
}

func TestNormalizeDates_AfterMarkdownParse(t *testing.T) {
	doc, err := Parse("# Jane Doe\n\n# Certifications\n## AWS Cert\nJune 2021\n", FormatMarkdown)
	require.NoError(t, err)

	period := doc.Sections[0].Items[0].Period
	require.NotNil(t, period)
	assert.Empty(t, period.End)

	NormalizeDates(doc)
	assert.Equal(t, "June 2021", period.End)
}

func TestNormalizeDates_NilDocument(t *testing.T) {
	assert.Nil(t, NormalizeDates(nil))
}
