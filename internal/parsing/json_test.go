package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullDocument(t *testing.T) {
	input := `{
		"name": "John Doe",
		"title": "Software Engineer",
		"contact": {
			"email": "john@example.com",
			"phone": "123-456-7890",
			"location": "New York, NY",
			"websites": [
				{"url": "https://github.com/johndoe", "type": "github"}
			]
		},
		"sections": [
			{
				"title": "Experience",
				"items": [
					{
						"title": "Senior Developer",
						"subtitle": "Tech Company",
						"period": {"start": "2020-01", "end": "2023-06"},
						"description": "Led development team",
						"content": ["Project A"],
						"tags": ["React", "TypeScript"]
					}
				]
			}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", doc.Name)
	assert.Equal(t, "Software Engineer", doc.Title)
	assert.Equal(t, "john@example.com", doc.Contact.Email)
	assert.Equal(t, "123-456-7890", doc.Contact.Phone)
	assert.Equal(t, "New York, NY", doc.Contact.Location)
	require.Len(t, doc.Contact.Websites, 1)
	assert.Equal(t, "github", doc.Contact.Websites[0].Type)
	assert.Equal(t, "GitHub", doc.Contact.Websites[0].Label, "label resolved from the registry when absent")

	require.Len(t, doc.Sections, 1)
	item := doc.Sections[0].Items[0]
	assert.Equal(t, "Senior Developer", item.Title)
	assert.Equal(t, "Tech Company", item.Subtitle)
	assert.Equal(t, "Led development team", item.Description)
	require.NotNil(t, item.Period)
	assert.Equal(t, "2020-01", item.Period.Start)
	assert.Equal(t, "2023-06", item.Period.End)
	assert.Equal(t, []string{"Project A"}, item.Content)
	assert.Equal(t, []string{"React", "TypeScript"}, item.Tags)
}

func TestParseJSON_InvalidSyntax(t *testing.T) {
	_, err := Parse(`{"name": "John",`, FormatJSON)
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, FormatJSON, syntaxErr.Format)
	assert.Contains(t, err.Error(), "invalid json:")
}

func TestParseJSON_EmptyDocument(t *testing.T) {
	_, err := Parse(`{}`, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestParseJSON_LegacyDateField(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Certifications", "items": [
				{"title": "AWS Cert", "date": "June 2021"}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	item := doc.Sections[0].Items[0]
	require.NotNil(t, item.Period)
	assert.Equal(t, "June 2021", item.Period.Start)
	assert.Empty(t, item.Period.End)
}

func TestParseJSON_PeriodWinsOverLegacyDate(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Certifications", "items": [
				{"title": "Cert", "date": "2019", "period": {"start": "2021"}}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "2021", doc.Sections[0].Items[0].Period.Start)
}

func TestParseJSON_LegacyDetailsMergeIntoContent(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Experience", "items": [
				{
					"title": "Role",
					"content": ["Shipped the product"],
					"details": ["Shipped the product", "Mentored juniors"]
				}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Shipped the product", "Mentored juniors"},
		doc.Sections[0].Items[0].Content,
		"duplicates are skipped, order preserved")
}

func TestParseJSON_ScalarContentBecomesList(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Summary", "items": [
				{"title": "", "content": "One paragraph of prose."}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"One paragraph of prose."}, doc.Sections[0].Items[0].Content)
}

func TestParseJSON_StringItemBecomesUntitledItem(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Interests", "items": ["Hiking", "Chess"]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	// Two untitled single-content items collapse into one paragraph item.
	require.Len(t, doc.Sections[0].Items, 1)
	assert.Equal(t, []string{"Hiking", "Chess"}, doc.Sections[0].Items[0].Content)
}

func TestParseJSON_LegacySectionContentArray(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Experience", "content": [
				{"title": "Role", "subtitle": "Org"}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Sections[0].Items, 1)
	assert.Equal(t, "Role", doc.Sections[0].Items[0].Title)
}

func TestParseJSON_ParagraphStyleCollapse(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Summary", "items": [
				{"title": "", "content": ["First paragraph."]},
				{"title": "", "content": ["Second paragraph."]}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	require.Len(t, doc.Sections[0].Items, 1)
	assert.Equal(t,
		[]string{"First paragraph.", "Second paragraph."},
		doc.Sections[0].Items[0].Content)
}

func TestParseJSON_NoCollapseWhenItemHasPeriod(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Timeline", "items": [
				{"title": "", "content": ["a"], "period": {"start": "2020"}},
				{"title": "", "content": ["b"]}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)
	assert.Len(t, doc.Sections[0].Items, 2)
}

func TestParseJSON_NestedItems(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Skills", "items": [
				{
					"title": "Languages",
					"content": ["Go", "Python"],
					"items": [
						{"title": "Spoken", "content": ["English", "French"]}
					]
				}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)

	item := doc.Sections[0].Items[0]
	require.Len(t, item.Items, 1)
	assert.Equal(t, "Spoken", item.Items[0].Title)
	assert.Equal(t, []string{"English", "French"}, item.Items[0].Content)
}

func TestParseJSON_NumericScalarsCoerceToStrings(t *testing.T) {
	input := `{
		"name": "John Doe",
		"sections": [
			{"title": "Education", "items": [
				{"title": "BS", "date": 2017}
			]}
		]
	}`

	doc, err := Parse(input, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "2017", doc.Sections[0].Items[0].Period.Start)
}
