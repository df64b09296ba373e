package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainResume = `John Smith
Senior Software Engineer

Contact Information:
Email: john@example.com
Phone: 555-1234
Location: Boston, MA
Website: https://john.dev

Summary: Engineer with a decade of platform experience.

EXPERIENCE

Acme Corp
January 2020 - Present
- Built the data pipeline
- Led two migrations

Globex
2017 - 2019
- Shipped the mobile app

EDUCATION

State University
2013 - 2017
- BS in Computer Science
`

func TestParsePlainText_FullDocument(t *testing.T) {
	doc, err := Parse(plainResume, FormatPlainText)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", doc.Name)
	assert.Equal(t, "Senior Software Engineer", doc.Title)
	assert.Equal(t, "john@example.com", doc.Contact.Email)
	assert.Equal(t, "555-1234", doc.Contact.Phone)
	assert.Equal(t, "Boston, MA", doc.Contact.Location)
	require.Len(t, doc.Contact.Websites, 1)
	assert.Equal(t, "https://john.dev", doc.Contact.Websites[0].URL)
	assert.Equal(t, "personal", doc.Contact.Websites[0].Type)

	require.Len(t, doc.Sections, 3)

	// The summary: field becomes a synthetic leading section.
	summary := doc.Sections[0]
	assert.Equal(t, "SUMMARY", summary.Title)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, []string{"Engineer with a decade of platform experience."}, summary.Items[0].Content)

	exp := doc.Sections[1]
	assert.Equal(t, "EXPERIENCE", exp.Title)
	require.Len(t, exp.Items, 2)
	assert.Equal(t, "Acme Corp", exp.Items[0].Title)
	require.NotNil(t, exp.Items[0].Period)
	assert.Equal(t, "January 2020", exp.Items[0].Period.Start)
	assert.Empty(t, exp.Items[0].Period.End)
	assert.Equal(t, []string{"Built the data pipeline", "Led two migrations"}, exp.Items[0].Content)
	assert.Equal(t, "Globex", exp.Items[1].Title)
	assert.Equal(t, "2019", exp.Items[1].Period.End)

	edu := doc.Sections[2]
	assert.Equal(t, "EDUCATION", edu.Title)
	require.Len(t, edu.Items, 1)
	assert.Equal(t, "State University", edu.Items[0].Title)
	assert.Equal(t, []string{"BS in Computer Science"}, edu.Items[0].Content)
}

func TestParsePlainText_SubsectionHeaders(t *testing.T) {
	input := `John Smith

SKILLS

Technical Skills:
- Go
- Python

Soft Skills:
- Mentoring
`

	doc, err := Parse(input, FormatPlainText)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	items := doc.Sections[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "Technical Skills:", items[0].Title)
	assert.Equal(t, []string{"Go", "Python"}, items[0].Content)
	assert.Equal(t, "Soft Skills:", items[1].Title)
	assert.Equal(t, []string{"Mentoring"}, items[1].Content)
}

func TestParsePlainText_LoneYearIsNotASection(t *testing.T) {
	input := `John Smith

EXPERIENCE

Acme Corp
2020
- Did things
`

	doc, err := Parse(input, FormatPlainText)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "EXPERIENCE", doc.Sections[0].Title)
	item := doc.Sections[0].Items[0]
	assert.Equal(t, "Acme Corp", item.Title)
	require.NotNil(t, item.Period)
	assert.Equal(t, "2020", item.Period.Start)
}

func TestParsePlainText_ContinuationItemsMerge(t *testing.T) {
	input := `John Smith

PROJECTS

Side Project
2021

- Wrote the parser
`

	doc, err := Parse(input, FormatPlainText)
	require.NoError(t, err)

	items := doc.Sections[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Side Project", items[0].Title)
	assert.Equal(t, "2021", items[0].Period.Start)
	assert.Equal(t, []string{"Wrote the parser"}, items[0].Content)
}

func TestParsePlainText_EmptyInputFails(t *testing.T) {
	_, err := Parse("", FormatPlainText)
	require.Error(t, err)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Contains(t, err.Error(), "missing name field")
}
