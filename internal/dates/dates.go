// Package dates recognizes date spans in free text. Dates are opaque
// display strings; nothing here interprets them as calendar values.
package dates

import (
	"regexp"
	"strings"

	"github.com/jonathan/resumepdf/internal/resume"
)

// Present is the literal open-ended range marker. The match is
// case-sensitive: "present" in running text stays ordinary text.
const Present = "Present"

// A fragment longer than this with no range separator is treated as
// prose that merely contains a date, not as a date itself.
const maxBareDateLen = 20

var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	shortYearPattern = regexp.MustCompile(`\b\d{2}\b`)
	monthPattern     = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?`)
	numericPattern   = regexp.MustCompile(`\b\d{1,2}[-/]\d{2,4}\b|\b\d{4}[-/]\d{1,2}\b`)

	// A leading date token followed by a dash separator (ASCII hyphen or
	// en-dash) and a trailing remainder. The token alternatives are
	// ordered so numeric forms like "01-2020" absorb their inner dash
	// before the separator is considered.
	rangePattern = regexp.MustCompile(`^((?:[A-Za-z]{3,}\.?[\s.]?\d{4})|\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}|\d{1,2}/\d{2}|\d{4})\s*[-–]\s*(.+)$`)
)

// Looks reports whether a fragment plausibly denotes a date: a 4-digit
// year, a month name combined with a 4- or 2-digit year, or a numeric
// MM/YYYY-style pattern. This pre-filter keeps ordinary sentences from
// being classified as dates.
func Looks(text string) bool {
	hasYear := yearPattern.MatchString(text)
	if hasYear {
		return true
	}
	if monthPattern.MatchString(text) && shortYearPattern.MatchString(text) {
		return true
	}
	return numericPattern.MatchString(text)
}

// ParsePeriod attempts to read a fragment as a single date or a
// start-end range. Returns nil when the fragment does not denote a date.
//
// A trailing remainder of exactly "Present" leaves the end unset. A
// remainder that is neither a date nor "Present" marks a false-positive
// separator (a hyphenated title, say) and only the start survives.
func ParsePeriod(text string) *resume.Period {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !Looks(trimmed) {
		return nil
	}

	if m := rangePattern.FindStringSubmatch(trimmed); m != nil {
		start := strings.TrimSpace(m[1])
		rest := strings.TrimSpace(m[2])
		switch {
		case rest == Present:
			return &resume.Period{Start: start}
		case Looks(rest):
			return &resume.Period{Start: start, End: rest}
		default:
			return &resume.Period{Start: start}
		}
	}

	// No separator: a short date-like fragment is a bare start date.
	if len(trimmed) < maxBareDateLen {
		return &resume.Period{Start: trimmed}
	}
	return nil
}
