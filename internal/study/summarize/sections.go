package summarize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

const (
	DefaultSectionTitle = "Document"
	maxTitleRunes       = 120
	maxHeadingWords     = 12
)

var listPrefix = regexp.MustCompile(`^(\d+\.|[A-Z]\))\s+`)

type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// IsHeading reports whether a line reads like a section heading: short and either
// all caps or title cased, or a numbered/lettered list marker.
func IsHeading(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || utf8.RuneCountInString(s) > maxTitleRunes {
		return false
	}
	words := strings.Fields(s)
	if len(words) <= maxHeadingWords && (isAllUpper(s) || isTitleCased(words)) {
		return true
	}
	return listPrefix.MatchString(s)
}

// isAllUpper needs at least one cased letter and no lower-case one.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func isTitleCased(words []string) bool {
	for _, w := range words {
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// Segment splits text into heading-delimited sections in document order.
func Segment(text string) []Section {
	var sections []Section
	title := DefaultSectionTitle
	var body []string

	flush := func() {
		if joined := strings.TrimSpace(strings.Join(body, "\n")); joined != "" {
			sections = append(sections, Section{Title: title, Body: joined})
		}
		body = body[:0]
	}

	for _, line := range textproc.SplitLines(text) {
		if IsHeading(line) {
			flush()
			title = textproc.Truncate(strings.TrimSpace(line), maxTitleRunes)
			continue
		}
		body = append(body, line)
	}
	flush()
	return sections
}
