package summarize

import (
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

const fallbackTitle = "Summary"

// Summarizer builds a sectioned bullet summary: the best sentences of every section
// under its heading, or the best sentences of the whole text when no section yields any.
type Summarizer struct {
	perSection int
	fallback   int
}

func NewSummarizer(perSection int, fallback int) *Summarizer {
	if perSection <= 0 {
		perSection = config.DefaultSummaryPerSection
	}
	if fallback <= 0 {
		fallback = config.DefaultSummaryFallback
	}
	return &Summarizer{perSection: perSection, fallback: fallback}
}

func (s *Summarizer) Summarize(text string) string {
	var blocks []string
	for _, section := range Segment(text) {
		top := TopSentences(section.Body, s.perSection)
		if len(top) == 0 {
			continue
		}
		blocks = append(blocks, renderBlock(section.Title, top))
	}

	if len(blocks) == 0 {
		top := TopSentences(text, s.fallback)
		if len(top) == 0 {
			return ""
		}
		blocks = append(blocks, renderBlock(fallbackTitle, top))
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(title string, sentences []string) string {
	var b strings.Builder
	b.WriteString("### ")
	b.WriteString(title)
	for _, sentence := range sentences {
		b.WriteString("\n- ")
		b.WriteString(textproc.NormalizeSpace(sentence))
	}
	return b.String()
}
