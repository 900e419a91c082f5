// Package flashcards turns plain study text into question/answer pairs with a fixed
// sequence of lexical matchers.
package flashcards

import (
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

const (
	maxQuestionRunes = 180
	maxAnswerRunes   = 300
)

type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// document is the shared view every matcher reads. It is built once per call.
type document struct {
	lines      []string
	normalized string
	sentences  []string
}

func newDocument(text string) *document {
	normalized := textproc.NormalizeSpace(text)
	return &document{
		lines:      textproc.SplitLines(text),
		normalized: normalized,
		sentences:  textproc.SplitSentences(normalized),
	}
}

type matcher func(*document) []Card

// primary matchers run in priority order; the cloze matcher only runs when none of
// them produced a card.
var primary = []matcher{definitionLines, copulaSentences, frequentTerms}

type Generator struct {
	maxCards int
}

func NewGenerator(maxCards int) *Generator {
	if maxCards <= 0 || maxCards > config.DefaultMaxCards {
		maxCards = config.DefaultMaxCards
	}
	return &Generator{maxCards: maxCards}
}

// Generate runs every matcher over text and returns the deduplicated cards, capped at
// the generator's limit.
func (g *Generator) Generate(text string) []Card {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc := newDocument(text)

	var candidates []Card
	for _, m := range primary {
		candidates = append(candidates, m(doc)...)
	}
	if len(candidates) == 0 {
		candidates = clozeSentences(doc)
	}
	return dedupe(candidates, g.maxCards)
}

// Generate is a shorthand for NewGenerator(maxCards).Generate(text).
func Generate(text string, maxCards int) []Card {
	return NewGenerator(maxCards).Generate(text)
}

func dedupe(candidates []Card, limit int) []Card {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Card, 0, min(len(candidates), limit))
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		c.Question = textproc.Truncate(c.Question, maxQuestionRunes)
		c.Answer = textproc.Truncate(c.Answer, maxAnswerRunes)
		if _, dup := seen[c.Question]; dup {
			continue
		}
		seen[c.Question] = struct{}{}
		out = append(out, c)
	}
	return out
}
