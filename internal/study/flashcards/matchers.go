package flashcards

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

const (
	minAnswerRunes      = 5
	maxCopulaSentence   = 240
	maxFrequentTerms    = 30
	maxClozeSentences   = 20
	minClozeWords       = 6
	clozeBlank          = "_____"
	definitionPrefix    = "Define: "
	bulletCutset        = "-•* \t"
	definitionUrlPrefix = "//"
)

var (
	definitionSeparators = []string{":", "–", "—", " - "}
	termPattern          = regexp.MustCompile(`^[A-Za-z0-9 '()\-]{3,80}$`)
	copulaPattern        = regexp.MustCompile(`^([A-Z][A-Za-z0-9 '\-]{1,79}?) (?:is|are|was|were) (.+)$`)
	capitalizedWord      = regexp.MustCompile(`\b[A-Z][A-Za-z]{2,}\b`)
)

// definitionLines matches "term: definition" style lines. The definition ends at the
// first sentence boundary.
func definitionLines(doc *document) []Card {
	var cards []Card
	for _, raw := range doc.lines {
		line := strings.TrimLeft(strings.TrimSpace(raw), bulletCutset)
		term, rest, ok := splitDefinition(line)
		if !ok {
			continue
		}
		definition := firstSentence(rest)
		if utf8.RuneCountInString(definition) < minAnswerRunes || strings.HasPrefix(definition, definitionUrlPrefix) {
			continue
		}
		cards = append(cards, Card{Question: definitionPrefix + term, Answer: definition})
	}
	return cards
}

// splitDefinition cuts line at its earliest separator.
func splitDefinition(line string) (string, string, bool) {
	cut, width := -1, 0
	for _, sep := range definitionSeparators {
		if i := strings.Index(line, sep); i >= 0 && (cut < 0 || i < cut) {
			cut, width = i, len(sep)
		}
	}
	if cut < 0 {
		return "", "", false
	}
	term := strings.TrimSpace(line[:cut])
	if !termPattern.MatchString(term) || !strings.ContainsFunc(term, unicode.IsLetter) {
		return "", "", false
	}
	return term, strings.TrimSpace(line[cut+width:]), true
}

func firstSentence(s string) string {
	sentences := textproc.SplitSentences(s)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}

// copulaSentences matches "Term is/are/was/were rest" sentences.
func copulaSentences(doc *document) []Card {
	var cards []Card
	for _, s := range doc.sentences {
		if utf8.RuneCountInString(s) > maxCopulaSentence {
			continue
		}
		m := copulaPattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		term := m[1]
		if textproc.IsStopword(strings.ToLower(term)) {
			continue
		}
		rest := strings.TrimRight(m[2], ". ")
		if utf8.RuneCountInString(rest) < minAnswerRunes {
			continue
		}
		cards = append(cards, Card{Question: "What is " + term + "?", Answer: rest})
	}
	return cards
}

// frequentTerms looks up the most common capitalized words and pairs each with the
// short explanation that follows its first dash, comma or colon.
func frequentTerms(doc *document) []Card {
	var cards []Card
	for _, term := range topCapitalized(doc.normalized, maxFrequentTerms) {
		explain := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b\s*[-–—,:]\s*([^.;]{5,160})(?:[.;]|$)`)
		m := explain.FindStringSubmatch(doc.normalized)
		if m == nil {
			continue
		}
		answer := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(answer) < minAnswerRunes {
			continue
		}
		cards = append(cards, Card{Question: definitionPrefix + term, Answer: answer})
	}
	return cards
}

// topCapitalized counts capitalized non-stopword words. Ties keep first appearance.
func topCapitalized(text string, k int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range capitalizedWord.FindAllString(text, -1) {
		if textproc.IsStopword(strings.ToLower(w)) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > k {
		order = order[:k]
	}
	return order
}

// clozeSentences blanks the word a third of the way into each of the first long
// sentences.
func clozeSentences(doc *document) []Card {
	var cards []Card
	used := 0
	for _, s := range doc.sentences {
		if used == maxClozeSentences {
			break
		}
		words := strings.Fields(s)
		if len(words) <= minClozeWords {
			continue
		}
		used++

		idx := len(words) / 3
		answer := strings.TrimFunc(words[idx], func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if answer == "" {
			continue
		}
		words[idx] = strings.Replace(words[idx], answer, clozeBlank, 1)
		question := strings.TrimRight(strings.Join(words, " "), ".!?") + "?"
		cards = append(cards, Card{Question: question, Answer: answer})
	}
	return cards
}
