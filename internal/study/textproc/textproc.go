// Package textproc holds the lexical primitives shared by the summarizer and the
// flashcard generator: line and sentence splitting, tokenization, the stopword set
// and the noise filter.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxSentenceRunes = 400

var stopwords = toSet(
	"the", "a", "an", "and", "or", "to", "of", "in", "on", "for", "with", "is", "are",
	"as", "that", "this", "it", "by", "be", "from", "at", "was", "were", "which", "has",
	"had", "have", "but", "not", "their", "his", "her", "its", "they", "them", "we", "you",
)

var noisePattern = regexp.MustCompile(
	`https?://|www\.|@|optional|teacher|students?|materials|procedure|homework|database|power\s*point|attached|note:?\s*\d+`,
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether the lower-cased token is in the stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// SplitLines splits on \n, \r\n and \r.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// SplitSentences cuts text at whitespace that immediately follows '.', '!' or '?'.
// Pieces are trimmed and empty pieces dropped.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	var prev rune
	for i, r := range text {
		if unicode.IsSpace(r) && isTerminal(prev) {
			sentences = appendTrimmed(sentences, text[start:i])
			start = i
		}
		prev = r
	}
	return appendTrimmed(sentences, text[start:])
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

// Tokenize returns the maximal runs of [a-z0-9'] in the lower-cased text.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	start := -1
	for i := 0; i < len(lower); i++ {
		if isTokenByte(lower[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

func isTokenByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '\''
}

// FrequencyTable counts the tokens of text, skipping stopwords and tokens of two
// characters or fewer.
func FrequencyTable(text string) map[string]int {
	freqs := make(map[string]int)
	for _, t := range Tokenize(text) {
		if len(t) <= 2 || IsStopword(t) {
			continue
		}
		freqs[t]++
	}
	return freqs
}

// IsNoise flags administrative or link-like sentences and overly long list dumps.
func IsNoise(sentence string) bool {
	if utf8.RuneCountInString(sentence) > maxSentenceRunes {
		return true
	}
	return noisePattern.MatchString(strings.ToLower(sentence))
}

// NormalizeSpace collapses every whitespace run to a single space and trims.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Clamp bounds the document size handed to the pipeline.
func Clamp(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return text
	}
	return Truncate(text, maxRunes)
}
