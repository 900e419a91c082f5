package summarize

import (
	"sort"

	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

type ScoredSentence struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Rank scores every non-noise sentence of text against a frequency table built over
// the same text and returns them best first. Equal scores keep document order.
func Rank(text string) []ScoredSentence {
	freqs := textproc.FrequencyTable(text)

	var scored []ScoredSentence
	for _, s := range textproc.SplitSentences(text) {
		if textproc.IsNoise(s) {
			continue
		}
		scored = append(scored, ScoredSentence{Text: s, Score: scoreSentence(s, freqs)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreSentence(sentence string, freqs map[string]int) int {
	score := 0
	for _, t := range textproc.Tokenize(sentence) {
		score += freqs[t]
	}
	return score
}

// TopSentences returns the text of the k best ranked sentences.
func TopSentences(text string, k int) []string {
	ranked := Rank(text)
	if k < 0 {
		k = 0
	}
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.Text)
	}
	return out
}
