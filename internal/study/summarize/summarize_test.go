package summarize

import (
	"strings"
	"testing"

	"github.com/akolanti/StudyAPI/internal/study/textproc"
	"github.com/google/go-cmp/cmp"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"INTRODUCTION", true},
		{"  Cell Biology Basics  ", true},
		{"the cat sat on the mat and it was very long with many extra words making thirteen", false},
		{"1. the numbered item with a lot of words that keeps going past twelve of them", true},
		{"B) lettered option", true},
		{"CHAPTER 2", true},
		{"Chapter 2", false},
		{"", false},
		{"   ", false},
		{"12345", false},
		{strings.Repeat("A", 121), false},
		{"Cells divide by mitosis.", false},
	}
	for _, tt := range tests {
		if got := IsHeading(tt.line); got != tt.want {
			t.Errorf("IsHeading(%.40q) = %v; want %v", tt.line, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	text := "Intro text line one.\nCELL BIOLOGY\nCells are small.\n\nThey divide.\nGENETICS\n\nEVOLUTION\nSpecies change over time."
	want := []Section{
		{Title: "Document", Body: "Intro text line one."},
		{Title: "CELL BIOLOGY", Body: "Cells are small.\n\nThey divide."},
		{Title: "EVOLUTION", Body: "Species change over time."},
	}
	if diff := cmp.Diff(want, Segment(text)); diff != "" {
		t.Errorf("Segment mismatch (-want +got):\n%s", diff)
	}
}

func TestSegment_ListMarkerStartsSection(t *testing.T) {
	heading := "1. " + strings.Repeat("x", 200)
	sections := Segment(heading[:118] + "\nbody line here.")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != heading[:118] {
		t.Errorf("unexpected title %q", sections[0].Title)
	}
}

func TestSegment_Empty(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Errorf("Segment(\"\") = %v; want none", got)
	}
}

func TestRank_Order(t *testing.T) {
	text := "Plants need light. Light drives photosynthesis in plants. Water matters."
	want := []ScoredSentence{
		{Text: "Light drives photosynthesis in plants.", Score: 6},
		{Text: "Plants need light.", Score: 5},
		{Text: "Water matters.", Score: 2},
	}
	if diff := cmp.Diff(want, Rank(text)); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_TiesKeepDocumentOrder(t *testing.T) {
	got := Rank("Alpha beta. Gamma delta. Epsilon zeta.")
	var texts []string
	for _, s := range got {
		texts = append(texts, s.Text)
	}
	if diff := cmp.Diff([]string{"Alpha beta.", "Gamma delta.", "Epsilon zeta."}, texts); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_DropsNoise(t *testing.T) {
	got := Rank("Plants need light. Ask your teacher about plants. Read www.plants.org daily.")
	if len(got) != 1 || got[0].Text != "Plants need light." {
		t.Errorf("noise not dropped: %+v", got)
	}
}

func TestRank_Deterministic(t *testing.T) {
	text := "Osmosis moves water. Water crosses membranes. Membranes filter solutes. Solutes follow water."
	first := Rank(text)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Rank(text)); diff != "" {
			t.Fatalf("Rank not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestScoreSentence_Monotonic(t *testing.T) {
	text := "Enzymes lower activation energy. Enzymes are proteins. Enzymes speed reactions."
	freqs := textproc.FrequencyTable(text)
	with := scoreSentence("Enzymes lower activation energy enzymes.", freqs)
	without := scoreSentence("Enzymes lower activation energy.", freqs)
	if with < without {
		t.Errorf("duplicated term lowered the score: %d < %d", with, without)
	}
	if with != without+freqs["enzymes"] {
		t.Errorf("score with duplicate = %d; want %d", with, without+freqs["enzymes"])
	}
}

func TestTopSentences_Bounds(t *testing.T) {
	text := "One fish swims. Two fish swim."
	if got := TopSentences(text, 10); len(got) != 2 {
		t.Errorf("expected all sentences, got %v", got)
	}
	if got := TopSentences(text, 0); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
	if got := TopSentences(text, -1); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

func TestSummarize_Sectioned(t *testing.T) {
	text := "CELL BIOLOGY\n" +
		"Cells divide often. Cells grow fast. Membranes protect cells. Nuclei store genes. Ribosomes build proteins.\n" +
		"GENETICS\n" +
		"Genes encode proteins."
	want := "### CELL BIOLOGY\n" +
		"- Cells divide often.\n" +
		"- Cells grow fast.\n" +
		"- Membranes protect cells.\n" +
		"- Nuclei store genes.\n" +
		"\n" +
		"### GENETICS\n" +
		"- Genes encode proteins."
	got := NewSummarizer(4, 8).Summarize(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_FallbackWhenOnlyHeadings(t *testing.T) {
	got := NewSummarizer(0, 0).Summarize("Photosynthesis Basics\nLight Reactions Happen Here")
	want := "### Summary\n- Photosynthesis Basics Light Reactions Happen Here"
	if got != want {
		t.Errorf("Summarize = %q; want %q", got, want)
	}
}

func TestSummarize_EmptyAndNoise(t *testing.T) {
	s := NewSummarizer(4, 8)
	for _, in := range []string{"", "   \n\n ", "Ask the teacher.\nSee https://x.org now."} {
		if got := s.Summarize(in); got != "" {
			t.Errorf("Summarize(%q) = %q; want empty", in, got)
		}
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	text := "INTRODUCTION\nWater moves by osmosis. Osmosis needs membranes. Membranes are thin.\nSUMMARY NOTES\nWater is vital."
	s := NewSummarizer(4, 8)
	if a, b := s.Summarize(text), s.Summarize(text); a != b {
		t.Errorf("Summarize not deterministic:\n%s\n---\n%s", a, b)
	}
}
