package extract

import (
	"strings"

	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

// Clean trims every line, keeps at most one blank line in a row and trims the result.
func Clean(text string) string {
	lines := textproc.SplitLines(text)
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
