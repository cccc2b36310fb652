package search

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	previewWidth  = 80
	previewCutoff = 77
)

// Format renders results for terminal output.
func Format(results []Result, term string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matches found for %q", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d file(s) with matches for %q:\n\n", len(results), term)
	for i, res := range results {
		noun := "matches"
		if res.TotalMatches == 1 {
			noun = "match"
		}
		fmt.Fprintf(&b, "%s (%d %s)\n", res.Path, res.TotalMatches, noun)
		for _, line := range res.Lines {
			fmt.Fprintf(&b, "  %d: %s\n", line.Number, preview(line.Text))
		}
		if i < len(results)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func preview(line string) string {
	if utf8.RuneCountInString(line) <= previewWidth {
		return line
	}
	runes := []rune(line)
	return string(runes[:previewCutoff]) + "..."
}
