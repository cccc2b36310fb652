package complete

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth is the terminal width assumed when laying out matches.
const DisplayWidth = 80

const columnGap = 2

// FormatColumns lays matches out in rows of equal-width columns. The column
// count follows from width and the widest match.
func FormatColumns(matches []string, width int) string {
	if len(matches) == 0 {
		return ""
	}
	if width <= 0 {
		width = DisplayWidth
	}

	widest := 0
	for _, m := range matches {
		if w := runewidth.StringWidth(m); w > widest {
			widest = w
		}
	}
	columns := (width + columnGap) / (widest + columnGap)
	if columns < 1 {
		columns = 1
	}

	var b strings.Builder
	for i := 0; i < len(matches); i += columns {
		end := i + columns
		if end > len(matches) {
			end = len(matches)
		}
		row := matches[i:end]
		for j, m := range row {
			if j == len(row)-1 {
				b.WriteString(m)
				break
			}
			b.WriteString(runewidth.FillRight(m, widest+columnGap))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
