package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cell is one rune of console text with its style.
type cell struct {
	r     rune
	style tcell.Style
}

func cellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

func toCells(text string, style tcell.Style) []cell {
	cells := make([]cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, cell{r: r, style: style})
	}
	return cells
}

// wrapCells splits a line into rows no wider than width. An empty line is
// one empty row.
func wrapCells(line []cell, width int) [][]cell {
	if width <= 0 || len(line) == 0 {
		return [][]cell{line}
	}
	var rows [][]cell
	start, current := 0, 0
	for i, c := range line {
		w := cellWidth(c.r)
		if current+w > width && current > 0 {
			rows = append(rows, line[start:i])
			start, current = i, 0
		}
		current += w
	}
	return append(rows, line[start:])
}

func drawCells(screen tcell.Screen, y, maxWidth int, cells []cell) int {
	x := 0
	for _, c := range cells {
		w := cellWidth(c.r)
		if x+w > maxWidth {
			break
		}
		screen.SetContent(x, y, c.r, nil, c.style)
		x += w
	}
	return x
}

// drawTextLine draws text from startX, attaching zero-width runes to the
// preceding cell. It returns the column after the last drawn rune.
func drawTextLine(screen tcell.Screen, startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}
		w := cellWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}
