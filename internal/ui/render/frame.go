package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Frame is a full-screen surface for the pager. Text is written row by row
// from the top; the status line always sits on the last row.
type Frame struct {
	screen tcell.Screen
	theme  ColorTheme
	row    int
	col    int
}

// NewFrame returns a frame drawing on screen.
func NewFrame(screen tcell.Screen) *Frame {
	return &Frame{screen: screen, theme: GetColorTheme()}
}

// Size reports the screen as rows and columns.
func (f *Frame) Size() (rows, cols int) {
	w, h := f.screen.Size()
	return h, w
}

// Clear blanks the screen and resets the write position.
func (f *Frame) Clear() {
	f.screen.Clear()
	f.screen.HideCursor()
	f.row, f.col = 0, 0
}

// Write draws text at the write position. Newlines advance to the next row.
func (f *Frame) Write(text string) {
	w, h := f.screen.Size()
	style := tcell.StyleDefault.Foreground(f.theme.Foreground)
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			f.row++
			f.col = 0
		}
		if part == "" || f.row >= h {
			continue
		}
		f.col = drawTextLine(f.screen, f.col, f.row, w-f.col, part, style)
	}
}

// WriteStatus draws the status line on the last row and flushes the frame.
func (f *Frame) WriteStatus(text string) {
	w, h := f.screen.Size()
	if h > 0 {
		drawTextLine(f.screen, 0, h-1, w, text, f.theme.StatusStyle())
	}
	f.screen.Show()
}
