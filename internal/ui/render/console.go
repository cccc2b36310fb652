// Package render draws the shell console and the pager frame on a tcell
// screen.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docsh/internal/textutil"
)

const maxScrollback = 5000

// Console is a scrolling transcript followed by the prompt line.
type Console struct {
	screen tcell.Screen
	theme  ColorTheme

	lines  [][]cell
	scroll int // rows scrolled back from the bottom

	prompt string
	input  []rune
	cursor int
}

// NewConsole returns an empty console drawing on screen.
func NewConsole(screen tcell.Screen) *Console {
	return &Console{screen: screen, theme: GetColorTheme()}
}

// Banner prints the welcome text.
func (c *Console) Banner(title string) {
	if title == "" {
		title = "Documentation"
	}
	c.appendText(title+" Terminal", c.theme.style(c.theme.Banner).Bold(true))
	c.appendText("Welcome to the interactive documentation terminal.", c.theme.style(c.theme.BannerAccent))
	c.appendText(`Type "help" for available commands.`, c.theme.style(c.theme.Hint))
	c.appendText("", tcell.StyleDefault)
}

// Echo records a submitted prompt line in the transcript.
func (c *Console) Echo(prompt, line string) {
	cells := toCells(prompt, c.theme.style(c.theme.Prompt))
	cells = append(cells, toCells(clean(line), c.theme.style(c.theme.Foreground))...)
	c.push(cells)
}

// Output prints command output.
func (c *Console) Output(text string) {
	c.appendText(text, c.theme.style(c.theme.Foreground))
}

// Error prints a failure message.
func (c *Console) Error(text string) {
	c.appendText(text, c.theme.style(c.theme.Error))
}

// Clear drops the transcript.
func (c *Console) Clear() {
	c.lines = nil
	c.scroll = 0
}

// Lines returns the transcript as plain text, one entry per logical line.
func (c *Console) Lines() []string {
	out := make([]string, len(c.lines))
	for i, line := range c.lines {
		var b strings.Builder
		for _, cl := range line {
			b.WriteRune(cl.r)
		}
		out[i] = b.String()
	}
	return out
}

// SetPrompt sets the prompt and the input shown after it.
func (c *Console) SetPrompt(prompt, input string, cursor int) {
	c.prompt = prompt
	c.input = []rune(input)
	c.cursor = min(max(cursor, 0), len(c.input))
}

// Width is the number of columns available for output.
func (c *Console) Width() int {
	w, _ := c.screen.Size()
	return w
}

// ScrollUp moves one page back through the transcript.
func (c *Console) ScrollUp() {
	_, h := c.screen.Size()
	c.scroll += max(h-1, 1)
}

// ScrollDown moves one page toward the prompt.
func (c *Console) ScrollDown() {
	_, h := c.screen.Size()
	c.scroll = max(c.scroll-max(h-1, 1), 0)
}

// Follow jumps back to the prompt.
func (c *Console) Follow() {
	c.scroll = 0
}

// Scroll reports how many rows the view is scrolled back.
func (c *Console) Scroll() int {
	return c.scroll
}

// Draw renders the transcript and the prompt line, placing the terminal
// cursor at the input cursor.
func (c *Console) Draw() {
	w, h := c.screen.Size()
	c.screen.Clear()
	c.screen.HideCursor()
	if w <= 0 || h <= 0 {
		c.screen.Show()
		return
	}

	var rows [][]cell
	for _, line := range c.lines {
		rows = append(rows, wrapCells(line, w)...)
	}
	promptRow := len(rows)
	promptLine := toCells(c.prompt, c.theme.style(c.theme.Prompt))
	promptLine = append(promptLine, toCells(string(c.input), c.theme.style(c.theme.Foreground))...)
	rows = append(rows, wrapCells(promptLine, w)...)

	c.scroll = min(c.scroll, max(len(rows)-h, 0))
	end := len(rows) - c.scroll
	start := max(end-h, 0)
	for y, row := range rows[start:end] {
		drawCells(c.screen, y, w, row)
	}

	if c.scroll == 0 {
		col := textutil.DisplayWidth(c.prompt) + textutil.DisplayWidth(string(c.input[:c.cursor]))
		y := promptRow + col/w - start
		if y >= 0 && y < h {
			c.screen.ShowCursor(col%w, y)
		}
	}
	c.screen.Show()
}

func (c *Console) appendText(text string, style tcell.Style) {
	for _, line := range strings.Split(text, "\n") {
		c.push(toCells(clean(line), style))
	}
}

func (c *Console) push(line []cell) {
	c.lines = append(c.lines, line)
	if over := len(c.lines) - maxScrollback; over > 0 {
		c.lines = c.lines[over:]
	}
	c.scroll = 0
}

func clean(line string) string {
	return textutil.ExpandTabs(textutil.SanitizeTerminalText(line), textutil.DefaultTabWidth)
}
