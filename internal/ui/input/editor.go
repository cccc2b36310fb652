package input

import "strings"

// Editor is a single-line editor with session history.
type Editor struct {
	buf    []rune
	cursor int

	history []string
	// histIdx points into history while browsing; len(history) means the
	// user is on the in-progress line.
	histIdx int
	draft   string
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Line returns the current input.
func (e *Editor) Line() string {
	return string(e.buf)
}

// Cursor returns the cursor position in runes.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Insert types r at the cursor.
func (e *Editor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
}

// Backspace deletes the rune before the cursor.
func (e *Editor) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (e *Editor) Delete() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	return true
}

func (e *Editor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *Editor) Right() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

func (e *Editor) Home() {
	e.cursor = 0
}

func (e *Editor) End() {
	e.cursor = len(e.buf)
}

// KillLine drops everything before the cursor.
func (e *Editor) KillLine() {
	e.buf = append([]rune(nil), e.buf[e.cursor:]...)
	e.cursor = 0
}

// SetLine replaces the input and moves the cursor to the end.
func (e *Editor) SetLine(line string) {
	e.buf = []rune(line)
	e.cursor = len(e.buf)
}

// Reset clears the input and leaves history browsing.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
	e.cursor = 0
	e.histIdx = len(e.history)
	e.draft = ""
}

// Submit returns the current line and records it in history. Blank lines
// and immediate repeats are not recorded.
func (e *Editor) Submit() string {
	line := e.Line()
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		if n := len(e.history); n == 0 || e.history[n-1] != trimmed {
			e.history = append(e.history, trimmed)
		}
	}
	e.Reset()
	return line
}

// Prev recalls the previous history entry.
func (e *Editor) Prev() bool {
	if e.histIdx == 0 || len(e.history) == 0 {
		return false
	}
	if e.histIdx == len(e.history) {
		e.draft = e.Line()
	}
	e.histIdx--
	e.SetLine(e.history[e.histIdx])
	return true
}

// Next moves toward the newest entry, restoring the in-progress line after
// the last one.
func (e *Editor) Next() bool {
	if e.histIdx >= len(e.history) {
		return false
	}
	e.histIdx++
	if e.histIdx == len(e.history) {
		e.SetLine(e.draft)
		return true
	}
	e.SetLine(e.history[e.histIdx])
	return true
}

// History returns the recorded commands, oldest first.
func (e *Editor) History() []string {
	return append([]string(nil), e.history...)
}
