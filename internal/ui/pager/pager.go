// Package pager implements the scrollable full-screen view used by less and
// man. It is a state machine driven by key events; drawing goes through a
// Surface so the same logic runs on a tcell screen or in tests.
package pager

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docsh/internal/textutil"
)

const navigationHint = "j/k ↑/↓ to scroll, q to quit"

// Surface is the display the pager draws on.
type Surface interface {
	Write(text string)
	Clear()
	Size() (rows, cols int)
}

// StatusWriter is implemented by surfaces that draw the status line with
// their own styling. Surfaces without it receive the status through Write.
type StatusWriter interface {
	WriteStatus(text string)
}

// State is the pager's mode.
type State int

const (
	Inactive State = iota
	Active
)

// Outcome tells the caller what a key did.
type Outcome int

const (
	// Ignored means the key has no pager binding.
	Ignored Outcome = iota
	// Handled means the key was consumed, whether or not the view moved.
	Handled
	// Exited means the pager closed and the caller owns the screen again.
	Exited
)

// Pager holds the paging state of one document.
type Pager struct {
	surface  Surface
	lines    []string
	title    string
	offset   int
	height   int
	state    State
	rendered bool
}

// New returns an inactive pager drawing on surface.
func New(surface Surface) *Pager {
	return &Pager{surface: surface}
}

// Enter opens content in the pager and draws the first screen.
func (p *Pager) Enter(content, title string) {
	p.lines = strings.Split(content, "\n")
	p.title = title
	p.offset = 0
	p.state = Active
	p.rendered = false
	p.height = viewportHeight(p.surface)
	p.render()
}

// Active reports whether the pager currently owns input.
func (p *Pager) Active() bool {
	return p.state == Active
}

// Offset returns the index of the top visible line.
func (p *Pager) Offset() int {
	return p.offset
}

// ViewportHeight returns the number of content rows.
func (p *Pager) ViewportHeight() int {
	return p.height
}

// LineCount returns the number of lines in the open document.
func (p *Pager) LineCount() int {
	return len(p.lines)
}

// HandleKey applies a key event. Inactive pagers ignore everything.
func (p *Pager) HandleKey(ev *tcell.EventKey) Outcome {
	if p.state != Active || ev == nil {
		return Ignored
	}

	switch ev.Key() {
	case tcell.KeyDown, tcell.KeyEnter:
		p.ScrollDown()
	case tcell.KeyUp:
		p.ScrollUp()
	case tcell.KeyPgDn:
		p.PageDown()
	case tcell.KeyPgUp:
		p.PageUp()
	case tcell.KeyHome:
		p.Top()
	case tcell.KeyEnd:
		p.Bottom()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			p.Exit()
			return Exited
		case 'j', 'J':
			p.ScrollDown()
		case 'k', 'K':
			p.ScrollUp()
		case ' ':
			p.PageDown()
		case 'b', 'B':
			p.PageUp()
		case 'g':
			p.Top()
		case 'G':
			p.Bottom()
		default:
			return Ignored
		}
	default:
		return Ignored
	}
	return Handled
}

// ScrollDown moves the view one line down unless the bottom is visible.
func (p *Pager) ScrollDown() {
	if p.offset+p.height < len(p.lines) {
		p.moveTo(p.offset + 1)
	}
}

// ScrollUp moves the view one line up unless already at the top.
func (p *Pager) ScrollUp() {
	if p.offset > 0 {
		p.moveTo(p.offset - 1)
	}
}

// PageDown advances by a full viewport, stopping where the last line is at
// the bottom of the view. The step is h, not h-1: 30 lines at height 10
// page through offsets 0, 10, 20.
func (p *Pager) PageDown() {
	target := min(p.offset+p.height, p.maxOffset())
	if target > p.offset {
		p.moveTo(target)
	}
}

// PageUp moves back by a full viewport, stopping at the top.
func (p *Pager) PageUp() {
	target := max(p.offset-p.height, 0)
	if target < p.offset {
		p.moveTo(target)
	}
}

// Top jumps to the first line.
func (p *Pager) Top() {
	p.moveTo(0)
}

// Bottom jumps so the last line is visible.
func (p *Pager) Bottom() {
	p.moveTo(p.maxOffset())
}

// Exit drops the document and returns the pager to Inactive.
func (p *Pager) Exit() {
	if p.state != Active {
		return
	}
	p.lines = nil
	p.title = ""
	p.offset = 0
	p.state = Inactive
	p.rendered = false
	p.surface.Clear()
}

// Resize recomputes the viewport from the surface and redraws.
func (p *Pager) Resize() {
	if p.state != Active {
		return
	}
	p.height = viewportHeight(p.surface)
	p.offset = min(p.offset, p.maxOffset())
	p.render()
}

func (p *Pager) maxOffset() int {
	return max(len(p.lines)-p.height, 0)
}

func (p *Pager) moveTo(offset int) {
	if offset == p.offset {
		return
	}
	p.offset = offset
	p.render()
}

func (p *Pager) render() {
	_, cols := p.surface.Size()
	end := min(p.offset+p.height, len(p.lines))

	p.surface.Clear()
	for _, line := range p.lines[p.offset:end] {
		text := textutil.ExpandTabs(textutil.SanitizeTerminalText(line), textutil.DefaultTabWidth)
		if cols > 0 {
			text = textutil.TruncateToWidth(text, cols)
		}
		p.surface.Write(text + "\n")
	}

	status := p.statusLine(end)
	if sw, ok := p.surface.(StatusWriter); ok {
		sw.WriteStatus(status)
	} else {
		p.surface.Write(status)
	}
	p.rendered = true
}

func (p *Pager) statusLine(bottom int) string {
	n := len(p.lines)
	var status string
	if bottom >= n {
		status = "(END)"
	} else {
		pct := int(math.Round(float64(bottom) / float64(n) * 100))
		status = strings.TrimSpace(fmt.Sprintf("%s (%d%%)", p.title, pct))
	}
	if !p.rendered && n > p.height {
		status += "  " + navigationHint
	}
	return status
}

func viewportHeight(s Surface) int {
	rows, _ := s.Size()
	return max(rows-1, 1)
}
