package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the prompt to do.
type Action int

const (
	ActionNone Action = iota
	ActionInsert
	ActionSubmit
	ActionComplete
	ActionBackspace
	ActionDelete
	ActionLeft
	ActionRight
	ActionHome
	ActionEnd
	ActionKillLine
	ActionHistoryPrev
	ActionHistoryNext
	ActionInterrupt
	ActionClearScreen
	ActionEOF
	ActionScrollUp
	ActionScrollDown
	ActionSuspend
)

// Handler converts key events at the prompt into Actions.
type Handler struct{}

// NewHandler creates a new input handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ProcessKey maps ev to an action. For ActionInsert the rune to insert is
// returned as well.
func (h *Handler) ProcessKey(ev *tcell.EventKey) (Action, rune) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionSubmit, 0
	case tcell.KeyTab:
		return ActionComplete, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBackspace, 0
	case tcell.KeyDelete:
		return ActionDelete, 0
	case tcell.KeyLeft, tcell.KeyCtrlB:
		return ActionLeft, 0
	case tcell.KeyRight, tcell.KeyCtrlF:
		return ActionRight, 0
	case tcell.KeyHome, tcell.KeyCtrlA:
		return ActionHome, 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return ActionEnd, 0
	case tcell.KeyCtrlU:
		return ActionKillLine, 0
	case tcell.KeyUp, tcell.KeyCtrlP:
		return ActionHistoryPrev, 0
	case tcell.KeyDown, tcell.KeyCtrlN:
		return ActionHistoryNext, 0
	case tcell.KeyCtrlC:
		return ActionInterrupt, 0
	case tcell.KeyCtrlL:
		return ActionClearScreen, 0
	case tcell.KeyCtrlD:
		return ActionEOF, 0
	case tcell.KeyPgUp:
		return ActionScrollUp, 0
	case tcell.KeyPgDn:
		return ActionScrollDown, 0
	case tcell.KeyCtrlZ:
		return ActionSuspend, 0
	case tcell.KeyRune:
		r := ev.Rune()
		if r < ' ' || r == 0x7f {
			return ActionNone, 0
		}
		return ActionInsert, r
	default:
		return ActionNone, 0
	}
}
