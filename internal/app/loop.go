package app

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docsh/internal/complete"
	"github.com/kk-code-lab/docsh/internal/shell"
	"github.com/kk-code-lab/docsh/internal/ui/input"
	"github.com/kk-code-lab/docsh/internal/ui/pager"
)

const preloadDone = "preload-done"

func (app *Application) run(ctx context.Context) {
	app.console.Banner(app.title)
	app.draw()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	if app.loader != nil && len(app.preload) > 0 {
		go func() {
			app.loader.Preload(ctx, app.preload)
			_ = app.screen.PostEvent(tcell.NewEventInterrupt(preloadDone))
		}()
	}

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		redraw := false
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			redraw = app.handleEvent(ctx, ev)
		case <-sigContCh:
			redraw = app.resumeAfterStop()
		}
		if redraw {
			app.draw()
		}
	}
}

// draw repaints the console unless the pager owns the screen.
func (app *Application) draw() {
	if app.mode == modePager {
		return
	}
	app.console.SetPrompt(app.promptText(), app.editor.Line(), app.editor.Cursor())
	app.console.Draw()
}

func (app *Application) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if app.mode == modePager {
			return app.handlePagerKey(ev)
		}
		return app.handlePromptKey(ctx, ev)
	case *tcell.EventResize:
		app.screen.Sync()
		if app.mode == modePager {
			app.pager.Resize()
			return false
		}
		return true
	case *tcell.EventInterrupt:
		if ev.Data() == preloadDone {
			stats := app.loader.Stats()
			app.logger.Debug("cache warm", "documents", stats.Size)
		}
		return true
	default:
		return false
	}
}

func (app *Application) handlePagerKey(ev *tcell.EventKey) bool {
	if app.pager.HandleKey(ev) != pager.Exited {
		return false
	}
	app.mode = modePrompt
	return true
}

func (app *Application) handlePromptKey(ctx context.Context, ev *tcell.EventKey) bool {
	action, r := app.keys.ProcessKey(ev)
	switch action {
	case input.ActionNone:
		return false
	case input.ActionInsert:
		app.editor.Insert(r)
	case input.ActionSubmit:
		prompt := app.promptText()
		line := app.editor.Submit()
		app.console.Echo(prompt, line)
		app.execute(ctx, line)
	case input.ActionComplete:
		app.complete()
	case input.ActionBackspace:
		app.editor.Backspace()
	case input.ActionDelete:
		app.editor.Delete()
	case input.ActionLeft:
		app.editor.Left()
	case input.ActionRight:
		app.editor.Right()
	case input.ActionHome:
		app.editor.Home()
	case input.ActionEnd:
		app.editor.End()
	case input.ActionKillLine:
		app.editor.KillLine()
	case input.ActionHistoryPrev:
		app.editor.Prev()
	case input.ActionHistoryNext:
		app.editor.Next()
	case input.ActionInterrupt:
		app.console.Echo(app.promptText(), app.editor.Line()+"^C")
		app.editor.Reset()
	case input.ActionClearScreen:
		app.console.Clear()
	case input.ActionEOF:
		if app.editor.Line() == "" {
			app.shouldQuit = true
			return false
		}
		app.editor.Delete()
	case input.ActionScrollUp:
		app.console.ScrollUp()
		return true
	case input.ActionScrollDown:
		app.console.ScrollDown()
		return true
	case input.ActionSuspend:
		app.suspendToShell()
		app.resumeAfterStop()
	}
	app.console.Follow()
	return true
}

func (app *Application) execute(ctx context.Context, line string) {
	if shell.IsExit(line) {
		app.shouldQuit = true
		return
	}

	res := app.interp.Execute(ctx, line)
	if res.Err != nil {
		app.logger.Debug("command failed", "line", line, "err", res.Err)
	}
	if res.Cleared {
		app.console.Clear()
	}
	if res.Paged {
		app.mode = modePager
		return
	}
	if res.Output == "" {
		return
	}
	if res.Success {
		app.console.Output(res.Output)
	} else {
		app.console.Error(res.Output)
	}
}

// complete applies tab completion to the input line. Ambiguous matches are
// listed under the current prompt line.
func (app *Application) complete() {
	line := app.editor.Line()
	applied := complete.Apply(line, app.completer.Complete(line))
	if len(applied.Matches) > 0 {
		app.console.Echo(app.promptText(), line)
		app.console.Output(strings.TrimSuffix(complete.FormatColumns(applied.Matches, app.console.Width()), "\n"))
	}
	app.editor.SetLine(applied.Line)
}
