// Package app runs the interactive shell: a tcell console with a line
// editor, tab completion and the pager, or a plain line-oriented loop when
// no terminal is attached.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docsh/internal/complete"
	"github.com/kk-code-lab/docsh/internal/content"
	"github.com/kk-code-lab/docsh/internal/shell"
	"github.com/kk-code-lab/docsh/internal/ui/input"
	"github.com/kk-code-lab/docsh/internal/ui/pager"
	renderui "github.com/kk-code-lab/docsh/internal/ui/render"
	"github.com/kk-code-lab/docsh/internal/vfs"
)

const defaultPrompt = "root@amp:"

// Options configures a session.
type Options struct {
	Tree *vfs.Tree
	// Loader fetches document text; nil leaves content commands unavailable.
	Loader *content.Loader
	// Preload lists content references to warm in the background.
	Preload    []string
	Title      string
	Prompt     string
	MaxResults int
	Logger     *log.Logger
}

type mode int

const (
	modePrompt mode = iota
	modePager
)

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	console   *renderui.Console
	pager     *pager.Pager
	editor    *input.Editor
	keys      *input.Handler
	interp    *shell.Interpreter
	completer *complete.Engine
	loader    *content.Loader
	logger    *log.Logger

	preload    []string
	title      string
	prompt     string
	mode       mode
	shouldQuit bool
}

// NewApplication opens the terminal screen and prepares a session.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplication(screen, opts), nil
}

func newApplication(screen tcell.Screen, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	app := &Application{
		screen:  screen,
		console: renderui.NewConsole(screen),
		pager:   pager.New(renderui.NewFrame(screen)),
		editor:  input.NewEditor(),
		keys:    input.NewHandler(),
		loader:  opts.Loader,
		logger:  logger.WithPrefix("app"),
		preload: opts.Preload,
		title:   opts.Title,
		prompt:  prompt,
	}

	session := vfs.NewSession()
	shellOpts := shell.Options{
		Pager:      app.pager,
		Title:      opts.Title,
		MaxResults: opts.MaxResults,
		Logger:     logger,
	}
	if opts.Loader != nil {
		shellOpts.Loader = opts.Loader
	}
	app.interp = shell.New(opts.Tree, session, shellOpts)
	app.completer = complete.New(opts.Tree, session, app.interp.Names())
	return app
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// Run shows the banner and processes events until exit, EOF or ctx ends.
func (app *Application) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.run(ctx)
}

func (app *Application) promptText() string {
	return fmt.Sprintf("%s%s $ ", app.prompt, app.interp.Session().Cwd())
}
