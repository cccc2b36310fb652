// Package shell dispatches command lines to the read-only commands that
// operate on the document tree.
package shell

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kk-code-lab/docsh/internal/manual"
	"github.com/kk-code-lab/docsh/internal/search"
	"github.com/kk-code-lab/docsh/internal/vfs"
	"github.com/sahilm/fuzzy"
)

// ExitCommand ends the session. The input loop handles it; it is not in the
// command table.
const ExitCommand = "exit"

const (
	defaultFindResults = 10
	maxSuggestions     = 3
)

// Result is the outcome of one command line.
type Result struct {
	Success bool
	Output  string
	// Cleared asks the caller to wipe the screen.
	Cleared bool
	// Paged means the pager took over the screen.
	Paged bool
	// Err carries the failure kind; nil on success.
	Err error
}

// ContentLoader yields document text for a content reference.
type ContentLoader interface {
	Load(ctx context.Context, ref string) (string, error)
}

// Pager displays long text full-screen.
type Pager interface {
	Enter(content, title string)
}

// Searcher finds documents by content or by name.
type Searcher interface {
	Search(ctx context.Context, term string, opts search.Options) ([]search.Result, error)
	FindByName(pattern string) ([]*vfs.Node, error)
}

// Options injects the interpreter's optional collaborators.
type Options struct {
	// Loader fetches document text. Without it content commands fail with
	// ErrContentUnavailable.
	Loader ContentLoader
	// Pager is used by less and man. Without it they print instead.
	Pager Pager
	// Manual defaults to the built-in pages.
	Manual *manual.Library
	// Searcher defaults to an indexer over the tree and Loader.
	Searcher Searcher
	// Title names the documentation in the general help.
	Title string
	// MaxResults caps the files reported by find.
	MaxResults int
	Logger     *log.Logger
}

type handler func(ctx context.Context, args []string) Result

// Interpreter runs command lines against one session.
type Interpreter struct {
	tree       *vfs.Tree
	session    *vfs.Session
	loader     ContentLoader
	pager      Pager
	manual     *manual.Library
	searcher   Searcher
	title      string
	maxResults int
	logger     *log.Logger
	commands   map[string]handler
}

// New returns an interpreter for session over tree.
func New(tree *vfs.Tree, session *vfs.Session, opts Options) *Interpreter {
	in := &Interpreter{
		tree:       tree,
		session:    session,
		loader:     opts.Loader,
		pager:      opts.Pager,
		manual:     opts.Manual,
		searcher:   opts.Searcher,
		title:      opts.Title,
		maxResults: opts.MaxResults,
		logger:     opts.Logger,
	}
	if in.session == nil {
		in.session = vfs.NewSession()
	}
	if in.logger == nil {
		in.logger = log.New(io.Discard)
	}
	if in.manual == nil {
		in.manual = manual.Default()
	}
	if in.searcher == nil {
		var loader search.ContentLoader
		if in.loader != nil {
			loader = in.loader
		}
		in.searcher = search.NewIndexer(tree, loader, in.logger)
	}
	if in.maxResults <= 0 {
		in.maxResults = defaultFindResults
	}

	in.commands = map[string]handler{
		"ls":    in.list,
		"cd":    in.changeDirectory,
		"pwd":   in.printWorkingDirectory,
		"cat":   in.cat,
		"less":  in.less,
		"head":  in.head,
		"tail":  in.tail,
		"tree":  in.showTree,
		"find":  in.find,
		"man":   in.man,
		"help":  in.help,
		"clear": in.clear,
	}
	return in
}

// Session returns the navigation state the interpreter mutates.
func (in *Interpreter) Session() *vfs.Session {
	return in.session
}

// Names lists every verb the shell accepts, exit included, sorted.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(in.commands)+1)
	for name := range in.commands {
		names = append(names, name)
	}
	names = append(names, ExitCommand)
	sort.Strings(names)
	return names
}

// IsExit reports whether line asks to end the session.
func IsExit(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == ExitCommand
}

// Execute runs one command line. Arguments are split on whitespace only;
// quotes are not interpreted. Failures never escape as errors: they come
// back as an unsuccessful Result.
func (in *Interpreter) Execute(ctx context.Context, line string) (res Result) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{Success: true}
	}
	name, args := fields[0], fields[1:]

	h, ok := in.commands[name]
	if !ok {
		return in.commandNotFound(name)
	}

	defer func() {
		if r := recover(); r != nil {
			in.logger.Error("command panicked", "command", name, "panic", r)
			res = failf(fmt.Errorf("%v", r), "Error executing %s: %v", name, r)
		}
	}()

	in.logger.Debug("execute", "command", name, "args", args, "cwd", in.session.Cwd())
	res = h(ctx, args)
	if res.Err == nil {
		res.Success = true
	}
	return res
}

func (in *Interpreter) commandNotFound(name string) Result {
	out := fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name)
	if hints := in.suggest(name); len(hints) > 0 {
		out += "\nDid you mean: " + strings.Join(hints, ", ") + "?"
	}
	return Result{Output: out, Err: ErrCommandNotFound}
}

// suggest returns up to three verbs that fuzzily match name.
func (in *Interpreter) suggest(name string) []string {
	names := in.Names()
	matches := fuzzy.Find(name, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	hints := make([]string, 0, len(matches))
	for _, m := range matches {
		hints = append(hints, names[m.Index])
	}
	return hints
}
