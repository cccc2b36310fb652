package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kk-code-lab/docsh/internal/shell"
	"github.com/kk-code-lab/docsh/internal/vfs"
	"golang.org/x/term"
)

const clearSequence = "\x1b[H\x1b[2J"

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// LineSession runs the shell over plain reader and writer streams. less and
// man print their text instead of paging.
type LineSession struct {
	in     io.Reader
	out    io.Writer
	interp *shell.Interpreter
	prompt string
	title  string
	logger *log.Logger
}

// NewLineSession prepares a line-oriented session.
func NewLineSession(in io.Reader, out io.Writer, opts Options) *LineSession {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	shellOpts := shell.Options{
		Title:      opts.Title,
		MaxResults: opts.MaxResults,
		Logger:     logger,
	}
	if opts.Loader != nil {
		shellOpts.Loader = opts.Loader
	}
	return &LineSession{
		in:     in,
		out:    out,
		interp: shell.New(opts.Tree, vfs.NewSession(), shellOpts),
		prompt: prompt,
		title:  opts.Title,
		logger: logger.WithPrefix("app"),
	}
}

// Run reads command lines until exit, EOF or ctx ends.
func (s *LineSession) Run(ctx context.Context) error {
	title := s.title
	if title == "" {
		title = "Documentation"
	}
	fmt.Fprintf(s.out, "%s Terminal\nWelcome to the interactive documentation terminal.\nType \"help\" for available commands.\n\n", title)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "%s%s $ ", s.prompt, s.interp.Session().Cwd())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if shell.IsExit(line) {
			return nil
		}
		res := s.interp.Execute(ctx, line)
		if res.Err != nil {
			s.logger.Debug("command failed", "line", line, "err", res.Err)
		}
		if res.Cleared {
			fmt.Fprint(s.out, clearSequence)
		}
		if res.Output != "" {
			fmt.Fprintln(s.out, res.Output)
		}
	}
}
