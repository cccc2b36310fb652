package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/kk-code-lab/docsh/internal/manual"
	"github.com/kk-code-lab/docsh/internal/search"
	"github.com/kk-code-lab/docsh/internal/vfs"
)

const nameFlag = "-name"

func (in *Interpreter) find(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return failf(ErrMissingOperand, "find: missing search term")
	}
	if args[0] == nameFlag {
		return in.findByName(args[1:])
	}
	if in.loader == nil {
		return failf(ErrContentUnavailable, "find: no content source configured")
	}

	term := strings.Join(args, " ")
	results, err := in.searcher.Search(ctx, term, search.Options{MaxResults: in.maxResults})
	if err != nil {
		return failf(err, "find: %v", err)
	}
	in.logger.Debug("search", "term", term, "files", len(results))
	return Result{Output: search.Format(results, term)}
}

func (in *Interpreter) findByName(args []string) Result {
	if len(args) == 0 {
		return failf(ErrMissingOperand, "find: %s: missing pattern", nameFlag)
	}
	pattern := strings.Join(args, " ")
	nodes, err := in.searcher.FindByName(pattern)
	if err != nil {
		return failf(fmt.Errorf("%w: %v", ErrInvalidArgument, err), "find: %v", err)
	}
	if len(nodes) == 0 {
		return Result{Output: fmt.Sprintf("No files matching %q", pattern)}
	}
	paths := make([]string, 0, len(nodes))
	for _, n := range nodes {
		paths = append(paths, n.Path)
	}
	return Result{Output: strings.Join(paths, "\n")}
}

func (in *Interpreter) man(_ context.Context, args []string) Result {
	topics := in.manual.Topics()
	if len(args) == 0 {
		try := make([]string, 0, len(topics))
		for _, t := range topics {
			try = append(try, "man "+t)
		}
		return failf(ErrMissingOperand, "What manual page do you want?\nTry: %s", strings.Join(try, ", "))
	}

	topic := strings.ToLower(args[0])
	page, ok := in.manual.Lookup(topic)
	if !ok {
		return failf(vfs.ErrNotFound, "No manual entry for %s\nAvailable pages: %s", topic, strings.Join(topics, ", "))
	}

	text := page.Render()
	if in.pager == nil {
		return Result{Output: text}
	}
	in.pager.Enter(text, page.Heading())
	return Result{Paged: true}
}

func (in *Interpreter) help(_ context.Context, args []string) Result {
	if len(args) == 0 {
		return Result{Output: manual.GeneralHelp(in.title)}
	}
	text, ok := manual.Help(args[0])
	if !ok {
		return failf(vfs.ErrNotFound, "No help available for command: %s", args[0])
	}
	return Result{Output: text}
}

func (in *Interpreter) clear(context.Context, []string) Result {
	return Result{Cleared: true}
}
