package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/docsh/internal/vfs"
)

const defaultLineCount = 10

func (in *Interpreter) list(_ context.Context, args []string) Result {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	entries, err := in.tree.List(in.session.Resolve(target))
	if err != nil {
		return fail("ls", subjectOr(target, in.session.Cwd()), err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.DisplayName())
	}
	return Result{Output: strings.Join(names, "\n")}
}

func (in *Interpreter) changeDirectory(_ context.Context, args []string) Result {
	target := "/"
	if len(args) > 0 {
		target = args[0]
	}
	if err := in.tree.ChangeDirectory(in.session, target); err != nil {
		return fail("cd", target, err)
	}
	return Result{}
}

func (in *Interpreter) printWorkingDirectory(context.Context, []string) Result {
	return Result{Output: in.session.Cwd()}
}

func (in *Interpreter) cat(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return failf(ErrMissingOperand, "cat: missing file operand")
	}
	text, res, ok := in.readFile(ctx, "cat", args[0])
	if !ok {
		return res
	}
	return Result{Output: text}
}

func (in *Interpreter) less(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return failf(ErrMissingOperand, "less: missing file operand")
	}
	name := args[0]
	text, res, ok := in.readFile(ctx, "less", name)
	if !ok {
		return res
	}
	if in.pager == nil {
		return Result{Output: text + "\n(END)"}
	}
	in.pager.Enter(text, name)
	return Result{Paged: true}
}

func (in *Interpreter) head(ctx context.Context, args []string) Result {
	n, name, res, ok := parseLineCount("head", args)
	if !ok {
		return res
	}
	text, res, ok := in.readFile(ctx, "head", name)
	if !ok {
		return res
	}
	lines := splitLines(text)
	return Result{Output: strings.Join(lines[:min(n, len(lines))], "\n")}
}

func (in *Interpreter) tail(ctx context.Context, args []string) Result {
	n, name, res, ok := parseLineCount("tail", args)
	if !ok {
		return res
	}
	text, res, ok := in.readFile(ctx, "tail", name)
	if !ok {
		return res
	}
	lines := splitLines(text)
	return Result{Output: strings.Join(lines[max(len(lines)-n, 0):], "\n")}
}

// parseLineCount reads "[-n N] <file>".
func parseLineCount(command string, args []string) (int, string, Result, bool) {
	if len(args) == 0 {
		return 0, "", failf(ErrMissingOperand, "%s: missing file operand", command), false
	}
	if args[0] != "-n" {
		return defaultLineCount, args[0], Result{}, true
	}
	if len(args) < 2 {
		return 0, "", failf(ErrInvalidArgument, "%s: option requires an argument -- 'n'", command), false
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return 0, "", failf(fmt.Errorf("%w: %q", ErrInvalidArgument, args[1]), "%s: invalid number of lines: '%s'", command, args[1]), false
	}
	if len(args) < 3 {
		return 0, "", failf(ErrMissingOperand, "%s: missing file operand", command), false
	}
	return n, args[2], Result{}, true
}

// readFile resolves name to a document and loads its text.
func (in *Interpreter) readFile(ctx context.Context, command, name string) (string, Result, bool) {
	node, err := in.tree.Node(in.session.Resolve(name))
	if err != nil {
		return "", fail(command, name, err), false
	}
	if node.IsDir() {
		return "", fail(command, name, vfs.ErrIsADirectory), false
	}
	if in.loader == nil {
		return "", fail(command, name, fmt.Errorf("%w: no content source configured", ErrContentUnavailable)), false
	}
	text, err := in.loader.Load(ctx, node.ContentRef)
	if err != nil {
		in.logger.Warn("load failed", "path", node.Path, "ref", node.ContentRef, "err", err)
		return "", fail(command, name, fmt.Errorf("%w: %v", ErrContentUnavailable, err)), false
	}
	return text, Result{}, true
}

func (in *Interpreter) showTree(_ context.Context, args []string) Result {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	node, err := in.tree.Node(in.session.Resolve(target))
	if err != nil {
		return fail("tree", subjectOr(target, in.session.Cwd()), err)
	}
	return Result{Output: RenderTree(node)}
}

// RenderTree draws node and everything below it with box-drawing connectors.
func RenderTree(node *vfs.Node) string {
	var b strings.Builder
	b.WriteString(treeLabel(node))
	if node.IsDir() {
		writeSubtree(&b, node, "")
	}
	return b.String()
}

func writeSubtree(b *strings.Builder, dir *vfs.Node, prefix string) {
	children := dir.SortedChildren()
	for i, child := range children {
		connector, indent := "├── ", "│   "
		if i == len(children)-1 {
			connector, indent = "└── ", "    "
		}
		b.WriteString("\n" + prefix + connector + treeLabel(child))
		if child.IsDir() {
			writeSubtree(b, child, prefix+indent)
		}
	}
}

func treeLabel(n *vfs.Node) string {
	switch {
	case n.Path == "/":
		return "/"
	case n.IsDir():
		return n.Name + "/"
	default:
		return n.Name
	}
}

// splitLines splits text into lines, ignoring one trailing newline.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func subjectOr(arg, fallback string) string {
	if arg == "" {
		return fallback
	}
	return arg
}
