// Package complete implements tab completion of command names and paths.
package complete

import (
	"sort"
	"strings"

	"github.com/kk-code-lab/docsh/internal/vfs"
)

// Kind tells what a completion was computed for.
type Kind int

const (
	KindCommand Kind = iota
	KindPath
)

// Result holds the candidates for the fragment being completed.
type Result struct {
	Kind         Kind
	Prefix       string
	Matches      []string
	CommonPrefix string
}

// Engine completes input against a command set and a document tree.
type Engine struct {
	tree     *vfs.Tree
	session  *vfs.Session
	commands []string
}

// New returns an engine. commands is copied and sorted.
func New(tree *vfs.Tree, session *vfs.Session, commands []string) *Engine {
	cmds := append([]string(nil), commands...)
	sort.Strings(cmds)
	return &Engine{tree: tree, session: session, commands: cmds}
}

// Tokenize splits input on unquoted spaces. Quote characters toggle quoting
// and are kept in the emitted tokens.
func Tokenize(input string) []string {
	var (
		parts    []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range input {
		switch {
		case r == '"' || r == '\'':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// Complete computes the candidates for the last token of input.
func (e *Engine) Complete(input string) Result {
	parts := Tokenize(strings.TrimSpace(input))
	switch len(parts) {
	case 0:
		return e.commandCompletions("")
	case 1:
		return e.commandCompletions(parts[0])
	default:
		return e.pathCompletions(parts[len(parts)-1])
	}
}

func (e *Engine) commandCompletions(prefix string) Result {
	var matches []string
	for _, cmd := range e.commands {
		if strings.HasPrefix(cmd, prefix) {
			matches = append(matches, cmd)
		}
	}
	return Result{
		Kind:         KindCommand,
		Prefix:       prefix,
		Matches:      matches,
		CommonPrefix: CommonPrefix(matches),
	}
}

func (e *Engine) pathCompletions(prefix string) Result {
	clean, quoted := unquote(prefix)

	searchDir, namePrefix := "", clean
	if idx := strings.LastIndexByte(clean, '/'); idx >= 0 {
		searchDir, namePrefix = clean[:idx+1], clean[idx+1:]
	}

	target := e.session.Cwd()
	if searchDir != "" {
		target = e.session.Resolve(searchDir)
	}

	res := Result{Kind: KindPath, Prefix: prefix}
	entries, err := e.tree.List(target)
	if err != nil {
		res.CommonPrefix = prefix
		return res
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name, namePrefix) {
			continue
		}
		match := searchDir + entry.DisplayName()
		if quoted || strings.Contains(match, " ") {
			match = `"` + match + `"`
		}
		res.Matches = append(res.Matches, match)
	}
	res.CommonPrefix = CommonPrefix(res.Matches)
	if res.CommonPrefix == "" {
		res.CommonPrefix = prefix
	}
	return res
}

// unquote strips one leading and one trailing quote character.
func unquote(s string) (string, bool) {
	clean := s
	if len(clean) > 0 && (clean[0] == '"' || clean[0] == '\'') {
		clean = clean[1:]
	}
	if n := len(clean); n > 0 && (clean[n-1] == '"' || clean[n-1] == '\'') {
		clean = clean[:n-1]
	}
	return clean, clean != s
}

// CommonPrefix returns the longest prefix shared by every match.
func CommonPrefix(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	prefix := []rune(matches[0])
	for _, m := range matches[1:] {
		for len(prefix) > 0 && !strings.HasPrefix(m, string(prefix)) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return string(prefix)
}

// Applied is the outcome of applying a completion to the input line.
type Applied struct {
	Line string
	// Matches is set when more than one candidate remains and the caller
	// should display them.
	Matches []string
}

// Apply rewrites input with res.
func Apply(input string, res Result) Applied {
	if len(res.Matches) == 0 {
		return Applied{Line: input}
	}

	parts := Tokenize(strings.TrimSpace(input))
	if len(res.Matches) == 1 {
		match := res.Matches[0]
		suffix := " "
		if strings.HasSuffix(match, "/") {
			suffix = ""
		}
		return Applied{Line: replaceLast(parts, match) + suffix}
	}

	replacement := res.CommonPrefix
	if len(parts) > 0 && len(replacement) < len(parts[len(parts)-1]) {
		replacement = parts[len(parts)-1]
	}
	return Applied{
		Line:    replaceLast(parts, replacement),
		Matches: append([]string(nil), res.Matches...),
	}
}

func replaceLast(parts []string, token string) string {
	if len(parts) == 0 {
		return token
	}
	out := append([]string(nil), parts[:len(parts)-1]...)
	out = append(out, token)
	return strings.Join(out, " ")
}
