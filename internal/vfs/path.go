package vfs

import "strings"

const (
	rootPath  = "/"
	homeTilde = "~"
	homeVar   = "$HOME"
)

// Normalize collapses repeated slashes and resolves "." and ".." segments.
// The result is always absolute. ".." at the root is a no-op.
func Normalize(p string) string {
	stack := make([]string, 0, strings.Count(p, "/")+1)
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return rootPath + strings.Join(stack, "/")
}

// Join builds a child path from an absolute parent path and a segment name.
func Join(parent, name string) string {
	if parent == rootPath {
		return rootPath + name
	}
	return parent + "/" + name
}

// Parent returns the parent of an absolute normalized path. The parent of
// the root is the root.
func Parent(p string) string {
	if p == rootPath || p == "" {
		return rootPath
	}
	idx := strings.LastIndexByte(p, '/')
	if idx <= 0 {
		return rootPath
	}
	return p[:idx]
}

// IsHome reports whether input names the home directory.
func IsHome(input string) bool {
	return input == homeTilde || input == homeVar
}

// Session holds the mutable navigation state of one interactive session.
type Session struct {
	CurrentPath string
}

// NewSession returns a session positioned at the root.
func NewSession() *Session {
	return &Session{CurrentPath: rootPath}
}

// Cwd returns the current directory, defaulting to the root.
func (s *Session) Cwd() string {
	if s == nil || s.CurrentPath == "" {
		return rootPath
	}
	return s.CurrentPath
}

// Resolve turns user input into an absolute normalized path relative to the
// session's current directory. It never fails; existence is checked by Tree.
func (s *Session) Resolve(input string) string {
	cwd := s.Cwd()
	switch {
	case input == "" || input == ".":
		return cwd
	case input == "..":
		return Parent(cwd)
	case IsHome(input):
		return rootPath
	case strings.HasPrefix(input, "/"):
		return Normalize(input)
	default:
		return Normalize(cwd + "/" + input)
	}
}
