package vfs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNotFound          = errors.New("no such file or directory")
	ErrNotADirectory     = errors.New("not a directory")
	ErrIsADirectory      = errors.New("is a directory")
	ErrInvalidDefinition = errors.New("invalid tree definition")
)

// FileDef declares one document and where its text comes from.
type FileDef struct {
	Path       string
	ContentRef string
}

// Definition is the declarative description a Tree is built from. Parent
// directories of every file are created implicitly; Dirs adds directories
// that would otherwise not exist (for example empty ones).
type Definition struct {
	Dirs  []string
	Files []FileDef
}

// Tree is the immutable document hierarchy.
type Tree struct {
	root *Node
	// index maps every normalized path to its node.
	index map[string]*Node
}

// Build constructs a Tree from def. It is called once at startup.
func Build(def Definition) (*Tree, error) {
	t := &Tree{
		root: &Node{
			Kind:     Directory,
			Name:     rootPath,
			Path:     rootPath,
			Children: map[string]*Node{},
		},
		index: map[string]*Node{},
	}
	t.index[rootPath] = t.root

	for _, dir := range def.Dirs {
		segs, err := checkedSegments(dir)
		if err != nil {
			return nil, err
		}
		if _, err := t.ensureDir(segs); err != nil {
			return nil, err
		}
	}

	for _, f := range def.Files {
		segs, err := checkedSegments(f.Path)
		if err != nil {
			return nil, err
		}
		if len(segs) == 0 {
			return nil, fmt.Errorf("%w: file path %q names the root", ErrInvalidDefinition, f.Path)
		}
		if f.ContentRef == "" {
			return nil, fmt.Errorf("%w: file %q has no content reference", ErrInvalidDefinition, f.Path)
		}
		parent, err := t.ensureDir(segs[:len(segs)-1])
		if err != nil {
			return nil, err
		}
		name := segs[len(segs)-1]
		if _, exists := parent.Children[name]; exists {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrInvalidDefinition, Join(parent.Path, name))
		}
		node := &Node{
			Kind:       File,
			Name:       name,
			Path:       Join(parent.Path, name),
			ContentRef: f.ContentRef,
		}
		parent.Children[name] = node
		t.index[node.Path] = node
	}

	sortChildren(t.root, collate.New(language.English))
	return t, nil
}

func checkedSegments(p string) ([]string, error) {
	if !strings.HasPrefix(p, "/") {
		return nil, fmt.Errorf("%w: path %q is not absolute", ErrInvalidDefinition, p)
	}
	var segs []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			continue
		case ".", "..":
			return nil, fmt.Errorf("%w: path %q contains %q", ErrInvalidDefinition, p, seg)
		}
		segs = append(segs, norm.NFC.String(seg))
	}
	return segs, nil
}

func (t *Tree) ensureDir(segs []string) (*Node, error) {
	cur := t.root
	for _, seg := range segs {
		next, ok := cur.Children[seg]
		if !ok {
			next = &Node{
				Kind:     Directory,
				Name:     seg,
				Path:     Join(cur.Path, seg),
				Children: map[string]*Node{},
			}
			cur.Children[seg] = next
			t.index[next.Path] = next
		} else if next.Kind != Directory {
			return nil, fmt.Errorf("%w: %q is a file but is used as a directory", ErrInvalidDefinition, next.Path)
		}
		cur = next
	}
	return cur, nil
}

func sortChildren(n *Node, col *collate.Collator) {
	if n.Kind != Directory {
		return
	}
	n.sorted = make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		n.sorted = append(n.sorted, child)
	}
	sort.SliceStable(n.sorted, func(i, j int) bool {
		a, b := n.sorted[i], n.sorted[j]
		if a.Kind != b.Kind {
			return a.Kind == Directory
		}
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})
	for _, child := range n.sorted {
		sortChildren(child, col)
	}
}

// Root returns the root directory node.
func (t *Tree) Root() *Node {
	return t.root
}

// Node looks up the node at path. The path is normalized first.
func (t *Tree) Node(path string) (*Node, error) {
	node, ok := t.index[norm.NFC.String(Normalize(path))]
	if !ok {
		return nil, ErrNotFound
	}
	return node, nil
}

// List returns the entries of the directory at path, directories first and
// each group in collation order.
func (t *Tree) List(path string) ([]Entry, error) {
	node, err := t.Node(path)
	if err != nil {
		return nil, err
	}
	if node.Kind != Directory {
		return nil, ErrNotADirectory
	}
	return node.Entries(), nil
}

// Entries returns the listing of a directory node.
func (n *Node) Entries() []Entry {
	entries := make([]Entry, 0, len(n.sorted))
	for _, child := range n.sorted {
		entries = append(entries, Entry{Name: child.Name, Kind: child.Kind, Path: child.Path})
	}
	return entries
}

// SortedChildren returns the children in listing order.
func (n *Node) SortedChildren() []*Node {
	return append([]*Node(nil), n.sorted...)
}

// ChangeDirectory moves the session to input. "~" and "$HOME" always succeed.
func (t *Tree) ChangeDirectory(s *Session, input string) error {
	if IsHome(input) {
		s.CurrentPath = rootPath
		return nil
	}
	target := s.Resolve(input)
	node, err := t.Node(target)
	if err != nil {
		return err
	}
	if node.Kind != Directory {
		return ErrNotADirectory
	}
	s.CurrentPath = node.Path
	return nil
}

// Files returns every file node in pre-order, children in listing order.
func (t *Tree) Files() []*Node {
	var files []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == File {
			files = append(files, n)
			return
		}
		for _, child := range n.sorted {
			walk(child)
		}
	}
	walk(t.root)
	return files
}
