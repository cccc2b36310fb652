package vfs

// Kind distinguishes directories from files.
type Kind int

const (
	Directory Kind = iota
	File
)

// Node represents a single entry in the document tree.
type Node struct {
	Kind       Kind
	Name       string
	Path       string
	Children   map[string]*Node
	ContentRef string

	// sorted holds Children in listing order; filled once by Build.
	sorted []*Node
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == Directory
}

// Entry is a single row of a directory listing.
type Entry struct {
	Name string
	Kind Kind
	Path string
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// DisplayName returns the name with a trailing slash for directories.
func (e Entry) DisplayName() string {
	if e.Kind == Directory {
		return e.Name + "/"
	}
	return e.Name
}
