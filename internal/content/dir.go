package content

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DirSource reads documents from a directory. Content references are
// slash-separated paths relative to Root and cannot escape it.
type DirSource struct {
	Fs   afero.Fs
	Root string
}

// NewDirSource returns a read-only source rooted at dir on the OS filesystem.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Fs: afero.NewReadOnlyFs(afero.NewOsFs()), Root: dir}
}

// Fetch implements Source.
func (s *DirSource) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	root := s.Root
	if root == "" {
		root = "."
	}
	clean := path.Clean("/" + strings.TrimLeft(ref, "/"))
	data, err := afero.ReadFile(s.Fs, filepath.Join(root, filepath.FromSlash(clean)))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ref, err)
	}
	return decodeDocument(ref, data)
}
