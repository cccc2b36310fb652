// Package manifest reads the declarative description of the document tree.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/kk-code-lab/docsh/internal/vfs"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed default.toml
var defaultManifest []byte

// Entry maps one path of the tree to its content source reference. An entry
// without a source declares a directory.
type Entry struct {
	Path   string `toml:"path"`
	Source string `toml:"source"`
}

// Manifest is the on-disk form of a tree definition.
type Manifest struct {
	Title   string  `toml:"title"`
	Entries []Entry `toml:"entry"`
}

// Parse decodes a TOML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Entries) == 0 {
		return nil, errors.New("parse manifest: no entries")
	}
	return &m, nil
}

// Default returns the embedded manifest.
func Default() *Manifest {
	m, err := Parse(defaultManifest)
	if err != nil {
		panic(err)
	}
	return m
}

// LoadFile reads and parses the manifest at path on fsys.
func LoadFile(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Definition converts the manifest into a tree definition.
func (m *Manifest) Definition() vfs.Definition {
	var def vfs.Definition
	for _, e := range m.Entries {
		if e.Source == "" {
			def.Dirs = append(def.Dirs, e.Path)
			continue
		}
		def.Files = append(def.Files, vfs.FileDef{Path: e.Path, ContentRef: e.Source})
	}
	return def
}

// Build constructs the tree the manifest describes.
func (m *Manifest) Build() (*vfs.Tree, error) {
	return vfs.Build(m.Definition())
}

// Sources lists the content references of every file entry in manifest order.
func (m *Manifest) Sources() []string {
	refs := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Source != "" {
			refs = append(refs, e.Source)
		}
	}
	return refs
}
