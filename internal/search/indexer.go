package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kk-code-lab/docsh/internal/vfs"
)

const (
	// DefaultMaxResults caps the number of files returned when Options
	// leaves MaxResults unset.
	DefaultMaxResults = 20
	// maxLinesPerFile caps the matching lines kept for one file.
	maxLinesPerFile = 5
)

var ErrEmptyTerm = errors.New("empty search term")

// ContentLoader yields document text for a content reference.
type ContentLoader interface {
	Load(ctx context.Context, ref string) (string, error)
}

// Options tune a content search.
type Options struct {
	CaseSensitive bool
	MaxResults    int
}

// LineMatch is one matching line of a document.
type LineMatch struct {
	Number int
	Text   string
	Count  int
}

// Result collects the matches found in one document.
type Result struct {
	Path         string
	Ref          string
	Lines        []LineMatch
	TotalMatches int
}

// Indexer searches the documents of a tree.
type Indexer struct {
	tree   *vfs.Tree
	loader ContentLoader
	logger *log.Logger
}

// NewIndexer returns an indexer over tree. A nil logger discards output.
func NewIndexer(tree *vfs.Tree, loader ContentLoader, logger *log.Logger) *Indexer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Indexer{tree: tree, loader: loader, logger: logger}
}

// Search scans every document for term, matched literally. Documents whose
// content cannot be loaded are skipped. The walk stops once MaxResults
// documents have matched.
func (ix *Indexer) Search(ctx context.Context, term string, opts Options) ([]Result, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}
	if ix.loader == nil {
		return nil, errors.New("no content source")
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	pattern := regexp.QuoteMeta(term)
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", term, err)
	}

	var results []Result
	for _, file := range ix.tree.Files() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		text, err := ix.loader.Load(ctx, file.ContentRef)
		if err != nil {
			ix.logger.Warn("skipping document", "path", file.Path, "err", err)
			continue
		}
		if res, ok := matchDocument(re, file, text); ok {
			results = append(results, res)
			if len(results) >= maxResults {
				break
			}
		}
	}
	return results, nil
}

func matchDocument(re *regexp.Regexp, file *vfs.Node, text string) (Result, bool) {
	res := Result{Path: file.Path, Ref: file.ContentRef}
	for i, line := range strings.Split(text, "\n") {
		hits := re.FindAllStringIndex(line, -1)
		if len(hits) == 0 {
			continue
		}
		res.TotalMatches += len(hits)
		if len(res.Lines) < maxLinesPerFile {
			res.Lines = append(res.Lines, LineMatch{
				Number: i + 1,
				Text:   strings.TrimSpace(line),
				Count:  len(hits),
			})
		}
	}
	return res, res.TotalMatches > 0
}

// FindByName returns the documents whose name or path matches pattern,
// a case-insensitive regular expression.
func (ix *Indexer) FindByName(pattern string) ([]*vfs.Node, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var found []*vfs.Node
	for _, file := range ix.tree.Files() {
		if re.MatchString(file.Name) || re.MatchString(file.Path) {
			found = append(found, file)
		}
	}
	return found, nil
}
