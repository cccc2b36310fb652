// Package content retrieves document text for the tree's file nodes.
package content

import (
	"context"
	"regexp"
	"strings"
)

// Source fetches raw text for a content reference. Implementations may be
// slow; callers go through a Loader for caching.
type Source interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, ref string) (string, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, ref string) (string, error) {
	return f(ctx, ref)
}

var excessNewlines = regexp.MustCompile(`\n{4,}`)

// normalizeText converts CRLF line endings and limits runs of blank lines.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return excessNewlines.ReplaceAllString(text, "\n\n\n")
}
