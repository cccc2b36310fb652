package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/kk-code-lab/docsh/internal/vfs"
)

type mapLoader map[string]string

func (m mapLoader) Load(ctx context.Context, ref string) (string, error) {
	text, ok := m[ref]
	if !ok {
		return "", errors.New("not found: " + ref)
	}
	return text, nil
}

func buildIndexer(t *testing.T, docs map[string]string) *Indexer {
	t.Helper()
	var def vfs.Definition
	loader := mapLoader{}
	for path, text := range docs {
		def.Files = append(def.Files, vfs.FileDef{Path: path, ContentRef: "ref:" + path})
		if text != "<missing>" {
			loader["ref:"+path] = text
		}
	}
	tree, err := vfs.Build(def)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return NewIndexer(tree, loader, nil)
}

func TestSearchCaseInsensitiveLineNumbers(t *testing.T) {
	ix := buildIndexer(t, map[string]string{
		"/doc.md": "no match\na Test line\nanother test",
	})

	results, err := ix.Search(context.Background(), "test", Options{MaxResults: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	var numbers []int
	for _, l := range results[0].Lines {
		numbers = append(numbers, l.Number)
	}
	if !reflect.DeepEqual(numbers, []int{2, 3}) {
		t.Fatalf("line numbers = %v, want [2 3]", numbers)
	}
	if results[0].TotalMatches != 2 {
		t.Fatalf("total = %d", results[0].TotalMatches)
	}
	if results[0].Lines[0].Text != "a Test line" {
		t.Fatalf("line text = %q", results[0].Lines[0].Text)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	ix := buildIndexer(t, map[string]string{
		"/doc.md": "Test\ntest test",
	})
	results, err := ix.Search(context.Background(), "test", Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || len(results[0].Lines) != 1 || results[0].Lines[0].Count != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSearchTreatsTermLiterally(t *testing.T) {
	ix := buildIndexer(t, map[string]string{
		"/a.md": "price is $5.00 (approx)",
		"/b.md": "price is 5x00",
	})
	results, err := ix.Search(context.Background(), "$5.00 (", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "/a.md" {
		t.Fatalf("expected only /a.md, got %+v", results)
	}
}

func TestSearchLimitsLinesAndResults(t *testing.T) {
	docs := map[string]string{}
	for i := 0; i < 6; i++ {
		docs[fmt.Sprintf("/d%d.md", i)] = strings.Repeat("hit\n", 8)
	}
	ix := buildIndexer(t, docs)

	results, err := ix.Search(context.Background(), "hit", Options{MaxResults: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Path != "/d0.md" {
		t.Fatalf("expected walk order, got %s first", results[0].Path)
	}
	if len(results[0].Lines) != maxLinesPerFile || results[0].TotalMatches != 8 {
		t.Fatalf("expected %d lines and 8 matches, got %d and %d",
			maxLinesPerFile, len(results[0].Lines), results[0].TotalMatches)
	}
}

func TestSearchSkipsUnloadableDocuments(t *testing.T) {
	ix := buildIndexer(t, map[string]string{
		"/a.md": "<missing>",
		"/b.md": "needle",
	})
	results, err := ix.Search(context.Background(), "needle", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "/b.md" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSearchRejectsEmptyTermAndCanceledContext(t *testing.T) {
	ix := buildIndexer(t, map[string]string{"/a.md": "x"})
	if _, err := ix.Search(context.Background(), "", Options{}); !errors.Is(err, ErrEmptyTerm) {
		t.Fatalf("expected ErrEmptyTerm, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ix.Search(ctx, "x", Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFindByName(t *testing.T) {
	ix := buildIndexer(t, map[string]string{
		"/core/Threads.md": "",
		"/core/teams.md":   "",
		"/threading.md":    "",
	})
	found, err := ix.FindByName("thread")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	var paths []string
	for _, n := range found {
		paths = append(paths, n.Path)
	}
	want := []string{"/core/Threads.md", "/threading.md"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("FindByName = %v, want %v", paths, want)
	}

	if _, err := ix.FindByName("("); err == nil {
		t.Fatalf("expected invalid pattern error")
	}
}
