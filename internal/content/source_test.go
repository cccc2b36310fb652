package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manual/main/src/intro.md":
			_, _ = w.Write([]byte("# Intro\r\nhello\r\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/manual/main/", 5*time.Second)
	text, err := src.Fetch(context.Background(), "src/intro.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "# Intro\nhello\n" {
		t.Fatalf("Fetch = %q", text)
	}

	_, err = src.Fetch(context.Background(), "src/missing.md")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestHTTPSourceHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := NewHTTPSource(srv.URL, 0).Fetch(ctx, "slow.md"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestDirSourceFetch(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/docs/src/core/threads.md", []byte("threads\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := afero.WriteFile(fsys, "/secret.txt", []byte("nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := &DirSource{Fs: fsys, Root: "/docs"}

	text, err := src.Fetch(context.Background(), "src/core/threads.md")
	if err != nil || text != "threads\n" {
		t.Fatalf("Fetch = %q, %v", text, err)
	}

	if _, err := src.Fetch(context.Background(), "../secret.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected escape attempt to stay inside root, got %v", err)
	}
}

func TestHTTPSourceRejectsOversizedDocument(t *testing.T) {
	body := strings.Repeat("a", maxDocumentBytes+4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	loader := NewLoader(NewHTTPSource(srv.URL, 5*time.Second), nil)
	text, err := loader.Load(context.Background(), "huge.md")
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text, got %d bytes", len(text))
	}
	if stats := loader.Stats(); stats.Size != 0 {
		t.Fatalf("oversized document was cached: %+v", stats)
	}
}

func TestHTTPSourceAcceptsDocumentAtLimit(t *testing.T) {
	body := strings.Repeat("a", maxDocumentBytes)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	text, err := NewHTTPSource(srv.URL, 5*time.Second).Fetch(context.Background(), "full.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(text) != maxDocumentBytes {
		t.Fatalf("Fetch returned %d bytes, want %d", len(text), maxDocumentBytes)
	}
}
