// Package manual holds the static reference text of the shell: per-command
// help and the man pages.
package manual

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed pages/*.md
var pagesFS embed.FS

var extraBlankLines = regexp.MustCompile(`\n{3,}`)

// Page is one manual page.
type Page struct {
	Topic   string `yaml:"-"`
	Name    string `yaml:"name"`
	Section int    `yaml:"section"`
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
	Body    string `yaml:"-"`
}

// Heading is the pager title for the page, for example "Manual page AMP(1)".
func (p Page) Heading() string {
	return fmt.Sprintf("Manual page %s(%d)", strings.ToUpper(p.Topic), p.Section)
}

// Render returns the page text with its footer. Runs of blank lines are
// collapsed to one.
func (p Page) Render() string {
	ref := fmt.Sprintf("%s(%d)", p.Name, p.Section)
	footer := fmt.Sprintf("%-31s%-20s%s", p.Title, p.Date, ref)
	text := strings.TrimSpace(p.Body) + "\n\n" + footer
	return extraBlankLines.ReplaceAllString(text, "\n\n")
}

// Library is a set of man pages keyed by lower-case topic.
type Library struct {
	pages map[string]Page
}

// Load parses every page in fsys matching *.md. The file name without its
// extension is the topic.
func Load(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}
	lib := &Library{pages: make(map[string]Page, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}
		page, err := parsePage(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		page.Topic = strings.ToLower(strings.TrimSuffix(path.Base(name), path.Ext(name)))
		lib.pages[page.Topic] = page
	}
	return lib, nil
}

// Default returns the built-in pages.
func Default() *Library {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		panic(err)
	}
	lib, err := Load(sub)
	if err != nil {
		panic(err)
	}
	return lib
}

// Lookup finds a page by topic, ignoring case.
func (l *Library) Lookup(topic string) (Page, bool) {
	p, ok := l.pages[strings.ToLower(topic)]
	return p, ok
}

// Topics lists the available topics in sorted order.
func (l *Library) Topics() []string {
	topics := make([]string, 0, len(l.pages))
	for t := range l.pages {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

func parsePage(content string) (Page, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	page := Page{Section: 1}
	if !strings.HasPrefix(content, "---\n") {
		page.Body = content
		return page, nil
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end == -1 {
		return page, errors.New("unterminated front matter")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &page); err != nil {
		return page, err
	}
	page.Body = rest[end+len("\n---\n"):]
	return page, nil
}
