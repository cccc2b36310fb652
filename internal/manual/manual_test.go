package manual

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultLibraryTopics(t *testing.T) {
	lib := Default()
	want := []string{"amp", "commands", "terminal"}
	if got := lib.Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics = %v, want %v", got, want)
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	lib := Default()
	page, ok := lib.Lookup("AMP")
	if !ok {
		t.Fatalf("expected AMP page")
	}
	if page.Name != "AMP" || page.Section != 1 || page.Title != "Amp Owners Manual" {
		t.Fatalf("unexpected front matter %+v", page)
	}
	if page.Heading() != "Manual page AMP(1)" {
		t.Fatalf("Heading = %q", page.Heading())
	}
	if _, ok := lib.Lookup("nope"); ok {
		t.Fatalf("unexpected page for unknown topic")
	}
}

func TestRenderCollapsesBlankLines(t *testing.T) {
	for _, topic := range Default().Topics() {
		page, _ := Default().Lookup(topic)
		text := page.Render()
		if strings.Contains(text, "\n\n\n") {
			t.Errorf("%s: rendered page has three consecutive newlines", topic)
		}
		if strings.HasPrefix(text, "---") {
			t.Errorf("%s: front matter leaked into body", topic)
		}
		if !strings.HasSuffix(text, page.Name+"(1)") {
			t.Errorf("%s: missing footer, ends with %q", topic, text[len(text)-20:])
		}
	}
}

func TestLoadWithoutFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"Plain.md": {Data: []byte("PLAIN(1)\n\n\n\nbody\n")},
	}
	lib, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	page, ok := lib.Lookup("plain")
	if !ok {
		t.Fatalf("expected plain page, topics %v", lib.Topics())
	}
	if page.Body != "PLAIN(1)\n\n\n\nbody\n" {
		t.Fatalf("body = %q", page.Body)
	}
}

func TestLoadRejectsBrokenFrontMatter(t *testing.T) {
	tests := map[string]string{
		"unterminated": "---\nname: X\nbody",
		"bad yaml":     "---\nname: [\n---\nbody",
	}
	for name, content := range tests {
		if _, err := Load(fstest.MapFS{"x.md": {Data: []byte(content)}}); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHelpEntry(t *testing.T) {
	text, ok := Help("head")
	if !ok {
		t.Fatalf("expected help for head")
	}
	for _, want := range []string{"head - Display first lines", "SYNTAX:\n  head [-n lines] <file>", "OPTIONS:", "EXAMPLES:"} {
		if !strings.Contains(text, want) {
			t.Errorf("help text missing %q:\n%s", want, text)
		}
	}

	text, _ = Help("pwd")
	if strings.Contains(text, "OPTIONS:") {
		t.Errorf("pwd help should not list options")
	}
	if _, ok := Help("bogus"); ok {
		t.Fatalf("unexpected help for bogus")
	}
}

func TestHelpCommandsCoverShell(t *testing.T) {
	names := HelpCommands()
	for _, want := range []string{"cat", "cd", "clear", "exit", "find", "head", "help", "less", "ls", "man", "pwd", "tail", "tree"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no help entry for %s", want)
		}
	}
}

func TestGeneralHelpTitle(t *testing.T) {
	if !strings.HasPrefix(GeneralHelp("Amp Owners Manual"), "Amp Owners Manual Terminal - Available Commands") {
		t.Fatalf("unexpected general help header")
	}
	if !strings.HasPrefix(GeneralHelp(""), "Documentation Terminal") {
		t.Fatalf("empty title should fall back")
	}
}
