package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/kk-code-lab/docsh/internal/vfs"
)

func TestListAndNavigate(t *testing.T) {
	in := newInterpreter(t, Options{})

	res := run(t, in, "ls")
	want := "core/\nempty/\nbroken.md\nintroduction.md\nten.md"
	if !res.Success || res.Output != want {
		t.Fatalf("ls = %+v, want %q", res, want)
	}

	if res := run(t, in, "ls empty"); !res.Success || res.Output != "" {
		t.Fatalf("ls empty = %+v", res)
	}

	tests := []struct {
		line string
		want string
		kind error
	}{
		{"ls nope", "ls: nope: No such file or directory", vfs.ErrNotFound},
		{"ls ten.md", "ls: ten.md: Not a directory", vfs.ErrNotADirectory},
		{"cd nope", "cd: nope: No such file or directory", vfs.ErrNotFound},
		{"cd ten.md", "cd: ten.md: Not a directory", vfs.ErrNotADirectory},
	}
	for _, tt := range tests {
		res := run(t, in, tt.line)
		if res.Success || res.Output != tt.want || !errors.Is(res.Err, tt.kind) {
			t.Errorf("%s = %+v, want %q", tt.line, res, tt.want)
		}
	}

	if res := run(t, in, "cd core/deep"); !res.Success {
		t.Fatalf("cd core/deep = %+v", res)
	}
	if res := run(t, in, "pwd"); res.Output != "/core/deep" {
		t.Fatalf("pwd = %q", res.Output)
	}
	if res := run(t, in, "ls .."); res.Output != "deep/\nteams.md\nthreads.md" {
		t.Fatalf("ls .. = %q", res.Output)
	}
	if res := run(t, in, "cd"); !res.Success || in.Session().Cwd() != "/" {
		t.Fatalf("bare cd left cwd at %q", in.Session().Cwd())
	}
}

func TestCat(t *testing.T) {
	in := newInterpreter(t, Options{})

	res := run(t, in, "cat introduction.md")
	if !res.Success || res.Output != "# Introduction\nWelcome to the manual.\n" {
		t.Fatalf("cat = %+v", res)
	}

	tests := []struct {
		line string
		want string
		kind error
	}{
		{"cat", "cat: missing file operand", ErrMissingOperand},
		{"cat core", "cat: core: Is a directory", vfs.ErrIsADirectory},
		{"cat nope.md", "cat: nope.md: No such file or directory", vfs.ErrNotFound},
		{"cat broken.md", "cat: broken.md: content unavailable: fetch missing.md: 404 Not Found", ErrContentUnavailable},
	}
	for _, tt := range tests {
		res := run(t, in, tt.line)
		if res.Success || res.Output != tt.want || !errors.Is(res.Err, tt.kind) {
			t.Errorf("%s = %+v, want %q", tt.line, res, tt.want)
		}
	}
}

func TestContentCommandsWithoutLoader(t *testing.T) {
	in := New(testTree(t), vfs.NewSession(), Options{})
	for _, line := range []string{"cat ten.md", "less ten.md", "head ten.md", "find test"} {
		res := run(t, in, line)
		if res.Success || !errors.Is(res.Err, ErrContentUnavailable) {
			t.Errorf("%s = %+v, want ErrContentUnavailable", line, res)
		}
	}
	if res := run(t, in, "ls"); !res.Success {
		t.Fatalf("tree commands must work without a loader: %+v", res)
	}
}

func TestLessFallsBackWithoutPager(t *testing.T) {
	in := newInterpreter(t, Options{})
	res := run(t, in, "less introduction.md")
	if !res.Success || res.Paged || res.Output != "# Introduction\nWelcome to the manual.\n\n(END)" {
		t.Fatalf("less = %+v", res)
	}
	if res := run(t, in, "less"); res.Output != "less: missing file operand" {
		t.Fatalf("less without file = %q", res.Output)
	}
}

func TestLessEntersPager(t *testing.T) {
	pager := &recordingPager{}
	in := newInterpreter(t, Options{Pager: pager})
	res := run(t, in, "less core/teams.md")
	if !res.Success || !res.Paged || res.Output != "" {
		t.Fatalf("less = %+v", res)
	}
	if pager.entered != 1 || pager.title != "core/teams.md" || !strings.HasPrefix(pager.content, "# Teams") {
		t.Fatalf("pager state %+v", pager)
	}
	if res := run(t, in, "less core"); res.Paged || pager.entered != 1 {
		t.Fatalf("less on a directory must not page: %+v", res)
	}
}

func TestHeadAndTail(t *testing.T) {
	in := newInterpreter(t, Options{})
	tests := []struct {
		line string
		want string
	}{
		{"head -n 3 ten.md", "line 1\nline 2\nline 3"},
		{"tail -n 3 ten.md", "line 8\nline 9\nline 10"},
		{"head ten.md", strings.TrimSuffix(tenLines(), "\n")},
		{"tail -n 0 ten.md", ""},
		{"head -n 0 ten.md", ""},
		{"head -n 50 ten.md", strings.TrimSuffix(tenLines(), "\n")},
		{"tail -n 1 core/deep/leaf.md", "leaf"},
	}
	for _, tt := range tests {
		res := run(t, in, tt.line)
		if !res.Success || res.Output != tt.want {
			t.Errorf("%s = %+v, want %q", tt.line, res, tt.want)
		}
	}
}

func TestHeadAndTailErrors(t *testing.T) {
	in := newInterpreter(t, Options{})
	tests := []struct {
		line string
		want string
		kind error
	}{
		{"head -n abc ten.md", "head: invalid number of lines: 'abc'", ErrInvalidArgument},
		{"tail -n -2 ten.md", "tail: invalid number of lines: '-2'", ErrInvalidArgument},
		{"head -n", "head: option requires an argument -- 'n'", ErrInvalidArgument},
		{"tail -n 3", "tail: missing file operand", ErrMissingOperand},
		{"head", "head: missing file operand", ErrMissingOperand},
		{"tail core", "tail: core: Is a directory", vfs.ErrIsADirectory},
	}
	for _, tt := range tests {
		res := run(t, in, tt.line)
		if res.Success || res.Output != tt.want || !errors.Is(res.Err, tt.kind) {
			t.Errorf("%s = %+v, want %q", tt.line, res, tt.want)
		}
	}
}

func TestTree(t *testing.T) {
	in := newInterpreter(t, Options{})
	res := run(t, in, "tree")
	want := strings.Join([]string{
		"/",
		"├── core/",
		"│   ├── deep/",
		"│   │   └── leaf.md",
		"│   ├── teams.md",
		"│   └── threads.md",
		"├── empty/",
		"├── broken.md",
		"├── introduction.md",
		"└── ten.md",
	}, "\n")
	if !res.Success || res.Output != want {
		t.Fatalf("tree =\n%s\nwant\n%s", res.Output, want)
	}

	res = run(t, in, "tree core/deep")
	if res.Output != "deep/\n└── leaf.md" {
		t.Fatalf("tree core/deep = %q", res.Output)
	}
	res = run(t, in, "tree ten.md")
	if !res.Success || res.Output != "ten.md" {
		t.Fatalf("tree on a file = %+v", res)
	}
	res = run(t, in, "tree nope")
	if res.Output != "tree: nope: No such file or directory" || !errors.Is(res.Err, vfs.ErrNotFound) {
		t.Fatalf("tree nope = %+v", res)
	}
}

func TestFind(t *testing.T) {
	in := newInterpreter(t, Options{})

	res := run(t, in, "find")
	if res.Output != "find: missing search term" || !errors.Is(res.Err, ErrMissingOperand) {
		t.Fatalf("find without term = %+v", res)
	}

	res = run(t, in, "find test")
	if !res.Success {
		t.Fatalf("find test = %+v", res)
	}
	for _, want := range []string{
		`Found 1 file(s) with matches for "test":`,
		"/core/threads.md (2 matches)",
		"  3: a Test line",
		"  4: another test",
	} {
		if !strings.Contains(res.Output, want) {
			t.Errorf("find output missing %q:\n%s", want, res.Output)
		}
	}

	res = run(t, in, "find share threads")
	if !strings.Contains(res.Output, "/core/teams.md (1 match)") {
		t.Fatalf("multi-word find = %q", res.Output)
	}

	res = run(t, in, "find zzz")
	if !res.Success || res.Output != `No matches found for "zzz"` {
		t.Fatalf("find zzz = %+v", res)
	}
}

func TestFindByName(t *testing.T) {
	in := newInterpreter(t, Options{})

	res := run(t, in, "find -name TEAMS")
	if !res.Success || res.Output != "/core/teams.md" {
		t.Fatalf("find -name = %+v", res)
	}
	res = run(t, in, "find -name deep")
	if res.Output != "/core/deep/leaf.md" {
		t.Fatalf("find -name on path = %q", res.Output)
	}
	res = run(t, in, "find -name")
	if !errors.Is(res.Err, ErrMissingOperand) {
		t.Fatalf("find -name without pattern = %+v", res)
	}
	res = run(t, in, "find -name zzz")
	if res.Output != `No files matching "zzz"` {
		t.Fatalf("find -name zzz = %q", res.Output)
	}
	res = run(t, in, "find -name (")
	if !errors.Is(res.Err, ErrInvalidArgument) {
		t.Fatalf("bad pattern = %+v", res)
	}
}

func TestFindRespectsMaxResults(t *testing.T) {
	in := newInterpreter(t, Options{MaxResults: 1})
	res := run(t, in, "find e")
	if !strings.HasPrefix(res.Output, "Found 1 file(s)") {
		t.Fatalf("max results not applied: %q", res.Output)
	}
}

func TestRenderTreeLastDirectoryIndent(t *testing.T) {
	tree, err := vfs.Build(vfs.Definition{
		Files: []vfs.FileDef{
			{Path: "/a/b.md", ContentRef: "b.md"},
			{Path: "/z/w.md", ContentRef: "w.md"},
			{Path: "/z/y/x.md", ContentRef: "x.md"},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := strings.Join([]string{
		"/",
		"├── a/",
		"│   └── b.md",
		"└── z/",
		"    ├── y/",
		"    │   └── x.md",
		"    └── w.md",
	}, "\n")
	if got := RenderTree(tree.Root()); got != want {
		t.Fatalf("RenderTree =\n%s\nwant\n%s", got, want)
	}
}
