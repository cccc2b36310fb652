package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "threads.md", 10},
		{"wide cjk", "日本語", 6},
		{"mixed", "a日b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb", DefaultTabWidth); got != "a   b" {
		t.Fatalf("ExpandTabs = %q", got)
	}
	if got := ExpandTabs("\t", 2); got != "  " {
		t.Fatalf("ExpandTabs leading = %q", got)
	}
	if got := ExpandTabs("no tabs", DefaultTabWidth); got != "no tabs" {
		t.Fatalf("ExpandTabs changed plain text: %q", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := TruncateToWidth("abcdef", 4); got != "abc…" {
		t.Fatalf("TruncateToWidth = %q", got)
	}
	if got := TruncateToWidth("abc", 10); got != "abc" {
		t.Fatalf("TruncateToWidth short = %q", got)
	}
	if got := TruncateToWidth("abc", 0); got != "" {
		t.Fatalf("TruncateToWidth zero = %q", got)
	}
}
