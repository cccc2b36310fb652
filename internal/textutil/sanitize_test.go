package textutil

import "testing"

func TestSanitizeTerminalText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain document line", "## Threads: sharing with your team", "## Threads: sharing with your team"},
		{"escape sequence", "bad\x1b[31m\ncolor", "bad?[31m color"},
		{"carriage return", "line\r", "line "},
		{"bell and delete", "ding\x07\x7f", "ding??"},
		{"tabs survive", "a\tb", "a\tb"},
		{"bidi override", "a\u202eb", "a⟪RLO⟫b"},
		{"zero width space", "x\u200by", "x⟪ZWSP⟫y"},
		{"soft hyphen", "co\u00adop", "co⟪SHY⟫op"},
		{"wide runes untouched", "日本語", "日本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminalText(tt.input); got != tt.want {
				t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizedTextHasNoControls(t *testing.T) {
	var input []rune
	for r := rune(0); r < 0x20; r++ {
		input = append(input, r)
	}
	for _, r := range SanitizeTerminalText(string(input) + "\x7f") {
		if (r < 0x20 && r != '\t') || r == 0x7f {
			t.Fatalf("control rune %U left in output", r)
		}
	}
}
