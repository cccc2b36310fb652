package manual

import (
	"sort"
	"strings"
)

// HelpEntry documents one shell command.
type HelpEntry struct {
	Name        string
	Syntax      string
	Description string
	Options     []string
	Examples    []string
}

var helpEntries = []HelpEntry{
	{
		Name:        "ls",
		Syntax:      "ls [path]",
		Description: "List directory contents",
		Examples: []string{
			"ls                    # List current directory",
			"ls using-amp          # List contents of using-amp directory",
			"ls /                  # List root directory",
		},
	},
	{
		Name:        "cd",
		Syntax:      "cd [path]",
		Description: "Change current directory",
		Examples: []string{
			"cd using-amp          # Change to using-amp directory",
			"cd ..                 # Go up one directory",
			"cd /                  # Go to root directory",
			"cd ~                  # Go to home (root) directory",
		},
	},
	{
		Name:        "pwd",
		Syntax:      "pwd",
		Description: "Print current working directory",
		Examples:    []string{"pwd                   # Show current directory path"},
	},
	{
		Name:        "cat",
		Syntax:      "cat <file>",
		Description: "Display entire file content",
		Examples: []string{
			"cat introduction.md   # Display introduction file",
			"cat getting-started.md # Display getting started guide",
		},
	},
	{
		Name:        "head",
		Syntax:      "head [-n lines] <file>",
		Description: "Display first lines of a file (default: 10)",
		Options:     []string{"-n lines             # Number of lines to display"},
		Examples: []string{
			"head introduction.md  # Show first 10 lines",
			"head -n 5 intro.md    # Show first 5 lines",
		},
	},
	{
		Name:        "tail",
		Syntax:      "tail [-n lines] <file>",
		Description: "Display last lines of a file (default: 10)",
		Options:     []string{"-n lines             # Number of lines to display"},
		Examples: []string{
			"tail introduction.md  # Show last 10 lines",
			"tail -n 3 intro.md    # Show last 3 lines",
		},
	},
	{
		Name:        "less",
		Syntax:      "less <file>",
		Description: "Display file content with paging",
		Examples:    []string{"less introduction.md  # View file with paging"},
	},
	{
		Name:        "tree",
		Syntax:      "tree [path]",
		Description: "Display directory structure as a tree",
		Examples: []string{
			"tree                  # Show tree of current directory",
			"tree using-amp        # Show tree of using-amp directory",
		},
	},
	{
		Name:        "find",
		Syntax:      "find <term> | find -name <pattern>",
		Description: "Search for content across all documentation",
		Options:     []string{"-name pattern        # Match file names instead of content"},
		Examples: []string{
			"find configuration    # Search for \"configuration\"",
			"find getting started  # Search for the phrase \"getting started\"",
			"find -name threads    # Files whose name contains \"threads\"",
		},
	},
	{
		Name:        "help",
		Syntax:      "help [command]",
		Description: "Show help information",
		Examples: []string{
			"help                  # Show all commands",
			"help cat              # Show help for cat command",
		},
	},
	{
		Name:        "man",
		Syntax:      "man <topic>",
		Description: "Show manual page for topic",
		Examples: []string{
			"man amp               # Show Amp manual",
			"man commands          # Show commands reference",
		},
	},
	{
		Name:        "clear",
		Syntax:      "clear",
		Description: "Clear the terminal screen",
		Examples:    []string{"clear                 # Clear screen"},
	},
	{
		Name:        "exit",
		Syntax:      "exit",
		Description: "Leave the shell",
		Examples:    []string{"exit                  # Quit docsh"},
	},
}

// Help returns the formatted help for one command.
func Help(name string) (string, bool) {
	for _, e := range helpEntries {
		if e.Name == name {
			return e.Format(), true
		}
	}
	return "", false
}

// HelpCommands lists the commands that have help entries, sorted.
func HelpCommands() []string {
	names := make([]string, 0, len(helpEntries))
	for _, e := range helpEntries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Format renders the entry as a help screen.
func (e HelpEntry) Format() string {
	var b strings.Builder
	b.WriteString(e.Name + " - " + e.Description + "\n\n")
	b.WriteString("SYNTAX:\n  " + e.Syntax + "\n\n")
	if len(e.Options) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, opt := range e.Options {
			b.WriteString("  " + opt + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("EXAMPLES:\n")
	for _, ex := range e.Examples {
		b.WriteString("  " + ex + "\n")
	}
	return b.String()
}

// GeneralHelp is the overview printed by a bare help.
func GeneralHelp(title string) string {
	if title == "" {
		title = "Documentation"
	}
	var b strings.Builder
	b.WriteString(title + " Terminal - Available Commands\n\n")

	b.WriteString("NAVIGATION:\n")
	b.WriteString("  ls [path]             List directory contents\n")
	b.WriteString("  cd [path]             Change directory\n")
	b.WriteString("  pwd                   Print working directory\n")
	b.WriteString("  tree [path]           Show directory tree\n\n")

	b.WriteString("FILE VIEWING:\n")
	b.WriteString("  cat <file>            Display file content\n")
	b.WriteString("  head [-n] <file>      Show first lines of file\n")
	b.WriteString("  tail [-n] <file>      Show last lines of file\n")
	b.WriteString("  less <file>           View file with paging\n\n")

	b.WriteString("SEARCH & HELP:\n")
	b.WriteString("  find <term>           Search documentation\n")
	b.WriteString("  find -name <pattern>  Find files by name\n")
	b.WriteString("  help [command]        Show help information\n")
	b.WriteString("  man <topic>           Show manual pages\n\n")

	b.WriteString("UTILITIES:\n")
	b.WriteString("  clear                 Clear screen\n")
	b.WriteString("  exit                  Leave the shell\n\n")

	b.WriteString("TIPS:\n")
	b.WriteString("  - Multi-word search terms are joined: find getting started\n")
	b.WriteString("  - Tab completion is available for commands and files\n")
	b.WriteString("  - Use arrow keys to navigate command history\n")
	b.WriteString("  - Type 'help <command>' for detailed command help\n")
	return b.String()
}
