package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines console colors.
type ColorTheme struct {
	Foreground   tcell.Color
	Prompt       tcell.Color
	Error        tcell.Color
	Banner       tcell.Color
	BannerAccent tcell.Color
	Hint         tcell.Color
	StatusBg     tcell.Color
	StatusFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Foreground:   tcell.ColorDefault,
		Prompt:       tcell.ColorGreen,
		Error:        tcell.Color203, // soft red
		Banner:       tcell.ColorGreen,
		BannerAccent: tcell.Color44,
		Hint:         tcell.ColorYellow,
		StatusBg:     tcell.ColorDefault,
		StatusFg:     tcell.ColorDefault,
	}
}

func (t ColorTheme) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg)
}

// StatusStyle is used for the pager status line.
func (t ColorTheme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg).Reverse(true)
}
