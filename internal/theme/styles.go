package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorSelected).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 0, 1, 0)
)

// Pull request status styles
var (
	ClosedStyle = lipgloss.NewStyle().
			Foreground(ColorClosed)

	MergedStyle = lipgloss.NewStyle().
			Foreground(ColorMerged)

	OpenStyle = lipgloss.NewStyle().
			Foreground(ColorOpen)
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	HunkStyle = lipgloss.NewStyle().
			Foreground(ColorHunk)

	PatchStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

// StatusStyle returns the style for a pull request status name
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "open":
		return OpenStyle
	case "merged":
		return MergedStyle
	case "closed":
		return ClosedStyle
	}
	return NormalStyle
}
