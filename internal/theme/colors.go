package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Pull request status colors
const (
	ColorClosed Color = "8"   // Gray
	ColorMerged Color = "141" // Purple
	ColorOpen   Color = "2"   // Green
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
)

// Git colors
const (
	ColorAdditions Color = "2"  // Green
	ColorDeletions Color = "1"  // Red
	ColorHunk      Color = "33" // Blue - @@ hunk headers
)
