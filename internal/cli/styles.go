// internal/cli/styles.go
//
// Terminal styling for the interactive modes. One Styles value is
// built per UI; tiles use the familiar Wordle board colors.

package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCorrect = lipgloss.Color("#538d4e") // green
	colorPresent = lipgloss.Color("#b59f3b") // yellow
	colorAbsent  = lipgloss.Color("#3a3a3c") // dark grey
	colorText    = lipgloss.Color("#ffffff")
	colorMuted   = lipgloss.Color("#818384")
)

// Styles holds the styled components of the prompt loop.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	TileCorrect lipgloss.Style
	TilePresent lipgloss.Style
	TileAbsent  lipgloss.Style
}

// DefaultStyles builds the standard board styling.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().Foreground(colorText).Bold(true).Padding(0, 1)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Success: lipgloss.NewStyle().Foreground(colorCorrect).Bold(true),

		TileCorrect: tile.Background(colorCorrect),
		TilePresent: tile.Background(colorPresent),
		TileAbsent:  tile.Background(colorAbsent),
	}
}
