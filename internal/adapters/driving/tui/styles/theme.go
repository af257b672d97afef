// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	// Accent marks titles, the selected field and the primary button.
	Accent lipgloss.Color

	// Highlight marks section headings such as the editor label.
	Highlight lipgloss.Color

	// Surface is the background behind bars and buttons.
	Surface lipgloss.Color

	// Text is the default foreground.
	Text lipgloss.Color

	// Dim is used for hints, counts and separators.
	Dim lipgloss.Color

	Saved   lipgloss.Color
	Caution lipgloss.Color
	Failure lipgloss.Color

	// Frame outlines the editor and inactive buttons.
	Frame lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#F97316"),
		Highlight: lipgloss.Color("#38BDF8"),
		Surface:   lipgloss.Color("#1C1917"),
		Text:      lipgloss.Color("#E7E5E4"),
		Dim:       lipgloss.Color("#78716C"),
		Saved:     lipgloss.Color("#4ADE80"),
		Caution:   lipgloss.Color("#FACC15"),
		Failure:   lipgloss.Color("#F87171"),
		Frame:     lipgloss.Color("#44403C"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Headings.
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Text.
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style

	// Selected marks the current record and the selected field option.
	Selected lipgloss.Style

	// Outcomes.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Panel chrome.
	Separator     lipgloss.Style
	Editor        lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style
	Notice        lipgloss.Style
	StatusBar     lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.Dim)
	pill := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),

		Normal: text,
		Muted:  dim,
		Help:   dim.Italic(true),

		Selected: text.Bold(true).Background(theme.Accent),

		Error:   lipgloss.NewStyle().Foreground(theme.Failure),
		Success: lipgloss.NewStyle().Foreground(theme.Saved),
		Warning: lipgloss.NewStyle().Foreground(theme.Caution),

		Separator: lipgloss.NewStyle().Foreground(theme.Frame),
		Editor: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Highlight),
		Button:        pill.Foreground(theme.Text).Background(theme.Frame),
		PrimaryButton: pill.Bold(true).Foreground(theme.Surface).Background(theme.Accent),
		Notice: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(theme.Caution).
			Padding(0, 1),
		StatusBar: pill.Foreground(theme.Dim).Background(theme.Surface),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
