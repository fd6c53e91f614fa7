// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the reader.
type Theme struct {
	// Accent marks the primary toolbar button and the active session.
	Accent lipgloss.Color

	// Secondary highlights menu selections.
	Secondary lipgloss.Color

	// Ink is the page text colour.
	Ink lipgloss.Color

	// Chrome is the toolbar and status bar background.
	Chrome lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates a running session.
	Success lipgloss.Color

	// Warning indicates a session waiting for full-screen.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#E0A458"), // Amber
		Secondary: lipgloss.Color("#7FB7BE"), // Teal
		Ink:       lipgloss.Color("#E6E1CF"), // Parchment
		Chrome:    lipgloss.Color("#1F2430"), // Slate
		Muted:     lipgloss.Color("#6C7380"), // Grey
		Success:   lipgloss.Color("#A6CC70"), // Green
		Warning:   lipgloss.Color("#FFCC66"), // Yellow
		Error:     lipgloss.Color("#F28779"), // Red
		Border:    lipgloss.Color("#454D5B"), // Border grey
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the document title.
	Title lipgloss.Style

	// Page style for page text.
	Page lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted menu items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for a running session.
	Success lipgloss.Style

	// Warning style for a pending session.
	Warning lipgloss.Style

	// Toolbar style for the toolbar row.
	Toolbar lipgloss.Style

	// Button style for toolbar buttons.
	Button lipgloss.Style

	// PrimaryButton style for the auto-advance button.
	PrimaryButton lipgloss.Style

	// Dialog style for the modal cadence dialog.
	Dialog lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Page: lipgloss.NewStyle().
			Foreground(theme.Ink),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Chrome).
			Background(theme.Secondary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Toolbar: lipgloss.NewStyle().
			Background(theme.Chrome),

		Button: lipgloss.NewStyle().
			Foreground(theme.Ink).
			Background(theme.Chrome).
			Padding(0, 1),

		PrimaryButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Chrome).
			Background(theme.Accent).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Chrome).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
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
