// Package toolbar provides the reader's toolbar row.
package toolbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
)

// Button identifies a toolbar control.
type Button int

const (
	// ButtonNone is returned when no control was hit.
	ButtonNone Button = iota
	// ButtonAutoAdvance is the primary trigger.
	ButtonAutoAdvance
	// ButtonMenu opens the secondary menu.
	ButtonMenu
)

// Labels for the toolbar controls.
const (
	autoAdvanceLabel = "▶ Auto-advance"
	menuLabel        = "☰ Menu"
)

// Bar is the toolbar shown above the page in the regular layout.
type Bar struct {
	styles *styles.Styles
	title  string
	active bool
	width  int
}

// NewBar creates a new toolbar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s, width: 80}
}

// SetTitle sets the document title shown on the right.
func (b *Bar) SetTitle(title string) {
	b.title = title
}

// SetActive marks the primary button while a session is active.
func (b *Bar) SetActive(active bool) {
	b.active = active
}

// SetWidth sets the toolbar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the toolbar.
func (b *Bar) View() string {
	buttons := b.renderButtons()

	title := b.styles.Muted.Render(b.title)
	padding := b.width - lipgloss.Width(buttons) - lipgloss.Width(title)
	if padding < 1 {
		padding = 1
	}

	return b.styles.Toolbar.Width(b.width).Render(buttons + strings.Repeat(" ", padding) + title)
}

func (b *Bar) renderButtons() string {
	primary := autoAdvanceLabel
	if b.active {
		primary = "■ Auto-advance"
	}
	return b.styles.PrimaryButton.Render(primary) + " " + b.styles.Button.Render(menuLabel)
}

// ButtonAt returns the control rendered at column x of the toolbar row.
func (b *Bar) ButtonAt(x int) Button {
	primary := lipgloss.Width(b.styles.PrimaryButton.Render(autoAdvanceLabel))
	menu := lipgloss.Width(b.styles.Button.Render(menuLabel))

	switch {
	case x >= 0 && x < primary:
		return ButtonAutoAdvance
	case x > primary && x <= primary+menu:
		return ButtonMenu
	default:
		return ButtonNone
	}
}

// MenuOffset returns the column where the Menu button starts.
func (b *Bar) MenuOffset() int {
	return lipgloss.Width(b.styles.PrimaryButton.Render(autoAdvanceLabel)) + 1
}
