// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pacer/internal/core/domain"
)

// Bar displays reading progress, the auto-advance session, and keybinding
// hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	snapshot domain.AdvanceSnapshot
	page     int
	pages    int
	message  string
	isError  bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		snapshot: domain.AdvanceSnapshot{State: domain.AdvanceIdle, Cadence: domain.DefaultCadence},
		width:    80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders page position and session state.
func (s *Bar) renderLeft() string {
	parts := []string{s.styles.Muted.Render(fmt.Sprintf("Page %d/%d", s.page, s.pages))}

	switch s.snapshot.State {
	case domain.AdvanceRunning:
		parts = append(parts, s.styles.Success.Render(
			fmt.Sprintf("%s every %ss", s.snapshot.State.Description(), s.snapshot.Cadence)))
	case domain.AdvancePendingStart:
		parts = append(parts, s.styles.Warning.Render(s.snapshot.State.Description()))
	case domain.AdvanceIdle:
		parts = append(parts, s.styles.Muted.Render(
			fmt.Sprintf("Auto-advance %s (%ss)", strings.ToLower(s.snapshot.State.Description()), s.snapshot.Cadence)))
	}
	if id := shortID(s.snapshot.SessionID); id != "" {
		parts = append(parts, s.styles.Muted.Render(id))
	}

	if s.message != "" {
		style := s.styles.Muted
		if s.isError {
			style = s.styles.Error
		}
		parts = append(parts, style.Render(s.message))
	}

	return strings.Join(parts, s.styles.Muted.Render(" · "))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// HelpBindings returns the bindings shown on the right.
func (s *Bar) HelpBindings() []key.Binding {
	return s.keymap.ShortHelp()
}

// SetSnapshot sets the auto-advance session to display.
func (s *Bar) SetSnapshot(snapshot domain.AdvanceSnapshot) {
	s.snapshot = snapshot
}

// Snapshot returns the displayed session.
func (s *Bar) Snapshot() domain.AdvanceSnapshot {
	return s.snapshot
}

// SetProgress sets the current page and page count.
func (s *Bar) SetProgress(page, pages int) {
	s.page = page
	s.pages = pages
}

// SetMessage sets an informational message.
func (s *Bar) SetMessage(message string) {
	s.message = message
	s.isError = false
}

// SetError sets an error message.
func (s *Bar) SetError(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.message = err.Error()
	s.isError = true
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear removes any message.
func (s *Bar) Clear() {
	s.message = ""
	s.isError = false
}

// shortID abbreviates a session UUID to its first group.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
