// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
)

// CadenceInput wraps a bubbles textinput for entering seconds per page.
type CadenceInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewCadenceInput creates a new cadence input component.
func NewCadenceInput(s *styles.Styles) *CadenceInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "2"
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = ""

	return &CadenceInput{
		textinput: ti,
		styles:    s,
		width:     12,
	}
}

// Init initialises the input.
func (c *CadenceInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (c *CadenceInput) Update(msg tea.Msg) (*CadenceInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the label and input.
func (c *CadenceInput) View() string {
	label := c.styles.Page.Render("Seconds per page: ")
	field := c.styles.InputField.Render(c.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (c *CadenceInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (c *CadenceInput) SetValue(value string) {
	c.textinput.SetValue(value)
	c.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (c *CadenceInput) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *CadenceInput) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *CadenceInput) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the width of the input field.
func (c *CadenceInput) SetWidth(width int) {
	c.width = max(width, 6)
	c.textinput.Width = c.width
}

// Width returns the current width.
func (c *CadenceInput) Width() int {
	return c.width
}

// Reset clears the input.
func (c *CadenceInput) Reset() {
	c.textinput.Reset()
}
