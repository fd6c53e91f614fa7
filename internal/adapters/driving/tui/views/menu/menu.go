// Package menu provides the secondary toolbar menu for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
)

// Action is what selecting a menu item asks the app to do.
type Action int

const (
	// ActionNone means the key was consumed without a selection.
	ActionNone Action = iota
	// ActionClose dismisses the menu.
	ActionClose
	// ActionAutoAdvance opens the cadence dialog.
	ActionAutoAdvance
	// ActionFullscreen enters the presentation mode.
	ActionFullscreen
	// ActionHelp shows the help view.
	ActionHelp
	// ActionQuit exits the application.
	ActionQuit
)

// Item represents a single menu option.
type Item struct {
	Label  string
	Action Action
}

// View is the dropdown opened from the toolbar's Menu button.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Auto-advance…", Action: ActionAutoAdvance},
			{Label: "Full screen", Action: ActionFullscreen},
			{Label: "Help", Action: ActionHelp},
			{Label: "Quit", Action: ActionQuit},
		},
	}
}

// Update handles a key press and returns the chosen action.
// Selection is returned rather than sent as a command so the caller can act
// within the same key event.
func (v *View) Update(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case "enter":
		return v.items[v.selected].Action
	case "esc", "m":
		return ActionClose
	case "q":
		return ActionQuit
	}
	return ActionNone
}

// View renders the menu.
func (v *View) View() string {
	lines := make([]string, 0, len(v.items))
	for i, item := range v.items {
		label := " " + item.Label + " "
		if i == v.selected {
			lines = append(lines, v.styles.Selected.Render(label))
		} else {
			lines = append(lines, label)
		}
	}
	return v.styles.Border.Render(strings.Join(lines, "\n"))
}

// ItemAt returns the action of the item rendered on row, counted from the
// top of the menu including its border.
func (v *View) ItemAt(row int) (Action, bool) {
	i := row - 1
	if i < 0 || i >= len(v.items) {
		return ActionNone, false
	}
	v.selected = i
	return v.items[i].Action, true
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Reset moves the selection back to the first item.
func (v *View) Reset() {
	v.selected = 0
}
