// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view or closes a popup.
	Back key.Binding

	// AutoAdvance is the primary toolbar button.
	AutoAdvance key.Binding

	// Menu opens the secondary toolbar menu.
	Menu key.Binding

	// Fullscreen toggles the presentation mode.
	Fullscreen key.Binding

	// NextPage turns to the next page.
	NextPage key.Binding

	// PrevPage turns to the previous page.
	PrevPage key.Binding

	// FirstPage jumps to the first page.
	FirstPage key.Binding

	// LastPage jumps to the last page.
	LastPage key.Binding

	// Up navigates up in a menu.
	Up key.Binding

	// Down navigates down in a menu.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel cancels the current operation.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		AutoAdvance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-advance"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full screen"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", " ", "pgdown", "n"),
			key.WithHelp("→/space", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup", "p"),
			key.WithHelp("←", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AutoAdvance, k.Menu, k.Help, k.Quit}
}

// PresentationHelp returns keybindings shown while in full-screen.
func (k *KeyMap) PresentationHelp() []key.Binding {
	return []key.Binding{k.Back, k.NextPage}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.AutoAdvance, k.Menu, k.Fullscreen},
		{k.Select, k.Back, k.Cancel},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
