// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewReader shows the current page.
	ViewReader ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewReader:
		return "reader"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DocumentLoaded carries the initial document load.
type DocumentLoaded struct {
	Document *domain.Document
	Err      error
}

// FollowStarted carries the reload channel once watching begins.
type FollowStarted struct {
	Updates <-chan driving.DocumentUpdate
	Err     error
}

// DocumentReloaded carries a document re-read after a change on disk.
// Updates is the channel it arrived on, to listen for the next one.
type DocumentReloaded struct {
	Update  driving.DocumentUpdate
	Updates <-chan driving.DocumentUpdate
}

// PresentationChanged reports that the terminal entered or left the
// full-screen presentation mode.
type PresentationChanged struct {
	State domain.PresentationState
}

// PageAdvanced is posted when a page turn happened outside the update loop.
type PageAdvanced struct {
	Page int
}

// ActivationReady is sent when a deferred activation may proceed.
type ActivationReady struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
