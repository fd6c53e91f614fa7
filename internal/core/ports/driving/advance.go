package driving

import (
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
)

// AdvanceController owns the auto-advance session and its timer.
type AdvanceController interface {
	// Attach binds the host viewer and subscribes to its presentation
	// notifications. Attaching a new viewer stops any session bound to
	// the previous one. The returned function detaches the viewer.
	Attach(viewer driven.Viewer) (detach func(), err error)

	// Confirm commits a validated cadence and starts auto-advance.
	// If the viewer is not full-screen it is asked to enter it before
	// Confirm returns, so this must be called from the user gesture that
	// produced the confirmation.
	Confirm(cadence domain.Cadence) error

	// PresentationChanged handles a presentation-mode notification.
	PresentationChanged(state domain.PresentationState)

	// Cadence returns the committed cadence.
	Cadence() domain.Cadence

	// Snapshot returns the current session state.
	Snapshot() domain.AdvanceSnapshot

	// Close stops any session and detaches the viewer.
	Close() error
}
