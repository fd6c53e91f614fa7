package driving

import "github.com/custodia-labs/pacer/internal/core/domain"

// CadenceCollector obtains a validated cadence from the user.
type CadenceCollector interface {
	// Open starts collecting, pre-filled with the current cadence.
	Open(current domain.Cadence) CadenceDraft
}

// CadenceDraft is one open cadence dialog.
type CadenceDraft interface {
	// Input returns the text the dialog is pre-filled with.
	Input() string

	// Submit validates input. On success the draft closes and the value is
	// returned; the caller commits it. On failure the draft stays open and
	// Message describes the problem.
	Submit(input string) (domain.Cadence, error)

	// Cancel closes the draft without a value.
	Cancel()

	// Open returns true until the draft is submitted or cancelled.
	Open() bool

	// Message returns the last validation message, or empty.
	Message() string

	// Result returns the confirmed cadence after a successful Submit, or
	// domain.ErrCancelled after Cancel. While the draft is open it returns
	// domain.ErrNotReady.
	Result() (domain.Cadence, error)
}
