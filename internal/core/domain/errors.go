package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCadence indicates a cadence that is not a number or lies
	// outside [MinCadence, MaxCadence]. It wraps ErrInvalidInput.
	ErrInvalidCadence = fmt.Errorf("%w: cadence", ErrInvalidInput)

	// ErrCancelled indicates the user dismissed the cadence dialog.
	ErrCancelled = errors.New("cancelled")

	// ErrDraftClosed indicates a cadence draft was used after it was
	// confirmed or cancelled.
	ErrDraftClosed = errors.New("cadence draft closed")

	// Viewer Errors.

	// ErrNoViewer indicates the advance controller has no host viewer attached.
	ErrNoViewer = errors.New("no viewer attached")

	// ErrNotReady indicates the host viewer has not finished initialising.
	ErrNotReady = errors.New("viewer not ready")

	// Settings Errors.

	// ErrUnknownSetting indicates a settings key that pacer does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")
)
