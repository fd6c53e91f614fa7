package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
	"github.com/custodia-labs/pacer/internal/logger"
)

// Ensure CadenceCollector implements the interface.
var _ driving.CadenceCollector = (*CadenceCollector)(nil)

// CadenceCollector validates cadence input from a dialog.
// It has no timing logic and never touches the advance controller.
type CadenceCollector struct{}

// NewCadenceCollector creates a new cadence collector.
func NewCadenceCollector() *CadenceCollector {
	return &CadenceCollector{}
}

// Open starts a draft pre-filled with the current cadence.
func (c *CadenceCollector) Open(current domain.Cadence) driving.CadenceDraft {
	if !current.IsValid() {
		current = domain.DefaultCadence
	}
	return &cadenceDraft{
		input: current.String(),
		open:  true,
	}
}

// cadenceDraft is a single open/confirm/cancel round-trip.
type cadenceDraft struct {
	input     string
	message   string
	open      bool
	cancelled bool
	value     domain.Cadence
}

func (d *cadenceDraft) Input() string {
	return d.input
}

func (d *cadenceDraft) Submit(input string) (domain.Cadence, error) {
	if !d.open {
		return 0, domain.ErrDraftClosed
	}

	d.input = input
	value, err := domain.ParseCadence(input)
	if err != nil {
		d.message = validationMessage(err)
		logger.Debug("cadence input %q rejected: %v", input, err)
		return 0, err
	}

	d.message = ""
	d.value = value
	d.open = false
	return value, nil
}

func (d *cadenceDraft) Cancel() {
	if !d.open {
		return
	}
	d.open = false
	d.cancelled = true
	d.message = ""
}

func (d *cadenceDraft) Open() bool {
	return d.open
}

func (d *cadenceDraft) Message() string {
	return d.message
}

func (d *cadenceDraft) Result() (domain.Cadence, error) {
	switch {
	case d.open:
		return 0, domain.ErrNotReady
	case d.cancelled:
		return 0, domain.ErrCancelled
	default:
		return d.value, nil
	}
}

// validationMessage renders the inline message shown under the input.
func validationMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidCadence) {
		return fmt.Sprintf("Please enter a valid number between %s and %s.",
			domain.MinCadence, domain.MaxCadence)
	}
	return err.Error()
}
