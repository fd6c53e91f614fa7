// Package tui provides the interactive terminal document viewer for pacer.
// It implements a driving adapter following hexagonal architecture principles
// and hosts the auto-advance controller as its viewer.
package tui

import (
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Advance owns the auto-advance session.
	Advance driving.AdvanceController

	// Collector opens cadence drafts for the dialog.
	Collector driving.CadenceCollector

	// Documents loads and follows the document being read.
	Documents driving.DocumentService

	// Readiness defers activation until the viewer is ready. Optional.
	Readiness driving.ReadyWaiter
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	advance driving.AdvanceController,
	collector driving.CadenceCollector,
	documents driving.DocumentService,
) *Ports {
	return &Ports{
		Advance:   advance,
		Collector: collector,
		Documents: documents,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Advance == nil {
		return ErrMissingAdvanceController
	}
	if p.Collector == nil {
		return ErrMissingCadenceCollector
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
