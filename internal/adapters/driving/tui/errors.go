package tui

import "errors"

// ErrMissingAdvanceController is returned when the advance controller is not provided.
var ErrMissingAdvanceController = errors.New("tui: advance controller is required")

// ErrMissingCadenceCollector is returned when the cadence collector is not provided.
var ErrMissingCadenceCollector = errors.New("tui: cadence collector is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
