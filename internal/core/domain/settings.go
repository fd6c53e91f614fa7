package domain

import "time"

// Default settings values.
const (
	// DefaultSettleDelay lets the host finish its full-screen layout before
	// the first cadence countdown starts.
	DefaultSettleDelay = 500 * time.Millisecond

	// MaxSettleDelay is the largest accepted settle delay.
	MaxSettleDelay = 5 * time.Second

	// DefaultLinesPerPage is used when a page has no form feed break.
	DefaultLinesPerPage = 40

	// MaxLinesPerPage is the largest accepted page length.
	MaxLinesPerPage = 1000

	// DefaultReadyPollInterval is how often a not-yet-ready host is polled.
	DefaultReadyPollInterval = 100 * time.Millisecond
)

// AdvanceSettings configures the auto-advance controller.
type AdvanceSettings struct {
	// InitialCadence is the cadence before the user confirms one.
	InitialCadence Cadence

	// SettleDelay is the one-time delay after entering full-screen.
	SettleDelay time.Duration
}

// ViewerSettings configures document loading.
type ViewerSettings struct {
	// LinesPerPage splits pages that have no form feed break.
	LinesPerPage int

	// Watch reloads the document when the file changes on disk.
	Watch bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Advance AdvanceSettings
	Viewer  ViewerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Advance: AdvanceSettings{
			InitialCadence: DefaultCadence,
			SettleDelay:    DefaultSettleDelay,
		},
		Viewer: ViewerSettings{
			LinesPerPage: DefaultLinesPerPage,
			Watch:        true,
		},
	}
}
