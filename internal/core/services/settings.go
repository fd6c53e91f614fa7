package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInitialCadence = "advance.initial_cadence"
	keySettleDelayMS  = "advance.settle_delay_ms"
	keyLinesPerPage   = "viewer.lines_per_page"
	keyWatch          = "viewer.watch"
)

var settingsKeys = []string{keyInitialCadence, keySettleDelayMS, keyLinesPerPage, keyWatch}

// SettingsService manages application settings.
// The cadence confirmed in the viewer is never written here; only the
// initial cadence a session starts from is configurable.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Values that are missing or out of range fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Advance: domain.AdvanceSettings{
			InitialCadence: s.getCadence(defaults.Advance.InitialCadence),
			SettleDelay:    s.getSettleDelay(defaults.Advance.SettleDelay),
		},
		Viewer: domain.ViewerSettings{
			LinesPerPage: s.getLinesPerPage(defaults.Viewer.LinesPerPage),
			Watch:        s.getBool(keyWatch, defaults.Viewer.Watch),
		},
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyInitialCadence:
		c, err := domain.ParseCadence(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return s.save(key, c.Seconds())

	case keySettleDelayMS:
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 || time.Duration(ms)*time.Millisecond > domain.MaxSettleDelay {
			return fmt.Errorf("%s: %w: must be between 0 and %d",
				key, domain.ErrInvalidInput, domain.MaxSettleDelay.Milliseconds())
		}
		return s.save(key, ms)

	case keyLinesPerPage:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > domain.MaxLinesPerPage {
			return fmt.Errorf("%s: %w: must be between 1 and %d",
				key, domain.ErrInvalidInput, domain.MaxLinesPerPage)
		}
		return s.save(key, n)

	case keyWatch:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w: must be true or false", key, domain.ErrInvalidInput)
		}
		return s.save(key, b)

	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
}

// Keys returns the recognised settings keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) save(key string, value any) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Helper methods for reading config with defaults

func (s *SettingsService) getCadence(defaultVal domain.Cadence) domain.Cadence {
	if _, exists := s.configStore.Get(keyInitialCadence); !exists {
		return defaultVal
	}
	c := domain.Cadence(s.configStore.GetFloat(keyInitialCadence))
	if !c.IsValid() {
		return defaultVal
	}
	return c
}

func (s *SettingsService) getSettleDelay(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(keySettleDelayMS); !exists {
		return defaultVal
	}
	d := time.Duration(s.configStore.GetInt(keySettleDelayMS)) * time.Millisecond
	if d < 0 || d > domain.MaxSettleDelay {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getLinesPerPage(defaultVal int) int {
	n := s.configStore.GetInt(keyLinesPerPage)
	if n < 1 || n > domain.MaxLinesPerPage {
		return defaultVal
	}
	return n
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
