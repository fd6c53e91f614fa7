package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Cadence bounds and default, in seconds per page.
const (
	// MinCadence is the shortest accepted dwell time (inclusive).
	MinCadence Cadence = 0.1

	// MaxCadence is the longest accepted dwell time (inclusive).
	MaxCadence Cadence = 60

	// DefaultCadence is used until the user confirms a value.
	DefaultCadence Cadence = 2.0
)

// Cadence is the dwell time per page, in seconds.
type Cadence float64

// ParseCadence parses user input into a Cadence.
// Leading and trailing whitespace is ignored. Empty, non-numeric and
// out-of-range input is rejected with an error wrapping ErrInvalidCadence.
func ParseCadence(input string) (Cadence, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%w: value is required", ErrInvalidCadence)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCadence, s)
	}

	c := Cadence(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// Validate returns an error wrapping ErrInvalidCadence if c lies outside
// [MinCadence, MaxCadence].
func (c Cadence) Validate() error {
	if math.IsNaN(float64(c)) || c < MinCadence || c > MaxCadence {
		return fmt.Errorf("%w: must be between %s and %s seconds",
			ErrInvalidCadence, MinCadence, MaxCadence)
	}
	return nil
}

// IsValid returns true if c lies within [MinCadence, MaxCadence].
func (c Cadence) IsValid() bool {
	return c.Validate() == nil
}

// Duration converts the cadence to a time.Duration.
func (c Cadence) Duration() time.Duration {
	return time.Duration(float64(c) * float64(time.Second))
}

// Seconds returns the cadence as a float64 number of seconds.
func (c Cadence) Seconds() float64 {
	return float64(c)
}

// String formats the cadence with the minimal number of digits,
// e.g. "2" or "0.5". This is the value a dialog is pre-filled with.
func (c Cadence) String() string {
	return strconv.FormatFloat(float64(c), 'f', -1, 64)
}
