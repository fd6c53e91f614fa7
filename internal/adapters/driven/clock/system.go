// Package clock provides the wall-clock implementation of driven.Clock.
package clock

import (
	"time"

	"github.com/custodia-labs/pacer/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = System{}

// System schedules callbacks with time.AfterFunc.
type System struct{}

// New returns the system clock.
func New() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f in its own goroutine after d.
func (System) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
