package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// Ensure Readiness implements the interface.
var _ driving.ReadyWaiter = (*Readiness)(nil)

// Readiness polls hosts on a fixed interval.
type Readiness struct {
	clock    driven.Clock
	interval time.Duration
}

// NewReadiness creates a waiter polling every interval.
// A non-positive interval uses domain.DefaultReadyPollInterval.
func NewReadiness(clock driven.Clock, interval time.Duration) *Readiness {
	return &Readiness{clock: clock, interval: interval}
}

// WaitReady implements driving.ReadyWaiter.
func (r *Readiness) WaitReady(ctx context.Context, probe driving.ReadyProbe) error {
	return WaitReady(ctx, probe, r.clock, r.interval)
}

// WaitReady polls probe every interval until it reports ready.
// It returns an error wrapping domain.ErrNotReady and the context error if
// ctx is done first. A non-positive interval uses
// domain.DefaultReadyPollInterval.
func WaitReady(ctx context.Context, probe driving.ReadyProbe, clock driven.Clock, interval time.Duration) error {
	if interval <= 0 {
		interval = domain.DefaultReadyPollInterval
	}

	for {
		if probe.Ready() {
			return nil
		}

		fired := make(chan struct{})
		timer := clock.AfterFunc(interval, func() { close(fired) })

		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", domain.ErrNotReady, ctx.Err())
		case <-fired:
		}
	}
}
