package driving

import "context"

// ReadyProbe reports whether a host has finished initialising.
type ReadyProbe interface {
	Ready() bool
}

// ReadyWaiter blocks until a host is ready.
type ReadyWaiter interface {
	// WaitReady returns nil once probe reports ready, or an error wrapping
	// domain.ErrNotReady if ctx is done first.
	WaitReady(ctx context.Context, probe ReadyProbe) error
}
