package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
	"github.com/custodia-labs/pacer/internal/logger"
)

// Ensure AdvanceController implements the interface.
var _ driving.AdvanceController = (*AdvanceController)(nil)

// AdvanceController drives automatic page advancement in lockstep with the
// viewer's full-screen lifecycle.
//
// At most one timer handle is live at any time. Every armed timer carries a
// generation number and every transition bumps it, so a timer that fires
// after it was replaced or stopped does nothing.
//
// Decisions are made under mu. Viewer queries happen before taking mu and
// viewer commands after releasing it, so a viewer may call back into the
// controller from inside RequestPresentation or NextPage.
type AdvanceController struct {
	clock       driven.Clock
	settleDelay time.Duration
	newID       func() string

	mu          sync.Mutex
	viewer      driven.Viewer
	unsubscribe func()
	cadence     domain.Cadence
	state       domain.AdvanceState
	sessionID   string
	ticks       int
	advanced    int
	timer       driven.Timer
	generation  uint64
}

// NewAdvanceController creates an idle controller.
// An invalid initial cadence falls back to domain.DefaultCadence.
func NewAdvanceController(clock driven.Clock, settings domain.AdvanceSettings) *AdvanceController {
	cadence := settings.InitialCadence
	if !cadence.IsValid() {
		cadence = domain.DefaultCadence
	}
	settle := settings.SettleDelay
	if settle < 0 {
		settle = 0
	}
	return &AdvanceController{
		clock:       clock,
		settleDelay: settle,
		newID:       uuid.NewString,
		cadence:     cadence,
		state:       domain.AdvanceIdle,
	}
}

// Attach binds viewer and subscribes to its presentation notifications.
func (c *AdvanceController) Attach(viewer driven.Viewer) (func(), error) {
	if viewer == nil {
		return nil, domain.ErrNoViewer
	}

	c.mu.Lock()
	previous := c.unsubscribe
	c.stopLocked("viewer replaced")
	c.viewer = viewer
	c.unsubscribe = nil
	c.mu.Unlock()

	if previous != nil {
		previous()
	}

	unsubscribe := viewer.SubscribePresentation(func(state domain.PresentationState) {
		c.presentationChanged(viewer, state)
	})

	c.mu.Lock()
	if c.viewer != viewer {
		// Replaced while subscribing.
		c.mu.Unlock()
		unsubscribe()
		return func() {}, nil
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	logger.Debug("advance: viewer attached")
	return func() { c.detach(viewer) }, nil
}

// Confirm commits cadence and starts, restarts or requests auto-advance.
func (c *AdvanceController) Confirm(cadence domain.Cadence) error {
	if err := cadence.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	viewer := c.viewer
	c.mu.Unlock()
	if viewer == nil {
		return domain.ErrNoViewer
	}

	presentation, err := queryPresentation(viewer)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.viewer != viewer {
		c.mu.Unlock()
		return domain.ErrNoViewer
	}
	c.cadence = cadence

	if presentation.IsFullscreen() {
		if c.state == domain.AdvanceIdle {
			c.beginSessionLocked()
		}
		c.state = domain.AdvanceRunning
		c.armLocked(cadence.Duration(), c.onTick)
		id := c.sessionID
		c.mu.Unlock()

		logger.Info("advance: session %s running every %ss", id, cadence)
		return nil
	}

	// The viewer is not full-screen: drop any timer and ask it to enter.
	c.stopTimerLocked()
	if c.state == domain.AdvanceIdle {
		c.beginSessionLocked()
	}
	c.state = domain.AdvancePendingStart
	id := c.sessionID
	c.mu.Unlock()

	logger.Info("advance: session %s pending full-screen (cadence %ss)", id, cadence)
	if err := c.invoke(viewer.RequestPresentation); err != nil {
		logger.Warn("advance: presentation request failed: %v", err)
	}
	return nil
}

// PresentationChanged handles a presentation notification from the
// attached viewer.
func (c *AdvanceController) PresentationChanged(state domain.PresentationState) {
	c.mu.Lock()
	viewer := c.viewer
	c.mu.Unlock()
	if viewer == nil {
		return
	}
	c.presentationChanged(viewer, state)
}

func (c *AdvanceController) presentationChanged(from driven.Viewer, state domain.PresentationState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewer != from {
		return
	}

	switch c.state {
	case domain.AdvancePendingStart:
		if !state.IsFullscreen() {
			c.stopLocked(fmt.Sprintf("viewer reported %s while pending", state))
			return
		}
		c.state = domain.AdvanceRunning
		if c.settleDelay > 0 {
			c.armLocked(c.settleDelay, c.onSettled)
		} else {
			c.armLocked(c.cadence.Duration(), c.onTick)
		}
		logger.Info("advance: session %s running every %ss", c.sessionID, c.cadence)

	case domain.AdvanceRunning:
		if !state.IsFullscreen() {
			c.stopLocked("viewer left full-screen")
			return
		}
		logger.Debug("advance: ignoring repeated %s notification", state)

	case domain.AdvanceIdle:
		// Nothing pending.
	}
}

// Cadence returns the committed cadence.
func (c *AdvanceController) Cadence() domain.Cadence {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cadence
}

// Snapshot returns the current session state.
func (c *AdvanceController) Snapshot() domain.AdvanceSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.AdvanceSnapshot{
		State:     c.state,
		Cadence:   c.cadence,
		SessionID: c.sessionID,
		Ticks:     c.ticks,
		Advanced:  c.advanced,
	}
}

// Close stops any session and detaches the viewer.
func (c *AdvanceController) Close() error {
	c.mu.Lock()
	viewer := c.viewer
	c.mu.Unlock()
	if viewer != nil {
		c.detach(viewer)
	}
	return nil
}

func (c *AdvanceController) detach(viewer driven.Viewer) {
	c.mu.Lock()
	if c.viewer != viewer {
		c.mu.Unlock()
		return
	}
	c.stopLocked("viewer detached")
	unsubscribe := c.unsubscribe
	c.viewer = nil
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	logger.Debug("advance: viewer detached")
}

// onSettled replaces the settle timer with the first cadence countdown.
func (c *AdvanceController) onSettled(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != domain.AdvanceRunning {
		return
	}
	c.armLocked(c.cadence.Duration(), c.onTick)
}

// onTick performs one check-and-advance. The next countdown is armed only
// after NextPage returns, so ticks never overlap.
func (c *AdvanceController) onTick(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != domain.AdvanceRunning {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	viewer := c.viewer
	c.mu.Unlock()

	started := c.clock.Now()
	presentation, page, count, err := queryProgress(viewer)

	c.mu.Lock()
	if gen != c.generation || c.state != domain.AdvanceRunning {
		c.mu.Unlock()
		return
	}
	c.ticks++
	switch {
	case err != nil:
		c.stopLocked(err.Error())
		c.mu.Unlock()
		return
	case !presentation.IsFullscreen():
		c.stopLocked("viewer no longer full-screen")
		c.mu.Unlock()
		return
	case page >= count:
		c.stopLocked(fmt.Sprintf("reached last page %d", count))
		c.mu.Unlock()
		return
	}
	c.advanced++
	cadence := c.cadence
	c.mu.Unlock()

	logger.Debug("advance: page %d of %d, advancing", page, count)
	err = c.invoke(viewer.NextPage)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != domain.AdvanceRunning {
		return
	}
	if err != nil {
		c.stopLocked(err.Error())
		return
	}
	next := cadence.Duration() - c.clock.Now().Sub(started)
	if next < 0 {
		next = 0
	}
	c.armLocked(next, c.onTick)
}

// armLocked replaces the live timer with a new one calling fire.
func (c *AdvanceController) armLocked(d time.Duration, fire func(gen uint64)) {
	c.stopTimerLocked()
	gen := c.generation
	c.timer = c.clock.AfterFunc(d, func() { fire(gen) })
}

// stopTimerLocked cancels the live timer and invalidates any firing in flight.
func (c *AdvanceController) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

// stopLocked returns the session to Idle.
func (c *AdvanceController) stopLocked(reason string) {
	c.stopTimerLocked()
	if c.state != domain.AdvanceIdle {
		logger.Info("advance: session %s stopped after %d pages: %s", c.sessionID, c.advanced, reason)
	}
	c.state = domain.AdvanceIdle
	c.sessionID = ""
	c.ticks = 0
	c.advanced = 0
}

func (c *AdvanceController) beginSessionLocked() {
	c.sessionID = c.newID()
	c.ticks = 0
	c.advanced = 0
}

// invoke runs a viewer command, converting a panic into an error.
func (c *AdvanceController) invoke(command func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viewer panicked: %v", r)
		}
	}()
	command()
	return nil
}

func queryPresentation(viewer driven.Viewer) (state domain.PresentationState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viewer panicked: %v", r)
		}
	}()
	return viewer.PresentationState(), nil
}

func queryProgress(viewer driven.Viewer) (state domain.PresentationState, page, count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viewer panicked: %v", r)
		}
	}()
	return viewer.PresentationState(), viewer.Page(), viewer.PagesCount(), nil
}
