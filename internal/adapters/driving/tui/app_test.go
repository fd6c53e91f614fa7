package tui

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
	"github.com/custodia-labs/pacer/internal/core/services"
)

func newTestPorts() *Ports {
	return &Ports{
		Advance:   &MockAdvanceController{},
		Collector: &mockCollector{},
		Documents: &MockDocumentService{},
		Readiness: &MockReadyWaiter{},
	}
}

// newLoadedApp returns an app that has a size and a loaded document.
func newLoadedApp(t *testing.T, ports *Ports, pages int) *App {
	t.Helper()
	app, err := NewApp(ports, "/tmp/doc.txt")
	require.NoError(t, err)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(messages.DocumentLoaded{Document: pagedDocument(pages)})
	require.True(t, app.Host().Ready())
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// runCmd executes cmd, flattening batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts(), "/tmp/doc.txt")

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewReader, app.CurrentView())
	assert.NotNil(t, app.Host())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Collector: &mockCollector{}}, "/tmp/doc.txt")

	assert.ErrorIs(t, err, ErrMissingAdvanceController)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts(), "/tmp/doc.txt")

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, app, app.WithFollow(true))
}

func TestApp_Init_LoadsDocument(t *testing.T) {
	ports := newTestPorts()
	var openedPath string
	ports.Documents = &MockDocumentService{
		OpenFunc: func(_ context.Context, path string) (*domain.Document, error) {
			openedPath = path
			return pagedDocument(2), nil
		},
	}
	app, _ := NewApp(ports, "/tmp/story.txt")

	var loaded *messages.DocumentLoaded
	for _, msg := range runCmd(app.Init()) {
		if m, ok := msg.(messages.DocumentLoaded); ok {
			loaded = &m
		}
	}

	require.NotNil(t, loaded)
	assert.Equal(t, "/tmp/story.txt", openedPath)
	assert.Equal(t, 2, loaded.Document.PageCount())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts(), "/tmp/doc.txt")

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, domain.PresentationNormal, app.Host().PresentationState())
}

func TestApp_Update_DocumentLoaded(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 4)

	assert.Equal(t, 1, app.Host().Page())
	assert.Equal(t, 4, app.Host().PagesCount())

	view := app.View()
	assert.Contains(t, view, "Doc")
	assert.Contains(t, view, "Page 1/4")
	assert.Contains(t, view, "Auto-advance")
}

func TestApp_Update_DocumentLoaded_Error(t *testing.T) {
	app, _ := NewApp(newTestPorts(), "/tmp/missing.txt")
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	app.Update(messages.DocumentLoaded{Err: domain.ErrNotFound})

	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)
	assert.False(t, app.Host().Ready())
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_DocumentLoaded_StartsFollow(t *testing.T) {
	updates := make(chan driving.DocumentUpdate, 1)
	ports := newTestPorts()
	ports.Documents = &MockDocumentService{
		FollowFunc: func(context.Context, string) (<-chan driving.DocumentUpdate, error) {
			return updates, nil
		},
	}
	app, _ := NewApp(ports, "/tmp/doc.txt")
	app.WithFollow(true)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := app.Update(messages.DocumentLoaded{Document: pagedDocument(2)})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	started, ok := msgs[0].(messages.FollowStarted)
	require.True(t, ok)
	require.NoError(t, started.Err)

	_, cmd = app.Update(started)
	updates <- driving.DocumentUpdate{Document: pagedDocument(5)}
	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)
	reloaded, ok := msgs[0].(messages.DocumentReloaded)
	require.True(t, ok)

	_, cmd = app.Update(reloaded)
	assert.Equal(t, 5, app.Host().PagesCount())
	assert.NotNil(t, cmd, "keeps listening")

	close(updates)
	assert.Equal(t, []tea.Msg{nil}, runCmd(cmd))
}

func TestApp_FollowStarted_NilChannelDisablesFollow(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 2)

	_, cmd := app.Update(messages.FollowStarted{})

	assert.Empty(t, runCmd(cmd), "nothing listens on a nil channel")
	assert.NoError(t, app.Err())
}

func TestApp_FollowStarted_Error(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 2)

	app.Update(messages.FollowStarted{Err: errors.New("no inotify")})

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "no inotify")
}

func TestApp_DocumentReloaded_Error(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 2)

	app.Update(messages.DocumentReloaded{Update: driving.DocumentUpdate{Err: domain.ErrNotFound}})

	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)
	assert.Equal(t, 2, app.Host().PagesCount(), "keeps last good document")
}

func TestApp_Paging(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, app.Host().Page())

	app.Update(keyRunes(" "))
	assert.Equal(t, 3, app.Host().Page())

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, app.Host().Page(), "stays on last page")

	app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, app.Host().Page())

	app.Update(keyRunes("g"))
	assert.Equal(t, 1, app.Host().Page())

	app.Update(keyRunes("G"))
	assert.Equal(t, 3, app.Host().Page())
}

func TestApp_AutoAdvanceKey_OpensDialog(t *testing.T) {
	ports := newTestPorts()
	ports.Advance = &MockAdvanceController{cadence: 1.5}
	collector := &mockCollector{}
	ports.Collector = collector
	app := newLoadedApp(t, ports, 3)

	_, cmd := app.Update(keyRunes("a"))

	assert.True(t, app.DialogOpen())
	assert.NotNil(t, cmd, "cursor blink")
	assert.Equal(t, []domain.Cadence{1.5}, collector.opened)
	assert.Contains(t, app.View(), "Seconds per page:")
}

func TestApp_Dialog_ConfirmCommitsInsideGesture(t *testing.T) {
	ports := newTestPorts()
	advance := &MockAdvanceController{}
	ports.Advance = advance
	app := newLoadedApp(t, ports, 3)
	advance.ConfirmFunc = func(domain.Cadence) error {
		// A real controller asks the host from inside Confirm.
		app.Host().RequestPresentation()
		return nil
	}

	app.Update(keyRunes("a"))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, app.DialogOpen())
	assert.Equal(t, []domain.Cadence{2}, advance.Confirmed())
	assert.NotNil(t, cmd, "enter-alt-screen request queued by the host")
}

func TestApp_Dialog_InvalidInput(t *testing.T) {
	ports := newTestPorts()
	advance := &MockAdvanceController{}
	ports.Advance = advance
	app := newLoadedApp(t, ports, 3)

	app.Update(keyRunes("a"))
	app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	app.Update(keyRunes("abc"))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, app.DialogOpen())
	assert.Empty(t, advance.Confirmed())
	assert.Nil(t, cmd, "no presentation request")
	assert.Contains(t, app.View(), "Please enter a valid number between 0.1 and 60.")
	assert.Equal(t, domain.PresentationNormal, app.Host().PresentationState())
}

func TestApp_Dialog_Cancel(t *testing.T) {
	ports := newTestPorts()
	advance := &MockAdvanceController{}
	ports.Advance = advance
	app := newLoadedApp(t, ports, 3)

	app.Update(keyRunes("a"))
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, app.DialogOpen())
	assert.Empty(t, advance.Confirmed())
}

func TestApp_Dialog_ConfirmError(t *testing.T) {
	ports := newTestPorts()
	ports.Advance = &MockAdvanceController{
		ConfirmFunc: func(domain.Cadence) error { return domain.ErrNoViewer },
	}
	app := newLoadedApp(t, ports, 3)

	app.Update(keyRunes("a"))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, app.Err(), domain.ErrNoViewer)
}

func TestApp_Activate_DefersUntilReady(t *testing.T) {
	ports := newTestPorts()
	waiter := &MockReadyWaiter{}
	ports.Readiness = waiter
	app, _ := NewApp(ports, "/tmp/doc.txt")
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := app.Update(keyRunes("a"))
	assert.False(t, app.DialogOpen())
	require.NotNil(t, cmd)

	_, again := app.Update(keyRunes("a"))
	assert.Nil(t, again, "one deferred activation at a time")

	app.Update(messages.DocumentLoaded{Document: pagedDocument(2)})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, messages.ActivationReady{}, msgs[0])
	assert.Equal(t, 1, waiter.calls)

	app.Update(msgs[0])
	assert.True(t, app.DialogOpen())
}

func TestApp_Activate_NotReadyError(t *testing.T) {
	ports := newTestPorts()
	ports.Readiness = &MockReadyWaiter{
		WaitReadyFunc: func(context.Context, driving.ReadyProbe) error { return domain.ErrNotReady },
	}
	app, _ := NewApp(ports, "/tmp/doc.txt")
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := app.Update(keyRunes("a"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	app.Update(msgs[0])

	assert.False(t, app.DialogOpen())
	assert.ErrorIs(t, app.Err(), domain.ErrNotReady)
}

func TestApp_Activate_NoReadinessPort(t *testing.T) {
	ports := newTestPorts()
	ports.Readiness = nil
	app, _ := NewApp(ports, "/tmp/doc.txt")
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := app.Update(keyRunes("a"))

	assert.Nil(t, cmd)
	assert.False(t, app.DialogOpen())
	assert.Contains(t, app.View(), "Document is still loading")
}

func TestApp_Menu_AutoAdvance(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("m"))
	assert.True(t, app.MenuOpen())
	assert.Contains(t, app.View(), "Full screen")

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, app.MenuOpen())
	assert.True(t, app.DialogOpen())
}

func TestApp_Menu_Help(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("m"))
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "next page")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewReader, app.CurrentView())
}

func TestApp_Menu_Fullscreen(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("m"))
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, app.MenuOpen())
	assert.NotNil(t, cmd)
}

func TestApp_Menu_Close(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("m"))
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, app.MenuOpen())
}

func TestApp_HelpKey(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(keyRunes("?"))
	assert.Equal(t, messages.ViewReader, app.CurrentView())
}

func TestApp_Mouse_PrimaryButton(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(leftClick(1, 0))

	assert.True(t, app.DialogOpen())
}

func TestApp_Mouse_MenuItem(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)
	menuX := app.toolbar.MenuOffset()

	app.Update(leftClick(menuX+1, 0))
	require.True(t, app.MenuOpen())

	// Row 0 is the toolbar, row 1 the menu border, row 2 the first item.
	app.Update(leftClick(menuX+2, 2))

	assert.False(t, app.MenuOpen())
	assert.True(t, app.DialogOpen())
}

func TestApp_Mouse_ClickOutsideClosesMenu(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(keyRunes("m"))
	app.Update(leftClick(90, 20))

	assert.False(t, app.MenuOpen())
	assert.False(t, app.DialogOpen())
}

func TestApp_Mouse_IgnoresRelease(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.False(t, app.DialogOpen())
}

func TestApp_FullscreenKey_RequestsPresentation(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	_, cmd := app.Update(keyRunes("f"))

	assert.NotNil(t, cmd)
	assert.Equal(t, domain.PresentationNormal, app.Host().PresentationState(),
		"state changes only when the terminal reports it")
}

func TestApp_Presentation_EnterAndExit(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)
	var states []domain.PresentationState
	app.Host().SubscribePresentation(func(s domain.PresentationState) { states = append(states, s) })

	app.Update(messages.PresentationChanged{State: domain.PresentationFullscreen})
	assert.True(t, app.reader.Presentation())
	assert.NotContains(t, app.View(), "Menu", "no chrome while full screen")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.NotNil(t, cmd)
	assert.Equal(t, domain.PresentationNormal, app.Host().PresentationState())
	assert.False(t, app.reader.Presentation())
	assert.Equal(t, []domain.PresentationState{
		domain.PresentationFullscreen,
		domain.PresentationNormal,
	}, states)
}

func TestApp_Presentation_DialogOverlay(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)
	app.Update(messages.PresentationChanged{State: domain.PresentationFullscreen})

	app.Update(keyRunes("a"))

	assert.True(t, app.DialogOpen())
	assert.Contains(t, app.View(), "Seconds per page:")
}

func TestApp_Update_PageAdvanced(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(messages.PageAdvanced{Page: 2})

	assert.Equal(t, 2, app.reader.Page())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	_, cmd := app.Update(messages.Quit{})
	assert.NotNil(t, cmd)

	_, cmd = app.Update(keyRunes("q"))
	assert.NotNil(t, cmd)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newLoadedApp(t, newTestPorts(), 3)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
}

func TestApp_ScheduleRefresh_WhileActive(t *testing.T) {
	ports := newTestPorts()
	advance := &MockAdvanceController{snapshot: domain.AdvanceSnapshot{State: domain.AdvanceRunning}}
	ports.Advance = advance
	app := newLoadedApp(t, ports, 3)

	assert.True(t, app.refreshing)
	_, cmd := app.Update(messages.PageAdvanced{Page: 2})
	assert.Nil(t, cmd, "one refresh tick in flight")

	advance.mu.Lock()
	advance.snapshot.State = domain.AdvanceIdle
	advance.mu.Unlock()
	_, cmd = app.Update(refreshMsg{})
	assert.Nil(t, cmd)
	assert.False(t, app.refreshing)
}

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) driven.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*manualTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && !t.at.After(end) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = end
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

func TestApp_ReadThrough(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	controller := services.NewAdvanceController(clock, domain.AdvanceSettings{
		InitialCadence: 2,
		SettleDelay:    500 * time.Millisecond,
	})
	ports := newTestPorts()
	ports.Advance = controller
	ports.Collector = services.NewCadenceCollector()
	app := newLoadedApp(t, ports, 3)
	var sent []tea.Msg
	app.Host().Bind(func(msg tea.Msg) { sent = append(sent, msg) })

	detach, err := controller.Attach(app.Host())
	require.NoError(t, err)
	defer detach()

	app.Update(keyRunes("a"))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.AdvancePendingStart, controller.Snapshot().State)

	// The terminal reports the alt screen after the queued command runs.
	app.Update(messages.PresentationChanged{State: domain.PresentationFullscreen})
	assert.Equal(t, domain.AdvanceRunning, controller.Snapshot().State)

	clock.Advance(2400 * time.Millisecond)
	assert.Equal(t, 1, app.Host().Page(), "settle delay precedes the first countdown")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, app.Host().Page())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 3, app.Host().Page())

	clock.Advance(2 * time.Second)
	assert.Equal(t, domain.AdvanceIdle, controller.Snapshot().State)
	assert.Equal(t, []tea.Msg{messages.PageAdvanced{Page: 2}, messages.PageAdvanced{Page: 3}}, sent)
}

func TestApp_ExitStopsSession(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	controller := services.NewAdvanceController(clock, domain.AdvanceSettings{InitialCadence: 1})
	ports := newTestPorts()
	ports.Advance = controller
	ports.Collector = services.NewCadenceCollector()
	app := newLoadedApp(t, ports, 10)

	_, err := controller.Attach(app.Host())
	require.NoError(t, err)

	app.Update(messages.PresentationChanged{State: domain.PresentationFullscreen})
	app.Update(keyRunes("a"))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.AdvanceRunning, controller.Snapshot().State)

	clock.Advance(time.Second)
	assert.Equal(t, 2, app.Host().Page())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, domain.AdvanceIdle, controller.Snapshot().State)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 2, app.Host().Page())
}
