package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/components/toolbar"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/views/dialog"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/views/reader"
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

const (
	// activationTimeout bounds how long a deferred activation waits for the
	// document to load.
	activationTimeout = 10 * time.Second

	// refreshInterval redraws the status bar while a session is active, so
	// stops decided off the update loop become visible.
	refreshInterval = time.Second
)

// refreshMsg triggers a redraw while a session is active.
type refreshMsg struct{}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// path is the document being read.
	path string

	// follow reloads the document when it changes on disk.
	follow bool

	// host is the viewer driven by the advance controller.
	host *Host

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	toolbar *toolbar.Bar
	reader  *reader.View
	status  *status.Bar
	menu    *menu.View

	// dialog is the open cadence dialog, nil when closed.
	dialog *dialog.View

	menuOpen    bool
	activating  bool
	refreshing  bool
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application reading the document at path.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		path:        path,
		host:        NewHost(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		toolbar:     toolbar.NewBar(s),
		reader:      reader.NewView(s),
		status:      status.NewBar(s, km),
		menu:        menu.NewView(s),
		currentView: messages.ViewReader,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithFollow enables reloading the document when the file changes.
func (a *App) WithFollow(follow bool) *App {
	a.follow = follow
	return a
}

// Host returns the viewer to attach to the advance controller.
func (a *App) Host() *Host {
	return a.host
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("pacer"),
		a.loadDocument(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		a.host.beginGesture()
		cmd = a.handleKey(msg)
		cmd = tea.Batch(cmd, a.host.endGesture())

	case tea.MouseMsg:
		a.host.beginGesture()
		cmd = a.handleMouse(msg)
		cmd = tea.Batch(cmd, a.host.endGesture())

	case messages.DocumentLoaded:
		cmd = a.handleDocumentLoaded(msg)

	case messages.FollowStarted:
		if msg.Err != nil {
			a.setError(fmt.Errorf("watch %s: %w", a.path, msg.Err))
			break
		}
		cmd = waitForUpdate(msg.Updates)

	case messages.DocumentReloaded:
		if msg.Update.Err != nil {
			a.setError(msg.Update.Err)
		} else {
			a.setDocument(msg.Update.Document)
			a.status.SetMessage("Reloaded")
		}
		cmd = waitForUpdate(msg.Updates)

	case messages.PresentationChanged:
		a.host.setPresentation(msg.State)
		a.reader.SetPresentation(msg.State.IsFullscreen())
		a.layout()

	case messages.PageAdvanced:
		a.reader.SetPage(msg.Page)

	case messages.ActivationReady:
		a.activating = false
		if msg.Err != nil {
			a.setError(fmt.Errorf("auto-advance unavailable: %w", msg.Err))
			break
		}
		a.status.Clear()
		cmd = a.openDialog()

	case messages.ViewChanged:
		a.currentView = msg.View

	case messages.ErrorOccurred:
		a.setError(msg.Err)

	case messages.Quit:
		return a, tea.Quit

	case refreshMsg:
		a.refreshing = false
	}

	return a, tea.Batch(cmd, a.scheduleRefresh())
}

// handleKey routes a key press to the dialog, the menu or the reader.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch {
	case a.dialog != nil:
		return a.handleDialogKey(msg)
	case a.menuOpen:
		return a.runMenuAction(a.menu.Update(msg))
	case a.currentView == messages.ViewHelp:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return tea.Quit
		case key.Matches(msg, a.keymap.Back), key.Matches(msg, a.keymap.Help):
			a.currentView = messages.ViewReader
		}
		return nil
	}

	fullscreen := a.host.PresentationState().IsFullscreen()

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, a.keymap.AutoAdvance):
		return a.activate()
	case key.Matches(msg, a.keymap.NextPage):
		a.turnTo(a.host.Page() + 1)
	case key.Matches(msg, a.keymap.PrevPage):
		a.turnTo(a.host.Page() - 1)
	case key.Matches(msg, a.keymap.FirstPage):
		a.turnTo(1)
	case key.Matches(msg, a.keymap.LastPage):
		a.turnTo(a.host.PagesCount())
	case fullscreen && (key.Matches(msg, a.keymap.Back) || key.Matches(msg, a.keymap.Fullscreen)):
		return a.exitPresentation()
	case fullscreen:
		// Chrome is hidden; the remaining bindings need it.
	case key.Matches(msg, a.keymap.Fullscreen):
		a.requestFullscreen()
	case key.Matches(msg, a.keymap.Menu):
		a.menu.Reset()
		a.menuOpen = true
	case key.Matches(msg, a.keymap.Help):
		a.currentView = messages.ViewHelp
	}
	return nil
}

// handleDialogKey forwards a key to the dialog and commits a confirmed
// cadence while the key event is still being handled.
func (a *App) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	outcome, cmd := a.dialog.Update(msg)

	switch outcome.Result {
	case dialog.ResultConfirmed:
		a.dialog = nil
		if err := a.ports.Advance.Confirm(outcome.Cadence); err != nil {
			a.setError(err)
			return nil
		}
		a.status.Clear()
		return nil
	case dialog.ResultCancelled:
		a.dialog = nil
		return nil
	case dialog.ResultInvalid, dialog.ResultNone:
	}
	return cmd
}

// handleMouse handles clicks on the toolbar and the open menu.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if a.dialog != nil || a.currentView != messages.ViewReader ||
		a.host.PresentationState().IsFullscreen() {
		return nil
	}

	if a.menuOpen {
		left := a.toolbar.MenuOffset()
		right := left + lipgloss.Width(a.menu.View())
		if msg.Y >= 1 && msg.X >= left && msg.X < right {
			if action, ok := a.menu.ItemAt(msg.Y - 1); ok {
				return a.runMenuAction(action)
			}
		}
		a.menuOpen = false
		if msg.Y != 0 {
			return nil
		}
	}

	if msg.Y != 0 {
		return nil
	}
	switch a.toolbar.ButtonAt(msg.X) {
	case toolbar.ButtonAutoAdvance:
		return a.activate()
	case toolbar.ButtonMenu:
		a.menu.Reset()
		a.menuOpen = true
	case toolbar.ButtonNone:
	}
	return nil
}

// runMenuAction performs the action chosen from the secondary menu.
func (a *App) runMenuAction(action menu.Action) tea.Cmd {
	switch action {
	case menu.ActionNone:
		return nil
	case menu.ActionClose:
		a.menuOpen = false
	case menu.ActionAutoAdvance:
		a.menuOpen = false
		return a.activate()
	case menu.ActionFullscreen:
		a.menuOpen = false
		a.requestFullscreen()
	case menu.ActionHelp:
		a.menuOpen = false
		a.currentView = messages.ViewHelp
	case menu.ActionQuit:
		return tea.Quit
	}
	return nil
}

// activate is the shared entry point of both auto-advance triggers.
// It opens the cadence dialog, or defers until the document is loaded.
func (a *App) activate() tea.Cmd {
	if a.host.Ready() {
		return a.openDialog()
	}
	if a.activating {
		return nil
	}
	if a.ports.Readiness == nil {
		a.status.SetMessage("Document is still loading")
		return nil
	}

	a.activating = true
	a.status.SetMessage("Waiting for document...")

	ctx, waiter, probe := a.ctx, a.ports.Readiness, a.host
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, activationTimeout)
		defer cancel()
		return messages.ActivationReady{Err: waiter.WaitReady(ctx, probe)}
	}
}

// openDialog opens the cadence dialog pre-filled with the committed cadence.
func (a *App) openDialog() tea.Cmd {
	if a.dialog != nil {
		return nil
	}
	draft := a.ports.Collector.Open(a.ports.Advance.Cadence())
	a.dialog = dialog.NewView(a.styles, draft)
	a.menuOpen = false
	return a.dialog.Init()
}

// requestFullscreen asks the host to enter the presentation mode.
func (a *App) requestFullscreen() {
	if a.host.PresentationState().IsFullscreen() {
		return
	}
	a.host.RequestPresentation()
}

// exitPresentation leaves the alt screen. The host reports the change
// immediately so a running session stops before the next tick.
func (a *App) exitPresentation() tea.Cmd {
	a.host.setPresentation(domain.PresentationNormal)
	a.reader.SetPresentation(false)
	a.layout()
	return tea.ExitAltScreen
}

func (a *App) turnTo(page int) {
	a.reader.SetPage(a.host.goTo(page))
}

func (a *App) loadDocument() tea.Cmd {
	ctx, documents, path := a.ctx, a.ports.Documents, a.path
	return func() tea.Msg {
		doc, err := documents.Open(ctx, path)
		return messages.DocumentLoaded{Document: doc, Err: err}
	}
}

func (a *App) handleDocumentLoaded(msg messages.DocumentLoaded) tea.Cmd {
	if msg.Err != nil {
		a.reader.SetError(msg.Err)
		a.setError(msg.Err)
		return nil
	}
	a.setDocument(msg.Document)
	if !a.follow {
		return nil
	}

	ctx, documents, path := a.ctx, a.ports.Documents, a.path
	return func() tea.Msg {
		updates, err := documents.Follow(ctx, path)
		return messages.FollowStarted{Updates: updates, Err: err}
	}
}

func (a *App) setDocument(doc *domain.Document) {
	a.host.setDocument(doc)
	a.reader.SetDocument(doc)
	a.reader.SetPage(a.host.Page())
	a.toolbar.SetTitle(doc.Title)
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetError(err)
}

// scheduleRefresh keeps the status bar current while a session is active.
func (a *App) scheduleRefresh() tea.Cmd {
	if a.refreshing || !a.ports.Advance.Snapshot().State.IsActive() {
		return nil
	}
	a.refreshing = true
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

// waitForUpdate listens for the next reload.
func waitForUpdate(updates <-chan driving.DocumentUpdate) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return nil
		}
		return messages.DocumentReloaded{Update: update, Updates: updates}
	}
}

// layout sizes the reader for the current presentation mode.
func (a *App) layout() {
	a.toolbar.SetWidth(a.width)
	a.status.SetWidth(a.width)
	if a.host.PresentationState().IsFullscreen() {
		a.reader.SetDimensions(a.width, a.height)
		return
	}
	a.reader.SetDimensions(a.width, max(a.height-2, 1))
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}

	snapshot := a.ports.Advance.Snapshot()
	a.status.SetSnapshot(snapshot)
	a.status.SetProgress(a.host.Page(), a.host.PagesCount())
	a.toolbar.SetActive(snapshot.State.IsActive())

	if a.host.PresentationState().IsFullscreen() {
		if a.dialog != nil {
			return a.overlay(a.width, a.height)
		}
		return a.reader.View()
	}

	bodyHeight := max(a.height-2, 1)
	var body string
	switch {
	case a.dialog != nil:
		body = a.overlay(a.width, bodyHeight)
	case a.menuOpen:
		body = indent(a.menu.View(), a.toolbar.MenuOffset()) + "\n" + a.reader.View()
	default:
		body = a.reader.View()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, a.toolbar.View(), body, a.status.View())
}

// overlay centres the dialog in a width x height area.
func (a *App) overlay(width, height int) string {
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, a.dialog.View())
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("Auto-advance turns pages every few seconds while full screen.\n" +
		"Leaving full screen stops it."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to reader"))
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithContext(a.ctx), tea.WithMouseCellMotion())
	a.host.Bind(p.Send)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// DialogOpen reports whether the cadence dialog is showing.
func (a *App) DialogOpen() bool {
	return a.dialog != nil
}

// MenuOpen reports whether the secondary menu is showing.
func (a *App) MenuOpen() bool {
	return a.menuOpen
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
// The first size also settles the presentation state to normal.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.host.setSized()
	if a.host.PresentationState() == domain.PresentationUnknown {
		a.host.setPresentation(domain.PresentationNormal)
	}
	a.layout()
}
