package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/logger"
)

// Ensure Host implements the viewer port.
var _ driven.Viewer = (*Host)(nil)

// Host is the viewer the advance controller drives.
//
// The terminal alt screen is the full-screen presentation. Host state is
// mutated on the bubbletea update loop, except NextPage which may arrive from
// a timer goroutine and is reported back to the loop with a PageAdvanced
// message.
type Host struct {
	mu           sync.Mutex
	doc          *domain.Document
	page         int
	presentation domain.PresentationState
	sized        bool
	gesture      bool
	pending      []tea.Cmd
	subscribers  map[int]func(domain.PresentationState)
	nextSub      int
	send         func(tea.Msg)
}

// NewHost creates a host with no document, in an unknown presentation state.
func NewHost() *Host {
	return &Host{
		presentation: domain.PresentationUnknown,
		subscribers:  make(map[int]func(domain.PresentationState)),
	}
}

// Bind sets the function used to post messages to the running program.
func (h *Host) Bind(send func(tea.Msg)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.send = send
}

// Ready returns true once a document is loaded and the terminal size known.
func (h *Host) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc != nil && h.sized
}

// Page returns the displayed page number (1-based).
func (h *Host) Page() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.page
}

// PagesCount returns the number of pages in the loaded document.
func (h *Host) PagesCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc.PageCount()
}

// PresentationState returns the current presentation mode.
func (h *Host) PresentationState() domain.PresentationState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.presentation
}

// RequestPresentation queues the switch to the alt screen.
// Requests made outside a key or mouse event are ignored.
func (h *Host) RequestPresentation() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.gesture {
		logger.Warn("tui: presentation request outside a user gesture ignored")
		return
	}
	h.pending = append(h.pending, tea.Sequence(
		tea.EnterAltScreen,
		func() tea.Msg {
			return messages.PresentationChanged{State: domain.PresentationFullscreen}
		},
	))
}

// NextPage advances one page. It is a no-op at the last page.
func (h *Host) NextPage() {
	h.mu.Lock()
	if h.page >= h.doc.PageCount() {
		h.mu.Unlock()
		return
	}
	h.page++
	page := h.page
	send := h.send
	h.mu.Unlock()

	if send != nil {
		send(messages.PageAdvanced{Page: page})
	}
}

// SubscribePresentation registers fn for presentation changes.
func (h *Host) SubscribePresentation(fn func(domain.PresentationState)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSub
	h.nextSub++
	h.subscribers[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, id)
	}
}

// beginGesture marks the start of user input handling.
func (h *Host) beginGesture() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gesture = true
}

// endGesture closes the gesture window and returns the commands queued
// during it.
func (h *Host) endGesture() tea.Cmd {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gesture = false
	pending := h.pending
	h.pending = nil

	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0]
	default:
		return tea.Batch(pending...)
	}
}

// setDocument replaces the document, keeping the page within range.
func (h *Host) setDocument(doc *domain.Document) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.doc = doc
	h.page = clampPage(h.page, doc.PageCount())
}

// setSized records that the terminal size is known.
func (h *Host) setSized() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sized = true
}

// setPresentation records a presentation change and notifies subscribers
// when the state differs from the last one.
func (h *Host) setPresentation(state domain.PresentationState) {
	h.mu.Lock()
	if h.presentation == state {
		h.mu.Unlock()
		return
	}
	h.presentation = state
	subscribers := make([]func(domain.PresentationState), 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		subscribers = append(subscribers, fn)
	}
	h.mu.Unlock()

	logger.Debug("tui: presentation %s", state)
	for _, fn := range subscribers {
		fn(state)
	}
}

// goTo moves to page n, clamped to the document.
func (h *Host) goTo(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.page = clampPage(n, h.doc.PageCount())
	return h.page
}

func clampPage(n, count int) int {
	if count == 0 {
		return 0
	}
	if n < 1 {
		return 1
	}
	if n > count {
		return count
	}
	return n
}
