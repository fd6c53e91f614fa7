package driven

import "github.com/custodia-labs/pacer/internal/core/domain"

// Viewer is the host document viewer driven by the advance controller.
// The controller reads page state from it but never owns it.
type Viewer interface {
	// Ready returns true once the viewer has a document and can accept
	// commands.
	Ready() bool

	// Page returns the displayed page number (1-based).
	Page() int

	// PagesCount returns the total number of pages.
	PagesCount() int

	// PresentationState returns the current full-screen mode.
	PresentationState() domain.PresentationState

	// RequestPresentation asks the viewer to enter full-screen.
	// It must be called synchronously inside a user-gesture callback;
	// viewers may silently reject requests made elsewhere.
	// The outcome is reported later through SubscribePresentation.
	RequestPresentation()

	// NextPage advances to the next page. It is a no-op at the last page.
	NextPage()

	// SubscribePresentation registers fn to be called with the new state
	// whenever the presentation mode changes, whoever triggered it.
	// The returned function removes the subscription.
	SubscribePresentation(fn func(domain.PresentationState)) (unsubscribe func())
}
