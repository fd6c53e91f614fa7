package driving

import (
	"context"

	"github.com/custodia-labs/pacer/internal/core/domain"
)

// DocumentService loads documents for the viewer.
type DocumentService interface {
	// Open loads the document at path.
	Open(ctx context.Context, path string) (*domain.Document, error)

	// Follow returns reloaded documents whenever the file changes.
	// The channel is closed when ctx is done. A nil channel with a nil error
	// means following is disabled; callers must not receive from it.
	Follow(ctx context.Context, path string) (<-chan DocumentUpdate, error)
}

// DocumentUpdate carries a reloaded document or the error that prevented it.
type DocumentUpdate struct {
	Document *domain.Document
	Err      error
}
