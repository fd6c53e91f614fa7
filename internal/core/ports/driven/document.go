package driven

import (
	"context"

	"github.com/custodia-labs/pacer/internal/core/domain"
)

// DocumentLoader reads a document file and splits it into pages.
type DocumentLoader interface {
	// Load reads the document at path.
	// Returns domain.ErrNotFound if the file does not exist.
	Load(ctx context.Context, path string) (*domain.Document, error)
}

// DocumentWatcher reports changes to a document file.
type DocumentWatcher interface {
	// Watch emits a value each time the file at path is written or
	// recreated. The channel is closed when ctx is done or the watcher fails.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
