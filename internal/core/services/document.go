package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
	"github.com/custodia-labs/pacer/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService loads documents and follows changes to them.
type DocumentService struct {
	loader  driven.DocumentLoader
	watcher driven.DocumentWatcher
}

// NewDocumentService creates a new document service.
// watcher may be nil, in which case Follow returns a nil channel.
func NewDocumentService(loader driven.DocumentLoader, watcher driven.DocumentWatcher) *DocumentService {
	return &DocumentService{
		loader:  loader,
		watcher: watcher,
	}
}

// Open loads the document at path.
func (s *DocumentService) Open(ctx context.Context, path string) (*domain.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger.Debug("document %s: %d pages", path, doc.PageCount())
	return doc, nil
}

// Follow reloads the document each time the watcher reports a change.
func (s *DocumentService) Follow(ctx context.Context, path string) (<-chan driving.DocumentUpdate, error) {
	if s.watcher == nil {
		return nil, nil
	}

	changes, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	updates := make(chan driving.DocumentUpdate)
	go func() {
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				doc, err := s.loader.Load(ctx, path)
				if err != nil && errors.Is(err, context.Canceled) {
					return
				}
				if err != nil {
					logger.Warn("reload %s: %v", path, err)
				}
				select {
				case updates <- driving.DocumentUpdate{Document: doc, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
