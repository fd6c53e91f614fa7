package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
)

// Ensure TextLoader implements the interface.
var _ driven.DocumentLoader = (*TextLoader)(nil)

// formFeed separates pages explicitly.
const formFeed = "\f"

// TextLoader reads UTF-8 text files.
type TextLoader struct {
	linesPerPage int
}

// NewTextLoader creates a loader that breaks pages every linesPerPage lines.
// A non-positive value uses domain.DefaultLinesPerPage.
func NewTextLoader(linesPerPage int) *TextLoader {
	if linesPerPage <= 0 {
		linesPerPage = domain.DefaultLinesPerPage
	}
	return &TextLoader{linesPerPage: linesPerPage}
}

// Load reads and paginates the file at path.
func (l *TextLoader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path = ResolvePath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not UTF-8 text", domain.ErrInvalidInput, path)
	}

	return Parse(path, string(data), l.linesPerPage), nil
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// Parse splits text into pages. Form feeds always start a new page and
// runs longer than linesPerPage lines are broken further. The result has
// at least one page.
func Parse(path, text string, linesPerPage int) *domain.Document {
	if linesPerPage <= 0 {
		linesPerPage = domain.DefaultLinesPerPage
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var pages []domain.Page
	for _, section := range strings.Split(text, formFeed) {
		lines := splitLines(section)
		for start := 0; start < len(lines); start += linesPerPage {
			end := min(start+linesPerPage, len(lines))
			pages = append(pages, domain.Page{Lines: lines[start:end]})
		}
	}
	if len(pages) == 0 {
		pages = []domain.Page{{}}
	}

	return &domain.Document{
		Path:  path,
		Title: title(path, pages),
		Pages: pages,
	}
}

// splitLines splits s on newlines, ignoring a single trailing newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// title returns the first non-blank line of the document, or the file name.
func title(path string, pages []domain.Page) string {
	for _, page := range pages {
		for _, line := range page.Lines {
			if line = strings.TrimSpace(line); line != "" {
				return line
			}
		}
	}
	return filepath.Base(path)
}
