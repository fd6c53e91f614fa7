package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
)

// Ensure PDFLoader and Loader implement the interface.
var (
	_ driven.DocumentLoader = (*PDFLoader)(nil)
	_ driven.DocumentLoader = (*Loader)(nil)
)

// PDFLoader reads the page tree of PDF files. Pages carry a placeholder
// line; page text is not extracted.
type PDFLoader struct {
	countPages func(path string) (int, error)
}

// NewPDFLoader creates a PDF loader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{countPages: countPDFPages}
}

// Load opens the PDF at path and builds one page per page tree leaf.
func (l *PDFLoader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path = ResolvePath(path)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory", path)
	}

	count, err := l.countPages(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, path, err)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: %s has no pages", domain.ErrInvalidInput, path)
	}

	name := filepath.Base(path)
	pages := make([]domain.Page, count)
	for i := range pages {
		pages[i] = domain.Page{Lines: []string{
			fmt.Sprintf("%s: page %d of %d", name, i+1, count),
		}}
	}

	return &domain.Document{
		Path:  path,
		Title: strings.TrimSuffix(name, filepath.Ext(name)),
		Pages: pages,
	}, nil
}

func countPDFPages(path string) (int, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return pagetree.NumPages(r)
}

// Loader picks a loader by file extension: ".pdf" files go to the PDF
// loader and everything else is read as text.
type Loader struct {
	text *TextLoader
	pdf  *PDFLoader
}

// NewLoader creates a loader whose text pages break every linesPerPage lines.
func NewLoader(linesPerPage int) *Loader {
	return &Loader{
		text: NewTextLoader(linesPerPage),
		pdf:  NewPDFLoader(),
	}
}

// Load reads the document at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if IsPDF(path) {
		return l.pdf.Load(ctx, path)
	}
	return l.text.Load(ctx, path)
}

// IsPDF reports whether path names a PDF file.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(ResolvePath(path)), ".pdf")
}
