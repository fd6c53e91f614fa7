package domain

// Page is one page of a document, as lines of text.
type Page struct {
	// Lines holds the page content without trailing newlines.
	Lines []string
}

// Document is a paged document shown by the viewer.
type Document struct {
	// Path is the file the document was loaded from.
	Path string

	// Title is the display title.
	Title string

	// Pages holds the document pages in order. Never empty once loaded.
	Pages []Page
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page returns the page with the given 1-based number.
// It returns false if the number is out of range.
func (d *Document) Page(n int) (Page, bool) {
	if d == nil || n < 1 || n > len(d.Pages) {
		return Page{}, false
	}
	return d.Pages[n-1], true
}
