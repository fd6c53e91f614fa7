// Package reader provides the page view for the TUI.
package reader

import (
	"fmt"
	"strings"


	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pacer/internal/core/domain"
)

// View renders one page of the document.
// In presentation mode only the page text is drawn.
type View struct {
	styles *styles.Styles

	document     *domain.Document
	page         int
	presentation bool
	width        int
	height       int
	err          error
}

// NewView creates a new reader view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 20,
	}
}

// SetDocument sets the document being read.
func (v *View) SetDocument(doc *domain.Document) {
	v.document = doc
	v.err = nil
}

// SetPage sets the displayed page (1-based).
func (v *View) SetPage(page int) {
	v.page = page
}

// SetPresentation switches between the regular and presentation layouts.
func (v *View) SetPresentation(on bool) {
	v.presentation = on
}

// SetError sets a load error to display instead of the page.
func (v *View) SetError(err error) {
	v.err = err
}

// SetDimensions sets the area available to the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the current page.
func (v *View) View() string {
	if v.err != nil {
		return v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error()))
	}
	if v.document == nil {
		return v.styles.Muted.Render("Loading document...")
	}

	var b strings.Builder
	bodyHeight := v.height
	if !v.presentation {
		b.WriteString(v.styles.Title.Render(v.document.Title))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(strings.Repeat("─", minInt(v.width, 60))))
		b.WriteString("\n")
		bodyHeight -= 2
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	page, ok := v.document.Page(v.page)
	if !ok || len(page.Lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(Empty page)"))
		return b.String()
	}

	body := v.styles.Page.
		Width(maxInt(v.width, 1)).
		MaxHeight(bodyHeight).
		Render(strings.Join(page.Lines, "\n"))
	b.WriteString(body)

	return b.String()
}

// Document returns the current document.
func (v *View) Document() *domain.Document {
	return v.document
}

// Page returns the displayed page.
func (v *View) Page() int {
	return v.page
}

// Presentation reports whether the presentation layout is active.
func (v *View) Presentation() bool {
	return v.presentation
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

