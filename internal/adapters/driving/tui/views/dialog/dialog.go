// Package dialog provides the modal cadence dialog for the TUI.
package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/pacer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// Result is the outcome of a key press in the dialog.
type Result int

const (
	// ResultNone means the dialog is still open, nothing was submitted.
	ResultNone Result = iota
	// ResultInvalid means a submission was rejected; the dialog stays open.
	ResultInvalid
	// ResultConfirmed means a valid cadence was submitted; the dialog closed.
	ResultConfirmed
	// ResultCancelled means the dialog was dismissed.
	ResultCancelled
)

// focus targets inside the dialog, cycled with tab.
type focus int

const (
	focusInput focus = iota
	focusOK
	focusCancel
	focusCount
)

// Outcome describes what a key press did.
type Outcome struct {
	Result  Result
	Cadence domain.Cadence
}

// View is the modal dialog asking for seconds per page.
// It holds a draft and never commits the value itself.
type View struct {
	styles *styles.Styles
	input  *input.CadenceInput
	draft  driving.CadenceDraft
	focus  focus
}

// NewView creates a dialog bound to draft, pre-filled from it.
func NewView(s *styles.Styles, draft driving.CadenceDraft) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	in := input.NewCadenceInput(s)
	in.SetValue(draft.Input())
	in.Focus()

	return &View{
		styles: s,
		input:  in,
		draft:  draft,
	}
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles a key press.
// The outcome is returned synchronously so the caller can commit a
// confirmed cadence while still handling the user's key event.
func (v *View) Update(msg tea.KeyMsg) (Outcome, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.draft.Cancel()
		return Outcome{Result: ResultCancelled}, nil

	case "tab":
		return Outcome{}, v.setFocus((v.focus + 1) % focusCount)

	case "shift+tab":
		return Outcome{}, v.setFocus((v.focus + focusCount - 1) % focusCount)

	case "enter":
		if v.focus == focusCancel {
			v.draft.Cancel()
			return Outcome{Result: ResultCancelled}, nil
		}
		return v.Submit(), nil
	}

	if v.focus != focusInput {
		return Outcome{}, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return Outcome{}, cmd
}

// Submit validates the current input against the draft.
func (v *View) Submit() Outcome {
	cadence, err := v.draft.Submit(v.input.Value())
	if err != nil {
		return Outcome{Result: ResultInvalid}
	}
	return Outcome{Result: ResultConfirmed, Cadence: cadence}
}

// Cancel dismisses the dialog.
func (v *View) Cancel() Outcome {
	v.draft.Cancel()
	return Outcome{Result: ResultCancelled}
}

func (v *View) setFocus(f focus) tea.Cmd {
	v.focus = f
	if f == focusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// View renders the dialog box.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Auto-advance"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")

	if msg := v.draft.Message(); msg != "" {
		b.WriteString(v.styles.Error.Render(msg))
	} else {
		b.WriteString(v.styles.Muted.Render("Between " + domain.MinCadence.String() +
			" and " + domain.MaxCadence.String() + " seconds"))
	}
	b.WriteString("\n\n")

	ok := v.styles.Button.Render("OK")
	cancel := v.styles.Button.Render("Cancel")
	switch v.focus {
	case focusOK:
		ok = v.styles.PrimaryButton.Render("OK")
	case focusCancel:
		cancel = v.styles.PrimaryButton.Render("Cancel")
	case focusInput, focusCount:
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, ok, "  ", cancel))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] confirm  [tab] next  [esc] cancel"))

	return v.styles.Dialog.Render(b.String())
}

// Value returns the text currently in the input.
func (v *View) Value() string {
	return v.input.Value()
}

// Message returns the inline validation message.
func (v *View) Message() string {
	return v.draft.Message()
}

// Open reports whether the underlying draft is still open.
func (v *View) Open() bool {
	return v.draft.Open()
}
