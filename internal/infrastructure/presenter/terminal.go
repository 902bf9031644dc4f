package presenter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

// Colors of the original login box.
const (
	colorOK         = lipgloss.Color("#11AA2A")
	colorError      = lipgloss.Color("#FF3913")
	colorErrorField = lipgloss.Color("#FFD6BE")
	colorMuted      = lipgloss.Color("#888888")
)

// Terminal writes hints and status changes as lines of styled text.
// Effects that return the form to its resting look write nothing.
type Terminal struct {
	w      io.Writer
	ok     lipgloss.Style
	err    lipgloss.Style
	field  lipgloss.Style
	muted  lipgloss.Style
	submit bool
}

var _ ports.Presenter = (*Terminal)(nil)

// NewTerminal creates a terminal presenter writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:     w,
		ok:    lipgloss.NewStyle().Foreground(colorOK),
		err:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		field: lipgloss.NewStyle().Background(colorErrorField).Foreground(lipgloss.Color("#000000")),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}

//nolint:errcheck // Terminal output is best-effort
func (t *Terminal) println(s string) {
	fmt.Fprintln(t.w, s)
}

// SetFieldHighlight marks a field in error.
func (t *Terminal) SetFieldHighlight(field values.FieldID, ok bool) {
	if !ok {
		t.println(t.field.Render(" " + field.Label() + " "))
	}
}

// SetHint prints the hint with a check mark or a cross by severity.
func (t *Terminal) SetHint(_ values.FieldID, text string, severity values.Severity) {
	if severity.IsOK() {
		t.println(t.ok.Render("✓ " + text))
		return
	}
	t.println(t.err.Render("✗ " + text))
}

// HideHints is a no-op: written hints have already scrolled by.
func (t *Terminal) HideHints() {}

// SetSubmitEnabled announces the gate opening once per change.
func (t *Terminal) SetSubmitEnabled(enabled bool) {
	if enabled == t.submit {
		return
	}
	t.submit = enabled
	if enabled {
		t.println(t.ok.Render("Sign in is available"))
	}
}

// SetInputsEnabled announces the inputs being locked. Unlocking prints nothing.
func (t *Terminal) SetInputsEnabled(enabled bool) {
	if !enabled {
		t.println(t.muted.Render("Inputs locked"))
	}
}

// ShowProgress prints the progress line when it appears.
func (t *Terminal) ShowProgress(visible bool) {
	if visible {
		t.println(t.muted.Render("Signing in..."))
	}
}

// ShowDismiss tells the user how to close the attempt.
func (t *Terminal) ShowDismiss(visible bool) {
	if visible {
		t.println(t.muted.Render("Close to start over"))
	}
}

// ClearFields reports that both inputs were emptied.
func (t *Terminal) ClearFields() {
	t.println(t.muted.Render("Form cleared"))
}
