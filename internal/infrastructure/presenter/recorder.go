// Package presenter provides Presenter implementations for the login form.
package presenter

import (
	"fmt"
	"maps"

	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

// Effect is one recorded presenter call.
type Effect struct {
	Name  string `json:"name" yaml:"name"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the effect as name(field, value).
func (e Effect) String() string {
	if e.Field == "" {
		return fmt.Sprintf("%s(%s)", e.Name, e.Value)
	}
	return fmt.Sprintf("%s(%s, %s)", e.Name, e.Field, e.Value)
}

// Recorder keeps every effect in call order and the view they add up to.
// It starts as a freshly loaded form: inputs enabled, nothing else shown.
type Recorder struct {
	view    ports.View
	effects []Effect
}

var _ ports.RecordingPresenter = (*Recorder)(nil)

// NewRecorder creates a recorder for an empty form.
func NewRecorder() *Recorder {
	return &Recorder{
		view: ports.View{
			Highlights:    map[values.FieldID]bool{values.FieldName: true, values.FieldPassword: true},
			Hints:         map[values.FieldID]ports.Hint{},
			InputsEnabled: true,
		},
	}
}

// NewRecordingPresenter adapts NewRecorder to a presenter factory.
func NewRecordingPresenter() ports.RecordingPresenter {
	return NewRecorder()
}

func (r *Recorder) record(name string, field values.FieldID, value string) {
	r.effects = append(r.effects, Effect{Name: name, Field: string(field), Value: value})
}

// SetFieldHighlight records the highlight of a field.
func (r *Recorder) SetFieldHighlight(field values.FieldID, ok bool) {
	r.view.Highlights[field] = ok
	r.record("highlight", field, highlightName(ok))
}

// SetHint records a visible hint.
func (r *Recorder) SetHint(field values.FieldID, text string, severity values.Severity) {
	r.view.Hints[field] = ports.Hint{Text: text, Severity: severity}
	r.record("hint", field, severity.String()+": "+text)
}

// HideHints removes all hints.
func (r *Recorder) HideHints() {
	clear(r.view.Hints)
	r.record("hide_hints", "", "")
}

// SetSubmitEnabled records whether sign in is offered.
func (r *Recorder) SetSubmitEnabled(enabled bool) {
	r.view.SubmitEnabled = enabled
	r.record("submit_enabled", "", fmt.Sprint(enabled))
}

// SetInputsEnabled records whether the inputs accept edits.
func (r *Recorder) SetInputsEnabled(enabled bool) {
	r.view.InputsEnabled = enabled
	r.record("inputs_enabled", "", fmt.Sprint(enabled))
}

// ShowProgress records the progress indicator.
func (r *Recorder) ShowProgress(visible bool) {
	r.view.Progress = visible
	r.record("progress", "", fmt.Sprint(visible))
}

// ShowDismiss records the close control.
func (r *Recorder) ShowDismiss(visible bool) {
	r.view.DismissVisible = visible
	r.record("dismiss", "", fmt.Sprint(visible))
}

// ClearFields counts field clears; the recorder holds no field text.
func (r *Recorder) ClearFields() {
	r.view.FieldsCleared++
	r.record("clear_fields", "", "")
}

// View returns a copy of the accumulated view.
func (r *Recorder) View() ports.View {
	v := r.view
	v.Highlights = maps.Clone(r.view.Highlights)
	v.Hints = maps.Clone(r.view.Hints)
	return v
}

// Effects returns the recorded effects in call order.
func (r *Recorder) Effects() []Effect {
	return append([]Effect(nil), r.effects...)
}

func highlightName(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
