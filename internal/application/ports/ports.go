// Package ports defines the interfaces between the login form core and
// the layers around it. Inbound events arrive through EventHandler;
// outbound effects leave through Presenter.
package ports

import (
	"io"

	"github.com/reglet-dev/loginform/internal/domain/entities"
	"github.com/reglet-dev/loginform/internal/domain/execution"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

// EventHandler receives the inbound events of the login form.
// Implementations are driven by a single UI loop and are not safe for concurrent use.
type EventHandler interface {
	OnNameChanged(value string) entities.ValidationResult
	OnPasswordChanged(value string) entities.ValidationResult
	OnSubmit() entities.SubmitOutcome
	OnDismiss()
	IsGateOpen() bool
}

// Presenter applies the outbound effects of the login form.
// The core calls it; it never computes anything the core depends on.
type Presenter interface {
	SetFieldHighlight(field values.FieldID, ok bool)
	SetHint(field values.FieldID, text string, severity values.Severity)
	HideHints()
	SetSubmitEnabled(enabled bool)
	SetInputsEnabled(enabled bool)
	ShowProgress(visible bool)
	ShowDismiss(visible bool)
	ClearFields()
}

// Hint is a visible hint message.
type Hint struct {
	Text     string          `json:"text" yaml:"text"`
	Severity values.Severity `json:"severity" yaml:"severity"`
}

// View is the presentation state accumulated from Presenter calls.
type View struct {
	Highlights     map[values.FieldID]bool `json:"highlights" yaml:"highlights"`
	Hints          map[values.FieldID]Hint `json:"hints" yaml:"hints"`
	FieldsCleared  int                     `json:"fields_cleared" yaml:"fields_cleared"`
	SubmitEnabled  bool                    `json:"submit_enabled" yaml:"submit_enabled"`
	InputsEnabled  bool                    `json:"inputs_enabled" yaml:"inputs_enabled"`
	Progress       bool                    `json:"progress" yaml:"progress"`
	DismissVisible bool                    `json:"dismiss_visible" yaml:"dismiss_visible"`
}

// RecordingPresenter is a Presenter whose accumulated view can be inspected.
type RecordingPresenter interface {
	Presenter
	View() View
}

// ScenarioLoader loads scenarios from storage.
type ScenarioLoader interface {
	LoadScenario(path string) (*entities.Scenario, error)
}

// OutputFormatter formats check reports.
type OutputFormatter interface {
	Format(report *execution.Report) error
}

// FormatterOptions contains options for creating formatters.
type FormatterOptions struct {
	Indent bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
