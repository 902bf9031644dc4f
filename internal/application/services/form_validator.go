// Package services contains application use cases.
package services

import (
	"log/slog"

	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/entities"
	"github.com/reglet-dev/loginform/internal/domain/services"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

// FormValidator holds the validity of the two login fields and gates submission.
// It implements ports.EventHandler and pushes every effect to its Presenter.
// It is not safe for concurrent use: one UI loop drives one validator.
type FormValidator struct {
	presenter ports.Presenter
	logger    *slog.Logger
	rules     services.RuleSet
	state     entities.FormState
}

var _ ports.EventHandler = (*FormValidator)(nil)

// NewFormValidator creates a validator with both fields unset.
func NewFormValidator(presenter ports.Presenter, rules services.RuleSet, logger *slog.Logger) *FormValidator {
	if logger == nil {
		logger = slog.Default()
	}

	return &FormValidator{
		presenter: presenter,
		rules:     rules,
		logger:    logger,
		state:     entities.NewFormState(),
	}
}

// OnNameChanged validates the user name and recomputes the gate.
func (v *FormValidator) OnNameChanged(value string) entities.ValidationResult {
	return v.fieldChanged(values.FieldName, value)
}

// OnPasswordChanged validates the password and recomputes the gate.
func (v *FormValidator) OnPasswordChanged(value string) entities.ValidationResult {
	return v.fieldChanged(values.FieldPassword, value)
}

func (v *FormValidator) fieldChanged(field values.FieldID, value string) entities.ValidationResult {
	result := v.rules.For(field).Evaluate(value)
	previous := v.state.Get(field)
	v.state.Set(field, result.State)

	v.presenter.SetFieldHighlight(field, result.IsValid())
	v.presenter.SetHint(field, result.Message, result.Severity())
	v.presenter.SetSubmitEnabled(v.IsGateOpen() && !v.state.Submitted())

	// never log the value itself; it may be a password
	v.logger.Debug("field changed",
		"field", field,
		"from", previous,
		"to", result.State,
		"gate_open", v.IsGateOpen())

	return result
}

// IsGateOpen reports whether both fields are valid.
func (v *FormValidator) IsGateOpen() bool {
	return v.state.GateOpen()
}

// OnSubmit starts an attempt when the gate is open. With the gate closed it
// does nothing and returns an outcome that is not accepted.
func (v *FormValidator) OnSubmit() entities.SubmitOutcome {
	if !v.IsGateOpen() {
		v.logger.Debug("submit ignored, gate closed",
			"name", v.state.Name,
			"password", v.state.Password)
		return entities.SubmitOutcome{}
	}

	if v.state.Submitted() {
		return entities.SubmitOutcome{Accepted: true, Attempt: v.state.Attempt}
	}

	v.state.Attempt = values.NewAttemptID()

	v.presenter.ShowProgress(true)
	v.presenter.SetInputsEnabled(false)
	v.presenter.SetSubmitEnabled(false)
	v.presenter.ShowDismiss(true)

	v.logger.Debug("submission accepted", "attempt", v.state.Attempt)

	return entities.SubmitOutcome{Accepted: true, Attempt: v.state.Attempt}
}

// OnDismiss resets both fields to unset and restores the empty form.
func (v *FormValidator) OnDismiss() {
	attempt := v.state.Attempt
	v.state.Reset()

	v.presenter.ClearFields()
	v.presenter.HideHints()
	v.presenter.SetFieldHighlight(values.FieldName, true)
	v.presenter.SetFieldHighlight(values.FieldPassword, true)
	v.presenter.ShowProgress(false)
	v.presenter.SetInputsEnabled(true)
	v.presenter.ShowDismiss(false)
	v.presenter.SetSubmitEnabled(false)

	v.logger.Debug("form reset", "attempt", attempt)
}

// State returns a copy of the current field states.
func (v *FormValidator) State() entities.FormState {
	return v.state
}
