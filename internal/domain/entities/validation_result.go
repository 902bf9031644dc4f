// Package entities contains the domain entities of the login form.
package entities

import "github.com/reglet-dev/loginform/internal/domain/values"

// ValidationResult is the outcome of evaluating one field value.
// It is recomputed on every change and never stored.
type ValidationResult struct {
	Field   values.FieldID    `json:"field" yaml:"field"`
	State   values.FieldState `json:"state" yaml:"state"`
	Message string            `json:"message" yaml:"message"`
}

// IsValid returns true if the value passed the field's rule
func (r ValidationResult) IsValid() bool {
	return r.State.IsValid()
}

// Severity returns the hint severity for the result's message
func (r ValidationResult) Severity() values.Severity {
	return r.State.Severity()
}
