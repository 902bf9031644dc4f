package entities

import "github.com/reglet-dev/loginform/internal/domain/values"

// FormState holds the validity of both login fields.
// The gate is always derived from the two states and never stored.
type FormState struct {
	Name     values.FieldState `json:"name" yaml:"name"`
	Password values.FieldState `json:"password" yaml:"password"`
	// Attempt is set between an accepted submit and the following dismiss
	Attempt values.AttemptID `json:"attempt,omitempty" yaml:"attempt,omitempty"`
}

// NewFormState returns a state with both fields unset.
func NewFormState() FormState {
	return FormState{
		Name:     values.FieldUnset,
		Password: values.FieldUnset,
	}
}

// GateOpen reports whether submission is allowed.
func (s FormState) GateOpen() bool {
	return s.Name.IsValid() && s.Password.IsValid()
}

// Submitted reports whether an accepted submission is pending dismissal.
func (s FormState) Submitted() bool {
	return !s.Attempt.IsZero()
}

// Set records the state of one field.
func (s *FormState) Set(field values.FieldID, state values.FieldState) {
	switch field {
	case values.FieldName:
		s.Name = state
	case values.FieldPassword:
		s.Password = state
	}
}

// Get returns the state of one field.
func (s FormState) Get(field values.FieldID) values.FieldState {
	if field == values.FieldPassword {
		return s.Password
	}
	return s.Name
}

// Reset returns both fields to unset and clears any pending attempt.
func (s *FormState) Reset() {
	*s = NewFormState()
}
