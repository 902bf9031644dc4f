package entities

import "github.com/reglet-dev/loginform/internal/domain/values"

// SubmitOutcome is the result of a submit event.
// A rejected submit carries no attempt and caused no effects.
type SubmitOutcome struct {
	Attempt  values.AttemptID `json:"attempt,omitempty" yaml:"attempt,omitempty"`
	Accepted bool             `json:"accepted" yaml:"accepted"`
}
