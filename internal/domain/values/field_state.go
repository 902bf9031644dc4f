package values

import "fmt"

// FieldState is the validity marker of a single form input.
type FieldState string

const (
	// FieldUnset indicates the field has not been edited since load or reset
	FieldUnset FieldState = "unset"
	// FieldInvalid indicates the last edit failed its length rule
	FieldInvalid FieldState = "invalid"
	// FieldValid indicates the last edit passed its length rule
	FieldValid FieldState = "valid"
)

// IsValid returns true if the field passed its rule
func (s FieldState) IsValid() bool {
	return s == FieldValid
}

// IsUnset returns true if the field was never edited or was reset
func (s FieldState) IsUnset() bool {
	return s == FieldUnset
}

// Severity maps the state to the hint severity shown next to the field.
// Unset fields show no hint; they report SevError so nothing reads them as passing.
func (s FieldState) Severity() Severity {
	if s == FieldValid {
		return SevOK
	}
	return SevError
}

// Validate returns an error if the state value is invalid
func (s FieldState) Validate() error {
	switch s {
	case FieldUnset, FieldInvalid, FieldValid:
		return nil
	default:
		return fmt.Errorf("invalid field state: %s", s)
	}
}
