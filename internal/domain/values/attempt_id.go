// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// AttemptID identifies one accepted submission, from submit until dismiss.
type AttemptID struct {
	value uuid.UUID
}

// NewAttemptID creates a new random attempt ID
func NewAttemptID() AttemptID {
	return AttemptID{value: uuid.New()}
}

// ParseAttemptID parses a string into an AttemptID
func ParseAttemptID(s string) (AttemptID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AttemptID{}, fmt.Errorf("invalid attempt ID: %w", err)
	}
	return AttemptID{value: id}, nil
}

// String returns the string representation, or "" for the zero value
func (a AttemptID) String() string {
	if a.IsZero() {
		return ""
	}
	return a.value.String()
}

// IsZero returns true if this is the zero value
func (a AttemptID) IsZero() bool {
	return a.value == uuid.Nil
}

// Equals checks if two AttemptIDs are equal
func (a AttemptID) Equals(other AttemptID) bool {
	return a.value == other.value
}

// MarshalJSON implements json.Marshaler
func (a AttemptID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// MarshalYAML implements yaml.BytesMarshaler
func (a AttemptID) MarshalYAML() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
