package values

import (
	"fmt"
	"strings"
)

// Severity is the severity of a hint message shown next to a form field.
type Severity struct {
	value SeverityLevel
}

// SeverityLevel is the internal representation
type SeverityLevel int

const (
	SeverityError SeverityLevel = 0
	SeverityOK    SeverityLevel = 1
)

// Predefined severity values
var (
	SevError = Severity{SeverityError}
	SevOK    = Severity{SeverityOK}
)

// NewSeverity creates a Severity from string
func NewSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ok":
		return SevOK, nil
	case "error":
		return SevError, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %s", s)
	}
}

// String returns the string representation
func (s Severity) String() string {
	if s.value == SeverityOK {
		return "ok"
	}
	return "error"
}

// IsOK returns true for hints that confirm a valid field
func (s Severity) IsOK() bool {
	return s.value == SeverityOK
}

// Equals checks if two severities are equal
func (s Severity) Equals(other Severity) bool {
	return s.value == other.value
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 {
		return fmt.Errorf("invalid severity JSON")
	}

	sev, err := NewSeverity(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// MarshalYAML implements yaml.BytesMarshaler
func (s Severity) MarshalYAML() ([]byte, error) {
	return []byte(s.String()), nil
}
