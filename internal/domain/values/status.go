package values

import "fmt"

// Status is the outcome of a scenario step or a whole scenario.
type Status string

const (
	// StatusPass indicates every expectation held
	StatusPass Status = "pass"
	// StatusFail indicates an expectation evaluated to false
	StatusFail Status = "fail"
	// StatusError indicates an expectation could not be evaluated
	StatusError Status = "error"
)

// Precedence returns the numeric precedence of this status.
//
// Precedence: Fail (2) > Error (1) > Pass (0)
func (s Status) Precedence() int {
	switch s {
	case StatusFail:
		return 2
	case StatusError:
		return 1
	case StatusPass:
		return 0
	default:
		return -1
	}
}

// IsFailure returns true if this status represents a failure or error
func (s Status) IsFailure() bool {
	return s == StatusFail || s == StatusError
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusPass, StatusFail, StatusError:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}
