// Package apperrors defines application-level error types.
package apperrors

import "fmt"

// ConfigurationError indicates the rule configuration is unusable.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// ScenarioError indicates a check run finished with scenarios that did not pass.
type ScenarioError struct {
	Failed int
	Errors int
	Total  int
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("%d of %d scenarios did not pass (%d failed, %d errored)",
		e.Failed+e.Errors, e.Total, e.Failed, e.Errors)
}

// NewScenarioError creates a new scenario error.
func NewScenarioError(failed, errored, total int) *ScenarioError {
	return &ScenarioError{Failed: failed, Errors: errored, Total: total}
}
