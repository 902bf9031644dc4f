package entities

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/loginform/internal/domain/values"
)

// Scenario is a scripted sequence of form events with expectations.
type Scenario struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

// Step is one inbound event. Value is only read for field change events.
type Step struct {
	Event  values.Event `json:"event" yaml:"event"`
	Value  string       `json:"value,omitempty" yaml:"value,omitempty"`
	Expect []string     `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// Validate checks the scenario structure.
func (s *Scenario) Validate() error {
	var errs []string

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if len(s.Steps) == 0 {
		errs = append(errs, "at least one step is required")
	}

	for i, step := range s.Steps {
		if _, err := values.ParseEvent(string(step.Event)); err != nil {
			errs = append(errs, fmt.Sprintf("step %d: %v", i+1, err))
		}
		if !step.Event.CarriesValue() && step.Value != "" {
			errs = append(errs, fmt.Sprintf("step %d: %s event takes no value", i+1, step.Event))
		}
		for j, e := range step.Expect {
			if strings.TrimSpace(e) == "" {
				errs = append(errs, fmt.Sprintf("step %d: expect[%d] is empty", i+1, j))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario %q is invalid:\n  - %s", s.Name, strings.Join(errs, "\n  - "))
	}
	return nil
}
