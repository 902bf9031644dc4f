// Package execution provides domain models for scenario run reports.
package execution

import (
	"sync"
	"time"

	"github.com/reglet-dev/loginform/internal/domain/entities"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

// Report is the result of checking one or more scenarios.
type Report struct {
	StartTime time.Time        `json:"start_time" yaml:"start_time"`
	EndTime   time.Time        `json:"end_time" yaml:"end_time"`
	Version   string           `json:"loginform_version,omitempty" yaml:"loginform_version,omitempty"`
	Scenarios []ScenarioResult `json:"scenarios" yaml:"scenarios"`
	Summary   Summary          `json:"summary" yaml:"summary"`
	Duration  Millis           `json:"duration_ms" yaml:"duration_ms"`
	mu        sync.Mutex
}

// ScenarioResult is the result of replaying one scenario.
type ScenarioResult struct {
	Name     string        `json:"name" yaml:"name"`
	Source   string        `json:"source,omitempty" yaml:"source,omitempty"`
	Status   values.Status `json:"status" yaml:"status"`
	Steps    []StepResult  `json:"steps" yaml:"steps"`
	Index    int           `json:"index" yaml:"index"`
	Duration Millis        `json:"duration_ms" yaml:"duration_ms"`
}

// StepResult is the result of one replayed event.
type StepResult struct {
	Validation   *entities.ValidationResult `json:"validation,omitempty" yaml:"validation,omitempty"`
	Outcome      *entities.SubmitOutcome    `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Event        values.Event               `json:"event" yaml:"event"`
	Value        string                     `json:"value,omitempty" yaml:"value,omitempty"`
	Status       values.Status              `json:"status" yaml:"status"`
	Expectations []ExpectationResult        `json:"expectations,omitempty" yaml:"expectations,omitempty"`
	GateOpen     bool                       `json:"gate_open" yaml:"gate_open"`
}

// ExpectationResult is the result of evaluating a single expectation expression.
type ExpectationResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	Passed     bool   `json:"passed" yaml:"passed"`
}

// Summary provides aggregate counts over a report.
type Summary struct {
	TotalScenarios  int `json:"total_scenarios" yaml:"total_scenarios"`
	PassedScenarios int `json:"passed_scenarios" yaml:"passed_scenarios"`
	FailedScenarios int `json:"failed_scenarios" yaml:"failed_scenarios"`
	ErrorScenarios  int `json:"error_scenarios" yaml:"error_scenarios"`
	TotalSteps      int `json:"total_steps" yaml:"total_steps"`
	PassedSteps     int `json:"passed_steps" yaml:"passed_steps"`
	FailedSteps     int `json:"failed_steps" yaml:"failed_steps"`
	ErrorSteps      int `json:"error_steps" yaml:"error_steps"`
}

// NewReport creates an empty report started now.
func NewReport(version string) *Report {
	return &Report{
		StartTime: time.Now(),
		Version:   version,
		Scenarios: []ScenarioResult{},
	}
}

// AddScenario stores a scenario result at its index. Safe for concurrent use.
func (r *Report) AddScenario(result ScenarioResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.Scenarios) <= result.Index {
		r.Scenarios = append(r.Scenarios, ScenarioResult{})
	}
	r.Scenarios[result.Index] = result
}

// Complete stamps the end time and computes the summary.
func (r *Report) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EndTime = time.Now()
	r.Duration = Millis(r.EndTime.Sub(r.StartTime))
	r.Summary = summarize(r.Scenarios)
}

// Failed reports whether any scenario did not pass.
func (r *Report) Failed() bool {
	return r.Summary.FailedScenarios > 0 || r.Summary.ErrorScenarios > 0
}

func summarize(scenarios []ScenarioResult) Summary {
	var s Summary
	for _, sc := range scenarios {
		s.TotalScenarios++
		switch sc.Status {
		case values.StatusPass:
			s.PassedScenarios++
		case values.StatusFail:
			s.FailedScenarios++
		case values.StatusError:
			s.ErrorScenarios++
		}

		for _, step := range sc.Steps {
			s.TotalSteps++
			switch step.Status {
			case values.StatusPass:
				s.PassedSteps++
			case values.StatusFail:
				s.FailedSteps++
			case values.StatusError:
				s.ErrorSteps++
			}
		}
	}
	return s
}
