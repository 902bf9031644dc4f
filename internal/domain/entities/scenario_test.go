package entities

import (
	"testing"

	"github.com/reglet-dev/loginform/internal/domain/values"
	"github.com/stretchr/testify/assert"
)

func TestScenario_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scenario Scenario
		errMsg   string
	}{
		{
			name: "valid",
			scenario: Scenario{
				Name: "happy path",
				Steps: []Step{
					{Event: values.EventNameChanged, Value: "alice"},
					{Event: values.EventSubmit, Expect: []string{"not accepted"}},
				},
			},
		},
		{
			name:     "missing name and steps",
			scenario: Scenario{},
			errMsg:   "name cannot be empty",
		},
		{
			name: "unknown event",
			scenario: Scenario{
				Name:  "bad",
				Steps: []Step{{Event: "click"}},
			},
			errMsg: "step 1: unknown event",
		},
		{
			name: "value on submit",
			scenario: Scenario{
				Name:  "bad",
				Steps: []Step{{Event: values.EventSubmit, Value: "x"}},
			},
			errMsg: "submit event takes no value",
		},
		{
			name: "blank expectation",
			scenario: Scenario{
				Name:  "bad",
				Steps: []Step{{Event: values.EventDismiss, Expect: []string{" "}}},
			},
			errMsg: "expect[0] is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.scenario.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
