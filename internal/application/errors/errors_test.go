package apperrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("rules", "failed to read config", fs.ErrNotExist)
	assert.Equal(t, "configuration error (rules): failed to read config: file does not exist", err.Error())
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	bare := NewConfigurationError("rules", "max_length must be at least 1", nil)
	assert.Equal(t, "configuration error (rules): max_length must be at least 1", bare.Error())
}

func TestScenarioError(t *testing.T) {
	t.Parallel()

	err := NewScenarioError(1, 2, 5)
	assert.Equal(t, "3 of 5 scenarios did not pass (1 failed, 2 errored)", err.Error())

	var target *ScenarioError
	assert.True(t, errors.As(error(err), &target))
}
