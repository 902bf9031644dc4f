package scenario

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/reglet-dev/loginform/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	loader, err := NewLoader()
	require.NoError(t, err)
	return loader
}

func TestLoader_LoadScenario(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	sc, err := loader.LoadScenario(filepath.Join("testdata", "happy_path.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "happy path", sc.Name)
	require.Len(t, sc.Steps, 4)
	assert.Equal(t, values.EventNameChanged, sc.Steps[0].Event)
	assert.Equal(t, "alice", sc.Steps[0].Value)
	assert.Equal(t, values.EventSubmit, sc.Steps[2].Event)
	assert.Contains(t, sc.Steps[2].Expect, "accepted")
}

func TestLoader_ExampleScenarios(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	paths, err := filepath.Glob(filepath.Join("..", "..", "..", "examples", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			sc, err := loader.LoadScenario(path)
			require.NoError(t, err)
			assert.NotEmpty(t, sc.Steps)
		})
	}
}

func TestLoader_ExpectationContainingColon(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	quoted := `name: colon
steps:
  - event: name
    value: alice
    expect:
      - 'message == "ID: Ok"'
`
	sc, err := loader.LoadScenarioFromReader(strings.NewReader(quoted))
	require.NoError(t, err)
	assert.Equal(t, []string{`message == "ID: Ok"`}, sc.Steps[0].Expect)

	// unquoted, YAML reads the expectation as a mapping
	unquoted := strings.Replace(quoted, `'message == "ID: Ok"'`, `message == "ID: Ok"`, 1)
	_, err = loader.LoadScenarioFromReader(strings.NewReader(unquoted))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/steps/0/expect/0")
}

func TestLoader_EmptyValueIsKept(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	sc, err := loader.LoadScenario(filepath.Join("testdata", "rejections.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", sc.Steps[0].Value)
	assert.Equal(t, "toolongname", sc.Steps[1].Value)
}

func TestLoader_SchemaErrors(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "unknown event",
			yaml:   "name: x\nsteps:\n  - event: click\n",
			errMsg: "/steps/0/event",
		},
		{
			name:   "missing steps",
			yaml:   "name: x\n",
			errMsg: "scenario validation failed",
		},
		{
			name:   "value on submit",
			yaml:   "name: x\nsteps:\n  - event: submit\n    value: y\n",
			errMsg: "/steps/0",
		},
		{
			name:   "numeric value",
			yaml:   "name: x\nsteps:\n  - event: name\n    value: 123\n",
			errMsg: "/steps/0/value",
		},
		{
			name:   "unknown key",
			yaml:   "name: x\nsteps:\n  - event: dismiss\n    wait: 1s\n",
			errMsg: "scenario validation failed",
		},
		{
			name:   "malformed yaml",
			yaml:   "name: [unclosed\n",
			errMsg: "failed to decode scenario YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := loader.LoadScenarioFromReader(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoader_FileErrors(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)

	_, err := loader.LoadScenario(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open scenario")

	_, err = loader.LoadScenario(filepath.Join("testdata", "bad_event.yaml"))
	assert.ErrorContains(t, err, "scenario validation failed")
}
