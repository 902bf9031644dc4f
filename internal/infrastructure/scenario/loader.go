// Package scenario loads scripted login form scenarios from YAML files.
package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/entities"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed scenario.schema.json
var schemaJSON []byte

const schemaURL = "scenario.schema.json"

// Loader reads scenario files and validates them against the scenario schema.
type Loader struct {
	schema *jsonschema.Schema
}

var _ ports.ScenarioLoader = (*Loader)(nil)

// NewLoader compiles the embedded schema.
func NewLoader() (*Loader, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add scenario schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile scenario schema: %w", err)
	}

	return &Loader{schema: schema}, nil
}

// LoadScenario loads and validates a scenario from a YAML file.
func (l *Loader) LoadScenario(path string) (*entities.Scenario, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return l.LoadScenarioFromReader(file)
}

// LoadScenarioFromReader loads and validates a scenario from YAML.
func (l *Loader) LoadScenarioFromReader(r io.Reader) (*entities.Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scenario YAML: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario YAML: %w", err)
	}

	if err := l.schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, formatSchemaValidationError(validationErr)
		}
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	var sc entities.Scenario
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// formatSchemaValidationError flattens nested schema errors into one message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("scenario validation failed")
	}

	return fmt.Errorf("scenario validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
