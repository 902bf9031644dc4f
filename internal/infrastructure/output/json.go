// Package output formats scenario check reports.
package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/loginform/internal/domain/execution"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(report *execution.Report) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
