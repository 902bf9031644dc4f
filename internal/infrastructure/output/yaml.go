package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/loginform/internal/domain/execution"
)

// YAMLFormatter writes a check report as a YAML document. A comment header
// names the run so reports saved side by side can be told apart.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(report *execution.Report) error {
	if _, err := fmt.Fprintf(f.writer, "# loginform check report: %d scenarios, %d passed\n",
		report.Summary.TotalScenarios, report.Summary.PassedScenarios); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(f.writer,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return encoder.Close()
}
