package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/loginform/internal/application/ports"
)

// reportFormats lists the check report formats in the order shown to users.
var reportFormats = []struct {
	name string
	new  func(io.Writer, ports.FormatterOptions) ports.OutputFormatter
}{
	{"table", func(w io.Writer, _ ports.FormatterOptions) ports.OutputFormatter {
		return NewTableFormatter(w)
	}},
	{"json", func(w io.Writer, opts ports.FormatterOptions) ports.OutputFormatter {
		return NewJSONFormatter(w, opts.Indent)
	}},
	{"yaml", func(w io.Writer, _ ports.FormatterOptions) ports.OutputFormatter {
		return NewYAMLFormatter(w)
	}},
}

// FormatterFactory builds check report formatters by name.
type FormatterFactory struct{}

var _ ports.OutputFormatterFactory = (*FormatterFactory)(nil)

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns the report formatter for format, writing to writer.
// Names are matched case-insensitively.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.OutputFormatter, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	for _, rf := range reportFormats {
		if rf.name == name {
			return rf.new(writer, options), nil
		}
	}

	return nil, fmt.Errorf("unknown report format: %s (supported: %s)",
		format, strings.Join(f.SupportedFormats(), ", "))
}

// SupportedFormats returns the report format names.
func (f *FormatterFactory) SupportedFormats() []string {
	names := make([]string, len(reportFormats))
	for i, rf := range reportFormats {
		names[i] = rf.name
	}
	return names
}
