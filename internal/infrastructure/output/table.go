package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reglet-dev/loginform/internal/domain/execution"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats check reports as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true,
	}
}

func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *execution.Report) error {
	rule := f.colorize(strings.Repeat("─", 72), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "Executed: %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", report.Duration.Std().Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(report.Scenarios) == 0 {
		fmt.Fprintln(f.writer, "No scenarios executed.")
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Scenarios:", colorBold))
	fmt.Fprintln(f.writer, rule)

	for _, sc := range report.Scenarios {
		f.formatScenario(sc)
	}

	fmt.Fprintln(f.writer, rule)
	f.formatSummary(report.Summary)

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatScenario(sc execution.ScenarioResult) {
	symbol, color := f.getStatusInfo(sc.Status)

	fmt.Fprintf(f.writer, "%s %s", f.colorize(symbol, color), f.colorize(sc.Name, color))
	if sc.Source != "" {
		fmt.Fprintf(f.writer, " %s", f.colorize("("+sc.Source+")", colorGray))
	}
	fmt.Fprintln(f.writer)

	for i, step := range sc.Steps {
		f.formatStep(step, i+1)
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatStep(step execution.StepResult, index int) {
	symbol, color := f.getStatusInfo(step.Status)

	detail := ""
	switch {
	case step.Validation != nil:
		detail = fmt.Sprintf("%s → %s", step.Validation.State, step.Validation.Message)
	case step.Outcome != nil && step.Outcome.Accepted:
		detail = "accepted"
	case step.Outcome != nil:
		detail = "ignored, gate closed"
	}

	event := string(step.Event)
	if step.Event.CarriesValue() {
		event = fmt.Sprintf("%s %q", step.Event, step.Value)
	}

	fmt.Fprintf(f.writer, "  %d. %s %s", index, f.colorize(symbol, color), event)
	if detail != "" {
		fmt.Fprintf(f.writer, "  %s", detail)
	}
	fmt.Fprintln(f.writer)

	for _, exp := range step.Expectations {
		if exp.Passed {
			continue
		}
		fmt.Fprintf(f.writer, "       - %s\n", exp.Expression)
		if exp.Message != "" {
			fmt.Fprintf(f.writer, "         %s\n", f.colorize(exp.Message, colorYellow))
		}
	}
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(s execution.Summary) {
	fmt.Fprintf(f.writer, "Scenarios: %d total, %s, %s, %s\n",
		s.TotalScenarios,
		f.colorize(fmt.Sprintf("%d passed", s.PassedScenarios), colorGreen),
		f.colorize(fmt.Sprintf("%d failed", s.FailedScenarios), colorRed),
		f.colorize(fmt.Sprintf("%d errored", s.ErrorScenarios), colorYellow))
	fmt.Fprintf(f.writer, "Steps:     %d total, %d passed, %d failed, %d errored\n",
		s.TotalSteps, s.PassedSteps, s.FailedSteps, s.ErrorSteps)
}

func (f *TableFormatter) getStatusInfo(status values.Status) (string, string) {
	switch status {
	case values.StatusPass:
		return "✓", colorGreen
	case values.StatusFail:
		return "✗", colorRed
	case values.StatusError:
		return "!", colorYellow
	default:
		return "?", colorGray
	}
}
