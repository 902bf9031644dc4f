// Package tui hosts the login form in a terminal, either as an interactive
// huh form or, when stdin is not a terminal, as a line-based prompt.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/reglet-dev/loginform/internal/domain/entities"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#11AA2A"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3913"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// renderHint colors a validation message by its severity.
func renderHint(r entities.ValidationResult) string {
	if r.Severity().IsOK() {
		return okStyle.Render(r.Message)
	}
	return errorStyle.Render(r.Message)
}

// IsInteractive checks if f is a terminal rather than a pipe or file.
func IsInteractive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
