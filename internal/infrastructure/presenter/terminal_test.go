package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reglet-dev/loginform/internal/domain/values"
	"github.com/stretchr/testify/assert"
)

func TestTerminal_WritesHints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.SetHint(values.FieldName, "ID: Ok", values.SevOK)
	term.SetHint(values.FieldPassword, "Password: Null", values.SevError)

	out := buf.String()
	assert.Contains(t, out, "ID: Ok")
	assert.Contains(t, out, "Password: Null")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestTerminal_SubmitAnnouncedOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.SetSubmitEnabled(false)
	assert.Empty(t, buf.String())

	term.SetSubmitEnabled(true)
	term.SetSubmitEnabled(true)
	assert.Equal(t, 1, strings.Count(buf.String(), "Sign in is available"))

	term.SetSubmitEnabled(false)
	term.SetSubmitEnabled(true)
	assert.Equal(t, 2, strings.Count(buf.String(), "Sign in is available"))
}

func TestTerminal_RestingEffectsAreSilent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.SetFieldHighlight(values.FieldName, true)
	term.HideHints()
	term.SetInputsEnabled(true)
	term.ShowProgress(false)
	term.ShowDismiss(false)

	assert.Empty(t, buf.String())

	term.ShowProgress(true)
	term.ClearFields()
	assert.Contains(t, buf.String(), "Signing in...")
	assert.Contains(t, buf.String(), "Form cleared")
}
