package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/reglet-dev/loginform/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DescriptionQuietUntilTyped(t *testing.T) {
	t.Parallel()

	validator, rec := newTestValidator()
	s := NewSession(validator, &bytes.Buffer{}, time.Millisecond, nil)

	assert.Empty(t, s.nameChanged(""))
	assert.Empty(t, s.passwordChanged(""))
	assert.Empty(t, rec.Effects())
}

func TestSession_LiveHints(t *testing.T) {
	t.Parallel()

	validator, rec := newTestValidator()
	s := NewSession(validator, &bytes.Buffer{}, time.Millisecond, nil)

	assert.Contains(t, s.nameChanged("a"), "ID: Ok")
	assert.Contains(t, s.nameChanged("abcdefg"), "ID: User Name Too long")
	// once typed, clearing the field reports it empty
	assert.Contains(t, s.nameChanged(""), "ID: Please enter a User Name")
	assert.Contains(t, s.passwordChanged("secret"), "Password: Ok")

	assert.Equal(t, "ID: Please enter a User Name", rec.View().Hints[values.FieldName].Text)
}

func TestSession_Validate(t *testing.T) {
	t.Parallel()

	validator, _ := newTestValidator()
	s := NewSession(validator, &bytes.Buffer{}, time.Millisecond, nil)

	err := s.validateName("")
	require.Error(t, err)
	assert.Equal(t, "ID: Please enter a User Name", err.Error())

	require.NoError(t, s.validateName("bob"))

	err = s.validatePassword("01234567890")
	require.Error(t, err)
	assert.Equal(t, "Password: Too long", err.Error())

	require.NoError(t, s.validatePassword("0123456789"))
	assert.True(t, validator.IsGateOpen())
}

func TestSession_DismissResets(t *testing.T) {
	t.Parallel()

	validator, rec := newTestValidator()
	s := NewSession(validator, &bytes.Buffer{}, time.Millisecond, nil)

	require.NoError(t, s.validateName("bob"))
	require.NoError(t, s.validatePassword("pw"))
	validator.OnSubmit()

	s.dismiss()

	assert.False(t, s.nameSeen)
	assert.False(t, s.passSeen)
	assert.Empty(t, s.nameChanged(""))
	assert.Equal(t, 1, rec.View().FieldsCleared)
	assert.Equal(t, values.FieldUnset, validator.State().Password)
}
