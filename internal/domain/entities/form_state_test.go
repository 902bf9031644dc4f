package entities

import (
	"testing"

	"github.com/reglet-dev/loginform/internal/domain/values"
	"github.com/stretchr/testify/assert"
)

func TestFormState_GateOpen(t *testing.T) {
	t.Parallel()

	states := []values.FieldState{values.FieldUnset, values.FieldInvalid, values.FieldValid}

	for _, name := range states {
		for _, pass := range states {
			s := FormState{Name: name, Password: pass}
			want := name == values.FieldValid && pass == values.FieldValid
			assert.Equal(t, want, s.GateOpen(), "name=%s password=%s", name, pass)
		}
	}
}

func TestFormState_SetGet(t *testing.T) {
	t.Parallel()

	s := NewFormState()
	assert.Equal(t, values.FieldUnset, s.Get(values.FieldName))
	assert.Equal(t, values.FieldUnset, s.Get(values.FieldPassword))

	s.Set(values.FieldName, values.FieldValid)
	s.Set(values.FieldPassword, values.FieldInvalid)

	assert.Equal(t, values.FieldValid, s.Name)
	assert.Equal(t, values.FieldInvalid, s.Password)
	assert.False(t, s.GateOpen())
}

func TestFormState_Reset(t *testing.T) {
	t.Parallel()

	s := FormState{
		Name:     values.FieldValid,
		Password: values.FieldValid,
		Attempt:  values.NewAttemptID(),
	}
	assert.True(t, s.GateOpen())
	assert.True(t, s.Submitted())

	s.Reset()

	assert.Equal(t, NewFormState(), s)
	assert.False(t, s.GateOpen())
	assert.False(t, s.Submitted())
}

func TestValidationResult_Severity(t *testing.T) {
	t.Parallel()

	ok := ValidationResult{Field: values.FieldName, State: values.FieldValid, Message: "ID: Ok"}
	bad := ValidationResult{Field: values.FieldName, State: values.FieldInvalid, Message: "ID: User Name Too long"}

	assert.True(t, ok.IsValid())
	assert.True(t, ok.Severity().IsOK())
	assert.False(t, bad.IsValid())
	assert.False(t, bad.Severity().IsOK())
}
