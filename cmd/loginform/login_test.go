package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLoginAction_Plain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := strings.NewReader("toolongname\nalice\nsecret\n\n\n")

	err := runLoginAction(context.Background(), newTestContainer(t, nil), in, &out, false, DefaultLoginOptions())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "ID: User Name Too long")
	assert.Contains(t, text, "ID: Ok")
	assert.Contains(t, text, "Password: Ok")
	assert.Contains(t, text, "Signed in, attempt ")
	assert.Contains(t, text, "Form cleared")
}

func TestRunLoginAction_EmptyInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runLoginAction(context.Background(), newTestContainer(t, nil), strings.NewReader(""), &out, false, DefaultLoginOptions())

	require.NoError(t, err)
	assert.Equal(t, "User Name: ", out.String())
}
