package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOptions_ApplyToContext(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()
		opts := CheckOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 10*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		t.Parallel()
		opts := CheckOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestCheckOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    CheckOptions
		wantErr bool
		errMsg  string
	}{
		{
			name:    "defaults",
			opts:    DefaultCheckOptions(),
			wantErr: false,
		},
		{
			name:    "valid format yaml",
			opts:    CheckOptions{Format: "yaml", Parallelism: 1},
			wantErr: false,
		},
		{
			name:    "invalid format",
			opts:    CheckOptions{Format: "junit", Parallelism: 1},
			wantErr: true,
			errMsg:  "invalid format",
		},
		{
			name:    "zero parallelism",
			opts:    CheckOptions{Format: "table", Parallelism: 0},
			wantErr: true,
			errMsg:  "--parallelism must be at least 1",
		},
		{
			name:    "negative timeout",
			opts:    CheckOptions{Format: "table", Parallelism: 1, Timeout: -time.Second},
			wantErr: true,
			errMsg:  "--timeout cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.ValidateFlags()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	opts := DefaultLoginOptions()
	require.NoError(t, opts.ValidateFlags())
	assert.Equal(t, time.Second, opts.Progress)

	opts.Progress = -time.Millisecond
	assert.ErrorContains(t, opts.ValidateFlags(), "--progress cannot be negative")
}
