package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/reglet-dev/loginform/internal/infrastructure/output"
	"github.com/spf13/cobra"
)

// CheckOptions contains the flags of the check command.
type CheckOptions struct {
	// Output
	Format string
	Output string

	// Execution
	Timeout     time.Duration
	Parallelism int
}

// DefaultCheckOptions returns sensible defaults.
func DefaultCheckOptions() CheckOptions {
	return CheckOptions{
		Format:      "table",
		Timeout:     time.Minute,
		Parallelism: 4,
	}
}

// RegisterFlags adds the check flags to a cobra command.
func (opts *CheckOptions) RegisterFlags(cmd *cobra.Command) {
	// Execution
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire run (0 to disable)")
	cmd.Flags().IntVar(&opts.Parallelism, "parallelism", opts.Parallelism,
		"Maximum number of scenarios replayed at once")

	// Output
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output,
		"Output file path (default: stdout)")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CheckOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ValidateFlags validates the check options.
func (opts *CheckOptions) ValidateFlags() error {
	formats := output.NewFormatterFactory().SupportedFormats()
	if !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, formats)
	}
	if opts.Parallelism < 1 {
		return fmt.Errorf("--parallelism must be at least 1, got %d", opts.Parallelism)
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("--timeout cannot be negative")
	}
	return nil
}

// LoginOptions contains the flags of the login command.
type LoginOptions struct {
	Progress time.Duration
	Plain    bool
}

// DefaultLoginOptions returns sensible defaults.
func DefaultLoginOptions() LoginOptions {
	return LoginOptions{Progress: time.Second}
}

// RegisterFlags adds the login flags to a cobra command.
func (opts *LoginOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&opts.Progress, "progress", opts.Progress,
		"How long the progress indicator shows after sign in")
	cmd.Flags().BoolVar(&opts.Plain, "plain", opts.Plain,
		"Use line prompts even on a terminal")
}

// ValidateFlags validates the login options.
func (opts *LoginOptions) ValidateFlags() error {
	if opts.Progress < 0 {
		return fmt.Errorf("--progress cannot be negative")
	}
	return nil
}
