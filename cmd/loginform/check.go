package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reglet-dev/loginform/internal/application/dto"
	apperrors "github.com/reglet-dev/loginform/internal/application/errors"
	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/infrastructure/container"
	"github.com/spf13/cobra"
)

var checkOpts = DefaultCheckOptions()

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>...",
	Short: "Replay scenario files against the form validator",
	Long: `Load one or more scenario files and replay their events against a fresh
validator each. Every step's expectations are expr boolean expressions over the
validation result and the form's visible state, for example:

  state == "valid" && message == "ID: Ok"
  gate_open and submit_enabled
  not inputs_enabled

The command exits non-zero when any scenario fails or errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		if err := checkOpts.ValidateFlags(); err != nil {
			return err
		}

		ctx, cancel := checkOpts.ApplyToContext(cc.Context)
		defer cancel()

		return runCheckAction(ctx, cc.Container, cmd.OutOrStdout(), args, checkOpts)
	}),
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkOpts.RegisterFlags(checkCmd)
}

// runCheckAction implements the core logic for the check command
func runCheckAction(
	ctx context.Context,
	c *container.Container,
	stdout io.Writer,
	paths []string,
	opts CheckOptions,
) error {
	resp, err := c.CheckScenariosUseCase().Execute(ctx, dto.CheckScenariosRequest{
		Paths:       paths,
		Parallelism: opts.Parallelism,
	})
	if err != nil {
		return err
	}

	writer := stdout
	if opts.Output != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		c.Logger().Info("writing output", "file", opts.Output, "format", opts.Format)
	}

	formatter, err := c.FormatterFactory().Create(opts.Format, writer, ports.FormatterOptions{Indent: true})
	if err != nil {
		return err
	}
	if err := formatter.Format(resp.Report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if resp.Report.Failed() {
		s := resp.Report.Summary
		return apperrors.NewScenarioError(s.FailedScenarios, s.ErrorScenarios, s.TotalScenarios)
	}

	return nil
}
