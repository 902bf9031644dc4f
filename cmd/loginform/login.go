package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/infrastructure/container"
	"github.com/reglet-dev/loginform/internal/infrastructure/presenter"
	"github.com/reglet-dev/loginform/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

var loginOpts = DefaultLoginOptions()

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Show the login form",
	Long: `Show the login form. Hints update as you type; sign in is offered once
the user name and password are both valid. Nothing is sent anywhere: signing in
shows the progress indicator, and closing it clears the form.

When stdin is not a terminal, or with --plain, the form is asked line by line.`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		if err := loginOpts.ValidateFlags(); err != nil {
			return err
		}

		interactive := !loginOpts.Plain && tui.IsInteractive(os.Stdin) && tui.IsInteractive(os.Stdout)
		return runLoginAction(cc.Context, cc.Container, cmd.InOrStdin(), cmd.OutOrStdout(), interactive, loginOpts)
	}),
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginOpts.RegisterFlags(loginCmd)
}

// runLoginAction hosts one validator in the chosen front end until the user quits.
func runLoginAction(
	ctx context.Context,
	c *container.Container,
	in io.Reader,
	out io.Writer,
	interactive bool,
	opts LoginOptions,
) error {
	if interactive {
		// huh paints hints itself; the recorder keeps the view for debugging
		rec := presenter.NewRecorder()
		validator := c.NewFormValidator(rec)

		err := tui.NewSession(validator, out, opts.Progress, c.Logger()).Run(ctx)
		logView(c.Logger(), rec.View())
		return err
	}

	validator := c.NewFormValidator(presenter.NewTerminal(out))
	return tui.NewLinePrompter(validator, in, out).Run(ctx)
}

func logView(logger *slog.Logger, view ports.View) {
	logger.Debug("login form closed",
		"submit_enabled", view.SubmitEnabled,
		"inputs_enabled", view.InputsEnabled,
		"progress", view.Progress,
		"fields_cleared", view.FieldsCleared)
}
