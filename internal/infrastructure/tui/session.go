package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/entities"
)

// Session runs the login form as an interactive huh form.
// Each keystroke in an input re-runs the field's handler, so hints are live.
type Session struct {
	handler  ports.EventHandler
	out      io.Writer
	logger   *slog.Logger
	progress time.Duration

	nameHint entities.ValidationResult
	passHint entities.ValidationResult
	nameSeen bool
	passSeen bool
}

// NewSession creates an interactive session driving handler.
// progress is how long the progress indicator stays up after a submit.
func NewSession(handler ports.EventHandler, out io.Writer, progress time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		handler:  handler,
		out:      out,
		progress: progress,
		logger:   logger,
	}
}

// Run shows the form until the user quits or ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.round(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// round runs one fill, submit and dismiss cycle.
func (s *Session) round(ctx context.Context) (bool, error) {
	var name, password string
	signIn := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User Name").
				Value(&name).
				DescriptionFunc(func() string { return s.nameChanged(name) }, &name).
				Validate(s.validateName),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				DescriptionFunc(func() string { return s.passwordChanged(password) }, &password).
				Validate(s.validatePassword),
			huh.NewConfirm().
				Title("Sign in?").
				Affirmative("Sign in").
				Negative("Quit").
				Value(&signIn),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	if !signIn {
		return false, nil
	}

	outcome := s.handler.OnSubmit()
	if !outcome.Accepted {
		// the form does not complete with an invalid field; start over if it did
		s.logger.Warn("form completed with the gate closed")
		return true, nil
	}

	err := spinner.New().
		Title("Signing in...").
		Context(ctx).
		Action(func() { time.Sleep(s.progress) }).
		Run()
	if err != nil {
		return false, err
	}

	//nolint:errcheck // Best-effort terminal output
	fmt.Fprintln(s.out, mutedStyle.Render("attempt "+outcome.Attempt.String()))

	again := true
	err = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Done").
			Affirmative("Close").
			Negative("Quit").
			Value(&again),
	)).RunWithContext(ctx)

	s.dismiss()
	if err != nil {
		return false, err
	}
	return again, nil
}

func (s *Session) nameChanged(value string) string {
	// huh renders the description before the first keystroke
	if !s.nameSeen && value == "" {
		return ""
	}
	s.nameSeen = true
	s.nameHint = s.handler.OnNameChanged(value)
	return renderHint(s.nameHint)
}

func (s *Session) passwordChanged(value string) string {
	if !s.passSeen && value == "" {
		return ""
	}
	s.passSeen = true
	s.passHint = s.handler.OnPasswordChanged(value)
	return renderHint(s.passHint)
}

// validateName runs when the input loses focus; an invalid name keeps focus.
func (s *Session) validateName(value string) error {
	s.nameSeen = true
	s.nameHint = s.handler.OnNameChanged(value)
	if !s.nameHint.IsValid() {
		return errors.New(s.nameHint.Message)
	}
	return nil
}

func (s *Session) validatePassword(value string) error {
	s.passSeen = true
	s.passHint = s.handler.OnPasswordChanged(value)
	if !s.passHint.IsValid() {
		return errors.New(s.passHint.Message)
	}
	return nil
}

func (s *Session) dismiss() {
	s.handler.OnDismiss()
	s.nameSeen, s.passSeen = false, false
	s.nameHint, s.passHint = entities.ValidationResult{}, entities.ValidationResult{}
}
