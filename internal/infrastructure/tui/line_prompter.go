package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/entities"
)

// LinePrompter drives the login form from line-oriented input, for pipes
// and dumb terminals. Hints and status go through the handler's presenter;
// the prompter only writes its own prompts.
type LinePrompter struct {
	handler ports.EventHandler
	reader  *bufio.Reader
	out     io.Writer
}

// NewLinePrompter creates a prompter reading from in and prompting on out.
func NewLinePrompter(handler ports.EventHandler, in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		handler: handler,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run prompts until input ends, the user quits, or ctx is canceled.
// End of input is a normal way to stop.
func (p *LinePrompter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := p.round(ctx)
		if err != nil || done {
			return err
		}
	}
}

// round collects both fields, then submits and dismisses.
// It reports done when input ended or the user quit.
func (p *LinePrompter) round(ctx context.Context) (bool, error) {
	if err := p.ask(ctx, "User Name: ", p.handler.OnNameChanged); err != nil {
		return true, ignoreEOF(err)
	}
	if err := p.ask(ctx, "Password: ", p.handler.OnPasswordChanged); err != nil {
		return true, ignoreEOF(err)
	}

	answer, ok := p.prompt("Sign in? [Y/n/q]: ")
	if !ok {
		return true, nil
	}

	switch strings.ToLower(answer) {
	case "q", "quit":
		return true, nil
	case "n", "no":
		// start over without submitting
		p.handler.OnDismiss()
		return false, nil
	}

	outcome := p.handler.OnSubmit()
	if outcome.Accepted {
		p.printf("Signed in, attempt %s\n", outcome.Attempt)
	}

	answer, ok = p.prompt("Press Enter to close, q to quit: ")
	p.handler.OnDismiss()
	if !ok {
		return true, nil
	}
	return strings.EqualFold(answer, "q") || strings.EqualFold(answer, "quit"), nil
}

// ask prompts for one field until changed reports it valid.
// It returns io.EOF when input ends first.
func (p *LinePrompter) ask(ctx context.Context, label string, changed func(string) entities.ValidationResult) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		value, ok := p.prompt(label)
		if !ok {
			return io.EOF
		}
		if changed(value).IsValid() {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// prompt writes label and reads one line. ok is false at end of input.
func (p *LinePrompter) prompt(label string) (string, bool) {
	p.printf("%s", label)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

//nolint:errcheck // Prompt output is best-effort
func (p *LinePrompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}
