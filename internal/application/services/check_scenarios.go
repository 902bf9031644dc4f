package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/loginform/internal/application/dto"
	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/domain/entities"
	"github.com/reglet-dev/loginform/internal/domain/execution"
	"github.com/reglet-dev/loginform/internal/domain/services"
	"github.com/reglet-dev/loginform/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// PresenterFactory creates a fresh recording presenter for one scenario.
type PresenterFactory func() ports.RecordingPresenter

// CheckScenariosUseCase replays scenario files against fresh validators
// and evaluates their expectations.
type CheckScenariosUseCase struct {
	loader       ports.ScenarioLoader
	newPresenter PresenterFactory
	evaluator    *services.ExpectationEvaluator
	logger       *slog.Logger
	rules        services.RuleSet
	version      string
}

// NewCheckScenariosUseCase creates a new check scenarios use case.
func NewCheckScenariosUseCase(
	loader ports.ScenarioLoader,
	newPresenter PresenterFactory,
	rules services.RuleSet,
	version string,
	logger *slog.Logger,
) *CheckScenariosUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &CheckScenariosUseCase{
		loader:       loader,
		newPresenter: newPresenter,
		evaluator:    services.NewExpectationEvaluator(),
		rules:        rules,
		version:      version,
		logger:       logger,
	}
}

// Execute loads every scenario first, then replays them in parallel.
// Report order matches request order.
func (uc *CheckScenariosUseCase) Execute(ctx context.Context, req dto.CheckScenariosRequest) (*dto.CheckScenariosResponse, error) {
	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("no scenario files given")
	}

	scenarios := make([]*entities.Scenario, len(req.Paths))
	for i, path := range req.Paths {
		sc, err := uc.loader.LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario %s: %w", path, err)
		}
		scenarios[i] = sc
	}

	parallelism := req.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	report := execution.NewReport(uc.version)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result := uc.RunScenario(sc)
			result.Index = i
			result.Source = req.Paths[i]
			report.AddScenario(result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scenario run interrupted: %w", err)
	}

	report.Complete()

	uc.logger.Info("scenarios checked",
		"total", report.Summary.TotalScenarios,
		"passed", report.Summary.PassedScenarios,
		"failed", report.Summary.FailedScenarios,
		"errored", report.Summary.ErrorScenarios,
		"duration", report.Duration.Std().Round(time.Millisecond))

	return &dto.CheckScenariosResponse{Report: report}, nil
}

// RunScenario replays one scenario on a new validator.
func (uc *CheckScenariosUseCase) RunScenario(sc *entities.Scenario) execution.ScenarioResult {
	start := time.Now()
	presenter := uc.newPresenter()
	validator := NewFormValidator(presenter, uc.rules, uc.logger.With("scenario", sc.Name))

	result := execution.ScenarioResult{
		Name:  sc.Name,
		Steps: make([]execution.StepResult, 0, len(sc.Steps)),
	}
	statuses := make([]values.Status, 0, len(sc.Steps))

	for _, step := range sc.Steps {
		stepResult := execution.StepResult{Event: step.Event, Value: displayValue(step)}
		env := execution.StepEnv{}

		switch step.Event {
		case values.EventNameChanged, values.EventPasswordChanged:
			field, _ := step.Event.Field()
			r := validator.fieldChanged(field, step.Value)
			stepResult.Validation = &r
			env.Field, env.State, env.Message, env.Severity = string(r.Field), string(r.State), r.Message, r.Severity().String()
		case values.EventSubmit:
			outcome := validator.OnSubmit()
			stepResult.Outcome = &outcome
			env.Accepted = outcome.Accepted
			env.AttemptID = outcome.Attempt.String()
		case values.EventDismiss:
			validator.OnDismiss()
		}

		fillFormEnv(&env, validator.State(), presenter.View())
		stepResult.GateOpen = env.GateOpen
		stepResult.Status, stepResult.Expectations = uc.evaluator.Evaluate(env, step.Expect)

		statuses = append(statuses, stepResult.Status)
		result.Steps = append(result.Steps, stepResult)
	}

	result.Status = uc.evaluator.AggregateScenarioStatus(statuses)
	result.Duration = execution.Millis(time.Since(start))

	return result
}

func fillFormEnv(env *execution.StepEnv, state entities.FormState, view ports.View) {
	env.GateOpen = state.GateOpen()
	env.NameState = string(state.Name)
	env.PasswordState = string(state.Password)
	env.SubmitEnabled = view.SubmitEnabled
	env.InputsEnabled = view.InputsEnabled
	env.Progress = view.Progress
	env.DismissVisible = view.DismissVisible
	env.FieldsCleared = view.FieldsCleared
	env.Hints = make(map[string]string, len(view.Hints))
	for field, hint := range view.Hints {
		env.Hints[string(field)] = hint.Text
	}
}

// displayValue masks password values in reports.
func displayValue(step entities.Step) string {
	if step.Event == values.EventPasswordChanged && step.Value != "" {
		return fmt.Sprintf("<%d chars>", len([]rune(step.Value)))
	}
	return step.Value
}
