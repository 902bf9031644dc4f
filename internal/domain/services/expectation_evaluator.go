package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/loginform/internal/domain/execution"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

const (
	maxExpressionLength = 500
	maxASTNodes         = 100
)

// ExpectationEvaluator evaluates scenario expectations against the form
// state after a step. Compiled programs are cached; safe for concurrent use.
type ExpectationEvaluator struct {
	programCache map[string]*vm.Program
	cacheMu      sync.RWMutex
}

// NewExpectationEvaluator creates an evaluator with an empty cache.
func NewExpectationEvaluator() *ExpectationEvaluator {
	return &ExpectationEvaluator{
		programCache: make(map[string]*vm.Program),
	}
}

// Evaluate runs every expectation against env.
//
// ALL expectations must be true for the step to pass. A false expectation
// fails the step; a compile error, runtime error or oversized expression
// errors it. When both happen the step fails.
func (e *ExpectationEvaluator) Evaluate(env execution.StepEnv, expects []string) (values.Status, []execution.ExpectationResult) {
	if len(expects) == 0 {
		return values.StatusPass, nil
	}

	results := make([]execution.ExpectationResult, 0, len(expects))
	status := values.StatusPass

	worsen := func(s values.Status) {
		if s.Precedence() > status.Precedence() {
			status = s
		}
	}

	for _, expression := range expects {
		if len(expression) > maxExpressionLength {
			results = append(results, execution.ExpectationResult{
				Expression: expression,
				Message:    fmt.Sprintf("Expression too long (max %d chars): %d chars", maxExpressionLength, len(expression)),
			})
			worsen(values.StatusError)
			continue
		}

		program, err := e.getOrCompile(expression)
		if err != nil {
			results = append(results, execution.ExpectationResult{
				Expression: expression,
				Message:    fmt.Sprintf("Compilation failed: %v", err),
			})
			worsen(values.StatusError)
			continue
		}

		output, err := expr.Run(program, env)
		if err != nil {
			results = append(results, execution.ExpectationResult{
				Expression: expression,
				Message:    fmt.Sprintf("Evaluation failed: %v", err),
			})
			worsen(values.StatusError)
			continue
		}

		passed, ok := output.(bool)
		if !ok {
			results = append(results, execution.ExpectationResult{
				Expression: expression,
				Message:    fmt.Sprintf("Expression did not return boolean: %v", output),
			})
			worsen(values.StatusError)
			continue
		}

		if passed {
			results = append(results, execution.ExpectationResult{Expression: expression, Passed: true})
			continue
		}

		results = append(results, execution.ExpectationResult{
			Expression: expression,
			Message:    failureMessage(expression, env),
		})
		worsen(values.StatusFail)
	}

	return status, results
}

// AggregateScenarioStatus folds step statuses: Fail > Error > Pass.
func (e *ExpectationEvaluator) AggregateScenarioStatus(steps []values.Status) values.Status {
	status := values.StatusPass
	for _, s := range steps {
		if s.Precedence() > status.Precedence() {
			status = s
		}
	}
	return status
}

// getOrCompile retrieves a cached program or compiles and caches a new one.
func (e *ExpectationEvaluator) getOrCompile(expression string) (*vm.Program, error) {
	e.cacheMu.RLock()
	program, found := e.programCache[expression]
	e.cacheMu.RUnlock()

	if found {
		return program, nil
	}

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if program, found := e.programCache[expression]; found {
		return program, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(execution.StepEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxASTNodes),
	)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}

// failureMessage reports the actual value for simple "var == literal" expectations.
func failureMessage(expression string, env execution.StepEnv) string {
	actual := map[string]interface{}{
		"state":          env.State,
		"message":        env.Message,
		"severity":       env.Severity,
		"name_state":     env.NameState,
		"password_state": env.PasswordState,
		"fields_cleared": env.FieldsCleared,
	}

	for _, op := range []string{"==", "!="} {
		left, right, found := strings.Cut(expression, op)
		if !found {
			continue
		}
		left = strings.TrimSpace(left)
		if v, ok := actual[left]; ok {
			return fmt.Sprintf("Expected %s %s %s, got %q", left, op, strings.TrimSpace(right), fmt.Sprint(v))
		}
	}

	return fmt.Sprintf("Expression evaluated to false: %s", expression)
}
