// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/reglet-dev/loginform/internal/application/ports"
	"github.com/reglet-dev/loginform/internal/application/services"
	domainservices "github.com/reglet-dev/loginform/internal/domain/services"
	"github.com/reglet-dev/loginform/internal/infrastructure/config"
	"github.com/reglet-dev/loginform/internal/infrastructure/output"
	"github.com/reglet-dev/loginform/internal/infrastructure/presenter"
	"github.com/reglet-dev/loginform/internal/infrastructure/scenario"
	"github.com/reglet-dev/loginform/internal/version"
	"github.com/spf13/viper"
)

// Container holds all application dependencies.
type Container struct {
	scenarioLoader   ports.ScenarioLoader
	formatterFactory ports.OutputFormatterFactory
	checkScenarios   *services.CheckScenariosUseCase
	logger           *slog.Logger
	rules            domainservices.RuleSet
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	// Config supplies the rule settings. A nil Config uses the built-in rules.
	Config *viper.Viper
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Config == nil {
		opts.Config = viper.New()
		config.SetDefaults(opts.Config)
	}

	rules, err := config.LoadRules(opts.Config)
	if err != nil {
		return nil, err
	}

	loader, err := scenario.NewLoader()
	if err != nil {
		return nil, err
	}

	checkScenarios := services.NewCheckScenariosUseCase(
		loader,
		presenter.NewRecordingPresenter,
		rules,
		version.Get().String(),
		opts.Logger,
	)

	opts.Logger.Debug("rules loaded",
		"name_max_length", rules.Name.MaxLength,
		"password_max_length", rules.Password.MaxLength)

	return &Container{
		scenarioLoader:   loader,
		formatterFactory: output.NewFormatterFactory(),
		checkScenarios:   checkScenarios,
		logger:           opts.Logger,
		rules:            rules,
	}, nil
}

// CheckScenariosUseCase returns the scenario replay use case.
func (c *Container) CheckScenariosUseCase() *services.CheckScenariosUseCase {
	return c.checkScenarios
}

// ScenarioLoader returns the scenario loader.
func (c *Container) ScenarioLoader() ports.ScenarioLoader {
	return c.scenarioLoader
}

// FormatterFactory returns the report formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// NewFormValidator returns a validator with the configured rules pushing effects to p.
// Each form needs its own validator.
func (c *Container) NewFormValidator(p ports.Presenter) *services.FormValidator {
	return services.NewFormValidator(p, c.rules, c.logger)
}

// Rules returns the configured rule set.
func (c *Container) Rules() domainservices.RuleSet {
	return c.rules
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
