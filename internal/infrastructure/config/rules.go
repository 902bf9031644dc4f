// Package config loads the login form rule configuration through viper.
// Values come from the config file, LOGINFORM_* environment variables
// and built-in defaults, in that order of precedence after flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/reglet-dev/loginform/internal/application/errors"
	"github.com/reglet-dev/loginform/internal/domain/services"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "LOGINFORM"

// Configuration keys.
const (
	KeyNameMaxLength     = "rules.name.max_length"
	KeyNameEmpty         = "rules.name.messages.empty"
	KeyNameTooLong       = "rules.name.messages.too_long"
	KeyNameOK            = "rules.name.messages.ok"
	KeyPasswordMaxLength = "rules.password.max_length"
	KeyPasswordEmpty     = "rules.password.messages.empty"
	KeyPasswordTooLong   = "rules.password.messages.too_long"
	KeyPasswordOK        = "rules.password.messages.ok"
)

// SetDefaults registers the default rules and environment binding on v.
func SetDefaults(v *viper.Viper) {
	defaults := services.DefaultRuleSet()

	v.SetDefault(KeyNameMaxLength, defaults.Name.MaxLength)
	v.SetDefault(KeyNameEmpty, defaults.Name.Messages.Empty)
	v.SetDefault(KeyNameTooLong, defaults.Name.Messages.TooLong)
	v.SetDefault(KeyNameOK, defaults.Name.Messages.OK)
	v.SetDefault(KeyPasswordMaxLength, defaults.Password.MaxLength)
	v.SetDefault(KeyPasswordEmpty, defaults.Password.Messages.Empty)
	v.SetDefault(KeyPasswordTooLong, defaults.Password.Messages.TooLong)
	v.SetDefault(KeyPasswordOK, defaults.Password.Messages.OK)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadRules builds the rule set from v. SetDefaults must have been called.
func LoadRules(v *viper.Viper) (services.RuleSet, error) {
	rules := services.DefaultRuleSet()

	rules.Name.MaxLength = v.GetInt(KeyNameMaxLength)
	rules.Name.Messages = services.Messages{
		Empty:   v.GetString(KeyNameEmpty),
		TooLong: v.GetString(KeyNameTooLong),
		OK:      v.GetString(KeyNameOK),
	}

	rules.Password.MaxLength = v.GetInt(KeyPasswordMaxLength)
	rules.Password.Messages = services.Messages{
		Empty:   v.GetString(KeyPasswordEmpty),
		TooLong: v.GetString(KeyPasswordTooLong),
		OK:      v.GetString(KeyPasswordOK),
	}

	if err := rules.Validate(); err != nil {
		return services.RuleSet{}, apperrors.NewConfigurationError("rules", "invalid rule configuration", err)
	}

	return rules, nil
}

// ReadConfigFile reads path into v, or $HOME/.loginform.yaml when path is empty.
// A missing default file is not an error.
func ReadConfigFile(v *viper.Viper, path, home string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".loginform")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return apperrors.NewConfigurationError("file", fmt.Sprintf("failed to read %s", describe(path)), err)
	}

	return nil
}

func describe(path string) string {
	if path == "" {
		return "default config file"
	}
	return path
}
