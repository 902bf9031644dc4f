package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/reglet-dev/loginform/internal/infrastructure/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "loginform",
	Short: "Terminal login form with live field validation",
	Long: `Loginform hosts a two-field login form in the terminal. The user name and
password are validated on every change, and sign in is only offered once both
are valid. The check command replays scripted scenarios against the same
validator so its rules can be verified in CI.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		setupLogging()
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.loginform.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() error {
	v := viper.GetViper()
	config.SetDefaults(v)

	home := ""
	if cfgFile == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
	}

	if err := config.ReadConfigFile(v, cfgFile, home); err != nil {
		return err
	}

	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "file", used)
	}
	return nil
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
