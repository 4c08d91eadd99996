package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/platform"
	"github.com/alvesdmateus/paasctl/internal/render"
	"github.com/alvesdmateus/paasctl/pkg/config"
)

var (
	outputFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "paasctl",
	Short: "paasctl - command-line client for the deployment platform",
	Long: `paasctl talks to the deployment platform API: create projects, deploy
from a branch or image, upload files, inspect status and logs, manage
environment variables, roll back, wake environments and read analytics.

Configuration comes from PAASCTL_API_BASE_URL and PAASCTL_API_KEY (a .env file in
the working directory is honored), or from config.yaml in ~/.paasctl.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(deploymentCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(wakeCmd)
	rootCmd.AddCommand(analyticsCmd)
}

// session bundles everything a command needs for its single API exchange
type session struct {
	client *platform.Client
	format render.Format
	logger zerolog.Logger
}

// newSession loads configuration and builds the API client. Commands call it
// first so a missing API key fails before any request is attempted.
func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Output.LogLevel)

	client, err := platform.New(cfg.API, logger)
	if err != nil {
		return nil, err
	}

	name := cfg.Output.Format
	if outputFlag != "" {
		name = outputFlag
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return &session{client: client, format: format, logger: logger}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	if verboseFlag {
		lvl = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
