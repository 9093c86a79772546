package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-entities/internal/config"
	"github.com/KirkDiggler/rpg-entities/internal/logging"
)

// app is the state shared by every subcommand once the root has run
type app struct {
	envFiles []string
	logLevel string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "statblock",
		Short: "Monster and spell payload tooling",
		Long: `statblock validates, formats and documents monster and spell payloads.

Defaults come from STATBLOCK_* environment variables and an optional .env file.
Flags take precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(a.newValidateCmd())
	rootCmd.AddCommand(a.newFmtCmd())
	rootCmd.AddCommand(a.newSchemaCmd())
	rootCmd.AddCommand(a.newExampleCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", "strict", cfg.Strict, "format", cfg.Format, "indent", cfg.Indent)
	return nil
}
