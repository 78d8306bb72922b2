package main

import (
	"github.com/spf13/cobra"

	"github.com/andersonsilva/portfolio/internal/config"
	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/logger"
)

type rootFlags struct {
	envFile     string
	contentFile string
	logLevel    string
	logFormat   string
}

// appContext is what every subcommand shares after flags are resolved.
type appContext struct {
	cfg     config.Config
	log     *logger.Logger
	content content.Content
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or preview a single-page personal portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app, "")
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Load environment variables from this dotenv file")
	cmd.PersistentFlags().StringVar(&flags.contentFile, "content", "", "YAML file replacing the built-in content (env CONTENT_FILE)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: json or console (env LOG_FORMAT)")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newValidateCmd())

	return cmd
}

// init resolves configuration: flags win over the environment.
func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	if err := config.LoadEnvFile(flags.envFile); err != nil {
		return err
	}
	a.cfg = config.Load()
	if flags.contentFile != "" {
		a.cfg.ContentFile = flags.contentFile
	}
	if flags.logLevel != "" {
		a.cfg.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		a.cfg.LogFormat = flags.logFormat
	}

	log, err := logger.New(logger.Options{
		Level:         a.cfg.LogLevel,
		HumanReadable: a.cfg.HumanLogs(),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log

	c, err := content.Load(a.cfg.ContentFile)
	if err != nil {
		return err
	}
	a.content = c
	if a.cfg.ContentFile != "" {
		a.log.With("file", a.cfg.ContentFile).Info("loaded content")
	}
	return nil
}
