package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-skyangle/internal/config"
)

// app carries state shared by subcommands once the root pre-run has finished.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.FromEnv()}

	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:           "skyangle",
		Short:         "Convert angles between radians, degrees, arcminutes, arcseconds and milliarcseconds",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flag defaults come from the environment, so flags always win.
			a.cfg.LogLevel = logLevel
			a.cfg.LogFormat = logFormat

			logger, err := a.cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", a.cfg.LogFormat, "log format (text or json)")

	root.AddCommand(convertCmd(a), workerCmd(a))
	return root
}
