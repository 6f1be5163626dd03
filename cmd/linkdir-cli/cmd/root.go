package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linkdir/internal/adapters/dataset"
	"linkdir/internal/config"
	"linkdir/internal/domain"
	"linkdir/internal/logging"
	"linkdir/internal/ports"
)

var (
	configPath string
	sourcePath string

	cfg         *config.Config
	logger      *zap.Logger
	source      ports.LinkSource
	closeSource func() error
)

var rootCmd = &cobra.Command{
	Use:   "linkdir-cli",
	Short: "Browse and manage a link directory from the command line",
	Long: `linkdir-cli lists, searches, opens, imports and exports the links of a
link directory.

The directory is read from a YAML or JSON file, a SQLite database or a
browser bookmark export. Without a source the built-in directory is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if sourcePath != "" {
			cfg.Source = config.ExpandHome(sourcePath)
		}

		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger.Info("running command",
			zap.String("command", cmd.CommandPath()),
			zap.Strings("args", args))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeSource != nil {
			if err := closeSource(); err != nil {
				return err
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/linkdir/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "", "dataset to read (overrides the config)")
}

// GetSource opens the configured dataset on first use
func GetSource() (ports.LinkSource, error) {
	if source != nil {
		return source, nil
	}

	src, closeFn, err := dataset.Open(cfg.Source, logger)
	if err != nil {
		return nil, err
	}
	source, closeSource = src, closeFn
	return source, nil
}

// GetEngine returns the engine for the configured locale
func GetEngine() domain.Engine {
	return domain.NewEngine(domain.ParseLocale(cfg.Locale))
}
