package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/gnolang/refit/internal/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "refit",
	Short: "refit - build, check and run source rewrite configurations",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for a single run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(setsCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfiguration reads path and returns the configuration together with
// the directory relative paths were resolved against. A missing file falls
// back to the default configuration unless the path was given explicitly.
func loadConfiguration(logger *zap.Logger, path string, explicit bool) (config.RewriteConfiguration, string, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, filepath.Dir(path), nil
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		logger.Info("No configuration file found, using defaults", zap.String("path", path))
		return config.Default("."), ".", nil
	}
	return config.RewriteConfiguration{}, "", err
}

func configExplicit(cmd *cobra.Command) bool {
	f := cmd.Flag("config")
	return f != nil && f.Changed
}

// setupEngine loads the configuration and registers it with a new engine.
func setupEngine(cmd *cobra.Command) (*engine.Engine, config.RewriteConfiguration, string, error) {
	cfg, base, err := loadConfiguration(logger, cfgFile, configExplicit(cmd))
	if err != nil {
		return nil, config.RewriteConfiguration{}, "", err
	}
	eng := engine.New(catalog.Default(), logger)
	cfg.Register(eng)
	return eng, cfg, base, nil
}
