package cmd

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/gnolang/refit/internal/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRun      bool
	engineBin   string
	watchChange bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the rewrite engine with the configuration",
	Run: func(cmd *cobra.Command, args []string) {
		opts := engine.ProcessOptions{
			Binary: engineBin,
			DryRun: dryRun,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}

		if watchChange {
			if err := runWatch(context.Background(), cmd, opts); err != nil {
				logger.Error("Error watching files", zap.Error(err))
				os.Exit(1)
			}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		eng, _, _, err := setupEngine(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if err := eng.Process(ctx, opts); err != nil {
			logger.Error("Error running engine", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without writing them")
	processCmd.Flags().StringVar(&engineBin, "bin", engine.DefaultBinary, "Path to the engine executable")
	processCmd.Flags().BoolVarP(&watchChange, "watch", "w", false, "Run again whenever sources or the configuration change")
}

// runWatch runs the engine once, then again on every change. A change to the
// configuration file reloads it before the next run.
func runWatch(ctx context.Context, cmd *cobra.Command, opts engine.ProcessOptions) error {
	configPath := filepath.Clean(cfgFile)

	for {
		eng, _, _, err := setupEngine(cmd)
		if err != nil {
			return err
		}
		runOnce(ctx, eng, opts)

		var extra []string
		if _, err := os.Stat(configPath); err == nil {
			extra = append(extra, configPath)
		}

		watchCtx, cancel := context.WithCancel(ctx)
		reload := false
		err = eng.Watch(watchCtx, extra, func(changed []string) {
			if slices.Contains(changed, configPath) {
				logger.Info("Configuration changed, reloading", zap.String("path", configPath))
				reload = true
				cancel()
				return
			}
			runOnce(ctx, eng, opts)
		})
		cancel()

		if err != nil || !reload || ctx.Err() != nil {
			return err
		}
	}
}

func runOnce(ctx context.Context, eng *engine.Engine, opts engine.ProcessOptions) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := eng.Process(runCtx, opts); err != nil {
		logger.Error("Error running engine", zap.Error(err))
	}
}
