package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnolang/refit/formatter"
	"github.com/gnolang/refit/internal/engine"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ignorePaths string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List the files the engine would process",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		eng, _, base, err := setupEngine(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		applyIgnorePaths(eng, ignorePaths)
		if isatty.IsTerminal(os.Stderr.Fd()) {
			eng.SetProgressOutput(os.Stderr)
		}

		if err := runPlan(ctx, os.Stdout, eng, base); err != nil {
			logger.Error("Error planning run", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	planCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}

func applyIgnorePaths(eng *engine.Engine, list string) {
	if list == "" {
		return
	}
	for _, path := range strings.Split(list, ",") {
		if path = strings.TrimSpace(path); path != "" {
			eng.IgnorePath(path)
		}
	}
}

func runPlan(ctx context.Context, w io.Writer, eng *engine.Engine, base string) error {
	files, err := eng.Discover(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w, formatter.FormatPlan(files, base))
	return nil
}
