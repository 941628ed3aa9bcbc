package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gnolang/refit/internal/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the engine's native configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		eng, _, base, err := setupEngine(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if err := runRender(os.Stdout, eng, base, renderOutput); err != nil {
			logger.Error("Error rendering configuration", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output path (default stdout)")
}

// runRender writes to output when set, otherwise to w. Relative paths in the
// result are anchored at the directory of the written file.
func runRender(w io.Writer, eng *engine.Engine, base, output string) error {
	if output == "" {
		return eng.Render(w, base)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", output, err)
	}
	defer f.Close()

	if err := eng.Render(f, filepath.Dir(output)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Engine configuration written: %s\n", output)
	return nil
}
