package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gnolang/refit/formatter"
	"github.com/gnolang/refit/internal/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCheckFailed = errors.New("configuration check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check rule and set identifiers against the engine catalog",
	Run: func(cmd *cobra.Command, args []string) {
		eng, _, _, err := setupEngine(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if err := runCheck(os.Stdout, eng); err != nil {
			if !errors.Is(err, errCheckFailed) {
				logger.Error("Error checking configuration", zap.Error(err))
			}
			os.Exit(1)
		}
	},
}

func runCheck(w io.Writer, eng *engine.Engine) error {
	resolved, err := eng.ResolveRules()
	if err != nil {
		var unknownErr *engine.UnknownIdentifierError
		if errors.As(err, &unknownErr) {
			fmt.Fprint(w, formatter.FormatUnknown(unknownErr))
			return errCheckFailed
		}
		return err
	}

	fmt.Fprintf(w, "configuration ok: %d rules enabled\n", len(resolved))
	return nil
}
