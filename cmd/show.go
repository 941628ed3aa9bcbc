package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/formatter"
	"github.com/gnolang/refit/internal/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showJsonOutput bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration the engine would receive",
	Run: func(cmd *cobra.Command, args []string) {
		eng, _, base, err := setupEngine(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if err := runShow(logger, os.Stdout, eng, base, showJsonOutput); err != nil {
			logger.Error("Error showing configuration", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJsonOutput, "json", false, "Output the configuration in JSON format")
}

type showOutput struct {
	config.File
	Resolved []string `json:"resolved,omitempty"`
}

// runShow prints the configuration registered with eng.
func runShow(logger *zap.Logger, w io.Writer, eng *engine.Engine, base string, isJson bool) error {
	cfg, err := eng.Configuration()
	if err != nil {
		return err
	}

	resolved, err := eng.ResolveRules()
	if err != nil {
		var unknownErr *engine.UnknownIdentifierError
		if !errors.As(err, &unknownErr) {
			return err
		}
		logger.Warn("Configuration has unknown identifiers", zap.Error(err))
		resolved = nil
	}

	if !isJson {
		fmt.Fprint(w, formatter.FormatConfiguration(cfg, resolved))
		return nil
	}

	d, err := json.MarshalIndent(showOutput{File: cfg.File("refit", base), Resolved: resolved}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling configuration to JSON: %w", err)
	}
	fmt.Fprintln(w, string(d))
	return nil
}
