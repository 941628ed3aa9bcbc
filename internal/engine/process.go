package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultBinary is where the engine lives in a Composer-managed project.
const DefaultBinary = "vendor/bin/rector"

// Runner starts the external engine.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// ExecRunner runs the engine as a subprocess.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// ProcessOptions controls a single engine run.
type ProcessOptions struct {
	Binary string // defaults to DefaultBinary
	DryRun bool
	Runner Runner // defaults to ExecRunner
	Stdout io.Writer
	Stderr io.Writer
}

// Process validates the registered configuration, renders it to a temporary
// file and hands that file to the external engine. The engine rewrites the
// matching files in place unless DryRun is set.
func (e *Engine) Process(ctx context.Context, opts ProcessOptions) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}

	f, err := os.CreateTemp("", "refit-*.php")
	if err != nil {
		return fmt.Errorf("failed to create engine configuration: %w", err)
	}
	configPath := f.Name()
	defer os.Remove(configPath)

	if err := e.Render(f, filepath.Dir(configPath)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write engine configuration: %w", err)
	}

	args := []string{"process", "--config", configPath, "--no-progress-bar"}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}

	e.logger.Info("running engine",
		zap.Stringer("engine", e),
		zap.String("binary", opts.Binary),
		zap.Strings("args", args),
		zap.Bool("dryRun", opts.DryRun))

	if err := opts.Runner.Run(ctx, opts.Binary, args, opts.Stdout, opts.Stderr); err != nil {
		return fmt.Errorf("engine %s failed: %w", opts.Binary, err)
	}
	return nil
}
